// Package issuance contiene el gestor transaccional de entregas: compone el
// StockLedger, el Gate de permisos y el Validator de entradas para mantener
// consistentes los contadores de stock mientras las entregas se crean,
// editan y eliminan.
package issuance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/entregas-api/internal/application/dto"
	"github.com/jhoicas/entregas-api/internal/application/permission"
	"github.com/jhoicas/entregas-api/internal/domain"
	"github.com/jhoicas/entregas-api/internal/domain/entity"
	"github.com/jhoicas/entregas-api/internal/domain/inventory"
	"github.com/jhoicas/entregas-api/internal/domain/repository"
	"github.com/jhoicas/entregas-api/internal/security"
)

// UseCase orquesta crear/actualizar/eliminar entregas. Toda mutación pasa,
// en este orden, por: rate limit → validación de campos → permiso por bodega
// → transacción (fila de entrega + ajuste de stock). Ningún error tipado deja
// escrituras parciales: las dos escrituras comparten la transacción.
type UseCase struct {
	txRunner     TxRunner
	issuanceRepo repository.IssuanceRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	branchRepo   repository.BranchRepository
	gate         *permission.Gate
	validator    *security.Validator
	limiter      *security.RateLimiter
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	issuanceRepo repository.IssuanceRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	branchRepo repository.BranchRepository,
	gate *permission.Gate,
	validator *security.Validator,
	limiter *security.RateLimiter,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		issuanceRepo: issuanceRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		branchRepo:   branchRepo,
		gate:         gate,
		validator:    validator,
		limiter:      limiter,
	}
}

// Create registra una entrega y descuenta el stock en una sola transacción.
// Cantidad <= 0 es entrada inválida; stock insuficiente devuelve
// ErrInsufficientStock sin crear nada.
func (uc *UseCase) Create(ctx context.Context, userID string, in dto.CreateIssuanceRequest) (*dto.IssuanceResponse, error) {
	if err := uc.limiter.Allow(userID); err != nil {
		return nil, err
	}
	if in.Quantity <= 0 || in.ProductID == "" || in.WarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.screenFields(userID, map[string]string{
		"reference": in.Reference,
		"notes":     in.Notes,
	}); err != nil {
		return nil, err
	}
	if !uc.gate.HasPermission(userID, in.WarehouseID, entity.ActionAdd) {
		return nil, domain.ErrPermissionDenied
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if product.WarehouseID != in.WarehouseID {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkDestination(in.CustomerID, in.BranchID); err != nil {
		return nil, err
	}

	now := time.Now()
	iss := &entity.Issuance{
		ID:          uuid.New().String(),
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		CustomerID:  in.CustomerID,
		BranchID:    in.BranchID,
		Quantity:    in.Quantity,
		Reference:   uc.validator.Sanitize(in.Reference),
		Notes:       uc.validator.Sanitize(in.Notes),
		IssuedBy:    userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Fila de entrega + descuento de stock en la misma transacción: si el
	// ledger detecta stock insuficiente la inserción se revierte.
	err = uc.txRunner.Run(ctx, func(
		issuanceRepo repository.IssuanceRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := issuanceRepo.Create(iss); err != nil {
			return err
		}
		ledger := inventory.NewStockLedger(productRepo)
		return ledger.Adjust(in.ProductID, -in.Quantity)
	})
	if err != nil {
		return nil, err
	}
	return toIssuanceResponse(iss), nil
}

// Update cambia la cantidad y los campos opcionales de una entrega. La
// cantidad original se toma de la fila almacenada (no del caller) y el stock
// disponible se recalcula como currentStock + originalQuantity: se "devuelve"
// conceptualmente la deducción original antes de validar la nueva cantidad,
// para no descontar dos veces cuando solo cambia la cantidad.
func (uc *UseCase) Update(ctx context.Context, userID, issuanceID string, in dto.UpdateIssuanceRequest) (*dto.IssuanceResponse, error) {
	if err := uc.limiter.Allow(userID); err != nil {
		return nil, err
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	fields := map[string]string{}
	if in.Reference != nil {
		fields["reference"] = *in.Reference
	}
	if in.Notes != nil {
		fields["notes"] = *in.Notes
	}
	if err := uc.screenFields(userID, fields); err != nil {
		return nil, err
	}

	existing, err := uc.issuanceRepo.GetByID(issuanceID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrIssuanceNotFound
	}
	if !uc.gate.HasPermission(userID, existing.WarehouseID, entity.ActionEdit) {
		return nil, domain.ErrPermissionDenied
	}
	if err := uc.checkPatchDestination(in.CustomerID, in.BranchID); err != nil {
		return nil, err
	}

	var updated *entity.Issuance
	err = uc.txRunner.Run(ctx, func(
		issuanceRepo repository.IssuanceRepository,
		productRepo repository.ProductRepository,
	) error {
		// Releer bajo la transacción: la cantidad original autoritativa es
		// la de la fila, leída con la fila de producto ya bloqueada.
		iss, err := issuanceRepo.GetByID(issuanceID)
		if err != nil {
			return err
		}
		if iss == nil {
			return domain.ErrIssuanceNotFound
		}
		ledger := inventory.NewStockLedger(productRepo)
		currentStock, err := ledger.CurrentStock(iss.ProductID)
		if err != nil {
			return err
		}
		availableStock := currentStock + iss.Quantity
		if in.Quantity > availableStock {
			return domain.ErrInsufficientStock
		}
		if delta := iss.Quantity - in.Quantity; delta != 0 {
			if err := ledger.Adjust(iss.ProductID, delta); err != nil {
				return err
			}
		}
		iss.Quantity = in.Quantity
		if in.CustomerID != nil {
			iss.CustomerID = *in.CustomerID
		}
		if in.BranchID != nil {
			iss.BranchID = *in.BranchID
		}
		if in.Reference != nil {
			iss.Reference = uc.validator.Sanitize(*in.Reference)
		}
		if in.Notes != nil {
			iss.Notes = uc.validator.Sanitize(*in.Notes)
		}
		iss.UpdatedAt = time.Now()
		if err := issuanceRepo.Update(iss); err != nil {
			return err
		}
		updated = iss
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toIssuanceResponse(updated), nil
}

// Delete elimina la entrega y devuelve su cantidad al stock, en la misma
// transacción: o ambos efectos quedan o ninguno.
func (uc *UseCase) Delete(ctx context.Context, userID, issuanceID string) error {
	if err := uc.limiter.Allow(userID); err != nil {
		return err
	}
	existing, err := uc.issuanceRepo.GetByID(issuanceID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrIssuanceNotFound
	}
	if !uc.gate.HasPermission(userID, existing.WarehouseID, entity.ActionDelete) {
		return domain.ErrPermissionDenied
	}

	return uc.txRunner.Run(ctx, func(
		issuanceRepo repository.IssuanceRepository,
		productRepo repository.ProductRepository,
	) error {
		iss, err := issuanceRepo.GetByID(issuanceID)
		if err != nil {
			return err
		}
		if iss == nil {
			return domain.ErrIssuanceNotFound
		}
		if err := issuanceRepo.Delete(issuanceID); err != nil {
			return err
		}
		ledger := inventory.NewStockLedger(productRepo)
		return ledger.Adjust(iss.ProductID, iss.Quantity)
	})
}

// GetByID consulta de lectura (requiere permiso view sobre la bodega).
func (uc *UseCase) GetByID(userID, issuanceID string) (*dto.IssuanceResponse, error) {
	iss, err := uc.issuanceRepo.GetByID(issuanceID)
	if err != nil {
		return nil, err
	}
	if iss == nil {
		return nil, domain.ErrIssuanceNotFound
	}
	if !uc.gate.HasPermission(userID, iss.WarehouseID, entity.ActionView) {
		return nil, domain.ErrPermissionDenied
	}
	return toIssuanceResponse(iss), nil
}

// ListByWarehouse lista entregas de una bodega (permiso view).
func (uc *UseCase) ListByWarehouse(userID, warehouseID string, limit, offset int) (*dto.IssuanceListResponse, error) {
	if !uc.gate.HasPermission(userID, warehouseID, entity.ActionView) {
		return nil, domain.ErrPermissionDenied
	}
	list, err := uc.issuanceRepo.ListByWarehouse(warehouseID, nil, nil, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.IssuanceResponse, 0, len(list))
	for _, iss := range list {
		items = append(items, *toIssuanceResponse(iss))
	}
	return &dto.IssuanceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// screenFields pasa cada campo de texto libre por las heurísticas del
// validador contra el texto crudo. El primer rechazo corta el flujo antes
// de cualquier escritura.
func (uc *UseCase) screenFields(clientID string, fields map[string]string) error {
	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := uc.validator.CheckField(clientID, name, value); err != nil {
			return err
		}
	}
	return nil
}

// checkDestination valida que cliente y/o sucursal existan cuando vienen informados.
func (uc *UseCase) checkDestination(customerID, branchID string) error {
	if customerID != "" {
		c, err := uc.customerRepo.GetByID(customerID)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrNotFound
		}
	}
	if branchID != "" {
		b, err := uc.branchRepo.GetByID(branchID)
		if err != nil {
			return err
		}
		if b == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

func (uc *UseCase) checkPatchDestination(customerID, branchID *string) error {
	var c, b string
	if customerID != nil {
		c = *customerID
	}
	if branchID != nil {
		b = *branchID
	}
	return uc.checkDestination(c, b)
}

func toIssuanceResponse(iss *entity.Issuance) *dto.IssuanceResponse {
	if iss == nil {
		return nil
	}
	return &dto.IssuanceResponse{
		ID:          iss.ID,
		ProductID:   iss.ProductID,
		WarehouseID: iss.WarehouseID,
		Quantity:    iss.Quantity,
		CustomerID:  iss.CustomerID,
		BranchID:    iss.BranchID,
		Reference:   iss.Reference,
		Notes:       iss.Notes,
		IssuedBy:    iss.IssuedBy,
		CreatedAt:   iss.CreatedAt,
		UpdatedAt:   iss.UpdatedAt,
	}
}
