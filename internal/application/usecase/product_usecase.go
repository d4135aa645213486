package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/entregas-api/internal/application/dto"
	"github.com/jhoicas/entregas-api/internal/domain"
	"github.com/jhoicas/entregas-api/internal/domain/entity"
	"github.com/jhoicas/entregas-api/internal/domain/repository"
	"github.com/jhoicas/entregas-api/internal/security"
)

// ProductUseCase casos de uso CRUD para productos. El stock solo se mueve
// a través del StockLedger (entregas); aquí se fija únicamente la carga
// inicial al crear.
type ProductUseCase struct {
	repo      repository.ProductRepository
	validator *security.Validator
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, validator *security.Validator) *ProductUseCase {
	return &ProductUseCase{repo: repo, validator: validator}
}

// Create crea un nuevo producto.
func (uc *ProductUseCase) Create(userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" || in.WarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock < 0 || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	for field, value := range map[string]string{
		"sku": in.SKU, "name": in.Name, "brand": in.Brand, "model": in.Model, "category": in.Category,
	} {
		if value == "" {
			continue
		}
		if err := uc.validator.CheckField(userID, field, value); err != nil {
			return nil, err
		}
	}
	existing, _ := uc.repo.GetByWarehouseAndSKU(in.WarehouseID, in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		WarehouseID: in.WarehouseID,
		SKU:         uc.validator.Sanitize(in.SKU),
		Name:        uc.validator.Sanitize(in.Name),
		Brand:       uc.validator.Sanitize(in.Brand),
		Model:       uc.validator.Sanitize(in.Model),
		Category:    uc.validator.Sanitize(in.Category),
		Price:       in.Price,
		Stock:       in.Stock,
		MinStock:    in.MinStock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza campos descriptivos. No permite modificar Stock (se
// maneja vía entregas).
func (uc *ProductUseCase) Update(userID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	apply := func(field string, dst *string, src *string) error {
		if src == nil {
			return nil
		}
		if err := uc.validator.CheckField(userID, field, *src); err != nil {
			return err
		}
		*dst = uc.validator.Sanitize(*src)
		return nil
	}
	if err := apply("name", &product.Name, in.Name); err != nil {
		return nil, err
	}
	if err := apply("brand", &product.Brand, in.Brand); err != nil {
		return nil, err
	}
	if err := apply("model", &product.Model, in.Model); err != nil {
		return nil, err
	}
	if err := apply("category", &product.Category, in.Category); err != nil {
		return nil, err
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinStock = *in.MinStock
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos por bodega con paginación.
func (uc *ProductUseCase) List(warehouseID string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListByWarehouse(warehouseID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		WarehouseID: p.WarehouseID,
		SKU:         p.SKU,
		Name:        p.Name,
		Brand:       p.Brand,
		Model:       p.Model,
		Category:    p.Category,
		Price:       p.Price,
		Stock:       p.Stock,
		MinStock:    p.MinStock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
