package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/entregas-api/internal/domain"
	"github.com/jhoicas/entregas-api/internal/domain/entity"
	"github.com/jhoicas/entregas-api/internal/domain/repository"
)

var _ repository.IssuanceRepository = (*IssuanceRepo)(nil)

const issuanceColumns = "id, product_id, warehouse_id, customer_id, branch_id, quantity, reference, notes, issued_by, created_at, updated_at"

// IssuanceRepo implementación del puerto IssuanceRepository sobre PostgreSQL
// (usable con pool o tx).
type IssuanceRepo struct {
	q Querier
}

// NewIssuanceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIssuanceRepository(q Querier) *IssuanceRepo {
	return &IssuanceRepo{q: q}
}

// Create persiste una nueva entrega.
func (r *IssuanceRepo) Create(issuance *entity.Issuance) error {
	query := `
		INSERT INTO issuances (` + issuanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		issuance.ID, issuance.ProductID, issuance.WarehouseID,
		nullable(issuance.CustomerID), nullable(issuance.BranchID),
		issuance.Quantity, issuance.Reference, issuance.Notes, issuance.IssuedBy,
		issuance.CreatedAt, issuance.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert issuance: %w", err)
	}
	return nil
}

// GetByID obtiene una entrega por ID, o nil si no existe.
func (r *IssuanceRepo) GetByID(id string) (*entity.Issuance, error) {
	query := `SELECT ` + issuanceColumns + ` FROM issuances WHERE id = $1`
	var iss entity.Issuance
	var customerID, branchID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&iss.ID, &iss.ProductID, &iss.WarehouseID, &customerID, &branchID,
		&iss.Quantity, &iss.Reference, &iss.Notes, &iss.IssuedBy,
		&iss.CreatedAt, &iss.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get issuance: %w", err)
	}
	if customerID != nil {
		iss.CustomerID = *customerID
	}
	if branchID != nil {
		iss.BranchID = *branchID
	}
	return &iss, nil
}

// Update actualiza cantidad y campos opcionales de la entrega.
func (r *IssuanceRepo) Update(issuance *entity.Issuance) error {
	query := `
		UPDATE issuances
		SET quantity = $2, customer_id = $3, branch_id = $4, reference = $5, notes = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		issuance.ID, issuance.Quantity, nullable(issuance.CustomerID), nullable(issuance.BranchID),
		issuance.Reference, issuance.Notes, issuance.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update issuance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrIssuanceNotFound
	}
	return nil
}

// Delete elimina la entrega por ID.
func (r *IssuanceRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM issuances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete issuance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrIssuanceNotFound
	}
	return nil
}

// ListByWarehouse lista entregas de una bodega, opcionalmente filtradas por rango de fechas.
func (r *IssuanceRepo) ListByWarehouse(warehouseID string, from, to *time.Time, limit, offset int) ([]*entity.Issuance, error) {
	return r.list("warehouse_id", warehouseID, from, to, limit, offset)
}

// ListByProduct lista entregas de un producto, opcionalmente filtradas por rango de fechas.
func (r *IssuanceRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.Issuance, error) {
	return r.list("product_id", productID, from, to, limit, offset)
}

func (r *IssuanceRepo) list(column, value string, from, to *time.Time, limit, offset int) ([]*entity.Issuance, error) {
	// column viene de las dos constantes de arriba, nunca de entrada de usuario.
	query := `
		SELECT ` + issuanceColumns + ` FROM issuances
		WHERE ` + column + ` = $1
		  AND ($2::timestamptz IS NULL OR created_at >= $2)
		  AND ($3::timestamptz IS NULL OR created_at <= $3)
		ORDER BY created_at DESC LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), query, value, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list issuances: %w", err)
	}
	defer rows.Close()
	var list []*entity.Issuance
	for rows.Next() {
		var iss entity.Issuance
		var customerID, branchID *string
		if err := rows.Scan(
			&iss.ID, &iss.ProductID, &iss.WarehouseID, &customerID, &branchID,
			&iss.Quantity, &iss.Reference, &iss.Notes, &iss.IssuedBy,
			&iss.CreatedAt, &iss.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan issuance: %w", err)
		}
		if customerID != nil {
			iss.CustomerID = *customerID
		}
		if branchID != nil {
			iss.BranchID = *branchID
		}
		list = append(list, &iss)
	}
	return list, rows.Err()
}

// nullable convierte cadena vacía en NULL para columnas con FK opcional.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
