package dto

import "time"

// CreateIssuanceRequest entrada para crear una entrega.
type CreateIssuanceRequest struct {
	ProductID   string `json:"product_id"`
	WarehouseID string `json:"warehouse_id"`
	Quantity    int64  `json:"quantity"`
	CustomerID  string `json:"customer_id"`
	BranchID    string `json:"branch_id"`
	Reference   string `json:"reference"`
	Notes       string `json:"notes"`
}

// UpdateIssuanceRequest entrada para actualizar una entrega. Los campos de
// texto son opcionales: un puntero nil significa "no tocar" (patch explícito
// en lugar de un mapa abierto).
type UpdateIssuanceRequest struct {
	Quantity   int64   `json:"quantity"`
	CustomerID *string `json:"customer_id"`
	BranchID   *string `json:"branch_id"`
	Reference  *string `json:"reference"`
	Notes      *string `json:"notes"`
}

// IssuanceResponse representación de una entrega en respuestas.
type IssuanceResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	WarehouseID string    `json:"warehouse_id"`
	Quantity    int64     `json:"quantity"`
	CustomerID  string    `json:"customer_id,omitempty"`
	BranchID    string    `json:"branch_id,omitempty"`
	Reference   string    `json:"reference,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	IssuedBy    string    `json:"issued_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IssuanceListResponse listado paginado de entregas.
type IssuanceListResponse struct {
	Items []IssuanceResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
