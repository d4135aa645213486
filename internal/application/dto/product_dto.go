package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Stock inicial puede
// ser > 0 (carga inicial); después solo se mueve vía entregas.
type CreateProductRequest struct {
	WarehouseID string          `json:"warehouse_id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand"`
	Model       string          `json:"model"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int64           `json:"stock"`
	MinStock    int64           `json:"min_stock"`
}

// UpdateProductRequest campos opcionales (nil = no tocar). Stock no se
// actualiza por aquí: solo a través del StockLedger.
type UpdateProductRequest struct {
	Name     *string          `json:"name"`
	Brand    *string          `json:"brand"`
	Model    *string          `json:"model"`
	Category *string          `json:"category"`
	Price    *decimal.Decimal `json:"price"`
	MinStock *int64           `json:"min_stock"`
}

// ProductResponse representación de un producto en respuestas.
type ProductResponse struct {
	ID          string          `json:"id"`
	WarehouseID string          `json:"warehouse_id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand,omitempty"`
	Model       string          `json:"model,omitempty"`
	Category    string          `json:"category,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int64           `json:"stock"`
	MinStock    int64           `json:"min_stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
