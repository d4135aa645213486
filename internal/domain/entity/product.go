package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto almacenado en una bodega.
// Stock se modifica únicamente a través del StockLedger (nunca por CRUD directo);
// MinStock es el punto de reorden para alertas de reposición.
type Product struct {
	ID          string
	WarehouseID string
	SKU         string // código único por bodega
	Name        string
	Brand       string
	Model       string
	Category    string
	Price       decimal.Decimal
	Stock       int64 // siempre >= 0, invariante del StockLedger
	MinStock    int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
