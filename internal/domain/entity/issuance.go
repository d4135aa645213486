package entity

import "time"

// Issuance representa una entrega: stock que sale de una bodega hacia un
// cliente o sucursal. Ciclo de vida: creada → actualizada* → eliminada.
// La cantidad siempre es > 0; el ajuste de stock lo hace el StockLedger
// dentro de la misma transacción que escribe esta fila.
type Issuance struct {
	ID          string
	ProductID   string
	WarehouseID string
	CustomerID  string
	BranchID    string
	Quantity    int64
	Reference   string // remisión, orden de salida, etc.
	Notes       string
	IssuedBy    string // UserID del emisor
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
