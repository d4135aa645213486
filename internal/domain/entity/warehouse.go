package entity

import "time"

// Warehouse representa una bodega desde la que se entregan productos.
type Warehouse struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
