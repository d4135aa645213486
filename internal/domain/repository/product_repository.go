package repository

import "github.com/jhoicas/entregas-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// UpdateStock solo debe invocarse desde el StockLedger, con la fila bloqueada
// vía GetForUpdate dentro de una transacción.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByWarehouseAndSKU(warehouseID, sku string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Product, error)
	UpdateStock(id string, stock int64) error
	Update(product *entity.Product) error
	ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
