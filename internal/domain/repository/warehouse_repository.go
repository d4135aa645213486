package repository

import "github.com/jhoicas/entregas-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para bodegas.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	List(limit, offset int) ([]*entity.Warehouse, error)
	// ListIDs devuelve todos los IDs de bodega (para el override de admin).
	ListIDs() ([]string, error)
	Update(warehouse *entity.Warehouse) error
	Delete(id string) error
}
