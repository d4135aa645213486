package repository

import "github.com/jhoicas/entregas-api/internal/domain/entity"

// PermissionRepository define el puerto de persistencia para permisos por bodega.
type PermissionRepository interface {
	// Get devuelve la fila (user, warehouse) o nil si no existe (deniega por defecto).
	Get(userID, warehouseID string) (*entity.WarehousePermission, error)
	ListByUser(userID string) ([]*entity.WarehousePermission, error)
	Upsert(perm *entity.WarehousePermission) error
	Delete(userID, warehouseID string) error
}
