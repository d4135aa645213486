package dto

import "time"

// GrantPermissionRequest entrada para otorgar o actualizar un permiso por bodega.
// Los flags se derivan del nivel (view/edit/admin) al escribir.
type GrantPermissionRequest struct {
	UserID      string `json:"user_id"`
	WarehouseID string `json:"warehouse_id"`
	Level       string `json:"level"`
}

// PermissionResponse representación de un permiso en respuestas.
type PermissionResponse struct {
	UserID      string    `json:"user_id"`
	WarehouseID string    `json:"warehouse_id"`
	Level       string    `json:"level"`
	CanView     bool      `json:"can_view"`
	CanAdd      bool      `json:"can_add"`
	CanEdit     bool      `json:"can_edit"`
	CanDelete   bool      `json:"can_delete"`
	UpdatedAt   time.Time `json:"updated_at"`
}
