package entity

import "time"

// PermissionAction acciones verificables sobre una bodega.
type PermissionAction string

const (
	ActionView   PermissionAction = "view"
	ActionAdd    PermissionAction = "add"
	ActionEdit   PermissionAction = "edit"
	ActionDelete PermissionAction = "delete"
)

// Niveles de permiso por bodega. El nivel se conserva como metadato de la fila;
// la verificación en runtime consulta SOLO los flags booleanos (ver Allows).
const (
	PermissionLevelView  = "view"
	PermissionLevelEdit  = "edit"
	PermissionLevelAdmin = "admin"
)

// WarehousePermission representa el permiso de un usuario sobre una bodega.
// Conviven dos representaciones: Level (enum) y los cuatro flags. Los flags son
// la fuente de verdad en runtime; Level se deriva al escribir la fila con
// FlagsForLevel y queda como informativo.
type WarehousePermission struct {
	UserID      string
	WarehouseID string
	Level       string
	CanView     bool
	CanAdd      bool
	CanEdit     bool
	CanDelete   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Allows devuelve el flag booleano que corresponde a la acción.
// Acción desconocida deniega.
func (p *WarehousePermission) Allows(action PermissionAction) bool {
	switch action {
	case ActionView:
		return p.CanView
	case ActionAdd:
		return p.CanAdd
	case ActionEdit:
		return p.CanEdit
	case ActionDelete:
		return p.CanDelete
	}
	return false
}

// FlagsForLevel deriva los cuatro flags desde el nivel:
// view → solo lectura; edit → ver, agregar y editar; admin → todo.
// Se aplica al crear o actualizar la fila para que ambas representaciones
// queden consistentes.
func FlagsForLevel(level string) (canView, canAdd, canEdit, canDelete bool) {
	switch level {
	case PermissionLevelView:
		return true, false, false, false
	case PermissionLevelEdit:
		return true, true, true, false
	case PermissionLevelAdmin:
		return true, true, true, true
	}
	return false, false, false, false
}

// ValidAction indica si la acción es una de las cuatro reconocidas.
func ValidAction(action PermissionAction) bool {
	switch action {
	case ActionView, ActionAdd, ActionEdit, ActionDelete:
		return true
	}
	return false
}
