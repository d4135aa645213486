// Package permission implementa la autorización por tripleta
// (usuario, bodega, acción).
package permission

import (
	"github.com/jhoicas/entregas-api/internal/domain/entity"
	"github.com/jhoicas/entregas-api/internal/domain/repository"
)

// Gate autoriza acciones por bodega. Falla cerrado: cualquier error de
// lookup o usuario inexistente deniega, nunca permite implícitamente.
//
// La fila WarehousePermission guarda un nivel (enum) y cuatro flags; en
// runtime SOLO se consultan los flags (el nivel es metadato, ver
// entity.FlagsForLevel y DESIGN.md).
type Gate struct {
	userRepo      repository.UserRepository
	permRepo      repository.PermissionRepository
	warehouseRepo repository.WarehouseRepository
}

// NewGate construye el gate.
func NewGate(userRepo repository.UserRepository, permRepo repository.PermissionRepository, warehouseRepo repository.WarehouseRepository) *Gate {
	return &Gate{userRepo: userRepo, permRepo: permRepo, warehouseRepo: warehouseRepo}
}

// HasPermission verifica si el usuario puede ejecutar la acción en la bodega:
//  1. rol admin del sistema → true incondicional (override global);
//  2. sin fila (user, warehouse) → false (deniega por defecto);
//  3. se devuelve el flag booleano que corresponde a la acción.
func (g *Gate) HasPermission(userID, warehouseID string, action entity.PermissionAction) bool {
	if !entity.ValidAction(action) {
		return false
	}
	user, err := g.userRepo.GetByID(userID)
	if err != nil || user == nil {
		return false
	}
	if user.IsAdmin() {
		return true
	}
	perm, err := g.permRepo.Get(userID, warehouseID)
	if err != nil || perm == nil {
		return false
	}
	return perm.Allows(action)
}

// AccessibleWarehouses devuelve los IDs de bodega donde el usuario puede
// ejecutar la acción. Admin recibe el conjunto completo.
func (g *Gate) AccessibleWarehouses(userID string, action entity.PermissionAction) ([]string, error) {
	if !entity.ValidAction(action) {
		return nil, nil
	}
	user, err := g.userRepo.GetByID(userID)
	if err != nil || user == nil {
		return nil, err
	}
	if user.IsAdmin() {
		return g.warehouseRepo.ListIDs()
	}
	perms, err := g.permRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(perms))
	for _, p := range perms {
		if p.Allows(action) {
			ids = append(ids, p.WarehouseID)
		}
	}
	return ids, nil
}
