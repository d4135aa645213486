package permission

import (
	"time"

	"github.com/jhoicas/entregas-api/internal/application/dto"
	"github.com/jhoicas/entregas-api/internal/domain"
	"github.com/jhoicas/entregas-api/internal/domain/entity"
	"github.com/jhoicas/entregas-api/internal/domain/repository"
)

// AdminUseCase administración de permisos por bodega (solo rol admin,
// reforzado por RequireRole en la capa HTTP).
type AdminUseCase struct {
	permRepo      repository.PermissionRepository
	userRepo      repository.UserRepository
	warehouseRepo repository.WarehouseRepository
}

// NewAdminUseCase construye el caso de uso.
func NewAdminUseCase(permRepo repository.PermissionRepository, userRepo repository.UserRepository, warehouseRepo repository.WarehouseRepository) *AdminUseCase {
	return &AdminUseCase{permRepo: permRepo, userRepo: userRepo, warehouseRepo: warehouseRepo}
}

// Grant crea o actualiza el permiso (user, warehouse). Los flags se derivan
// del nivel con FlagsForLevel para que ambas representaciones queden
// consistentes al escribir.
func (uc *AdminUseCase) Grant(in dto.GrantPermissionRequest) (*dto.PermissionResponse, error) {
	if in.Level != entity.PermissionLevelView && in.Level != entity.PermissionLevelEdit && in.Level != entity.PermissionLevelAdmin {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	canView, canAdd, canEdit, canDelete := entity.FlagsForLevel(in.Level)
	now := time.Now()
	perm := &entity.WarehousePermission{
		UserID:      in.UserID,
		WarehouseID: in.WarehouseID,
		Level:       in.Level,
		CanView:     canView,
		CanAdd:      canAdd,
		CanEdit:     canEdit,
		CanDelete:   canDelete,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.permRepo.Upsert(perm); err != nil {
		return nil, err
	}
	return toPermissionResponse(perm), nil
}

// ListByUser lista los permisos de un usuario.
func (uc *AdminUseCase) ListByUser(userID string) ([]dto.PermissionResponse, error) {
	perms, err := uc.permRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PermissionResponse, 0, len(perms))
	for _, p := range perms {
		items = append(items, *toPermissionResponse(p))
	}
	return items, nil
}

// Revoke elimina el permiso (user, warehouse).
func (uc *AdminUseCase) Revoke(userID, warehouseID string) error {
	return uc.permRepo.Delete(userID, warehouseID)
}

func toPermissionResponse(p *entity.WarehousePermission) *dto.PermissionResponse {
	return &dto.PermissionResponse{
		UserID:      p.UserID,
		WarehouseID: p.WarehouseID,
		Level:       p.Level,
		CanView:     p.CanView,
		CanAdd:      p.CanAdd,
		CanEdit:     p.CanEdit,
		CanDelete:   p.CanDelete,
		UpdatedAt:   p.UpdatedAt,
	}
}
