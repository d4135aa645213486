package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/entregas-api/internal/domain/entity"
	"github.com/jhoicas/entregas-api/internal/domain/repository"
)

var _ repository.PermissionRepository = (*PermissionRepo)(nil)

const permissionColumns = "user_id, warehouse_id, permission_level, can_view, can_add, can_edit, can_delete, created_at, updated_at"

// PermissionRepo implementación del puerto PermissionRepository sobre PostgreSQL.
type PermissionRepo struct {
	q Querier
}

// NewPermissionRepository construye el adaptador.
func NewPermissionRepository(q Querier) *PermissionRepo {
	return &PermissionRepo{q: q}
}

// Get devuelve la fila (user, warehouse) o nil si no existe.
func (r *PermissionRepo) Get(userID, warehouseID string) (*entity.WarehousePermission, error) {
	query := `SELECT ` + permissionColumns + ` FROM warehouse_permissions WHERE user_id = $1 AND warehouse_id = $2`
	var p entity.WarehousePermission
	err := r.q.QueryRow(context.Background(), query, userID, warehouseID).Scan(
		&p.UserID, &p.WarehouseID, &p.Level, &p.CanView, &p.CanAdd, &p.CanEdit, &p.CanDelete,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get permission: %w", err)
	}
	return &p, nil
}

// ListByUser lista los permisos de un usuario.
func (r *PermissionRepo) ListByUser(userID string) ([]*entity.WarehousePermission, error) {
	query := `SELECT ` + permissionColumns + ` FROM warehouse_permissions WHERE user_id = $1 ORDER BY warehouse_id`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	defer rows.Close()
	var list []*entity.WarehousePermission
	for rows.Next() {
		var p entity.WarehousePermission
		if err := rows.Scan(
			&p.UserID, &p.WarehouseID, &p.Level, &p.CanView, &p.CanAdd, &p.CanEdit, &p.CanDelete,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan permission: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Upsert inserta o actualiza el permiso (clave compuesta user + warehouse).
func (r *PermissionRepo) Upsert(perm *entity.WarehousePermission) error {
	query := `
		INSERT INTO warehouse_permissions (` + permissionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id, warehouse_id)
		DO UPDATE SET permission_level = EXCLUDED.permission_level,
		              can_view = EXCLUDED.can_view, can_add = EXCLUDED.can_add,
		              can_edit = EXCLUDED.can_edit, can_delete = EXCLUDED.can_delete,
		              updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		perm.UserID, perm.WarehouseID, perm.Level,
		perm.CanView, perm.CanAdd, perm.CanEdit, perm.CanDelete,
		perm.CreatedAt, perm.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert permission: %w", err)
	}
	return nil
}

// Delete elimina el permiso (user, warehouse).
func (r *PermissionRepo) Delete(userID, warehouseID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM warehouse_permissions WHERE user_id = $1 AND warehouse_id = $2`, userID, warehouseID)
	if err != nil {
		return fmt.Errorf("delete permission: %w", err)
	}
	return nil
}
