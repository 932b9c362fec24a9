package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"freight-admin/internal/entities"
)

type PermissionRepositoryInterface interface {
	GetAllPermissions(ctx context.Context) ([]entities.Permission, error)
	GetPermissionNamesForRole(ctx context.Context, roleID uint64) ([]string, error)
}

type PermissionRepository struct {
	storage *pgxpool.Pool
}

func NewPermissionRepository(storage *pgxpool.Pool) PermissionRepositoryInterface {
	return &PermissionRepository{storage: storage}
}

// GetAllPermissions returns the whole catalog ordered by module then name.
func (r *PermissionRepository) GetAllPermissions(ctx context.Context) ([]entities.Permission, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT permission_id, module_name, permission_name, ui_field_name
		FROM permission
		ORDER BY module_name, permission_name`)
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	defer rows.Close()

	permissions := make([]entities.Permission, 0)
	for rows.Next() {
		var p entities.Permission
		if err := rows.Scan(&p.PermissionID, &p.ModuleName, &p.PermissionName, &p.UIFieldName); err != nil {
			return nil, fmt.Errorf("scan permission: %w", err)
		}
		permissions = append(permissions, p)
	}
	return permissions, rows.Err()
}

// GetPermissionNamesForRole returns nothing for an inactive role.
func (r *PermissionRepository) GetPermissionNamesForRole(ctx context.Context, roleID uint64) ([]string, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT p.permission_name
		FROM permission p
		JOIN role_permission_map rp ON rp.permission_id = p.permission_id
		JOIN role rl ON rl.role_id = rp.role_id
		WHERE rp.role_id = $1 AND rl.active_status = 'Y'
		ORDER BY p.permission_name`, roleID)
	if err != nil {
		return nil, fmt.Errorf("list role permission names: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan permission name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
