package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"freight-admin/internal/entities"
	db "freight-admin/internal/infrastructure/bd"
	apperrors "freight-admin/pkg/errors"
	"freight-admin/pkg/types"
)

var roleQuery = listQuery{
	From: "role rl",
	Columns: []string{
		"rl.role_id", "rl.role_name", "rl.description", "rl.active_status",
		"rl.created_at", "rl.created_by", "rl.updated_at", "rl.updated_by",
	},
}

var roleListDef = db.ListDef{
	Columns: map[string]string{
		"roleId":   "rl.role_id",
		"roleName": "rl.role_name",
	},
	SearchColumns: []string{"rl.role_name", "rl.description"},
	ActiveColumn:  "rl.active_status",
	DefaultOrder:  "rl.role_id ASC",
	KeyColumn:     "rl.role_id",
}

type RoleRepositoryInterface interface {
	GetRoles(ctx context.Context, filter types.Filter) ([]entities.Role, uint64, error)
	FindRole(ctx context.Context, id uint64) (*entities.Role, error)
	FindByName(ctx context.Context, name string) (*entities.Role, error)
	CreateRoleInTx(ctx context.Context, tx pgx.Tx, role entities.Role) (uint64, error)
	UpdateRoleInTx(ctx context.Context, tx pgx.Tx, role entities.Role) error
	LinkPermissionsToRoleInTx(ctx context.Context, tx pgx.Tx, roleID uint64, permissionIDs []uint64) error
	UnlinkAllPermissionsFromRoleInTx(ctx context.Context, tx pgx.Tx, roleID uint64) error
	GetRolePermissions(ctx context.Context, roleID uint64) ([]entities.Permission, error)
	DeleteRole(ctx context.Context, id uint64, actor *uint64) error
}

type RoleRepository struct {
	storage *pgxpool.Pool
}

func NewRoleRepository(storage *pgxpool.Pool) RoleRepositoryInterface {
	return &RoleRepository{storage: storage}
}

func scanRole(row pgx.Row) (*entities.Role, error) {
	var rl entities.Role
	err := row.Scan(&rl.RoleID, &rl.RoleName, &rl.Description, &rl.ActiveStatus,
		&rl.CreatedAt, &rl.CreatedBy, &rl.UpdatedAt, &rl.UpdatedBy)
	if err != nil {
		return nil, readErr(err, "scan role")
	}
	return &rl, nil
}

func (r *RoleRepository) GetRoles(ctx context.Context, filter types.Filter) ([]entities.Role, uint64, error) {
	return listPage(ctx, r.storage, roleQuery, filter, roleListDef, scanRole)
}

func (r *RoleRepository) FindRole(ctx context.Context, id uint64) (*entities.Role, error) {
	return findOne(ctx, r.storage, roleQuery, sq.Eq{"rl.role_id": id}, scanRole)
}

func (r *RoleRepository) FindByName(ctx context.Context, name string) (*entities.Role, error) {
	return findOne(ctx, r.storage, roleQuery, sq.Eq{"rl.role_name": name}, scanRole)
}

func (r *RoleRepository) CreateRoleInTx(ctx context.Context, tx pgx.Tx, rl entities.Role) (uint64, error) {
	var id uint64
	err := tx.QueryRow(ctx, `
		INSERT INTO role (role_name, description, created_by, updated_by)
		VALUES ($1, $2, $3, $3)
		RETURNING role_id`,
		rl.RoleName, rl.Description, rl.CreatedBy,
	).Scan(&id)
	if err != nil {
		return 0, writeErr(err, "insert role", "roleName", rl.RoleName)
	}
	return id, nil
}

func (r *RoleRepository) UpdateRoleInTx(ctx context.Context, tx pgx.Tx, rl entities.Role) error {
	result, err := tx.Exec(ctx, `
		UPDATE role
		SET role_name = $1, description = $2, active_status = $3, updated_at = NOW(), updated_by = $4
		WHERE role_id = $5`,
		rl.RoleName, rl.Description, rl.ActiveStatus, rl.UpdatedBy, rl.RoleID,
	)
	if err != nil {
		return writeErr(err, "update role", "roleName", rl.RoleName)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// LinkPermissionsToRoleInTx expects de-duplicated ids; the join table's
// primary key rejects repeats.
func (r *RoleRepository) LinkPermissionsToRoleInTx(ctx context.Context, tx pgx.Tx, roleID uint64, permissionIDs []uint64) error {
	if len(permissionIDs) == 0 {
		return nil
	}
	rows := make([][]interface{}, len(permissionIDs))
	for i, permID := range permissionIDs {
		rows[i] = []interface{}{int64(roleID), int64(permID)}
	}
	_, err := tx.CopyFrom(ctx, pgx.Identifier{"role_permission_map"}, []string{"role_id", "permission_id"}, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("link role permissions: %w", err)
	}
	return nil
}

func (r *RoleRepository) UnlinkAllPermissionsFromRoleInTx(ctx context.Context, tx pgx.Tx, roleID uint64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM role_permission_map WHERE role_id = $1`, roleID); err != nil {
		return fmt.Errorf("unlink role permissions: %w", err)
	}
	return nil
}

func (r *RoleRepository) GetRolePermissions(ctx context.Context, roleID uint64) ([]entities.Permission, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT p.permission_id, p.module_name, p.permission_name, p.ui_field_name
		FROM permission p
		JOIN role_permission_map rp ON rp.permission_id = p.permission_id
		WHERE rp.role_id = $1
		ORDER BY p.module_name, p.permission_name`, roleID)
	if err != nil {
		return nil, fmt.Errorf("list role permissions: %w", err)
	}
	defer rows.Close()

	permissions := make([]entities.Permission, 0)
	for rows.Next() {
		var p entities.Permission
		if err := rows.Scan(&p.PermissionID, &p.ModuleName, &p.PermissionName, &p.UIFieldName); err != nil {
			return nil, fmt.Errorf("scan role permission: %w", err)
		}
		permissions = append(permissions, p)
	}
	return permissions, rows.Err()
}

func (r *RoleRepository) DeleteRole(ctx context.Context, id uint64, actor *uint64) error {
	return softDelete(ctx, r.storage, "role", "role_id", id, actor)
}
