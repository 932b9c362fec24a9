package seeders

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"freight-admin/pkg/utils"
)

const adminRoleName = "ADMIN"

func seedAdminRole(ctx context.Context, tx pgx.Tx) (uint64, error) {
	var roleID uint64
	err := tx.QueryRow(ctx, `
		INSERT INTO role (role_name, description)
		VALUES ($1, 'Full access')
		ON CONFLICT (role_name) DO UPDATE SET active_status = 'Y', updated_at = NOW()
		RETURNING role_id`, adminRoleName).Scan(&roleID)
	if err != nil {
		return 0, err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO role_permission_map (role_id, permission_id)
		SELECT $1, permission_id FROM permission
		ON CONFLICT DO NOTHING`, roleID)
	return roleID, err
}

// seedAdminUser reports whether a new row was written.
func seedAdminUser(ctx context.Context, tx pgx.Tx, roleID uint64, account AdminAccount) (bool, error) {
	hash, err := utils.HashPassword(account.Password)
	if err != nil {
		return false, err
	}

	tag, err := tx.Exec(ctx, `
		INSERT INTO app_user (user_name, email, first_name, last_name, password_hash, role_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_name) DO NOTHING`,
		account.UserName, strings.ToLower(account.Email), account.FirstName, account.LastName, hash, roleID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
