package seeders

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// AdminAccount is the bootstrap user created by SeedAdmin.
type AdminAccount struct {
	UserName  string
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// SeedCatalog upserts every permission known to the code. Rows already
// created by migrations are left untouched.
func SeedCatalog(ctx context.Context, db *pgxpool.Pool, logger *zap.Logger) error {
	logger.Info("seeding permission catalog")
	inserted, err := seedPermissions(ctx, db)
	if err != nil {
		return fmt.Errorf("permissions: %w", err)
	}
	logger.Info("permission catalog ready", zap.Int64("inserted", inserted))
	return nil
}

// SeedAdmin creates the ADMIN role holding every permission and the
// bootstrap admin user.
func SeedAdmin(ctx context.Context, db *pgxpool.Pool, account AdminAccount, logger *zap.Logger) error {
	logger.Info("seeding admin role and user")

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	roleID, err := seedAdminRole(ctx, tx)
	if err != nil {
		return fmt.Errorf("admin role: %w", err)
	}
	created, err := seedAdminUser(ctx, tx, roleID, account)
	if err != nil {
		return fmt.Errorf("admin user: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}

	if created {
		logger.Info("admin user created", zap.String("userName", account.UserName), zap.Uint64("roleId", roleID))
	} else {
		logger.Info("admin user already exists", zap.String("userName", account.UserName))
	}
	return nil
}
