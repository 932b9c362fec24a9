package repositories

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"freight-admin/internal/entities"
	db "freight-admin/internal/infrastructure/bd"
	apperrors "freight-admin/pkg/errors"
	"freight-admin/pkg/types"
)

var userQuery = listQuery{
	From:  "app_user u",
	Joins: []string{"role r ON r.role_id = u.role_id"},
	Columns: []string{
		"u.user_id", "u.user_name", "u.email", "u.first_name", "u.last_name", "u.password_hash",
		"u.role_id", "COALESCE(r.role_name, '')", "u.active_status",
		"u.created_at", "u.created_by", "u.updated_at", "u.updated_by",
	},
}

var userListDef = db.ListDef{
	Columns: map[string]string{
		"userId":    "u.user_id",
		"userName":  "u.user_name",
		"email":     "u.email",
		"lastName":  "u.last_name",
		"roleId":    "u.role_id",
		"createdAt": "u.created_at",
	},
	SearchColumns: []string{"u.user_name", "u.email", "u.first_name", "u.last_name"},
	ActiveColumn:  "u.active_status",
	DefaultOrder:  "u.user_id ASC",
	KeyColumn:     "u.user_id",
}

type UserRepositoryInterface interface {
	GetUsers(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error)
	FindUser(ctx context.Context, id uint64) (*entities.User, error)
	FindByUserName(ctx context.Context, userName string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	CreateUser(ctx context.Context, user entities.User) (uint64, error)
	UpdateUser(ctx context.Context, user entities.User) error
	UpdatePassword(ctx context.Context, userID uint64, passwordHash string, actor *uint64) error
	DeleteUser(ctx context.Context, id uint64, actor *uint64) error
}

type UserRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	err := row.Scan(
		&u.UserID, &u.UserName, &u.Email, &u.FirstName, &u.LastName, &u.PasswordHash,
		&u.RoleID, &u.RoleName, &u.ActiveStatus,
		&u.CreatedAt, &u.CreatedBy, &u.UpdatedAt, &u.UpdatedBy,
	)
	if err != nil {
		return nil, readErr(err, "scan user")
	}
	return &u, nil
}

func (r *UserRepository) GetUsers(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error) {
	return listPage(ctx, r.storage, userQuery, filter, userListDef, scanUser)
}

func (r *UserRepository) FindUser(ctx context.Context, id uint64) (*entities.User, error) {
	return findOne(ctx, r.storage, userQuery, sq.Eq{"u.user_id": id}, scanUser)
}

// FindByUserName matches case-insensitively.
func (r *UserRepository) FindByUserName(ctx context.Context, userName string) (*entities.User, error) {
	return findOne(ctx, r.storage, userQuery, sq.Expr("LOWER(u.user_name) = ?", strings.ToLower(userName)), scanUser)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return findOne(ctx, r.storage, userQuery, sq.Expr("LOWER(u.email) = ?", strings.ToLower(email)), scanUser)
}

func (r *UserRepository) CreateUser(ctx context.Context, u entities.User) (uint64, error) {
	var id uint64
	err := r.storage.QueryRow(ctx, `
		INSERT INTO app_user (user_name, email, first_name, last_name, password_hash, role_id, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING user_id`,
		u.UserName, u.Email, u.FirstName, u.LastName, u.PasswordHash, u.RoleID, u.CreatedBy,
	).Scan(&id)
	if err != nil {
		return 0, userWriteErr(err, "insert user", u)
	}
	return id, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, u entities.User) error {
	result, err := r.storage.Exec(ctx, `
		UPDATE app_user
		SET user_name = $1, email = $2, first_name = $3, last_name = $4, role_id = $5,
		    active_status = $6, updated_at = NOW(), updated_by = $7
		WHERE user_id = $8`,
		u.UserName, u.Email, u.FirstName, u.LastName, u.RoleID, u.ActiveStatus, u.UpdatedBy, u.UserID,
	)
	if err != nil {
		return userWriteErr(err, "update user", u)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID uint64, passwordHash string, actor *uint64) error {
	result, err := r.storage.Exec(ctx,
		`UPDATE app_user SET password_hash = $1, updated_at = NOW(), updated_by = $2 WHERE user_id = $3`,
		passwordHash, actor, userID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id uint64, actor *uint64) error {
	return softDelete(ctx, r.storage, "app_user", "user_id", id, actor)
}

// userWriteErr reports which of the two unique fields collided.
func userWriteErr(err error, op string, u entities.User) error {
	if strings.Contains(violatedConstraint(err), "email") {
		return writeErr(err, op, "email", u.Email)
	}
	return writeErr(err, op, "userName", u.UserName)
}
