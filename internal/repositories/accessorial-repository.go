package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"freight-admin/internal/entities"
	db "freight-admin/internal/infrastructure/bd"
	apperrors "freight-admin/pkg/errors"
	"freight-admin/pkg/types"
)

var accessorialQuery = listQuery{
	From: "accessorial ac",
	Columns: []string{
		"ac.accessorial_id", "ac.accessorial_name", "ac.description", "ac.default_charge_type", "ac.active_status",
		"ac.created_at", "ac.created_by", "ac.updated_at", "ac.updated_by",
	},
}

var accessorialListDef = db.ListDef{
	Columns: map[string]string{
		"accessorialId":   "ac.accessorial_id",
		"accessorialName": "ac.accessorial_name",
	},
	SearchColumns: []string{"ac.accessorial_name", "ac.description"},
	ActiveColumn:  "ac.active_status",
	DefaultOrder:  "ac.accessorial_name ASC",
	KeyColumn:     "ac.accessorial_id",
}

type AccessorialRepositoryInterface interface {
	GetAccessorials(ctx context.Context, filter types.Filter) ([]entities.Accessorial, uint64, error)
	FindAccessorial(ctx context.Context, id uint64) (*entities.Accessorial, error)
	FindByName(ctx context.Context, name string) (*entities.Accessorial, error)
	CreateAccessorial(ctx context.Context, a entities.Accessorial) (uint64, error)
	UpdateAccessorial(ctx context.Context, a entities.Accessorial) error
	DeleteAccessorial(ctx context.Context, id uint64, actor *uint64) error
}

type AccessorialRepository struct {
	storage *pgxpool.Pool
}

func NewAccessorialRepository(storage *pgxpool.Pool) AccessorialRepositoryInterface {
	return &AccessorialRepository{storage: storage}
}

func scanAccessorial(row pgx.Row) (*entities.Accessorial, error) {
	var a entities.Accessorial
	err := row.Scan(
		&a.AccessorialID, &a.AccessorialName, &a.Description, &a.DefaultChargeType, &a.ActiveStatus,
		&a.CreatedAt, &a.CreatedBy, &a.UpdatedAt, &a.UpdatedBy,
	)
	if err != nil {
		return nil, readErr(err, "scan accessorial")
	}
	return &a, nil
}

func (r *AccessorialRepository) GetAccessorials(ctx context.Context, filter types.Filter) ([]entities.Accessorial, uint64, error) {
	return listPage(ctx, r.storage, accessorialQuery, filter, accessorialListDef, scanAccessorial)
}

func (r *AccessorialRepository) FindAccessorial(ctx context.Context, id uint64) (*entities.Accessorial, error) {
	return findOne(ctx, r.storage, accessorialQuery, sq.Eq{"ac.accessorial_id": id}, scanAccessorial)
}

func (r *AccessorialRepository) FindByName(ctx context.Context, name string) (*entities.Accessorial, error) {
	return findOne(ctx, r.storage, accessorialQuery, sq.Eq{"ac.accessorial_name": name}, scanAccessorial)
}

func (r *AccessorialRepository) CreateAccessorial(ctx context.Context, a entities.Accessorial) (uint64, error) {
	var id uint64
	err := r.storage.QueryRow(ctx, `
		INSERT INTO accessorial (accessorial_name, description, default_charge_type, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING accessorial_id`,
		a.AccessorialName, a.Description, string(a.DefaultChargeType), a.CreatedBy,
	).Scan(&id)
	if err != nil {
		return 0, writeErr(err, "insert accessorial", "accessorialName", a.AccessorialName)
	}
	return id, nil
}

func (r *AccessorialRepository) UpdateAccessorial(ctx context.Context, a entities.Accessorial) error {
	result, err := r.storage.Exec(ctx, `
		UPDATE accessorial
		SET accessorial_name = $1, description = $2, default_charge_type = $3,
		    active_status = $4, updated_at = NOW(), updated_by = $5
		WHERE accessorial_id = $6`,
		a.AccessorialName, a.Description, string(a.DefaultChargeType), a.ActiveStatus, a.UpdatedBy, a.AccessorialID,
	)
	if err != nil {
		return writeErr(err, "update accessorial", "accessorialName", a.AccessorialName)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *AccessorialRepository) DeleteAccessorial(ctx context.Context, id uint64, actor *uint64) error {
	return softDelete(ctx, r.storage, "accessorial", "accessorial_id", id, actor)
}
