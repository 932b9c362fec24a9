package repositories

import (
	"context"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"freight-admin/internal/entities"
	db "freight-admin/internal/infrastructure/bd"
	apperrors "freight-admin/pkg/errors"
	"freight-admin/pkg/types"
)

var entityAccessorialQuery = listQuery{
	From:  "entity_accessorial_map eam",
	Joins: []string{"accessorial ac ON ac.accessorial_id = eam.accessorial_id"},
	Columns: []string{
		"eam.entity_accessorial_id", "eam.owner_entity_id", "eam.accessorial_id", "COALESCE(ac.accessorial_name, '')",
		"eam.charge_type", "eam.charge_value", "eam.entity_id", "eam.note_thread_id", "eam.active_status",
		"eam.created_at", "eam.created_by", "eam.updated_at", "eam.updated_by",
	},
}

var entityAccessorialListDef = db.ListDef{
	Columns: map[string]string{
		"ownerEntityId":       "eam.owner_entity_id",
		"accessorialId":       "eam.accessorial_id",
		"entityAccessorialId": "eam.entity_accessorial_id",
		"chargeType":          "eam.charge_type",
		"chargeValue":         "eam.charge_value",
	},
	SearchColumns: []string{"ac.accessorial_name"},
	ActiveColumn:  "eam.active_status",
	DefaultOrder:  "eam.entity_accessorial_id ASC",
	KeyColumn:     "eam.entity_accessorial_id",
}

type EntityAccessorialRepositoryInterface interface {
	GetEntityAccessorials(ctx context.Context, filter types.Filter) ([]entities.EntityAccessorial, uint64, error)
	FindEntityAccessorial(ctx context.Context, id uint64) (*entities.EntityAccessorial, error)
	FindActivePairing(ctx context.Context, ownerEntityID, accessorialID uint64) (*entities.EntityAccessorial, error)
	CreateEntityAccessorialInTx(ctx context.Context, tx pgx.Tx, ea entities.EntityAccessorial) (uint64, error)
	UpdateCharge(ctx context.Context, ea entities.EntityAccessorial) error
	DeleteEntityAccessorial(ctx context.Context, id uint64, actor *uint64) error
}

type EntityAccessorialRepository struct {
	storage *pgxpool.Pool
}

func NewEntityAccessorialRepository(storage *pgxpool.Pool) EntityAccessorialRepositoryInterface {
	return &EntityAccessorialRepository{storage: storage}
}

func scanEntityAccessorial(row pgx.Row) (*entities.EntityAccessorial, error) {
	var ea entities.EntityAccessorial
	err := row.Scan(
		&ea.EntityAccessorialID, &ea.OwnerEntityID, &ea.AccessorialID, &ea.AccessorialName,
		&ea.ChargeType, &ea.ChargeValue, &ea.EntityID, &ea.NoteThreadID, &ea.ActiveStatus,
		&ea.CreatedAt, &ea.CreatedBy, &ea.UpdatedAt, &ea.UpdatedBy,
	)
	if err != nil {
		return nil, readErr(err, "scan entity accessorial")
	}
	return &ea, nil
}

func (r *EntityAccessorialRepository) GetEntityAccessorials(ctx context.Context, filter types.Filter) ([]entities.EntityAccessorial, uint64, error) {
	return listPage(ctx, r.storage, entityAccessorialQuery, filter, entityAccessorialListDef, scanEntityAccessorial)
}

func (r *EntityAccessorialRepository) FindEntityAccessorial(ctx context.Context, id uint64) (*entities.EntityAccessorial, error) {
	return findOne(ctx, r.storage, entityAccessorialQuery, sq.Eq{"eam.entity_accessorial_id": id}, scanEntityAccessorial)
}

func (r *EntityAccessorialRepository) FindActivePairing(ctx context.Context, ownerEntityID, accessorialID uint64) (*entities.EntityAccessorial, error) {
	return findOne(ctx, r.storage, entityAccessorialQuery, sq.Eq{
		"eam.owner_entity_id": ownerEntityID,
		"eam.accessorial_id":  accessorialID,
		"eam.active_status":   types.ActiveStatusYes,
	}, scanEntityAccessorial)
}

func (r *EntityAccessorialRepository) CreateEntityAccessorialInTx(ctx context.Context, tx pgx.Tx, ea entities.EntityAccessorial) (uint64, error) {
	var id uint64
	err := tx.QueryRow(ctx, `
		INSERT INTO entity_accessorial_map (owner_entity_id, accessorial_id, charge_type, charge_value,
		                                    entity_id, note_thread_id, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING entity_accessorial_id`,
		ea.OwnerEntityID, ea.AccessorialID, string(ea.ChargeType), ea.ChargeValue,
		ea.EntityID, ea.NoteThreadID, ea.CreatedBy,
	).Scan(&id)
	if err != nil {
		return 0, writeErr(err, "insert entity accessorial", "accessorialId", strconv.FormatUint(ea.AccessorialID, 10))
	}
	return id, nil
}

func (r *EntityAccessorialRepository) UpdateCharge(ctx context.Context, ea entities.EntityAccessorial) error {
	result, err := r.storage.Exec(ctx, `
		UPDATE entity_accessorial_map
		SET charge_type = $1, charge_value = $2, updated_at = NOW(), updated_by = $3
		WHERE entity_accessorial_id = $4 AND active_status = 'Y'`,
		string(ea.ChargeType), ea.ChargeValue, ea.UpdatedBy, ea.EntityAccessorialID,
	)
	if err != nil {
		return writeErr(err, "update entity accessorial", "accessorialId", strconv.FormatUint(ea.AccessorialID, 10))
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EntityAccessorialRepository) DeleteEntityAccessorial(ctx context.Context, id uint64, actor *uint64) error {
	return softDelete(ctx, r.storage, "entity_accessorial_map", "entity_accessorial_id", id, actor)
}
