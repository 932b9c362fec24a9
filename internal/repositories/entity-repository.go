package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"freight-admin/internal/entities"
)

type EntityRepositoryInterface interface {
	CreateEntityInTx(ctx context.Context, tx pgx.Tx, entityType entities.EntityType, name string) (uint64, error)
	FindEntity(ctx context.Context, id uint64) (*entities.Entity, error)
}

type EntityRepository struct {
	storage *pgxpool.Pool
}

func NewEntityRepository(storage *pgxpool.Pool) EntityRepositoryInterface {
	return &EntityRepository{storage: storage}
}

func (r *EntityRepository) CreateEntityInTx(ctx context.Context, tx pgx.Tx, entityType entities.EntityType, name string) (uint64, error) {
	var id uint64
	err := tx.QueryRow(ctx,
		`INSERT INTO entity (entity_type, entity_name) VALUES ($1, $2) RETURNING entity_id`,
		string(entityType), name,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert entity: %w", err)
	}
	return id, nil
}

func (r *EntityRepository) FindEntity(ctx context.Context, id uint64) (*entities.Entity, error) {
	var e entities.Entity
	err := r.storage.QueryRow(ctx,
		`SELECT entity_id, entity_type, entity_name, created_at FROM entity WHERE entity_id = $1`, id,
	).Scan(&e.EntityID, &e.EntityType, &e.EntityName, &e.CreatedAt)
	if err != nil {
		return nil, readErr(err, "find entity")
	}
	return &e, nil
}
