package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"freight-admin/internal/entities"
	apperrors "freight-admin/pkg/errors"
)

const entityAddressSelect = `
	SELECT m.entity_address_id, m.entity_id, m.address_role,
	       a.address_id, a.line1, a.line2, a.city, a.state, a.zip_code,
	       a.created_at, a.created_by, a.updated_at, a.updated_by
	FROM entity_address_map m
	JOIN address a ON a.address_id = m.address_id`

type AddressRepositoryInterface interface {
	AttachAddressesInTx(ctx context.Context, tx pgx.Tx, entityID uint64, addresses []entities.EntityAddress, actor *uint64) ([]uint64, error)
	UpdateAddressInTx(ctx context.Context, tx pgx.Tx, entityID uint64, address entities.EntityAddress, actor *uint64) error
	UpdateRole(ctx context.Context, entityAddressID uint64, role entities.AddressRole) error
	FindEntityAddress(ctx context.Context, entityAddressID uint64) (*entities.EntityAddress, error)
	ListByEntity(ctx context.Context, entityID uint64) ([]entities.EntityAddress, error)
}

type AddressRepository struct {
	storage *pgxpool.Pool
}

func NewAddressRepository(storage *pgxpool.Pool) AddressRepositoryInterface {
	return &AddressRepository{storage: storage}
}

func scanEntityAddress(row pgx.Row) (*entities.EntityAddress, error) {
	var ea entities.EntityAddress
	err := row.Scan(
		&ea.EntityAddressID, &ea.EntityID, &ea.AddressRole,
		&ea.AddressID, &ea.Line1, &ea.Line2, &ea.City, &ea.State, &ea.ZipCode,
		&ea.CreatedAt, &ea.CreatedBy, &ea.UpdatedAt, &ea.UpdatedBy,
	)
	if err != nil {
		return nil, readErr(err, "scan entity address")
	}
	return &ea, nil
}

// AttachAddressesInTx inserts every address and its map row in one batch.
// The addresses do not depend on each other so they share a round trip.
func (r *AddressRepository) AttachAddressesInTx(ctx context.Context, tx pgx.Tx, entityID uint64, addresses []entities.EntityAddress, actor *uint64) ([]uint64, error) {
	if len(addresses) == 0 {
		return nil, nil
	}

	batch := &pgx.Batch{}
	for _, a := range addresses {
		batch.Queue(`
			WITH a AS (
				INSERT INTO address (line1, line2, city, state, zip_code, created_by, updated_by)
				VALUES ($1, $2, $3, $4, $5, $6, $6)
				RETURNING address_id
			)
			INSERT INTO entity_address_map (entity_id, address_id, address_role)
			SELECT $7, address_id, $8 FROM a
			RETURNING entity_address_id`,
			a.Line1, a.Line2, a.City, a.State, a.ZipCode, actor, entityID, string(a.AddressRole),
		)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	ids := make([]uint64, 0, len(addresses))
	for range addresses {
		var id uint64
		if err := results.QueryRow().Scan(&id); err != nil {
			return nil, fmt.Errorf("insert address: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// UpdateAddressInTx rewrites the content and role of an address that is
// already attached to entityID.
func (r *AddressRepository) UpdateAddressInTx(ctx context.Context, tx pgx.Tx, entityID uint64, address entities.EntityAddress, actor *uint64) error {
	result, err := tx.Exec(ctx, `
		UPDATE address a
		SET line1 = $1, line2 = $2, city = $3, state = $4, zip_code = $5,
		    updated_at = NOW(), updated_by = $6
		FROM entity_address_map m
		WHERE m.entity_address_id = $7 AND m.entity_id = $8 AND a.address_id = m.address_id`,
		address.Line1, address.Line2, address.City, address.State, address.ZipCode,
		actor, address.EntityAddressID, entityID,
	)
	if err != nil {
		return fmt.Errorf("update address: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if address.AddressRole == "" {
		return nil
	}
	_, err = tx.Exec(ctx,
		`UPDATE entity_address_map SET address_role = $1, updated_at = NOW() WHERE entity_address_id = $2`,
		string(address.AddressRole), address.EntityAddressID,
	)
	if err != nil {
		return fmt.Errorf("update address role: %w", err)
	}
	return nil
}

func (r *AddressRepository) UpdateRole(ctx context.Context, entityAddressID uint64, role entities.AddressRole) error {
	result, err := r.storage.Exec(ctx,
		`UPDATE entity_address_map SET address_role = $1, updated_at = NOW() WHERE entity_address_id = $2`,
		string(role), entityAddressID,
	)
	if err != nil {
		return fmt.Errorf("update address role: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *AddressRepository) FindEntityAddress(ctx context.Context, entityAddressID uint64) (*entities.EntityAddress, error) {
	return scanEntityAddress(r.storage.QueryRow(ctx, entityAddressSelect+` WHERE m.entity_address_id = $1`, entityAddressID))
}

func (r *AddressRepository) ListByEntity(ctx context.Context, entityID uint64) ([]entities.EntityAddress, error) {
	rows, err := r.storage.Query(ctx, entityAddressSelect+` WHERE m.entity_id = $1 ORDER BY m.entity_address_id`, entityID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer rows.Close()

	addresses := make([]entities.EntityAddress, 0)
	for rows.Next() {
		ea, err := scanEntityAddress(rows)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, *ea)
	}
	return addresses, rows.Err()
}
