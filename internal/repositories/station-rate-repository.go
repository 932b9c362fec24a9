package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"freight-admin/internal/entities"
	apperrors "freight-admin/pkg/errors"
	"freight-admin/pkg/types"
)

type StationRateRepositoryInterface interface {
	RateExists(ctx context.Context, rateType entities.RateType, rateID uint64) (bool, error)
	CreateStationRate(ctx context.Context, sr entities.StationRate) (*entities.StationRate, error)
	ListStationRates(ctx context.Context, stationID uint64) ([]entities.StationRate, error)
	DeleteStationRate(ctx context.Context, stationID, stationRateID uint64, actor *uint64) error
}

type StationRateRepository struct {
	storage *pgxpool.Pool
}

func NewStationRateRepository(storage *pgxpool.Pool) StationRateRepositoryInterface {
	return &StationRateRepository{storage: storage}
}

// RateExists looks the id up in the table the discriminator names.
func (r *StationRateRepository) RateExists(ctx context.Context, rateType entities.RateType, rateID uint64) (bool, error) {
	var query string
	switch rateType {
	case entities.RateTypeTransport:
		query = `SELECT EXISTS (SELECT 1 FROM customer_rate WHERE rate_id = $1 AND active_status = 'Y')`
	case entities.RateTypeWarehouse:
		query = `SELECT EXISTS (SELECT 1 FROM customer_rate_warehouse WHERE rate_id = $1 AND active_status = 'Y')`
	default:
		return false, apperrors.NewInvalidInputError("unknown rate type %q", rateType)
	}

	var exists bool
	if err := r.storage.QueryRow(ctx, query, rateID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check rate: %w", err)
	}
	return exists, nil
}

func (r *StationRateRepository) CreateStationRate(ctx context.Context, sr entities.StationRate) (*entities.StationRate, error) {
	out := sr
	err := r.storage.QueryRow(ctx, `
		INSERT INTO station_rate_map (station_id, rate_id, rate_type, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING station_rate_id, active_status, created_at, updated_at`,
		sr.StationID, sr.RateID, string(sr.RateType), sr.CreatedBy,
	).Scan(&out.StationRateID, &out.ActiveStatus, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert station rate: %w", err)
	}
	out.UpdatedBy = sr.CreatedBy
	return &out, nil
}

func (r *StationRateRepository) ListStationRates(ctx context.Context, stationID uint64) ([]entities.StationRate, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT station_rate_id, station_id, rate_id, rate_type, active_status,
		       created_at, created_by, updated_at, updated_by
		FROM station_rate_map
		WHERE station_id = $1 AND active_status = $2
		ORDER BY station_rate_id`, stationID, types.ActiveStatusYes)
	if err != nil {
		return nil, fmt.Errorf("list station rates: %w", err)
	}
	defer rows.Close()

	out := make([]entities.StationRate, 0)
	for rows.Next() {
		var sr entities.StationRate
		if err := rows.Scan(&sr.StationRateID, &sr.StationID, &sr.RateID, &sr.RateType, &sr.ActiveStatus,
			&sr.CreatedAt, &sr.CreatedBy, &sr.UpdatedAt, &sr.UpdatedBy); err != nil {
			return nil, fmt.Errorf("scan station rate: %w", err)
		}
		out = append(out, sr)
	}
	return out, rows.Err()
}

func (r *StationRateRepository) DeleteStationRate(ctx context.Context, stationID, stationRateID uint64, actor *uint64) error {
	result, err := r.storage.Exec(ctx, `
		UPDATE station_rate_map
		SET active_status = 'N', updated_at = NOW(), updated_by = $1
		WHERE station_rate_id = $2 AND station_id = $3 AND active_status = 'Y'`,
		actor, stationRateID, stationID,
	)
	if err != nil {
		return fmt.Errorf("delete station rate: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
