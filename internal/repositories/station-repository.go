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

var stationQuery = listQuery{
	From: "station s",
	Columns: []string{
		"s.station_id", "s.customer_id", "s.station_name", "s.station_code", "s.phone", "s.email",
		"s.entity_id", "s.note_thread_id", "s.active_status",
		"s.created_at", "s.created_by", "s.updated_at", "s.updated_by",
	},
}

var stationListDef = db.ListDef{
	Columns: map[string]string{
		"stationId":   "s.station_id",
		"customerId":  "s.customer_id",
		"stationName": "s.station_name",
		"stationCode": "s.station_code",
		"createdAt":   "s.created_at",
	},
	SearchColumns: []string{"s.station_name", "s.station_code"},
	ActiveColumn:  "s.active_status",
	DefaultOrder:  "s.station_id ASC",
	KeyColumn:     "s.station_id",
}

type StationRepositoryInterface interface {
	GetStations(ctx context.Context, filter types.Filter) ([]entities.Station, uint64, error)
	FindStation(ctx context.Context, id uint64) (*entities.Station, error)
	CreateStationInTx(ctx context.Context, tx pgx.Tx, station entities.Station) (uint64, error)
	UpdateStationInTx(ctx context.Context, tx pgx.Tx, station entities.Station) error
	DeleteStation(ctx context.Context, id uint64, actor *uint64) error
}

type StationRepository struct {
	storage *pgxpool.Pool
}

func NewStationRepository(storage *pgxpool.Pool) StationRepositoryInterface {
	return &StationRepository{storage: storage}
}

func scanStation(row pgx.Row) (*entities.Station, error) {
	var s entities.Station
	err := row.Scan(
		&s.StationID, &s.CustomerID, &s.StationName, &s.StationCode, &s.Phone, &s.Email,
		&s.EntityID, &s.NoteThreadID, &s.ActiveStatus,
		&s.CreatedAt, &s.CreatedBy, &s.UpdatedAt, &s.UpdatedBy,
	)
	if err != nil {
		return nil, readErr(err, "scan station")
	}
	return &s, nil
}

func (r *StationRepository) GetStations(ctx context.Context, filter types.Filter) ([]entities.Station, uint64, error) {
	return listPage(ctx, r.storage, stationQuery, filter, stationListDef, scanStation)
}

func (r *StationRepository) FindStation(ctx context.Context, id uint64) (*entities.Station, error) {
	return findOne(ctx, r.storage, stationQuery, sq.Eq{"s.station_id": id}, scanStation)
}

func (r *StationRepository) CreateStationInTx(ctx context.Context, tx pgx.Tx, s entities.Station) (uint64, error) {
	var id uint64
	err := tx.QueryRow(ctx, `
		INSERT INTO station (customer_id, station_name, station_code, phone, email,
		                     entity_id, note_thread_id, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING station_id`,
		s.CustomerID, s.StationName, s.StationCode, s.Phone, s.Email,
		s.EntityID, s.NoteThreadID, s.CreatedBy,
	).Scan(&id)
	if err != nil {
		return 0, writeErr(err, "insert station", "stationCode", s.StationCode)
	}
	return id, nil
}

func (r *StationRepository) UpdateStationInTx(ctx context.Context, tx pgx.Tx, s entities.Station) error {
	result, err := tx.Exec(ctx, `
		UPDATE station
		SET station_name = $1, station_code = $2, phone = $3, email = $4,
		    active_status = $5, updated_at = NOW(), updated_by = $6
		WHERE station_id = $7`,
		s.StationName, s.StationCode, s.Phone, s.Email, s.ActiveStatus, s.UpdatedBy, s.StationID,
	)
	if err != nil {
		return writeErr(err, "update station", "stationCode", s.StationCode)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *StationRepository) DeleteStation(ctx context.Context, id uint64, actor *uint64) error {
	return softDelete(ctx, r.storage, "station", "station_id", id, actor)
}
