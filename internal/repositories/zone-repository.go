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

var zoneQuery = listQuery{
	From: "zone z",
	Columns: []string{
		"z.zone_id", "z.zone_name", "z.description", "z.active_status",
		"z.created_at", "z.created_by", "z.updated_at", "z.updated_by",
	},
}

var zoneListDef = db.ListDef{
	Columns: map[string]string{
		"zoneId":   "z.zone_id",
		"zoneName": "z.zone_name",
	},
	SearchColumns: []string{"z.zone_name", "z.description"},
	ActiveColumn:  "z.active_status",
	DefaultOrder:  "z.zone_name ASC",
	KeyColumn:     "z.zone_id",
}

// zipMatch is true for zone_zip rows that cover q: a stored zip inside the
// queried span, or a stored range that contains the whole span.
func zipMatch(alias string, q types.ZipQuery) sq.Sqlizer {
	return sq.Expr(fmt.Sprintf(
		"((%[1]s.zip_code IS NOT NULL AND %[1]s.zip_code::int BETWEEN ? AND ?) OR "+
			"(%[1]s.range_start IS NOT NULL AND %[1]s.range_start::int <= ? AND %[1]s.range_end::int >= ?))", alias),
		q.Start, q.End, q.Start, q.End)
}

type ZoneRepositoryInterface interface {
	GetZones(ctx context.Context, filter types.Filter) ([]entities.Zone, uint64, error)
	FindZone(ctx context.Context, id uint64) (*entities.Zone, error)
	FindByName(ctx context.Context, name string) (*entities.Zone, error)
	CreateZone(ctx context.Context, zone entities.Zone) (uint64, error)
	UpdateZone(ctx context.Context, zone entities.Zone) error
	DeleteZone(ctx context.Context, id uint64, actor *uint64) error

	AddZip(ctx context.Context, zip entities.ZoneZip) (*entities.ZoneZip, error)
	ListZips(ctx context.Context, zoneID uint64) ([]entities.ZoneZip, error)
	DeleteZip(ctx context.Context, zoneID, zoneZipID uint64) error
	ResolveZones(ctx context.Context, q types.ZipQuery) ([]entities.Zone, error)
}

type ZoneRepository struct {
	storage *pgxpool.Pool
}

func NewZoneRepository(storage *pgxpool.Pool) ZoneRepositoryInterface {
	return &ZoneRepository{storage: storage}
}

func scanZone(row pgx.Row) (*entities.Zone, error) {
	var z entities.Zone
	err := row.Scan(&z.ZoneID, &z.ZoneName, &z.Description, &z.ActiveStatus,
		&z.CreatedAt, &z.CreatedBy, &z.UpdatedAt, &z.UpdatedBy)
	if err != nil {
		return nil, readErr(err, "scan zone")
	}
	return &z, nil
}

func scanZoneZip(row pgx.Row) (*entities.ZoneZip, error) {
	var zz entities.ZoneZip
	err := row.Scan(&zz.ZoneZipID, &zz.ZoneID, &zz.ZipCode, &zz.RangeStart, &zz.RangeEnd, &zz.CreatedAt, &zz.CreatedBy)
	if err != nil {
		return nil, readErr(err, "scan zone zip")
	}
	return &zz, nil
}

func (r *ZoneRepository) GetZones(ctx context.Context, filter types.Filter) ([]entities.Zone, uint64, error) {
	return listPage(ctx, r.storage, zoneQuery, filter, zoneListDef, scanZone)
}

func (r *ZoneRepository) FindZone(ctx context.Context, id uint64) (*entities.Zone, error) {
	return findOne(ctx, r.storage, zoneQuery, sq.Eq{"z.zone_id": id}, scanZone)
}

func (r *ZoneRepository) FindByName(ctx context.Context, name string) (*entities.Zone, error) {
	return findOne(ctx, r.storage, zoneQuery, sq.Eq{"z.zone_name": name}, scanZone)
}

func (r *ZoneRepository) CreateZone(ctx context.Context, z entities.Zone) (uint64, error) {
	var id uint64
	err := r.storage.QueryRow(ctx, `
		INSERT INTO zone (zone_name, description, created_by, updated_by)
		VALUES ($1, $2, $3, $3)
		RETURNING zone_id`,
		z.ZoneName, z.Description, z.CreatedBy,
	).Scan(&id)
	if err != nil {
		return 0, writeErr(err, "insert zone", "zoneName", z.ZoneName)
	}
	return id, nil
}

func (r *ZoneRepository) UpdateZone(ctx context.Context, z entities.Zone) error {
	result, err := r.storage.Exec(ctx, `
		UPDATE zone
		SET zone_name = $1, description = $2, active_status = $3, updated_at = NOW(), updated_by = $4
		WHERE zone_id = $5`,
		z.ZoneName, z.Description, z.ActiveStatus, z.UpdatedBy, z.ZoneID,
	)
	if err != nil {
		return writeErr(err, "update zone", "zoneName", z.ZoneName)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ZoneRepository) DeleteZone(ctx context.Context, id uint64, actor *uint64) error {
	return softDelete(ctx, r.storage, "zone", "zone_id", id, actor)
}

func (r *ZoneRepository) AddZip(ctx context.Context, zz entities.ZoneZip) (*entities.ZoneZip, error) {
	return scanZoneZip(r.storage.QueryRow(ctx, `
		INSERT INTO zone_zip (zone_id, zip_code, range_start, range_end, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING zone_zip_id, zone_id, zip_code, range_start, range_end, created_at, created_by`,
		zz.ZoneID, zz.ZipCode, zz.RangeStart, zz.RangeEnd, zz.CreatedBy,
	))
}

func (r *ZoneRepository) ListZips(ctx context.Context, zoneID uint64) ([]entities.ZoneZip, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT zone_zip_id, zone_id, zip_code, range_start, range_end, created_at, created_by
		FROM zone_zip
		WHERE zone_id = $1
		ORDER BY COALESCE(zip_code, range_start), zone_zip_id`, zoneID)
	if err != nil {
		return nil, fmt.Errorf("list zone zips: %w", err)
	}
	defer rows.Close()

	zips := make([]entities.ZoneZip, 0)
	for rows.Next() {
		zz, err := scanZoneZip(rows)
		if err != nil {
			return nil, err
		}
		zips = append(zips, *zz)
	}
	return zips, rows.Err()
}

// DeleteZip physically removes a membership row.
func (r *ZoneRepository) DeleteZip(ctx context.Context, zoneID, zoneZipID uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM zone_zip WHERE zone_id = $1 AND zone_zip_id = $2`, zoneID, zoneZipID)
	if err != nil {
		return fmt.Errorf("delete zone zip: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ZoneRepository) ResolveZones(ctx context.Context, q types.ZipQuery) ([]entities.Zone, error) {
	query, args, err := zoneQuery.builder(zoneQuery.Columns...).
		Where(sq.Eq{"z.active_status": types.ActiveStatusYes}).
		Where(sq.Expr("EXISTS (SELECT 1 FROM zone_zip zz WHERE zz.zone_id = z.zone_id AND ?)", zipMatch("zz", q))).
		OrderBy("z.zone_name ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("resolve zones: %w", err)
	}
	defer rows.Close()

	zones := make([]entities.Zone, 0)
	for rows.Next() {
		z, err := scanZone(rows)
		if err != nil {
			return nil, err
		}
		zones = append(zones, *z)
	}
	return zones, rows.Err()
}
