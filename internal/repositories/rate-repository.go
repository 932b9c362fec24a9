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

var transportRateQuery = listQuery{
	From: "customer_rate r",
	Joins: []string{
		"zone oz ON oz.zone_id = r.origin_zone_id",
		"zone dz ON dz.zone_id = r.destination_zone_id",
	},
	Columns: []string{
		"r.rate_id", "r.origin_zone_id", "COALESCE(oz.zone_name, '')", "r.destination_zone_id", "COALESCE(dz.zone_name, '')",
		"r.active_status", "r.expiry_date",
		"r.created_at", "r.created_by", "r.updated_at", "r.updated_by",
	},
}

// Transport rates always page by rate_id ascending.
var transportRateListDef = db.ListDef{
	Columns: map[string]string{
		"originZoneId":      "r.origin_zone_id",
		"destinationZoneId": "r.destination_zone_id",
	},
	SearchColumns: []string{"oz.zone_name", "dz.zone_name"},
	ActiveColumn:  "r.active_status",
	DefaultOrder:  "r.rate_id ASC",
	KeyColumn:     "r.rate_id",
}

var warehouseRateQuery = listQuery{
	From: "customer_rate_warehouse w",
	Columns: []string{
		"w.rate_id", "w.min_rate", "w.rate_per_pound", "w.max_rate", "w.department", "w.warehouse", "w.active_status",
		"w.created_at", "w.created_by", "w.updated_at", "w.updated_by",
	},
}

var warehouseRateListDef = db.ListDef{
	Columns: map[string]string{
		"rateId":     "w.rate_id",
		"department": "w.department",
		"warehouse":  "w.warehouse",
	},
	SearchColumns: []string{"w.department", "w.warehouse"},
	ActiveColumn:  "w.active_status",
	DefaultOrder:  "w.rate_id ASC",
	KeyColumn:     "w.rate_id",
}

// TransportRateSearch narrows a transport rate list to lanes whose origin
// and/or destination zone covers the given zips.
type TransportRateSearch struct {
	Origin      *types.ZipQuery
	Destination *types.ZipQuery
}

type RateRepositoryInterface interface {
	GetTransportRates(ctx context.Context, filter types.Filter, search TransportRateSearch) ([]entities.CustomerRate, uint64, error)
	FindTransportRate(ctx context.Context, id uint64) (*entities.CustomerRate, error)
	CreateTransportRateInTx(ctx context.Context, tx pgx.Tx, rate entities.CustomerRate) (uint64, error)
	UpdateTransportRateInTx(ctx context.Context, tx pgx.Tx, rate entities.CustomerRate) error
	ReplaceDetailsInTx(ctx context.Context, tx pgx.Tx, rateID uint64, details []entities.CustomerRateDetail) error
	DeleteTransportRate(ctx context.Context, id uint64, actor *uint64) error

	GetWarehouseRates(ctx context.Context, filter types.Filter) ([]entities.CustomerRateWarehouse, uint64, error)
	FindWarehouseRate(ctx context.Context, id uint64) (*entities.CustomerRateWarehouse, error)
	CreateWarehouseRate(ctx context.Context, rate entities.CustomerRateWarehouse) (uint64, error)
	UpdateWarehouseRate(ctx context.Context, rate entities.CustomerRateWarehouse) error
	DeleteWarehouseRate(ctx context.Context, id uint64, actor *uint64) error
}

type RateRepository struct {
	storage *pgxpool.Pool
}

func NewRateRepository(storage *pgxpool.Pool) RateRepositoryInterface {
	return &RateRepository{storage: storage}
}

func scanTransportRate(row pgx.Row) (*entities.CustomerRate, error) {
	var r entities.CustomerRate
	err := row.Scan(
		&r.RateID, &r.OriginZoneID, &r.OriginZoneName, &r.DestinationZoneID, &r.DestinationZoneName,
		&r.ActiveStatus, &r.ExpiryDate,
		&r.CreatedAt, &r.CreatedBy, &r.UpdatedAt, &r.UpdatedBy,
	)
	if err != nil {
		return nil, readErr(err, "scan transport rate")
	}
	return &r, nil
}

func scanWarehouseRate(row pgx.Row) (*entities.CustomerRateWarehouse, error) {
	var w entities.CustomerRateWarehouse
	err := row.Scan(
		&w.RateID, &w.MinRate, &w.RatePerPound, &w.MaxRate, &w.Department, &w.Warehouse, &w.ActiveStatus,
		&w.CreatedAt, &w.CreatedBy, &w.UpdatedAt, &w.UpdatedBy,
	)
	if err != nil {
		return nil, readErr(err, "scan warehouse rate")
	}
	return &w, nil
}

func (r *RateRepository) GetTransportRates(ctx context.Context, filter types.Filter, search TransportRateSearch) ([]entities.CustomerRate, uint64, error) {
	q := transportRateQuery
	if search.Origin != nil {
		q.Where = append(q.Where, sq.Expr(
			"r.origin_zone_id IN (SELECT zz.zone_id FROM zone_zip zz WHERE ?)", zipMatch("zz", *search.Origin)))
	}
	if search.Destination != nil {
		q.Where = append(q.Where, sq.Expr(
			"r.destination_zone_id IN (SELECT zz.zone_id FROM zone_zip zz WHERE ?)", zipMatch("zz", *search.Destination)))
	}

	// the rate list has no caller-selectable sort
	filter.SortBy = ""
	rates, total, err := listPage(ctx, r.storage, q, filter, transportRateListDef, scanTransportRate)
	if err != nil || len(rates) == 0 {
		return rates, total, err
	}

	ids := make([]uint64, len(rates))
	for i := range rates {
		ids[i] = rates[i].RateID
	}
	details, err := r.detailsFor(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	for i := range rates {
		rates[i].Details = details[rates[i].RateID]
		if rates[i].Details == nil {
			rates[i].Details = []entities.CustomerRateDetail{}
		}
	}
	return rates, total, nil
}

func (r *RateRepository) FindTransportRate(ctx context.Context, id uint64) (*entities.CustomerRate, error) {
	rate, err := findOne(ctx, r.storage, transportRateQuery, sq.Eq{"r.rate_id": id}, scanTransportRate)
	if err != nil {
		return nil, err
	}
	details, err := r.detailsFor(ctx, []uint64{id})
	if err != nil {
		return nil, err
	}
	rate.Details = details[id]
	if rate.Details == nil {
		rate.Details = []entities.CustomerRateDetail{}
	}
	return rate, nil
}

func (r *RateRepository) detailsFor(ctx context.Context, rateIDs []uint64) (map[uint64][]entities.CustomerRateDetail, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT rate_detail_id, rate_id, rate_field, charge_value, per_unit_flag
		FROM customer_rate_detail
		WHERE rate_id = ANY($1)
		ORDER BY rate_id, rate_detail_id`, rateIDs)
	if err != nil {
		return nil, fmt.Errorf("list rate details: %w", err)
	}
	defer rows.Close()

	byRate := make(map[uint64][]entities.CustomerRateDetail, len(rateIDs))
	for rows.Next() {
		var d entities.CustomerRateDetail
		if err := rows.Scan(&d.RateDetailID, &d.RateID, &d.RateField, &d.ChargeValue, &d.PerUnitFlag); err != nil {
			return nil, fmt.Errorf("scan rate detail: %w", err)
		}
		byRate[d.RateID] = append(byRate[d.RateID], d)
	}
	return byRate, rows.Err()
}

func (r *RateRepository) CreateTransportRateInTx(ctx context.Context, tx pgx.Tx, rate entities.CustomerRate) (uint64, error) {
	var id uint64
	err := tx.QueryRow(ctx, `
		INSERT INTO customer_rate (origin_zone_id, destination_zone_id, expiry_date, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING rate_id`,
		rate.OriginZoneID, rate.DestinationZoneID, rate.ExpiryDate, rate.CreatedBy,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert transport rate: %w", err)
	}
	return id, nil
}

func (r *RateRepository) UpdateTransportRateInTx(ctx context.Context, tx pgx.Tx, rate entities.CustomerRate) error {
	result, err := tx.Exec(ctx, `
		UPDATE customer_rate
		SET origin_zone_id = $1, destination_zone_id = $2, expiry_date = $3,
		    active_status = $4, updated_at = NOW(), updated_by = $5
		WHERE rate_id = $6`,
		rate.OriginZoneID, rate.DestinationZoneID, rate.ExpiryDate, rate.ActiveStatus, rate.UpdatedBy, rate.RateID,
	)
	if err != nil {
		return fmt.Errorf("update transport rate: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ReplaceDetailsInTx swaps the whole tier table of a rate.
func (r *RateRepository) ReplaceDetailsInTx(ctx context.Context, tx pgx.Tx, rateID uint64, details []entities.CustomerRateDetail) error {
	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM customer_rate_detail WHERE rate_id = $1`, rateID)
	for _, d := range details {
		batch.Queue(`
			INSERT INTO customer_rate_detail (rate_id, rate_field, charge_value, per_unit_flag)
			VALUES ($1, $2, $3, $4)`,
			rateID, d.RateField, d.ChargeValue, d.PerUnitFlag,
		)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			return writeErr(err, "replace rate details", "rateField", fieldAt(details, i-1))
		}
	}
	return nil
}

func fieldAt(details []entities.CustomerRateDetail, i int) string {
	if i < 0 || i >= len(details) {
		return ""
	}
	return details[i].RateField
}

func (r *RateRepository) DeleteTransportRate(ctx context.Context, id uint64, actor *uint64) error {
	return softDelete(ctx, r.storage, "customer_rate", "rate_id", id, actor)
}

func (r *RateRepository) GetWarehouseRates(ctx context.Context, filter types.Filter) ([]entities.CustomerRateWarehouse, uint64, error) {
	return listPage(ctx, r.storage, warehouseRateQuery, filter, warehouseRateListDef, scanWarehouseRate)
}

func (r *RateRepository) FindWarehouseRate(ctx context.Context, id uint64) (*entities.CustomerRateWarehouse, error) {
	return findOne(ctx, r.storage, warehouseRateQuery, sq.Eq{"w.rate_id": id}, scanWarehouseRate)
}

func (r *RateRepository) CreateWarehouseRate(ctx context.Context, w entities.CustomerRateWarehouse) (uint64, error) {
	var id uint64
	err := r.storage.QueryRow(ctx, `
		INSERT INTO customer_rate_warehouse (min_rate, rate_per_pound, max_rate, department, warehouse, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING rate_id`,
		w.MinRate, w.RatePerPound, w.MaxRate, w.Department, w.Warehouse, w.CreatedBy,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert warehouse rate: %w", err)
	}
	return id, nil
}

func (r *RateRepository) UpdateWarehouseRate(ctx context.Context, w entities.CustomerRateWarehouse) error {
	result, err := r.storage.Exec(ctx, `
		UPDATE customer_rate_warehouse
		SET min_rate = $1, rate_per_pound = $2, max_rate = $3, department = $4, warehouse = $5,
		    active_status = $6, updated_at = NOW(), updated_by = $7
		WHERE rate_id = $8`,
		w.MinRate, w.RatePerPound, w.MaxRate, w.Department, w.Warehouse, w.ActiveStatus, w.UpdatedBy, w.RateID,
	)
	if err != nil {
		return fmt.Errorf("update warehouse rate: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *RateRepository) DeleteWarehouseRate(ctx context.Context, id uint64, actor *uint64) error {
	return softDelete(ctx, r.storage, "customer_rate_warehouse", "rate_id", id, actor)
}
