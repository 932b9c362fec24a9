package services

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"freight-admin/internal/entities"
	"freight-admin/pkg/types"
)

const (
	exportPageSize = 100
	exportMaxRows  = 50000
)

var (
	customerExportHeaders = []interface{}{"Customer ID", "Customer Name", "RM Account", "Phone", "Email", "Website", "Active", "Created At"}
	transportRateHeaders  = []interface{}{"Rate ID", "Origin Zone", "Destination Zone", "Active", "Expiry Date", "Rate Field", "Charge Value", "Per Unit"}
)

type ExportServiceInterface interface {
	ExportCustomers(ctx context.Context, filter types.Filter) (*excelize.File, error)
	ExportTransportRates(ctx context.Context, filter types.Filter, q TransportRateQuery) (*excelize.File, error)
}

type ExportService struct {
	customerService CustomerServiceInterface
	rateService     RateServiceInterface
	logger          *zap.Logger
}

func NewExportService(customerService CustomerServiceInterface, rateService RateServiceInterface, logger *zap.Logger) ExportServiceInterface {
	return &ExportService{customerService: customerService, rateService: rateService, logger: logger}
}

// collect walks every page of a list query with the caller's filters.
func collect[T any](ctx context.Context, filter types.Filter, fetch func(context.Context, types.Filter) ([]T, uint64, error)) ([]T, error) {
	filter.PageSize = exportPageSize
	var out []T
	for page := 1; ; page++ {
		filter.Page = page
		items, total, err := fetch(ctx, filter)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
		if len(items) == 0 || uint64(len(out)) >= total || len(out) >= exportMaxRows {
			return out, nil
		}
	}
}

// newSheet returns a workbook with one sheet and a bold header row. The
// workbook is closed again when any step fails.
func newSheet(name string, headers []interface{}) (_ *excelize.File, err error) {
	f := excelize.NewFile()
	defer closeOnError(f, &err)

	if err := f.SetSheetName("Sheet1", name); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(name, "A1", &headers); err != nil {
		return nil, err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(name, "A1", last, style); err != nil {
		return nil, err
	}
	return f, nil
}

func closeOnError(f *excelize.File, err *error) {
	if *err != nil {
		_ = f.Close()
	}
}

func setColWidths(f *excelize.File, sheet string, widths map[string]float64) error {
	for col, w := range widths {
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return fmt.Errorf("column %s width: %w", col, err)
		}
	}
	return nil
}

func (s *ExportService) ExportCustomers(ctx context.Context, filter types.Filter) (_ *excelize.File, err error) {
	customers, err := collect(ctx, filter, s.customerService.GetCustomers)
	if err != nil {
		return nil, err
	}

	const sheet = "Customers"
	f, err := newSheet(sheet, customerExportHeaders)
	if err != nil {
		return nil, err
	}
	defer closeOnError(f, &err)

	for i, c := range customers {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			c.CustomerID, c.CustomerName, c.RmAccountNumber,
			c.Phone.String, c.Email.String, c.Website.String,
			c.ActiveStatus, c.CreatedAt.Format("2006-01-02 15:04"),
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}
	if err := setColWidths(f, sheet, map[string]float64{"B": 35, "C": 22, "D": 22, "E": 22, "F": 22}); err != nil {
		return nil, err
	}

	s.logger.Info("customers exported", zap.Int("rows", len(customers)))
	return f, nil
}

// ExportTransportRates writes one row per detail cell so the tiered table
// survives the flat sheet. A rate without details still gets one row.
func (s *ExportService) ExportTransportRates(ctx context.Context, filter types.Filter, q TransportRateQuery) (_ *excelize.File, err error) {
	rates, err := collect(ctx, filter, func(ctx context.Context, f types.Filter) ([]entities.CustomerRate, uint64, error) {
		return s.rateService.GetTransportRates(ctx, f, q)
	})
	if err != nil {
		return nil, err
	}

	const sheet = "Transport Rates"
	f, err := newSheet(sheet, transportRateHeaders)
	if err != nil {
		return nil, err
	}
	defer closeOnError(f, &err)

	rowNum := 2
	for _, r := range rates {
		expiry := ""
		if r.ExpiryDate.Valid {
			expiry = r.ExpiryDate.Time.Format("2006-01-02")
		}
		base := []interface{}{r.RateID, r.OriginZoneName, r.DestinationZoneName, r.ActiveStatus, expiry}

		details := r.Details
		if len(details) == 0 {
			details = []entities.CustomerRateDetail{{}}
		}
		for _, d := range details {
			row := append(append([]interface{}{}, base...), d.RateField, d.ChargeValue, d.PerUnitFlag)
			if d.RateField == "" {
				row = base
			}
			cell, err := excelize.CoordinatesToCellName(1, rowNum)
			if err != nil {
				return nil, err
			}
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return nil, fmt.Errorf("write rate %d: %w", r.RateID, err)
			}
			rowNum++
		}
	}
	if err := setColWidths(f, sheet, map[string]float64{"B": 25, "C": 25}); err != nil {
		return nil, err
	}

	s.logger.Info("transport rates exported", zap.Int("rates", len(rates)), zap.Int("rows", rowNum-2))
	return f, nil
}
