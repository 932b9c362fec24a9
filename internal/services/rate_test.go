package services

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freight-admin/internal/dto"
	"freight-admin/internal/entities"
	apperrors "freight-admin/pkg/errors"
	"freight-admin/pkg/types"
	"freight-admin/pkg/utils"
)

func newRateService(h *harness) RateServiceInterface {
	return NewRateService(h.tx, h.rateRepo, h.zoneRepo, h.stationRepo, h.stationRateRepo, h.logger)
}

func seedZone(h *harness, name string) uint64 {
	id := h.store.nextID()
	h.store.zones[id] = entities.Zone{ZoneID: id, ZoneName: name, ActiveStatus: types.ActiveStatusYes}
	return id
}

func seedStation(h *harness, code string) uint64 {
	id := h.store.nextID()
	h.store.stations[id] = entities.Station{StationID: id, StationName: code + " Hub", StationCode: code, ActiveStatus: types.ActiveStatusYes}
	return id
}

func tieredDetails(floor, hundred float64) []dto.RateDetailDTO {
	return []dto.RateDetailDTO{
		{RateField: "Min Charge", ChargeValue: floor},
		{RateField: "100", ChargeValue: hundred, PerUnitFlag: true},
	}
}

func createLane(t *testing.T, h *harness, svc RateServiceInterface) *entities.CustomerRate {
	t.Helper()
	rate, err := svc.CreateTransportRate(adminCtx(), dto.CreateTransportRateDTO{
		OriginZoneID:      seedZone(h, "Dallas"),
		DestinationZoneID: seedZone(h, "Houston"),
		Details:           tieredDetails(85, 12.5),
	})
	require.NoError(t, err)
	return rate
}

func TestCreateTransportRate_WritesLaneAndDetails(t *testing.T) {
	h := newHarness(t)
	svc := newRateService(h)

	got := createLane(t, h, svc)

	assert.Equal(t, "Dallas", got.OriginZoneName)
	assert.Equal(t, "Houston", got.DestinationZoneName)
	require.Len(t, got.Details, 2)
	assert.Equal(t, "Min Charge", got.Details[0].RateField)
	assert.True(t, got.Details[1].PerUnitFlag)
	assert.Equal(t, uint64(7), *got.CreatedBy)
	assert.Equal(t, 1, h.tx.runs)
}

func TestCreateTransportRate_UnknownZoneIsBadRequest(t *testing.T) {
	h := newHarness(t)
	svc := newRateService(h)
	origin := seedZone(h, "Dallas")

	tests := []struct {
		name        string
		origin      uint64
		destination uint64
		field       string
	}{
		{"origin", 404, origin, "originZoneId"},
		{"destination", origin, 404, "destinationZoneId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateTransportRate(adminCtx(), dto.CreateTransportRateDTO{
				OriginZoneID:      tt.origin,
				DestinationZoneID: tt.destination,
			})

			var invalid *apperrors.InvalidInputError
			require.True(t, errors.As(err, &invalid))
			assert.Contains(t, invalid.Message, tt.field)
		})
	}
	assert.Empty(t, h.store.transportRates)
	assert.Zero(t, h.tx.runs)
}

func TestUpdateTransportRate_ReplacesDetailsInSameTx(t *testing.T) {
	h := newHarness(t)
	svc := newRateService(h)
	rate := createLane(t, h, svc)
	austin := seedZone(h, "Austin")

	details := []dto.RateDetailDTO{
		{RateField: "Min Charge", ChargeValue: 95},
		{RateField: "1000", ChargeValue: 9.75, PerUnitFlag: true},
		{RateField: "Max Charge", ChargeValue: 1400},
	}
	got, err := svc.UpdateTransportRate(adminCtx(), rate.RateID, dto.UpdateTransportRateDTO{
		DestinationZoneID: &austin,
		Details:           &details,
	})
	require.NoError(t, err)

	assert.Equal(t, "Austin", got.DestinationZoneName)
	require.Len(t, got.Details, 3)
	assert.Equal(t, "Max Charge", got.Details[2].RateField)
	for _, d := range got.Details {
		assert.Equal(t, rate.RateID, d.RateID)
	}
	assert.Equal(t, 2, h.tx.runs, "lane and details share one transaction")
}

func TestUpdateTransportRate_FailedReplaceRollsBackLane(t *testing.T) {
	h := newHarness(t)
	svc := newRateService(h)
	rate := createLane(t, h, svc)
	austin := seedZone(h, "Austin")
	h.store.failReplaceRate = true

	details := tieredDetails(1, 1)
	_, err := svc.UpdateTransportRate(adminCtx(), rate.RateID, dto.UpdateTransportRateDTO{
		DestinationZoneID: &austin,
		Details:           &details,
	})
	require.ErrorIs(t, err, errInjected)

	h.store.failReplaceRate = false
	after, err := svc.FindTransportRate(adminCtx(), rate.RateID)
	require.NoError(t, err)
	assert.Equal(t, rate.DestinationZoneID, after.DestinationZoneID)
	assert.Equal(t, rate.Details, after.Details)
	assert.Nil(t, after.UpdatedBy)
}

func TestUpdateTransportRate_NilDetailsKeepsTable(t *testing.T) {
	h := newHarness(t)
	svc := newRateService(h)
	rate := createLane(t, h, svc)
	h.store.failReplaceRate = true

	got, err := svc.UpdateTransportRate(adminCtx(), rate.RateID, dto.UpdateTransportRateDTO{
		ActiveStatus: utils.ToPtr(types.ActiveStatusNo),
	})
	require.NoError(t, err)

	assert.Equal(t, types.ActiveStatusNo, got.ActiveStatus)
	assert.Equal(t, rate.Details, got.Details)
}

func TestGetTransportRates_BadZipIsBadRequest(t *testing.T) {
	h := newHarness(t)
	svc := newRateService(h)

	tests := []struct {
		name  string
		query TransportRateQuery
		field string
	}{
		{"origin not a zip", TransportRateQuery{OriginZip: "75O01"}, "originZip"},
		{"origin reversed range", TransportRateQuery{OriginZip: "75099-75001"}, "originZip"},
		{"destination too short", TransportRateQuery{OriginZip: "75001", DestinationZip: "7700"}, "destinationZip"},
		{"destination half range", TransportRateQuery{DestinationZip: "77001-"}, "destinationZip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.GetTransportRates(adminCtx(), types.Filter{Page: 1, PageSize: 10}, tt.query)

			var invalid *apperrors.InvalidInputError
			require.True(t, errors.As(err, &invalid))
			assert.Contains(t, invalid.Message, tt.field+":")

			status, _, _ := apperrors.Resolve(err)
			assert.Equal(t, http.StatusBadRequest, status)
		})
	}
}

func TestGetTransportRates_PassesParsedSearch(t *testing.T) {
	h := newHarness(t)
	svc := newRateService(h)
	createLane(t, h, svc)

	items, total, err := svc.GetTransportRates(adminCtx(), types.Filter{Page: 1, PageSize: 10}, TransportRateQuery{
		OriginZip:      " 75001-75099 ",
		DestinationZip: "77002",
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), total)
	assert.Len(t, items, 1)

	require.NotNil(t, h.rateRepo.lastSearch.Origin)
	require.NotNil(t, h.rateRepo.lastSearch.Destination)
	assert.Equal(t, types.ZipQuery{Start: 75001, End: 75099}, *h.rateRepo.lastSearch.Origin)
	assert.Equal(t, types.ZipQuery{Start: 77002, End: 77002}, *h.rateRepo.lastSearch.Destination)

	_, _, err = svc.GetTransportRates(adminCtx(), types.Filter{Page: 1, PageSize: 10}, TransportRateQuery{})
	require.NoError(t, err)
	assert.Nil(t, h.rateRepo.lastSearch.Origin)
	assert.Nil(t, h.rateRepo.lastSearch.Destination)
}

func TestUpdateWarehouseRate_MaxBelowMinIsBadRequest(t *testing.T) {
	h := newHarness(t)
	svc := newRateService(h)
	created, err := svc.CreateWarehouseRate(adminCtx(), dto.CreateWarehouseRateDTO{
		MinRate: 40, RatePerPound: 0.12, MaxRate: 900, Department: "Inbound", Warehouse: "DFW-1",
	})
	require.NoError(t, err)

	_, err = svc.UpdateWarehouseRate(adminCtx(), created.RateID, dto.UpdateWarehouseRateDTO{MaxRate: utils.ToPtr(30.0)})

	var invalid *apperrors.InvalidInputError
	require.True(t, errors.As(err, &invalid))
	assert.Contains(t, invalid.Message, "maxRate")

	stored, err := svc.FindWarehouseRate(adminCtx(), created.RateID)
	require.NoError(t, err)
	assert.Equal(t, 900.0, stored.MaxRate)
}

func TestAssignStationRate_ChecksTableNamedByRateType(t *testing.T) {
	h := newHarness(t)
	svc := newRateService(h)
	station := seedStation(h, "DFW")
	lane := createLane(t, h, svc)
	warehouse, err := svc.CreateWarehouseRate(adminCtx(), dto.CreateWarehouseRateDTO{
		MinRate: 40, RatePerPound: 0.12, MaxRate: 900, Department: "Inbound", Warehouse: "DFW-1",
	})
	require.NoError(t, err)

	tests := []struct {
		name    string
		payload dto.AssignStationRateDTO
		want    string
	}{
		{"missing transport id", dto.AssignStationRateDTO{RateID: 404, RateType: "TRANSPORT"}, "TRANSPORT rate 404 does not exist"},
		{"warehouse id sent as transport", dto.AssignStationRateDTO{RateID: warehouse.RateID, RateType: "TRANSPORT"}, "TRANSPORT rate"},
		{"transport id sent as warehouse", dto.AssignStationRateDTO{RateID: lane.RateID, RateType: "WAREHOUSE"}, "WAREHOUSE rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AssignStationRate(adminCtx(), station, tt.payload)

			var invalid *apperrors.InvalidInputError
			require.True(t, errors.As(err, &invalid))
			assert.Contains(t, invalid.Message, tt.want)

			status, _, _ := apperrors.Resolve(err)
			assert.Equal(t, http.StatusBadRequest, status)
		})
	}
	assert.Empty(t, h.store.stationRates)
}

func TestAssignStationRate_UnknownStationIsNotFound(t *testing.T) {
	h := newHarness(t)
	svc := newRateService(h)

	_, err := svc.AssignStationRate(adminCtx(), 404, dto.AssignStationRateDTO{RateID: 1, RateType: "TRANSPORT"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAssignStationRate_ExpandsExactlyOneSide(t *testing.T) {
	h := newHarness(t)
	svc := newRateService(h)
	station := seedStation(h, "DFW")
	lane := createLane(t, h, svc)
	warehouse, err := svc.CreateWarehouseRate(adminCtx(), dto.CreateWarehouseRateDTO{
		MinRate: 40, RatePerPound: 0.12, MaxRate: 900, Department: "Inbound", Warehouse: "DFW-1",
	})
	require.NoError(t, err)

	transport, err := svc.AssignStationRate(adminCtx(), station, dto.AssignStationRateDTO{RateID: lane.RateID, RateType: "TRANSPORT"})
	require.NoError(t, err)
	require.NotNil(t, transport.Transport)
	assert.Nil(t, transport.Warehouse)
	assert.Equal(t, lane.RateID, transport.Transport.RateID)
	assert.Len(t, transport.Transport.Details, 2)
	assert.Equal(t, uint64(7), *transport.CreatedBy)

	stored, err := svc.AssignStationRate(adminCtx(), station, dto.AssignStationRateDTO{RateID: warehouse.RateID, RateType: "WAREHOUSE"})
	require.NoError(t, err)
	require.NotNil(t, stored.Warehouse)
	assert.Nil(t, stored.Transport)
	assert.Equal(t, "DFW-1", stored.Warehouse.Warehouse)

	listed, err := svc.ListStationRates(adminCtx(), station)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	for _, item := range listed {
		assert.True(t, (item.Transport == nil) != (item.Warehouse == nil), "rate %d must carry one side", item.StationRateID)
	}

	require.NoError(t, svc.DeleteStationRate(adminCtx(), station, transport.StationRateID))
	listed, err = svc.ListStationRates(adminCtx(), station)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, entities.RateTypeWarehouse, listed[0].RateType)
}
