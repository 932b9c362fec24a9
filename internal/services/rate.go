package services

import (
	"context"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"freight-admin/internal/dto"
	"freight-admin/internal/entities"
	"freight-admin/internal/repositories"
	apperrors "freight-admin/pkg/errors"
	"freight-admin/pkg/types"
	"freight-admin/pkg/utils"
)

// TransportRateQuery carries the raw originZip/destinationZip search params.
type TransportRateQuery struct {
	OriginZip      string
	DestinationZip string
}

type RateServiceInterface interface {
	GetTransportRates(ctx context.Context, filter types.Filter, q TransportRateQuery) ([]entities.CustomerRate, uint64, error)
	FindTransportRate(ctx context.Context, id uint64) (*entities.CustomerRate, error)
	CreateTransportRate(ctx context.Context, payload dto.CreateTransportRateDTO) (*entities.CustomerRate, error)
	UpdateTransportRate(ctx context.Context, id uint64, payload dto.UpdateTransportRateDTO) (*entities.CustomerRate, error)
	DeleteTransportRate(ctx context.Context, id uint64) error

	GetWarehouseRates(ctx context.Context, filter types.Filter) ([]entities.CustomerRateWarehouse, uint64, error)
	FindWarehouseRate(ctx context.Context, id uint64) (*entities.CustomerRateWarehouse, error)
	CreateWarehouseRate(ctx context.Context, payload dto.CreateWarehouseRateDTO) (*entities.CustomerRateWarehouse, error)
	UpdateWarehouseRate(ctx context.Context, id uint64, payload dto.UpdateWarehouseRateDTO) (*entities.CustomerRateWarehouse, error)
	DeleteWarehouseRate(ctx context.Context, id uint64) error

	AssignStationRate(ctx context.Context, stationID uint64, payload dto.AssignStationRateDTO) (*dto.StationRateDTO, error)
	ListStationRates(ctx context.Context, stationID uint64) ([]dto.StationRateDTO, error)
	DeleteStationRate(ctx context.Context, stationID, stationRateID uint64) error
}

type RateService struct {
	txManager       repositories.TxManagerInterface
	rateRepo        repositories.RateRepositoryInterface
	zoneRepo        repositories.ZoneRepositoryInterface
	stationRepo     repositories.StationRepositoryInterface
	stationRateRepo repositories.StationRateRepositoryInterface
	logger          *zap.Logger
}

func NewRateService(
	txManager repositories.TxManagerInterface,
	rateRepo repositories.RateRepositoryInterface,
	zoneRepo repositories.ZoneRepositoryInterface,
	stationRepo repositories.StationRepositoryInterface,
	stationRateRepo repositories.StationRateRepositoryInterface,
	logger *zap.Logger,
) RateServiceInterface {
	return &RateService{
		txManager:       txManager,
		rateRepo:        rateRepo,
		zoneRepo:        zoneRepo,
		stationRepo:     stationRepo,
		stationRateRepo: stationRateRepo,
		logger:          logger,
	}
}

func (s *RateService) GetTransportRates(ctx context.Context, filter types.Filter, q TransportRateQuery) ([]entities.CustomerRate, uint64, error) {
	var search repositories.TransportRateSearch
	if q.OriginZip != "" {
		origin, err := types.ParseZipQuery(q.OriginZip)
		if err != nil {
			return nil, 0, apperrors.NewInvalidInputError("originZip: %s", err.Error())
		}
		search.Origin = &origin
	}
	if q.DestinationZip != "" {
		destination, err := types.ParseZipQuery(q.DestinationZip)
		if err != nil {
			return nil, 0, apperrors.NewInvalidInputError("destinationZip: %s", err.Error())
		}
		search.Destination = &destination
	}
	return s.rateRepo.GetTransportRates(ctx, filter, search)
}

func (s *RateService) FindTransportRate(ctx context.Context, id uint64) (*entities.CustomerRate, error) {
	return s.rateRepo.FindTransportRate(ctx, id)
}

func (s *RateService) checkZones(ctx context.Context, originID, destinationID uint64) error {
	if _, err := s.zoneRepo.FindZone(ctx, originID); err != nil {
		return ensureReference(err, "originZoneId", originID)
	}
	if _, err := s.zoneRepo.FindZone(ctx, destinationID); err != nil {
		return ensureReference(err, "destinationZoneId", destinationID)
	}
	return nil
}

// CreateTransportRate inserts the lane and its detail table together.
func (s *RateService) CreateTransportRate(ctx context.Context, payload dto.CreateTransportRateDTO) (*entities.CustomerRate, error) {
	if err := s.checkZones(ctx, payload.OriginZoneID, payload.DestinationZoneID); err != nil {
		return nil, err
	}

	rate := entities.CustomerRate{
		OriginZoneID:      payload.OriginZoneID,
		DestinationZoneID: payload.DestinationZoneID,
		ExpiryDate:        null.TimeFromPtr(payload.ExpiryDate),
	}
	rate.CreatedBy = utils.ActorFromCtx(ctx)
	details := dto.DetailsToEntities(payload.Details)

	var id uint64
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		id, err = s.rateRepo.CreateTransportRateInTx(ctx, tx, rate)
		if err != nil {
			return err
		}
		return s.rateRepo.ReplaceDetailsInTx(ctx, tx, id, details)
	})
	if err != nil {
		s.logger.Warn("transport rate create rolled back", zap.Error(err))
		return nil, err
	}

	s.logger.Info("transport rate created", zap.Uint64("rateID", id), zap.Int("details", len(details)))
	return s.rateRepo.FindTransportRate(ctx, id)
}

// UpdateTransportRate rewrites the lane and, when details are sent, replaces
// the whole detail table in the same transaction.
func (s *RateService) UpdateTransportRate(ctx context.Context, id uint64, payload dto.UpdateTransportRateDTO) (*entities.CustomerRate, error) {
	current, err := s.rateRepo.FindTransportRate(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	if payload.OriginZoneID != nil {
		updated.OriginZoneID = *payload.OriginZoneID
	}
	if payload.DestinationZoneID != nil {
		updated.DestinationZoneID = *payload.DestinationZoneID
	}
	if payload.ExpiryDate != nil {
		updated.ExpiryDate = null.TimeFrom(*payload.ExpiryDate)
	}
	updated.ActiveStatus = dto.StringOr(current.ActiveStatus, payload.ActiveStatus)
	updated.UpdatedBy = utils.ActorFromCtx(ctx)

	if updated.OriginZoneID != current.OriginZoneID || updated.DestinationZoneID != current.DestinationZoneID {
		if err := s.checkZones(ctx, updated.OriginZoneID, updated.DestinationZoneID); err != nil {
			return nil, err
		}
	}

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.rateRepo.UpdateTransportRateInTx(ctx, tx, updated); err != nil {
			return err
		}
		if payload.Details == nil {
			return nil
		}
		return s.rateRepo.ReplaceDetailsInTx(ctx, tx, id, dto.DetailsToEntities(*payload.Details))
	})
	if err != nil {
		s.logger.Warn("transport rate update rolled back", zap.Uint64("rateID", id), zap.Error(err))
		return nil, err
	}
	return s.rateRepo.FindTransportRate(ctx, id)
}

func (s *RateService) DeleteTransportRate(ctx context.Context, id uint64) error {
	return s.rateRepo.DeleteTransportRate(ctx, id, utils.ActorFromCtx(ctx))
}

func (s *RateService) GetWarehouseRates(ctx context.Context, filter types.Filter) ([]entities.CustomerRateWarehouse, uint64, error) {
	return s.rateRepo.GetWarehouseRates(ctx, filter)
}

func (s *RateService) FindWarehouseRate(ctx context.Context, id uint64) (*entities.CustomerRateWarehouse, error) {
	return s.rateRepo.FindWarehouseRate(ctx, id)
}

func (s *RateService) CreateWarehouseRate(ctx context.Context, payload dto.CreateWarehouseRateDTO) (*entities.CustomerRateWarehouse, error) {
	rate := entities.CustomerRateWarehouse{
		MinRate:      payload.MinRate,
		RatePerPound: payload.RatePerPound,
		MaxRate:      payload.MaxRate,
		Department:   payload.Department,
		Warehouse:    payload.Warehouse,
	}
	rate.CreatedBy = utils.ActorFromCtx(ctx)

	id, err := s.rateRepo.CreateWarehouseRate(ctx, rate)
	if err != nil {
		return nil, err
	}
	s.logger.Info("warehouse rate created", zap.Uint64("rateID", id))
	return s.rateRepo.FindWarehouseRate(ctx, id)
}

func (s *RateService) UpdateWarehouseRate(ctx context.Context, id uint64, payload dto.UpdateWarehouseRateDTO) (*entities.CustomerRateWarehouse, error) {
	current, err := s.rateRepo.FindWarehouseRate(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	if payload.MinRate != nil {
		updated.MinRate = *payload.MinRate
	}
	if payload.RatePerPound != nil {
		updated.RatePerPound = *payload.RatePerPound
	}
	if payload.MaxRate != nil {
		updated.MaxRate = *payload.MaxRate
	}
	if updated.MaxRate < updated.MinRate {
		return nil, apperrors.NewInvalidInputError("maxRate %.2f is below minRate %.2f", updated.MaxRate, updated.MinRate)
	}
	updated.Department = dto.StringOr(current.Department, payload.Department)
	updated.Warehouse = dto.StringOr(current.Warehouse, payload.Warehouse)
	updated.ActiveStatus = dto.StringOr(current.ActiveStatus, payload.ActiveStatus)
	updated.UpdatedBy = utils.ActorFromCtx(ctx)

	if err := s.rateRepo.UpdateWarehouseRate(ctx, updated); err != nil {
		return nil, err
	}
	return s.rateRepo.FindWarehouseRate(ctx, id)
}

func (s *RateService) DeleteWarehouseRate(ctx context.Context, id uint64) error {
	return s.rateRepo.DeleteWarehouseRate(ctx, id, utils.ActorFromCtx(ctx))
}

// AssignStationRate binds a rate to a station. The rate id is checked
// against the table its rateType names.
func (s *RateService) AssignStationRate(ctx context.Context, stationID uint64, payload dto.AssignStationRateDTO) (*dto.StationRateDTO, error) {
	if _, err := s.stationRepo.FindStation(ctx, stationID); err != nil {
		return nil, err
	}

	rateType := entities.RateType(payload.RateType)
	exists, err := s.stationRateRepo.RateExists(ctx, rateType, payload.RateID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewInvalidInputError("%s rate %d does not exist", rateType, payload.RateID)
	}

	sr := entities.StationRate{StationID: stationID, RateID: payload.RateID, RateType: rateType}
	sr.CreatedBy = utils.ActorFromCtx(ctx)
	created, err := s.stationRateRepo.CreateStationRate(ctx, sr)
	if err != nil {
		return nil, err
	}

	s.logger.Info("station rate assigned",
		zap.Uint64("stationID", stationID),
		zap.Uint64("rateID", payload.RateID),
		zap.String("rateType", payload.RateType))
	return s.expandStationRate(ctx, *created)
}

func (s *RateService) ListStationRates(ctx context.Context, stationID uint64) ([]dto.StationRateDTO, error) {
	if _, err := s.stationRepo.FindStation(ctx, stationID); err != nil {
		return nil, err
	}
	assignments, err := s.stationRateRepo.ListStationRates(ctx, stationID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.StationRateDTO, 0, len(assignments))
	for _, sr := range assignments {
		item, err := s.expandStationRate(ctx, sr)
		if err != nil {
			return nil, err
		}
		out = append(out, *item)
	}
	return out, nil
}

// expandStationRate attaches the rate row named by the discriminator.
func (s *RateService) expandStationRate(ctx context.Context, sr entities.StationRate) (*dto.StationRateDTO, error) {
	item := &dto.StationRateDTO{StationRate: sr}
	switch sr.RateType {
	case entities.RateTypeTransport:
		rate, err := s.rateRepo.FindTransportRate(ctx, sr.RateID)
		if err != nil {
			return nil, err
		}
		item.Transport = rate
	case entities.RateTypeWarehouse:
		rate, err := s.rateRepo.FindWarehouseRate(ctx, sr.RateID)
		if err != nil {
			return nil, err
		}
		item.Warehouse = rate
	}
	return item, nil
}

func (s *RateService) DeleteStationRate(ctx context.Context, stationID, stationRateID uint64) error {
	return s.stationRateRepo.DeleteStationRate(ctx, stationID, stationRateID, utils.ActorFromCtx(ctx))
}
