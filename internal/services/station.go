package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"freight-admin/internal/dto"
	"freight-admin/internal/entities"
	"freight-admin/internal/repositories"
	"freight-admin/pkg/types"
	"freight-admin/pkg/utils"
)

type StationServiceInterface interface {
	GetStations(ctx context.Context, filter types.Filter) ([]entities.Station, uint64, error)
	FindStation(ctx context.Context, id uint64) (*dto.StationDTO, error)
	CreateStation(ctx context.Context, payload dto.CreateStationDTO) (*dto.StationDTO, error)
	UpdateStation(ctx context.Context, id uint64, payload dto.UpdateStationDTO) (*dto.StationDTO, error)
	DeleteStation(ctx context.Context, id uint64) error
}

type StationService struct {
	stationRepo  repositories.StationRepositoryInterface
	customerRepo repositories.CustomerRepositoryInterface
	composer     EntityComposerInterface
	logger       *zap.Logger
}

func NewStationService(
	stationRepo repositories.StationRepositoryInterface,
	customerRepo repositories.CustomerRepositoryInterface,
	composer EntityComposerInterface,
	logger *zap.Logger,
) StationServiceInterface {
	return &StationService{
		stationRepo:  stationRepo,
		customerRepo: customerRepo,
		composer:     composer,
		logger:       logger,
	}
}

func (s *StationService) GetStations(ctx context.Context, filter types.Filter) ([]entities.Station, uint64, error) {
	return s.stationRepo.GetStations(ctx, filter)
}

func (s *StationService) FindStation(ctx context.Context, id uint64) (*dto.StationDTO, error) {
	station, err := s.stationRepo.FindStation(ctx, id)
	if err != nil {
		return nil, err
	}
	attachments, err := s.composer.LoadAttachments(ctx, station.EntityID, station.NoteThreadID)
	if err != nil {
		return nil, err
	}
	return &dto.StationDTO{Station: *station, Attachments: attachments}, nil
}

func (s *StationService) CreateStation(ctx context.Context, payload dto.CreateStationDTO) (*dto.StationDTO, error) {
	if _, err := s.customerRepo.FindCustomer(ctx, payload.CustomerID); err != nil {
		return nil, ensureReference(err, "customerId", payload.CustomerID)
	}

	actor := utils.ActorFromCtx(ctx)
	req := ComposeRequest{
		EntityType:  entities.EntityTypeStation,
		EntityName:  payload.StationName,
		InitialNote: payload.InitialNote,
		Addresses:   dto.AddressesToEntities(payload.Addresses),
	}

	id, err := s.composer.Compose(ctx, req, func(tx pgx.Tx, link entities.EntityLink) (uint64, error) {
		station := entities.Station{
			CustomerID:   payload.CustomerID,
			StationName:  payload.StationName,
			StationCode:  payload.StationCode,
			Phone:        dto.NullableString(payload.Phone),
			Email:        dto.NullableString(payload.Email),
			EntityID:     link.EntityID,
			NoteThreadID: link.NoteThreadID,
		}
		station.CreatedBy = actor
		return s.stationRepo.CreateStationInTx(ctx, tx, station)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("station created", zap.Uint64("stationID", id), zap.Uint64("customerID", payload.CustomerID))
	return s.FindStation(ctx, id)
}

func (s *StationService) UpdateStation(ctx context.Context, id uint64, payload dto.UpdateStationDTO) (*dto.StationDTO, error) {
	current, err := s.stationRepo.FindStation(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	updated.StationName = dto.StringOr(current.StationName, payload.StationName)
	updated.StationCode = dto.StringOr(current.StationCode, payload.StationCode)
	updated.Phone = dto.OptionalString(current.Phone, payload.Phone)
	updated.Email = dto.OptionalString(current.Email, payload.Email)
	updated.ActiveStatus = dto.StringOr(current.ActiveStatus, payload.ActiveStatus)
	updated.UpdatedBy = utils.ActorFromCtx(ctx)

	err = s.composer.UpdateWithAddresses(ctx, current.EntityID, dto.AddressesToEntities(payload.Addresses), func(tx pgx.Tx) error {
		return s.stationRepo.UpdateStationInTx(ctx, tx, updated)
	})
	if err != nil {
		return nil, err
	}
	return s.FindStation(ctx, id)
}

func (s *StationService) DeleteStation(ctx context.Context, id uint64) error {
	return s.stationRepo.DeleteStation(ctx, id, utils.ActorFromCtx(ctx))
}
