package services

import (
	"context"
	"strconv"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"freight-admin/internal/dto"
	"freight-admin/internal/entities"
	"freight-admin/internal/repositories"
	apperrors "freight-admin/pkg/errors"
	"freight-admin/pkg/types"
	"freight-admin/pkg/utils"
)

type ZoneServiceInterface interface {
	GetZones(ctx context.Context, filter types.Filter) ([]entities.Zone, uint64, error)
	FindZone(ctx context.Context, id uint64) (*dto.ZoneDTO, error)
	CreateZone(ctx context.Context, payload dto.CreateZoneDTO) (*dto.ZoneDTO, error)
	UpdateZone(ctx context.Context, id uint64, payload dto.UpdateZoneDTO) (*dto.ZoneDTO, error)
	DeleteZone(ctx context.Context, id uint64) error

	AddZip(ctx context.Context, zoneID uint64, payload dto.AddZoneZipDTO) (*entities.ZoneZip, error)
	ListZips(ctx context.Context, zoneID uint64) ([]entities.ZoneZip, error)
	DeleteZip(ctx context.Context, zoneID, zoneZipID uint64) error
	ResolveZones(ctx context.Context, zip string) ([]entities.Zone, error)
}

type ZoneService struct {
	zoneRepo repositories.ZoneRepositoryInterface
	logger   *zap.Logger
}

func NewZoneService(zoneRepo repositories.ZoneRepositoryInterface, logger *zap.Logger) ZoneServiceInterface {
	return &ZoneService{zoneRepo: zoneRepo, logger: logger}
}

func (s *ZoneService) GetZones(ctx context.Context, filter types.Filter) ([]entities.Zone, uint64, error) {
	return s.zoneRepo.GetZones(ctx, filter)
}

func (s *ZoneService) FindZone(ctx context.Context, id uint64) (*dto.ZoneDTO, error) {
	zone, err := s.zoneRepo.FindZone(ctx, id)
	if err != nil {
		return nil, err
	}
	zips, err := s.zoneRepo.ListZips(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.ZoneDTO{Zone: *zone, Zips: zips}, nil
}

func (s *ZoneService) CreateZone(ctx context.Context, payload dto.CreateZoneDTO) (*dto.ZoneDTO, error) {
	_, err := s.zoneRepo.FindByName(ctx, payload.ZoneName)
	if err := ensureUnique(err, "zoneName", payload.ZoneName); err != nil {
		return nil, err
	}

	zone := entities.Zone{
		ZoneName:    payload.ZoneName,
		Description: dto.NullableString(payload.Description),
	}
	zone.CreatedBy = utils.ActorFromCtx(ctx)

	id, err := s.zoneRepo.CreateZone(ctx, zone)
	if err != nil {
		return nil, err
	}
	s.logger.Info("zone created", zap.Uint64("zoneID", id), zap.String("zoneName", payload.ZoneName))
	return s.FindZone(ctx, id)
}

func (s *ZoneService) UpdateZone(ctx context.Context, id uint64, payload dto.UpdateZoneDTO) (*dto.ZoneDTO, error) {
	current, err := s.zoneRepo.FindZone(ctx, id)
	if err != nil {
		return nil, err
	}
	if payload.ZoneName != nil && *payload.ZoneName != current.ZoneName {
		_, err := s.zoneRepo.FindByName(ctx, *payload.ZoneName)
		if err := ensureUnique(err, "zoneName", *payload.ZoneName); err != nil {
			return nil, err
		}
	}

	updated := *current
	updated.ZoneName = dto.StringOr(current.ZoneName, payload.ZoneName)
	updated.Description = dto.OptionalString(current.Description, payload.Description)
	updated.ActiveStatus = dto.StringOr(current.ActiveStatus, payload.ActiveStatus)
	updated.UpdatedBy = utils.ActorFromCtx(ctx)

	if err := s.zoneRepo.UpdateZone(ctx, updated); err != nil {
		return nil, err
	}
	return s.FindZone(ctx, id)
}

func (s *ZoneService) DeleteZone(ctx context.Context, id uint64) error {
	return s.zoneRepo.DeleteZone(ctx, id, utils.ActorFromCtx(ctx))
}

// AddZip adds either a single zip or an inclusive range to the zone.
func (s *ZoneService) AddZip(ctx context.Context, zoneID uint64, payload dto.AddZoneZipDTO) (*entities.ZoneZip, error) {
	zz, err := zoneZipFromPayload(payload)
	if err != nil {
		return nil, err
	}
	if _, err := s.zoneRepo.FindZone(ctx, zoneID); err != nil {
		return nil, err
	}

	zz.ZoneID = zoneID
	zz.CreatedBy = utils.ActorFromCtx(ctx)
	added, err := s.zoneRepo.AddZip(ctx, zz)
	if err != nil {
		s.logger.Error("add zone zip", zap.Uint64("zoneID", zoneID), zap.Error(err))
		return nil, err
	}
	return added, nil
}

func zoneZipFromPayload(payload dto.AddZoneZipDTO) (entities.ZoneZip, error) {
	hasZip := payload.ZipCode != ""
	hasRange := payload.RangeStart != "" || payload.RangeEnd != ""

	switch {
	case hasZip && hasRange:
		return entities.ZoneZip{}, apperrors.NewInvalidInputError("send either zipCode or rangeStart/rangeEnd, not both")
	case hasZip:
		if !types.IsZip5(payload.ZipCode) {
			return entities.ZoneZip{}, apperrors.NewInvalidInputError("zipCode must be 5 digits")
		}
		return entities.ZoneZip{ZipCode: null.StringFrom(payload.ZipCode)}, nil
	case hasRange:
		if !types.IsZip5(payload.RangeStart) || !types.IsZip5(payload.RangeEnd) {
			return entities.ZoneZip{}, apperrors.NewInvalidInputError("rangeStart and rangeEnd must both be 5 digits")
		}
		start, _ := strconv.Atoi(payload.RangeStart)
		end, _ := strconv.Atoi(payload.RangeEnd)
		if start > end {
			return entities.ZoneZip{}, apperrors.NewInvalidInputError("rangeStart %s is after rangeEnd %s", payload.RangeStart, payload.RangeEnd)
		}
		return entities.ZoneZip{
			RangeStart: null.StringFrom(payload.RangeStart),
			RangeEnd:   null.StringFrom(payload.RangeEnd),
		}, nil
	}
	return entities.ZoneZip{}, apperrors.NewInvalidInputError("zipCode or rangeStart/rangeEnd is required")
}

func (s *ZoneService) ListZips(ctx context.Context, zoneID uint64) ([]entities.ZoneZip, error) {
	if _, err := s.zoneRepo.FindZone(ctx, zoneID); err != nil {
		return nil, err
	}
	return s.zoneRepo.ListZips(ctx, zoneID)
}

func (s *ZoneService) DeleteZip(ctx context.Context, zoneID, zoneZipID uint64) error {
	if err := s.zoneRepo.DeleteZip(ctx, zoneID, zoneZipID); err != nil {
		return err
	}
	s.logger.Info("zone zip removed", zap.Uint64("zoneID", zoneID), zap.Uint64("zoneZipID", zoneZipID))
	return nil
}

// ResolveZones finds the active zones whose membership covers zip, which is
// either "75001" or "75001-75099".
func (s *ZoneService) ResolveZones(ctx context.Context, zip string) ([]entities.Zone, error) {
	q, err := types.ParseZipQuery(zip)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("%s", err.Error())
	}
	return s.zoneRepo.ResolveZones(ctx, q)
}
