package services

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"freight-admin/internal/dto"
	"freight-admin/internal/entities"
	"freight-admin/internal/repositories"
	"freight-admin/pkg/types"
	"freight-admin/pkg/utils"
)

type AccessorialServiceInterface interface {
	GetAccessorials(ctx context.Context, filter types.Filter) ([]entities.Accessorial, uint64, error)
	FindAccessorial(ctx context.Context, id uint64) (*entities.Accessorial, error)
	CreateAccessorial(ctx context.Context, payload dto.CreateAccessorialDTO) (*entities.Accessorial, error)
	UpdateAccessorial(ctx context.Context, id uint64, payload dto.UpdateAccessorialDTO) (*entities.Accessorial, error)
	DeleteAccessorial(ctx context.Context, id uint64) error

	GetEntityAccessorials(ctx context.Context, filter types.Filter) ([]entities.EntityAccessorial, uint64, error)
	FindEntityAccessorial(ctx context.Context, id uint64) (*dto.EntityAccessorialDTO, error)
	CreateEntityAccessorial(ctx context.Context, payload dto.CreateEntityAccessorialDTO) (*dto.EntityAccessorialDTO, error)
	UpdateEntityAccessorial(ctx context.Context, id uint64, payload dto.UpdateEntityAccessorialDTO) (*dto.EntityAccessorialDTO, error)
	DeleteEntityAccessorial(ctx context.Context, id uint64) error
}

type AccessorialService struct {
	accessorialRepo       repositories.AccessorialRepositoryInterface
	entityAccessorialRepo repositories.EntityAccessorialRepositoryInterface
	entityRepo            repositories.EntityRepositoryInterface
	composer              EntityComposerInterface
	logger                *zap.Logger
}

func NewAccessorialService(
	accessorialRepo repositories.AccessorialRepositoryInterface,
	entityAccessorialRepo repositories.EntityAccessorialRepositoryInterface,
	entityRepo repositories.EntityRepositoryInterface,
	composer EntityComposerInterface,
	logger *zap.Logger,
) AccessorialServiceInterface {
	return &AccessorialService{
		accessorialRepo:       accessorialRepo,
		entityAccessorialRepo: entityAccessorialRepo,
		entityRepo:            entityRepo,
		composer:              composer,
		logger:                logger,
	}
}

func (s *AccessorialService) GetAccessorials(ctx context.Context, filter types.Filter) ([]entities.Accessorial, uint64, error) {
	return s.accessorialRepo.GetAccessorials(ctx, filter)
}

func (s *AccessorialService) FindAccessorial(ctx context.Context, id uint64) (*entities.Accessorial, error) {
	return s.accessorialRepo.FindAccessorial(ctx, id)
}

func (s *AccessorialService) CreateAccessorial(ctx context.Context, payload dto.CreateAccessorialDTO) (*entities.Accessorial, error) {
	name := strings.TrimSpace(payload.AccessorialName)
	_, err := s.accessorialRepo.FindByName(ctx, name)
	if err := ensureUnique(err, "accessorialName", name); err != nil {
		return nil, err
	}

	chargeType := entities.ChargeTypeFlatValue
	if payload.DefaultChargeType != "" {
		chargeType = entities.ChargeType(payload.DefaultChargeType)
	}

	a := entities.Accessorial{
		AccessorialName:   name,
		Description:       dto.NullableString(payload.Description),
		DefaultChargeType: chargeType,
	}
	a.CreatedBy = utils.ActorFromCtx(ctx)

	id, err := s.accessorialRepo.CreateAccessorial(ctx, a)
	if err != nil {
		return nil, err
	}
	s.logger.Info("accessorial created", zap.Uint64("accessorialID", id), zap.String("name", name))
	return s.accessorialRepo.FindAccessorial(ctx, id)
}

func (s *AccessorialService) UpdateAccessorial(ctx context.Context, id uint64, payload dto.UpdateAccessorialDTO) (*entities.Accessorial, error) {
	current, err := s.accessorialRepo.FindAccessorial(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.AccessorialName != nil && *payload.AccessorialName != current.AccessorialName {
		_, err := s.accessorialRepo.FindByName(ctx, *payload.AccessorialName)
		if err := ensureUnique(err, "accessorialName", *payload.AccessorialName); err != nil {
			return nil, err
		}
	}

	updated := *current
	updated.AccessorialName = dto.StringOr(current.AccessorialName, payload.AccessorialName)
	updated.Description = dto.OptionalString(current.Description, payload.Description)
	if payload.DefaultChargeType != nil {
		updated.DefaultChargeType = entities.ChargeType(*payload.DefaultChargeType)
	}
	updated.ActiveStatus = dto.StringOr(current.ActiveStatus, payload.ActiveStatus)
	updated.UpdatedBy = utils.ActorFromCtx(ctx)

	if err := s.accessorialRepo.UpdateAccessorial(ctx, updated); err != nil {
		return nil, err
	}
	return s.accessorialRepo.FindAccessorial(ctx, id)
}

func (s *AccessorialService) DeleteAccessorial(ctx context.Context, id uint64) error {
	return s.accessorialRepo.DeleteAccessorial(ctx, id, utils.ActorFromCtx(ctx))
}

func (s *AccessorialService) GetEntityAccessorials(ctx context.Context, filter types.Filter) ([]entities.EntityAccessorial, uint64, error) {
	return s.entityAccessorialRepo.GetEntityAccessorials(ctx, filter)
}

func (s *AccessorialService) FindEntityAccessorial(ctx context.Context, id uint64) (*dto.EntityAccessorialDTO, error) {
	ea, err := s.entityAccessorialRepo.FindEntityAccessorial(ctx, id)
	if err != nil {
		return nil, err
	}
	attachments, err := s.composer.LoadAttachments(ctx, ea.EntityID, ea.NoteThreadID)
	if err != nil {
		return nil, err
	}
	return &dto.EntityAccessorialDTO{EntityAccessorial: *ea, Notes: attachments.Notes}, nil
}

// CreateEntityAccessorial prices a catalog accessorial for an owning entity.
// The charge row gets its own ACCESSORIAL tag and note thread.
func (s *AccessorialService) CreateEntityAccessorial(ctx context.Context, payload dto.CreateEntityAccessorialDTO) (*dto.EntityAccessorialDTO, error) {
	if _, err := s.entityRepo.FindEntity(ctx, payload.OwnerEntityID); err != nil {
		return nil, ensureReference(err, "ownerEntityId", payload.OwnerEntityID)
	}
	accessorial, err := s.accessorialRepo.FindAccessorial(ctx, payload.AccessorialID)
	if err != nil {
		return nil, ensureReference(err, "accessorialId", payload.AccessorialID)
	}

	_, err = s.entityAccessorialRepo.FindActivePairing(ctx, payload.OwnerEntityID, payload.AccessorialID)
	if err := ensureUnique(err, "accessorialId", accessorial.AccessorialName); err != nil {
		return nil, err
	}

	actor := utils.ActorFromCtx(ctx)
	req := ComposeRequest{
		EntityType:  entities.EntityTypeAccessorial,
		EntityName:  accessorial.AccessorialName,
		InitialNote: payload.InitialNote,
	}

	id, err := s.composer.Compose(ctx, req, func(tx pgx.Tx, link entities.EntityLink) (uint64, error) {
		ea := entities.EntityAccessorial{
			OwnerEntityID: payload.OwnerEntityID,
			AccessorialID: payload.AccessorialID,
			ChargeType:    entities.ChargeType(payload.ChargeType),
			ChargeValue:   payload.ChargeValue,
			EntityID:      link.EntityID,
			NoteThreadID:  link.NoteThreadID,
		}
		ea.CreatedBy = actor
		return s.entityAccessorialRepo.CreateEntityAccessorialInTx(ctx, tx, ea)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("entity accessorial created",
		zap.Uint64("entityAccessorialID", id),
		zap.Uint64("ownerEntityID", payload.OwnerEntityID),
		zap.Uint64("accessorialID", payload.AccessorialID))
	return s.FindEntityAccessorial(ctx, id)
}

func (s *AccessorialService) UpdateEntityAccessorial(ctx context.Context, id uint64, payload dto.UpdateEntityAccessorialDTO) (*dto.EntityAccessorialDTO, error) {
	current, err := s.entityAccessorialRepo.FindEntityAccessorial(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	if payload.ChargeType != nil {
		updated.ChargeType = entities.ChargeType(*payload.ChargeType)
	}
	if payload.ChargeValue != nil {
		updated.ChargeValue = *payload.ChargeValue
	}
	updated.UpdatedBy = utils.ActorFromCtx(ctx)

	if err := s.entityAccessorialRepo.UpdateCharge(ctx, updated); err != nil {
		return nil, err
	}
	return s.FindEntityAccessorial(ctx, id)
}

func (s *AccessorialService) DeleteEntityAccessorial(ctx context.Context, id uint64) error {
	return s.entityAccessorialRepo.DeleteEntityAccessorial(ctx, id, utils.ActorFromCtx(ctx))
}
