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

type PersonnelServiceInterface interface {
	GetPersonnel(ctx context.Context, filter types.Filter) ([]entities.CustomerPersonnel, uint64, error)
	FindPersonnel(ctx context.Context, id uint64) (*dto.PersonnelDTO, error)
	CreatePersonnel(ctx context.Context, payload dto.CreatePersonnelDTO) (*dto.PersonnelDTO, error)
	UpdatePersonnel(ctx context.Context, id uint64, payload dto.UpdatePersonnelDTO) (*dto.PersonnelDTO, error)
	DeletePersonnel(ctx context.Context, id uint64) error
}

type PersonnelService struct {
	personnelRepo repositories.PersonnelRepositoryInterface
	customerRepo  repositories.CustomerRepositoryInterface
	composer      EntityComposerInterface
	logger        *zap.Logger
}

func NewPersonnelService(
	personnelRepo repositories.PersonnelRepositoryInterface,
	customerRepo repositories.CustomerRepositoryInterface,
	composer EntityComposerInterface,
	logger *zap.Logger,
) PersonnelServiceInterface {
	return &PersonnelService{
		personnelRepo: personnelRepo,
		customerRepo:  customerRepo,
		composer:      composer,
		logger:        logger,
	}
}

func (s *PersonnelService) GetPersonnel(ctx context.Context, filter types.Filter) ([]entities.CustomerPersonnel, uint64, error) {
	return s.personnelRepo.GetPersonnel(ctx, filter)
}

func (s *PersonnelService) FindPersonnel(ctx context.Context, id uint64) (*dto.PersonnelDTO, error) {
	p, err := s.personnelRepo.FindPersonnel(ctx, id)
	if err != nil {
		return nil, err
	}
	attachments, err := s.composer.LoadAttachments(ctx, p.EntityID, p.NoteThreadID)
	if err != nil {
		return nil, err
	}
	return &dto.PersonnelDTO{CustomerPersonnel: *p, Attachments: attachments}, nil
}

func (s *PersonnelService) CreatePersonnel(ctx context.Context, payload dto.CreatePersonnelDTO) (*dto.PersonnelDTO, error) {
	if _, err := s.customerRepo.FindCustomer(ctx, payload.CustomerID); err != nil {
		return nil, ensureReference(err, "customerId", payload.CustomerID)
	}
	email := strings.TrimSpace(payload.Email)
	_, err := s.personnelRepo.FindByEmail(ctx, email)
	if err := ensureUnique(err, "email", email); err != nil {
		return nil, err
	}

	actor := utils.ActorFromCtx(ctx)
	req := ComposeRequest{
		EntityType:  entities.EntityTypeCustomerPersonnel,
		EntityName:  payload.FirstName + " " + payload.LastName,
		InitialNote: payload.InitialNote,
		Addresses:   dto.AddressesToEntities(payload.Addresses),
	}

	id, err := s.composer.Compose(ctx, req, func(tx pgx.Tx, link entities.EntityLink) (uint64, error) {
		p := entities.CustomerPersonnel{
			CustomerID:   payload.CustomerID,
			FirstName:    payload.FirstName,
			LastName:     payload.LastName,
			Email:        email,
			Phone:        dto.NullableString(payload.Phone),
			JobTitle:     dto.NullableString(payload.JobTitle),
			EntityID:     link.EntityID,
			NoteThreadID: link.NoteThreadID,
		}
		p.CreatedBy = actor
		return s.personnelRepo.CreatePersonnelInTx(ctx, tx, p)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("personnel created", zap.Uint64("personnelID", id), zap.Uint64("customerID", payload.CustomerID))
	return s.FindPersonnel(ctx, id)
}

func (s *PersonnelService) UpdatePersonnel(ctx context.Context, id uint64, payload dto.UpdatePersonnelDTO) (*dto.PersonnelDTO, error) {
	current, err := s.personnelRepo.FindPersonnel(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Email != nil && !strings.EqualFold(*payload.Email, current.Email) {
		_, err := s.personnelRepo.FindByEmail(ctx, *payload.Email)
		if err := ensureUnique(err, "email", *payload.Email); err != nil {
			return nil, err
		}
	}

	updated := *current
	updated.FirstName = dto.StringOr(current.FirstName, payload.FirstName)
	updated.LastName = dto.StringOr(current.LastName, payload.LastName)
	updated.Email = dto.StringOr(current.Email, payload.Email)
	updated.Phone = dto.OptionalString(current.Phone, payload.Phone)
	updated.JobTitle = dto.OptionalString(current.JobTitle, payload.JobTitle)
	updated.ActiveStatus = dto.StringOr(current.ActiveStatus, payload.ActiveStatus)
	updated.UpdatedBy = utils.ActorFromCtx(ctx)

	err = s.composer.UpdateWithAddresses(ctx, current.EntityID, dto.AddressesToEntities(payload.Addresses), func(tx pgx.Tx) error {
		return s.personnelRepo.UpdatePersonnelInTx(ctx, tx, updated)
	})
	if err != nil {
		return nil, err
	}
	return s.FindPersonnel(ctx, id)
}

func (s *PersonnelService) DeletePersonnel(ctx context.Context, id uint64) error {
	return s.personnelRepo.DeletePersonnel(ctx, id, utils.ActorFromCtx(ctx))
}
