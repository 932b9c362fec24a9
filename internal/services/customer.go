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

type CustomerServiceInterface interface {
	GetCustomers(ctx context.Context, filter types.Filter) ([]entities.Customer, uint64, error)
	FindCustomer(ctx context.Context, id uint64) (*dto.CustomerDTO, error)
	CreateCustomer(ctx context.Context, payload dto.CreateCustomerDTO) (*dto.CustomerDTO, error)
	UpdateCustomer(ctx context.Context, id uint64, payload dto.UpdateCustomerDTO) (*dto.CustomerDTO, error)
	DeleteCustomer(ctx context.Context, id uint64) error
}

type CustomerService struct {
	customerRepo repositories.CustomerRepositoryInterface
	composer     EntityComposerInterface
	logger       *zap.Logger
}

func NewCustomerService(
	customerRepo repositories.CustomerRepositoryInterface,
	composer EntityComposerInterface,
	logger *zap.Logger,
) CustomerServiceInterface {
	return &CustomerService{customerRepo: customerRepo, composer: composer, logger: logger}
}

func (s *CustomerService) GetCustomers(ctx context.Context, filter types.Filter) ([]entities.Customer, uint64, error) {
	return s.customerRepo.GetCustomers(ctx, filter)
}

func (s *CustomerService) FindCustomer(ctx context.Context, id uint64) (*dto.CustomerDTO, error) {
	customer, err := s.customerRepo.FindCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	attachments, err := s.composer.LoadAttachments(ctx, customer.EntityID, customer.NoteThreadID)
	if err != nil {
		return nil, err
	}
	return &dto.CustomerDTO{Customer: *customer, Attachments: attachments}, nil
}

func (s *CustomerService) CreateCustomer(ctx context.Context, payload dto.CreateCustomerDTO) (*dto.CustomerDTO, error) {
	_, err := s.customerRepo.FindByAccountNumber(ctx, payload.RmAccountNumber)
	if err := ensureUnique(err, "rmAccountNumber", payload.RmAccountNumber); err != nil {
		return nil, err
	}

	actor := utils.ActorFromCtx(ctx)
	req := ComposeRequest{
		EntityType:  entities.EntityTypeCustomer,
		EntityName:  payload.CustomerName,
		InitialNote: payload.InitialNote,
		Addresses:   dto.AddressesToEntities(payload.Addresses),
	}

	id, err := s.composer.Compose(ctx, req, func(tx pgx.Tx, link entities.EntityLink) (uint64, error) {
		customer := entities.Customer{
			CustomerName:    payload.CustomerName,
			RmAccountNumber: payload.RmAccountNumber,
			Phone:           dto.NullableString(payload.Phone),
			Email:           dto.NullableString(payload.Email),
			Website:         dto.NullableString(payload.Website),
			EntityID:        link.EntityID,
			NoteThreadID:    link.NoteThreadID,
		}
		customer.CreatedBy = actor
		return s.customerRepo.CreateCustomerInTx(ctx, tx, customer)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("customer created", zap.Uint64("customerID", id), zap.String("rmAccountNumber", payload.RmAccountNumber))
	return s.FindCustomer(ctx, id)
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, id uint64, payload dto.UpdateCustomerDTO) (*dto.CustomerDTO, error) {
	current, err := s.customerRepo.FindCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.RmAccountNumber != nil && *payload.RmAccountNumber != current.RmAccountNumber {
		_, err := s.customerRepo.FindByAccountNumber(ctx, *payload.RmAccountNumber)
		if err := ensureUnique(err, "rmAccountNumber", *payload.RmAccountNumber); err != nil {
			return nil, err
		}
	}

	updated := *current
	updated.CustomerName = dto.StringOr(current.CustomerName, payload.CustomerName)
	updated.RmAccountNumber = dto.StringOr(current.RmAccountNumber, payload.RmAccountNumber)
	updated.Phone = dto.OptionalString(current.Phone, payload.Phone)
	updated.Email = dto.OptionalString(current.Email, payload.Email)
	updated.Website = dto.OptionalString(current.Website, payload.Website)
	updated.ActiveStatus = dto.StringOr(current.ActiveStatus, payload.ActiveStatus)
	updated.UpdatedBy = utils.ActorFromCtx(ctx)

	err = s.composer.UpdateWithAddresses(ctx, current.EntityID, dto.AddressesToEntities(payload.Addresses), func(tx pgx.Tx) error {
		return s.customerRepo.UpdateCustomerInTx(ctx, tx, updated)
	})
	if err != nil {
		s.logger.Warn("customer update rolled back", zap.Uint64("customerID", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("customer updated", zap.Uint64("customerID", id))
	return s.FindCustomer(ctx, id)
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id uint64) error {
	if err := s.customerRepo.DeleteCustomer(ctx, id, utils.ActorFromCtx(ctx)); err != nil {
		return err
	}
	s.logger.Info("customer deactivated", zap.Uint64("customerID", id))
	return nil
}
