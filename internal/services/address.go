package services

import (
	"context"

	"go.uber.org/zap"

	"freight-admin/internal/entities"
	"freight-admin/internal/repositories"
)

type AddressServiceInterface interface {
	ListByEntity(ctx context.Context, entityID uint64) ([]entities.EntityAddress, error)
	UpdateRole(ctx context.Context, entityAddressID uint64, role entities.AddressRole) (*entities.EntityAddress, error)
}

type AddressService struct {
	addressRepo repositories.AddressRepositoryInterface
	entityRepo  repositories.EntityRepositoryInterface
	logger      *zap.Logger
}

func NewAddressService(
	addressRepo repositories.AddressRepositoryInterface,
	entityRepo repositories.EntityRepositoryInterface,
	logger *zap.Logger,
) AddressServiceInterface {
	return &AddressService{addressRepo: addressRepo, entityRepo: entityRepo, logger: logger}
}

func (s *AddressService) ListByEntity(ctx context.Context, entityID uint64) ([]entities.EntityAddress, error) {
	if _, err := s.entityRepo.FindEntity(ctx, entityID); err != nil {
		return nil, err
	}
	addresses, err := s.addressRepo.ListByEntity(ctx, entityID)
	if err != nil {
		return nil, err
	}
	if addresses == nil {
		addresses = []entities.EntityAddress{}
	}
	return addresses, nil
}

// UpdateRole changes only the role of the mapping; the address content is untouched.
func (s *AddressService) UpdateRole(ctx context.Context, entityAddressID uint64, role entities.AddressRole) (*entities.EntityAddress, error) {
	if err := s.addressRepo.UpdateRole(ctx, entityAddressID, role); err != nil {
		return nil, err
	}
	s.logger.Info("address role updated", zap.Uint64("entityAddressID", entityAddressID), zap.String("role", string(role)))
	return s.addressRepo.FindEntityAddress(ctx, entityAddressID)
}
