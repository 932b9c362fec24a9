package services

import (
	"context"

	"go.uber.org/zap"

	"freight-admin/internal/dto"
	"freight-admin/internal/entities"
	"freight-admin/internal/repositories"
)

type PermissionServiceInterface interface {
	GetAllPermissions(ctx context.Context) ([]entities.Permission, error)
	GetGroupedPermissions(ctx context.Context) (dto.GroupedPermissionsDTO, error)
}

type PermissionService struct {
	repo   repositories.PermissionRepositoryInterface
	logger *zap.Logger
}

func NewPermissionService(repo repositories.PermissionRepositoryInterface, logger *zap.Logger) PermissionServiceInterface {
	return &PermissionService{repo: repo, logger: logger}
}

func (s *PermissionService) GetAllPermissions(ctx context.Context) ([]entities.Permission, error) {
	return s.repo.GetAllPermissions(ctx)
}

func (s *PermissionService) GetGroupedPermissions(ctx context.Context) (dto.GroupedPermissionsDTO, error) {
	catalog, err := s.repo.GetAllPermissions(ctx)
	if err != nil {
		return nil, err
	}
	grouped := make(dto.GroupedPermissionsDTO)
	for _, p := range catalog {
		grouped[p.ModuleName] = append(grouped[p.ModuleName], p.PermissionName)
	}
	return grouped, nil
}
