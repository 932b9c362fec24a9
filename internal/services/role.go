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

type RoleServiceInterface interface {
	GetRoles(ctx context.Context, filter types.Filter) ([]entities.Role, uint64, error)
	FindRole(ctx context.Context, id uint64) (*dto.RoleDTO, error)
	CreateRole(ctx context.Context, payload dto.CreateRoleDTO) (*dto.RoleDTO, error)
	UpdateRole(ctx context.Context, id uint64, payload dto.UpdateRoleDTO) (*dto.RoleDTO, error)
	DeleteRole(ctx context.Context, id uint64) error
}

type RoleService struct {
	txManager             repositories.TxManagerInterface
	repo                  repositories.RoleRepositoryInterface
	permissionRepo        repositories.PermissionRepositoryInterface
	authPermissionService AuthPermissionServiceInterface
	logger                *zap.Logger
}

func NewRoleService(
	txManager repositories.TxManagerInterface,
	repo repositories.RoleRepositoryInterface,
	permissionRepo repositories.PermissionRepositoryInterface,
	authPermissionService AuthPermissionServiceInterface,
	logger *zap.Logger,
) RoleServiceInterface {
	return &RoleService{
		txManager:             txManager,
		repo:                  repo,
		permissionRepo:        permissionRepo,
		authPermissionService: authPermissionService,
		logger:                logger,
	}
}

func (s *RoleService) GetRoles(ctx context.Context, filter types.Filter) ([]entities.Role, uint64, error) {
	return s.repo.GetRoles(ctx, filter)
}

func (s *RoleService) FindRole(ctx context.Context, id uint64) (*dto.RoleDTO, error) {
	role, err := s.repo.FindRole(ctx, id)
	if err != nil {
		return nil, err
	}
	granted, err := s.repo.GetRolePermissions(ctx, id)
	if err != nil {
		return nil, err
	}
	catalog, err := s.permissionRepo.GetAllPermissions(ctx)
	if err != nil {
		return nil, err
	}
	if granted == nil {
		granted = []entities.Permission{}
	}
	return &dto.RoleDTO{
		Role:            *role,
		Permissions:     granted,
		PermissionFlags: buildPermissionFlags(catalog, granted),
	}, nil
}

func (s *RoleService) CreateRole(ctx context.Context, payload dto.CreateRoleDTO) (*dto.RoleDTO, error) {
	_, err := s.repo.FindByName(ctx, payload.RoleName)
	if err := ensureUnique(err, "roleName", payload.RoleName); err != nil {
		return nil, err
	}

	catalog, err := s.permissionRepo.GetAllPermissions(ctx)
	if err != nil {
		return nil, err
	}
	permissionIDs := flattenPermissionFlags(payload.Permissions, catalog)

	role := entities.Role{
		RoleName:    payload.RoleName,
		Description: dto.NullableString(payload.Description),
	}
	role.CreatedBy = utils.ActorFromCtx(ctx)

	var id uint64
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		id, err = s.repo.CreateRoleInTx(ctx, tx, role)
		if err != nil {
			return err
		}
		return s.repo.LinkPermissionsToRoleInTx(ctx, tx, id, permissionIDs)
	})
	if err != nil {
		s.logger.Warn("role create rolled back", zap.String("roleName", payload.RoleName), zap.Error(err))
		return nil, err
	}

	s.logger.Info("role created", zap.Uint64("roleID", id), zap.Int("permissions", len(permissionIDs)))
	return s.FindRole(ctx, id)
}

// UpdateRole rewrites the role row. A non-nil permissions object replaces
// every grant of the role in the same transaction.
func (s *RoleService) UpdateRole(ctx context.Context, id uint64, payload dto.UpdateRoleDTO) (*dto.RoleDTO, error) {
	current, err := s.repo.FindRole(ctx, id)
	if err != nil {
		return nil, err
	}
	if payload.RoleName != nil && *payload.RoleName != current.RoleName {
		_, err := s.repo.FindByName(ctx, *payload.RoleName)
		if err := ensureUnique(err, "roleName", *payload.RoleName); err != nil {
			return nil, err
		}
	}

	var permissionIDs []uint64
	if payload.Permissions != nil {
		catalog, err := s.permissionRepo.GetAllPermissions(ctx)
		if err != nil {
			return nil, err
		}
		permissionIDs = flattenPermissionFlags(payload.Permissions, catalog)
	}

	updated := *current
	updated.RoleName = dto.StringOr(current.RoleName, payload.RoleName)
	updated.Description = dto.OptionalString(current.Description, payload.Description)
	updated.ActiveStatus = dto.StringOr(current.ActiveStatus, payload.ActiveStatus)
	updated.UpdatedBy = utils.ActorFromCtx(ctx)

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.repo.UpdateRoleInTx(ctx, tx, updated); err != nil {
			return err
		}
		if payload.Permissions == nil {
			return nil
		}
		if err := s.repo.UnlinkAllPermissionsFromRoleInTx(ctx, tx, id); err != nil {
			return err
		}
		return s.repo.LinkPermissionsToRoleInTx(ctx, tx, id, permissionIDs)
	})
	if err != nil {
		s.logger.Warn("role update rolled back", zap.Uint64("roleID", id), zap.Error(err))
		return nil, err
	}

	s.invalidate(ctx, id)
	return s.FindRole(ctx, id)
}

func (s *RoleService) DeleteRole(ctx context.Context, id uint64) error {
	if err := s.repo.DeleteRole(ctx, id, utils.ActorFromCtx(ctx)); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	s.logger.Info("role deactivated", zap.Uint64("roleID", id))
	return nil
}

// invalidate never fails the write; the cached entry still expires after its TTL.
func (s *RoleService) invalidate(ctx context.Context, roleID uint64) {
	if err := s.authPermissionService.InvalidateRolePermissionsCache(ctx, roleID); err != nil {
		s.logger.Warn("role written but permission cache not invalidated", zap.Uint64("roleID", roleID), zap.Error(err))
	}
}
