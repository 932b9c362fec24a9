package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"freight-admin/internal/repositories"
)

type AuthPermissionServiceInterface interface {
	GetRolePermissionsNames(ctx context.Context, roleID uint64) ([]string, error)
	InvalidateRolePermissionsCache(ctx context.Context, roleID uint64) error
}

type AuthPermissionService struct {
	permissionRepo repositories.PermissionRepositoryInterface
	cacheRepo      repositories.CacheRepositoryInterface
	logger         *zap.Logger
	cacheTTL       time.Duration
}

func NewAuthPermissionService(
	permissionRepo repositories.PermissionRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
	cacheTTL time.Duration,
) AuthPermissionServiceInterface {
	return &AuthPermissionService{
		permissionRepo: permissionRepo,
		cacheRepo:      cacheRepo,
		logger:         logger,
		cacheTTL:       cacheTTL,
	}
}

func rolePermissionsKey(roleID uint64) string {
	return fmt.Sprintf("auth:permissions:role:%d", roleID)
}

// GetRolePermissionsNames reads through the cache. A corrupt or missing entry
// falls back to the database and is rewritten.
func (s *AuthPermissionService) GetRolePermissionsNames(ctx context.Context, roleID uint64) ([]string, error) {
	cacheKey := rolePermissionsKey(roleID)
	var permissions []string

	cached, errGet := s.cacheRepo.Get(ctx, cacheKey)
	if errGet == nil {
		if err := json.Unmarshal([]byte(cached), &permissions); err == nil {
			s.logger.Debug("role permissions served from cache", zap.Uint64("roleID", roleID))
			return permissions, nil
		} else {
			s.logger.Warn("corrupt permission cache entry", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	permissions, err := s.permissionRepo.GetPermissionNamesForRole(ctx, roleID)
	if err != nil {
		s.logger.Error("load role permissions", zap.Uint64("roleID", roleID), zap.Error(err))
		return nil, err
	}

	raw, err := json.Marshal(permissions)
	if err != nil {
		s.logger.Error("encode role permissions", zap.Uint64("roleID", roleID), zap.Error(err))
		return permissions, nil
	}
	if err := s.cacheRepo.Set(ctx, cacheKey, string(raw), s.cacheTTL); err != nil {
		s.logger.Warn("cache role permissions", zap.Uint64("roleID", roleID), zap.Error(err))
	}
	return permissions, nil
}

func (s *AuthPermissionService) InvalidateRolePermissionsCache(ctx context.Context, roleID uint64) error {
	if err := s.cacheRepo.Del(ctx, rolePermissionsKey(roleID)); err != nil {
		s.logger.Error("invalidate role permissions", zap.Uint64("roleID", roleID), zap.Error(err))
		return err
	}
	s.logger.Info("role permission cache invalidated", zap.Uint64("roleID", roleID))
	return nil
}
