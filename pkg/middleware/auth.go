package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"freight-admin/internal/authz"
	"freight-admin/pkg/api"
	apperrors "freight-admin/pkg/errors"
	"freight-admin/pkg/service"
	"freight-admin/pkg/utils"
)

// PermissionProvider resolves the permission names granted to a role.
type PermissionProvider interface {
	GetRolePermissionsNames(ctx context.Context, roleID uint64) ([]string, error)
}

type AuthMiddleware struct {
	jwtService  service.JWTService
	permissions PermissionProvider
	logger      *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, permissions PermissionProvider, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtSvc,
		permissions: permissions,
		logger:      logger,
	}
}

// Auth accepts only Bearer access tokens and puts the caller and the role's
// permission set on the request context.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return api.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return api.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}

		claims, err := m.jwtService.ValidateAccessToken(strings.TrimSpace(parts[1]))
		if err != nil {
			m.logger.Debug("access token rejected", zap.Error(err))
			return api.ErrorResponse(c, err, m.logger)
		}

		names, err := m.permissions.GetRolePermissionsNames(c.Request().Context(), claims.RoleID)
		if err != nil {
			return api.ErrorResponse(c, err, m.logger)
		}

		ctx := utils.WithActor(c.Request().Context(), claims.UserID, claims.RoleID, claims.UserName)
		ctx = utils.WithPermissions(ctx, authz.PermissionSet(names))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequirePermission lets the request through when the caller holds any of
// the named permissions. It must run after Auth.
func (m *AuthMiddleware) RequirePermission(required ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			perms, err := utils.GetPermissionsMapFromCtx(c.Request().Context())
			if err != nil || !authz.Can(perms, required...) {
				m.logger.Debug("permission denied",
					zap.Strings("required", required),
					zap.String("path", c.Path()))
				return api.ErrorResponse(c, apperrors.ErrForbidden, m.logger)
			}
			return next(c)
		}
	}
}
