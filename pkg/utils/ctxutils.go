package utils

import (
	"context"

	"freight-admin/pkg/contextkeys"
	apperrors "freight-admin/pkg/errors"
)

func GetUserIDFromCtx(ctx context.Context) (uint64, error) {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(uint64)
	if !ok || userID == 0 {
		return 0, apperrors.ErrUserIDNotFoundInContext
	}
	return userID, nil
}

func GetUserRoleIDFromCtx(ctx context.Context) (uint64, error) {
	roleID, ok := ctx.Value(contextkeys.UserRoleIDKey).(uint64)
	if !ok {
		return 0, apperrors.ErrUnauthorized
	}
	return roleID, nil
}

// ActorFromCtx returns the authenticated user id for audit columns, or nil
// for unauthenticated contexts such as seeders.
func ActorFromCtx(ctx context.Context) *uint64 {
	userID, err := GetUserIDFromCtx(ctx)
	if err != nil {
		return nil
	}
	return &userID
}

func WithActor(ctx context.Context, userID, roleID uint64, userName string) context.Context {
	ctx = context.WithValue(ctx, contextkeys.UserIDKey, userID)
	ctx = context.WithValue(ctx, contextkeys.UserRoleIDKey, roleID)
	return context.WithValue(ctx, contextkeys.UserNameKey, userName)
}

func WithPermissions(ctx context.Context, permissions map[string]bool) context.Context {
	return context.WithValue(ctx, contextkeys.UserPermissionsKey, permissions)
}

func GetPermissionsMapFromCtx(ctx context.Context) (map[string]bool, error) {
	permissions, ok := ctx.Value(contextkeys.UserPermissionsKey).(map[string]bool)
	if !ok || permissions == nil {
		return nil, apperrors.ErrForbidden
	}
	return permissions, nil
}
