package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"freight-admin/internal/dto"
	"freight-admin/internal/entities"
	"freight-admin/internal/repositories"
	"freight-admin/pkg/config"
	apperrors "freight-admin/pkg/errors"
	"freight-admin/pkg/service"
	"freight-admin/pkg/types"
	"freight-admin/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.AuthResponseDTO, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponseDTO, error)
	Logout(ctx context.Context, userID uint64) error
	RevokeToken(ctx context.Context, refreshToken string) error
	Me(ctx context.Context, userID uint64) (*dto.UserProfileDTO, error)
}

type AuthService struct {
	userRepo          repositories.UserRepositoryInterface
	cacheRepo         repositories.CacheRepositoryInterface
	tokenStore        TokenStoreInterface
	jwtService        service.JWTService
	permissionService AuthPermissionServiceInterface
	logger            *zap.Logger
	cfg               *config.AuthConfig
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	tokenStore TokenStoreInterface,
	jwtService service.JWTService,
	permissionService AuthPermissionServiceInterface,
	logger *zap.Logger,
	cfg *config.AuthConfig,
) AuthServiceInterface {
	return &AuthService{
		userRepo:          userRepo,
		cacheRepo:         cacheRepo,
		tokenStore:        tokenStore,
		jwtService:        jwtService,
		permissionService: permissionService,
		logger:            logger,
		cfg:               cfg,
	}
}

func loginAttemptsKey(userName string) string {
	return fmt.Sprintf("auth:login_attempts:%s", strings.ToLower(userName))
}

// Login answers "invalid username or password" for an unknown user and for
// a wrong password alike, and runs bcrypt in both cases.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.AuthResponseDTO, error) {
	userName := strings.TrimSpace(payload.LoginUserName)
	logger := s.logger.With(zap.String("loginUserName", userName))

	if err := s.checkLockout(ctx, userName); err != nil {
		logger.Warn("login refused, account locked")
		return nil, err
	}

	user, err := s.userRepo.FindByUserName(ctx, userName)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		utils.BurnPasswordCheck(payload.Password)
		s.recordFailedAttempt(ctx, userName)
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, payload.Password); err != nil {
		s.recordFailedAttempt(ctx, userName)
		logger.Info("login failed, wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}
	if user.ActiveStatus != types.ActiveStatusYes {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.cacheRepo.Del(ctx, loginAttemptsKey(userName)); err != nil {
		logger.Warn("reset login attempts", zap.Error(err))
	}

	resp, err := s.issue(ctx, user)
	if err != nil {
		return nil, err
	}
	logger.Info("user logged in", zap.Uint64("userID", user.UserID))
	return resp, nil
}

func (s *AuthService) checkLockout(ctx context.Context, userName string) error {
	raw, err := s.cacheRepo.Get(ctx, loginAttemptsKey(userName))
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	attempts, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	if attempts >= s.cfg.MaxLoginAttempts {
		return apperrors.ErrAccountLocked
	}
	return nil
}

// recordFailedAttempt counts failures per user name. The window starts at
// the first failure and lasts LockoutDuration.
func (s *AuthService) recordFailedAttempt(ctx context.Context, userName string) {
	key := loginAttemptsKey(userName)
	attempts, err := s.cacheRepo.Incr(ctx, key)
	if err != nil {
		s.logger.Warn("count failed login", zap.String("loginUserName", userName), zap.Error(err))
		return
	}
	if attempts == 1 {
		if _, err := s.cacheRepo.Expire(ctx, key, s.cfg.LockoutDuration); err != nil {
			s.logger.Warn("set lockout window", zap.String("loginUserName", userName), zap.Error(err))
		}
	}
	if attempts >= int64(s.cfg.MaxLoginAttempts) {
		s.logger.Warn("login locked", zap.String("loginUserName", userName), zap.Int64("attempts", attempts))
	}
}

func (s *AuthService) issue(ctx context.Context, user *entities.User) (*dto.AuthResponseDTO, error) {
	pair, err := s.jwtService.GenerateTokens(service.TokenSubject{
		UserID:   user.UserID,
		UserName: user.UserName,
		Email:    user.Email,
		RoleID:   user.RoleID,
	})
	if err != nil {
		return nil, err
	}
	if err := s.tokenStore.Save(ctx, pair.RefreshTokenID, user.UserID, s.jwtService.GetRefreshTokenTTL()); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}
	return &dto.AuthResponseDTO{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         dto.NewUserDTO(*user),
	}, nil
}

// Refresh rotates the pair. The presented refresh token is claimed
// atomically before a new one is issued, so it can be used only once.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponseDTO, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	owner, err := s.tokenStore.Claim(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if owner != claims.UserID {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindUser(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	if user.ActiveStatus != types.ActiveStatusYes {
		return nil, apperrors.ErrUnauthorized
	}

	s.logger.Debug("refresh token rotated", zap.Uint64("userID", user.UserID))
	return s.issue(ctx, user)
}

// Logout revokes every refresh token of the user.
func (s *AuthService) Logout(ctx context.Context, userID uint64) error {
	if err := s.tokenStore.RevokeAll(ctx, userID); err != nil {
		return err
	}
	s.logger.Info("user logged out everywhere", zap.Uint64("userID", userID))
	return nil
}

func (s *AuthService) RevokeToken(ctx context.Context, refreshToken string) error {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return err
	}
	return s.tokenStore.Revoke(ctx, claims.ID)
}

func (s *AuthService) Me(ctx context.Context, userID uint64) (*dto.UserProfileDTO, error) {
	user, err := s.userRepo.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	permissions, err := s.permissionService.GetRolePermissionsNames(ctx, user.RoleID)
	if err != nil {
		return nil, err
	}
	if permissions == nil {
		permissions = []string{}
	}
	return &dto.UserProfileDTO{UserDTO: dto.NewUserDTO(*user), Permissions: permissions}, nil
}
