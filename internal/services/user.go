package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"freight-admin/internal/dto"
	"freight-admin/internal/entities"
	"freight-admin/internal/repositories"
	"freight-admin/pkg/types"
	"freight-admin/pkg/utils"
)

type UserServiceInterface interface {
	GetUsers(ctx context.Context, filter types.Filter) ([]dto.UserDTO, uint64, error)
	FindUser(ctx context.Context, id uint64) (*dto.UserDTO, error)
	CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*dto.UserDTO, error)
	UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) (*dto.UserDTO, error)
	ChangePassword(ctx context.Context, id uint64, payload dto.ChangePasswordDTO) error
	DeleteUser(ctx context.Context, id uint64) error
}

type UserService struct {
	userRepo   repositories.UserRepositoryInterface
	roleRepo   repositories.RoleRepositoryInterface
	tokenStore TokenStoreInterface
	logger     *zap.Logger
}

func NewUserService(
	userRepo repositories.UserRepositoryInterface,
	roleRepo repositories.RoleRepositoryInterface,
	tokenStore TokenStoreInterface,
	logger *zap.Logger,
) UserServiceInterface {
	return &UserService{
		userRepo:   userRepo,
		roleRepo:   roleRepo,
		tokenStore: tokenStore,
		logger:     logger,
	}
}

func (s *UserService) GetUsers(ctx context.Context, filter types.Filter) ([]dto.UserDTO, uint64, error) {
	users, total, err := s.userRepo.GetUsers(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, dto.NewUserDTO(u))
	}
	return out, total, nil
}

func (s *UserService) FindUser(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindUser(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewUserDTO(*user)
	return &out, nil
}

func (s *UserService) checkIdentity(ctx context.Context, userName, email string) error {
	if userName != "" {
		_, err := s.userRepo.FindByUserName(ctx, userName)
		if err := ensureUnique(err, "userName", userName); err != nil {
			return err
		}
	}
	if email != "" {
		_, err := s.userRepo.FindByEmail(ctx, email)
		if err := ensureUnique(err, "email", email); err != nil {
			return err
		}
	}
	return nil
}

func (s *UserService) CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*dto.UserDTO, error) {
	userName := strings.TrimSpace(payload.UserName)
	email := strings.ToLower(strings.TrimSpace(payload.Email))

	if err := s.checkIdentity(ctx, userName, email); err != nil {
		return nil, err
	}
	if _, err := s.roleRepo.FindRole(ctx, payload.RoleID); err != nil {
		return nil, ensureReference(err, "roleId", payload.RoleID)
	}

	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	user := entities.User{
		UserName:     userName,
		Email:        email,
		FirstName:    payload.FirstName,
		LastName:     payload.LastName,
		PasswordHash: hash,
		RoleID:       payload.RoleID,
	}
	user.CreatedBy = utils.ActorFromCtx(ctx)

	id, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	s.logger.Info("user created", zap.Uint64("userID", id), zap.String("userName", userName))
	return s.FindUser(ctx, id)
}

func (s *UserService) UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) (*dto.UserDTO, error) {
	current, err := s.userRepo.FindUser(ctx, id)
	if err != nil {
		return nil, err
	}

	var newName, newEmail string
	if payload.UserName != nil && !strings.EqualFold(*payload.UserName, current.UserName) {
		newName = strings.TrimSpace(*payload.UserName)
	}
	if payload.Email != nil && !strings.EqualFold(*payload.Email, current.Email) {
		newEmail = strings.ToLower(strings.TrimSpace(*payload.Email))
	}
	if err := s.checkIdentity(ctx, newName, newEmail); err != nil {
		return nil, err
	}

	updated := *current
	if newName != "" {
		updated.UserName = newName
	}
	if newEmail != "" {
		updated.Email = newEmail
	}
	updated.FirstName = dto.StringOr(current.FirstName, payload.FirstName)
	updated.LastName = dto.StringOr(current.LastName, payload.LastName)
	if payload.RoleID != nil && *payload.RoleID != current.RoleID {
		if _, err := s.roleRepo.FindRole(ctx, *payload.RoleID); err != nil {
			return nil, ensureReference(err, "roleId", *payload.RoleID)
		}
		updated.RoleID = *payload.RoleID
	}
	updated.ActiveStatus = dto.StringOr(current.ActiveStatus, payload.ActiveStatus)
	updated.UpdatedBy = utils.ActorFromCtx(ctx)

	if err := s.userRepo.UpdateUser(ctx, updated); err != nil {
		return nil, err
	}

	// a deactivated user or a role change must not keep old sessions alive
	if updated.ActiveStatus != types.ActiveStatusYes || updated.RoleID != current.RoleID {
		s.revokeSessions(ctx, id)
	}
	return s.FindUser(ctx, id)
}

func (s *UserService) ChangePassword(ctx context.Context, id uint64, payload dto.ChangePasswordDTO) error {
	if _, err := s.userRepo.FindUser(ctx, id); err != nil {
		return err
	}
	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, id, hash, utils.ActorFromCtx(ctx)); err != nil {
		return err
	}
	s.revokeSessions(ctx, id)
	s.logger.Info("user password changed", zap.Uint64("userID", id))
	return nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint64) error {
	if err := s.userRepo.DeleteUser(ctx, id, utils.ActorFromCtx(ctx)); err != nil {
		return err
	}
	s.revokeSessions(ctx, id)
	s.logger.Info("user deactivated", zap.Uint64("userID", id))
	return nil
}

func (s *UserService) revokeSessions(ctx context.Context, userID uint64) {
	if err := s.tokenStore.RevokeAll(ctx, userID); err != nil {
		s.logger.Warn("revoke user sessions", zap.Uint64("userID", userID), zap.Error(err))
	}
}
