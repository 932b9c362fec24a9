package dto

import (
	"time"

	"freight-admin/internal/entities"
)

type CreateUserDTO struct {
	UserName  string `json:"userName" validate:"required,min=3,max=50"`
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	RoleID    uint64 `json:"roleId" validate:"required"`
}

type UpdateUserDTO struct {
	UserName     *string `json:"userName" validate:"omitempty,min=3,max=50"`
	Email        *string `json:"email" validate:"omitempty,email"`
	FirstName    *string `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName     *string `json:"lastName" validate:"omitempty,min=1,max=100"`
	RoleID       *uint64 `json:"roleId" validate:"omitempty,min=1"`
	ActiveStatus *string `json:"activeStatus" validate:"omitempty,active_flag"`
}

type ChangePasswordDTO struct {
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// UserDTO never carries the password hash.
type UserDTO struct {
	UserID       uint64    `json:"userId"`
	UserName     string    `json:"userName"`
	Email        string    `json:"email"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	RoleID       uint64    `json:"roleId"`
	RoleName     string    `json:"roleName"`
	ActiveStatus string    `json:"activeStatus"`
	CreatedAt    time.Time `json:"createdAt"`
	CreatedBy    *uint64   `json:"createdBy,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt"`
	UpdatedBy    *uint64   `json:"updatedBy,omitempty"`
}

func NewUserDTO(u entities.User) UserDTO {
	return UserDTO{
		UserID:       u.UserID,
		UserName:     u.UserName,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		RoleID:       u.RoleID,
		RoleName:     u.RoleName,
		ActiveStatus: u.ActiveStatus,
		CreatedAt:    u.CreatedAt,
		CreatedBy:    u.CreatedBy,
		UpdatedAt:    u.UpdatedAt,
		UpdatedBy:    u.UpdatedBy,
	}
}
