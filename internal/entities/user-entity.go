package entities

import "freight-admin/pkg/types"

type User struct {
	UserID       uint64 `json:"userId" db:"user_id"`
	UserName     string `json:"userName" db:"user_name"`
	Email        string `json:"email" db:"email"`
	FirstName    string `json:"firstName" db:"first_name"`
	LastName     string `json:"lastName" db:"last_name"`
	PasswordHash string `json:"-" db:"password_hash"`
	RoleID       uint64 `json:"roleId" db:"role_id"`
	RoleName     string `json:"roleName" db:"role_name"`
	ActiveStatus string `json:"activeStatus" db:"active_status"`
	types.Audit
}
