package dto

import "freight-admin/internal/entities"

// PermissionFlags is the wire shape {MODULE: {permissionName: granted}}.
type PermissionFlags map[string]map[string]bool

type CreateRoleDTO struct {
	RoleName    string          `json:"roleName" validate:"required,max=50"`
	Description *string         `json:"description" validate:"omitempty,max=200"`
	Permissions PermissionFlags `json:"permissions"`
}

// UpdateRoleDTO replaces every grant of the role when Permissions is non-nil.
type UpdateRoleDTO struct {
	RoleName     *string         `json:"roleName" validate:"omitempty,min=1,max=50"`
	Description  *string         `json:"description" validate:"omitempty,max=200"`
	ActiveStatus *string         `json:"activeStatus" validate:"omitempty,active_flag"`
	Permissions  PermissionFlags `json:"permissions"`
}

type RoleDTO struct {
	entities.Role
	Permissions     []entities.Permission `json:"permissions"`
	PermissionFlags PermissionFlags       `json:"permissionFlags"`
}

// GroupedPermissionsDTO maps a module name to its permission names.
type GroupedPermissionsDTO map[string][]string
