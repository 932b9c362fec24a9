package entities

import (
	"github.com/aarondl/null/v8"

	"freight-admin/pkg/types"
)

type Role struct {
	RoleID       uint64      `json:"roleId" db:"role_id"`
	RoleName     string      `json:"roleName" db:"role_name"`
	Description  null.String `json:"description" db:"description"`
	ActiveStatus string      `json:"activeStatus" db:"active_status"`
	types.Audit
}

// Permission is a row of the static, pre-seeded catalog.
type Permission struct {
	PermissionID   uint64      `json:"permissionId" db:"permission_id"`
	ModuleName     string      `json:"moduleName" db:"module_name"`
	PermissionName string      `json:"permissionName" db:"permission_name"`
	UIFieldName    null.String `json:"uiFieldName" db:"ui_field_name"`
}
