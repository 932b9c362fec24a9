package authz

// Permission catalog. Values equal permission.permission_name rows seeded by
// the 00002 migration.
const (
	// MAINTENANCE
	ViewUser   = "canViewUser"
	CreateUser = "canCreateUser"
	UpdateUser = "canUpdateUser"
	DeleteUser = "canDeleteUser"
	ViewRole   = "canViewRole"
	CreateRole = "canCreateRole"
	UpdateRole = "canUpdateRole"
	DeleteRole = "canDeleteRole"

	// CUSTOMER
	ViewCustomer    = "canViewCustomer"
	CreateCustomer  = "canCreateCustomer"
	UpdateCustomer  = "canUpdateCustomer"
	DeleteCustomer  = "canDeleteCustomer"
	ViewPersonnel   = "canViewPersonnel"
	ManagePersonnel = "canManagePersonnel"

	// STATION
	ViewStation      = "canViewStation"
	ManageStation    = "canManageStation"
	ViewDepartment   = "canViewDepartment"
	ManageDepartment = "canManageDepartment"

	// RATE
	ViewRate   = "canViewRate"
	ManageRate = "canManageRate"
	ViewZone   = "canViewZone"
	ManageZone = "canManageZone"

	// ACCESSORIAL
	ViewAccessorial   = "canViewAccessorial"
	ManageAccessorial = "canManageAccessorial"

	// NOTES
	ViewNotes = "canViewNotes"
	AddNotes  = "canAddNotes"
)

// Modules groups the catalog the way the admin console renders checkboxes.
var Modules = map[string][]string{
	"MAINTENANCE": {ViewUser, CreateUser, UpdateUser, DeleteUser, ViewRole, CreateRole, UpdateRole, DeleteRole},
	"CUSTOMER":    {ViewCustomer, CreateCustomer, UpdateCustomer, DeleteCustomer, ViewPersonnel, ManagePersonnel},
	"STATION":     {ViewStation, ManageStation, ViewDepartment, ManageDepartment},
	"RATE":        {ViewRate, ManageRate, ViewZone, ManageZone},
	"ACCESSORIAL": {ViewAccessorial, ManageAccessorial},
	"NOTES":       {ViewNotes, AddNotes},
}
