package entities

import (
	"github.com/aarondl/null/v8"

	"freight-admin/pkg/types"
)

type AddressRole string

const (
	AddressRoleCorporate AddressRole = "Corporate"
	AddressRoleBilling   AddressRole = "Billing"
	AddressRolePrimary   AddressRole = "Primary"
)

type Address struct {
	AddressID uint64      `json:"addressId" db:"address_id"`
	Line1     string      `json:"line1" db:"line1"`
	Line2     null.String `json:"line2" db:"line2"`
	City      string      `json:"city" db:"city"`
	State     string      `json:"state" db:"state"`
	ZipCode   string      `json:"zipCode" db:"zip_code"`
	types.Audit
}

// EntityAddress is an address as seen through entity_address_map.
type EntityAddress struct {
	EntityAddressID uint64      `json:"entityAddressId" db:"entity_address_id"`
	EntityID        uint64      `json:"entityId" db:"entity_id"`
	AddressRole     AddressRole `json:"addressRole" db:"address_role"`
	Address
}
