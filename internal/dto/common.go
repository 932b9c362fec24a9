package dto

import (
	"github.com/aarondl/null/v8"

	"freight-admin/internal/entities"
)

type AddressDTO struct {
	EntityAddressID uint64  `json:"entityAddressId,omitempty"`
	AddressRole     string  `json:"addressRole" validate:"required,address_role"`
	Line1           string  `json:"line1" validate:"required,max=200"`
	Line2           *string `json:"line2" validate:"omitempty,max=200"`
	City            string  `json:"city" validate:"required,max=100"`
	State           string  `json:"state" validate:"required,max=50"`
	ZipCode         string  `json:"zipCode" validate:"required,zip5"`
}

func (a AddressDTO) ToEntity() entities.EntityAddress {
	return entities.EntityAddress{
		EntityAddressID: a.EntityAddressID,
		AddressRole:     entities.AddressRole(a.AddressRole),
		Address: entities.Address{
			Line1:   a.Line1,
			Line2:   null.StringFromPtr(a.Line2),
			City:    a.City,
			State:   a.State,
			ZipCode: a.ZipCode,
		},
	}
}

func AddressesToEntities(in []AddressDTO) []entities.EntityAddress {
	out := make([]entities.EntityAddress, 0, len(in))
	for _, a := range in {
		out = append(out, a.ToEntity())
	}
	return out
}

type UpdateAddressRoleDTO struct {
	AddressRole string `json:"addressRole" validate:"required,address_role"`
}

// Attachments is embedded in every composed read response.
type Attachments struct {
	Addresses []entities.EntityAddress `json:"addresses"`
	Notes     []entities.NoteMessage   `json:"notes"`
}

type AddNoteDTO struct {
	MessageText string `json:"messageText" validate:"required,max=4000"`
}

// OptionalString turns an update field into a nullable column value: a nil
// pointer keeps current, an empty string clears it.
func OptionalString(current null.String, in *string) null.String {
	if in == nil {
		return current
	}
	if *in == "" {
		return null.String{}
	}
	return null.StringFrom(*in)
}

func StringOr(current string, in *string) string {
	if in == nil {
		return current
	}
	return *in
}

// NullableString maps an optional create field to a column value.
func NullableString(in *string) null.String {
	return OptionalString(null.String{}, in)
}
