package dto

import "freight-admin/internal/entities"

type CreateZoneDTO struct {
	ZoneName    string  `json:"zoneName" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

type UpdateZoneDTO struct {
	ZoneName     *string `json:"zoneName" validate:"omitempty,min=1,max=100"`
	Description  *string `json:"description" validate:"omitempty,max=500"`
	ActiveStatus *string `json:"activeStatus" validate:"omitempty,active_flag"`
}

// AddZoneZipDTO carries either ZipCode or a RangeStart/RangeEnd pair.
type AddZoneZipDTO struct {
	ZipCode    string `json:"zipCode" validate:"omitempty,zip5"`
	RangeStart string `json:"rangeStart" validate:"omitempty,zip5"`
	RangeEnd   string `json:"rangeEnd" validate:"omitempty,zip5"`
}

type ZoneDTO struct {
	entities.Zone
	Zips []entities.ZoneZip `json:"zips,omitempty"`
}
