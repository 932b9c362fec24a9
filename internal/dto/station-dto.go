package dto

import "freight-admin/internal/entities"

type CreateStationDTO struct {
	CustomerID  uint64       `json:"customerId" validate:"required"`
	StationName string       `json:"stationName" validate:"required,max=200"`
	StationCode string       `json:"stationCode" validate:"required,max=20"`
	Phone       *string      `json:"phone" validate:"omitempty,max=30"`
	Email       *string      `json:"email" validate:"omitempty,email"`
	Addresses   []AddressDTO `json:"addresses" validate:"omitempty,dive"`
	InitialNote string       `json:"initialNote" validate:"omitempty,max=4000"`
}

type UpdateStationDTO struct {
	StationName  *string      `json:"stationName" validate:"omitempty,min=1,max=200"`
	StationCode  *string      `json:"stationCode" validate:"omitempty,min=1,max=20"`
	Phone        *string      `json:"phone" validate:"omitempty,max=30"`
	Email        *string      `json:"email" validate:"omitempty,max=200"`
	ActiveStatus *string      `json:"activeStatus" validate:"omitempty,active_flag"`
	Addresses    []AddressDTO `json:"addresses" validate:"omitempty,dive"`
}

type StationDTO struct {
	entities.Station
	Attachments
}
