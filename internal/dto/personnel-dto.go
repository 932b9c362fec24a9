package dto

import "freight-admin/internal/entities"

type CreatePersonnelDTO struct {
	CustomerID  uint64       `json:"customerId" validate:"required"`
	FirstName   string       `json:"firstName" validate:"required,max=100"`
	LastName    string       `json:"lastName" validate:"required,max=100"`
	Email       string       `json:"email" validate:"required,email"`
	Phone       *string      `json:"phone" validate:"omitempty,max=30"`
	JobTitle    *string      `json:"jobTitle" validate:"omitempty,max=100"`
	Addresses   []AddressDTO `json:"addresses" validate:"omitempty,dive"`
	InitialNote string       `json:"initialNote" validate:"omitempty,max=4000"`
}

type UpdatePersonnelDTO struct {
	FirstName    *string      `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName     *string      `json:"lastName" validate:"omitempty,min=1,max=100"`
	Email        *string      `json:"email" validate:"omitempty,email"`
	Phone        *string      `json:"phone" validate:"omitempty,max=30"`
	JobTitle     *string      `json:"jobTitle" validate:"omitempty,max=100"`
	ActiveStatus *string      `json:"activeStatus" validate:"omitempty,active_flag"`
	Addresses    []AddressDTO `json:"addresses" validate:"omitempty,dive"`
}

type PersonnelDTO struct {
	entities.CustomerPersonnel
	Attachments
}
