package dto

import "freight-admin/internal/entities"

type CreateCustomerDTO struct {
	CustomerName    string       `json:"customerName" validate:"required,max=200"`
	RmAccountNumber string       `json:"rmAccountNumber" validate:"required,max=50"`
	Phone           *string      `json:"phone" validate:"omitempty,max=30"`
	Email           *string      `json:"email" validate:"omitempty,email"`
	Website         *string      `json:"website" validate:"omitempty,max=200"`
	Addresses       []AddressDTO `json:"addresses" validate:"omitempty,dive"`
	InitialNote     string       `json:"initialNote" validate:"omitempty,max=4000"`
}

type UpdateCustomerDTO struct {
	CustomerName    *string      `json:"customerName" validate:"omitempty,min=1,max=200"`
	RmAccountNumber *string      `json:"rmAccountNumber" validate:"omitempty,min=1,max=50"`
	Phone           *string      `json:"phone" validate:"omitempty,max=30"`
	Email           *string      `json:"email" validate:"omitempty,max=200"`
	Website         *string      `json:"website" validate:"omitempty,max=200"`
	ActiveStatus    *string      `json:"activeStatus" validate:"omitempty,active_flag"`
	Addresses       []AddressDTO `json:"addresses" validate:"omitempty,dive"`
}

type CustomerDTO struct {
	entities.Customer
	Attachments
}
