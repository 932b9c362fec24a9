package dto

import "freight-admin/internal/entities"

type CreateDepartmentDTO struct {
	StationID      uint64       `json:"stationId" validate:"required"`
	DepartmentName string       `json:"departmentName" validate:"required,max=200"`
	Phone          *string      `json:"phone" validate:"omitempty,max=30"`
	Email          *string      `json:"email" validate:"omitempty,email"`
	Addresses      []AddressDTO `json:"addresses" validate:"omitempty,dive"`
	InitialNote    string       `json:"initialNote" validate:"omitempty,max=4000"`
}

type UpdateDepartmentDTO struct {
	DepartmentName *string      `json:"departmentName" validate:"omitempty,min=1,max=200"`
	Phone          *string      `json:"phone" validate:"omitempty,max=30"`
	Email          *string      `json:"email" validate:"omitempty,max=200"`
	ActiveStatus   *string      `json:"activeStatus" validate:"omitempty,active_flag"`
	Addresses      []AddressDTO `json:"addresses" validate:"omitempty,dive"`
}

type DepartmentDTO struct {
	entities.Department
	Attachments
}
