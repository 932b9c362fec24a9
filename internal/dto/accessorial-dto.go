package dto

import "freight-admin/internal/entities"

type CreateAccessorialDTO struct {
	AccessorialName   string  `json:"accessorialName" validate:"required,max=100"`
	Description       *string `json:"description" validate:"omitempty,max=500"`
	DefaultChargeType string  `json:"defaultChargeType" validate:"omitempty,charge_type"`
}

type UpdateAccessorialDTO struct {
	AccessorialName   *string `json:"accessorialName" validate:"omitempty,min=1,max=100"`
	Description       *string `json:"description" validate:"omitempty,max=500"`
	DefaultChargeType *string `json:"defaultChargeType" validate:"omitempty,charge_type"`
	ActiveStatus      *string `json:"activeStatus" validate:"omitempty,active_flag"`
}

type CreateEntityAccessorialDTO struct {
	OwnerEntityID uint64  `json:"ownerEntityId" validate:"required"`
	AccessorialID uint64  `json:"accessorialId" validate:"required"`
	ChargeType    string  `json:"chargeType" validate:"required,charge_type"`
	ChargeValue   float64 `json:"chargeValue" validate:"gte=0"`
	InitialNote   string  `json:"initialNote" validate:"omitempty,max=4000"`
}

type UpdateEntityAccessorialDTO struct {
	ChargeType  *string  `json:"chargeType" validate:"omitempty,charge_type"`
	ChargeValue *float64 `json:"chargeValue" validate:"omitempty,gte=0"`
}

type EntityAccessorialDTO struct {
	entities.EntityAccessorial
	Notes []entities.NoteMessage `json:"notes"`
}
