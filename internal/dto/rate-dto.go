package dto

import (
	"time"

	"freight-admin/internal/entities"
)

type RateDetailDTO struct {
	RateField   string  `json:"rateField" validate:"required,max=50"`
	ChargeValue float64 `json:"chargeValue" validate:"gte=0"`
	PerUnitFlag bool    `json:"perUnitFlag"`
}

type CreateTransportRateDTO struct {
	OriginZoneID      uint64          `json:"originZoneId" validate:"required"`
	DestinationZoneID uint64          `json:"destinationZoneId" validate:"required"`
	ExpiryDate        *time.Time      `json:"expiryDate"`
	Details           []RateDetailDTO `json:"details" validate:"omitempty,dive"`
}

// UpdateTransportRateDTO replaces the detail table whenever Details is sent.
type UpdateTransportRateDTO struct {
	OriginZoneID      *uint64          `json:"originZoneId" validate:"omitempty,min=1"`
	DestinationZoneID *uint64          `json:"destinationZoneId" validate:"omitempty,min=1"`
	ExpiryDate        *time.Time       `json:"expiryDate"`
	ActiveStatus      *string          `json:"activeStatus" validate:"omitempty,active_flag"`
	Details           *[]RateDetailDTO `json:"details" validate:"omitempty,dive"`
}

func DetailsToEntities(in []RateDetailDTO) []entities.CustomerRateDetail {
	out := make([]entities.CustomerRateDetail, 0, len(in))
	for _, d := range in {
		out = append(out, entities.CustomerRateDetail{
			RateField:   d.RateField,
			ChargeValue: d.ChargeValue,
			PerUnitFlag: d.PerUnitFlag,
		})
	}
	return out
}

type CreateWarehouseRateDTO struct {
	MinRate      float64 `json:"minRate" validate:"gte=0"`
	RatePerPound float64 `json:"ratePerPound" validate:"gte=0"`
	MaxRate      float64 `json:"maxRate" validate:"gte=0,gtefield=MinRate"`
	Department   string  `json:"department" validate:"required,max=100"`
	Warehouse    string  `json:"warehouse" validate:"required,max=100"`
}

type UpdateWarehouseRateDTO struct {
	MinRate      *float64 `json:"minRate" validate:"omitempty,gte=0"`
	RatePerPound *float64 `json:"ratePerPound" validate:"omitempty,gte=0"`
	MaxRate      *float64 `json:"maxRate" validate:"omitempty,gte=0"`
	Department   *string  `json:"department" validate:"omitempty,min=1,max=100"`
	Warehouse    *string  `json:"warehouse" validate:"omitempty,min=1,max=100"`
	ActiveStatus *string  `json:"activeStatus" validate:"omitempty,active_flag"`
}

type AssignStationRateDTO struct {
	RateID   uint64 `json:"rateId" validate:"required"`
	RateType string `json:"rateType" validate:"required,rate_type"`
}

// StationRateDTO carries exactly one of Transport or Warehouse, chosen by RateType.
type StationRateDTO struct {
	entities.StationRate
	Transport *entities.CustomerRate          `json:"transport,omitempty"`
	Warehouse *entities.CustomerRateWarehouse `json:"warehouse,omitempty"`
}
