package entities

import (
	"github.com/aarondl/null/v8"

	"freight-admin/pkg/types"
)

type RateType string

const (
	RateTypeTransport RateType = "TRANSPORT"
	RateTypeWarehouse RateType = "WAREHOUSE"
)

type CustomerRate struct {
	RateID              uint64               `json:"rateId" db:"rate_id"`
	OriginZoneID        uint64               `json:"originZoneId" db:"origin_zone_id"`
	OriginZoneName      string               `json:"originZoneName" db:"origin_zone_name"`
	DestinationZoneID   uint64               `json:"destinationZoneId" db:"destination_zone_id"`
	DestinationZoneName string               `json:"destinationZoneName" db:"destination_zone_name"`
	ActiveStatus        string               `json:"activeStatus" db:"active_status"`
	ExpiryDate          null.Time            `json:"expiryDate" db:"expiry_date"`
	Details             []CustomerRateDetail `json:"details" db:"-"`
	types.Audit
}

// CustomerRateDetail is one cell of the tiered charge table ("Min Charge",
// "100", "1000", ..., "Max Charge").
type CustomerRateDetail struct {
	RateDetailID uint64  `json:"rateDetailId" db:"rate_detail_id"`
	RateID       uint64  `json:"rateId" db:"rate_id"`
	RateField    string  `json:"rateField" db:"rate_field"`
	ChargeValue  float64 `json:"chargeValue" db:"charge_value"`
	PerUnitFlag  bool    `json:"perUnitFlag" db:"per_unit_flag"`
}

type CustomerRateWarehouse struct {
	RateID       uint64  `json:"rateId" db:"rate_id"`
	MinRate      float64 `json:"minRate" db:"min_rate"`
	RatePerPound float64 `json:"ratePerPound" db:"rate_per_pound"`
	MaxRate      float64 `json:"maxRate" db:"max_rate"`
	Department   string  `json:"department" db:"department"`
	Warehouse    string  `json:"warehouse" db:"warehouse"`
	ActiveStatus string  `json:"activeStatus" db:"active_status"`
	types.Audit
}

// StationRate binds a station to a rate. RateType decides whether RateID
// points at customer_rate or customer_rate_warehouse.
type StationRate struct {
	StationRateID uint64   `json:"stationRateId" db:"station_rate_id"`
	StationID     uint64   `json:"stationId" db:"station_id"`
	RateID        uint64   `json:"rateId" db:"rate_id"`
	RateType      RateType `json:"rateType" db:"rate_type"`
	ActiveStatus  string   `json:"activeStatus" db:"active_status"`
	types.Audit
}
