package entities

import (
	"github.com/aarondl/null/v8"

	"freight-admin/pkg/types"
)

type ChargeType string

const (
	ChargeTypePerPound  ChargeType = "PER_POUND"
	ChargeTypeFlatValue ChargeType = "FLAT_VALUE"
	ChargeTypeHourly    ChargeType = "HOURLY"
)

type Accessorial struct {
	AccessorialID     uint64      `json:"accessorialId" db:"accessorial_id"`
	AccessorialName   string      `json:"accessorialName" db:"accessorial_name"`
	Description       null.String `json:"description" db:"description"`
	DefaultChargeType ChargeType  `json:"defaultChargeType" db:"default_charge_type"`
	ActiveStatus      string      `json:"activeStatus" db:"active_status"`
	types.Audit
}

// EntityAccessorial prices one accessorial for one owning entity. It has its
// own ACCESSORIAL entity tag and note thread.
type EntityAccessorial struct {
	EntityAccessorialID uint64     `json:"entityAccessorialId" db:"entity_accessorial_id"`
	OwnerEntityID       uint64     `json:"ownerEntityId" db:"owner_entity_id"`
	AccessorialID       uint64     `json:"accessorialId" db:"accessorial_id"`
	AccessorialName     string     `json:"accessorialName" db:"accessorial_name"`
	ChargeType          ChargeType `json:"chargeType" db:"charge_type"`
	ChargeValue         float64    `json:"chargeValue" db:"charge_value"`
	EntityID            uint64     `json:"entityId" db:"entity_id"`
	NoteThreadID        uint64     `json:"noteThreadId" db:"note_thread_id"`
	ActiveStatus        string     `json:"activeStatus" db:"active_status"`
	types.Audit
}
