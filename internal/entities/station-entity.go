package entities

import (
	"github.com/aarondl/null/v8"

	"freight-admin/pkg/types"
)

type Station struct {
	StationID    uint64      `json:"stationId" db:"station_id"`
	CustomerID   uint64      `json:"customerId" db:"customer_id"`
	StationName  string      `json:"stationName" db:"station_name"`
	StationCode  string      `json:"stationCode" db:"station_code"`
	Phone        null.String `json:"phone" db:"phone"`
	Email        null.String `json:"email" db:"email"`
	EntityID     uint64      `json:"entityId" db:"entity_id"`
	NoteThreadID uint64      `json:"noteThreadId" db:"note_thread_id"`
	ActiveStatus string      `json:"activeStatus" db:"active_status"`
	types.Audit
}
