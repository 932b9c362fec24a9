package entities

import (
	"github.com/aarondl/null/v8"

	"freight-admin/pkg/types"
)

type Department struct {
	DepartmentID   uint64      `json:"departmentId" db:"department_id"`
	StationID      uint64      `json:"stationId" db:"station_id"`
	DepartmentName string      `json:"departmentName" db:"department_name"`
	Phone          null.String `json:"phone" db:"phone"`
	Email          null.String `json:"email" db:"email"`
	EntityID       uint64      `json:"entityId" db:"entity_id"`
	NoteThreadID   uint64      `json:"noteThreadId" db:"note_thread_id"`
	ActiveStatus   string      `json:"activeStatus" db:"active_status"`
	types.Audit
}
