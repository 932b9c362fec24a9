package entities

import (
	"github.com/aarondl/null/v8"

	"freight-admin/pkg/types"
)

type CustomerPersonnel struct {
	PersonnelID  uint64      `json:"personnelId" db:"personnel_id"`
	CustomerID   uint64      `json:"customerId" db:"customer_id"`
	FirstName    string      `json:"firstName" db:"first_name"`
	LastName     string      `json:"lastName" db:"last_name"`
	Email        string      `json:"email" db:"email"`
	Phone        null.String `json:"phone" db:"phone"`
	JobTitle     null.String `json:"jobTitle" db:"job_title"`
	EntityID     uint64      `json:"entityId" db:"entity_id"`
	NoteThreadID uint64      `json:"noteThreadId" db:"note_thread_id"`
	ActiveStatus string      `json:"activeStatus" db:"active_status"`
	types.Audit
}
