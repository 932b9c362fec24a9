package entities

import (
	"github.com/aarondl/null/v8"

	"freight-admin/pkg/types"
)

type Customer struct {
	CustomerID      uint64      `json:"customerId" db:"customer_id"`
	CustomerName    string      `json:"customerName" db:"customer_name"`
	RmAccountNumber string      `json:"rmAccountNumber" db:"rm_account_number"`
	Phone           null.String `json:"phone" db:"phone"`
	Email           null.String `json:"email" db:"email"`
	Website         null.String `json:"website" db:"website"`
	EntityID        uint64      `json:"entityId" db:"entity_id"`
	NoteThreadID    uint64      `json:"noteThreadId" db:"note_thread_id"`
	ActiveStatus    string      `json:"activeStatus" db:"active_status"`
	types.Audit
}
