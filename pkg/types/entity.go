package types

import "time"

// Audit holds the created/updated stamps shared by master-data rows.
type Audit struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	CreatedBy *uint64   `json:"createdBy,omitempty" db:"created_by"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	UpdatedBy *uint64   `json:"updatedBy,omitempty" db:"updated_by"`
}
