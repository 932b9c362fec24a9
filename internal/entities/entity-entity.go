package entities

import "time"

type EntityType string

const (
	EntityTypeCustomer          EntityType = "CUSTOMER"
	EntityTypeStation           EntityType = "STATION"
	EntityTypeDepartment        EntityType = "DEPARTMENT"
	EntityTypeCustomerPersonnel EntityType = "CUSTOMER_PERSONNEL"
	EntityTypeAccessorial       EntityType = "ACCESSORIAL"
)

// Entity is the immutable join target that addresses and note threads hang
// off. Rows are only ever inserted.
type Entity struct {
	EntityID   uint64     `json:"entityId" db:"entity_id"`
	EntityType EntityType `json:"entityType" db:"entity_type"`
	EntityName string     `json:"entityName" db:"entity_name"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
}

// EntityLink is what a business row stores after composition.
type EntityLink struct {
	EntityID     uint64
	NoteThreadID uint64
}
