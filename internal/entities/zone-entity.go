package entities

import (
	"time"

	"github.com/aarondl/null/v8"

	"freight-admin/pkg/types"
)

type Zone struct {
	ZoneID       uint64      `json:"zoneId" db:"zone_id"`
	ZoneName     string      `json:"zoneName" db:"zone_name"`
	Description  null.String `json:"description" db:"description"`
	ActiveStatus string      `json:"activeStatus" db:"active_status"`
	types.Audit
}

// ZoneZip holds either a single ZipCode or a RangeStart/RangeEnd pair.
type ZoneZip struct {
	ZoneZipID  uint64      `json:"zoneZipId" db:"zone_zip_id"`
	ZoneID     uint64      `json:"zoneId" db:"zone_id"`
	ZipCode    null.String `json:"zipCode" db:"zip_code"`
	RangeStart null.String `json:"rangeStart" db:"range_start"`
	RangeEnd   null.String `json:"rangeEnd" db:"range_end"`
	CreatedAt  time.Time   `json:"createdAt" db:"created_at"`
	CreatedBy  *uint64     `json:"createdBy,omitempty" db:"created_by"`
}
