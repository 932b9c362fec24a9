package types

// Active status flags used by every soft-deletable table.
const (
	ActiveStatusYes = "Y"
	ActiveStatusNo  = "N"
	ActiveStatusAll = "ALL"
)

// Filter represents query parameters for filtering and pagination.
type Filter struct {
	Search       string            `json:"search,omitempty"`
	SortBy       string            `json:"sort_by,omitempty"`
	SortDesc     bool              `json:"sort_desc,omitempty"`
	Filter       map[string]string `json:"filter,omitempty"`
	ActiveStatus string            `json:"active_status"`
	Page         int               `json:"page"`
	PageSize     int               `json:"page_size"`
}

// Offset is the zero-based row offset of the requested page.
func (f Filter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}

// http://localhost:8080/api/customers?search=acme&sort=-customerName&activeStatus=Y&page=2&pageSize=20
