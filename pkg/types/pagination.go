package types

type Pagination struct {
	Total      uint64 `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	TotalPages int    `json:"totalPages"`
}

func NewPagination(total uint64, page, pageSize int) Pagination {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + uint64(pageSize) - 1) / uint64(pageSize))
	}
	return Pagination{Total: total, Page: page, PageSize: pageSize, TotalPages: totalPages}
}
