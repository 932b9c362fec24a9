package utils

import (
	"net/url"
	"strconv"
	"strings"

	"freight-admin/pkg/types"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ParseFilterFromQuery reads page, pageSize, search, sort, activeStatus and
// any extra keys listed in passthrough into a Filter.
func ParseFilterFromQuery(query url.Values, passthrough ...string) types.Filter {
	filter := types.Filter{
		Page:         1,
		PageSize:     DefaultPageSize,
		ActiveStatus: types.ActiveStatusYes,
		Filter:       make(map[string]string),
	}

	if p, err := strconv.Atoi(query.Get("page")); err == nil && p > 0 {
		filter.Page = p
	}
	if ps, err := strconv.Atoi(query.Get("pageSize")); err == nil && ps > 0 {
		if ps > MaxPageSize {
			ps = MaxPageSize
		}
		filter.PageSize = ps
	}

	filter.Search = strings.TrimSpace(query.Get("search"))

	if sort := strings.TrimSpace(query.Get("sort")); sort != "" {
		if strings.HasPrefix(sort, "-") {
			filter.SortDesc = true
			sort = sort[1:]
		}
		filter.SortBy = sort
	}

	switch strings.ToUpper(query.Get("activeStatus")) {
	case types.ActiveStatusNo:
		filter.ActiveStatus = types.ActiveStatusNo
	case types.ActiveStatusAll:
		filter.ActiveStatus = types.ActiveStatusAll
	}

	for _, key := range passthrough {
		if v := strings.TrimSpace(query.Get(key)); v != "" {
			filter.Filter[key] = v
		}
	}
	return filter
}
