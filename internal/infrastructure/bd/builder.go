package db

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"freight-admin/pkg/types"
)

// ListDef describes how a list endpoint maps public field names onto
// columns. Only keys present in Columns can be filtered or sorted on.
// KeyColumn must be unique per row; it breaks ties so pages stay stable.
type ListDef struct {
	Columns       map[string]string
	SearchColumns []string
	ActiveColumn  string
	DefaultOrder  string
	KeyColumn     string
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// LikePattern wraps term for a substring ILIKE match with the wildcard
// characters in term taken literally.
func LikePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// ApplyFilters adds the search, active status and equality filters. It is
// shared between the COUNT and the page query so both see the same rows.
func ApplyFilters(builder sq.SelectBuilder, filter types.Filter, def ListDef) sq.SelectBuilder {
	if filter.Search != "" && len(def.SearchColumns) > 0 {
		pat := LikePattern(filter.Search)
		or := make(sq.Or, 0, len(def.SearchColumns))
		for _, col := range def.SearchColumns {
			or = append(or, sq.ILike{col: pat})
		}
		builder = builder.Where(or)
	}

	if def.ActiveColumn != "" && filter.ActiveStatus != types.ActiveStatusAll {
		status := filter.ActiveStatus
		if status == "" {
			status = types.ActiveStatusYes
		}
		builder = builder.Where(sq.Eq{def.ActiveColumn: status})
	}

	for field, val := range filter.Filter {
		dbCol, ok := def.Columns[field]
		if !ok {
			continue
		}
		builder = builder.Where(sq.Eq{dbCol: val})
	}
	return builder
}

// ApplyPage adds ORDER BY, LIMIT and OFFSET. The key column is always the
// last sort term.
func ApplyPage(builder sq.SelectBuilder, filter types.Filter, def ListDef) sq.SelectBuilder {
	orderCol := ""
	if dbCol, ok := def.Columns[filter.SortBy]; ok {
		dir := "ASC"
		if filter.SortDesc {
			dir = "DESC"
		}
		builder = builder.OrderBy(fmt.Sprintf("%s %s", dbCol, dir))
		orderCol = dbCol
	} else if def.DefaultOrder != "" {
		builder = builder.OrderBy(def.DefaultOrder)
		orderCol = strings.Fields(def.DefaultOrder)[0]
	}
	if def.KeyColumn != "" && orderCol != def.KeyColumn {
		builder = builder.OrderBy(def.KeyColumn + " ASC")
	}

	if filter.PageSize > 0 {
		builder = builder.Limit(uint64(filter.PageSize)).Offset(uint64(filter.Offset()))
	}
	return builder
}
