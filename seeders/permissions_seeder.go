package seeders

import (
	"context"
	"sort"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"freight-admin/internal/authz"
)

type catalogRow struct {
	Module string
	Name   string
}

// catalogRows flattens authz.Modules in a stable order.
func catalogRows() []catalogRow {
	modules := make([]string, 0, len(authz.Modules))
	for module := range authz.Modules {
		modules = append(modules, module)
	}
	sort.Strings(modules)

	var rows []catalogRow
	for _, module := range modules {
		for _, name := range authz.Modules[module] {
			rows = append(rows, catalogRow{Module: module, Name: name})
		}
	}
	return rows
}

func permissionInsert(rows []catalogRow) sq.InsertBuilder {
	b := sq.Insert("permission").
		Columns("module_name", "permission_name", "ui_field_name").
		Suffix("ON CONFLICT (permission_name) DO NOTHING").
		PlaceholderFormat(sq.Dollar)
	for _, r := range rows {
		b = b.Values(r.Module, r.Name, r.Name)
	}
	return b
}

func seedPermissions(ctx context.Context, db *pgxpool.Pool) (int64, error) {
	query, args, err := permissionInsert(catalogRows()).ToSql()
	if err != nil {
		return 0, err
	}
	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
