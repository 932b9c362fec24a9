package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	db "freight-admin/internal/infrastructure/bd"
	"freight-admin/pkg/types"
)

type listQuery struct {
	From    string
	Joins   []string
	Columns []string
	Where   []sq.Sqlizer
}

func (l listQuery) builder(columns ...string) sq.SelectBuilder {
	b := psql.Select(columns...).From(l.From)
	for _, j := range l.Joins {
		b = b.LeftJoin(j)
	}
	for _, w := range l.Where {
		b = b.Where(w)
	}
	return b
}

// listPage counts the filtered rows and then fetches one page of them. A page
// past the end yields an empty slice and the full total.
func listPage[T any](ctx context.Context, q Querier, l listQuery, filter types.Filter, def db.ListDef, scan func(pgx.Row) (*T, error)) ([]T, uint64, error) {
	countSQL, countArgs, err := db.ApplyFilters(l.builder("COUNT(*)"), filter, def).ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", l.From, err)
	}
	if total == 0 || uint64(filter.Offset()) >= total {
		return []T{}, total, nil
	}

	pageBuilder := db.ApplyPage(db.ApplyFilters(l.builder(l.Columns...), filter, def), filter, def)
	query, args, err := pageBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", l.From, err)
	}
	defer rows.Close()

	items := make([]T, 0, filter.PageSize)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *item)
	}
	return items, total, rows.Err()
}

// findOne runs a single-row select built from l plus where.
func findOne[T any](ctx context.Context, q Querier, l listQuery, where sq.Sqlizer, scan func(pgx.Row) (*T, error)) (*T, error) {
	query, args, err := l.builder(l.Columns...).Where(where).ToSql()
	if err != nil {
		return nil, err
	}
	return scan(q.QueryRow(ctx, query, args...))
}
