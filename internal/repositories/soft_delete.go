package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	apperrors "freight-admin/pkg/errors"
	"freight-admin/pkg/types"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// softDelete flips active_status to 'N' and stamps the audit columns. Rows
// already inactive count as not found.
func softDelete(ctx context.Context, q Querier, table, idColumn string, id uint64, actor *uint64) error {
	query, args, err := psql.Update(table).
		Set("active_status", types.ActiveStatusNo).
		Set("updated_at", sq.Expr("NOW()")).
		Set("updated_by", actor).
		Where(sq.Eq{idColumn: id, "active_status": types.ActiveStatusYes}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("soft delete %s: %w", table, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
