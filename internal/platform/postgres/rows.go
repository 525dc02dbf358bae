// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/ecclesia/internal/platform/dberr"
	"github.com/taibuivan/ecclesia/pkg/query"
)

// # Row Helpers

// Scanner is satisfied by [pgx.Row] and [pgx.Rows], so one scan function
// serves single-row and multi-row reads.
type Scanner interface {
	Scan(dest ...any) error
}

// Collect scans every row with scan and closes rows.
func Collect[T any](rows pgx.Rows, action string, scan func(Scanner) (T, error)) ([]T, error) {
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, dberr.Wrap(err, action)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, action)
	}
	return items, nil
}

// Count returns the number of rows of table matching conditions.
func Count(ctx context.Context, db DB, table string, conditions *query.Conditions) (int, error) {
	var total int
	sql := fmt.Sprintf(`SELECT COUNT(*) FROM %s %s`, table, conditions.Where())
	if err := db.QueryRow(ctx, sql, conditions.Args()...).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_"+table)
	}
	return total, nil
}

// Affected converts an update or delete that touched no rows into [dberr.ErrNotFound].
func Affected(tag interface{ RowsAffected() int64 }, err error, action string) error {
	if err != nil {
		return dberr.Wrap(err, action)
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
