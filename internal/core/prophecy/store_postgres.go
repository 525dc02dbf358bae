// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package prophecy

import (
	"context"
	"fmt"

	"github.com/taibuivan/ecclesia/internal/platform/authz"
	"github.com/taibuivan/ecclesia/internal/platform/database/schema"
	"github.com/taibuivan/ecclesia/internal/platform/dberr"
	"github.com/taibuivan/ecclesia/internal/platform/postgres"
	"github.com/taibuivan/ecclesia/pkg/pagination"
	"github.com/taibuivan/ecclesia/pkg/query"
)

// PostgresRepository implements [Repository] on the prophecies table.
type PostgresRepository struct {
	db postgres.DB
}

// NewPostgresRepository builds a [PostgresRepository].
func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var prophecyColumns = schema.List(schema.Prophecy.Columns())

func scanProphecy(row postgres.Scanner) (*Prophecy, error) {
	prophecy := &Prophecy{}
	err := row.Scan(
		&prophecy.ID, &prophecy.Title, &prophecy.Content, &prophecy.ProphetName, &prophecy.ReceivedOn,
		&prophecy.Status, &prophecy.CreatedBy, &prophecy.CreatedAt, &prophecy.UpdatedAt,
	)
	return prophecy, err
}

// List returns one page of visible prophecies, most recently received first.
func (repository *PostgresRepository) List(ctx context.Context, visibility authz.Filter, params pagination.Params) ([]*Prophecy, int, error) {
	var conditions query.Conditions
	conditions.AddFragment(visibility)

	total, err := postgres.Count(ctx, repository.db, schema.Prophecy.Table, &conditions)
	if err != nil {
		return nil, 0, err
	}

	page, args := conditions.Page(params.Limit, params.Offset())
	sql := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY %s DESC NULLS LAST, %s DESC%s`,
		prophecyColumns, schema.Prophecy.Table, conditions.Where(),
		schema.Prophecy.ReceivedOn, schema.Prophecy.ID, page,
	)

	rows, err := repository.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_prophecies")
	}

	prophecies, err := postgres.Collect(rows, "scan_prophecy", scanProphecy)
	if err != nil {
		return nil, 0, err
	}
	return prophecies, total, nil
}

// FindByID returns prophecy id if visibility admits it.
func (repository *PostgresRepository) FindByID(ctx context.Context, id int64, visibility authz.Filter) (*Prophecy, error) {
	var conditions query.Conditions
	conditions.Add(schema.Prophecy.ID+" = ?", id).AddFragment(visibility)

	sql := fmt.Sprintf(`SELECT %s FROM %s %s`, prophecyColumns, schema.Prophecy.Table, conditions.Where())
	prophecy, err := scanProphecy(repository.db.QueryRow(ctx, sql, conditions.Args()...))
	if err != nil {
		return nil, dberr.Wrap(err, "find_prophecy")
	}
	return prophecy, nil
}

// Create inserts prophecy and fills its id and timestamps.
func (repository *PostgresRepository) Create(ctx context.Context, prophecy *Prophecy) error {
	sql := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s, %s, %s`,
		schema.Prophecy.Table,
		schema.Prophecy.Title, schema.Prophecy.Content, schema.Prophecy.ProphetName,
		schema.Prophecy.ReceivedOn, schema.Prophecy.Status, schema.Prophecy.CreatedBy,
		schema.Prophecy.ID, schema.Prophecy.CreatedAt, schema.Prophecy.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, sql,
		prophecy.Title, prophecy.Content, prophecy.ProphetName,
		prophecy.ReceivedOn, prophecy.Status, prophecy.CreatedBy,
	).Scan(&prophecy.ID, &prophecy.CreatedAt, &prophecy.UpdatedAt)
	return dberr.Wrap(err, "create_prophecy")
}

// Update persists every mutable field of prophecy.
func (repository *PostgresRepository) Update(ctx context.Context, prophecy *Prophecy) error {
	sql := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1
		RETURNING %s`,
		schema.Prophecy.Table,
		schema.Prophecy.Title, schema.Prophecy.Content, schema.Prophecy.ProphetName,
		schema.Prophecy.ReceivedOn, schema.Prophecy.Status, schema.Prophecy.UpdatedAt,
		schema.Prophecy.ID, schema.Prophecy.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, sql,
		prophecy.ID, prophecy.Title, prophecy.Content, prophecy.ProphetName,
		prophecy.ReceivedOn, prophecy.Status,
	).Scan(&prophecy.UpdatedAt)
	return dberr.Wrap(err, "update_prophecy")
}

// UpdateStatus moves prophecy id to status and returns the updated row.
func (repository *PostgresRepository) UpdateStatus(ctx context.Context, id int64, status Status) (*Prophecy, error) {
	sql := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = NOW()
		WHERE %s = $1
		RETURNING %s`,
		schema.Prophecy.Table, schema.Prophecy.Status, schema.Prophecy.UpdatedAt,
		schema.Prophecy.ID, prophecyColumns,
	)

	prophecy, err := scanProphecy(repository.db.QueryRow(ctx, sql, id, status))
	if err != nil {
		return nil, dberr.Wrap(err, "update_prophecy_status")
	}
	return prophecy, nil
}

// Delete removes prophecy id.
func (repository *PostgresRepository) Delete(ctx context.Context, id int64) error {
	sql := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Prophecy.Table, schema.Prophecy.ID)
	tag, err := repository.db.Exec(ctx, sql, id)
	return postgres.Affected(tag, err, "delete_prophecy")
}
