// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package prayer

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

// PostgresRepository implements [Repository] on prayer_requests.
type PostgresRepository struct {
	db postgres.DB
}

// NewPostgresRepository builds a [PostgresRepository].
func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var requestColumns = schema.List(schema.PrayerRequest.Columns())

func scanRequest(row postgres.Scanner) (*Request, error) {
	request := &Request{}
	err := row.Scan(
		&request.ID, &request.Name, &request.Email, &request.Content, &request.Status,
		&request.SubmittedBy, &request.CreatedAt, &request.UpdatedAt,
	)
	return request, err
}

// List returns one page of requests, newest first.
func (repository *PostgresRepository) List(ctx context.Context, visibility authz.Filter, params pagination.Params) ([]*Request, int, error) {
	var conditions query.Conditions
	conditions.AddFragment(visibility)

	total, err := postgres.Count(ctx, repository.db, schema.PrayerRequest.Table, &conditions)
	if err != nil {
		return nil, 0, err
	}

	page, args := conditions.Page(params.Limit, params.Offset())
	sql := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY %s DESC, %s DESC%s`,
		requestColumns, schema.PrayerRequest.Table, conditions.Where(),
		schema.PrayerRequest.CreatedAt, schema.PrayerRequest.ID, page,
	)

	rows, err := repository.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_prayer_requests")
	}

	items, err := postgres.Collect(rows, "scan_prayer_request", scanRequest)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// FindByID returns request id if visibility admits it.
func (repository *PostgresRepository) FindByID(ctx context.Context, id int64, visibility authz.Filter) (*Request, error) {
	var conditions query.Conditions
	conditions.Add(schema.PrayerRequest.ID+" = ?", id).AddFragment(visibility)

	sql := fmt.Sprintf(`SELECT %s FROM %s %s`, requestColumns, schema.PrayerRequest.Table, conditions.Where())
	request, err := scanRequest(repository.db.QueryRow(ctx, sql, conditions.Args()...))
	if err != nil {
		return nil, dberr.Wrap(err, "find_prayer_request")
	}
	return request, nil
}

// Create inserts request and fills its id, status and timestamps.
func (repository *PostgresRepository) Create(ctx context.Context, request *Request) error {
	sql := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s, %s, %s, %s`,
		schema.PrayerRequest.Table,
		schema.PrayerRequest.Name, schema.PrayerRequest.Email, schema.PrayerRequest.Content, schema.PrayerRequest.SubmittedBy,
		schema.PrayerRequest.ID, schema.PrayerRequest.Status, schema.PrayerRequest.CreatedAt, schema.PrayerRequest.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, sql,
		request.Name, request.Email, request.Content, request.SubmittedBy,
	).Scan(&request.ID, &request.Status, &request.CreatedAt, &request.UpdatedAt)
	return dberr.Wrap(err, "create_prayer_request")
}

// UpdateStatus moves request id to status and returns the updated row.
func (repository *PostgresRepository) UpdateStatus(ctx context.Context, id int64, status Status) (*Request, error) {
	sql := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = NOW()
		WHERE %s = $1
		RETURNING %s`,
		schema.PrayerRequest.Table, schema.PrayerRequest.Status, schema.PrayerRequest.UpdatedAt,
		schema.PrayerRequest.ID, requestColumns,
	)

	request, err := scanRequest(repository.db.QueryRow(ctx, sql, id, status))
	if err != nil {
		return nil, dberr.Wrap(err, "update_prayer_request_status")
	}
	return request, nil
}

// Delete removes request id.
func (repository *PostgresRepository) Delete(ctx context.Context, id int64) error {
	sql := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.PrayerRequest.Table, schema.PrayerRequest.ID)
	tag, err := repository.db.Exec(ctx, sql, id)
	return postgres.Affected(tag, err, "delete_prayer_request")
}
