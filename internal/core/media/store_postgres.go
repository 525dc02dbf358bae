// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

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

// PostgresRepository implements [Repository] on the media table.
type PostgresRepository struct {
	db postgres.DB
}

// NewPostgresRepository builds a [PostgresRepository].
func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var mediaColumns = schema.List(schema.Media.Columns())

func scanMedia(row postgres.Scanner) (*Media, error) {
	media := &Media{}
	err := row.Scan(
		&media.ID, &media.Title, &media.Description, &media.Kind, &media.URL, &media.ThumbnailURL,
		&media.Speaker, &media.RecordedOn, &media.CreatedBy, &media.CreatedAt, &media.UpdatedAt,
	)
	return media, err
}

// List returns one page of recordings, most recently recorded first.
func (repository *PostgresRepository) List(ctx context.Context, filter ListFilter, params pagination.Params) ([]*Media, int, error) {
	var conditions query.Conditions
	conditions.AddFragment(filter.Visibility)
	if filter.Kind != "" {
		conditions.Add(schema.Media.Kind+" = ?", filter.Kind)
	}

	total, err := postgres.Count(ctx, repository.db, schema.Media.Table, &conditions)
	if err != nil {
		return nil, 0, err
	}

	page, args := conditions.Page(params.Limit, params.Offset())
	sql := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY %s DESC NULLS LAST, %s DESC%s`,
		mediaColumns, schema.Media.Table, conditions.Where(),
		schema.Media.RecordedOn, schema.Media.ID, page,
	)

	rows, err := repository.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_media")
	}

	items, err := postgres.Collect(rows, "scan_media", scanMedia)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// FindByID returns recording id if visibility admits it.
func (repository *PostgresRepository) FindByID(ctx context.Context, id int64, visibility authz.Filter) (*Media, error) {
	var conditions query.Conditions
	conditions.Add(schema.Media.ID+" = ?", id).AddFragment(visibility)

	sql := fmt.Sprintf(`SELECT %s FROM %s %s`, mediaColumns, schema.Media.Table, conditions.Where())
	media, err := scanMedia(repository.db.QueryRow(ctx, sql, conditions.Args()...))
	if err != nil {
		return nil, dberr.Wrap(err, "find_media")
	}
	return media, nil
}

// Create inserts media and fills its id and timestamps.
func (repository *PostgresRepository) Create(ctx context.Context, media *Media) error {
	sql := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s, %s, %s`,
		schema.Media.Table,
		schema.Media.Title, schema.Media.Description, schema.Media.Kind, schema.Media.URL,
		schema.Media.ThumbnailURL, schema.Media.Speaker, schema.Media.RecordedOn, schema.Media.CreatedBy,
		schema.Media.ID, schema.Media.CreatedAt, schema.Media.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, sql,
		media.Title, media.Description, media.Kind, media.URL,
		media.ThumbnailURL, media.Speaker, media.RecordedOn, media.CreatedBy,
	).Scan(&media.ID, &media.CreatedAt, &media.UpdatedAt)
	return dberr.Wrap(err, "create_media")
}

// Update persists every mutable field of media.
func (repository *PostgresRepository) Update(ctx context.Context, media *Media) error {
	sql := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = NOW()
		WHERE %s = $1
		RETURNING %s`,
		schema.Media.Table,
		schema.Media.Title, schema.Media.Description, schema.Media.Kind, schema.Media.URL,
		schema.Media.ThumbnailURL, schema.Media.Speaker, schema.Media.RecordedOn, schema.Media.UpdatedAt,
		schema.Media.ID, schema.Media.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, sql,
		media.ID, media.Title, media.Description, media.Kind, media.URL,
		media.ThumbnailURL, media.Speaker, media.RecordedOn,
	).Scan(&media.UpdatedAt)
	return dberr.Wrap(err, "update_media")
}

// Delete removes recording id.
func (repository *PostgresRepository) Delete(ctx context.Context, id int64) error {
	sql := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Media.Table, schema.Media.ID)
	tag, err := repository.db.Exec(ctx, sql, id)
	return postgres.Affected(tag, err, "delete_media")
}
