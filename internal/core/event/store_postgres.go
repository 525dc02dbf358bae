// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package event

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

// PostgresRepository implements [Repository] on the events table.
type PostgresRepository struct {
	db postgres.DB
}

// NewPostgresRepository builds a [PostgresRepository].
func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var eventColumns = schema.List(schema.Event.Columns())

func scanEvent(row postgres.Scanner) (*Event, error) {
	event := &Event{}
	err := row.Scan(
		&event.ID, &event.Title, &event.Description, &event.Location, &event.StartsAt,
		&event.EndsAt, &event.ImageURL, &event.CreatedBy, &event.CreatedAt, &event.UpdatedAt,
	)
	return event, err
}

/*
List returns one page of events.

Upcoming listings run soonest first; full listings run latest first.
*/
func (repository *PostgresRepository) List(ctx context.Context, filter ListFilter, params pagination.Params) ([]*Event, int, error) {
	var conditions query.Conditions
	conditions.AddFragment(filter.Visibility)

	order := "DESC"
	if filter.UpcomingAfter != nil {
		conditions.Add(fmt.Sprintf("COALESCE(%s, %s) >= ?", schema.Event.EndsAt, schema.Event.StartsAt), *filter.UpcomingAfter)
		order = "ASC"
	}

	total, err := postgres.Count(ctx, repository.db, schema.Event.Table, &conditions)
	if err != nil {
		return nil, 0, err
	}

	page, args := conditions.Page(params.Limit, params.Offset())
	sql := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY %s %s, %s ASC%s`,
		eventColumns, schema.Event.Table, conditions.Where(),
		schema.Event.StartsAt, order, schema.Event.ID, page,
	)

	rows, err := repository.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_events")
	}

	events, err := postgres.Collect(rows, "scan_event", scanEvent)
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// FindByID returns event id if visibility admits it.
func (repository *PostgresRepository) FindByID(ctx context.Context, id int64, visibility authz.Filter) (*Event, error) {
	var conditions query.Conditions
	conditions.Add(schema.Event.ID+" = ?", id).AddFragment(visibility)

	sql := fmt.Sprintf(`SELECT %s FROM %s %s`, eventColumns, schema.Event.Table, conditions.Where())
	event, err := scanEvent(repository.db.QueryRow(ctx, sql, conditions.Args()...))
	if err != nil {
		return nil, dberr.Wrap(err, "find_event")
	}
	return event, nil
}

// Create inserts event and fills its id and timestamps.
func (repository *PostgresRepository) Create(ctx context.Context, event *Event) error {
	sql := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s, %s, %s`,
		schema.Event.Table,
		schema.Event.Title, schema.Event.Description, schema.Event.Location,
		schema.Event.StartsAt, schema.Event.EndsAt, schema.Event.ImageURL, schema.Event.CreatedBy,
		schema.Event.ID, schema.Event.CreatedAt, schema.Event.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, sql,
		event.Title, event.Description, event.Location,
		event.StartsAt, event.EndsAt, event.ImageURL, event.CreatedBy,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
	return dberr.Wrap(err, "create_event")
}

// Update persists every mutable field of event.
func (repository *PostgresRepository) Update(ctx context.Context, event *Event) error {
	sql := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = NOW()
		WHERE %s = $1
		RETURNING %s`,
		schema.Event.Table,
		schema.Event.Title, schema.Event.Description, schema.Event.Location,
		schema.Event.StartsAt, schema.Event.EndsAt, schema.Event.ImageURL, schema.Event.UpdatedAt,
		schema.Event.ID, schema.Event.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, sql,
		event.ID, event.Title, event.Description, event.Location,
		event.StartsAt, event.EndsAt, event.ImageURL,
	).Scan(&event.UpdatedAt)
	return dberr.Wrap(err, "update_event")
}

// Delete removes event id.
func (repository *PostgresRepository) Delete(ctx context.Context, id int64) error {
	sql := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Event.Table, schema.Event.ID)
	tag, err := repository.db.Exec(ctx, sql, id)
	return postgres.Affected(tag, err, "delete_event")
}
