// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package note

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

// PostgresRepository implements [Repository] on the notes table.
type PostgresRepository struct {
	db postgres.DB
}

// NewPostgresRepository builds a [PostgresRepository].
func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var noteColumns = schema.List(schema.Note.Columns())

func scanNote(row postgres.Scanner) (*Note, error) {
	note := &Note{}
	err := row.Scan(
		&note.ID, &note.OwnerID, &note.Title, &note.Scripture, &note.Content,
		&note.PreachedOn, &note.CreatedAt, &note.UpdatedAt,
	)
	return note, err
}

// List returns one page of visible notes, most recent first.
func (repository *PostgresRepository) List(ctx context.Context, visibility authz.Filter, params pagination.Params) ([]*Note, int, error) {
	var conditions query.Conditions
	conditions.AddFragment(visibility)

	total, err := postgres.Count(ctx, repository.db, schema.Note.Table, &conditions)
	if err != nil {
		return nil, 0, err
	}

	page, args := conditions.Page(params.Limit, params.Offset())
	sql := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY %s DESC NULLS LAST, %s DESC%s`,
		noteColumns, schema.Note.Table, conditions.Where(),
		schema.Note.PreachedOn, schema.Note.ID, page,
	)

	rows, err := repository.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_notes")
	}

	notes, err := postgres.Collect(rows, "scan_note", scanNote)
	if err != nil {
		return nil, 0, err
	}
	return notes, total, nil
}

// FindByID returns note id if visibility admits it.
func (repository *PostgresRepository) FindByID(ctx context.Context, id int64, visibility authz.Filter) (*Note, error) {
	var conditions query.Conditions
	conditions.Add(schema.Note.ID+" = ?", id).AddFragment(visibility)

	sql := fmt.Sprintf(`SELECT %s FROM %s %s`, noteColumns, schema.Note.Table, conditions.Where())
	note, err := scanNote(repository.db.QueryRow(ctx, sql, conditions.Args()...))
	if err != nil {
		return nil, dberr.Wrap(err, "find_note")
	}
	return note, nil
}

// Create inserts note and fills its id and timestamps.
func (repository *PostgresRepository) Create(ctx context.Context, note *Note) error {
	sql := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s, %s, %s`,
		schema.Note.Table,
		schema.Note.OwnerID, schema.Note.Title, schema.Note.Scripture, schema.Note.Content, schema.Note.PreachedOn,
		schema.Note.ID, schema.Note.CreatedAt, schema.Note.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, sql,
		note.OwnerID, note.Title, note.Scripture, note.Content, note.PreachedOn,
	).Scan(&note.ID, &note.CreatedAt, &note.UpdatedAt)
	return dberr.Wrap(err, "create_note")
}

// Update persists the mutable fields of note when visibility admits the row.
func (repository *PostgresRepository) Update(ctx context.Context, note *Note, visibility authz.Filter) error {
	var conditions query.Conditions
	conditions.Add(schema.Note.ID+" = ?", note.ID).AddFragment(visibility)

	// SET parameters are numbered after the WHERE parameters.
	setStart := conditions.Next()

	sql := fmt.Sprintf(`
		UPDATE %s SET %s = $%d, %s = $%d, %s = $%d, %s = $%d, %s = NOW()
		%s
		RETURNING %s`,
		schema.Note.Table,
		schema.Note.Title, setStart, schema.Note.Scripture, setStart+1,
		schema.Note.Content, setStart+2, schema.Note.PreachedOn, setStart+3,
		schema.Note.UpdatedAt,
		conditions.Where(),
		schema.Note.UpdatedAt,
	)

	args := append(conditions.Args(), note.Title, note.Scripture, note.Content, note.PreachedOn)
	err := repository.db.QueryRow(ctx, sql, args...).Scan(&note.UpdatedAt)
	return dberr.Wrap(err, "update_note")
}

// Delete removes note id when visibility admits it.
func (repository *PostgresRepository) Delete(ctx context.Context, id int64, visibility authz.Filter) error {
	var conditions query.Conditions
	conditions.Add(schema.Note.ID+" = ?", id).AddFragment(visibility)

	sql := fmt.Sprintf(`DELETE FROM %s %s`, schema.Note.Table, conditions.Where())
	tag, err := repository.db.Exec(ctx, sql, conditions.Args()...)
	return postgres.Affected(tag, err, "delete_note")
}
