// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package team

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

// PostgresRepository implements [Repository] on team_members.
type PostgresRepository struct {
	db postgres.DB
}

// NewPostgresRepository builds a [PostgresRepository].
func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var memberColumns = schema.List(schema.TeamMember.Columns())

func scanMember(row postgres.Scanner) (*Member, error) {
	member := &Member{}
	err := row.Scan(
		&member.ID, &member.Name, &member.Position, &member.Bio, &member.PhotoURL,
		&member.SortOrder, &member.CreatedBy, &member.CreatedAt, &member.UpdatedAt,
	)
	return member, err
}

// List returns one page of profiles in display order.
func (repository *PostgresRepository) List(ctx context.Context, visibility authz.Filter, params pagination.Params) ([]*Member, int, error) {
	var conditions query.Conditions
	conditions.AddFragment(visibility)

	total, err := postgres.Count(ctx, repository.db, schema.TeamMember.Table, &conditions)
	if err != nil {
		return nil, 0, err
	}

	page, args := conditions.Page(params.Limit, params.Offset())
	sql := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY %s ASC, %s ASC%s`,
		memberColumns, schema.TeamMember.Table, conditions.Where(),
		schema.TeamMember.SortOrder, schema.TeamMember.ID, page,
	)

	rows, err := repository.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_team_members")
	}

	items, err := postgres.Collect(rows, "scan_team_member", scanMember)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// FindByID returns profile id if visibility admits it.
func (repository *PostgresRepository) FindByID(ctx context.Context, id int64, visibility authz.Filter) (*Member, error) {
	var conditions query.Conditions
	conditions.Add(schema.TeamMember.ID+" = ?", id).AddFragment(visibility)

	sql := fmt.Sprintf(`SELECT %s FROM %s %s`, memberColumns, schema.TeamMember.Table, conditions.Where())
	member, err := scanMember(repository.db.QueryRow(ctx, sql, conditions.Args()...))
	if err != nil {
		return nil, dberr.Wrap(err, "find_team_member")
	}
	return member, nil
}

// Create inserts member and fills its id and timestamps.
func (repository *PostgresRepository) Create(ctx context.Context, member *Member) error {
	sql := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s, %s, %s`,
		schema.TeamMember.Table,
		schema.TeamMember.Name, schema.TeamMember.Position, schema.TeamMember.Bio,
		schema.TeamMember.PhotoURL, schema.TeamMember.SortOrder, schema.TeamMember.CreatedBy,
		schema.TeamMember.ID, schema.TeamMember.CreatedAt, schema.TeamMember.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, sql,
		member.Name, member.Position, member.Bio, member.PhotoURL, member.SortOrder, member.CreatedBy,
	).Scan(&member.ID, &member.CreatedAt, &member.UpdatedAt)
	return dberr.Wrap(err, "create_team_member")
}

// Update persists every mutable field of member.
func (repository *PostgresRepository) Update(ctx context.Context, member *Member) error {
	sql := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1
		RETURNING %s`,
		schema.TeamMember.Table,
		schema.TeamMember.Name, schema.TeamMember.Position, schema.TeamMember.Bio,
		schema.TeamMember.PhotoURL, schema.TeamMember.SortOrder, schema.TeamMember.UpdatedAt,
		schema.TeamMember.ID, schema.TeamMember.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, sql,
		member.ID, member.Name, member.Position, member.Bio, member.PhotoURL, member.SortOrder,
	).Scan(&member.UpdatedAt)
	return dberr.Wrap(err, "update_team_member")
}

// Delete removes profile id.
func (repository *PostgresRepository) Delete(ctx context.Context, id int64) error {
	sql := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.TeamMember.Table, schema.TeamMember.ID)
	tag, err := repository.db.Exec(ctx, sql, id)
	return postgres.Affected(tag, err, "delete_team_member")
}
