// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sitecontent

import (
	"context"
	"fmt"

	"github.com/taibuivan/ecclesia/internal/platform/authz"
	"github.com/taibuivan/ecclesia/internal/platform/database/schema"
	"github.com/taibuivan/ecclesia/internal/platform/dberr"
	"github.com/taibuivan/ecclesia/internal/platform/postgres"
	"github.com/taibuivan/ecclesia/pkg/query"
)

// PostgresRepository implements [Repository] on site_content.
type PostgresRepository struct {
	db postgres.DB
}

// NewPostgresRepository builds a [PostgresRepository].
func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var blockColumns = schema.List(schema.SiteContent.Columns())

func scanBlock(row postgres.Scanner) (*Block, error) {
	block := &Block{}
	err := row.Scan(&block.Key, &block.Title, &block.Body, &block.UpdatedBy, &block.UpdatedAt)
	return block, err
}

// List returns every block ordered by key. The set is small and unpaged.
func (repository *PostgresRepository) List(ctx context.Context, visibility authz.Filter) ([]*Block, error) {
	var conditions query.Conditions
	conditions.AddFragment(visibility)

	sql := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY %s`,
		blockColumns, schema.SiteContent.Table, conditions.Where(), schema.SiteContent.Key,
	)

	rows, err := repository.db.Query(ctx, sql, conditions.Args()...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_site_content")
	}
	return postgres.Collect(rows, "scan_site_content", scanBlock)
}

// FindByKey returns block key if visibility admits it.
func (repository *PostgresRepository) FindByKey(ctx context.Context, key string, visibility authz.Filter) (*Block, error) {
	var conditions query.Conditions
	conditions.Add(schema.SiteContent.Key+" = ?", key).AddFragment(visibility)

	sql := fmt.Sprintf(`SELECT %s FROM %s %s`, blockColumns, schema.SiteContent.Table, conditions.Where())
	block, err := scanBlock(repository.db.QueryRow(ctx, sql, conditions.Args()...))
	if err != nil {
		return nil, dberr.Wrap(err, "find_site_content")
	}
	return block, nil
}

// Upsert inserts block or overwrites the existing row with the same key.
func (repository *PostgresRepository) Upsert(ctx context.Context, block *Block) error {
	sql := fmt.Sprintf(`
		INSERT INTO %[1]s (%[2]s, %[3]s, %[4]s, %[5]s)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (%[2]s) DO UPDATE
		SET %[3]s = EXCLUDED.%[3]s, %[4]s = EXCLUDED.%[4]s, %[5]s = EXCLUDED.%[5]s, %[6]s = NOW()
		RETURNING %[6]s`,
		schema.SiteContent.Table,
		schema.SiteContent.Key, schema.SiteContent.Title, schema.SiteContent.Body,
		schema.SiteContent.UpdatedBy, schema.SiteContent.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, sql,
		block.Key, block.Title, block.Body, block.UpdatedBy,
	).Scan(&block.UpdatedAt)
	return dberr.Wrap(err, "upsert_site_content")
}

// Delete removes block key.
func (repository *PostgresRepository) Delete(ctx context.Context, key string) error {
	sql := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.SiteContent.Table, schema.SiteContent.Key)
	tag, err := repository.db.Exec(ctx, sql, key)
	return postgres.Affected(tag, err, "delete_site_content")
}
