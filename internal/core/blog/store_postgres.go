// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog

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

// PostgresRepository implements [Repository] on the blogs table.
type PostgresRepository struct {
	db postgres.DB
}

// NewPostgresRepository builds a [PostgresRepository].
func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var blogColumns = schema.List(schema.Blog.Columns())

func scanBlog(row postgres.Scanner) (*Blog, error) {
	blog := &Blog{}
	err := row.Scan(
		&blog.ID, &blog.Title, &blog.Slug, &blog.Excerpt, &blog.Content, &blog.CoverImageURL,
		&blog.Published, &blog.PublishedAt, &blog.CreatedBy, &blog.CreatedAt, &blog.UpdatedAt,
	)
	return blog, err
}

// List returns one page of visible posts, newest publication first.
func (repository *PostgresRepository) List(ctx context.Context, visibility authz.Filter, params pagination.Params) ([]*Blog, int, error) {
	var conditions query.Conditions
	conditions.AddFragment(visibility)

	total, err := postgres.Count(ctx, repository.db, schema.Blog.Table, &conditions)
	if err != nil {
		return nil, 0, err
	}

	page, args := conditions.Page(params.Limit, params.Offset())
	sql := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY %s DESC NULLS LAST, %s DESC%s`,
		blogColumns, schema.Blog.Table, conditions.Where(),
		schema.Blog.PublishedAt, schema.Blog.ID, page,
	)

	rows, err := repository.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_blogs")
	}

	blogs, err := postgres.Collect(rows, "scan_blog", scanBlog)
	if err != nil {
		return nil, 0, err
	}
	return blogs, total, nil
}

// FindByID returns the post with id if visibility admits it.
func (repository *PostgresRepository) FindByID(ctx context.Context, id int64, visibility authz.Filter) (*Blog, error) {
	var conditions query.Conditions
	conditions.Add(schema.Blog.ID+" = ?", id).AddFragment(visibility)
	return repository.findOne(ctx, "find_blog", &conditions)
}

// FindBySlug returns the post with slug if visibility admits it.
func (repository *PostgresRepository) FindBySlug(ctx context.Context, slug string, visibility authz.Filter) (*Blog, error) {
	var conditions query.Conditions
	conditions.Add(schema.Blog.Slug+" = ?", slug).AddFragment(visibility)
	return repository.findOne(ctx, "find_blog_by_slug", &conditions)
}

func (repository *PostgresRepository) findOne(ctx context.Context, action string, conditions *query.Conditions) (*Blog, error) {
	sql := fmt.Sprintf(`SELECT %s FROM %s %s`, blogColumns, schema.Blog.Table, conditions.Where())

	blog, err := scanBlog(repository.db.QueryRow(ctx, sql, conditions.Args()...))
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	return blog, nil
}

// Create inserts blog and fills its id and timestamps.
func (repository *PostgresRepository) Create(ctx context.Context, blog *Blog) error {
	sql := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s, %s, %s`,
		schema.Blog.Table,
		schema.Blog.Title, schema.Blog.Slug, schema.Blog.Excerpt, schema.Blog.Content,
		schema.Blog.CoverImageURL, schema.Blog.Published, schema.Blog.PublishedAt, schema.Blog.CreatedBy,
		schema.Blog.ID, schema.Blog.CreatedAt, schema.Blog.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, sql,
		blog.Title, blog.Slug, blog.Excerpt, blog.Content,
		blog.CoverImageURL, blog.Published, blog.PublishedAt, blog.CreatedBy,
	).Scan(&blog.ID, &blog.CreatedAt, &blog.UpdatedAt)
	return dberr.Wrap(err, "create_blog")
}

// Update persists every mutable field of blog.
func (repository *PostgresRepository) Update(ctx context.Context, blog *Blog) error {
	sql := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = NOW()
		WHERE %s = $1
		RETURNING %s`,
		schema.Blog.Table,
		schema.Blog.Title, schema.Blog.Slug, schema.Blog.Excerpt, schema.Blog.Content,
		schema.Blog.CoverImageURL, schema.Blog.Published, schema.Blog.PublishedAt, schema.Blog.UpdatedAt,
		schema.Blog.ID, schema.Blog.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, sql,
		blog.ID, blog.Title, blog.Slug, blog.Excerpt, blog.Content,
		blog.CoverImageURL, blog.Published, blog.PublishedAt,
	).Scan(&blog.UpdatedAt)
	return dberr.Wrap(err, "update_blog")
}

// Delete removes the post with id.
func (repository *PostgresRepository) Delete(ctx context.Context, id int64) error {
	sql := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Blog.Table, schema.Blog.ID)
	tag, err := repository.db.Exec(ctx, sql, id)
	return postgres.Affected(tag, err, "delete_blog")
}
