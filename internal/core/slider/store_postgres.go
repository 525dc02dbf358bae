// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slider

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

// PostgresRepository implements [Repository] on the slider_images table.
type PostgresRepository struct {
	db postgres.DB
}

// NewPostgresRepository builds a [PostgresRepository].
func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var imageColumns = schema.List(schema.SliderImage.Columns())

func scanImage(row postgres.Scanner) (*Image, error) {
	image := &Image{}
	err := row.Scan(
		&image.ID, &image.Title, &image.Caption, &image.ImageURL, &image.LinkURL,
		&image.Position, &image.Status, &image.CreatedBy, &image.CreatedAt, &image.UpdatedAt,
	)
	return image, err
}

// List returns one page of visible slides in display order.
func (repository *PostgresRepository) List(ctx context.Context, visibility authz.Filter, params pagination.Params) ([]*Image, int, error) {
	var conditions query.Conditions
	conditions.AddFragment(visibility)

	total, err := postgres.Count(ctx, repository.db, schema.SliderImage.Table, &conditions)
	if err != nil {
		return nil, 0, err
	}

	page, args := conditions.Page(params.Limit, params.Offset())
	sql := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY %s ASC, %s ASC%s`,
		imageColumns, schema.SliderImage.Table, conditions.Where(),
		schema.SliderImage.Position, schema.SliderImage.ID, page,
	)

	rows, err := repository.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_slider_images")
	}

	images, err := postgres.Collect(rows, "scan_slider_image", scanImage)
	if err != nil {
		return nil, 0, err
	}
	return images, total, nil
}

// FindByID returns slide id if visibility admits it.
func (repository *PostgresRepository) FindByID(ctx context.Context, id int64, visibility authz.Filter) (*Image, error) {
	var conditions query.Conditions
	conditions.Add(schema.SliderImage.ID+" = ?", id).AddFragment(visibility)

	sql := fmt.Sprintf(`SELECT %s FROM %s %s`, imageColumns, schema.SliderImage.Table, conditions.Where())
	image, err := scanImage(repository.db.QueryRow(ctx, sql, conditions.Args()...))
	if err != nil {
		return nil, dberr.Wrap(err, "find_slider_image")
	}
	return image, nil
}

// Create inserts image and fills its id and timestamps.
func (repository *PostgresRepository) Create(ctx context.Context, image *Image) error {
	sql := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s, %s, %s`,
		schema.SliderImage.Table,
		schema.SliderImage.Title, schema.SliderImage.Caption, schema.SliderImage.ImageURL, schema.SliderImage.LinkURL,
		schema.SliderImage.Position, schema.SliderImage.Status, schema.SliderImage.CreatedBy,
		schema.SliderImage.ID, schema.SliderImage.CreatedAt, schema.SliderImage.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, sql,
		image.Title, image.Caption, image.ImageURL, image.LinkURL,
		image.Position, image.Status, image.CreatedBy,
	).Scan(&image.ID, &image.CreatedAt, &image.UpdatedAt)
	return dberr.Wrap(err, "create_slider_image")
}

// Update persists every mutable field of image.
func (repository *PostgresRepository) Update(ctx context.Context, image *Image) error {
	sql := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = NOW()
		WHERE %s = $1
		RETURNING %s`,
		schema.SliderImage.Table,
		schema.SliderImage.Title, schema.SliderImage.Caption, schema.SliderImage.ImageURL, schema.SliderImage.LinkURL,
		schema.SliderImage.Position, schema.SliderImage.Status, schema.SliderImage.UpdatedAt,
		schema.SliderImage.ID, schema.SliderImage.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, sql,
		image.ID, image.Title, image.Caption, image.ImageURL, image.LinkURL, image.Position, image.Status,
	).Scan(&image.UpdatedAt)
	return dberr.Wrap(err, "update_slider_image")
}

// Delete removes slide id.
func (repository *PostgresRepository) Delete(ctx context.Context, id int64) error {
	sql := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.SliderImage.Table, schema.SliderImage.ID)
	tag, err := repository.db.Exec(ctx, sql, id)
	return postgres.Affected(tag, err, "delete_slider_image")
}
