// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gallery

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

// PostgresRepository implements [Repository] on gallery_images.
type PostgresRepository struct {
	db postgres.DB
}

// NewPostgresRepository builds a [PostgresRepository].
func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var imageColumns = schema.List(schema.GalleryImage.Columns())

func scanImage(row postgres.Scanner) (*Image, error) {
	image := &Image{}
	err := row.Scan(
		&image.ID, &image.Album, &image.Title, &image.Caption, &image.ImageURL,
		&image.CreatedBy, &image.CreatedAt, &image.UpdatedAt,
	)
	return image, err
}

// List returns one page of images, newest first.
func (repository *PostgresRepository) List(ctx context.Context, filter ListFilter, params pagination.Params) ([]*Image, int, error) {
	var conditions query.Conditions
	conditions.AddFragment(filter.Visibility)
	if filter.Album != "" {
		conditions.Add(schema.GalleryImage.Album+" = ?", filter.Album)
	}

	total, err := postgres.Count(ctx, repository.db, schema.GalleryImage.Table, &conditions)
	if err != nil {
		return nil, 0, err
	}

	page, args := conditions.Page(params.Limit, params.Offset())
	sql := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY %s DESC, %s DESC%s`,
		imageColumns, schema.GalleryImage.Table, conditions.Where(),
		schema.GalleryImage.CreatedAt, schema.GalleryImage.ID, page,
	)

	rows, err := repository.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_gallery_images")
	}

	items, err := postgres.Collect(rows, "scan_gallery_image", scanImage)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Albums returns every album name with its image count, alphabetically.
func (repository *PostgresRepository) Albums(ctx context.Context, visibility authz.Filter) ([]Album, error) {
	var conditions query.Conditions
	conditions.AddFragment(visibility)

	sql := fmt.Sprintf(`SELECT %s, COUNT(*) FROM %s %s GROUP BY %s ORDER BY %s`,
		schema.GalleryImage.Album, schema.GalleryImage.Table, conditions.Where(),
		schema.GalleryImage.Album, schema.GalleryImage.Album,
	)

	rows, err := repository.db.Query(ctx, sql, conditions.Args()...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_gallery_albums")
	}

	return postgres.Collect(rows, "scan_gallery_album", func(row postgres.Scanner) (Album, error) {
		var album Album
		err := row.Scan(&album.Name, &album.Images)
		return album, err
	})
}

// FindByID returns image id if visibility admits it.
func (repository *PostgresRepository) FindByID(ctx context.Context, id int64, visibility authz.Filter) (*Image, error) {
	var conditions query.Conditions
	conditions.Add(schema.GalleryImage.ID+" = ?", id).AddFragment(visibility)

	sql := fmt.Sprintf(`SELECT %s FROM %s %s`, imageColumns, schema.GalleryImage.Table, conditions.Where())
	image, err := scanImage(repository.db.QueryRow(ctx, sql, conditions.Args()...))
	if err != nil {
		return nil, dberr.Wrap(err, "find_gallery_image")
	}
	return image, nil
}

// Create inserts image and fills its id and timestamps.
func (repository *PostgresRepository) Create(ctx context.Context, image *Image) error {
	sql := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s, %s, %s`,
		schema.GalleryImage.Table,
		schema.GalleryImage.Album, schema.GalleryImage.Title, schema.GalleryImage.Caption,
		schema.GalleryImage.ImageURL, schema.GalleryImage.CreatedBy,
		schema.GalleryImage.ID, schema.GalleryImage.CreatedAt, schema.GalleryImage.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, sql,
		image.Album, image.Title, image.Caption, image.ImageURL, image.CreatedBy,
	).Scan(&image.ID, &image.CreatedAt, &image.UpdatedAt)
	return dberr.Wrap(err, "create_gallery_image")
}

// Update persists every mutable field of image.
func (repository *PostgresRepository) Update(ctx context.Context, image *Image) error {
	sql := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $1
		RETURNING %s`,
		schema.GalleryImage.Table,
		schema.GalleryImage.Album, schema.GalleryImage.Title, schema.GalleryImage.Caption,
		schema.GalleryImage.ImageURL, schema.GalleryImage.UpdatedAt,
		schema.GalleryImage.ID, schema.GalleryImage.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, sql,
		image.ID, image.Album, image.Title, image.Caption, image.ImageURL,
	).Scan(&image.UpdatedAt)
	return dberr.Wrap(err, "update_gallery_image")
}

// Delete removes image id.
func (repository *PostgresRepository) Delete(ctx context.Context, id int64) error {
	sql := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.GalleryImage.Table, schema.GalleryImage.ID)
	tag, err := repository.db.Exec(ctx, sql, id)
	return postgres.Affected(tag, err, "delete_gallery_image")
}
