// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gallery

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/ecclesia/internal/platform/authz"
	"github.com/taibuivan/ecclesia/internal/platform/dberr"
	"github.com/taibuivan/ecclesia/internal/platform/sec"
	"github.com/taibuivan/ecclesia/internal/platform/validate"
	"github.com/taibuivan/ecclesia/pkg/pagination"
	"github.com/taibuivan/ecclesia/pkg/pointer"
)

// Service implements the gallery use cases.
type Service struct {
	repository Repository
	policy     *authz.Policy
	logger     *slog.Logger
}

// NewService constructs a [Service].
func NewService(repository Repository, policy *authz.Policy, logger *slog.Logger) *Service {
	return &Service{repository: repository, policy: policy, logger: logger}
}

func (service *Service) visibility(caller *sec.Identity) authz.Filter {
	return service.policy.For(authz.ResourceGallery, caller, authz.Query{})
}

// List returns images, optionally restricted to one album.
func (service *Service) List(ctx context.Context, caller *sec.Identity, album string, params pagination.Params) ([]*Image, int, error) {
	filter := ListFilter{
		Visibility: service.visibility(caller),
		Album:      strings.TrimSpace(album),
	}
	return service.repository.List(ctx, filter, params)
}

// Albums returns the album index.
func (service *Service) Albums(ctx context.Context, caller *sec.Identity) ([]Album, error) {
	return service.repository.Albums(ctx, service.visibility(caller))
}

// Get returns image id.
func (service *Service) Get(ctx context.Context, caller *sec.Identity, id int64) (*Image, error) {
	image, err := service.repository.FindByID(ctx, id, service.visibility(caller))
	if err != nil {
		return nil, dberr.NotFoundAs(err, resourceName)
	}
	return image, nil
}

// Create adds an image, filing it under [DefaultAlbum] when no album is given.
func (service *Service) Create(ctx context.Context, caller *sec.Identity, input CreateInput) (*Image, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	image := &Image{
		Album:    strings.TrimSpace(input.Album),
		Title:    strings.TrimSpace(input.Title),
		Caption:  input.Caption,
		ImageURL: input.ImageURL,
	}
	if image.Album == "" {
		image.Album = DefaultAlbum
	}
	if caller != nil {
		image.CreatedBy = pointer.To(caller.ID)
	}

	if err := service.repository.Create(ctx, image); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "gallery_image_created",
		slog.Int64("image_id", image.ID),
		slog.String("album", image.Album),
	)
	return image, nil
}

// Update applies the supplied fields to image id.
func (service *Service) Update(ctx context.Context, caller *sec.Identity, id int64, input UpdateInput) (*Image, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	image, err := service.Get(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	pointer.Patch(&image.Album, input.Album)
	pointer.Patch(&image.Title, input.Title)
	pointer.Patch(&image.Caption, input.Caption)
	pointer.Patch(&image.ImageURL, input.ImageURL)

	if err := service.repository.Update(ctx, image); err != nil {
		return nil, dberr.NotFoundAs(err, resourceName)
	}

	service.logger.InfoContext(ctx, "gallery_image_updated", slog.Int64("image_id", image.ID))
	return image, nil
}

// Delete removes image id.
func (service *Service) Delete(ctx context.Context, id int64) error {
	if err := service.repository.Delete(ctx, id); err != nil {
		return dberr.NotFoundAs(err, resourceName)
	}

	service.logger.InfoContext(ctx, "gallery_image_deleted", slog.Int64("image_id", id))
	return nil
}
