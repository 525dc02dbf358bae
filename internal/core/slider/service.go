// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slider

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

// Service implements the carousel use cases.
type Service struct {
	repository Repository
	policy     *authz.Policy
	logger     *slog.Logger
}

// NewService constructs a [Service].
func NewService(repository Repository, policy *authz.Policy, logger *slog.Logger) *Service {
	return &Service{repository: repository, policy: policy, logger: logger}
}

// List returns the slides caller may see.
func (service *Service) List(ctx context.Context, caller *sec.Identity, query authz.Query, params pagination.Params) ([]*Image, int, error) {
	return service.repository.List(ctx, service.policy.For(authz.ResourceSlider, caller, query), params)
}

// Get returns slide id. Inactive slides are not found for non-staff callers.
func (service *Service) Get(ctx context.Context, caller *sec.Identity, id int64) (*Image, error) {
	image, err := service.repository.FindByID(ctx, id, service.policy.For(authz.ResourceSlider, caller, authz.Query{}))
	if err != nil {
		return nil, dberr.NotFoundAs(err, resourceName)
	}
	return image, nil
}

// Create adds a slide. Status defaults to active.
func (service *Service) Create(ctx context.Context, caller *sec.Identity, input CreateInput) (*Image, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	image := &Image{
		Title:    strings.TrimSpace(input.Title),
		Caption:  input.Caption,
		ImageURL: input.ImageURL,
		LinkURL:  input.LinkURL,
		Position: input.Position,
		Status:   StatusActive,
	}
	if input.Status != "" {
		image.Status = Status(input.Status)
	}
	if caller != nil {
		image.CreatedBy = pointer.To(caller.ID)
	}

	if err := service.repository.Create(ctx, image); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "slider_image_created", slog.Int64("slider_image_id", image.ID))
	return image, nil
}

// Update applies the supplied fields to slide id.
func (service *Service) Update(ctx context.Context, caller *sec.Identity, id int64, input UpdateInput) (*Image, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	image, err := service.Get(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	pointer.Patch(&image.Title, input.Title)
	pointer.Patch(&image.Caption, input.Caption)
	pointer.Patch(&image.ImageURL, input.ImageURL)
	pointer.Patch(&image.Position, input.Position)
	if input.LinkURL != nil {
		image.LinkURL = pointer.NilIfZero(*input.LinkURL)
	}
	if input.Status != nil {
		image.Status = Status(*input.Status)
	}

	if err := service.repository.Update(ctx, image); err != nil {
		return nil, dberr.NotFoundAs(err, resourceName)
	}

	service.logger.InfoContext(ctx, "slider_image_updated", slog.Int64("slider_image_id", image.ID))
	return image, nil
}

// Delete removes slide id.
func (service *Service) Delete(ctx context.Context, id int64) error {
	if err := service.repository.Delete(ctx, id); err != nil {
		return dberr.NotFoundAs(err, resourceName)
	}

	service.logger.InfoContext(ctx, "slider_image_deleted", slog.Int64("slider_image_id", id))
	return nil
}
