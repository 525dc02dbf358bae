// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/ecclesia/internal/platform/authz"
	"github.com/taibuivan/ecclesia/internal/platform/dberr"
	"github.com/taibuivan/ecclesia/internal/platform/sec"
	"github.com/taibuivan/ecclesia/internal/platform/validate"
	"github.com/taibuivan/ecclesia/pkg/convert"
	"github.com/taibuivan/ecclesia/pkg/pagination"
	"github.com/taibuivan/ecclesia/pkg/pointer"
)

// Service implements the media library use cases.
type Service struct {
	repository Repository
	policy     *authz.Policy
	logger     *slog.Logger
}

// NewService constructs a [Service].
func NewService(repository Repository, policy *authz.Policy, logger *slog.Logger) *Service {
	return &Service{repository: repository, policy: policy, logger: logger}
}

// List returns recordings, optionally of a single kind.
func (service *Service) List(ctx context.Context, caller *sec.Identity, kind string, params pagination.Params) ([]*Media, int, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))

	validator := &validate.Validator{}
	if kind != "" {
		validator.OneOf("kind", kind, string(KindAudio), string(KindVideo))
	}
	if err := validator.Err(); err != nil {
		return nil, 0, err
	}

	filter := ListFilter{
		Visibility: service.policy.For(authz.ResourceMedia, caller, authz.Query{}),
		Kind:       Kind(kind),
	}
	return service.repository.List(ctx, filter, params)
}

// Get returns recording id.
func (service *Service) Get(ctx context.Context, caller *sec.Identity, id int64) (*Media, error) {
	media, err := service.repository.FindByID(ctx, id, service.policy.For(authz.ResourceMedia, caller, authz.Query{}))
	if err != nil {
		return nil, dberr.NotFoundAs(err, resourceName)
	}
	return media, nil
}

// Create adds a recording.
func (service *Service) Create(ctx context.Context, caller *sec.Identity, input CreateInput) (*Media, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	recordedOn, err := convert.ToDate(input.RecordedOn)
	if err != nil {
		return nil, validate.FieldErr("recorded_on", "Must be a date (YYYY-MM-DD)")
	}

	media := &Media{
		Title:        strings.TrimSpace(input.Title),
		Description:  input.Description,
		Kind:         Kind(input.Kind),
		URL:          input.URL,
		ThumbnailURL: input.ThumbnailURL,
		Speaker:      strings.TrimSpace(input.Speaker),
		RecordedOn:   recordedOn,
	}
	if caller != nil {
		media.CreatedBy = pointer.To(caller.ID)
	}

	if err := service.repository.Create(ctx, media); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "media_created",
		slog.Int64("media_id", media.ID),
		slog.String("kind", string(media.Kind)),
	)
	return media, nil
}

// Update applies the supplied fields to recording id.
func (service *Service) Update(ctx context.Context, caller *sec.Identity, id int64, input UpdateInput) (*Media, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	media, err := service.Get(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	pointer.Patch(&media.Title, input.Title)
	pointer.Patch(&media.Description, input.Description)
	pointer.Patch(&media.URL, input.URL)
	pointer.Patch(&media.Speaker, input.Speaker)
	if input.Kind != nil {
		media.Kind = Kind(*input.Kind)
	}
	if input.ThumbnailURL != nil {
		media.ThumbnailURL = pointer.NilIfZero(*input.ThumbnailURL)
	}
	if input.RecordedOn != nil {
		recordedOn, err := convert.ToDate(input.RecordedOn)
		if err != nil {
			return nil, validate.FieldErr("recorded_on", "Must be a date (YYYY-MM-DD)")
		}
		media.RecordedOn = recordedOn
	}

	if err := service.repository.Update(ctx, media); err != nil {
		return nil, dberr.NotFoundAs(err, resourceName)
	}

	service.logger.InfoContext(ctx, "media_updated", slog.Int64("media_id", media.ID))
	return media, nil
}

// Delete removes recording id.
func (service *Service) Delete(ctx context.Context, id int64) error {
	if err := service.repository.Delete(ctx, id); err != nil {
		return dberr.NotFoundAs(err, resourceName)
	}

	service.logger.InfoContext(ctx, "media_deleted", slog.Int64("media_id", id))
	return nil
}
