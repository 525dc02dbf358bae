// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package event

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/ecclesia/internal/platform/authz"
	"github.com/taibuivan/ecclesia/internal/platform/dberr"
	"github.com/taibuivan/ecclesia/internal/platform/sec"
	"github.com/taibuivan/ecclesia/internal/platform/validate"
	"github.com/taibuivan/ecclesia/pkg/pagination"
	"github.com/taibuivan/ecclesia/pkg/pointer"
)

// Service implements the calendar use cases.
type Service struct {
	repository Repository
	policy     *authz.Policy
	logger     *slog.Logger
	now        func() time.Time
}

// NewService constructs a [Service].
func NewService(repository Repository, policy *authz.Policy, logger *slog.Logger) *Service {
	return &Service{repository: repository, policy: policy, logger: logger, now: time.Now}
}

// List returns events, only those not yet over when upcoming is set.
func (service *Service) List(ctx context.Context, caller *sec.Identity, upcoming bool, params pagination.Params) ([]*Event, int, error) {
	filter := ListFilter{Visibility: service.policy.For(authz.ResourceEvents, caller, authz.Query{})}
	if upcoming {
		filter.UpcomingAfter = pointer.To(service.now().UTC())
	}
	return service.repository.List(ctx, filter, params)
}

// Get returns event id.
func (service *Service) Get(ctx context.Context, caller *sec.Identity, id int64) (*Event, error) {
	event, err := service.repository.FindByID(ctx, id, service.policy.For(authz.ResourceEvents, caller, authz.Query{}))
	if err != nil {
		return nil, dberr.NotFoundAs(err, resourceName)
	}
	return event, nil
}

// Create schedules an event.
func (service *Service) Create(ctx context.Context, caller *sec.Identity, input CreateInput) (*Event, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	event := &Event{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Location:    strings.TrimSpace(input.Location),
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
		ImageURL:    input.ImageURL,
	}
	if caller != nil {
		event.CreatedBy = pointer.To(caller.ID)
	}

	if err := service.repository.Create(ctx, event); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "event_created", slog.Int64("event_id", event.ID))
	return event, nil
}

// Update applies the supplied fields to event id.
func (service *Service) Update(ctx context.Context, caller *sec.Identity, id int64, input UpdateInput) (*Event, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	current, err := service.Get(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	// Patch a copy so a rejected range leaves the loaded row untouched.
	event := *current
	pointer.Patch(&event.Title, input.Title)
	pointer.Patch(&event.Description, input.Description)
	pointer.Patch(&event.Location, input.Location)
	pointer.Patch(&event.StartsAt, input.StartsAt)
	if input.EndsAt != nil {
		event.EndsAt = input.EndsAt
	}
	if input.ImageURL != nil {
		event.ImageURL = pointer.NilIfZero(*input.ImageURL)
	}

	if event.EndsAt != nil && event.EndsAt.Before(event.StartsAt) {
		return nil, validate.FieldErr("ends_at", "Must be after starts_at")
	}

	if err := service.repository.Update(ctx, &event); err != nil {
		return nil, dberr.NotFoundAs(err, resourceName)
	}

	service.logger.InfoContext(ctx, "event_updated", slog.Int64("event_id", event.ID))
	return &event, nil
}

// Delete removes event id.
func (service *Service) Delete(ctx context.Context, id int64) error {
	if err := service.repository.Delete(ctx, id); err != nil {
		return dberr.NotFoundAs(err, resourceName)
	}

	service.logger.InfoContext(ctx, "event_deleted", slog.Int64("event_id", id))
	return nil
}
