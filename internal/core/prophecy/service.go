// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package prophecy

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

// Service implements the prophecy use cases.
type Service struct {
	repository Repository
	policy     *authz.Policy
	logger     *slog.Logger
}

// NewService constructs a [Service].
func NewService(repository Repository, policy *authz.Policy, logger *slog.Logger) *Service {
	return &Service{repository: repository, policy: policy, logger: logger}
}

// List returns the prophecies caller may see.
func (service *Service) List(ctx context.Context, caller *sec.Identity, query authz.Query, params pagination.Params) ([]*Prophecy, int, error) {
	return service.repository.List(ctx, service.policy.For(authz.ResourceProphecies, caller, query), params)
}

// Get returns prophecy id. Unverified prophecies are not found for non-staff callers.
func (service *Service) Get(ctx context.Context, caller *sec.Identity, id int64) (*Prophecy, error) {
	prophecy, err := service.repository.FindByID(ctx, id, service.policy.For(authz.ResourceProphecies, caller, authz.Query{}))
	if err != nil {
		return nil, dberr.NotFoundAs(err, resourceName)
	}
	return prophecy, nil
}

// Create records a prophecy. Status defaults to pending.
func (service *Service) Create(ctx context.Context, caller *sec.Identity, input CreateInput) (*Prophecy, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	receivedOn, err := convert.ToDate(input.ReceivedOn)
	if err != nil {
		return nil, validate.FieldErr("received_on", "Must be a date (YYYY-MM-DD)")
	}

	prophecy := &Prophecy{
		Title:       strings.TrimSpace(input.Title),
		Content:     input.Content,
		ProphetName: strings.TrimSpace(input.ProphetName),
		ReceivedOn:  receivedOn,
		Status:      StatusPending,
	}
	if input.Status != "" {
		prophecy.Status = Status(input.Status)
	}
	if caller != nil {
		prophecy.CreatedBy = pointer.To(caller.ID)
	}

	if err := service.repository.Create(ctx, prophecy); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "prophecy_created",
		slog.Int64("prophecy_id", prophecy.ID),
		slog.String("status", string(prophecy.Status)),
	)
	return prophecy, nil
}

// Update applies the supplied fields to prophecy id.
func (service *Service) Update(ctx context.Context, caller *sec.Identity, id int64, input UpdateInput) (*Prophecy, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	prophecy, err := service.Get(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	pointer.Patch(&prophecy.Title, input.Title)
	pointer.Patch(&prophecy.Content, input.Content)
	pointer.Patch(&prophecy.ProphetName, input.ProphetName)
	if input.Status != nil {
		prophecy.Status = Status(*input.Status)
	}
	if input.ReceivedOn != nil {
		receivedOn, err := convert.ToDate(input.ReceivedOn)
		if err != nil {
			return nil, validate.FieldErr("received_on", "Must be a date (YYYY-MM-DD)")
		}
		prophecy.ReceivedOn = receivedOn
	}

	if err := service.repository.Update(ctx, prophecy); err != nil {
		return nil, dberr.NotFoundAs(err, resourceName)
	}

	service.logger.InfoContext(ctx, "prophecy_updated", slog.Int64("prophecy_id", prophecy.ID))
	return prophecy, nil
}

// SetStatus moves prophecy id through review.
func (service *Service) SetStatus(ctx context.Context, id int64, input StatusInput) (*Prophecy, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	prophecy, err := service.repository.UpdateStatus(ctx, id, Status(input.Status))
	if err != nil {
		return nil, dberr.NotFoundAs(err, resourceName)
	}

	service.logger.InfoContext(ctx, "prophecy_reviewed",
		slog.Int64("prophecy_id", id),
		slog.String("status", input.Status),
	)
	return prophecy, nil
}

// Delete removes prophecy id.
func (service *Service) Delete(ctx context.Context, id int64) error {
	if err := service.repository.Delete(ctx, id); err != nil {
		return dberr.NotFoundAs(err, resourceName)
	}

	service.logger.InfoContext(ctx, "prophecy_deleted", slog.Int64("prophecy_id", id))
	return nil
}
