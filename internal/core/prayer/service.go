// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package prayer

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

// Service implements the prayer request use cases.
type Service struct {
	repository Repository
	policy     *authz.Policy
	logger     *slog.Logger
}

// NewService constructs a [Service].
func NewService(repository Repository, policy *authz.Policy, logger *slog.Logger) *Service {
	return &Service{repository: repository, policy: policy, logger: logger}
}

// Submit records a new request. caller may be nil. A signed-in caller is
// stamped as submitter and fills in a missing name or email.
func (service *Service) Submit(ctx context.Context, caller *sec.Identity, input SubmitInput) (*Request, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	request := &Request{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.ToLower(strings.TrimSpace(input.Email)),
		Content: strings.TrimSpace(input.Content),
		Status:  StatusPending,
	}
	if request.Content == "" {
		return nil, validate.FieldErr("content", "This field is required")
	}

	if caller != nil {
		request.SubmittedBy = pointer.To(caller.ID)
		if request.Name == "" {
			request.Name = caller.Name
		}
		if request.Email == "" {
			request.Email = caller.Email
		}
	}

	if err := service.repository.Create(ctx, request); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "prayer_request_submitted",
		slog.Int64("prayer_request_id", request.ID),
		slog.Bool("anonymous", caller == nil),
	)
	return request, nil
}

// List returns requests for staff, optionally narrowed by ?status.
func (service *Service) List(ctx context.Context, caller *sec.Identity, query authz.Query, params pagination.Params) ([]*Request, int, error) {
	return service.repository.List(ctx, service.policy.For(authz.ResourcePrayerRequests, caller, query), params)
}

// Get returns request id.
func (service *Service) Get(ctx context.Context, caller *sec.Identity, id int64) (*Request, error) {
	request, err := service.repository.FindByID(ctx, id, service.policy.For(authz.ResourcePrayerRequests, caller, authz.Query{}))
	if err != nil {
		return nil, dberr.NotFoundAs(err, resourceName)
	}
	return request, nil
}

// SetStatus records staff follow-up on request id.
func (service *Service) SetStatus(ctx context.Context, id int64, input StatusInput) (*Request, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	request, err := service.repository.UpdateStatus(ctx, id, Status(input.Status))
	if err != nil {
		return nil, dberr.NotFoundAs(err, resourceName)
	}

	service.logger.InfoContext(ctx, "prayer_request_status_changed",
		slog.Int64("prayer_request_id", id),
		slog.String("status", input.Status),
	)
	return request, nil
}

// Delete removes request id.
func (service *Service) Delete(ctx context.Context, id int64) error {
	if err := service.repository.Delete(ctx, id); err != nil {
		return dberr.NotFoundAs(err, resourceName)
	}

	service.logger.InfoContext(ctx, "prayer_request_deleted", slog.Int64("prayer_request_id", id))
	return nil
}
