// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package note

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/ecclesia/internal/platform/apperr"
	"github.com/taibuivan/ecclesia/internal/platform/authz"
	"github.com/taibuivan/ecclesia/internal/platform/dberr"
	"github.com/taibuivan/ecclesia/internal/platform/sec"
	"github.com/taibuivan/ecclesia/internal/platform/validate"
	"github.com/taibuivan/ecclesia/pkg/convert"
	"github.com/taibuivan/ecclesia/pkg/pagination"
	"github.com/taibuivan/ecclesia/pkg/pointer"
)

// Service implements the sermon note use cases.
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
	return service.policy.For(authz.ResourceNotes, caller, authz.Query{})
}

// List returns the notes caller may see. Anonymous callers get an empty page.
func (service *Service) List(ctx context.Context, caller *sec.Identity, params pagination.Params) ([]*Note, int, error) {
	return service.repository.List(ctx, service.visibility(caller), params)
}

// Get returns note id when caller owns it or is staff.
func (service *Service) Get(ctx context.Context, caller *sec.Identity, id int64) (*Note, error) {
	note, err := service.repository.FindByID(ctx, id, service.visibility(caller))
	if err != nil {
		return nil, dberr.NotFoundAs(err, resourceName)
	}
	return note, nil
}

// Create stores a note owned by caller.
func (service *Service) Create(ctx context.Context, caller *sec.Identity, input CreateInput) (*Note, error) {
	if caller == nil {
		return nil, apperr.Unauthorized(apperr.MsgAuthenticationRequired)
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	preachedOn, err := convert.ToDate(input.PreachedOn)
	if err != nil {
		return nil, validate.FieldErr("preached_on", "Must be a date (YYYY-MM-DD)")
	}

	note := &Note{
		OwnerID:    caller.ID,
		Title:      strings.TrimSpace(input.Title),
		Scripture:  strings.TrimSpace(input.Scripture),
		Content:    input.Content,
		PreachedOn: preachedOn,
	}
	if err := service.repository.Create(ctx, note); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "note_created", slog.Int64("note_id", note.ID))
	return note, nil
}

// Update applies the supplied fields to note id. Another member's note is not found.
func (service *Service) Update(ctx context.Context, caller *sec.Identity, id int64, input UpdateInput) (*Note, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	visibility := service.visibility(caller)
	note, err := service.repository.FindByID(ctx, id, visibility)
	if err != nil {
		return nil, dberr.NotFoundAs(err, resourceName)
	}

	pointer.Patch(&note.Title, input.Title)
	pointer.Patch(&note.Scripture, input.Scripture)
	pointer.Patch(&note.Content, input.Content)
	if input.PreachedOn != nil {
		preachedOn, err := convert.ToDate(input.PreachedOn)
		if err != nil {
			return nil, validate.FieldErr("preached_on", "Must be a date (YYYY-MM-DD)")
		}
		note.PreachedOn = preachedOn
	}

	if err := service.repository.Update(ctx, note, visibility); err != nil {
		return nil, dberr.NotFoundAs(err, resourceName)
	}

	service.logger.InfoContext(ctx, "note_updated", slog.Int64("note_id", note.ID))
	return note, nil
}

// Delete removes note id. Another member's note is not found.
func (service *Service) Delete(ctx context.Context, caller *sec.Identity, id int64) error {
	if err := service.repository.Delete(ctx, id, service.visibility(caller)); err != nil {
		return dberr.NotFoundAs(err, resourceName)
	}

	service.logger.InfoContext(ctx, "note_deleted", slog.Int64("note_id", id))
	return nil
}
