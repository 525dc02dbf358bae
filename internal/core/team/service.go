// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package team

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

// Service implements the team page use cases.
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
	return service.policy.For(authz.ResourceTeam, caller, authz.Query{})
}

// List returns profiles in display order.
func (service *Service) List(ctx context.Context, caller *sec.Identity, params pagination.Params) ([]*Member, int, error) {
	return service.repository.List(ctx, service.visibility(caller), params)
}

// Get returns profile id.
func (service *Service) Get(ctx context.Context, caller *sec.Identity, id int64) (*Member, error) {
	member, err := service.repository.FindByID(ctx, id, service.visibility(caller))
	if err != nil {
		return nil, dberr.NotFoundAs(err, resourceName)
	}
	return member, nil
}

// Create adds a profile.
func (service *Service) Create(ctx context.Context, caller *sec.Identity, input CreateInput) (*Member, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	member := &Member{
		Name:      strings.TrimSpace(input.Name),
		Position:  strings.TrimSpace(input.Position),
		Bio:       input.Bio,
		PhotoURL:  input.PhotoURL,
		SortOrder: input.SortOrder,
	}
	if caller != nil {
		member.CreatedBy = pointer.To(caller.ID)
	}

	if err := service.repository.Create(ctx, member); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "team_member_created", slog.Int64("member_id", member.ID))
	return member, nil
}

// Update applies the supplied fields to profile id.
func (service *Service) Update(ctx context.Context, caller *sec.Identity, id int64, input UpdateInput) (*Member, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	member, err := service.Get(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	pointer.Patch(&member.Name, input.Name)
	pointer.Patch(&member.Position, input.Position)
	pointer.Patch(&member.Bio, input.Bio)
	pointer.Patch(&member.SortOrder, input.SortOrder)
	if input.PhotoURL != nil {
		member.PhotoURL = pointer.NilIfZero(*input.PhotoURL)
	}

	if err := service.repository.Update(ctx, member); err != nil {
		return nil, dberr.NotFoundAs(err, resourceName)
	}

	service.logger.InfoContext(ctx, "team_member_updated", slog.Int64("member_id", member.ID))
	return member, nil
}

// Delete removes profile id.
func (service *Service) Delete(ctx context.Context, id int64) error {
	if err := service.repository.Delete(ctx, id); err != nil {
		return dberr.NotFoundAs(err, resourceName)
	}

	service.logger.InfoContext(ctx, "team_member_deleted", slog.Int64("member_id", id))
	return nil
}
