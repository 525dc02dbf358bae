// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/ecclesia/internal/platform/apperr"
	"github.com/taibuivan/ecclesia/internal/platform/dberr"
	"github.com/taibuivan/ecclesia/internal/platform/sec"
	"github.com/taibuivan/ecclesia/internal/platform/validate"
	"github.com/taibuivan/ecclesia/internal/users/auth"
	"github.com/taibuivan/ecclesia/pkg/pagination"
)

// # Service Layer

// Service implements user administration.
type Service struct {
	accountRepository AccountRepository
	logger            *slog.Logger
}

// NewService constructs a [Service].
func NewService(repository AccountRepository, logger *slog.Logger) *Service {
	return &Service{accountRepository: repository, logger: logger}
}

// List returns one page of accounts.
func (service *Service) List(ctx context.Context, params pagination.Params) ([]*auth.User, int, error) {
	return service.accountRepository.List(ctx, params)
}

// Get returns a single account.
func (service *Service) Get(ctx context.Context, id int64) (*auth.User, error) {
	user, err := service.accountRepository.FindByID(ctx, id)
	if err != nil {
		return nil, dberr.NotFoundAs(err, "User")
	}
	return user, nil
}

/*
ChangeRole assigns role to the account id.

The new role reaches the affected user's requests only once they obtain a new
token; tokens already issued keep their embedded role until expiry.

Returns:
  - error: 400 for an unknown role or a self-demotion, 404 for a missing account
*/
func (service *Service) ChangeRole(ctx context.Context, caller *sec.Identity, id int64, rawRole string) (*auth.User, error) {
	role, err := sec.ParseRole(rawRole)
	if err != nil {
		return nil, validate.FieldErr(FieldRole, "Must be one of: "+strings.Join(sec.RoleNames(), ", "))
	}

	if caller != nil && caller.ID == id && role != caller.Role {
		return nil, validate.FieldErr(FieldRole, MsgSelfDemote)
	}

	user, err := service.accountRepository.UpdateRole(ctx, id, role)
	if err != nil {
		return nil, dberr.NotFoundAs(err, "User")
	}

	service.logger.InfoContext(ctx, "user_role_changed",
		slog.Int64("user_id", id),
		slog.String("role", string(role)),
	)
	return user, nil
}

/*
Delete removes the account id. Content the user created stays, with its author
reference cleared; their sermon notes are removed with them.
*/
func (service *Service) Delete(ctx context.Context, caller *sec.Identity, id int64) error {
	if caller != nil && caller.ID == id {
		return apperr.Forbidden(MsgSelfDelete)
	}

	if err := service.accountRepository.Delete(ctx, id); err != nil {
		return dberr.NotFoundAs(err, "User")
	}

	service.logger.InfoContext(ctx, "user_deleted", slog.Int64("user_id", id))
	return nil
}
