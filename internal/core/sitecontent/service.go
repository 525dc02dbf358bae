// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sitecontent

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/ecclesia/internal/platform/authz"
	"github.com/taibuivan/ecclesia/internal/platform/dberr"
	"github.com/taibuivan/ecclesia/internal/platform/sec"
	"github.com/taibuivan/ecclesia/internal/platform/validate"
	"github.com/taibuivan/ecclesia/pkg/pointer"
	"github.com/taibuivan/ecclesia/pkg/slug"
)

// Service implements the site copy use cases.
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
	return service.policy.For(authz.ResourceSiteContent, caller, authz.Query{})
}

// checkKey accepts lowercase slugs only, so keys are stable in URLs.
func checkKey(key string) error {
	validator := &validate.Validator{}
	validator.MaxLen("key", key, maxKeyLength)
	validator.Custom("key", key == "" || slug.From(key) != key, "Must be lowercase letters, digits and hyphens")
	return validator.Err()
}

// List returns every block.
func (service *Service) List(ctx context.Context, caller *sec.Identity) ([]*Block, error) {
	return service.repository.List(ctx, service.visibility(caller))
}

// Get returns block key.
func (service *Service) Get(ctx context.Context, caller *sec.Identity, key string) (*Block, error) {
	block, err := service.repository.FindByKey(ctx, key, service.visibility(caller))
	if err != nil {
		return nil, dberr.NotFoundAs(err, resourceName)
	}
	return block, nil
}

// Put creates or replaces block key, stamping caller as the last editor.
func (service *Service) Put(ctx context.Context, caller *sec.Identity, key string, input PutInput) (*Block, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	block := &Block{
		Key:   key,
		Title: strings.TrimSpace(input.Title),
		Body:  input.Body,
	}
	if caller != nil {
		block.UpdatedBy = pointer.To(caller.ID)
	}

	if err := service.repository.Upsert(ctx, block); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "site_content_updated", slog.String("key", key))
	return block, nil
}

// Delete removes block key.
func (service *Service) Delete(ctx context.Context, key string) error {
	if err := service.repository.Delete(ctx, key); err != nil {
		return dberr.NotFoundAs(err, resourceName)
	}

	service.logger.InfoContext(ctx, "site_content_deleted", slog.String("key", key))
	return nil
}
