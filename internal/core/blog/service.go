// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/ecclesia/internal/platform/authz"
	"github.com/taibuivan/ecclesia/internal/platform/dberr"
	"github.com/taibuivan/ecclesia/internal/platform/sec"
	"github.com/taibuivan/ecclesia/internal/platform/validate"
	"github.com/taibuivan/ecclesia/pkg/pagination"
	"github.com/taibuivan/ecclesia/pkg/pointer"
	"github.com/taibuivan/ecclesia/pkg/slug"
)

// # Service Layer

// Service implements the blog use cases.
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

// List returns the posts caller may see.
func (service *Service) List(ctx context.Context, caller *sec.Identity, query authz.Query, params pagination.Params) ([]*Blog, int, error) {
	visibility := service.policy.For(authz.ResourceBlogs, caller, query)
	return service.repository.List(ctx, visibility, params)
}

// Get returns a post by id. Drafts are not found for non-staff callers.
func (service *Service) Get(ctx context.Context, caller *sec.Identity, id int64) (*Blog, error) {
	visibility := service.policy.For(authz.ResourceBlogs, caller, authz.Query{})
	blog, err := service.repository.FindByID(ctx, id, visibility)
	if err != nil {
		return nil, dberr.NotFoundAs(err, resourceName)
	}
	return blog, nil
}

// GetBySlug returns a post by slug under the same visibility as [Service.Get].
func (service *Service) GetBySlug(ctx context.Context, caller *sec.Identity, postSlug string) (*Blog, error) {
	visibility := service.policy.For(authz.ResourceBlogs, caller, authz.Query{})
	blog, err := service.repository.FindBySlug(ctx, postSlug, visibility)
	if err != nil {
		return nil, dberr.NotFoundAs(err, resourceName)
	}
	return blog, nil
}

/*
Create stores a new post authored by caller.

The slug is derived from the title; a taken slug is retried with a numeric
suffix. Publishing on creation stamps published_at.
*/
func (service *Service) Create(ctx context.Context, caller *sec.Identity, input CreateInput) (*Blog, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	blog := &Blog{
		Title:         strings.TrimSpace(input.Title),
		Excerpt:       strings.TrimSpace(input.Excerpt),
		Content:       input.Content,
		CoverImageURL: input.CoverImageURL,
		Published:     input.Published,
	}
	if caller != nil {
		blog.CreatedBy = pointer.To(caller.ID)
	}
	service.stampPublication(blog, false)

	if err := service.withUniqueSlug(blog, func() error {
		return service.repository.Create(ctx, blog)
	}); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "blog_created",
		slog.Int64("blog_id", blog.ID),
		slog.Bool("published", blog.Published),
	)
	return blog, nil
}

/*
Update applies the supplied fields to post id.

Changing the title regenerates the slug. published_at is set when a draft is
published and cleared when a post is unpublished.
*/
func (service *Service) Update(ctx context.Context, caller *sec.Identity, id int64, input UpdateInput) (*Blog, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	blog, err := service.Get(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	wasPublished := blog.Published
	previousTitle := blog.Title

	pointer.Patch(&blog.Title, input.Title)
	pointer.Patch(&blog.Excerpt, input.Excerpt)
	pointer.Patch(&blog.Content, input.Content)
	pointer.Patch(&blog.Published, input.Published)
	if input.CoverImageURL != nil {
		blog.CoverImageURL = pointer.NilIfZero(*input.CoverImageURL)
	}
	blog.Title = strings.TrimSpace(blog.Title)
	service.stampPublication(blog, wasPublished)

	save := func() error { return service.repository.Update(ctx, blog) }
	if blog.Title != previousTitle {
		err = service.withUniqueSlug(blog, save)
	} else {
		err = dberr.NotFoundAs(save(), resourceName)
	}
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "blog_updated", slog.Int64("blog_id", blog.ID))
	return blog, nil
}

// Delete removes post id.
func (service *Service) Delete(ctx context.Context, id int64) error {
	if err := service.repository.Delete(ctx, id); err != nil {
		return dberr.NotFoundAs(err, resourceName)
	}
	service.logger.InfoContext(ctx, "blog_deleted", slog.Int64("blog_id", id))
	return nil
}

func (service *Service) stampPublication(blog *Blog, wasPublished bool) {
	switch {
	case blog.Published && !wasPublished:
		blog.PublishedAt = pointer.To(service.now().UTC())
	case !blog.Published:
		blog.PublishedAt = nil
	}
}

// withUniqueSlug derives blog.Slug from its title and runs save, retrying with
// "-2", "-3" suffixes while the slug is taken.
func (service *Service) withUniqueSlug(blog *Blog, save func() error) error {
	base := slug.Fallback(slug.From(blog.Title), fallbackSlug)

	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		blog.Slug = slug.WithSuffix(base, attempt)

		err := save()
		if err == nil {
			return nil
		}
		if !errors.Is(err, dberr.ErrDuplicate) {
			return dberr.NotFoundAs(err, resourceName)
		}
	}

	return validate.FieldErr("title", "A post with a similar title already exists")
}
