// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog

import (
	"context"

	"github.com/taibuivan/ecclesia/internal/platform/authz"
	"github.com/taibuivan/ecclesia/pkg/pagination"
)

// # Data Access

// Repository is the data access contract for posts.
//
// Reads take the visibility filter of the caller and report a filtered-out row
// as [dberr.ErrNotFound]. Create and Update return [dberr.ErrDuplicate] when the
// slug is taken.
type Repository interface {
	List(ctx context.Context, visibility authz.Filter, params pagination.Params) ([]*Blog, int, error)
	FindByID(ctx context.Context, id int64, visibility authz.Filter) (*Blog, error)
	FindBySlug(ctx context.Context, slug string, visibility authz.Filter) (*Blog, error)
	Create(ctx context.Context, blog *Blog) error
	Update(ctx context.Context, blog *Blog) error
	Delete(ctx context.Context, id int64) error
}
