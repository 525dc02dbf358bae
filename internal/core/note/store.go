// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package note

import (
	"context"

	"github.com/taibuivan/ecclesia/internal/platform/authz"
	"github.com/taibuivan/ecclesia/pkg/pagination"
)

// Repository is the data access contract for notes. Every read and the delete
// take the caller's visibility filter, so ownership is enforced in the query.
type Repository interface {
	List(ctx context.Context, visibility authz.Filter, params pagination.Params) ([]*Note, int, error)
	FindByID(ctx context.Context, id int64, visibility authz.Filter) (*Note, error)
	Create(ctx context.Context, note *Note) error
	Update(ctx context.Context, note *Note, visibility authz.Filter) error
	Delete(ctx context.Context, id int64, visibility authz.Filter) error
}
