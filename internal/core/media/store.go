// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"context"

	"github.com/taibuivan/ecclesia/internal/platform/authz"
	"github.com/taibuivan/ecclesia/pkg/pagination"
)

// Repository is the data access contract for recordings.
type Repository interface {
	List(ctx context.Context, filter ListFilter, params pagination.Params) ([]*Media, int, error)
	FindByID(ctx context.Context, id int64, visibility authz.Filter) (*Media, error)
	Create(ctx context.Context, media *Media) error
	Update(ctx context.Context, media *Media) error
	Delete(ctx context.Context, id int64) error
}
