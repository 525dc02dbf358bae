// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gallery

import (
	"context"

	"github.com/taibuivan/ecclesia/internal/platform/authz"
	"github.com/taibuivan/ecclesia/pkg/pagination"
)

// Repository is the data access contract for gallery images.
type Repository interface {
	List(ctx context.Context, filter ListFilter, params pagination.Params) ([]*Image, int, error)
	Albums(ctx context.Context, visibility authz.Filter) ([]Album, error)
	FindByID(ctx context.Context, id int64, visibility authz.Filter) (*Image, error)
	Create(ctx context.Context, image *Image) error
	Update(ctx context.Context, image *Image) error
	Delete(ctx context.Context, id int64) error
}
