// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package team

import (
	"context"

	"github.com/taibuivan/ecclesia/internal/platform/authz"
	"github.com/taibuivan/ecclesia/pkg/pagination"
)

// Repository is the data access contract for team profiles.
type Repository interface {
	List(ctx context.Context, visibility authz.Filter, params pagination.Params) ([]*Member, int, error)
	FindByID(ctx context.Context, id int64, visibility authz.Filter) (*Member, error)
	Create(ctx context.Context, member *Member) error
	Update(ctx context.Context, member *Member) error
	Delete(ctx context.Context, id int64) error
}
