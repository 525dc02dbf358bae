// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package prayer

import (
	"context"

	"github.com/taibuivan/ecclesia/internal/platform/authz"
	"github.com/taibuivan/ecclesia/pkg/pagination"
)

// Repository is the data access contract for prayer requests.
type Repository interface {
	List(ctx context.Context, visibility authz.Filter, params pagination.Params) ([]*Request, int, error)
	FindByID(ctx context.Context, id int64, visibility authz.Filter) (*Request, error)
	Create(ctx context.Context, request *Request) error
	UpdateStatus(ctx context.Context, id int64, status Status) (*Request, error)
	Delete(ctx context.Context, id int64) error
}
