// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package prophecy

import (
	"context"

	"github.com/taibuivan/ecclesia/internal/platform/authz"
	"github.com/taibuivan/ecclesia/pkg/pagination"
)

// Repository is the data access contract for prophecies. Filtered-out rows
// are reported as [dberr.ErrNotFound].
type Repository interface {
	List(ctx context.Context, visibility authz.Filter, params pagination.Params) ([]*Prophecy, int, error)
	FindByID(ctx context.Context, id int64, visibility authz.Filter) (*Prophecy, error)
	Create(ctx context.Context, prophecy *Prophecy) error
	Update(ctx context.Context, prophecy *Prophecy) error
	UpdateStatus(ctx context.Context, id int64, status Status) (*Prophecy, error)
	Delete(ctx context.Context, id int64) error
}
