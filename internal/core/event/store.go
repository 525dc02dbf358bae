// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package event

import (
	"context"

	"github.com/taibuivan/ecclesia/internal/platform/authz"
	"github.com/taibuivan/ecclesia/pkg/pagination"
)

// Repository is the data access contract for events.
type Repository interface {
	List(ctx context.Context, filter ListFilter, params pagination.Params) ([]*Event, int, error)
	FindByID(ctx context.Context, id int64, visibility authz.Filter) (*Event, error)
	Create(ctx context.Context, event *Event) error
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id int64) error
}
