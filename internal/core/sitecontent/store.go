// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sitecontent

import (
	"context"

	"github.com/taibuivan/ecclesia/internal/platform/authz"
)

// Repository is the data access contract for site content blocks.
type Repository interface {
	List(ctx context.Context, visibility authz.Filter) ([]*Block, error)
	FindByKey(ctx context.Context, key string, visibility authz.Filter) (*Block, error)
	// Upsert creates or replaces the block under block.Key.
	Upsert(ctx context.Context, block *Block) error
	Delete(ctx context.Context, key string) error
}
