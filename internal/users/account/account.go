// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account provides user administration for master_admin callers.

It lists accounts, changes roles and removes accounts. The user entity itself
belongs to package auth; this package never reads or writes password hashes.

# Security

Every endpoint requires the master_admin role, and an admin can neither demote
nor delete their own account.
*/
package account

import (
	"context"

	"github.com/taibuivan/ecclesia/internal/platform/sec"
	"github.com/taibuivan/ecclesia/internal/users/auth"
	"github.com/taibuivan/ecclesia/pkg/pagination"
)

// # Data Access

// AccountRepository is the administrative data access contract for users.
type AccountRepository interface {
	List(ctx context.Context, params pagination.Params) ([]*auth.User, int, error)
	FindByID(ctx context.Context, id int64) (*auth.User, error)
	UpdateRole(ctx context.Context, id int64, role sec.Role) (*auth.User, error)
	Delete(ctx context.Context, id int64) error
}

// # Field Identifiers

const FieldRole = "role"

// Client messages.
const (
	MsgSelfDemote = "You cannot change your own role"
	MsgSelfDelete = "You cannot delete your own account"
)
