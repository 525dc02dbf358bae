// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"

	"github.com/taibuivan/ecclesia/internal/platform/database/schema"
	"github.com/taibuivan/ecclesia/internal/platform/dberr"
	"github.com/taibuivan/ecclesia/internal/platform/postgres"
)

// # User Repository

// PostgresUserRepository implements [UserRepository] on the users table.
type PostgresUserRepository struct {
	db postgres.DB
}

// NewUserRepository builds a [PostgresUserRepository].
func NewUserRepository(db postgres.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

var userColumns = schema.List(schema.User.Columns())

/*
Create inserts user and fills its generated id and timestamps.

Returns:
  - error: dberr.ErrDuplicate when the email is already registered
*/
func (repository *PostgresUserRepository) Create(ctx context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s, %s, %s`,
		schema.User.Table, schema.User.Email, schema.User.Name, schema.User.PasswordHash, schema.User.Role,
		schema.User.ID, schema.User.CreatedAt, schema.User.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query, user.Email, user.Name, user.PasswordHash, user.Role).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	return dberr.Wrap(err, "create_user")
}

// FindByID returns the account with id.
func (repository *PostgresUserRepository) FindByID(ctx context.Context, id int64) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, userColumns, schema.User.Table, schema.User.ID)
	return repository.scanOne(ctx, "find_user_by_id", query, id)
}

// FindByEmail returns the account registered under email (case-insensitive).
func (repository *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE LOWER(%s) = $1`, userColumns, schema.User.Table, schema.User.Email)
	return repository.scanOne(ctx, "find_user_by_email", query, NormalizeEmail(email))
}

func (repository *PostgresUserRepository) scanOne(ctx context.Context, action, query string, args ...any) (*User, error) {
	user := &User{}
	err := repository.db.QueryRow(ctx, query, args...).Scan(
		&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	return user, nil
}
