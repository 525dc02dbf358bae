// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"fmt"

	"github.com/taibuivan/ecclesia/internal/platform/database/schema"
	"github.com/taibuivan/ecclesia/internal/platform/dberr"
	"github.com/taibuivan/ecclesia/internal/platform/postgres"
	"github.com/taibuivan/ecclesia/internal/platform/sec"
	"github.com/taibuivan/ecclesia/internal/users/auth"
	"github.com/taibuivan/ecclesia/pkg/pagination"
)

// PostgresAccountRepository implements [AccountRepository].
type PostgresAccountRepository struct {
	db postgres.DB
}

// NewAccountRepository builds a [PostgresAccountRepository].
func NewAccountRepository(db postgres.DB) *PostgresAccountRepository {
	return &PostgresAccountRepository{db: db}
}

// publicColumns excludes the password hash.
var publicColumns = schema.List([]string{
	schema.User.ID, schema.User.Email, schema.User.Name, schema.User.Role,
	schema.User.CreatedAt, schema.User.UpdatedAt,
})

func scanUser(row postgres.Scanner) (*auth.User, error) {
	user := &auth.User{}
	err := row.Scan(&user.ID, &user.Email, &user.Name, &user.Role, &user.CreatedAt, &user.UpdatedAt)
	return user, err
}

/*
List returns one page of accounts ordered by id, and the total count.
*/
func (repository *PostgresAccountRepository) List(ctx context.Context, params pagination.Params) ([]*auth.User, int, error) {
	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, schema.User.Table)
	if err := repository.db.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_users")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC LIMIT $1 OFFSET $2`,
		publicColumns, schema.User.Table, schema.User.ID)

	rows, err := repository.db.Query(ctx, query, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_users")
	}

	users, err := postgres.Collect(rows, "scan_user", scanUser)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// FindByID returns the account with id.
func (repository *PostgresAccountRepository) FindByID(ctx context.Context, id int64) (*auth.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, publicColumns, schema.User.Table, schema.User.ID)

	user, err := scanUser(repository.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_user")
	}
	return user, nil
}

// UpdateRole changes the role of id and returns the updated account.
func (repository *PostgresAccountRepository) UpdateRole(ctx context.Context, id int64, role sec.Role) (*auth.User, error) {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = NOW()
		WHERE %s = $1
		RETURNING %s`,
		schema.User.Table, schema.User.Role, schema.User.UpdatedAt,
		schema.User.ID, publicColumns,
	)

	user, err := scanUser(repository.db.QueryRow(ctx, query, id, role))
	if err != nil {
		return nil, dberr.Wrap(err, "update_user_role")
	}
	return user, nil
}

// Delete removes the account with id.
func (repository *PostgresAccountRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.User.Table, schema.User.ID)

	tag, err := repository.db.Exec(ctx, query, id)
	return postgres.Affected(tag, err, "delete_user")
}
