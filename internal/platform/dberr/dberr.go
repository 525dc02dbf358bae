// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/ecclesia/internal/platform/apperr"
)

// SQLSTATE codes the stores care about.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

var (
	// ErrNotFound is returned when a row is missing or hidden by a visibility filter.
	ErrNotFound = errors.New("dberr: not found")

	// ErrDuplicate is returned when an insert or update violates a unique constraint.
	ErrDuplicate = errors.New("dberr: duplicate")

	// ErrReference is returned when a foreign key does not resolve.
	ErrReference = errors.New("dberr: missing reference")
)

// Wrap classifies a pgx error into one of the sentinels above, or an
// [apperr.Internal] carrying action and the original cause.
//
// Services map the sentinels to domain messages; anything else surfaces as 500.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
		case codeForeignKeyViolation:
			return fmt.Errorf("%w: %s", ErrReference, pgErr.ConstraintName)
		}
	}

	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}

// NotFoundAs converts [ErrNotFound] into a 404 for resource and passes other errors through.
func NotFoundAs(err error, resource string) error {
	if errors.Is(err, ErrNotFound) {
		return apperr.NotFound(resource)
	}
	return err
}
