// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/taibuivan/ecclesia/internal/platform/apperr"
	"github.com/taibuivan/ecclesia/internal/platform/dberr"
	"github.com/taibuivan/ecclesia/internal/platform/metrics"
	"github.com/taibuivan/ecclesia/internal/platform/sec"
	"github.com/taibuivan/ecclesia/internal/platform/validate"
)

// # Contracts & Types

// TokenIssuer signs identity tokens. [*sec.TokenCodec] satisfies it.
type TokenIssuer interface {
	Encode(identity sec.Identity) (string, error)
}

// RegisterInput is the registration payload.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	// Role is honoured only when the caller is a master_admin.
	Role string
}

// LoginInput is the login payload.
type LoginInput struct {
	Email    string
	Password string
}

// Service implements registration and login.
type Service struct {
	users  UserRepository
	tokens TokenIssuer
	logger *slog.Logger
}

// NewService builds a [Service].
func NewService(users UserRepository, tokens TokenIssuer, logger *slog.Logger) *Service {
	return &Service{users: users, tokens: tokens, logger: logger}
}

// # Registration Flow

/*
Register creates an account and issues its token.

Anonymous and non-admin callers always receive the member role; asking for
any other role without a master_admin caller is refused with 403.

Returns:
  - *Session: the created user and its token
  - error: 400 on validation or duplicate email, 403 on role elevation
*/
func (service *Service) Register(ctx context.Context, caller *sec.Identity, input RegisterInput) (*Session, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = NormalizeEmail(input.Email)

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, MaxNameLength).
		Required(FieldEmail, input.Email).
		MaxLen(FieldEmail, input.Email, MaxEmailLength).
		Email(FieldEmail, input.Email).
		Required(FieldPassword, input.Password).
		MinLen(FieldPassword, input.Password, MinPasswordLength).
		MaxBytes(FieldPassword, input.Password, sec.MaxPasswordBytes)

	if err := validator.Err(); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", "invalid").Inc()
		return nil, err
	}

	role, err := service.assignableRole(caller, input.Role)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", "invalid").Inc()
		return nil, err
	}

	hash, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user := &User{Email: input.Email, Name: input.Name, PasswordHash: hash, Role: role}
	if err := service.users.Create(ctx, user); err != nil {
		if errors.Is(err, dberr.ErrDuplicate) {
			metrics.AuthAttemptsTotal.WithLabelValues("register", "invalid").Inc()
			return nil, validate.FieldErr(FieldEmail, MsgEmailTaken)
		}
		metrics.AuthAttemptsTotal.WithLabelValues("register", "error").Inc()
		return nil, err
	}

	session, err := service.issue(user)
	if err != nil {
		return nil, err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("register", "success").Inc()
	service.logger.InfoContext(ctx, "user_registered",
		slog.Int64("user_id", user.ID),
		slog.String("role", string(user.Role)),
	)
	return session, nil
}

func (service *Service) assignableRole(caller *sec.Identity, requested string) (sec.Role, error) {
	if requested == "" || requested == string(sec.RoleMember) {
		return sec.RoleMember, nil
	}

	if caller == nil || caller.Role != sec.RoleMasterAdmin {
		return "", apperr.Forbidden(apperr.MsgInsufficientPermission)
	}

	role, err := sec.ParseRole(requested)
	if err != nil {
		return "", validate.FieldErr(FieldRole, "Must be one of: "+strings.Join(sec.RoleNames(), ", "))
	}
	return role, nil
}

// # Login Flow

/*
Login verifies credentials and issues a token.

An unknown email and a wrong password produce the same 401 and take the same
bcrypt time.
*/
func (service *Service) Login(ctx context.Context, input LoginInput) (*Session, error) {
	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email).Required(FieldPassword, input.Password)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	user, err := service.users.FindByEmail(ctx, NormalizeEmail(input.Email))
	if err != nil && !errors.Is(err, dberr.ErrNotFound) {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "error").Inc()
		return nil, err
	}

	storedHash := ""
	if user != nil {
		storedHash = user.PasswordHash
	}

	if !sec.CheckPasswordTimingSafe(input.Password, storedHash) {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "invalid").Inc()
		service.logger.WarnContext(ctx, "login_failed")
		return nil, apperr.Unauthorized(MsgInvalidCredentials)
	}

	session, err := service.issue(user)
	if err != nil {
		return nil, err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("login", "success").Inc()
	service.logger.InfoContext(ctx, "user_logged_in", slog.Int64("user_id", user.ID))
	return session, nil
}

// # Bootstrap

/*
EnsureAdmin creates a master_admin account when email is not registered yet.
It lets a fresh deployment obtain its first administrator.
*/
func (service *Service) EnsureAdmin(ctx context.Context, name, email, password string) error {
	email = NormalizeEmail(email)

	_, err := service.users.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, dberr.ErrNotFound) {
		return err
	}

	if len(password) < MinPasswordLength {
		return validate.FieldErr(FieldPassword, "Minimum 8 characters")
	}

	hash, err := sec.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &User{Email: email, Name: name, PasswordHash: hash, Role: sec.RoleMasterAdmin}
	if err := service.users.Create(ctx, admin); err != nil && !errors.Is(err, dberr.ErrDuplicate) {
		return err
	}

	service.logger.InfoContext(ctx, "admin_bootstrapped", slog.Int64("user_id", admin.ID))
	return nil
}

func (service *Service) issue(user *User) (*Session, error) {
	token, err := service.tokens.Encode(user.Identity())
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &Session{User: user, Token: token}, nil
}
