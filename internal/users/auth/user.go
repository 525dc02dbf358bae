// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements account registration and login.

It owns the user entity and the only code path that reads a password hash.
Successful calls return a signed identity token; the server keeps no session
state.
*/
package auth

import (
	"strings"
	"time"

	"github.com/taibuivan/ecclesia/internal/platform/sec"
)

// # Domain Entities

// User is a registered account.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         sec.Role  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the token snapshot of u.
func (u *User) Identity() sec.Identity {
	return sec.Identity{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}

// Session is returned by register and login.
type Session struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// NormalizeEmail lowercases and trims an address so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// # Field Identifiers

const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldRole     = "role"
)

// # Constraints

const (
	// MinPasswordLength is counted in characters.
	MinPasswordLength = 8
	// MaxNameLength bounds display names.
	MaxNameLength = 100
	// MaxEmailLength bounds addresses.
	MaxEmailLength = 254
)

// Client messages.
const (
	MsgInvalidCredentials = "Invalid email or password"
	MsgEmailTaken         = "Email already registered"
)
