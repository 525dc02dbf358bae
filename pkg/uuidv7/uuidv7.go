// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package uuidv7 wraps google/uuid to generate time-ordered identifiers.
//
// Request IDs use it so log lines sort by arrival without a separate timestamp.
package uuidv7

import "github.com/google/uuid"

// New returns a UUIDv7 string. If the time-ordered generator fails it falls
// back to a random v4 value instead of panicking.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Valid reports whether s parses as a UUID of any version.
// Client-supplied request IDs are accepted only when Valid.
func Valid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
