// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// # Credential Hashing

const (
	// PasswordCost is the bcrypt work factor.
	PasswordCost = 10

	// MaxPasswordBytes is the longest input bcrypt accepts.
	MaxPasswordBytes = 72
)

// ErrPasswordTooLong is returned by [HashPassword] when the input exceeds [MaxPasswordBytes].
var ErrPasswordTooLong = errors.New("sec: password exceeds 72 bytes")

// HashPassword returns a salted bcrypt hash suitable for a single text column.
func HashPassword(plainTextPassword string) (string, error) {
	if len(plainTextPassword) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), PasswordCost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// CheckPasswordHash reports whether plainTextPassword produced existingHash.
// A malformed hash is simply a mismatch.
func CheckPasswordHash(plainTextPassword, existingHash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(existingHash), []byte(plainTextPassword))
	return err == nil
}

// dummyHash is compared against when a login names an unknown email so both
// branches spend the same bcrypt time.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("ecclesia-timing-equaliser"), PasswordCost)

// CheckPasswordTimingSafe behaves like [CheckPasswordHash] but accepts an empty
// hash (unknown account) and still performs a full comparison.
func CheckPasswordTimingSafe(plainTextPassword, existingHash string) bool {
	if existingHash == "" {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(plainTextPassword))
		return false
	}
	return CheckPasswordHash(plainTextPassword, existingHash)
}
