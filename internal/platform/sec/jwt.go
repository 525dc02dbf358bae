// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides the cryptographic primitives of the authentication core:
// password hashing, the closed role enumeration, and the signed identity token.
//
// # Architecture
//
// Nothing in this package performs I/O. The signing secret is handed in once
// at construction, so every function here is safe for concurrent use.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the lifetime of an identity token.
const TokenTTL = 7 * 24 * time.Hour

// ErrInvalidToken is the only failure [TokenCodec.Decode] reports. Malformed,
// forged, wrong-algorithm and expired tokens are deliberately indistinguishable.
var ErrInvalidToken = errors.New("sec: invalid token")

// Identity is the authenticated snapshot carried inside a token.
type Identity struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// AuthClaims is the JWT payload.
//
// The role embedded here is trusted for authorization without a store lookup;
// a role change in the store takes effect on the next issued token.
type AuthClaims struct {
	jwt.RegisteredClaims

	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Name   string `json:"name"`
}

// Identity converts the claims into an [Identity].
func (claims *AuthClaims) Identity() Identity {
	return Identity{
		ID:    claims.UserID,
		Email: claims.Email,
		Name:  claims.Name,
		Role:  claims.Role,
	}
}

// TokenCodec signs and verifies identity tokens with HS256.
type TokenCodec struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// TokenOption customises a [TokenCodec].
type TokenOption func(*TokenCodec)

// WithClock replaces the wall clock used for issuance and expiry checks.
func WithClock(now func() time.Time) TokenOption {
	return func(codec *TokenCodec) { codec.now = now }
}

// WithTTL overrides [TokenTTL].
func WithTTL(ttl time.Duration) TokenOption {
	return func(codec *TokenCodec) { codec.ttl = ttl }
}

// NewTokenCodec builds a codec around a process-wide secret.
func NewTokenCodec(secret, issuer string, opts ...TokenOption) (*TokenCodec, error) {
	if secret == "" {
		return nil, errors.New("sec: empty signing secret")
	}

	codec := &TokenCodec{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    TokenTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(codec)
	}

	if codec.ttl <= 0 {
		return nil, errors.New("sec: token ttl must be positive")
	}
	return codec, nil
}

// TTL returns the lifetime of issued tokens.
func (codec *TokenCodec) TTL() time.Duration {
	return codec.ttl
}

// Encode signs identity into a token valid for [TokenCodec.TTL].
func (codec *TokenCodec) Encode(identity Identity) (string, error) {
	issuedAt := codec.now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", identity.ID),
			Issuer:    codec.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(codec.ttl)),
		},
		UserID: identity.ID,
		Email:  identity.Email,
		Role:   identity.Role,
		Name:   identity.Name,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(codec.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Decode verifies signature, algorithm, issuer and expiry and returns the identity.
func (codec *TokenCodec) Decode(tokenString string) (Identity, error) {
	claims := &AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return codec.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(codec.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(codec.now),
	)
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	if claims.UserID <= 0 || !claims.Role.Valid() {
		return Identity{}, ErrInvalidToken
	}

	return claims.Identity(), nil
}
