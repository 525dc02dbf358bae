// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ecclesia/internal/platform/ctxutil"
	"github.com/taibuivan/ecclesia/internal/platform/sec"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. Initially should return the default logger
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_Identity verifies resolved identities and the anonymous marker.
*/
func TestContext_Identity(t *testing.T) {
	ctx := context.Background()

	// 1. Unresolved
	identity, resolved := ctxutil.GetIdentity(ctx)
	assert.Nil(t, identity)
	assert.False(t, resolved)

	// 2. Resolved as anonymous
	anonymous := ctxutil.WithIdentity(ctx, nil)
	identity, resolved = ctxutil.GetIdentity(anonymous)
	assert.Nil(t, identity)
	assert.True(t, resolved)

	// 3. Resolved as a member
	member := &sec.Identity{ID: 9, Email: "m@church.org", Role: sec.RoleMember}
	withMember := ctxutil.WithIdentity(ctx, member)
	identity, resolved = ctxutil.GetIdentity(withMember)
	require.True(t, resolved)
	assert.Equal(t, member, identity)
	assert.Equal(t, member, ctxutil.Identity(withMember))
}
