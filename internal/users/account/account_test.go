// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ecclesia/internal/platform/authz/authztest"
	"github.com/taibuivan/ecclesia/internal/platform/dberr"
	"github.com/taibuivan/ecclesia/internal/platform/sec"
	"github.com/taibuivan/ecclesia/internal/users/account"
	"github.com/taibuivan/ecclesia/internal/users/auth"
	"github.com/taibuivan/ecclesia/pkg/pagination"
)

// # Test Doubles

type fakeAccountRepository struct {
	mu    sync.Mutex
	users map[int64]*auth.User
}

func newFakeAccountRepository(identities ...*sec.Identity) *fakeAccountRepository {
	repository := &fakeAccountRepository{users: map[int64]*auth.User{}}
	for _, identity := range identities {
		repository.users[identity.ID] = &auth.User{
			ID: identity.ID, Email: identity.Email, Name: identity.Name, Role: identity.Role,
		}
	}
	return repository
}

func (repository *fakeAccountRepository) List(_ context.Context, params pagination.Params) ([]*auth.User, int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	all := make([]*auth.User, 0, len(repository.users))
	for _, user := range repository.users {
		all = append(all, user)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	start, end := params.Window(len(all))
	return all[start:end], len(all), nil
}

func (repository *fakeAccountRepository) FindByID(_ context.Context, id int64) (*auth.User, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	user, ok := repository.users[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return user, nil
}

func (repository *fakeAccountRepository) UpdateRole(_ context.Context, id int64, role sec.Role) (*auth.User, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	user, ok := repository.users[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	user.Role = role
	return user, nil
}

func (repository *fakeAccountRepository) Delete(_ context.Context, id int64) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.users[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(repository.users, id)
	return nil
}

func setup(t *testing.T) (*authztest.Stack, http.Handler, *fakeAccountRepository) {
	t.Helper()
	stack := authztest.New(t)
	repository := newFakeAccountRepository(authztest.Admin, authztest.Pastor, authztest.Member)
	service := account.NewService(repository, slog.New(slog.NewTextHandler(io.Discard, nil)))
	handler := account.NewHandler(service, stack.Gate)
	return stack, stack.Router("/users", handler.Routes()), repository
}

// # Access Control

/*
TestUsers_RequireMasterAdmin refuses every non-admin caller.
*/
func TestUsers_RequireMasterAdmin(t *testing.T) {
	stack, router, _ := setup(t)

	assert.Equal(t, http.StatusUnauthorized, stack.Do(t, router, http.MethodGet, "/users", "", nil).Code)
	assert.Equal(t, http.StatusForbidden, stack.Do(t, router, http.MethodGet, "/users", "", authztest.Pastor).Code)
	assert.Equal(t, http.StatusForbidden, stack.Do(t, router, http.MethodDelete, "/users/3", "", authztest.Member).Code)
	assert.Equal(t, http.StatusOK, stack.Do(t, router, http.MethodGet, "/users", "", authztest.Admin).Code)
}

/*
TestUsers_List returns paginated accounts without password hashes.
*/
func TestUsers_List(t *testing.T) {
	stack, router, _ := setup(t)

	recorder := stack.Do(t, router, http.MethodGet, "/users?limit=2", "", authztest.Admin)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "password")

	var body struct {
		Data []auth.User     `json:"data"`
		Meta pagination.Meta `json:"meta"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	assert.Len(t, body.Data, 2)
	assert.Equal(t, 3, body.Meta.Total)
	assert.Equal(t, 2, body.Meta.TotalPages)
}

// # Role Changes

/*
TestUsers_ChangeRole covers promotion, unknown roles, self-demotion and missing users.
*/
func TestUsers_ChangeRole(t *testing.T) {
	stack, router, repository := setup(t)

	tests := []struct {
		name   string
		target string
		body   string
		status int
	}{
		{"promote_member", "/users/3/role", `{"role":"pastor"}`, http.StatusOK},
		{"unknown_role", "/users/3/role", `{"role":"bishop"}`, http.StatusBadRequest},
		{"self_demote", "/users/1/role", `{"role":"member"}`, http.StatusBadRequest},
		{"missing_user", "/users/99/role", `{"role":"member"}`, http.StatusNotFound},
		{"bad_id", "/users/abc/role", `{"role":"member"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := stack.Do(t, router, http.MethodPatch, tt.target, tt.body, authztest.Admin)
			assert.Equal(t, tt.status, recorder.Code)
		})
	}

	assert.Equal(t, sec.RolePastor, repository.users[3].Role)
	assert.Equal(t, sec.RoleMasterAdmin, repository.users[1].Role)
}

// # Deletion

/*
TestUsers_Delete removes other accounts and refuses self-deletion.
*/
func TestUsers_Delete(t *testing.T) {
	stack, router, repository := setup(t)

	assert.Equal(t, http.StatusForbidden, stack.Do(t, router, http.MethodDelete, "/users/1", "", authztest.Admin).Code)
	assert.Equal(t, http.StatusNoContent, stack.Do(t, router, http.MethodDelete, "/users/3", "", authztest.Admin).Code)
	assert.Equal(t, http.StatusNotFound, stack.Do(t, router, http.MethodDelete, "/users/3", "", authztest.Admin).Code)

	_, ok := repository.users[1]
	assert.True(t, ok)
}
