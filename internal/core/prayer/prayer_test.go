// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package prayer_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ecclesia/internal/core/prayer"
	"github.com/taibuivan/ecclesia/internal/platform/authz"
	"github.com/taibuivan/ecclesia/internal/platform/authz/authztest"
	"github.com/taibuivan/ecclesia/pkg/pagination"
)

type fakeRepository struct {
	table *authztest.Table[*prayer.Request]
}

func (repository *fakeRepository) List(_ context.Context, visibility authz.Filter, params pagination.Params) ([]*prayer.Request, int, error) {
	items, total := repository.table.Page(visibility, params, nil)
	return items, total, nil
}

func (repository *fakeRepository) FindByID(_ context.Context, id int64, visibility authz.Filter) (*prayer.Request, error) {
	return repository.table.Get(id, visibility)
}

func (repository *fakeRepository) Create(_ context.Context, request *prayer.Request) error {
	repository.table.Insert(func(id int64) *prayer.Request {
		request.ID = id
		return request
	})
	return nil
}

func (repository *fakeRepository) UpdateStatus(_ context.Context, id int64, status prayer.Status) (*prayer.Request, error) {
	request, err := repository.table.Get(id, authz.Filter{})
	if err != nil {
		return nil, err
	}
	request.Status = status
	repository.table.Put(id, request)
	return request, nil
}

func (repository *fakeRepository) Delete(_ context.Context, id int64) error {
	return repository.table.Delete(id, authz.Filter{})
}

func setup(t *testing.T) (*authztest.Stack, http.Handler, *fakeRepository) {
	t.Helper()
	stack := authztest.New(t)
	repository := &fakeRepository{table: authztest.NewTable(func(request *prayer.Request) map[string]any {
		return map[string]any{"status": string(request.Status)}
	})}
	repository.table.Put(1, &prayer.Request{ID: 1, Content: "Healing for my mother", Status: prayer.StatusPending})
	repository.table.Put(2, &prayer.Request{ID: 2, Content: "New job", Status: prayer.StatusAnswered})

	service := prayer.NewService(repository, stack.Policy, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return stack, stack.Router("/prayer-requests", prayer.NewHandler(service, stack.Gate, nil).Routes()), repository
}

/*
TestPrayer_Submit accepts anonymous submissions and stamps signed-in submitters.
*/
func TestPrayer_Submit(t *testing.T) {
	stack, router, repository := setup(t)

	anonymous := stack.Do(t, router, http.MethodPost, "/prayer-requests", `{"name":"A visitor","content":"Peace for our city"}`, nil)
	require.Equal(t, http.StatusCreated, anonymous.Code)
	submitted := authztest.Data[prayer.Request](t, anonymous)
	assert.Nil(t, submitted.SubmittedBy)
	assert.Equal(t, prayer.StatusPending, submitted.Status)

	member := stack.Do(t, router, http.MethodPost, "/prayer-requests", `{"content":"Exams next week"}`, authztest.Member)
	require.Equal(t, http.StatusCreated, member.Code)
	stamped := authztest.Data[prayer.Request](t, member)
	require.NotNil(t, stamped.SubmittedBy)
	assert.Equal(t, authztest.Member.ID, *stamped.SubmittedBy)
	assert.Equal(t, authztest.Member.Email, stamped.Email)

	for _, invalid := range []string{`{}`, `{"content":"   "}`, `{"content":"x","email":"nope"}`} {
		assert.Equal(t, http.StatusBadRequest, stack.Do(t, router, http.MethodPost, "/prayer-requests", invalid, nil).Code, invalid)
	}
	assert.Equal(t, 4, repository.table.Len())
}

/*
TestPrayer_StaffOnlyReads hides every request from non-staff callers.
*/
func TestPrayer_StaffOnlyReads(t *testing.T) {
	stack, router, _ := setup(t)

	assert.Equal(t, http.StatusUnauthorized, stack.Do(t, router, http.MethodGet, "/prayer-requests", "", nil).Code)
	assert.Equal(t, http.StatusForbidden, stack.Do(t, router, http.MethodGet, "/prayer-requests", "", authztest.Member).Code)
	assert.Equal(t, http.StatusForbidden, stack.Do(t, router, http.MethodGet, "/prayer-requests/1", "", authztest.Member).Code)

	all := stack.Do(t, router, http.MethodGet, "/prayer-requests", "", authztest.Pastor)
	require.Equal(t, http.StatusOK, all.Code)
	assert.Len(t, authztest.Data[[]prayer.Request](t, all), 2)

	pending := stack.Do(t, router, http.MethodGet, "/prayer-requests?status=pending", "", authztest.Admin)
	require.Equal(t, http.StatusOK, pending.Code)
	requests := authztest.Data[[]prayer.Request](t, pending)
	require.Len(t, requests, 1)
	assert.Equal(t, int64(1), requests[0].ID)
}

/*
TestPrayer_FollowUp moves a request through its statuses and deletes it.
*/
func TestPrayer_FollowUp(t *testing.T) {
	stack, router, _ := setup(t)

	assert.Equal(t, http.StatusForbidden, stack.Do(t, router, http.MethodPatch, "/prayer-requests/1/status", `{"status":"praying"}`, authztest.Member).Code)

	praying := stack.Do(t, router, http.MethodPatch, "/prayer-requests/1/status", `{"status":"praying"}`, authztest.Pastor)
	require.Equal(t, http.StatusOK, praying.Code)
	assert.Equal(t, prayer.StatusPraying, authztest.Data[prayer.Request](t, praying).Status)

	assert.Equal(t, http.StatusBadRequest, stack.Do(t, router, http.MethodPatch, "/prayer-requests/1/status", `{"status":"ignored"}`, authztest.Pastor).Code)
	assert.Equal(t, http.StatusNotFound, stack.Do(t, router, http.MethodPatch, "/prayer-requests/9/status", `{"status":"answered"}`, authztest.Pastor).Code)

	assert.Equal(t, http.StatusNoContent, stack.Do(t, router, http.MethodDelete, "/prayer-requests/1", "", authztest.Admin).Code)
	assert.Equal(t, http.StatusNotFound, stack.Do(t, router, http.MethodGet, "/prayer-requests/1", "", authztest.Admin).Code)
}
