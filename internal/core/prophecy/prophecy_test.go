// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package prophecy_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ecclesia/internal/core/prophecy"
	"github.com/taibuivan/ecclesia/internal/platform/authz"
	"github.com/taibuivan/ecclesia/internal/platform/authz/authztest"
	"github.com/taibuivan/ecclesia/internal/platform/dberr"
	"github.com/taibuivan/ecclesia/pkg/pagination"
)

type fakeRepository struct {
	table *authztest.Table[*prophecy.Prophecy]
}

func (repository *fakeRepository) List(_ context.Context, visibility authz.Filter, params pagination.Params) ([]*prophecy.Prophecy, int, error) {
	items, total := repository.table.Page(visibility, params, nil)
	return items, total, nil
}

func (repository *fakeRepository) FindByID(_ context.Context, id int64, visibility authz.Filter) (*prophecy.Prophecy, error) {
	return repository.table.Get(id, visibility)
}

func (repository *fakeRepository) Create(_ context.Context, p *prophecy.Prophecy) error {
	repository.table.Insert(func(id int64) *prophecy.Prophecy {
		p.ID = id
		return p
	})
	return nil
}

func (repository *fakeRepository) Update(_ context.Context, p *prophecy.Prophecy) error {
	if _, err := repository.table.Get(p.ID, authz.Filter{}); err != nil {
		return err
	}
	repository.table.Put(p.ID, p)
	return nil
}

func (repository *fakeRepository) UpdateStatus(_ context.Context, id int64, status prophecy.Status) (*prophecy.Prophecy, error) {
	p, err := repository.table.Get(id, authz.Filter{})
	if err != nil {
		return nil, err
	}
	p.Status = status
	repository.table.Put(id, p)
	return p, nil
}

func (repository *fakeRepository) Delete(_ context.Context, id int64) error {
	return repository.table.Delete(id, authz.Filter{})
}

func setup(t *testing.T) (*authztest.Stack, http.Handler, *fakeRepository) {
	t.Helper()
	stack := authztest.New(t)
	repository := &fakeRepository{table: authztest.NewTable(func(p *prophecy.Prophecy) map[string]any {
		return map[string]any{"status": string(p.Status)}
	})}
	repository.table.Put(1, &prophecy.Prophecy{ID: 1, Title: "Rain", Status: prophecy.StatusVerified})
	repository.table.Put(2, &prophecy.Prophecy{ID: 2, Title: "Harvest", Status: prophecy.StatusPending})
	repository.table.Put(3, &prophecy.Prophecy{ID: 3, Title: "Storm", Status: prophecy.StatusRejected})

	service := prophecy.NewService(repository, stack.Policy, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return stack, stack.Router("/prophecies", prophecy.NewHandler(service, stack.Gate).Routes()), repository
}

func titles(items []prophecy.Prophecy) []string {
	result := make([]string, 0, len(items))
	for _, item := range items {
		result = append(result, item.Title)
	}
	return result
}

/*
TestProphecies_Visibility shows verified prophecies publicly and filters staff by status.
*/
func TestProphecies_Visibility(t *testing.T) {
	stack, router, _ := setup(t)

	anonymous := stack.Do(t, router, http.MethodGet, "/prophecies", "", nil)
	assert.Equal(t, []string{"Rain"}, titles(authztest.Data[[]prophecy.Prophecy](t, anonymous)))

	member := stack.Do(t, router, http.MethodGet, "/prophecies?status=pending", "", authztest.Member)
	assert.Equal(t, []string{"Rain"}, titles(authztest.Data[[]prophecy.Prophecy](t, member)))

	pending := stack.Do(t, router, http.MethodGet, "/prophecies?status=pending", "", authztest.Pastor)
	assert.Equal(t, []string{"Harvest"}, titles(authztest.Data[[]prophecy.Prophecy](t, pending)))

	all := stack.Do(t, router, http.MethodGet, "/prophecies", "", authztest.Admin)
	assert.Equal(t, []string{"Rain", "Harvest", "Storm"}, titles(authztest.Data[[]prophecy.Prophecy](t, all)))

	assert.Equal(t, http.StatusNotFound, stack.Do(t, router, http.MethodGet, "/prophecies/2", "", authztest.Member).Code)
	assert.Equal(t, http.StatusOK, stack.Do(t, router, http.MethodGet, "/prophecies/2", "", authztest.Pastor).Code)
}

/*
TestProphecies_CreateDefaultsPending records new prophecies as pending.
*/
func TestProphecies_CreateDefaultsPending(t *testing.T) {
	stack, router, _ := setup(t)

	recorder := stack.Do(t, router, http.MethodPost, "/prophecies", `{"title":"Fire","content":"...","received_on":"2026-03-01"}`, authztest.Pastor)
	require.Equal(t, http.StatusCreated, recorder.Code)

	created := authztest.Data[prophecy.Prophecy](t, recorder)
	assert.Equal(t, prophecy.StatusPending, created.Status)
	require.NotNil(t, created.ReceivedOn)
	assert.Equal(t, "2026-03-01", created.ReceivedOn.Format("2006-01-02"))

	invalid := stack.Do(t, router, http.MethodPost, "/prophecies", `{"title":"Fire","content":"...","received_on":"March"}`, authztest.Pastor)
	assert.Equal(t, http.StatusBadRequest, invalid.Code)

	assert.Equal(t, http.StatusForbidden, stack.Do(t, router, http.MethodPost, "/prophecies", `{"title":"x","content":"y"}`, authztest.Member).Code)
}

/*
TestProphecies_SetStatus verifies a pending prophecy, making it public.
*/
func TestProphecies_SetStatus(t *testing.T) {
	stack, router, _ := setup(t)

	assert.Equal(t, http.StatusBadRequest, stack.Do(t, router, http.MethodPatch, "/prophecies/2/status", `{"status":"approved"}`, authztest.Pastor).Code)
	assert.Equal(t, http.StatusNotFound, stack.Do(t, router, http.MethodPatch, "/prophecies/9/status", `{"status":"verified"}`, authztest.Pastor).Code)
	assert.Equal(t, http.StatusForbidden, stack.Do(t, router, http.MethodPatch, "/prophecies/2/status", `{"status":"verified"}`, authztest.Member).Code)

	recorder := stack.Do(t, router, http.MethodPatch, "/prophecies/2/status", `{"status":"verified"}`, authztest.Pastor)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, prophecy.StatusVerified, authztest.Data[prophecy.Prophecy](t, recorder).Status)

	assert.Equal(t, http.StatusOK, stack.Do(t, router, http.MethodGet, "/prophecies/2", "", nil).Code)
}

/*
TestProphecies_UpdateAndDelete covers the remaining staff writes.
*/
func TestProphecies_UpdateAndDelete(t *testing.T) {
	stack, router, repository := setup(t)

	recorder := stack.Do(t, router, http.MethodPut, "/prophecies/3", `{"title":"Calm"}`, authztest.Admin)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Calm", authztest.Data[prophecy.Prophecy](t, recorder).Title)

	assert.Equal(t, http.StatusNoContent, stack.Do(t, router, http.MethodDelete, "/prophecies/3", "", authztest.Admin).Code)
	_, err := repository.table.Get(3, authz.Filter{})
	assert.ErrorIs(t, err, dberr.ErrNotFound)
}
