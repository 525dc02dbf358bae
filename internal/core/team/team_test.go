// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package team_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ecclesia/internal/core/team"
	"github.com/taibuivan/ecclesia/internal/platform/authz"
	"github.com/taibuivan/ecclesia/internal/platform/authz/authztest"
	"github.com/taibuivan/ecclesia/pkg/pagination"
)

type fakeRepository struct {
	table *authztest.Table[*team.Member]
}

func bySortOrder(a, b *team.Member) bool { return a.SortOrder < b.SortOrder }

func (repository *fakeRepository) List(_ context.Context, visibility authz.Filter, params pagination.Params) ([]*team.Member, int, error) {
	items, total := repository.table.Page(visibility, params, bySortOrder)
	return items, total, nil
}

func (repository *fakeRepository) FindByID(_ context.Context, id int64, visibility authz.Filter) (*team.Member, error) {
	return repository.table.Get(id, visibility)
}

func (repository *fakeRepository) Create(_ context.Context, member *team.Member) error {
	repository.table.Insert(func(id int64) *team.Member {
		member.ID = id
		return member
	})
	return nil
}

func (repository *fakeRepository) Update(_ context.Context, member *team.Member) error {
	repository.table.Put(member.ID, member)
	return nil
}

func (repository *fakeRepository) Delete(_ context.Context, id int64) error {
	return repository.table.Delete(id, authz.Filter{})
}

func setup(t *testing.T) (*authztest.Stack, http.Handler) {
	t.Helper()
	stack := authztest.New(t)
	repository := &fakeRepository{table: authztest.NewTable(func(*team.Member) map[string]any { return nil })}

	repository.table.Put(1, &team.Member{ID: 1, Name: "Grace", Position: "Worship leader", SortOrder: 3})
	repository.table.Put(2, &team.Member{ID: 2, Name: "John", Position: "Senior pastor", SortOrder: 1})
	repository.table.Put(3, &team.Member{ID: 3, Name: "Ruth", Position: "Youth pastor", SortOrder: 2})

	service := team.NewService(repository, stack.Policy, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return stack, stack.Router("/team", team.NewHandler(service, stack.Gate).Routes())
}

/*
TestTeam_DisplayOrder lists profiles by sort_order for anonymous visitors.
*/
func TestTeam_DisplayOrder(t *testing.T) {
	stack, router := setup(t)

	recorder := stack.Do(t, router, http.MethodGet, "/team", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var names []string
	for _, member := range authztest.Data[[]team.Member](t, recorder) {
		names = append(names, member.Name)
	}
	assert.Equal(t, []string{"John", "Ruth", "Grace"}, names)
}

/*
TestTeam_Writes requires staff and patches only the supplied fields.
*/
func TestTeam_Writes(t *testing.T) {
	stack, router := setup(t)

	body := `{"name":"Paul","position":"Deacon","sort_order":4}`
	assert.Equal(t, http.StatusUnauthorized, stack.Do(t, router, http.MethodPost, "/team", body, nil).Code)
	assert.Equal(t, http.StatusForbidden, stack.Do(t, router, http.MethodPost, "/team", body, authztest.Member).Code)
	require.Equal(t, http.StatusCreated, stack.Do(t, router, http.MethodPost, "/team", body, authztest.Pastor).Code)

	assert.Equal(t, http.StatusBadRequest, stack.Do(t, router, http.MethodPost, "/team", `{"name":"x","position":"y","sort_order":-1}`, authztest.Pastor).Code)

	updated := stack.Do(t, router, http.MethodPut, "/team/4", `{"sort_order":0}`, authztest.Admin)
	require.Equal(t, http.StatusOK, updated.Code)
	member := authztest.Data[team.Member](t, updated)
	assert.Equal(t, 0, member.SortOrder)
	assert.Equal(t, "Deacon", member.Position)

	assert.Equal(t, http.StatusNoContent, stack.Do(t, router, http.MethodDelete, "/team/4", "", authztest.Pastor).Code)
}
