// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ecclesia/internal/core/media"
	"github.com/taibuivan/ecclesia/internal/platform/authz"
	"github.com/taibuivan/ecclesia/internal/platform/authz/authztest"
	"github.com/taibuivan/ecclesia/pkg/pagination"
)

type fakeRepository struct {
	table *authztest.Table[*media.Media]
}

func (repository *fakeRepository) List(_ context.Context, filter media.ListFilter, params pagination.Params) ([]*media.Media, int, error) {
	var ofKind func(*media.Media) bool
	if filter.Kind != "" {
		ofKind = func(m *media.Media) bool { return m.Kind == filter.Kind }
	}
	items, total := repository.table.Page(filter.Visibility, params, nil, ofKind)
	return items, total, nil
}

func (repository *fakeRepository) FindByID(_ context.Context, id int64, visibility authz.Filter) (*media.Media, error) {
	return repository.table.Get(id, visibility)
}

func (repository *fakeRepository) Create(_ context.Context, m *media.Media) error {
	repository.table.Insert(func(id int64) *media.Media {
		m.ID = id
		return m
	})
	return nil
}

func (repository *fakeRepository) Update(_ context.Context, m *media.Media) error {
	repository.table.Put(m.ID, m)
	return nil
}

func (repository *fakeRepository) Delete(_ context.Context, id int64) error {
	return repository.table.Delete(id, authz.Filter{})
}

func setup(t *testing.T) (*authztest.Stack, http.Handler) {
	t.Helper()
	stack := authztest.New(t)
	repository := &fakeRepository{table: authztest.NewTable(func(*media.Media) map[string]any { return nil })}

	repository.table.Put(1, &media.Media{ID: 1, Title: "Sunday sermon", Kind: media.KindAudio, URL: "https://cdn.church.org/1.mp3"})
	repository.table.Put(2, &media.Media{ID: 2, Title: "Choir", Kind: media.KindVideo, URL: "https://cdn.church.org/2.mp4"})
	repository.table.Put(3, &media.Media{ID: 3, Title: "Bible study", Kind: media.KindAudio, URL: "https://cdn.church.org/3.mp3"})

	service := media.NewService(repository, stack.Policy, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return stack, stack.Router("/media", media.NewHandler(service, stack.Gate).Routes())
}

/*
TestMedia_KindFilter narrows the public list by kind and rejects unknown kinds.
*/
func TestMedia_KindFilter(t *testing.T) {
	stack, router := setup(t)

	all := stack.Do(t, router, http.MethodGet, "/media", "", nil)
	require.Equal(t, http.StatusOK, all.Code)
	assert.Len(t, authztest.Data[[]media.Media](t, all), 3)

	audio := stack.Do(t, router, http.MethodGet, "/media?kind=AUDIO", "", nil)
	require.Equal(t, http.StatusOK, audio.Code)
	for _, item := range authztest.Data[[]media.Media](t, audio) {
		assert.Equal(t, media.KindAudio, item.Kind)
	}
	assert.Len(t, authztest.Data[[]media.Media](t, audio), 2)

	bad := stack.Do(t, router, http.MethodGet, "/media?kind=podcast", "", nil)
	assert.Equal(t, http.StatusBadRequest, bad.Code)
	assert.Contains(t, bad.Body.String(), "Must be one of: audio, video")
}

/*
TestMedia_Writes requires staff and validates kind, url and date.
*/
func TestMedia_Writes(t *testing.T) {
	stack, router := setup(t)

	body := `{"title":"Easter","kind":"video","url":"https://cdn.church.org/easter.mp4","recorded_on":"2026-04-05"}`
	assert.Equal(t, http.StatusUnauthorized, stack.Do(t, router, http.MethodPost, "/media", body, nil).Code)
	assert.Equal(t, http.StatusForbidden, stack.Do(t, router, http.MethodPost, "/media", body, authztest.Member).Code)

	created := stack.Do(t, router, http.MethodPost, "/media", body, authztest.Pastor)
	require.Equal(t, http.StatusCreated, created.Code)
	item := authztest.Data[media.Media](t, created)
	require.NotNil(t, item.RecordedOn)
	assert.Equal(t, "2026-04-05", item.RecordedOn.Format("2006-01-02"))
	require.NotNil(t, item.CreatedBy)
	assert.Equal(t, authztest.Pastor.ID, *item.CreatedBy)

	for _, invalid := range []string{
		`{"title":"x","kind":"podcast","url":"https://a.b/c"}`,
		`{"title":"x","kind":"audio","url":"not a url"}`,
		`{"title":"x","kind":"audio","url":"https://a.b/c","recorded_on":"05/04/2026"}`,
	} {
		assert.Equal(t, http.StatusBadRequest, stack.Do(t, router, http.MethodPost, "/media", invalid, authztest.Admin).Code, invalid)
	}

	updated := stack.Do(t, router, http.MethodPut, "/media/2", `{"speaker":"Pastor John"}`, authztest.Admin)
	require.Equal(t, http.StatusOK, updated.Code)
	assert.Equal(t, "Pastor John", authztest.Data[media.Media](t, updated).Speaker)

	assert.Equal(t, http.StatusNoContent, stack.Do(t, router, http.MethodDelete, "/media/2", "", authztest.Admin).Code)
	assert.Equal(t, http.StatusNotFound, stack.Do(t, router, http.MethodGet, "/media/2", "", nil).Code)
}
