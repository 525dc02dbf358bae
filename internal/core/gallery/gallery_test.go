// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gallery_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ecclesia/internal/core/gallery"
	"github.com/taibuivan/ecclesia/internal/platform/authz"
	"github.com/taibuivan/ecclesia/internal/platform/authz/authztest"
	"github.com/taibuivan/ecclesia/pkg/pagination"
)

type fakeRepository struct {
	table *authztest.Table[*gallery.Image]
}

func (repository *fakeRepository) List(_ context.Context, filter gallery.ListFilter, params pagination.Params) ([]*gallery.Image, int, error) {
	var inAlbum func(*gallery.Image) bool
	if filter.Album != "" {
		inAlbum = func(image *gallery.Image) bool { return image.Album == filter.Album }
	}
	items, total := repository.table.Page(filter.Visibility, params, nil, inAlbum)
	return items, total, nil
}

func (repository *fakeRepository) Albums(_ context.Context, visibility authz.Filter) ([]gallery.Album, error) {
	counts := map[string]int{}
	for _, image := range repository.table.Select(visibility, nil) {
		counts[image.Album]++
	}

	albums := make([]gallery.Album, 0, len(counts))
	for name, images := range counts {
		albums = append(albums, gallery.Album{Name: name, Images: images})
	}
	sort.Slice(albums, func(i, j int) bool { return albums[i].Name < albums[j].Name })
	return albums, nil
}

func (repository *fakeRepository) FindByID(_ context.Context, id int64, visibility authz.Filter) (*gallery.Image, error) {
	return repository.table.Get(id, visibility)
}

func (repository *fakeRepository) Create(_ context.Context, image *gallery.Image) error {
	repository.table.Insert(func(id int64) *gallery.Image {
		image.ID = id
		return image
	})
	return nil
}

func (repository *fakeRepository) Update(_ context.Context, image *gallery.Image) error {
	repository.table.Put(image.ID, image)
	return nil
}

func (repository *fakeRepository) Delete(_ context.Context, id int64) error {
	return repository.table.Delete(id, authz.Filter{})
}

func setup(t *testing.T) (*authztest.Stack, http.Handler) {
	t.Helper()
	stack := authztest.New(t)
	repository := &fakeRepository{table: authztest.NewTable(func(*gallery.Image) map[string]any { return nil })}

	repository.table.Put(1, &gallery.Image{ID: 1, Album: "baptism", Title: "River", ImageURL: "https://cdn.church.org/1.jpg"})
	repository.table.Put(2, &gallery.Image{ID: 2, Album: "christmas", Title: "Choir", ImageURL: "https://cdn.church.org/2.jpg"})
	repository.table.Put(3, &gallery.Image{ID: 3, Album: "baptism", Title: "Font", ImageURL: "https://cdn.church.org/3.jpg"})

	service := gallery.NewService(repository, stack.Policy, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return stack, stack.Router("/gallery", gallery.NewHandler(service, stack.Gate).Routes())
}

/*
TestGallery_Browse covers the album filter and the album index.
*/
func TestGallery_Browse(t *testing.T) {
	stack, router := setup(t)

	baptism := stack.Do(t, router, http.MethodGet, "/gallery?album=baptism", "", nil)
	require.Equal(t, http.StatusOK, baptism.Code)
	assert.Len(t, authztest.Data[[]gallery.Image](t, baptism), 2)

	albums := stack.Do(t, router, http.MethodGet, "/gallery/albums", "", nil)
	require.Equal(t, http.StatusOK, albums.Code)
	assert.Equal(t, []gallery.Album{{Name: "baptism", Images: 2}, {Name: "christmas", Images: 1}},
		authztest.Data[[]gallery.Album](t, albums))

	assert.Equal(t, http.StatusOK, stack.Do(t, router, http.MethodGet, "/gallery/2", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, stack.Do(t, router, http.MethodGet, "/gallery/99", "", nil).Code)
}

/*
TestGallery_Writes requires staff and files album-less images under the default album.
*/
func TestGallery_Writes(t *testing.T) {
	stack, router := setup(t)

	body := `{"title":"Picnic","image_url":"https://cdn.church.org/picnic.jpg"}`
	assert.Equal(t, http.StatusForbidden, stack.Do(t, router, http.MethodPost, "/gallery", body, authztest.Member).Code)

	created := stack.Do(t, router, http.MethodPost, "/gallery", body, authztest.Pastor)
	require.Equal(t, http.StatusCreated, created.Code)
	assert.Equal(t, gallery.DefaultAlbum, authztest.Data[gallery.Image](t, created).Album)

	assert.Equal(t, http.StatusBadRequest, stack.Do(t, router, http.MethodPost, "/gallery", `{"title":"x"}`, authztest.Pastor).Code)

	moved := stack.Do(t, router, http.MethodPut, "/gallery/4", `{"album":"summer"}`, authztest.Admin)
	require.Equal(t, http.StatusOK, moved.Code)
	assert.Equal(t, "summer", authztest.Data[gallery.Image](t, moved).Album)

	assert.Equal(t, http.StatusNoContent, stack.Do(t, router, http.MethodDelete, "/gallery/4", "", authztest.Admin).Code)
	assert.Equal(t, http.StatusNotFound, stack.Do(t, router, http.MethodDelete, "/gallery/4", "", authztest.Admin).Code)
}
