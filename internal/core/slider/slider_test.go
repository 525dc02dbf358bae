// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slider_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ecclesia/internal/core/slider"
	"github.com/taibuivan/ecclesia/internal/platform/authz"
	"github.com/taibuivan/ecclesia/internal/platform/authz/authztest"
	"github.com/taibuivan/ecclesia/pkg/pagination"
)

type fakeRepository struct {
	table *authztest.Table[*slider.Image]
}

func byPosition(a, b *slider.Image) bool { return a.Position < b.Position }

func (repository *fakeRepository) List(_ context.Context, visibility authz.Filter, params pagination.Params) ([]*slider.Image, int, error) {
	items, total := repository.table.Page(visibility, params, byPosition)
	return items, total, nil
}

func (repository *fakeRepository) FindByID(_ context.Context, id int64, visibility authz.Filter) (*slider.Image, error) {
	return repository.table.Get(id, visibility)
}

func (repository *fakeRepository) Create(_ context.Context, image *slider.Image) error {
	repository.table.Insert(func(id int64) *slider.Image {
		image.ID = id
		return image
	})
	return nil
}

func (repository *fakeRepository) Update(_ context.Context, image *slider.Image) error {
	repository.table.Put(image.ID, image)
	return nil
}

func (repository *fakeRepository) Delete(_ context.Context, id int64) error {
	return repository.table.Delete(id, authz.Filter{})
}

func setup(t *testing.T) (*authztest.Stack, http.Handler) {
	t.Helper()
	stack := authztest.New(t)
	repository := &fakeRepository{table: authztest.NewTable(func(image *slider.Image) map[string]any {
		return map[string]any{"status": string(image.Status)}
	})}
	repository.table.Put(1, &slider.Image{ID: 1, Title: "Second", Position: 2, Status: slider.StatusActive})
	repository.table.Put(2, &slider.Image{ID: 2, Title: "First", Position: 1, Status: slider.StatusActive})
	repository.table.Put(3, &slider.Image{ID: 3, Title: "Hidden", Position: 0, Status: slider.StatusInactive})

	service := slider.NewService(repository, stack.Policy, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return stack, stack.Router("/slider", slider.NewHandler(service, stack.Gate).Routes())
}

func titles(images []slider.Image) []string {
	result := make([]string, 0, len(images))
	for _, image := range images {
		result = append(result, image.Title)
	}
	return result
}

/*
TestSlider_Visibility hides inactive slides from non-staff and orders by position.
*/
func TestSlider_Visibility(t *testing.T) {
	stack, router := setup(t)

	public := stack.Do(t, router, http.MethodGet, "/slider", "", nil)
	assert.Equal(t, []string{"First", "Second"}, titles(authztest.Data[[]slider.Image](t, public)))

	staff := stack.Do(t, router, http.MethodGet, "/slider", "", authztest.Pastor)
	assert.Equal(t, []string{"Hidden", "First", "Second"}, titles(authztest.Data[[]slider.Image](t, staff)))

	inactive := stack.Do(t, router, http.MethodGet, "/slider?status=inactive", "", authztest.Admin)
	assert.Equal(t, []string{"Hidden"}, titles(authztest.Data[[]slider.Image](t, inactive)))

	assert.Equal(t, http.StatusNotFound, stack.Do(t, router, http.MethodGet, "/slider/3", "", authztest.Member).Code)
}

/*
TestSlider_Writes creates a slide, deactivates it and deletes it.
*/
func TestSlider_Writes(t *testing.T) {
	stack, router := setup(t)

	created := stack.Do(t, router, http.MethodPost, "/slider", `{"title":"Welcome","image_url":"https://cdn.church.org/a.jpg"}`, authztest.Pastor)
	require.Equal(t, http.StatusCreated, created.Code)
	image := authztest.Data[slider.Image](t, created)
	assert.Equal(t, slider.StatusActive, image.Status)

	assert.Equal(t, http.StatusBadRequest, stack.Do(t, router, http.MethodPost, "/slider", `{"title":"x","image_url":"not a url"}`, authztest.Pastor).Code)
	assert.Equal(t, http.StatusForbidden, stack.Do(t, router, http.MethodPost, "/slider", `{"title":"x"}`, authztest.Member).Code)

	updated := stack.Do(t, router, http.MethodPut, "/slider/4", `{"status":"inactive"}`, authztest.Pastor)
	require.Equal(t, http.StatusOK, updated.Code)
	assert.Equal(t, http.StatusNotFound, stack.Do(t, router, http.MethodGet, "/slider/4", "", nil).Code)

	assert.Equal(t, http.StatusNoContent, stack.Do(t, router, http.MethodDelete, "/slider/4", "", authztest.Admin).Code)
}
