// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package event_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ecclesia/internal/core/event"
	"github.com/taibuivan/ecclesia/internal/platform/authz"
	"github.com/taibuivan/ecclesia/internal/platform/authz/authztest"
	"github.com/taibuivan/ecclesia/pkg/pagination"
	"github.com/taibuivan/ecclesia/pkg/pointer"
)

type fakeRepository struct {
	table *authztest.Table[*event.Event]
}

func (repository *fakeRepository) List(_ context.Context, filter event.ListFilter, params pagination.Params) ([]*event.Event, int, error) {
	var upcoming func(*event.Event) bool
	if filter.UpcomingAfter != nil {
		upcoming = func(e *event.Event) bool {
			end := e.StartsAt
			if e.EndsAt != nil {
				end = *e.EndsAt
			}
			return !end.Before(*filter.UpcomingAfter)
		}
	}
	items, total := repository.table.Page(filter.Visibility, params, nil, upcoming)
	return items, total, nil
}

func (repository *fakeRepository) FindByID(_ context.Context, id int64, visibility authz.Filter) (*event.Event, error) {
	return repository.table.Get(id, visibility)
}

func (repository *fakeRepository) Create(_ context.Context, e *event.Event) error {
	repository.table.Insert(func(id int64) *event.Event {
		e.ID = id
		return e
	})
	return nil
}

func (repository *fakeRepository) Update(_ context.Context, e *event.Event) error {
	repository.table.Put(e.ID, e)
	return nil
}

func (repository *fakeRepository) Delete(_ context.Context, id int64) error {
	return repository.table.Delete(id, authz.Filter{})
}

func setup(t *testing.T) (*authztest.Stack, http.Handler) {
	t.Helper()
	stack := authztest.New(t)
	repository := &fakeRepository{table: authztest.NewTable(func(*event.Event) map[string]any { return nil })}

	now := time.Now().UTC()
	repository.table.Put(1, &event.Event{ID: 1, Title: "Past", StartsAt: now.Add(-48 * time.Hour)})
	repository.table.Put(2, &event.Event{ID: 2, Title: "Ongoing", StartsAt: now.Add(-time.Hour), EndsAt: pointer.To(now.Add(time.Hour))})
	repository.table.Put(3, &event.Event{ID: 3, Title: "Future", StartsAt: now.Add(72 * time.Hour)})

	service := event.NewService(repository, stack.Policy, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return stack, stack.Router("/events", event.NewHandler(service, stack.Gate).Routes())
}

func titles(events []event.Event) []string {
	result := make([]string, 0, len(events))
	for _, e := range events {
		result = append(result, e.Title)
	}
	return result
}

/*
TestEvents_PublicList shows every event to anonymous callers and filters upcoming ones.
*/
func TestEvents_PublicList(t *testing.T) {
	stack, router := setup(t)

	all := stack.Do(t, router, http.MethodGet, "/events", "", nil)
	require.Equal(t, http.StatusOK, all.Code)
	assert.Len(t, authztest.Data[[]event.Event](t, all), 3)

	upcoming := stack.Do(t, router, http.MethodGet, "/events?upcoming=true", "", nil)
	assert.Equal(t, []string{"Ongoing", "Future"}, titles(authztest.Data[[]event.Event](t, upcoming)))

	assert.Equal(t, http.StatusOK, stack.Do(t, router, http.MethodGet, "/events/1", "", authztest.Member).Code)
}

/*
TestEvents_Writes requires staff and checks the time range.
*/
func TestEvents_Writes(t *testing.T) {
	stack, router := setup(t)

	body := `{"title":"Revival","starts_at":"2026-11-01T18:00:00Z","ends_at":"2026-11-01T21:00:00Z"}`
	assert.Equal(t, http.StatusForbidden, stack.Do(t, router, http.MethodPost, "/events", body, authztest.Member).Code)

	created := stack.Do(t, router, http.MethodPost, "/events", body, authztest.Pastor)
	require.Equal(t, http.StatusCreated, created.Code)
	assert.Equal(t, "Revival", authztest.Data[event.Event](t, created).Title)

	backwards := `{"title":"Oops","starts_at":"2026-11-01T18:00:00Z","ends_at":"2026-11-01T17:00:00Z"}`
	assert.Equal(t, http.StatusBadRequest, stack.Do(t, router, http.MethodPost, "/events", backwards, authztest.Pastor).Code)
	assert.Equal(t, http.StatusBadRequest, stack.Do(t, router, http.MethodPost, "/events", `{"title":"No start"}`, authztest.Pastor).Code)

	assert.Equal(t, http.StatusBadRequest, stack.Do(t, router, http.MethodPut, "/events/4", `{"ends_at":"2026-10-01T00:00:00Z"}`, authztest.Pastor).Code)

	// A rejected range leaves the stored event as it was.
	unchanged := authztest.Data[event.Event](t, stack.Do(t, router, http.MethodGet, "/events/4", "", nil))
	require.NotNil(t, unchanged.EndsAt)
	assert.True(t, unchanged.EndsAt.Equal(time.Date(2026, 11, 1, 21, 0, 0, 0, time.UTC)))

	assert.Equal(t, http.StatusOK, stack.Do(t, router, http.MethodPut, "/events/4", `{"location":"Main hall"}`, authztest.Admin).Code)
	assert.Equal(t, http.StatusNoContent, stack.Do(t, router, http.MethodDelete, "/events/4", "", authztest.Admin).Code)
}
