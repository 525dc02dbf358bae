// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package authztest

import (
	"reflect"
	"sort"
	"sync"

	"github.com/taibuivan/ecclesia/internal/platform/authz"
	"github.com/taibuivan/ecclesia/internal/platform/dberr"
	"github.com/taibuivan/ecclesia/pkg/pagination"
)

// Table is an in-memory row set that applies [authz.Filter] the way the
// PostgreSQL stores do, for fake repositories.
//
// Rows are copied on the way in and out, so a caller mutating a returned
// pointer never changes what is stored, matching a fresh scan per query.
type Table[T any] struct {
	mu     sync.Mutex
	rows   map[int64]T
	nextID int64
	row    func(T) map[string]any
}

// NewTable builds a [Table]. row exposes the filterable columns of an item.
func NewTable[T any](row func(T) map[string]any) *Table[T] {
	return &Table[T]{rows: map[int64]T{}, row: row}
}

// Insert assigns the next id and stores the item built for it.
func (table *Table[T]) Insert(build func(id int64) T) T {
	table.mu.Lock()
	defer table.mu.Unlock()

	table.nextID++
	item := build(table.nextID)
	table.rows[table.nextID] = clone(item)
	return item
}

// Put stores item under id, replacing any previous row.
func (table *Table[T]) Put(id int64, item T) {
	table.mu.Lock()
	defer table.mu.Unlock()

	table.rows[id] = clone(item)
	if id > table.nextID {
		table.nextID = id
	}
}

// Get returns row id when filter admits it, else [dberr.ErrNotFound].
func (table *Table[T]) Get(id int64, filter authz.Filter) (T, error) {
	table.mu.Lock()
	defer table.mu.Unlock()

	item, ok := table.rows[id]
	if !ok || !filter.Matches(table.row(item)) {
		var zero T
		return zero, dberr.ErrNotFound
	}
	return clone(item), nil
}

// Find returns the first row, by id, satisfying filter and match.
func (table *Table[T]) Find(filter authz.Filter, match func(T) bool) (T, error) {
	items := table.Select(filter, nil, match)
	if len(items) == 0 {
		var zero T
		return zero, dberr.ErrNotFound
	}
	return items[0], nil
}

// Select returns every row satisfying filter and all matchers, ordered by less
// (ascending id when nil).
func (table *Table[T]) Select(filter authz.Filter, less func(a, b T) bool, matchers ...func(T) bool) []T {
	table.mu.Lock()
	defer table.mu.Unlock()

	ids := make([]int64, 0, len(table.rows))
	for id := range table.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	selected := make([]T, 0, len(ids))
rows:
	for _, id := range ids {
		item := table.rows[id]
		if !filter.Matches(table.row(item)) {
			continue
		}
		for _, match := range matchers {
			if match != nil && !match(item) {
				continue rows
			}
		}
		selected = append(selected, clone(item))
	}

	if less != nil {
		sort.SliceStable(selected, func(i, j int) bool { return less(selected[i], selected[j]) })
	}
	return selected
}

// Page is [Table.Select] cut to one page, with the unpaged total.
func (table *Table[T]) Page(filter authz.Filter, params pagination.Params, less func(a, b T) bool, matchers ...func(T) bool) ([]T, int) {
	selected := table.Select(filter, less, matchers...)
	start, end := params.Window(len(selected))
	return selected[start:end], len(selected)
}

// Delete removes row id when filter admits it, else [dberr.ErrNotFound].
func (table *Table[T]) Delete(id int64, filter authz.Filter) error {
	table.mu.Lock()
	defer table.mu.Unlock()

	item, ok := table.rows[id]
	if !ok || !filter.Matches(table.row(item)) {
		return dberr.ErrNotFound
	}
	delete(table.rows, id)
	return nil
}

// Len returns the number of stored rows.
func (table *Table[T]) Len() int {
	table.mu.Lock()
	defer table.mu.Unlock()
	return len(table.rows)
}

// clone returns a shallow copy of item when it is a non-nil pointer.
func clone[T any](item T) T {
	value := reflect.ValueOf(&item).Elem()
	if value.Kind() != reflect.Pointer || value.IsNil() {
		return item
	}

	copied := reflect.New(value.Elem().Type())
	copied.Elem().Set(value.Elem())
	return copied.Interface().(T)
}
