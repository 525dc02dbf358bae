// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/ecclesia/pkg/pagination"
)

/*
TestFromRequest clamps invalid and excessive values.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		query    string
		expected pagination.Params
	}{
		{"", pagination.Params{Page: 1, Limit: 20}},
		{"?page=3&limit=10", pagination.Params{Page: 3, Limit: 10}},
		{"?page=-1&limit=1000", pagination.Params{Page: 1, Limit: 20}},
		{"?page=abc", pagination.Params{Page: 1, Limit: 20}},
	}

	for _, tt := range tests {
		request := httptest.NewRequest("GET", "/api/v1/blogs"+tt.query, nil)
		assert.Equal(t, tt.expected, pagination.FromRequest(request), tt.query)
	}
}

/*
TestParams_Window bounds in-memory paging.
*/
func TestParams_Window(t *testing.T) {
	params := pagination.Params{Page: 2, Limit: 10}
	assert.Equal(t, 10, params.Offset())

	start, end := params.Window(15)
	assert.Equal(t, 10, start)
	assert.Equal(t, 15, end)

	start, end = params.Window(5)
	assert.Equal(t, 5, start)
	assert.Equal(t, 5, end)

	assert.Equal(t, 2, params.Meta(15).TotalPages)
}
