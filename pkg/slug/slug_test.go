// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/ecclesia/pkg/slug"
)

/*
TestFrom normalizes titles into ASCII slugs.
*/
func TestFrom(t *testing.T) {
	assert.Equal(t, "easter-sunday-2026", slug.From("Easter Sunday 2026"))
	assert.Equal(t, "cafe-de-priere", slug.From("Café de Prière!"))
	assert.Equal(t, "", slug.From("!!!"))
}

/*
TestWithSuffix leaves the first attempt untouched.
*/
func TestWithSuffix(t *testing.T) {
	assert.Equal(t, "easter", slug.WithSuffix("easter", 1))
	assert.Equal(t, "easter-3", slug.WithSuffix("easter", 3))
	assert.Equal(t, "post", slug.Fallback("", "post"))
}
