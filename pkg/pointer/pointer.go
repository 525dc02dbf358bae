// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pointer holds generic helpers for optional values.

Update payloads use pointer fields so an omitted field is distinguishable from
a zero value; [Patch] applies only the fields that were sent.
*/
package pointer

// To returns a pointer to v.
func To[T any](v T) *T {
	return &v
}

// Val dereferences p, returning the zero value when p is nil.
func Val[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Patch overwrites *dst with *src when src is non-nil.
func Patch[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// NilIfZero returns nil for the zero value of T, else a pointer to v.
// Optional text columns store NULL instead of "".
func NilIfZero[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}
