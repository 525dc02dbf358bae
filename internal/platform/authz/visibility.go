// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package authz

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/taibuivan/ecclesia/internal/platform/sec"
)

// # Resources

// Resource names a row set governed by the visibility [Policy].
type Resource string

const (
	ResourceBlogs          Resource = "blogs"
	ResourceProphecies     Resource = "prophecies"
	ResourceSlider         Resource = "slider_images"
	ResourceNotes          Resource = "notes"
	ResourceEvents         Resource = "events"
	ResourceMedia          Resource = "media"
	ResourceGallery        Resource = "gallery"
	ResourceTeam           Resource = "team"
	ResourcePrayerRequests Resource = "prayer_requests"
	ResourceSiteContent    Resource = "site_content"
)

// # Predicates

// Predicate is one conjunct of a [Filter]: either column = value, or deny-all.
type Predicate struct {
	Column string
	Value  any
	deny   bool
}

// Eq builds a column equality predicate.
func Eq(column string, value any) Predicate {
	return Predicate{Column: column, Value: value}
}

// Deny builds a predicate no row satisfies.
func Deny() Predicate {
	return Predicate{deny: true}
}

// Filter is the conjunction of predicates a query must apply. The zero value
// matches every row.
type Filter struct {
	predicates []Predicate
}

// NewFilter builds a [Filter] from predicates.
func NewFilter(predicates ...Predicate) Filter {
	return Filter{predicates: predicates}
}

// And returns a copy of filter with extra conjuncts.
func (filter Filter) And(predicates ...Predicate) Filter {
	combined := make([]Predicate, 0, len(filter.predicates)+len(predicates))
	combined = append(combined, filter.predicates...)
	combined = append(combined, predicates...)
	return Filter{predicates: combined}
}

// Predicates returns the conjuncts in order.
func (filter Filter) Predicates() []Predicate {
	return append([]Predicate(nil), filter.predicates...)
}

// Denied reports whether the filter matches no rows.
func (filter Filter) Denied() bool {
	for _, predicate := range filter.predicates {
		if predicate.deny {
			return true
		}
	}
	return false
}

// Unrestricted reports whether the filter matches every row.
func (filter Filter) Unrestricted() bool {
	return len(filter.predicates) == 0
}

/*
Where renders the filter as a SQL boolean expression with positional
parameters numbered from argStart.

	clause, args := filter.Where(2)
	// "published = $2", []any{true}

A deny filter renders FALSE and an empty one renders TRUE, so the result can
always be joined with AND.
*/
func (filter Filter) Where(argStart int) (string, []any) {
	if filter.Denied() {
		return "FALSE", nil
	}
	if filter.Unrestricted() {
		return "TRUE", nil
	}

	clauses := make([]string, 0, len(filter.predicates))
	args := make([]any, 0, len(filter.predicates))
	for index, predicate := range filter.predicates {
		clauses = append(clauses, fmt.Sprintf("%s = $%d", predicate.Column, argStart+index))
		args = append(args, predicate.Value)
	}
	return strings.Join(clauses, " AND "), args
}

// Matches evaluates the filter against a row keyed by column name.
// A column missing from row fails its predicate.
func (filter Filter) Matches(row map[string]any) bool {
	for _, predicate := range filter.predicates {
		if predicate.deny {
			return false
		}
		value, ok := row[predicate.Column]
		if !ok || normalize(value) != normalize(predicate.Value) {
			return false
		}
	}
	return true
}

func normalize(value any) any {
	switch typed := value.(type) {
	case int:
		return int64(typed)
	case int32:
		return int64(typed)
	case fmt.Stringer:
		return typed.String()
	default:
		return value
	}
}

// # Policy Table

// Query carries the caller-supplied parameters the policy may honour.
type Query struct {
	// Status narrows a staff listing. Ignored for other callers.
	Status string
}

// QueryFromRequest reads the policy parameters from the URL query.
func QueryFromRequest(request *http.Request) Query {
	return Query{Status: strings.TrimSpace(request.URL.Query().Get("status"))}
}

// Rule describes how one resource is narrowed for non-staff callers.
type Rule struct {
	// Restricted applies to anonymous callers and members.
	Restricted []Predicate
	// OwnerColumn limits members to their own rows and hides everything from anonymous.
	OwnerColumn string
	// StaffOnly hides every row from non-staff callers.
	StaffOnly bool
	// StatusColumn and StatusValues map an optional staff ?status= value to a predicate.
	StatusColumn string
	StatusValues map[string]any
}

// Policy maps (resource, caller, query) to a [Filter].
type Policy struct {
	rules map[Resource]Rule
}

// NewPolicy builds a policy from an explicit table. Resources absent from
// rules match no rows.
func NewPolicy(rules map[Resource]Rule) *Policy {
	return &Policy{rules: rules}
}

// DefaultPolicy returns the content visibility table of the site.
func DefaultPolicy() *Policy {
	return NewPolicy(map[Resource]Rule{
		ResourceBlogs: {
			Restricted:   []Predicate{Eq("published", true)},
			StatusColumn: "published",
			StatusValues: map[string]any{"published": true, "draft": false},
		},
		ResourceProphecies: {
			Restricted:   []Predicate{Eq("status", "verified")},
			StatusColumn: "status",
			StatusValues: enumValues("pending", "verified", "rejected"),
		},
		ResourceSlider: {
			Restricted:   []Predicate{Eq("status", "active")},
			StatusColumn: "status",
			StatusValues: enumValues("active", "inactive"),
		},
		ResourceNotes: {
			OwnerColumn: "owner_id",
		},
		ResourcePrayerRequests: {
			StaffOnly:    true,
			StatusColumn: "status",
			StatusValues: enumValues("pending", "praying", "answered"),
		},
		ResourceEvents:      {},
		ResourceMedia:       {},
		ResourceGallery:     {},
		ResourceTeam:        {},
		ResourceSiteContent: {},
	})
}

// For returns the filter a list or fetch of resource must apply for caller.
// A nil caller is anonymous.
func (policy *Policy) For(resource Resource, caller *sec.Identity, query Query) Filter {
	rule, ok := policy.rules[resource]
	if !ok {
		return NewFilter(Deny())
	}

	if caller == nil {
		return rule.anonymous()
	}

	switch caller.Role {
	case sec.RoleMasterAdmin, sec.RolePastor:
		return rule.staff(query)
	case sec.RoleMember:
		return rule.member(caller.ID)
	default:
		return NewFilter(Deny())
	}
}

func (rule Rule) staff(query Query) Filter {
	if query.Status == "" || rule.StatusColumn == "" {
		return Filter{}
	}
	value, ok := rule.StatusValues[strings.ToLower(query.Status)]
	if !ok {
		return Filter{}
	}
	return NewFilter(Eq(rule.StatusColumn, value))
}

func (rule Rule) member(callerID int64) Filter {
	if rule.StaffOnly {
		return NewFilter(Deny())
	}
	filter := NewFilter(rule.Restricted...)
	if rule.OwnerColumn != "" {
		filter = filter.And(Eq(rule.OwnerColumn, callerID))
	}
	return filter
}

func (rule Rule) anonymous() Filter {
	if rule.StaffOnly || rule.OwnerColumn != "" {
		return NewFilter(Deny())
	}
	return NewFilter(rule.Restricted...)
}

func enumValues(values ...string) map[string]any {
	mapped := make(map[string]any, len(values))
	for _, value := range values {
		mapped[value] = value
	}
	return mapped
}
