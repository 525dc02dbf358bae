// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// SiteContentTable describes the 'site_content' table (keyed editable page blocks).
type SiteContentTable struct {
	Table     string
	Key       string
	Title     string
	Body      string
	UpdatedBy string
	UpdatedAt string
}

// SiteContent is the schema definition for site_content.
var SiteContent = SiteContentTable{
	Table:     "site_content",
	Key:       "key",
	Title:     "title",
	Body:      "body",
	UpdatedBy: "updated_by",
	UpdatedAt: "updated_at",
}

// Columns returns every column in declaration order.
func (t SiteContentTable) Columns() []string {
	return []string{t.Key, t.Title, t.Body, t.UpdatedBy, t.UpdatedAt}
}
