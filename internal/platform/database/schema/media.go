// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// MediaTable describes the 'media' table (audio and video recordings).
type MediaTable struct {
	Table        string
	ID           string
	Title        string
	Description  string
	Kind         string
	URL          string
	ThumbnailURL string
	Speaker      string
	RecordedOn   string
	CreatedBy    string
	CreatedAt    string
	UpdatedAt    string
}

// Media is the schema definition for media.
var Media = MediaTable{
	Table:        "media",
	ID:           "id",
	Title:        "title",
	Description:  "description",
	Kind:         "kind",
	URL:          "url",
	ThumbnailURL: "thumbnail_url",
	Speaker:      "speaker",
	RecordedOn:   "recorded_on",
	CreatedBy:    "created_by",
	CreatedAt:    "created_at",
	UpdatedAt:    "updated_at",
}

// Columns returns every column in declaration order.
func (t MediaTable) Columns() []string {
	return []string{t.ID, t.Title, t.Description, t.Kind, t.URL, t.ThumbnailURL, t.Speaker, t.RecordedOn, t.CreatedBy, t.CreatedAt, t.UpdatedAt}
}
