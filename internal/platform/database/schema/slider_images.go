// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// SliderImageTable describes the 'slider_images' table (home page carousel slides).
type SliderImageTable struct {
	Table     string
	ID        string
	Title     string
	Caption   string
	ImageURL  string
	LinkURL   string
	Position  string
	Status    string
	CreatedBy string
	CreatedAt string
	UpdatedAt string
}

// SliderImage is the schema definition for slider_images.
var SliderImage = SliderImageTable{
	Table:     "slider_images",
	ID:        "id",
	Title:     "title",
	Caption:   "caption",
	ImageURL:  "image_url",
	LinkURL:   "link_url",
	Position:  "position",
	Status:    "status",
	CreatedBy: "created_by",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

// Columns returns every column in declaration order.
func (t SliderImageTable) Columns() []string {
	return []string{t.ID, t.Title, t.Caption, t.ImageURL, t.LinkURL, t.Position, t.Status, t.CreatedBy, t.CreatedAt, t.UpdatedAt}
}
