// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// GalleryImageTable describes the 'gallery_images' table (photo gallery entries).
type GalleryImageTable struct {
	Table     string
	ID        string
	Album     string
	Title     string
	Caption   string
	ImageURL  string
	CreatedBy string
	CreatedAt string
	UpdatedAt string
}

// GalleryImage is the schema definition for gallery_images.
var GalleryImage = GalleryImageTable{
	Table:     "gallery_images",
	ID:        "id",
	Album:     "album",
	Title:     "title",
	Caption:   "caption",
	ImageURL:  "image_url",
	CreatedBy: "created_by",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

// Columns returns every column in declaration order.
func (t GalleryImageTable) Columns() []string {
	return []string{t.ID, t.Album, t.Title, t.Caption, t.ImageURL, t.CreatedBy, t.CreatedAt, t.UpdatedAt}
}
