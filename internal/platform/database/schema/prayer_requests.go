// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// PrayerRequestTable describes the 'prayer_requests' table (submitted prayer requests).
type PrayerRequestTable struct {
	Table       string
	ID          string
	Name        string
	Email       string
	Content     string
	Status      string
	SubmittedBy string
	CreatedAt   string
	UpdatedAt   string
}

// PrayerRequest is the schema definition for prayer_requests.
var PrayerRequest = PrayerRequestTable{
	Table:       "prayer_requests",
	ID:          "id",
	Name:        "name",
	Email:       "email",
	Content:     "content",
	Status:      "status",
	SubmittedBy: "submitted_by",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

// Columns returns every column in declaration order.
func (t PrayerRequestTable) Columns() []string {
	return []string{t.ID, t.Name, t.Email, t.Content, t.Status, t.SubmittedBy, t.CreatedAt, t.UpdatedAt}
}
