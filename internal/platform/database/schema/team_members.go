// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// TeamMemberTable describes the 'team_members' table (leadership team profiles).
type TeamMemberTable struct {
	Table     string
	ID        string
	Name      string
	Position  string
	Bio       string
	PhotoURL  string
	SortOrder string
	CreatedBy string
	CreatedAt string
	UpdatedAt string
}

// TeamMember is the schema definition for team_members.
var TeamMember = TeamMemberTable{
	Table:     "team_members",
	ID:        "id",
	Name:      "name",
	Position:  "position",
	Bio:       "bio",
	PhotoURL:  "photo_url",
	SortOrder: "sort_order",
	CreatedBy: "created_by",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

// Columns returns every column in declaration order.
func (t TeamMemberTable) Columns() []string {
	return []string{t.ID, t.Name, t.Position, t.Bio, t.PhotoURL, t.SortOrder, t.CreatedBy, t.CreatedAt, t.UpdatedAt}
}
