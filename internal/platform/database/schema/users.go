// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// UserTable describes the 'users' table (the registered accounts).
type UserTable struct {
	Table        string
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         string
	CreatedAt    string
	UpdatedAt    string
}

// User is the schema definition for users.
var User = UserTable{
	Table:        "users",
	ID:           "id",
	Email:        "email",
	Name:         "name",
	PasswordHash: "password_hash",
	Role:         "role",
	CreatedAt:    "created_at",
	UpdatedAt:    "updated_at",
}

// Columns returns every column in declaration order.
func (t UserTable) Columns() []string {
	return []string{t.ID, t.Email, t.Name, t.PasswordHash, t.Role, t.CreatedAt, t.UpdatedAt}
}
