// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"fmt"

	"github.com/taibuivan/ecclesia/pkg/slice"
)

// # User Roles

// Role is the closed set of authorization levels an account can hold.
//
// Values outside the constants below are rejected by [ParseRole], so a token
// or store row carrying an unknown role never reaches a gate or a policy table.
type Role string

const (
	// Full administrative access, including role assignment.
	RoleMasterAdmin Role = "master_admin"

	// Staff access to every content resource.
	RolePastor Role = "pastor"

	// Default role for registered congregants.
	RoleMember Role = "member"
)

// Roles lists every valid role. Tables keyed by role are tested against it.
func Roles() []Role {
	return []Role{RoleMasterAdmin, RolePastor, RoleMember}
}

// RoleNames lists every valid role as a string, for client messages.
func RoleNames() []string {
	return slice.Map(Roles(), Role.String)
}

// Staff is the role set allowed to manage content.
func Staff() []Role {
	return []Role{RoleMasterAdmin, RolePastor}
}

// ParseRole converts raw input into a [Role].
func ParseRole(raw string) (Role, error) {
	role := Role(raw)
	if !role.Valid() {
		return "", fmt.Errorf("sec: unknown role %q", raw)
	}
	return role, nil
}

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	switch r {
	case RoleMasterAdmin, RolePastor, RoleMember:
		return true
	default:
		return false
	}
}

// IsStaff reports whether r may read unfiltered content.
func (r Role) IsStaff() bool {
	switch r {
	case RoleMasterAdmin, RolePastor:
		return true
	case RoleMember:
		return false
	default:
		return false
	}
}

// In reports whether r is a member of allowed.
func (r Role) In(allowed ...Role) bool {
	for _, candidate := range allowed {
		if r == candidate {
			return true
		}
	}
	return false
}

func (r Role) String() string { return string(r) }
