package models

import "fmt"

// GroupRole is a member's role within a group.
type GroupRole string

const (
	RoleAdmin  GroupRole = "ADMIN"
	RoleMember GroupRole = "MEMBER"
)

// ParseGroupRole converts a wire tag into a GroupRole. Empty means RoleMember.
func ParseGroupRole(s string) (GroupRole, error) {
	switch GroupRole(s) {
	case "":
		return RoleMember, nil
	case RoleAdmin, RoleMember:
		return GroupRole(s), nil
	default:
		return "", fmt.Errorf("unknown group role %q", s)
	}
}

// Group is a set of users who share expenses.
type Group struct {
	// ID is assigned by the store on creation.
	ID int64

	// Name is the display name of the group (e.g., "Roommates", "Lisbon trip").
	Name string

	Description string

	// CreatedBy is the user who created the group; they join as RoleAdmin.
	CreatedBy int64

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// GroupMember is one user's membership in a group.
type GroupMember struct {
	GroupID  int64
	UserID   int64
	Role     GroupRole
	JoinedAt int64
}
