package domain

import "fmt"

// Role is the closed set of viewer roles. Fan-out rules switch over it
// exhaustively; there is no catch-all role.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleGuide   Role = "guide"
	RoleTourist Role = "tourist"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleGuide, RoleTourist:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleGuide, RoleTourist:
		return true
	}
	return false
}
