package enums

import "fmt"

// Role identifies the two portal identity classes.
type Role string

const (
	RoleAdmin   Role = "admin"
	RolePartner Role = "partner"
)

// IsValid reports whether the value is a known Role.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RolePartner
}

// ParseRole converts raw input into a Role.
func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RolePartner:
		return RolePartner, nil
	}
	return "", fmt.Errorf("invalid role %q", value)
}
