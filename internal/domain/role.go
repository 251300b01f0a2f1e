package domain

import "fmt"

// Role is the role of the actor requesting a change
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleBarber   Role = "barber"
	RoleCustomer Role = "customer"
)

// ParseRole converts a raw string to a Role
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
	return role, nil
}

// IsValid returns true if the role belongs to the closed set
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleBarber, RoleCustomer:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// Actor is the authenticated caller of an operation
type Actor struct {
	ID   string
	Role Role
}
