package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role is resolved once at authentication time and passed down; handlers and
// usecases never compare raw role strings.
type Role string

const (
	RoleMember Role = "member"
	RoleDriver Role = "driver"
	RoleAdmin  Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleMember, RoleDriver, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
