package authz

import "github.com/pkg/errors"

// Role is the closed set of roles a user account can hold. A role is fixed
// at registration; no endpoint mutates it afterwards.
type Role string

const (
	RoleAdmin             Role = "admin"
	RoleStudent           Role = "student"
	RoleLecturer          Role = "lecturer"
	RolePrincipalLecturer Role = "principal_lecturer"
	RoleProgramLeader     Role = "program_leader"
)

var (
	ErrUnknownRole = errors.New("Invalid role")

	AllRoles = []Role{RoleAdmin, RoleStudent, RoleLecturer, RolePrincipalLecturer, RoleProgramLeader}

	// RegistrableRoles may be picked at self-service registration.
	// Admin accounts are seeded out of band.
	RegistrableRoles = []Role{RoleStudent, RoleLecturer, RolePrincipalLecturer, RoleProgramLeader}
)

// ParseRole maps a raw string to a Role; anything outside the closed set is
// rejected.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	for _, r := range AllRoles {
		if role == r {
			return role, nil
		}
	}
	return "", ErrUnknownRole
}

func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// Registrable reports whether the role may be chosen at registration.
func (r Role) Registrable() bool {
	for _, reg := range RegistrableRoles {
		if r == reg {
			return true
		}
	}
	return false
}

// Actor is the authenticated caller as carried by the session token.
type Actor struct {
	ID   int
	Role Role
}
