package shared

import "github.com/google/uuid"

// Role is the account type of a user. Immutable after registration.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleBusiness Role = "business"
)

func AllRoles() []Role {
	return []Role{RoleCustomer, RoleBusiness}
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleBusiness:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// Principal is the authenticated caller of an operation. It is resolved
// once by the auth middleware and passed explicitly into every service
// method; services never reach into ambient request state for it.
type Principal struct {
	UserID   uuid.UUID
	Username string
	Role     Role
	Staff    bool
}

func (p Principal) IsCustomer() bool {
	return p.Role == RoleCustomer
}

func (p Principal) IsBusiness() bool {
	return p.Role == RoleBusiness
}

// IsStaff reports whether the caller holds the administrative role.
func (p Principal) IsStaff() bool {
	return p.Staff
}
