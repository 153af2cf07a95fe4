package user

type Role string

const (
	RoleUser   Role = "user"
	RoleDealer Role = "dealer"
	RoleAdmin  Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleDealer, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role may act on requests it does not own.
func (r Role) IsStaff() bool {
	return r == RoleDealer || r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
