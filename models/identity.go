package models

// Identity is the authenticated user attached to a single request.
type Identity struct {
	UserID   uint
	Username string
	Role     Role
}

func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}

func (i *Identity) IsStudent() bool {
	return i != nil && i.Role == RoleStudent
}

// DashboardPath is where the identity lands after login.
func (i *Identity) DashboardPath() string {
	if i == nil {
		return "/login"
	}
	switch i.Role {
	case RoleAdmin:
		return "/admin/dashboard"
	case RoleStudent:
		return "/student/dashboard"
	default:
		return "/login"
	}
}
