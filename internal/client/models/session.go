package models

// Role is the authorization role the backend assigns to a user.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleLead    Role = "LEAD"
	RoleAdmin   Role = "ADMIN"
)

// CanManage reports whether the role may manage members and attendance.
func (r Role) CanManage() bool {
	return r == RoleAdmin || r == RoleLead
}

// Session is the authenticated user's state.
type Session struct {
	UserID    string
	StudentID string
	Token     string
	Role      Role
	Club      string

	// ResetToken is the short-lived token issued by the OTP flow. It is held
	// in memory only.
	ResetToken string
}

// IsAuthenticated reports whether a token is held.
func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}

// DashboardHome is the dashboard section a bare "dashboard" lands on.
func (s Session) DashboardHome() string {
	if s.Role.CanManage() {
		return "members"
	}
	return "blogs"
}
