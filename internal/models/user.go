package models

// Role identifies the permission level of a user account.
type Role string

// User roles, ordered by privilege.
const (
	RoleUser        Role = "utilisateur"
	RoleProjectLead Role = "chef_projet"
	RoleAdmin       Role = "admin"
)

// Level returns a comparable privilege rank for role gating.
func (r Role) Level() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleProjectLead:
		return 2
	default:
		return 1
	}
}

// User represents a user account in the system
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Never serialize password hash
	Role         Role   `json:"role"`
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PasswordResetRequest represents a password reset attempt
type PasswordResetRequest struct {
	Username    string `json:"username"`
	NewPassword string `json:"new_password"`
}
