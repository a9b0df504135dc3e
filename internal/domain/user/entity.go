package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Can approve/reject leave and manage users
	RoleHR       Role = "hr"       // HR staff - regular access, reporting
	RoleEmployee Role = "employee" // Regular employee
)

// ValidRoles lists every role accepted at registration.
var ValidRoles = []Role{RoleAdmin, RoleHR, RoleEmployee}

func IsValidRole(r Role) bool {
	for _, role := range ValidRoles {
		if role == r {
			return true
		}
	}
	return false
}

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// IsAdmin checks if user can approve requests and manage other users
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
