package user

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"   // Full access, manages users
	RoleScanner Role = "scanner" // Runs the scan station, manages employees
	RoleViewer  Role = "viewer"  // Read-only access to reports
)

type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if the user has full administrative access
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanOperateScanner checks if the user may record entries/exits
func (u *User) CanOperateScanner() bool {
	return u.Role == RoleAdmin || u.Role == RoleScanner
}
