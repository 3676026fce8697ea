package auth

import "time"

type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// NormalizeRole maps a submitted role to a known one: "student" stays a
// student and everything else is treated as admin.
func NormalizeRole(raw string) Role {
	if Role(raw) == RoleStudent {
		return RoleStudent
	}
	return RoleAdmin
}

// Identity is what the core sees of an authenticated caller.
type Identity struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// Session is an active login decoded from the session token.
type Session struct {
	Identity
	ExpiresAt time.Time
}
