package user

import "canteen/internal/auth"

// Account is a registered login. PasswordHash is a bcrypt digest.
type Account struct {
	Username     string
	PasswordHash string
	Role         auth.Role
}
