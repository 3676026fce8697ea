package auth

import "time"

// Authorize admits s when it is present, unexpired and carries exactly the
// required role. A zero ExpiresAt never expires.
func Authorize(s *Session, required Role) (Identity, error) {
	if s == nil || s.Username == "" || s.Role != required {
		return Identity{}, ErrUnauthorized
	}
	if !s.ExpiresAt.IsZero() && !time.Now().Before(s.ExpiresAt) {
		return Identity{}, ErrUnauthorized
	}
	return s.Identity, nil
}
