package auth

import (
	"net/http"
	"strings"
)

const CookieName = "session"

// ExtractSessionToken reads the session cookie, falling back to a bearer
// Authorization header.
func ExtractSessionToken(r *http.Request) string {
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}

func SessionCookie(token string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearedSessionCookie expires the session cookie in the browser.
func ClearedSessionCookie() *http.Cookie {
	return SessionCookie("", -1)
}
