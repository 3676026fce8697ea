package middleware

import (
	"net/http"

	"canteen/internal/auth"
	"canteen/internal/logger"
)

const LoginPath = "/login"

type SessionParser interface {
	Parse(token string) (*auth.Session, error)
}

// SessionMiddleware decodes the session token, if any, into the request
// context. Invalid tokens are treated as anonymous requests.
func SessionMiddleware(sessions SessionParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := auth.ExtractSessionToken(r)
			if tokenStr == "" {
				next.ServeHTTP(w, r)
				return
			}

			s, err := sessions.Parse(tokenStr)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := auth.WithSession(r.Context(), s)
			ctx = logger.WithUsername(ctx, s.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole runs next only for sessions holding role; everyone else is
// redirected to the login page.
func RequireRole(role auth.Role, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := auth.Authorize(auth.SessionFrom(r.Context()), role)
		if err != nil {
			http.Redirect(w, r, LoginPath, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), id)))
	})
}
