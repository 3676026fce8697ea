package handler

import (
	"net/http"

	"canteen/internal/auth"
	"canteen/internal/logger"
	"canteen/internal/metrics"

	"go.uber.org/zap"
)

type page struct {
	Page   string   `json:"page"`
	Fields []string `json:"fields,omitempty"`
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, page{Page: "home"})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (h *Handler) MetricsSnapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.Metrics.Snapshot())
}

func (h *Handler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, page{Page: "register", Fields: []string{"role", "username", "password"}})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	_, err := h.Users.Register(r.Context(),
		r.PostFormValue("role"),
		r.PostFormValue("username"),
		r.PostFormValue("password"),
	)
	if err != nil {
		writeError(w, r, err)
		return
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, page{Page: "login", Fields: []string{"role", "username", "password"}})
}

// Login sets the session cookie and sends admins to the dashboard and
// students to theirs.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	id, err := h.Users.Login(r.Context(),
		r.PostFormValue("role"),
		r.PostFormValue("username"),
		r.PostFormValue("password"),
	)
	if err != nil {
		h.Metrics.Counter(metrics.LoginFailures).Inc()
		writeError(w, r, err)
		return
	}

	token, err := h.Sessions.Issue(id)
	if err != nil {
		logger.FromCtx(r.Context()).Error("failed to issue session", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, auth.SessionCookie(token, int(h.Sessions.TTL().Seconds())))

	target := "/student_dashboard"
	if id.Role == auth.RoleAdmin {
		target = "/dashboard"
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, auth.ClearedSessionCookie())
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) StudentDashboard(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.IdentityFrom(r.Context())
	writeJSON(w, r, http.StatusOK, struct {
		Page string        `json:"page"`
		User auth.Identity `json:"user"`
	}{Page: "student_dashboard", User: id})
}
