package handler

import (
	"context"
	"net/http"
	"time"

	"canteen/internal/auth"
	"canteen/internal/menu"
	"canteen/internal/metrics"
	"canteen/internal/middleware"
	"canteen/internal/order"
	"canteen/internal/user"
)

type InvoiceRenderer interface {
	Render(ctx context.Context, o order.Order) ([]byte, error)
}

type SessionIssuer interface {
	Issue(id auth.Identity) (string, error)
	TTL() time.Duration
}

// Handler serves the canteen's HTTP surface.
type Handler struct {
	Menu     menu.Service
	Orders   order.Service
	Users    user.Service
	Invoices InvoiceRenderer
	Sessions SessionIssuer
	Metrics  *metrics.Registry
}

// Routes registers every endpoint on a new mux. Role-restricted routes are
// wrapped in middleware.RequireRole.
func (h *Handler) Routes() *http.ServeMux {
	if h.Metrics == nil {
		h.Metrics = metrics.NewRegistry()
	}

	student := func(fn http.HandlerFunc) http.Handler {
		return middleware.RequireRole(auth.RoleStudent, fn)
	}
	admin := func(fn http.HandlerFunc) http.Handler {
		return middleware.RequireRole(auth.RoleAdmin, fn)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.Home)
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /metrics", h.MetricsSnapshot)

	mux.HandleFunc("GET /register", h.RegisterForm)
	mux.HandleFunc("POST /register", h.Register)
	mux.HandleFunc("GET /login", h.LoginForm)
	mux.HandleFunc("POST /login", h.Login)
	mux.HandleFunc("GET /logout", h.Logout)

	mux.Handle("GET /dashboard", admin(h.Dashboard))
	mux.Handle("GET /admin-dashboard", admin(h.Dashboard))
	mux.Handle("GET /admin/add_item", admin(h.AddItemForm))
	mux.Handle("POST /admin/add_item", admin(h.AddItem))
	mux.Handle("POST /admin/update", admin(h.UpdateOrder))

	mux.Handle("GET /student_dashboard", student(h.StudentDashboard))
	mux.Handle("GET /menu", student(h.ListMenu))
	mux.Handle("GET /order", student(h.ListMenu))
	mux.Handle("POST /order", student(h.PlaceOrder))

	mux.HandleFunc("GET /order_successful/{id}", h.GetOrder)
	mux.HandleFunc("GET /order/invoice/{id}", h.DownloadInvoice)

	return mux
}
