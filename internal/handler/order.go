package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"canteen/internal/auth"
	"canteen/internal/logger"
	"canteen/internal/metrics"
	"canteen/internal/order"

	"go.uber.org/zap"
)

func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.IdentityFrom(r.Context())

	itemName := r.PostFormValue("item")
	rawQty := strings.TrimSpace(r.PostFormValue("quantity"))
	if itemName == "" || rawQty == "" {
		http.Error(w, "Missing item or quantity", http.StatusBadRequest)
		return
	}

	qty, err := strconv.Atoi(rawQty)
	if err != nil {
		writeError(w, r, order.ErrInvalidQuantity)
		return
	}

	o, err := h.Orders.PlaceOrder(r.Context(), id.Username, itemName, qty)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.Metrics.Counter(metrics.OrdersPlaced).Inc()
	writeJSON(w, r, http.StatusOK, struct {
		Page  string      `json:"page"`
		Order order.Order `json:"order"`
	}{Page: "order_success", Order: *o})
}

// UpdateOrder overwrites an order's status. Unknown or malformed ids are
// ignored and the admin is sent back to the dashboard either way.
func (h *Handler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("id")))
	if err != nil {
		orderID = -1
	}
	status := r.PostFormValue("status")

	err = h.Orders.UpdateStatus(r.Context(), orderID, status)
	switch {
	case err == nil:
		h.Metrics.Counter(metrics.OrderStatusUpdates).Inc()
	case errors.Is(err, order.ErrOrderNotFound):
		logger.FromCtx(r.Context()).Info("status update ignored for unknown order", zap.Int("order_id", orderID))
	default:
		writeError(w, r, err)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, r, order.ErrOrderNotFound)
		return
	}

	o, err := h.Orders.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, struct {
		Page  string      `json:"page"`
		Order order.Order `json:"order"`
	}{Page: "order_successful", Order: *o})
}

type dashboard struct {
	Stats  order.Stats   `json:"stats"`
	Orders []order.Order `json:"orders"`
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.Orders.ComputeStats(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}
	orders, err := h.Orders.ListOrders(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if orders == nil {
		orders = []order.Order{}
	}

	writeJSON(w, r, http.StatusOK, dashboard{Stats: stats, Orders: orders})
}
