package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"canteen/internal/invoice"
	"canteen/internal/order"
)

// DownloadInvoice streams a freshly rendered PDF. The order is looked up
// first so unknown ids never reach the engine.
func (h *Handler) DownloadInvoice(w http.ResponseWriter, r *http.Request) {
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

	pdf, err := h.Invoices.Render(r.Context(), *o)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", invoice.Filename(o.ID)))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
