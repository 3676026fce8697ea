package handler

import (
	"net/http"

	"canteen/internal/menu"
	"canteen/internal/metrics"
)

func (h *Handler) ListMenu(w http.ResponseWriter, r *http.Request) {
	items := h.Menu.ListItems(r.Context())
	if items == nil {
		items = []menu.Item{}
	}
	writeJSON(w, r, http.StatusOK, struct {
		Items []menu.Item `json:"items"`
	}{Items: items})
}

func (h *Handler) AddItemForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, page{Page: "add_item", Fields: []string{"item", "price"}})
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	if _, err := h.Menu.AddItem(r.Context(), r.PostFormValue("item"), r.PostFormValue("price")); err != nil {
		writeError(w, r, err)
		return
	}
	h.Metrics.Counter(metrics.MenuItemsAdded).Inc()
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}
