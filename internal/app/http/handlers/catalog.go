package handlers

import (
	"net/http"
	"strconv"

	"iq-home/quote_backend/internal/app/http/middleware"
)

func (h *Handlers) ListTemplates(w http.ResponseWriter, r *http.Request) {
	out, err := h.Store.ListTemplates(r.Context(), middleware.TenantID(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	out, err := h.Store.ListCategories(r.Context(), middleware.TenantID(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) ListProducts(w http.ResponseWriter, r *http.Request) {
	var categoryID *int64
	if v := r.URL.Query().Get("category_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			badRequest(w, "invalid category_id")
			return
		}
		categoryID = &id
	}
	out, err := h.Store.ListProducts(r.Context(), middleware.TenantID(r.Context()), categoryID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
