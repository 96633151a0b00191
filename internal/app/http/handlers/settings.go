package handlers

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"iq-home/quote_backend/internal/app/http/middleware"
	"iq-home/quote_backend/internal/domain/placeholder"
	"iq-home/quote_backend/internal/domain/quote"
)

type placeholderSettings struct {
	Vocabulary     placeholder.Vocabulary `json:"vocabulary"`
	CurrencySymbol string                 `json:"currency_symbol"`
}

type CreateTenantRequest struct {
	Name           string `json:"name"`
	CurrencySymbol string `json:"currency_symbol"`
}

type tenantResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	placeholderSettings
}

// CreateTenant registers a tenant with the default vocabulary. It runs outside
// the tenant scope; only the internal token is required.
func (h *Handlers) CreateTenant(w http.ResponseWriter, r *http.Request) {
	var req CreateTenantRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "bad request")
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		badRequest(w, "name is required")
		return
	}
	tenant := quote.NewTenant(name)
	if c := strings.TrimSpace(req.CurrencySymbol); c != "" {
		tenant.CurrencySymbol = c
	}

	saved, err := h.Store.CreateTenant(r.Context(), tenant)
	if err != nil {
		writeError(w, r, err)
		return
	}
	log.Info().Int64("tenant", saved.ID).Str("name", saved.Name).Msg("settings: tenant created")
	writeJSON(w, http.StatusCreated, tenantResponse{
		ID:   saved.ID,
		Name: saved.Name,
		placeholderSettings: placeholderSettings{
			Vocabulary:     saved.Vocabulary,
			CurrencySymbol: saved.CurrencySymbol,
		},
	})
}

func (h *Handlers) GetPlaceholderSettings(w http.ResponseWriter, r *http.Request) {
	tenant, err := h.Store.GetTenant(r.Context(), middleware.TenantID(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	currency := tenant.CurrencySymbol
	if currency == "" {
		currency = placeholder.DefaultCurrency
	}
	writeJSON(w, http.StatusOK, placeholderSettings{
		Vocabulary:     tenant.Vocabulary.WithDefaults(),
		CurrencySymbol: currency,
	})
}

// UpdatePlaceholderSettings replaces the whole vocabulary record. A vocabulary
// with empty or colliding tokens is rejected and nothing is stored.
func (h *Handlers) UpdatePlaceholderSettings(w http.ResponseWriter, r *http.Request) {
	var req placeholderSettings
	if err := decode(r, &req); err != nil {
		badRequest(w, "bad request")
		return
	}
	tenantID := middleware.TenantID(r.Context())
	if err := req.Vocabulary.Validate(); err != nil {
		log.Warn().Err(err).Int64("tenant", tenantID).Msg("settings: rejected vocabulary")
		writeError(w, r, err)
		return
	}

	tenant, err := h.Store.GetTenant(r.Context(), tenantID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	tenant.Vocabulary = req.Vocabulary
	tenant.CurrencySymbol = strings.TrimSpace(req.CurrencySymbol)
	if tenant.CurrencySymbol == "" {
		tenant.CurrencySymbol = placeholder.DefaultCurrency
	}

	saved, err := h.Store.UpdateTenantSettings(r.Context(), tenant)
	if err != nil {
		writeError(w, r, err)
		return
	}
	log.Info().Int64("tenant", tenantID).Msg("settings: placeholders updated")
	writeJSON(w, http.StatusOK, placeholderSettings{
		Vocabulary:     saved.Vocabulary,
		CurrencySymbol: saved.CurrencySymbol,
	})
}
