package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"iq-home/quote_backend/internal/app/http/middleware"
	"iq-home/quote_backend/internal/domain/quote"
	"iq-home/quote_backend/internal/domain/quote/editor"
)

type StartSessionRequest struct {
	TemplateID   *int64 `json:"template_id"`
	Title        string `json:"title"`
	CustomerName string `json:"customer_name"`
}

type AddProductRequest struct {
	ProductID       *int64 `json:"product_id"`
	DiscountPercent int    `json:"discount_percent"`
}

type ContentRequest struct {
	Content string `json:"content"`
}

type sessionResponse struct {
	ID           string `json:"id"`
	QuoteID      int64  `json:"quote_id,omitempty"`
	Title        string `json:"title"`
	CustomerName string `json:"customer_name"`
	Currency     string `json:"currency"`
	Content      string `json:"content"`
	Overview     string `json:"overview"`
}

type quoteResponse struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	CustomerName string    `json:"customer_name"`
	Content      string    `json:"content,omitempty"`
	Overview     string    `json:"overview,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toQuoteResponse(q quote.Quote) quoteResponse {
	return quoteResponse{
		ID:           q.ID,
		Title:        q.Title,
		CustomerName: q.CustomerName,
		Content:      q.Content,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}
}

func writeSession(w http.ResponseWriter, r *http.Request, status int, s editor.Session) {
	overview, err := s.Overview()
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, status, sessionResponse{
		ID:           s.ID.String(),
		QuoteID:      s.QuoteID,
		Title:        s.Title,
		CustomerName: s.CustomerName,
		Currency:     s.Currency,
		Content:      s.Draft.Content,
		Overview:     overview,
	})
}

func sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		badRequest(w, "invalid session id")
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handlers) StartSession(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "bad request")
		return
	}
	s, err := h.Editor.Start(r.Context(), middleware.TenantID(r.Context()), editor.StartInput{
		TemplateID:   req.TemplateID,
		Title:        req.Title,
		CustomerName: req.CustomerName,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSession(w, r, http.StatusCreated, s)
}

func (h *Handlers) GetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	s, err := h.Editor.Get(middleware.TenantID(r.Context()), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSession(w, r, http.StatusOK, s)
}

func (h *Handlers) AddProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	var req AddProductRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "bad request")
		return
	}
	s, err := h.Editor.AddProduct(r.Context(), middleware.TenantID(r.Context()), id, req.ProductID, req.DiscountPercent)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSession(w, r, http.StatusOK, s)
}

func (h *Handlers) SetContent(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	var req ContentRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "bad request")
		return
	}
	s, err := h.Editor.SetContent(middleware.TenantID(r.Context()), id, req.Content)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSession(w, r, http.StatusOK, s)
}

func (h *Handlers) SaveSession(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	q, err := h.Editor.Save(r.Context(), middleware.TenantID(r.Context()), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuoteResponse(q))
}

func (h *Handlers) CloseSession(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	if err := h.Editor.Close(middleware.TenantID(r.Context()), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) CloneQuote(w http.ResponseWriter, r *http.Request) {
	quoteID, ok := int64Param(r, "quoteID")
	if !ok {
		badRequest(w, "invalid quote id")
		return
	}
	s, err := h.Editor.Clone(r.Context(), middleware.TenantID(r.Context()), quoteID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSession(w, r, http.StatusCreated, s)
}

func (h *Handlers) EditQuote(w http.ResponseWriter, r *http.Request) {
	quoteID, ok := int64Param(r, "quoteID")
	if !ok {
		badRequest(w, "invalid quote id")
		return
	}
	s, err := h.Editor.Edit(r.Context(), middleware.TenantID(r.Context()), quoteID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSession(w, r, http.StatusCreated, s)
}

func (h *Handlers) ListQuotes(w http.ResponseWriter, r *http.Request) {
	list, err := h.Store.ListQuotes(r.Context(), middleware.TenantID(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	out := make([]quoteResponse, 0, len(list))
	for _, q := range list {
		resp := toQuoteResponse(q)
		resp.Content = ""
		out = append(out, resp)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) QuoteOverview(w http.ResponseWriter, r *http.Request) {
	quoteID, ok := int64Param(r, "quoteID")
	if !ok {
		badRequest(w, "invalid quote id")
		return
	}
	q, overview, err := h.Editor.Overview(r.Context(), middleware.TenantID(r.Context()), quoteID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp := toQuoteResponse(q)
	resp.Content = ""
	resp.Overview = overview
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) QuotePDF(w http.ResponseWriter, r *http.Request) {
	quoteID, ok := int64Param(r, "quoteID")
	if !ok {
		badRequest(w, "invalid quote id")
		return
	}
	doc, err := h.Editor.Document(r.Context(), middleware.TenantID(r.Context()), quoteID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	pdfBytes, err := h.PDF.Generate(doc)
	if err != nil {
		log.Error().Err(err).Int64("quote", quoteID).Msg("quote pdf: generation failed")
		http.Error(w, "pdf generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pdf"`, doc.Number))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}
