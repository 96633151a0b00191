package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"iq-home/quote_backend/internal/app/config"
	"iq-home/quote_backend/internal/app/http/handlers"
	"iq-home/quote_backend/internal/app/http/middleware"
)

func NewRouter(cfg config.Config, h *handlers.Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.InternalAuth(cfg.InternalToken))

		r.Post("/tenants", h.CreateTenant)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Tenant)

			r.Get("/settings/placeholders", h.GetPlaceholderSettings)
			r.Put("/settings/placeholders", h.UpdatePlaceholderSettings)

			r.Get("/templates", h.ListTemplates)
			r.Get("/categories", h.ListCategories)
			r.Get("/products", h.ListProducts)

			r.Route("/quotes", func(r chi.Router) {
				r.Get("/", h.ListQuotes)

				r.Post("/sessions", h.StartSession)
				r.Route("/sessions/{sessionID}", func(r chi.Router) {
					r.Get("/", h.GetSession)
					r.Delete("/", h.CloseSession)
					r.Post("/products", h.AddProduct)
					r.Put("/content", h.SetContent)
					r.Post("/save", h.SaveSession)
				})

				r.Route("/{quoteID}", func(r chi.Router) {
					r.Get("/overview", h.QuoteOverview)
					r.Get("/pdf", h.QuotePDF)
					r.Post("/clone", h.CloneQuote)
					r.Post("/edit", h.EditQuote)
				})
			})
		})
	})

	return r
}
