package handlers

import (
	"context"

	"iq-home/quote_backend/internal/domain/quote"
	"iq-home/quote_backend/internal/domain/quote/editor"
	"iq-home/quote_backend/internal/domain/quote/pdf"
)

// Store is the read side of the catalog plus tenant records and settings.
type Store interface {
	GetTenant(ctx context.Context, tenantID int64) (quote.Tenant, error)
	CreateTenant(ctx context.Context, t quote.Tenant) (quote.Tenant, error)
	UpdateTenantSettings(ctx context.Context, t quote.Tenant) (quote.Tenant, error)
	ListTemplates(ctx context.Context, tenantID int64) ([]quote.Template, error)
	ListCategories(ctx context.Context, tenantID int64) ([]quote.Category, error)
	ListProducts(ctx context.Context, tenantID int64, categoryID *int64) ([]quote.Product, error)
	ListQuotes(ctx context.Context, tenantID int64) ([]quote.Quote, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type Handlers struct {
	Store  Store
	Editor *editor.Editor
	PDF    pdf.Generator
	DB     Pinger
}

func New(store Store, ed *editor.Editor, gen pdf.Generator, db Pinger) *Handlers {
	return &Handlers{Store: store, Editor: ed, PDF: gen, DB: db}
}
