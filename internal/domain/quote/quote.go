package quote

import (
	"errors"
	"time"

	"iq-home/quote_backend/internal/domain/placeholder"
)

var ErrNotFound = errors.New("not found")

// Tenant holds the per-tenant settings the composer needs.
type Tenant struct {
	ID             int64
	Name           string
	CurrencySymbol string
	Vocabulary     placeholder.Vocabulary
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewTenant returns a tenant with the default vocabulary and currency.
func NewTenant(name string) Tenant {
	return Tenant{
		Name:           name,
		CurrencySymbol: placeholder.DefaultCurrency,
		Vocabulary:     placeholder.DefaultVocabulary(),
	}
}

type Template struct {
	ID       int64  `json:"id"`
	TenantID int64  `json:"tenant_id"`
	Name     string `json:"name"`
	Content  string `json:"content"`
}

type Category struct {
	ID       int64  `json:"id"`
	TenantID int64  `json:"tenant_id"`
	Name     string `json:"name"`
}

// Product is a catalog offering. Description may carry value tokens that are
// resolved when the product is inserted into a quote.
type Product struct {
	ID          int64   `json:"id"`
	TenantID    int64   `json:"tenant_id"`
	CategoryID  *int64  `json:"category_id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Draft is the editable quote content, products marker included.
type Draft struct {
	Content string
}

// Quote is a saved draft.
type Quote struct {
	ID           int64
	TenantID     int64
	Title        string
	CustomerName string
	Content      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Document is what the PDF exporter receives: a finalized overview plus the
// header data of the quote.
type Document struct {
	Number       string
	Title        string
	CustomerName string
	CreatedAt    time.Time
	Body         string
}
