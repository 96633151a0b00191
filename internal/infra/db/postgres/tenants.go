package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"iq-home/quote_backend/internal/domain/quote"
)

var tenantColumns = []string{
	"id", "name", "currency_symbol",
	"COALESCE(products_marker, '')",
	"COALESCE(price_token, '')",
	"COALESCE(currency_token, '')",
	"COALESCE(discounted_price_token, '')",
	"created_at", "updated_at",
}

// GetTenant returns the tenant as stored. Omitted tokens come back empty; the
// caller fills them with defaults.
func (s *Store) GetTenant(ctx context.Context, tenantID int64) (quote.Tenant, error) {
	sql, args, err := psql.Select(tenantColumns...).
		From("tenants").
		Where(squirrel.Eq{"id": tenantID}).
		ToSql()
	if err != nil {
		return quote.Tenant{}, err
	}

	var t quote.Tenant
	err = s.q.QueryRow(ctx, sql, args...).Scan(
		&t.ID, &t.Name, &t.CurrencySymbol,
		&t.Vocabulary.ProductsMarker,
		&t.Vocabulary.PriceToken,
		&t.Vocabulary.CurrencyToken,
		&t.Vocabulary.DiscountedPriceToken,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return quote.Tenant{}, mapErr(err, "tenant", tenantID)
	}
	return t, nil
}

// CreateTenant inserts a tenant. Use quote.NewTenant for the defaults.
func (s *Store) CreateTenant(ctx context.Context, t quote.Tenant) (quote.Tenant, error) {
	sql, args, err := psql.Insert("tenants").
		Columns("name", "currency_symbol", "products_marker", "price_token", "currency_token", "discounted_price_token").
		Values(t.Name, t.CurrencySymbol,
			t.Vocabulary.ProductsMarker, t.Vocabulary.PriceToken,
			t.Vocabulary.CurrencyToken, t.Vocabulary.DiscountedPriceToken).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return quote.Tenant{}, err
	}
	if err := s.q.QueryRow(ctx, sql, args...).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return quote.Tenant{}, fmt.Errorf("create tenant: %w", err)
	}
	return t, nil
}

// UpdateTenantSettings replaces the whole placeholder record of a tenant.
func (s *Store) UpdateTenantSettings(ctx context.Context, t quote.Tenant) (quote.Tenant, error) {
	sql, args, err := psql.Update("tenants").
		Set("currency_symbol", t.CurrencySymbol).
		Set("products_marker", t.Vocabulary.ProductsMarker).
		Set("price_token", t.Vocabulary.PriceToken).
		Set("currency_token", t.Vocabulary.CurrencyToken).
		Set("discounted_price_token", t.Vocabulary.DiscountedPriceToken).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": t.ID}).
		Suffix("RETURNING name, created_at, updated_at").
		ToSql()
	if err != nil {
		return quote.Tenant{}, err
	}
	if err := s.q.QueryRow(ctx, sql, args...).Scan(&t.Name, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return quote.Tenant{}, mapErr(err, "tenant", t.ID)
	}
	return t, nil
}
