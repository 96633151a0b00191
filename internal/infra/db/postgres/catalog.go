package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"iq-home/quote_backend/internal/domain/quote"
)

func (s *Store) GetTemplate(ctx context.Context, tenantID, templateID int64) (quote.Template, error) {
	sql, args, err := psql.Select("id", "tenant_id", "name", "content").
		From("quote_templates").
		Where(squirrel.Eq{"id": templateID, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return quote.Template{}, err
	}
	var t quote.Template
	if err := s.q.QueryRow(ctx, sql, args...).Scan(&t.ID, &t.TenantID, &t.Name, &t.Content); err != nil {
		return quote.Template{}, mapErr(err, "template", templateID)
	}
	return t, nil
}

func (s *Store) ListTemplates(ctx context.Context, tenantID int64) ([]quote.Template, error) {
	sql, args, err := psql.Select("id", "tenant_id", "name", "content").
		From("quote_templates").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	return collect(rows, func(row pgx.CollectableRow) (quote.Template, error) {
		var t quote.Template
		err := row.Scan(&t.ID, &t.TenantID, &t.Name, &t.Content)
		return t, err
	})
}

func (s *Store) ListCategories(ctx context.Context, tenantID int64) ([]quote.Category, error) {
	sql, args, err := psql.Select("id", "tenant_id", "name").
		From("categories").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return collect(rows, func(row pgx.CollectableRow) (quote.Category, error) {
		var c quote.Category
		err := row.Scan(&c.ID, &c.TenantID, &c.Name)
		return c, err
	})
}

var productColumns = []string{"id", "tenant_id", "category_id", "name", "description", "price::float8"}

func scanProduct(row pgx.Row) (quote.Product, error) {
	var p quote.Product
	err := row.Scan(&p.ID, &p.TenantID, &p.CategoryID, &p.Name, &p.Description, &p.Price)
	return p, err
}

func (s *Store) GetProduct(ctx context.Context, tenantID, productID int64) (quote.Product, error) {
	sql, args, err := psql.Select(productColumns...).
		From("products").
		Where(squirrel.Eq{"id": productID, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return quote.Product{}, err
	}
	p, err := scanProduct(s.q.QueryRow(ctx, sql, args...))
	if err != nil {
		return quote.Product{}, mapErr(err, "product", productID)
	}
	return p, nil
}

// ListProducts returns the tenant catalog, optionally narrowed to a category.
func (s *Store) ListProducts(ctx context.Context, tenantID int64, categoryID *int64) ([]quote.Product, error) {
	b := psql.Select(productColumns...).
		From("products").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("name")
	if categoryID != nil {
		b = b.Where(squirrel.Eq{"category_id": *categoryID})
	}
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return collect(rows, func(row pgx.CollectableRow) (quote.Product, error) {
		return scanProduct(row)
	})
}

func collect[T any](rows pgx.Rows, fn pgx.RowToFunc[T]) ([]T, error) {
	out, err := pgx.CollectRows(rows, fn)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}
