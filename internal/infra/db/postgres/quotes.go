package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"iq-home/quote_backend/internal/domain/quote"
)

var quoteColumns = []string{"id", "tenant_id", "title", "customer_name", "content", "created_at", "updated_at"}

func scanQuote(row pgx.Row) (quote.Quote, error) {
	var q quote.Quote
	err := row.Scan(&q.ID, &q.TenantID, &q.Title, &q.CustomerName, &q.Content, &q.CreatedAt, &q.UpdatedAt)
	return q, err
}

func (s *Store) GetQuote(ctx context.Context, tenantID, quoteID int64) (quote.Quote, error) {
	sql, args, err := psql.Select(quoteColumns...).
		From("quotes").
		Where(squirrel.Eq{"id": quoteID, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return quote.Quote{}, err
	}
	q, err := scanQuote(s.q.QueryRow(ctx, sql, args...))
	if err != nil {
		return quote.Quote{}, mapErr(err, "quote", quoteID)
	}
	return q, nil
}

func (s *Store) ListQuotes(ctx context.Context, tenantID int64) ([]quote.Quote, error) {
	sql, args, err := psql.Select(quoteColumns...).
		From("quotes").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	return collect(rows, func(row pgx.CollectableRow) (quote.Quote, error) {
		return scanQuote(row)
	})
}

func (s *Store) CreateQuote(ctx context.Context, q quote.Quote) (quote.Quote, error) {
	sql, args, err := psql.Insert("quotes").
		Columns("tenant_id", "title", "customer_name", "content").
		Values(q.TenantID, q.Title, q.CustomerName, q.Content).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return quote.Quote{}, err
	}
	if err := s.q.QueryRow(ctx, sql, args...).Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt); err != nil {
		return quote.Quote{}, fmt.Errorf("create quote: %w", err)
	}
	return q, nil
}

// UpdateQuote overwrites a saved quote; the last write wins.
func (s *Store) UpdateQuote(ctx context.Context, q quote.Quote) (quote.Quote, error) {
	sql, args, err := psql.Update("quotes").
		Set("title", q.Title).
		Set("customer_name", q.CustomerName).
		Set("content", q.Content).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": q.ID, "tenant_id": q.TenantID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return quote.Quote{}, err
	}
	if err := s.q.QueryRow(ctx, sql, args...).Scan(&q.CreatedAt, &q.UpdatedAt); err != nil {
		return quote.Quote{}, mapErr(err, "quote", q.ID)
	}
	return q, nil
}
