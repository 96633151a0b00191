package postgres

import (
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"iq-home/quote_backend/internal/domain/quote"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Store holds the tenant-scoped repositories used by the quote editor and the
// REST handlers.
type Store struct {
	q Querier
}

func NewStore(q Querier) *Store { return &Store{q: q} }

func mapErr(err error, what string, id int64) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %d: %w", what, id, quote.ErrNotFound)
	}
	return fmt.Errorf("%s %d: %w", what, id, err)
}
