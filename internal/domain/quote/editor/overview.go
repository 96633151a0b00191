package editor

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"iq-home/quote_backend/internal/domain/placeholder"
	"iq-home/quote_backend/internal/domain/quote"
)

// Overview loads a saved quote and returns its export-ready content: the
// tenant and legacy products markers are removed, then any leftover token is
// stripped. When the tenant vocabulary is unusable only the generic strip runs.
func (e *Editor) Overview(ctx context.Context, tenantID, quoteID int64) (quote.Quote, string, error) {
	q, err := e.repo.GetQuote(ctx, tenantID, quoteID)
	if err != nil {
		return quote.Quote{}, "", fmt.Errorf("load quote %d: %w", quoteID, err)
	}
	tenant, err := e.repo.GetTenant(ctx, tenantID)
	if err != nil {
		return quote.Quote{}, "", fmt.Errorf("load tenant %d: %w", tenantID, err)
	}

	vocab := tenant.Vocabulary.WithDefaults()
	if err := vocab.Validate(); err != nil {
		log.Warn().Err(err).Int64("tenant", tenantID).Int64("quote", quoteID).
			Msg("quote overview: tenant vocabulary unusable, stripping all placeholders")
		return q, placeholder.StripAll(q.Content), nil
	}

	out, err := quote.Finalize(q.Content, vocab, placeholder.LegacyVocabulary())
	if err != nil {
		return quote.Quote{}, "", err
	}
	return q, out, nil
}

// Document builds the PDF input for a saved quote.
func (e *Editor) Document(ctx context.Context, tenantID, quoteID int64) (quote.Document, error) {
	q, body, err := e.Overview(ctx, tenantID, quoteID)
	if err != nil {
		return quote.Document{}, err
	}
	return quote.Document{
		Number:       fmt.Sprintf("Q-%d", q.ID),
		Title:        q.Title,
		CustomerName: q.CustomerName,
		CreatedAt:    q.CreatedAt,
		Body:         body,
	}, nil
}
