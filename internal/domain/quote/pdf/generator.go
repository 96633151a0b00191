package pdf

import "iq-home/quote_backend/internal/domain/quote"

// Generator turns a finalized quote document into PDF bytes.
type Generator interface {
	Generate(doc quote.Document) ([]byte, error)
}
