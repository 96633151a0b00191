package placeholder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidVocabulary is returned when a vocabulary has empty or colliding tokens.
var ErrInvalidVocabulary = errors.New("invalid placeholder vocabulary")

// Vocabulary maps the logical placeholder roles of a tenant to literal tokens.
type Vocabulary struct {
	ProductsMarker       string `json:"products_marker"`
	PriceToken           string `json:"price_token"`
	CurrencyToken        string `json:"currency_token"`
	DiscountedPriceToken string `json:"discounted_price_token"`
}

// DefaultVocabulary is assigned to new tenants.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		ProductsMarker:       "{{products}}",
		PriceToken:           "{{price}}",
		CurrencyToken:        "{{currency}}",
		DiscountedPriceToken: "{{discounted-price}}",
	}
}

// LegacyVocabulary is the hardcoded token set used by content written before
// tenants could configure their own tokens.
func LegacyVocabulary() Vocabulary {
	return Vocabulary{
		ProductsMarker:       "{{prodotti}}",
		PriceToken:           "{{prezzo}}",
		CurrencyToken:        "{{valuta}}",
		DiscountedPriceToken: "{{prezzo-scontato}}",
	}
}

// WithDefaults fills every empty token from DefaultVocabulary.
func (v Vocabulary) WithDefaults() Vocabulary {
	d := DefaultVocabulary()
	if strings.TrimSpace(v.ProductsMarker) == "" {
		v.ProductsMarker = d.ProductsMarker
	}
	if strings.TrimSpace(v.PriceToken) == "" {
		v.PriceToken = d.PriceToken
	}
	if strings.TrimSpace(v.CurrencyToken) == "" {
		v.CurrencyToken = d.CurrencyToken
	}
	if strings.TrimSpace(v.DiscountedPriceToken) == "" {
		v.DiscountedPriceToken = d.DiscountedPriceToken
	}
	return v
}

// VocabularyError describes which token of a vocabulary is malformed.
type VocabularyError struct {
	Field  string
	Reason string
}

func (e *VocabularyError) Error() string {
	return fmt.Sprintf("placeholder vocabulary: %s %s", e.Field, e.Reason)
}

func (e *VocabularyError) Unwrap() error { return ErrInvalidVocabulary }

type namedToken struct {
	field string
	token string
}

func (v Vocabulary) tokens() []namedToken {
	return []namedToken{
		{"products_marker", v.ProductsMarker},
		{"price_token", v.PriceToken},
		{"currency_token", v.CurrencyToken},
		{"discounted_price_token", v.DiscountedPriceToken},
	}
}

// Validate reports a *VocabularyError when a token is blank or two tokens are equal.
func (v Vocabulary) Validate() error {
	toks := v.tokens()
	for i, t := range toks {
		if strings.TrimSpace(t.token) == "" {
			return &VocabularyError{Field: t.field, Reason: "is empty"}
		}
		for _, prev := range toks[:i] {
			if prev.token == t.token {
				return &VocabularyError{Field: t.field, Reason: "collides with " + prev.field}
			}
		}
	}
	return nil
}
