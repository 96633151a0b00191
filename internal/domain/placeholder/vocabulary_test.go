package placeholder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabulary_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		vocab     Vocabulary
		wantField string
	}{
		{name: "default is valid", vocab: DefaultVocabulary()},
		{name: "legacy is valid", vocab: LegacyVocabulary()},
		{
			name:      "empty products marker",
			vocab:     Vocabulary{PriceToken: "{{p}}", CurrencyToken: "{{c}}", DiscountedPriceToken: "{{d}}"},
			wantField: "products_marker",
		},
		{
			name:      "blank discounted price",
			vocab:     Vocabulary{ProductsMarker: "{{m}}", PriceToken: "{{p}}", CurrencyToken: "{{c}}", DiscountedPriceToken: "  "},
			wantField: "discounted_price_token",
		},
		{
			name:      "price equals currency",
			vocab:     Vocabulary{ProductsMarker: "{{m}}", PriceToken: "{{x}}", CurrencyToken: "{{x}}", DiscountedPriceToken: "{{d}}"},
			wantField: "currency_token",
		},
		{
			name:      "marker equals discounted price",
			vocab:     Vocabulary{ProductsMarker: "{{x}}", PriceToken: "{{p}}", CurrencyToken: "{{c}}", DiscountedPriceToken: "{{x}}"},
			wantField: "discounted_price_token",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.vocab.Validate()
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidVocabulary))
			var verr *VocabularyError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestVocabulary_WithDefaults(t *testing.T) {
	t.Parallel()

	v := Vocabulary{ProductsMarker: "{{items}}", CurrencyToken: " "}.WithDefaults()

	assert.Equal(t, "{{items}}", v.ProductsMarker)
	assert.Equal(t, "{{price}}", v.PriceToken)
	assert.Equal(t, "{{currency}}", v.CurrencyToken)
	assert.Equal(t, "{{discounted-price}}", v.DiscountedPriceToken)
	require.NoError(t, v.Validate())
}
