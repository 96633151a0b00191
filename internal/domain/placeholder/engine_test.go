package placeholder

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"100", "100"},
		{"100.00", "100"},
		{"12.50", "12.5"},
		{"84.9915", "84.99"},
		{"0.005", "0.01"},
		{"-50", "-50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAmount(decimal.RequireFromString(tt.in)), tt.in)
	}
}

func TestDiscountedPrice(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "80", FormatAmount(DiscountedPrice(decimal.NewFromInt(100), 20)))
	assert.Equal(t, "16.99", FormatAmount(DiscountedPrice(decimal.NewFromFloat(19.99), 15)))
	assert.Equal(t, "110", FormatAmount(DiscountedPrice(decimal.NewFromInt(100), -10)), "negative discount is not clamped")
	assert.Equal(t, "-50", FormatAmount(DiscountedPrice(decimal.NewFromInt(100), 150)), "discount above 100 is not clamped")
	assert.Equal(t, "0", FormatAmount(DiscountedPrice(decimal.Zero, 30)))
}

func TestAmount(t *testing.T) {
	t.Parallel()

	d, err := Amount(19.99)
	require.NoError(t, err)
	assert.Equal(t, "19.99", FormatAmount(d))

	for _, price := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Amount(price)
		require.ErrorIs(t, err, ErrInvalidPrice, "%v", price)
	}
}

func TestRenderFragment(t *testing.T) {
	t.Parallel()

	v := DefaultVocabulary()

	t.Run("price and currency", func(t *testing.T) {
		t.Parallel()
		got, err := RenderFragment("Price: {{price}} {{currency}}", 100, 20, v, "€")
		require.NoError(t, err)
		assert.Equal(t, "Price: 100 €", got)
	})

	t.Run("discounted price", func(t *testing.T) {
		t.Parallel()
		got, err := RenderFragment("<b>{{discounted-price}}</b>", 100, 20, v, "€")
		require.NoError(t, err)
		assert.Equal(t, "<b>80</b>", got)
	})

	t.Run("every occurrence including attributes", func(t *testing.T) {
		t.Parallel()
		got, err := RenderFragment(`<span title="{{price}}">{{price}}{{currency}}</span>{{price}}`, 9.5, 0, v, "$")
		require.NoError(t, err)
		assert.Equal(t, `<span title="9.5">9.5$</span>9.5`, got)
	})

	t.Run("empty description is a no-op", func(t *testing.T) {
		t.Parallel()
		got, err := RenderFragment("", 10, 0, v, "€")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("default currency", func(t *testing.T) {
		t.Parallel()
		got, err := RenderFragment("{{currency}}", 10, 0, v, "")
		require.NoError(t, err)
		assert.Equal(t, DefaultCurrency, got)
	})

	t.Run("products marker is kept", func(t *testing.T) {
		t.Parallel()
		got, err := RenderFragment("{{price}}{{products}}", 1, 0, v, "€")
		require.NoError(t, err)
		assert.Equal(t, "1{{products}}", got)
	})

	t.Run("legacy vocabulary", func(t *testing.T) {
		t.Parallel()
		got, err := RenderFragment("{{prezzo}} {{valuta}} -> {{prezzo-scontato}} {{valuta}}", 250, 10, LegacyVocabulary(), "€")
		require.NoError(t, err)
		assert.Equal(t, "250 € -> 225 €", got)
	})

	t.Run("replacement is not rescanned", func(t *testing.T) {
		t.Parallel()
		got, err := RenderFragment("{{currency}}", 1, 0, v, "{{price}}")
		require.NoError(t, err)
		assert.Equal(t, "{{price}}", got)
	})

	t.Run("longest token wins on shared prefix", func(t *testing.T) {
		t.Parallel()
		vv := Vocabulary{ProductsMarker: "[[p]]", PriceToken: "$P", CurrencyToken: "$C", DiscountedPriceToken: "$PD"}
		got, err := RenderFragment("$PD/$P$C", 100, 50, vv, "€")
		require.NoError(t, err)
		assert.Equal(t, "50/100€", got)
	})

	t.Run("non-finite price fails", func(t *testing.T) {
		t.Parallel()
		for _, price := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			require.NotPanics(t, func() {
				_, err := RenderFragment("Price: {{price}}", price, 10, v, "€")
				require.ErrorIs(t, err, ErrInvalidPrice)
			})
		}
	})

	t.Run("invalid vocabulary fails", func(t *testing.T) {
		t.Parallel()
		bad := v
		bad.CurrencyToken = bad.PriceToken
		_, err := RenderFragment("Price: {{price}}", 100, 0, bad, "€")
		require.ErrorIs(t, err, ErrInvalidVocabulary)

		_, err = RenderFragment("", 100, 0, Vocabulary{}, "€")
		require.ErrorIs(t, err, ErrInvalidVocabulary)
	})
}

func TestInsertIntoDraft(t *testing.T) {
	t.Parallel()

	v := DefaultVocabulary()

	t.Run("insertion order", func(t *testing.T) {
		t.Parallel()
		draft, err := InsertIntoDraft("A{{products}}B", "X", v)
		require.NoError(t, err)
		draft, err = InsertIntoDraft(draft, "Y", v)
		require.NoError(t, err)
		assert.Equal(t, "AXY{{products}}B", draft)
	})

	t.Run("no marker appends", func(t *testing.T) {
		t.Parallel()
		draft, err := InsertIntoDraft("ABC", "X", v)
		require.NoError(t, err)
		assert.Equal(t, "ABCX", draft)
	})

	t.Run("every marker occurrence", func(t *testing.T) {
		t.Parallel()
		draft, err := InsertIntoDraft("{{products}}|{{products}}", "X", v)
		require.NoError(t, err)
		assert.Equal(t, "X{{products}}|X{{products}}", draft)
	})

	t.Run("invalid vocabulary fails", func(t *testing.T) {
		t.Parallel()
		_, err := InsertIntoDraft("A{{products}}", "X", Vocabulary{ProductsMarker: "{{products}}"})
		require.ErrorIs(t, err, ErrInvalidVocabulary)
	})
}

func TestStripAll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"two tokens", "a{{x}}b{{y}}c", "abc"},
		{"no tokens", "no tokens", "no tokens"},
		{"empty", "", ""},
		{"repeated token", "{{x}}-{{x}}", "-"},
		{"non greedy", "{{a}} keep {{b}}", " keep "},
		{"unterminated", "{{open", "{{open"},
		{"single pass", "{{{{x}}}}", "}}"},
		{"html", `<p>{{prezzo}} <b>{{valuta}}</b></p>`, "<p> <b></b></p>"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, StripAll(tt.in))
		})
	}
}
