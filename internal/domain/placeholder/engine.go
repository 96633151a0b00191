package placeholder

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a tenant has no currency symbol configured.
const DefaultCurrency = "€"

// ErrInvalidPrice is returned for a price that is NaN or infinite.
var ErrInvalidPrice = errors.New("invalid price")

var hundred = decimal.NewFromInt(100)

// Amount converts a price to a decimal. NaN and infinities have no decimal
// form and are rejected with ErrInvalidPrice.
func Amount(price float64) (decimal.Decimal, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidPrice, price)
	}
	return decimal.NewFromFloat(price), nil
}

// FormatAmount renders an amount rounded half away from zero to two decimals,
// without trailing zeros and with a dot separator ("100", "84.99", "12.5").
func FormatAmount(d decimal.Decimal) string {
	return d.Round(2).String()
}

// DiscountedPrice returns price*(100-discountPercent)/100. The discount is not
// clamped: values outside [0,100] are computed as given.
func DiscountedPrice(price decimal.Decimal, discountPercent int) decimal.Decimal {
	return price.
		Mul(decimal.NewFromInt(int64(100 - discountPercent))).
		Div(hundred)
}

// RenderFragment resolves the price, currency and discounted price tokens of a
// product description. Substitution is textual and global: markup is never
// parsed, so tokens inside attributes are replaced too. The products marker is
// left alone. A non-finite price fails with ErrInvalidPrice.
func RenderFragment(description string, price float64, discountPercent int, v Vocabulary, currency string) (string, error) {
	if err := v.Validate(); err != nil {
		return "", err
	}
	if description == "" {
		return "", nil
	}
	amount, err := Amount(price)
	if err != nil {
		return "", err
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	r := newReplacer(map[string]string{
		v.PriceToken:           FormatAmount(amount),
		v.CurrencyToken:        currency,
		v.DiscountedPriceToken: FormatAmount(DiscountedPrice(amount, discountPercent)),
	})
	return r.Replace(description), nil
}

// InsertIntoDraft places fragment at every products marker of draft and keeps
// the marker right after it, so later insertions append in call order. Without
// a marker the fragment is appended to the end.
func InsertIntoDraft(draft, fragment string, v Vocabulary) (string, error) {
	if err := v.Validate(); err != nil {
		return "", err
	}
	if !strings.Contains(draft, v.ProductsMarker) {
		return draft + fragment, nil
	}
	return strings.ReplaceAll(draft, v.ProductsMarker, fragment+v.ProductsMarker), nil
}

// newReplacer builds a single-pass replacer that prefers the longest token at
// any position. Replacement values are never rescanned.
func newReplacer(values map[string]string) *strings.Replacer {
	olds := make([]string, 0, len(values))
	for k := range values {
		olds = append(olds, k)
	}
	sort.Slice(olds, func(i, j int) bool {
		if len(olds[i]) != len(olds[j]) {
			return len(olds[i]) > len(olds[j])
		}
		return olds[i] < olds[j]
	})
	pairs := make([]string, 0, 2*len(olds))
	for _, o := range olds {
		pairs = append(pairs, o, values[o])
	}
	return strings.NewReplacer(pairs...)
}

var anyPlaceholder = regexp.MustCompile(`\{\{.*?\}\}`)

// StripAll removes every {{...}} token from text in a single pass, regardless
// of any tenant vocabulary.
func StripAll(text string) string {
	if text == "" {
		return ""
	}
	return anyPlaceholder.ReplaceAllString(text, "")
}
