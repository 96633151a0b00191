package quote

import (
	"strings"

	"iq-home/quote_backend/internal/domain/placeholder"
)

// ComposeOverview removes every products marker from the draft content. Other
// tokens are left in place. Removal repeats until no marker is left, so a
// marker formed by joining the text around a removed one is removed too and
// applying it twice gives the same result.
func ComposeOverview(content string, v placeholder.Vocabulary) (string, error) {
	if err := v.Validate(); err != nil {
		return "", err
	}
	for strings.Contains(content, v.ProductsMarker) {
		content = strings.ReplaceAll(content, v.ProductsMarker, "")
	}
	return content, nil
}

// Finalize prepares content for display or export: the products marker is
// removed for every given vocabulary and whatever {{...}} token survives is
// stripped. With no vocabulary only the generic pass runs.
func Finalize(content string, vocabularies ...placeholder.Vocabulary) (string, error) {
	out := content
	for _, v := range vocabularies {
		var err error
		if out, err = ComposeOverview(out, v); err != nil {
			return "", err
		}
	}
	return placeholder.StripAll(out), nil
}

// AddProduct renders the product fragment and inserts it into a copy of draft.
// A nil product leaves the draft unchanged.
func AddProduct(draft Draft, p *Product, discountPercent int, v placeholder.Vocabulary, currency string) (Draft, error) {
	if p == nil {
		return draft, nil
	}
	fragment, err := placeholder.RenderFragment(p.Description, p.Price, discountPercent, v, currency)
	if err != nil {
		return draft, err
	}
	content, err := placeholder.InsertIntoDraft(draft.Content, fragment, v)
	if err != nil {
		return draft, err
	}
	return Draft{Content: content}, nil
}
