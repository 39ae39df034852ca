package detector

import "strings"

// HintPolicy controls when a brand's sale_type_hint overrides inference.
type HintPolicy string

const (
	// HintAlways applies the operator hint unconditionally.
	HintAlways HintPolicy = "always"
	// HintSaleOnly applies the hint only when the page is classified
	// as a sale; otherwise the type is inferred from the text.
	HintSaleOnly HintPolicy = "sale_only"
)

// InferSaleType produces one sale category or "".
//
// Precedence: the operator hint (subject to policy), then category
// phrase lists in rule order, then the members-only fallback. The
// category rules run most specific first so a clearance or refurb page
// that also gates on membership still reports the merchandising signal.
func InferSaleType(text, hint string, isSale, membersOnly bool, policy HintPolicy, rules []SaleTypeRule) string {
	if hint != "" && (policy != HintSaleOnly || isSale) {
		return hint
	}

	upper := strings.ToUpper(text)
	for _, rule := range rules {
		for _, phrase := range rule.Phrases {
			if containsPhrase(text, upper, phrase) {
				return rule.Type
			}
		}
	}

	if membersOnly {
		return SaleTypeMembersOnly
	}
	return ""
}
