package detector

// Signals bundles every text-detector output for one page. It is
// recomputed fresh on every pass and never persisted.
type Signals struct {
	IsSale          bool
	MatchedKeyword  string
	MembersOnly     bool
	SaleType        string
	MaxDiscountHint *int
	Image           string
}

// Options carries the per-brand inputs for Classify. Keywords is the
// already-merged list (defaults plus brand extras, deduplicated).
type Options struct {
	Keywords   []string
	Hint       string
	HintPolicy HintPolicy
	Rules      RuleSet
}

// Classify runs every text detector over normalized page text. The
// detectors are pure functions of their inputs; the image signal is
// resolved separately since it needs the raw HTML and possibly a second
// fetch.
func Classify(text string, opts Options) Signals {
	var sig Signals

	sig.IsSale, sig.MatchedKeyword = DetectSale(text, opts.Keywords)
	sig.MembersOnly = DetectMembersOnly(text, opts.Rules.MembersOnly)
	sig.SaleType = InferSaleType(text, opts.Hint, sig.IsSale, sig.MembersOnly, opts.HintPolicy, opts.Rules.SaleTypes)

	if discount, ok := MaxDiscount(text); ok {
		sig.MaxDiscountHint = &discount
	}

	return sig
}
