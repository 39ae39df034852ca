package report

import (
	"sjsage522/salewatcher/internal/brand"
	"sjsage522/salewatcher/internal/detector"
)

// Record statuses
const (
	StatusSale   = "sale"
	StatusNoSale = "no_sale"
	StatusError  = "error"
)

// Record is one reported brand result. Nullable signal fields are
// pointers so the JSON report carries explicit nulls, matching what
// downstream consumers diff against.
type Record struct {
	Brand           string  `json:"brand"`
	URL             string  `json:"url"`
	Country         string  `json:"country"`
	Status          string  `json:"status"`
	SaleType        *string `json:"sale_type"`
	MatchedKeyword  *string `json:"matched_keyword"`
	MembersOnly     bool    `json:"members_only"`
	MaxDiscountHint *int    `json:"max_discount_hint"`
	CheckedAt       string  `json:"checked_at"`
	Image           *string `json:"image"`
	Error           string  `json:"error,omitempty"`
}

// Assemble combines one brand record and its signal bundle into an
// output record. Status derives purely from the sale flag.
func Assemble(b brand.Record, sig detector.Signals, checkedAt string) Record {
	status := StatusNoSale
	if sig.IsSale {
		status = StatusSale
	}

	return Record{
		Brand:           b.Name,
		URL:             b.URL,
		Country:         b.Country,
		Status:          status,
		SaleType:        optional(sig.SaleType),
		MatchedKeyword:  optional(sig.MatchedKeyword),
		MembersOnly:     sig.MembersOnly,
		MaxDiscountHint: sig.MaxDiscountHint,
		CheckedAt:       checkedAt,
		Image:           optional(sig.Image),
	}
}

// AssembleError produces the error-shaped record for a brand whose
// pipeline failed. Every signal field is forced to its absent/false
// default; sale_type falls back to the brand's raw hint rather than
// being recomputed.
func AssembleError(b brand.Record, err error, checkedAt string) Record {
	message := "unknown error"
	if err != nil {
		message = err.Error()
	}

	return Record{
		Brand:     b.Name,
		URL:       b.URL,
		Country:   b.Country,
		Status:    StatusError,
		SaleType:  optional(b.SaleTypeHint),
		CheckedAt: checkedAt,
		Error:     message,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
