package brand

// Record describes one monitored retailer page. Records are loaded once
// at run start and read-only thereafter.
type Record struct {
	Name          string
	URL           string
	Country       string
	SaleTypeHint  string
	KeywordsExtra []string

	// Image is an operator-supplied override; it always wins over any
	// auto-extracted image and is passed through without validation.
	Image string

	// ImagePage is an alternate page to scan for a promotional image.
	ImagePage string
}

// DefaultCountry is assumed when a record carries no region code.
const DefaultCountry = "KR"

// ImageSource returns the page to scan for a promotional image.
func (r Record) ImageSource() string {
	if r.ImagePage != "" {
		return r.ImagePage
	}
	return r.URL
}

// Valid reports whether the record carries the mandatory fields. Invalid
// records are dropped by the loaders and never reach the detectors.
func (r Record) Valid() bool {
	return r.Name != "" && r.URL != ""
}
