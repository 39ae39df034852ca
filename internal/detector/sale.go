package detector

import "strings"

// DetectSale scans the merged keyword list in order and returns whether
// any keyword occurs in the page text, along with the first match.
// Keyword order is match priority, not strength. Empty or
// whitespace-only keywords are skipped.
func DetectSale(text string, keywords []string) (bool, string) {
	upper := strings.ToUpper(text)
	for _, kw := range keywords {
		if strings.TrimSpace(kw) == "" {
			continue
		}
		if containsPhrase(text, upper, kw) {
			return true, kw
		}
	}
	return false, ""
}
