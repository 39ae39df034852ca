package detector

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// NormalizeHTML reduces raw markup to a flat, whitespace-collapsed text
// blob. Script, style, and noscript content is removed; comments never
// contribute text.
func NormalizeHTML(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	doc.Find("script, style, noscript").Remove()

	return strings.Join(strings.Fields(doc.Text()), " "), nil
}
