package detector

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Candidates whose URL contains one of these substrings are page chrome
// or asset sprites, never a promotion.
var imageDenylist = []string{
	"logo", "icon", "sprite", "favicon", "blank", "loading", "common", "gnb", "footer",
}

// rasterExtensions lists the accepted <img> formats. Meta-tag candidates
// are exempt since og:image URLs frequently hide the extension behind a
// CDN path.
var rasterExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

// Only the first imgScanLimit <img> tags are considered.
const imgScanLimit = 60

// ExtractImage picks a representative promotional image from page HTML:
// the open-graph image first, then the Twitter-card image, then the
// first acceptable <img> in document order. Relative candidates are
// resolved against pageURL. Returns "" when nothing acceptable is found.
func ExtractImage(html, pageURL string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	metaSelectors := []string{
		`meta[property="og:image"]`,
		`meta[name="twitter:image"]`,
	}
	for _, sel := range metaSelectors {
		if content, ok := doc.Find(sel).First().Attr("content"); ok {
			src := strings.TrimSpace(content)
			if src != "" && !denylisted(src) {
				return resolveURL(pageURL, src)
			}
		}
	}

	var found string
	doc.Find("img").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if i >= imgScanLimit {
			return false
		}
		src, ok := s.Attr("src")
		if !ok {
			return true
		}
		src = strings.TrimSpace(src)
		if src == "" || denylisted(src) || !hasRasterExtension(src) {
			return true
		}
		found = resolveURL(pageURL, src)
		return false
	})

	return found
}

func denylisted(src string) bool {
	lowered := strings.ToLower(src)
	for _, token := range imageDenylist {
		if strings.Contains(lowered, token) {
			return true
		}
	}
	return false
}

func hasRasterExtension(src string) bool {
	lowered := strings.ToLower(src)
	for _, ext := range rasterExtensions {
		if strings.Contains(lowered, ext) {
			return true
		}
	}
	return false
}

// resolveURL resolves ref against base, returning ref unchanged when
// either side fails to parse.
func resolveURL(base, ref string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}
