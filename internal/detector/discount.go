package detector

import (
	"regexp"
	"strconv"
	"strings"
)

// Discount bounds; candidates outside the range are noise ("100%
// satisfaction" banners, superscript footnote digits).
const (
	minDiscount = 1
	maxDiscount = 95
)

var (
	upToPattern  = regexp.MustCompile(`UP\s*TO\s*(\d{1,3})\s*%?`)
	maxPattern   = regexp.MustCompile(`(최대|MAX)\s*(\d{1,3})\s*%?`)
	rangePattern = regexp.MustCompile(`(\d{1,3})\s*-\s*(\d{1,3})\s*%`)
	barePattern  = regexp.MustCompile(`(\d{1,3})\s*%`)
)

// MaxDiscount extracts a best-effort maximum discount percentage from
// page text. High-confidence phrasings ("UP TO n", "최대 n", explicit
// "a-b%" ranges) are collected first; only when none survives bounding
// are bare "n%" occurrences consulted. Either tier returns the maximum
// surviving candidate, since pages often list per-category tiers and
// the best available deal is the contract.
func MaxDiscount(text string) (int, bool) {
	upper := strings.ToUpper(text)

	var candidates []int
	for _, m := range upToPattern.FindAllStringSubmatch(upper, -1) {
		candidates = appendBounded(candidates, m[1])
	}
	for _, m := range maxPattern.FindAllStringSubmatch(upper, -1) {
		candidates = appendBounded(candidates, m[2])
	}
	for _, m := range rangePattern.FindAllStringSubmatch(upper, -1) {
		candidates = appendBounded(candidates, m[1], m[2])
	}
	if len(candidates) > 0 {
		return maxOf(candidates), true
	}

	for _, m := range barePattern.FindAllStringSubmatch(upper, -1) {
		candidates = appendBounded(candidates, m[1])
	}
	if len(candidates) > 0 {
		return maxOf(candidates), true
	}

	return 0, false
}

// appendBounded parses raw digits and keeps only in-bounds candidates.
func appendBounded(candidates []int, raws ...string) []int {
	for _, raw := range raws {
		n, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		if n < minDiscount || n > maxDiscount {
			continue
		}
		candidates = append(candidates, n)
	}
	return candidates
}

func maxOf(nums []int) int {
	best := nums[0]
	for _, n := range nums[1:] {
		if n > best {
			best = n
		}
	}
	return best
}
