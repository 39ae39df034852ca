package helpers

import "strings"

// SplitList splits a separated list cell into trimmed, non-empty parts.
func SplitList(raw, sep string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var parts []string
	for _, p := range strings.Split(raw, sep) {
		if t := strings.TrimSpace(p); t != "" {
			parts = append(parts, t)
		}
	}
	return parts
}

// MergeKeywords appends extras to defaults, dropping duplicates while
// preserving first-seen order. Match order is priority order for the
// detectors, so order must survive the merge.
func MergeKeywords(defaults, extras []string) []string {
	seen := make(map[string]struct{}, len(defaults)+len(extras))
	merged := make([]string, 0, len(defaults)+len(extras))
	appendAll := func(keywords []string) {
		for _, kw := range keywords {
			if kw == "" {
				continue
			}
			if _, ok := seen[kw]; ok {
				continue
			}
			seen[kw] = struct{}{}
			merged = append(merged, kw)
		}
	}
	appendAll(defaults)
	appendAll(extras)
	return merged
}
