package detector

import "strings"

// DetectMembersOnly reports whether the page carries a members-only or
// login gate, independent of sale status. The phrase list is injected so
// deployments can tune it against false positives.
func DetectMembersOnly(text string, phrases []string) bool {
	upper := strings.ToUpper(text)
	for _, phrase := range phrases {
		if strings.TrimSpace(phrase) == "" {
			continue
		}
		if containsPhrase(text, upper, phrase) {
			return true
		}
	}
	return false
}
