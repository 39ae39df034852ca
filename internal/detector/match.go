package detector

import (
	"regexp"
	"strings"
)

var upperLatin = regexp.MustCompile(`[A-Z]`)

// containsPhrase reports whether phrase occurs in text. Phrases carrying
// an uppercase Latin letter are compared case-insensitively against the
// pre-uppercased copy of the text; CJK/symbol phrases are compared by
// exact substring, where case folding is meaningless.
func containsPhrase(text, upperText, phrase string) bool {
	if upperLatin.MatchString(phrase) {
		return strings.Contains(upperText, strings.ToUpper(phrase))
	}
	return strings.Contains(text, phrase)
}
