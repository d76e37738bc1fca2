package speechCapture

import (
	"regexp"
	"strings"
	"unicode"
)

var identifierPattern = regexp.MustCompile(`(?i)(c|see)[\s-]*((?:\d|oh|zero|one|two|three|four|five|six|seven|eight|nine|\s)+)`)

var spokenDigits = []struct {
	word  string
	digit string
}{
	{"oh", "0"},
	{"zero", "0"},
	{"one", "1"},
	{"two", "2"},
	{"three", "3"},
	{"four", "4"},
	{"five", "5"},
	{"six", "6"},
	{"seven", "7"},
	{"eight", "8"},
	{"nine", "9"},
}

// NormalizeIdentifiers rewrites a spoken contact identifier ("see oh one")
// into its canonical token form ("C01") in place. Utterances without an
// identifier pattern pass through unchanged. Best-effort: ambiguous spoken
// sequences are left as-is.
func NormalizeIdentifiers(utterance string) string {
	match := identifierPattern.FindString(utterance)
	if match == "" {
		return utterance
	}

	formatted := strings.ToLower(match)
	formatted = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, formatted)
	formatted = strings.Replace(formatted, "see", "c", 1)
	formatted = strings.ReplaceAll(formatted, "-", "")
	formatted = strings.ReplaceAll(formatted, "dash", "")
	formatted = strings.ReplaceAll(formatted, "hyphen", "")
	for _, spoken := range spokenDigits {
		formatted = strings.ReplaceAll(formatted, spoken.word, spoken.digit)
	}
	formatted = strings.ToUpper(formatted)

	return strings.Replace(utterance, match, formatted, 1)
}
