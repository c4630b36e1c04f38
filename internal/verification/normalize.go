package verification

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// punctuation stripped before equality comparison
var punctuationReplacer = strings.NewReplacer(".", "", ",", "", "-", "")

// Normalize canonicalizes text for case, whitespace and punctuation
// insensitive comparison. The result is never shown to the user.
func Normalize(text string) string {
	// Casers keep state and must not be shared between goroutines
	text = cases.Lower(language.Und).String(text)
	text = punctuationReplacer.Replace(text)
	return collapseWhitespace(text)
}

// collapseWhitespace replaces runs of whitespace with one space and trims
func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func toUpper(text string) string {
	return cases.Upper(language.Und).String(text)
}

func isBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
