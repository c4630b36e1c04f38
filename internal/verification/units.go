package verification

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	percentagePattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)
	volumePattern     = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(ml|l|oz|fl\s*oz)`)
)

// Volume is a parsed net contents statement
type Volume struct {
	Value float64
	Unit  string // "ml", "l", "oz" or "floz"
}

// ExtractPercentage returns the first number followed by a percent sign.
// The boolean is false when the text holds no percentage.
func ExtractPercentage(text string) (float64, bool) {
	match := percentagePattern.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}

	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// ExtractVolume returns the first number followed by a volume unit.
// Units are lower-cased with inner whitespace removed, so "12 FL OZ" and
// "12 fl oz" both yield {12, "floz"}.
func ExtractVolume(text string) (Volume, bool) {
	normalized := collapseWhitespace(strings.ToLower(text))

	match := volumePattern.FindStringSubmatch(normalized)
	if match == nil {
		return Volume{}, false
	}

	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return Volume{}, false
	}

	return Volume{
		Value: value,
		Unit:  strings.Join(strings.Fields(match[2]), ""),
	}, true
}
