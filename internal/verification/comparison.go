package verification

import (
	"fmt"
	"strings"
)

const warningPrefix = "GOVERNMENT WARNING:"

// Comparator compares a non-blank expected value against an extracted value
type Comparator func(expected string, extracted *string) Verdict

// comparators maps field kinds to their strategy. Kinds not listed here use exactMatch.
var comparators = map[FieldKind]Comparator{
	AlcoholContent:    alcoholMatch,
	NetContents:       volumeMatch,
	GovernmentWarning: warningMatch,
}

// Compare produces the verdict for one field. A blank expected value means the
// field is not checked, so it always matches.
func Compare(kind FieldKind, expected string, extracted *string) Verdict {
	if isBlank(expected) {
		return Verdict{Status: StatusMatch}
	}

	if compare, ok := comparators[kind]; ok {
		return compare(expected, extracted)
	}
	return exactMatch(expected, extracted)
}

// VerifyFields compares every checked field of a label in reporting order.
// Operator fields left blank are excluded; the government warning is always
// checked against the statutory text.
func VerifyFields(expected ExpectedValues, extracted ExtractedValues) []FieldVerdict {
	verdicts := make([]FieldVerdict, 0, len(Fields))

	for _, kind := range Fields {
		exp := expected.Get(kind)
		if isBlank(exp) {
			continue
		}

		ext := extracted.Get(kind)
		verdicts = append(verdicts, FieldVerdict{
			Field:     kind,
			FieldName: kind.DisplayName(),
			Expected:  exp,
			Extracted: ext,
			Verdict:   Compare(kind, exp, ext),
		})
	}

	return verdicts
}

func absent(extracted *string) bool {
	return extracted == nil || isBlank(*extracted)
}

// exactMatch compares normalized text. Used for brand, class/type, producer,
// country of origin and any field without a dedicated comparator.
func exactMatch(expected string, extracted *string) Verdict {
	if absent(extracted) {
		return Verdict{Status: StatusNotFound}
	}

	if Normalize(expected) == Normalize(*extracted) {
		return Verdict{Status: StatusMatch}
	}

	return Verdict{
		Status:  StatusMismatch,
		Details: fmt.Sprintf(`Expected: "%s", Got: "%s"`, expected, *extracted),
	}
}

// alcoholMatch requires the same percentage regardless of wording,
// e.g. "45% Alc./Vol." and "45% ABV". No tolerance is applied.
func alcoholMatch(expected string, extracted *string) Verdict {
	if absent(extracted) {
		return Verdict{Status: StatusNotFound}
	}

	expectedPercent, okExpected := ExtractPercentage(expected)
	extractedPercent, okExtracted := ExtractPercentage(*extracted)
	if !okExpected || !okExtracted {
		return exactMatch(expected, extracted)
	}

	if expectedPercent == extractedPercent {
		return Verdict{Status: StatusMatch}
	}

	return Verdict{
		Status:  StatusMismatch,
		Details: fmt.Sprintf("Expected: %s, Got: %s", expected, *extracted),
	}
}

// volumeMatch requires the same value and unit, e.g. "750 mL" and "750ml"
func volumeMatch(expected string, extracted *string) Verdict {
	if absent(extracted) {
		return Verdict{Status: StatusNotFound}
	}

	expectedVol, okExpected := ExtractVolume(expected)
	extractedVol, okExtracted := ExtractVolume(*extracted)
	if !okExpected || !okExtracted {
		return exactMatch(expected, extracted)
	}

	if expectedVol == extractedVol {
		return Verdict{Status: StatusMatch}
	}

	return Verdict{
		Status:  StatusMismatch,
		Details: fmt.Sprintf(`Expected: "%s", Got: "%s"`, expected, *extracted),
	}
}

// warningMatch checks the government warning word for word. Only whitespace
// differences and an all-caps transcription are tolerated, and the prefix
// itself must be capitalized.
func warningMatch(expected string, extracted *string) Verdict {
	if absent(extracted) {
		return Verdict{Status: StatusNotFound, Details: "Government warning not found on label"}
	}
	text := *extracted

	if !strings.Contains(text, warningPrefix) && strings.Contains(strings.ToLower(text), "government warning") {
		return Verdict{
			Status:  StatusMismatch,
			Details: `"GOVERNMENT WARNING:" must be in all capital letters`,
		}
	}

	normalizedExpected := collapseWhitespace(expected)
	normalizedExtracted := collapseWhitespace(text)

	if normalizedExpected == normalizedExtracted {
		return Verdict{Status: StatusMatch}
	}

	if toUpper(normalizedExpected) == toUpper(normalizedExtracted) {
		return Verdict{Status: StatusMatch}
	}

	return Verdict{
		Status:  StatusMismatch,
		Details: "Government warning text does not match required format. Must match word-for-word including punctuation.",
	}
}
