package verification

import (
	"strings"
	"testing"
)

func strPtr(s string) *string {
	return &s
}

func TestCompareBlankExpectedAlwaysMatches(t *testing.T) {
	extractedValues := []*string{nil, strPtr(""), strPtr("   "), strPtr("anything"), strPtr("45%")}

	kinds := append([]FieldKind{FieldKind("vintage")}, Fields...)

	for _, kind := range kinds {
		for _, expected := range []string{"", "  ", "\t\n"} {
			for _, extracted := range extractedValues {
				verdict := Compare(kind, expected, extracted)
				if verdict.Status != StatusMatch {
					t.Errorf("Compare(%s, %q, ...) status = %s, want match", kind, expected, verdict.Status)
				}
				if verdict.Details != "" {
					t.Errorf("Compare(%s, %q, ...) details = %q, want none", kind, expected, verdict.Details)
				}
			}
		}
	}
}

func TestCompareAbsentExtractedIsNotFound(t *testing.T) {
	expected := map[FieldKind]string{
		BrandName:           "Old Tom Distillery",
		ClassType:           "Kentucky Straight Bourbon Whiskey",
		AlcoholContent:      "45% Alc./Vol.",
		NetContents:         "750 mL",
		ProducerNameAddress: "Old Tom Distillery, Louisville, KY",
		CountryOfOrigin:     "USA",
		GovernmentWarning:   GovernmentWarningText,
	}

	for kind, exp := range expected {
		for _, extracted := range []*string{nil, strPtr(""), strPtr("  \n ")} {
			verdict := Compare(kind, exp, extracted)
			if verdict.Status != StatusNotFound {
				t.Errorf("Compare(%s) with absent value: expected not_found, got %s", kind, verdict.Status)
			}
		}
	}

	verdict := Compare(GovernmentWarning, GovernmentWarningText, nil)
	if verdict.Details != "Government warning not found on label" {
		t.Errorf("Expected warning not-found details, got %q", verdict.Details)
	}
}

func TestExactMatch(t *testing.T) {
	tests := []struct {
		name      string
		kind      FieldKind
		expected  string
		extracted string
		status    Status
	}{
		{"case and punctuation insensitive", BrandName, "Old Tom, Distillery.", "old tom distillery", StatusMatch},
		{"all caps label", BrandName, "Old Tom Distillery", "OLD TOM DISTILLERY", StatusMatch},
		{"extra whitespace", ClassType, "Kentucky Straight  Bourbon Whiskey", " Kentucky Straight Bourbon\nWhiskey ", StatusMatch},
		{"hyphen is removed, not spaced", ClassType, "Extra-Dry Gin", "extra dry gin", StatusMismatch},
		{"hyphen removed on both sides", ClassType, "Extra-Dry Gin", "ExtraDry Gin", StatusMatch},
		{"different brand", BrandName, "Old Tom Distillery", "New Tom Distillery", StatusMismatch},
		{"producer address", ProducerNameAddress, "Old Tom Distillery, Louisville, KY", "OLD TOM DISTILLERY LOUISVILLE KY", StatusMatch},
		{"country", CountryOfOrigin, "Product of France", "product of france.", StatusMatch},
		{"unknown kind defaults to exact", FieldKind("vintage"), "2019", "2019.", StatusMatch},
		{"unknown kind mismatch", FieldKind("vintage"), "2019", "2018", StatusMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := Compare(tt.kind, tt.expected, strPtr(tt.extracted))
			if verdict.Status != tt.status {
				t.Errorf("Expected status %s, got %s (%s)", tt.status, verdict.Status, verdict.Details)
			}
		})
	}
}

func TestExactMatchMismatchDetailsQuoteOriginals(t *testing.T) {
	verdict := Compare(BrandName, "Old Tom Distillery", strPtr("NEW TOM, DISTILLERY"))

	want := `Expected: "Old Tom Distillery", Got: "NEW TOM, DISTILLERY"`
	if verdict.Details != want {
		t.Errorf("Expected details %q, got %q", want, verdict.Details)
	}
}

func TestAlcoholMatch(t *testing.T) {
	tests := []struct {
		name      string
		expected  string
		extracted string
		status    Status
	}{
		{"different wording same percent", "45% Alc./Vol.", "45% ABV", StatusMatch},
		{"no tolerance", "45%", "44.9%", StatusMismatch},
		{"decimal equals integer", "40%", "40.0 % alc/vol", StatusMatch},
		{"space before percent", "12.5 % ABV", "Alcohol 12.5% by volume", StatusMatch},
		{"different percent", "13.5% Alc./Vol.", "14% Alc./Vol.", StatusMismatch},
		{"fallback to text when expected has no percent", "Forty Five Percent", "forty five percent.", StatusMatch},
		{"fallback to text when extracted has no percent", "45%", "90 proof", StatusMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := Compare(AlcoholContent, tt.expected, strPtr(tt.extracted))
			if verdict.Status != tt.status {
				t.Errorf("Expected status %s, got %s (%s)", tt.status, verdict.Status, verdict.Details)
			}
		})
	}

	verdict := Compare(AlcoholContent, "45%", strPtr("44.9%"))
	if verdict.Details != "Expected: 45%, Got: 44.9%" {
		t.Errorf("Unexpected mismatch details: %q", verdict.Details)
	}
}

func TestVolumeMatch(t *testing.T) {
	tests := []struct {
		name      string
		expected  string
		extracted string
		status    Status
	}{
		{"no space", "750 mL", "750ml", StatusMatch},
		{"upper case unit", "750 mL", "750 ML", StatusMatch},
		{"different value", "750 mL", "700 mL", StatusMismatch},
		{"different unit same quantity", "750 mL", "0.75 L", StatusMismatch},
		{"fluid ounces spacing", "12 FL OZ", "12 fl oz", StatusMatch},
		{"fluid ounces no space", "12 FL OZ", "12 floz", StatusMatch},
		{"ounces versus fluid ounces", "12 oz", "12 fl oz", StatusMismatch},
		{"liters", "1.75 L", "1.75 l", StatusMatch},
		{"fallback to text", "One Bottle", "one bottle", StatusMatch},
		{"fallback to text mismatch", "750 mL", "seven fifty", StatusMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := Compare(NetContents, tt.expected, strPtr(tt.extracted))
			if verdict.Status != tt.status {
				t.Errorf("Expected status %s, got %s (%s)", tt.status, verdict.Status, verdict.Details)
			}
		})
	}
}

func TestWarningMatch(t *testing.T) {
	lowerPrefix := strings.Replace(GovernmentWarningText, "GOVERNMENT WARNING:", "government warning:", 1)
	titlePrefix := strings.Replace(GovernmentWarningText, "GOVERNMENT WARNING:", "Government Warning:", 1)
	reworded := strings.Replace(GovernmentWarningText, "birth defects", "birth defect", 1)
	wrapped := strings.ReplaceAll(GovernmentWarningText, ". ", ".\n  ")

	tests := []struct {
		name      string
		extracted string
		status    Status
		details   string
	}{
		{"exact text", GovernmentWarningText, StatusMatch, ""},
		{"all caps transcription", strings.ToUpper(GovernmentWarningText), StatusMatch, ""},
		{"line wrapped", wrapped, StatusMatch, ""},
		{"lower case prefix", lowerPrefix, StatusMismatch, `"GOVERNMENT WARNING:" must be in all capital letters`},
		{"title case prefix", titlePrefix, StatusMismatch, `"GOVERNMENT WARNING:" must be in all capital letters`},
		{"reworded", reworded, StatusMismatch, "Government warning text does not match required format. Must match word-for-word including punctuation."},
		{"unrelated text", "Please drink responsibly.", StatusMismatch, "Government warning text does not match required format. Must match word-for-word including punctuation."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := Compare(GovernmentWarning, GovernmentWarningText, strPtr(tt.extracted))
			if verdict.Status != tt.status {
				t.Errorf("Expected status %s, got %s", tt.status, verdict.Status)
			}
			if verdict.Details != tt.details {
				t.Errorf("Expected details %q, got %q", tt.details, verdict.Details)
			}
		})
	}
}

func TestCompareDoesNotMutateInputs(t *testing.T) {
	extracted := "OLD TOM, DISTILLERY."
	ptr := &extracted

	first := Compare(BrandName, "Old Tom Distillery", ptr)
	second := Compare(BrandName, "Old Tom Distillery", ptr)

	if extracted != "OLD TOM, DISTILLERY." {
		t.Errorf("Extracted value was modified: %q", extracted)
	}
	if first != second {
		t.Errorf("Expected identical verdicts, got %+v and %+v", first, second)
	}
}

func TestVerifyFields(t *testing.T) {
	expected := ExpectedValues{
		BrandName:           "Old Tom Distillery",
		ClassType:           "Kentucky Straight Bourbon Whiskey",
		AlcoholContent:      "45% Alc./Vol.",
		NetContents:         "750 mL",
		ProducerNameAddress: "Old Tom Distillery, Louisville, KY",
		BeverageType:        Spirits,
	}
	extracted := ExtractedValues{
		BrandName:           strPtr("OLD TOM DISTILLERY"),
		ClassType:           strPtr("Kentucky Straight Bourbon Whiskey"),
		AlcoholContent:      strPtr("45% ABV"),
		NetContents:         strPtr("750ml"),
		ProducerNameAddress: strPtr("Old Tom Distillery Louisville KY"),
		CountryOfOrigin:     strPtr("USA"),
		GovernmentWarning:   strPtr(GovernmentWarningText),
	}

	verdicts := VerifyFields(expected, extracted)

	wantOrder := []FieldKind{BrandName, ClassType, AlcoholContent, NetContents, ProducerNameAddress, GovernmentWarning}
	if len(verdicts) != len(wantOrder) {
		t.Fatalf("Expected %d verdicts, got %d", len(wantOrder), len(verdicts))
	}
	for i, kind := range wantOrder {
		if verdicts[i].Field != kind {
			t.Errorf("Verdict %d: expected field %s, got %s", i, kind, verdicts[i].Field)
		}
		if verdicts[i].FieldName != kind.DisplayName() {
			t.Errorf("Verdict %d: expected name %s, got %s", i, kind.DisplayName(), verdicts[i].FieldName)
		}
		if verdicts[i].Status != StatusMatch {
			t.Errorf("Verdict %s: expected match, got %s (%s)", kind, verdicts[i].Status, verdicts[i].Details)
		}
	}

	warning := verdicts[len(verdicts)-1]
	if warning.Expected != GovernmentWarningText {
		t.Error("Government warning must be compared against the statutory text")
	}
}

func TestVerifyFieldsAlwaysChecksWarning(t *testing.T) {
	verdicts := VerifyFields(ExpectedValues{}, ExtractedValues{})

	if len(verdicts) != 1 {
		t.Fatalf("Expected only the warning verdict, got %d verdicts", len(verdicts))
	}
	if verdicts[0].Field != GovernmentWarning {
		t.Errorf("Expected governmentWarning, got %s", verdicts[0].Field)
	}
	if verdicts[0].Status != StatusNotFound {
		t.Errorf("Expected not_found, got %s", verdicts[0].Status)
	}
}

func TestDisplayName(t *testing.T) {
	if got := ProducerNameAddress.DisplayName(); got != "Producer Name & Address" {
		t.Errorf("Expected 'Producer Name & Address', got %q", got)
	}
	if got := FieldKind("vintage").DisplayName(); got != "vintage" {
		t.Errorf("Expected unknown kinds to display as-is, got %q", got)
	}
}
