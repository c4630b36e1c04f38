package extraction

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lehigh-university-libraries/labelcheck/internal/verification"
)

// labelResponse is the JSON shape the model is asked to return
type labelResponse struct {
	BrandName           *string `json:"brand_name"`
	ClassType           *string `json:"class_type"`
	AlcoholContent      *string `json:"alcohol_content"`
	NetContents         *string `json:"net_contents"`
	ProducerNameAddress *string `json:"producer_name_address"`
	CountryOfOrigin     *string `json:"country_of_origin"`
	GovernmentWarning   *string `json:"government_warning"`
}

// ParseResponse decodes the model output into extracted values.
// Markdown code fences and text around the JSON object are tolerated.
func ParseResponse(response string) (*verification.ExtractedValues, error) {
	cleaned := stripCodeFences(response)
	if cleaned == "" {
		return nil, fmt.Errorf("empty extraction response")
	}

	var parsed labelResponse
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		start := strings.Index(cleaned, "{")
		end := strings.LastIndex(cleaned, "}")
		if start == -1 || end <= start {
			return nil, fmt.Errorf("failed to parse extraction response: %w", err)
		}

		slog.Debug("Extraction response had text around JSON, retrying with object only", "error", err)
		if err := json.Unmarshal([]byte(cleaned[start:end+1]), &parsed); err != nil {
			return nil, fmt.Errorf("failed to parse extraction response: %w", err)
		}
	}

	return &verification.ExtractedValues{
		BrandName:           parsed.BrandName,
		ClassType:           parsed.ClassType,
		AlcoholContent:      parsed.AlcoholContent,
		NetContents:         parsed.NetContents,
		ProducerNameAddress: parsed.ProducerNameAddress,
		CountryOfOrigin:     parsed.CountryOfOrigin,
		GovernmentWarning:   parsed.GovernmentWarning,
	}, nil
}

func stripCodeFences(response string) string {
	response = strings.TrimSpace(response)
	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")
	return strings.TrimSpace(response)
}
