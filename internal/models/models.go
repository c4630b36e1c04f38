package models

import "github.com/lehigh-university-libraries/labelcheck/internal/verification"

// VerifyRequest is the JSON body of POST /api/verify. Image is a base64 data
// URL; ImageURL is fetched when Image is empty.
type VerifyRequest struct {
	Image          string                       `json:"image"`
	ImageURL       string                       `json:"imageUrl,omitempty"`
	ExpectedValues *verification.ExpectedValues `json:"expectedValues"`
	Provider       string                       `json:"provider,omitempty"`
	Model          string                       `json:"model,omitempty"`
}

// VerifyErrorResponse is returned when extraction fails after the request was accepted
type VerifyErrorResponse struct {
	Success          bool   `json:"success"`
	Error            string `json:"error"`
	ProcessingTimeMs int64  `json:"processingTimeMs"`
}

// BatchLabel is one label of a batch request
type BatchLabel struct {
	ImageID        string                      `json:"imageId"`
	Image          string                      `json:"image"`
	ImageURL       string                      `json:"imageUrl,omitempty"`
	ExpectedValues verification.ExpectedValues `json:"expectedValues"`
}

// BatchVerifyRequest is the JSON body of POST /api/verify-batch
type BatchVerifyRequest struct {
	Labels      []BatchLabel `json:"labels"`
	Provider    string       `json:"provider,omitempty"`
	Model       string       `json:"model,omitempty"`
	Concurrency int          `json:"concurrency,omitempty"`
}

// ErrorResponse is the body of every 4xx response
type ErrorResponse struct {
	Error string `json:"error"`
}

// WarningResponse carries the statutory warning for display next to results
type WarningResponse struct {
	Text string `json:"text"`
}
