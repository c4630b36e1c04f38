package providers

import (
	"context"
)

// Config represents the configuration for a single extraction request
type Config struct {
	Model       string
	Temperature float64
	Prompt      string
	Image       []byte
	MIMEType    string
}

// Provider defines the interface for a vision LLM provider
type Provider interface {
	ExtractText(ctx context.Context, config Config) (string, error)
}
