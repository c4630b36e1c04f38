package extraction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lehigh-university-libraries/labelcheck/internal/gemini"
	"github.com/lehigh-university-libraries/labelcheck/internal/images"
	"github.com/lehigh-university-libraries/labelcheck/internal/ollama"
	"github.com/lehigh-university-libraries/labelcheck/internal/openai"
	"github.com/lehigh-university-libraries/labelcheck/internal/providers"
	"github.com/lehigh-university-libraries/labelcheck/internal/verification"
)

// DefaultProvider is used when neither the request nor LABELCHECK_PROVIDER names one
const DefaultProvider = "gemini"

// Temperature is kept low for consistent, factual output
const Temperature = 0.1

var ErrUnsupportedProvider = errors.New("unsupported provider")

// Service turns a label image into extracted field values using a vision model
type Service struct {
	providers map[string]providers.Provider
}

// NewService registers the gemini, openai and ollama providers
func NewService() *Service {
	return NewServiceWithProviders(map[string]providers.Provider{
		"gemini": gemini.New(),
		"openai": openai.New(),
		"ollama": ollama.New(),
	})
}

// NewServiceWithProviders builds a service over an explicit provider set
func NewServiceWithProviders(p map[string]providers.Provider) *Service {
	return &Service{providers: p}
}

// ResolveProvider returns provider, falling back to LABELCHECK_PROVIDER and then DefaultProvider
func ResolveProvider(provider string) string {
	if provider != "" {
		return provider
	}
	if provider = os.Getenv("LABELCHECK_PROVIDER"); provider != "" {
		return provider
	}
	return DefaultProvider
}

// DefaultModel returns the model used for provider when none is requested
func DefaultModel(provider string) string {
	switch provider {
	case "gemini":
		model := os.Getenv("GEMINI_MODEL")
		if model == "" {
			return "gemini-3-flash-preview"
		}
		return model
	case "openai":
		model := os.Getenv("OPENAI_MODEL")
		if model == "" {
			return "gpt-4o"
		}
		return model
	case "ollama":
		model := os.Getenv("OLLAMA_MODEL")
		if model == "" {
			return "mistral-small3.2:24b"
		}
		return model
	default:
		return ""
	}
}

// ExtractLabel reads the label fields from img. Empty provider and model use the defaults.
func (s *Service) ExtractLabel(ctx context.Context, img images.LabelImage, provider, model string) (*verification.ExtractedValues, error) {
	provider = ResolveProvider(provider)
	p, ok := s.providers[provider]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, provider)
	}
	if model == "" {
		model = DefaultModel(provider)
	}

	start := time.Now()
	response, err := p.ExtractText(ctx, providers.Config{
		Model:       model,
		Temperature: Temperature,
		Prompt:      Prompt,
		Image:       img.Data,
		MIMEType:    img.MIMEType,
	})
	if err != nil {
		return nil, fmt.Errorf("%s extraction failed: %w", provider, err)
	}

	extracted, err := ParseResponse(response)
	if err != nil {
		slog.Error("Could not parse extraction response", "provider", provider, "model", model, "response", response)
		return nil, err
	}

	slog.Info("Extracted label fields",
		"provider", provider,
		"model", model,
		"image", img.Filename,
		"duration", time.Since(start))

	return extracted, nil
}
