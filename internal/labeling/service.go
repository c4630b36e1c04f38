package labeling

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lehigh-university-libraries/labelcheck/internal/images"
	"github.com/lehigh-university-libraries/labelcheck/internal/verification"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultTimeout     = 30 * time.Second
	DefaultConcurrency = 4
)

// Extractor reads label fields from an image
type Extractor interface {
	ExtractLabel(ctx context.Context, img images.LabelImage, provider, model string) (*verification.ExtractedValues, error)
}

// Options controls a verification run. Zero values fall back to the defaults.
type Options struct {
	Provider    string
	Model       string
	Timeout     time.Duration
	Concurrency int
}

// BatchItem is one label of a batch. Err records a failure that happened
// before verification, such as an unreadable image.
type BatchItem struct {
	ID       string
	Image    images.LabelImage
	Expected verification.ExpectedValues
	Err      error
}

// Service verifies labels against their application values
type Service struct {
	extractor Extractor
}

func NewService(extractor Extractor) *Service {
	return &Service{extractor: extractor}
}

// VerifyLabel extracts the fields from img and compares them to expected
func (s *Service) VerifyLabel(ctx context.Context, img images.LabelImage, expected verification.ExpectedValues, opts Options) (*verification.LabelResult, error) {
	start := time.Now()

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if w, h, err := images.Dimensions(img); err == nil {
		slog.Debug("Verifying label", "image", img.Filename, "type", img.MIMEType, "width", w, "height", h)
	}

	extracted, err := s.extractor.ExtractLabel(ctx, img, opts.Provider, opts.Model)
	if err != nil {
		return nil, fmt.Errorf("verification failed: %w", err)
	}

	result := verification.NewLabelResult(expected, *extracted)
	result.ProcessingTimeMs = time.Since(start).Milliseconds()

	slog.Info("Label verified",
		"image", img.Filename,
		"status", result.OverallStatus,
		"processingTimeMs", result.ProcessingTimeMs)

	return result, nil
}

// VerifyBatch verifies every item concurrently. A failing label is recorded
// as failed in the summary and never aborts the batch; results keep input order.
func (s *Service) VerifyBatch(ctx context.Context, items []BatchItem, opts Options) *verification.BatchSummary {
	start := time.Now()

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	records := make([]verification.BatchRecord, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, item := range items {
		g.Go(func() error {
			records[i] = verification.BatchRecord{ID: item.ID}

			if item.Err != nil {
				slog.Warn("Skipping label", "id", item.ID, "error", item.Err)
				records[i].Err = item.Err
				return nil
			}

			slog.Info("Processing label", "id", item.ID, "progress", fmt.Sprintf("%d/%d", i+1, len(items)))

			result, err := s.VerifyLabel(gctx, item.Image, item.Expected, opts)
			if err != nil {
				slog.Error("Label verification failed", "id", item.ID, "error", err)
				records[i].Err = err
				return nil
			}
			records[i].Result = result
			return nil
		})
	}
	_ = g.Wait()

	summary := verification.AggregateBatch(records)
	summary.TotalProcessingTimeMs = time.Since(start).Milliseconds()

	slog.Info("Batch verified",
		"total", summary.TotalLabels,
		"passed", summary.Passed,
		"failed", summary.Failed,
		"reviewNeeded", summary.ReviewNeeded,
		"totalProcessingTimeMs", summary.TotalProcessingTimeMs)

	return summary
}
