package labeling

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lehigh-university-libraries/labelcheck/internal/images"
	"github.com/lehigh-university-libraries/labelcheck/internal/verification"
)

// fakeExtractor returns the image data as the brand name, or fails when the
// data starts with "fail"
type fakeExtractor struct {
	delay    time.Duration
	active   atomic.Int32
	maxSeen  atomic.Int32
	mu       sync.Mutex
	provider string
	model    string
}

func (f *fakeExtractor) ExtractLabel(ctx context.Context, img images.LabelImage, provider, model string) (*verification.ExtractedValues, error) {
	n := f.active.Add(1)
	defer f.active.Add(-1)
	for {
		seen := f.maxSeen.Load()
		if n <= seen || f.maxSeen.CompareAndSwap(seen, n) {
			break
		}
	}

	f.mu.Lock()
	f.provider, f.model = provider, model
	f.mu.Unlock()

	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	data := string(img.Data)
	if strings.HasPrefix(data, "fail") {
		return nil, errors.New("model unavailable")
	}

	warning := verification.GovernmentWarningText
	return &verification.ExtractedValues{
		BrandName:         &data,
		GovernmentWarning: &warning,
	}, nil
}

func item(id, brandOnLabel, expectedBrand string) BatchItem {
	return BatchItem{
		ID:       id,
		Image:    images.LabelImage{Filename: id, MIMEType: "image/png", Data: []byte(brandOnLabel)},
		Expected: verification.ExpectedValues{BrandName: expectedBrand},
	}
}

func TestVerifyLabel(t *testing.T) {
	fake := &fakeExtractor{}
	svc := NewService(fake)

	img := images.LabelImage{Filename: "a.png", Data: []byte("OLD TOM DISTILLERY")}
	result, err := svc.VerifyLabel(context.Background(), img,
		verification.ExpectedValues{BrandName: "Old Tom Distillery"},
		Options{Provider: "ollama", Model: "llava"})
	if err != nil {
		t.Fatalf("VerifyLabel failed: %v", err)
	}

	if result.OverallStatus != verification.OverallPass {
		t.Errorf("Expected pass, got %s", result.OverallStatus)
	}
	if len(result.VerificationResults) != 2 {
		t.Errorf("Expected 2 verdicts (brand + warning), got %d", len(result.VerificationResults))
	}
	if fake.provider != "ollama" || fake.model != "llava" {
		t.Errorf("Expected provider/model to be passed through, got %s/%s", fake.provider, fake.model)
	}
}

func TestVerifyLabelError(t *testing.T) {
	svc := NewService(&fakeExtractor{})

	img := images.LabelImage{Filename: "a.png", Data: []byte("fail")}
	result, err := svc.VerifyLabel(context.Background(), img, verification.ExpectedValues{}, Options{})
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if result != nil {
		t.Errorf("Expected nil result, got %+v", result)
	}
}

func TestVerifyLabelTimeout(t *testing.T) {
	svc := NewService(&fakeExtractor{delay: time.Second})

	img := images.LabelImage{Filename: "slow.png", Data: []byte("SLOW")}
	_, err := svc.VerifyLabel(context.Background(), img, verification.ExpectedValues{}, Options{Timeout: 10 * time.Millisecond})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected deadline exceeded, got %v", err)
	}
}

func TestVerifyBatch(t *testing.T) {
	svc := NewService(&fakeExtractor{})

	items := []BatchItem{
		item("1.png", "OLD TOM DISTILLERY", "Old Tom Distillery"),
		item("2.png", "NEW TOM", "Old Tom Distillery"),
		item("3.png", "fail", "Old Tom Distillery"),
		{ID: "4.png", Err: errors.New("image not found: 4.png")},
		item("5.png", "Stone's Throw", "STONE'S THROW"),
	}

	summary := svc.VerifyBatch(context.Background(), items, Options{Concurrency: 2})

	if summary.TotalLabels != 5 {
		t.Errorf("Expected 5 labels, got %d", summary.TotalLabels)
	}
	if summary.Passed != 2 || summary.Failed != 3 || summary.ReviewNeeded != 0 {
		t.Errorf("Expected 2/3/0, got %d/%d/%d", summary.Passed, summary.Failed, summary.ReviewNeeded)
	}

	for i, it := range items {
		if summary.Results[i].ImageID != it.ID {
			t.Errorf("Result %d: expected %s, got %s", i, it.ID, summary.Results[i].ImageID)
		}
	}

	if summary.Results[2].Result.Success {
		t.Error("Expected extraction failure to produce Success=false")
	}
	if summary.Results[3].Error != "image not found: 4.png" {
		t.Errorf("Expected pre-verification error to be kept, got %q", summary.Results[3].Error)
	}
}

func TestVerifyBatchOrderAndLimit(t *testing.T) {
	fake := &fakeExtractor{delay: 5 * time.Millisecond}
	svc := NewService(fake)

	items := make([]BatchItem, 24)
	for i := range items {
		brand := fmt.Sprintf("BRAND %d", i)
		if i%5 == 0 {
			brand = "fail " + brand
		}
		items[i] = item(fmt.Sprintf("label-%02d.png", i), brand, fmt.Sprintf("Brand %d", i))
	}

	summary := svc.VerifyBatch(context.Background(), items, Options{Concurrency: 3})

	if got := summary.Passed + summary.Failed + summary.ReviewNeeded; got != len(items) {
		t.Errorf("Expected counts to sum to %d, got %d", len(items), got)
	}
	if summary.Failed != 5 {
		t.Errorf("Expected 5 failed, got %d", summary.Failed)
	}
	for i := range items {
		if summary.Results[i].ImageID != items[i].ID {
			t.Errorf("Result %d out of order: %s", i, summary.Results[i].ImageID)
		}
	}
	if peak := fake.maxSeen.Load(); peak > 3 {
		t.Errorf("Expected at most 3 concurrent extractions, saw %d", peak)
	}
}

func TestVerifyBatchEmpty(t *testing.T) {
	summary := NewService(&fakeExtractor{}).VerifyBatch(context.Background(), nil, Options{})
	if summary.TotalLabels != 0 || len(summary.Results) != 0 {
		t.Errorf("Expected empty summary, got %+v", summary)
	}
}
