package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lehigh-university-libraries/labelcheck/internal/verification"
	"gopkg.in/yaml.v3"
)

// RunConfig represents the configuration section of the batch YAML
type RunConfig struct {
	Provider     string `yaml:"provider"`
	Model        string `yaml:"model"`
	Manifest     string `yaml:"manifest"`
	ImageDir     string `yaml:"imagedir"`
	SampleSize   int    `yaml:"samplesize"`
	Concurrency  int    `yaml:"concurrency"`
	TotalLabels  int    `yaml:"totallabels"`
	Passed       int    `yaml:"passed"`
	Failed       int    `yaml:"failed"`
	ReviewNeeded int    `yaml:"reviewneeded"`
	Timestamp    string `yaml:"timestamp"`
}

// LabelRow is one label in the batch YAML
type LabelRow struct {
	ImageID          string                       `yaml:"imageid"`
	OverallStatus    verification.OverallStatus   `yaml:"overallstatus"`
	ProcessingTimeMs int64                        `yaml:"processingtimems"`
	Error            string                       `yaml:"error,omitempty"`
	Issues           string                       `yaml:"issues,omitempty"`
	Fields           []verification.FieldVerdict  `yaml:"fields"`
	Extracted        verification.ExtractedValues `yaml:"extracted"`
}

// BatchSpec is the complete batch YAML document
type BatchSpec struct {
	Config  RunConfig  `yaml:"config"`
	Results []LabelRow `yaml:"results"`
}

// NewBatchSpec builds the YAML document for a batch run
func NewBatchSpec(cfg RunConfig, summary *verification.BatchSummary) BatchSpec {
	cfg.TotalLabels = summary.TotalLabels
	cfg.Passed = summary.Passed
	cfg.Failed = summary.Failed
	cfg.ReviewNeeded = summary.ReviewNeeded
	if cfg.Timestamp == "" {
		cfg.Timestamp = time.Now().Format("2006-01-02_15-04-05")
	}

	spec := BatchSpec{
		Config:  cfg,
		Results: make([]LabelRow, 0, len(summary.Results)),
	}
	for _, r := range summary.Results {
		spec.Results = append(spec.Results, LabelRow{
			ImageID:          r.ImageID,
			OverallStatus:    r.Result.OverallStatus,
			ProcessingTimeMs: r.Result.ProcessingTimeMs,
			Error:            r.Error,
			Issues:           Issues(r.Result),
			Fields:           r.Result.VerificationResults,
			Extracted:        r.Result.ExtractedValues,
		})
	}
	return spec
}

// SaveYAML writes the batch YAML to path, creating parent directories
func SaveYAML(path string, cfg RunConfig, summary *verification.BatchSummary) error {
	data, err := yaml.Marshal(NewBatchSpec(cfg, summary))
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return writeFile(path, data)
}

// SaveJSON writes the batch summary as indented JSON
func SaveJSON(path string, summary *verification.BatchSummary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return writeFile(path, data)
}

// SaveCSV writes the CSV export to path
func SaveCSV(path string, summary *verification.BatchSummary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	if err := WriteCSV(file, summary); err != nil {
		return err
	}
	return file.Close()
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
