package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lehigh-university-libraries/labelcheck/internal/extraction"
	"github.com/lehigh-university-libraries/labelcheck/internal/images"
	"github.com/lehigh-university-libraries/labelcheck/internal/labeling"
	"github.com/lehigh-university-libraries/labelcheck/internal/manifest"
	"github.com/lehigh-university-libraries/labelcheck/internal/report"
	"github.com/spf13/cobra"
)

func newBatchCmd(flags *globalFlags) *cobra.Command {
	var manifestPath string
	var imageDir string
	var sampleSize int
	var concurrency int
	var outputJSON string
	var outputCSV string
	var outputYAML string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Verify every label listed in a manifest",
		Long: `Verifies a batch of labels. The manifest (.csv, .jsonl or .parquet) has one
row per label with the expected values and the image file name; images are
read from --images. Use "labelcheck template" for a starting CSV.

A label that cannot be read or extracted is counted as failed; the batch
always runs to completion.`,
		Example: `  # Verify all labels in a CSV manifest
  labelcheck batch --manifest labels.csv --images ./labels

  # Verify the first 10 labels with OpenAI and save a CSV report
  labelcheck batch --manifest labels.csv --images ./labels --sample 10 \
    --provider openai --output-csv results.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(manifestPath); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("manifest file not found: %s\n\nCreate one with:\n  labelcheck template > labels.csv", manifestPath)
			}

			rows, err := manifest.NewLoader(manifestPath).LoadSample(sampleSize)
			if err != nil {
				return fmt.Errorf("failed to load manifest: %w", err)
			}
			slog.Info("Manifest loaded", "path", manifestPath, "labels", len(rows))

			items := make([]labeling.BatchItem, len(rows))
			for i, row := range rows {
				items[i] = labeling.BatchItem{ID: row.ImageFileName, Expected: row.Expected()}
				if row.ImageFileName == "" {
					items[i].ID = fmt.Sprintf("row-%d", i+1)
					items[i].Err = errors.New("no imageFileName in manifest row")
					continue
				}
				items[i].Image, items[i].Err = images.ReadFile(filepath.Join(imageDir, row.ImageFileName))
			}

			opts := flags.options()
			opts.Concurrency = concurrency
			summary := newLabelService().VerifyBatch(cmd.Context(), items, opts)

			report.PrintSummary(cmd.OutOrStdout(), summary)

			if outputJSON != "" {
				if err := report.SaveJSON(outputJSON, summary); err != nil {
					return err
				}
				slog.Info("Results saved", "format", "json", "path", outputJSON)
			}
			if outputCSV != "" {
				if err := report.SaveCSV(outputCSV, summary); err != nil {
					return err
				}
				slog.Info("Results saved", "format", "csv", "path", outputCSV)
			}
			if outputYAML != "" {
				provider := extraction.ResolveProvider(flags.provider)
				model := flags.model
				if model == "" {
					model = extraction.DefaultModel(provider)
				}
				cfg := report.RunConfig{
					Provider:    provider,
					Model:       model,
					Manifest:    manifestPath,
					ImageDir:    imageDir,
					SampleSize:  sampleSize,
					Concurrency: concurrency,
				}
				if err := report.SaveYAML(outputYAML, cfg, summary); err != nil {
					return err
				}
				slog.Info("Results saved", "format", "yaml", "path", outputYAML)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&manifestPath, "manifest", "labels.csv", "Path to the batch manifest (.csv, .jsonl, or .parquet)")
	cmd.Flags().StringVar(&imageDir, "images", ".", "Directory containing the label images")
	cmd.Flags().IntVar(&sampleSize, "sample", 0, "Number of labels to verify (0 for all)")
	cmd.Flags().IntVar(&concurrency, "concurrency", labeling.DefaultConcurrency, "Labels verified in parallel")
	cmd.Flags().StringVar(&outputJSON, "output-json", "", "Path to write the JSON batch summary")
	cmd.Flags().StringVar(&outputCSV, "output-csv", "", "Path to write the CSV export")
	cmd.Flags().StringVar(&outputYAML, "output-yaml", "", "Path to write the YAML batch report")

	return cmd
}
