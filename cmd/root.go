package cmd

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lehigh-university-libraries/labelcheck/internal/extraction"
	"github.com/lehigh-university-libraries/labelcheck/internal/labeling"
	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand
type globalFlags struct {
	provider string
	model    string
	timeout  time.Duration
	verbose  bool
}

func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "labelcheck",
		Short: "Alcohol beverage label verification with LLM-powered text extraction",
		Long: `Labelcheck verifies that the text on an alcohol beverage label matches the
values declared on its regulatory application.

A vision model (Gemini, OpenAI or Ollama) reads the label; each field is then
compared to the expected value and the label is marked pass, fail or
review_needed. The government health warning is always checked word-for-word.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			logLevel := slog.LevelInfo
			if flags.verbose {
				logLevel = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
			slog.SetDefault(logger)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.provider, "provider", "", "LLM provider (gemini, openai, or ollama; defaults to $LABELCHECK_PROVIDER or gemini)")
	cmd.PersistentFlags().StringVar(&flags.model, "model", "", "Model name (defaults to provider's default)")
	cmd.PersistentFlags().DurationVar(&flags.timeout, "timeout", labeling.DefaultTimeout, "Per-label extraction timeout")
	cmd.PersistentFlags().BoolVar(&flags.verbose, "verbose", false, "Verbose logging")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newVerifyCmd(flags))
	cmd.AddCommand(newBatchCmd(flags))
	cmd.AddCommand(newTemplateCmd())

	return cmd
}

func (f *globalFlags) options() labeling.Options {
	return labeling.Options{
		Provider: f.provider,
		Model:    f.model,
		Timeout:  f.timeout,
	}
}

func newLabelService() *labeling.Service {
	return labeling.NewService(extraction.NewService())
}
