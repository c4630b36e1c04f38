package cmd

import (
	"fmt"

	"github.com/lehigh-university-libraries/labelcheck/internal/manifest"
	"github.com/spf13/cobra"
)

func newTemplateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "template",
		Short:   "Print the batch manifest CSV template",
		Example: `  labelcheck template > labels.csv`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), manifest.Template())
			return err
		},
	}
}
