package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/lehigh-university-libraries/labelcheck/internal/images"
	"github.com/lehigh-university-libraries/labelcheck/internal/report"
	"github.com/lehigh-university-libraries/labelcheck/internal/verification"
	"github.com/spf13/cobra"
)

func newVerifyCmd(flags *globalFlags) *cobra.Command {
	var imagePath string
	var expected verification.ExpectedValues
	var beverageType string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a single label image",
		Long: `Reads a label image with the configured vision model and compares each
field to the values given on the command line. Fields left empty are not
checked; the government warning is always checked.`,
		Example: `  labelcheck verify --image label1.jpg \
    --brand "OLD TOM DISTILLERY" \
    --class "Kentucky Straight Bourbon Whiskey" \
    --alcohol "45% Alc./Vol." \
    --net "750 mL" \
    --producer "Old Tom Distillery, Louisville, KY"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := images.ReadFile(imagePath)
			if err != nil {
				return err
			}
			expected.BeverageType = verification.BeverageType(beverageType)

			result, err := newLabelService().VerifyLabel(cmd.Context(), img, expected, flags.options())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			report.PrintLabel(out, img.Filename, result)
			if result.OverallStatus == verification.OverallFail {
				return fmt.Errorf("label %s failed verification", img.Filename)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&imagePath, "image", "", "Path to the label image (jpeg, png or webp)")
	cmd.Flags().StringVar(&expected.BrandName, "brand", "", "Expected brand name")
	cmd.Flags().StringVar(&expected.ClassType, "class", "", "Expected class/type designation")
	cmd.Flags().StringVar(&expected.AlcoholContent, "alcohol", "", "Expected alcohol content")
	cmd.Flags().StringVar(&expected.NetContents, "net", "", "Expected net contents")
	cmd.Flags().StringVar(&expected.ProducerNameAddress, "producer", "", "Expected producer name and address")
	cmd.Flags().StringVar(&expected.CountryOfOrigin, "country", "", "Expected country of origin (imports only)")
	cmd.Flags().StringVar(&beverageType, "beverage-type", string(verification.Spirits), "Beverage type (wine, beer, or spirits)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full result as JSON")
	_ = cmd.MarkFlagRequired("image")

	return cmd
}
