package report

import (
	"fmt"
	"io"

	"github.com/lehigh-university-libraries/labelcheck/internal/verification"
)

// PrintSummary writes batch totals and the issues of every label that did not pass
func PrintSummary(w io.Writer, summary *verification.BatchSummary) {
	fmt.Fprintln(w, "\n========================================")
	fmt.Fprintln(w, "Label Verification Summary")
	fmt.Fprintln(w, "========================================")
	fmt.Fprintf(w, "Total Labels:       %d\n", summary.TotalLabels)
	fmt.Fprintf(w, "Passed:             %d\n", summary.Passed)
	fmt.Fprintf(w, "Failed:             %d\n", summary.Failed)
	fmt.Fprintf(w, "Review Needed:      %d\n", summary.ReviewNeeded)
	fmt.Fprintf(w, "Total Time:         %dms\n", summary.TotalProcessingTimeMs)

	printed := false
	for _, r := range summary.Results {
		if r.Result.OverallStatus == verification.OverallPass {
			continue
		}
		if !printed {
			fmt.Fprintln(w, "\nLabels needing attention:")
			printed = true
		}

		fmt.Fprintf(w, "  %s [%s]\n", r.ImageID, r.Result.OverallStatus)
		if r.Error != "" {
			fmt.Fprintf(w, "    Error: %s\n", r.Error)
		}
		for _, v := range r.Result.VerificationResults {
			if v.Status == verification.StatusMatch {
				continue
			}
			if v.Details != "" {
				fmt.Fprintf(w, "    %s: %s (%s)\n", v.FieldName, v.Status, v.Details)
			} else {
				fmt.Fprintf(w, "    %s: %s\n", v.FieldName, v.Status)
			}
		}
	}
	fmt.Fprintln(w, "========================================")
}

// PrintLabel writes the per-field verdicts of a single label
func PrintLabel(w io.Writer, name string, result *verification.LabelResult) {
	fmt.Fprintf(w, "%s: %s (%dms)\n", name, result.OverallStatus, result.ProcessingTimeMs)
	for _, v := range result.VerificationResults {
		extracted := "<not found>"
		if v.Extracted != nil {
			extracted = *v.Extracted
		}
		fmt.Fprintf(w, "  %-24s %-14s %s\n", v.FieldName, v.Status, extracted)
		if v.Details != "" {
			fmt.Fprintf(w, "  %-24s %-14s %s\n", "", "", v.Details)
		}
	}
}
