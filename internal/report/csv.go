package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lehigh-university-libraries/labelcheck/internal/verification"
)

// statusColumns maps each per-field CSV column to the field it reports
var statusColumns = []struct {
	header string
	field  verification.FieldKind
}{
	{"Brand Name Status", verification.BrandName},
	{"Class/Type Status", verification.ClassType},
	{"Alcohol Content Status", verification.AlcoholContent},
	{"Net Contents Status", verification.NetContents},
	{"Producer Status", verification.ProducerNameAddress},
	{"Country of Origin Status", verification.CountryOfOrigin},
	{"Government Warning Status", verification.GovernmentWarning},
}

// Header returns the CSV export header row
func Header() []string {
	header := []string{"Image File", "Overall Status", "Processing Time (ms)"}
	for _, c := range statusColumns {
		header = append(header, c.header)
	}
	return append(header, "Issues")
}

// WriteCSV writes one row per label. Fields that were not verified have an
// empty status cell.
func WriteCSV(w io.Writer, summary *verification.BatchSummary) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header()); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, item := range summary.Results {
		statuses := make(map[verification.FieldKind]verification.Status, len(item.Result.VerificationResults))
		for _, v := range item.Result.VerificationResults {
			statuses[v.Field] = v.Status
		}

		row := []string{
			item.ImageID,
			string(item.Result.OverallStatus),
			strconv.FormatInt(item.Result.ProcessingTimeMs, 10),
		}
		for _, c := range statusColumns {
			row = append(row, string(statuses[c.field]))
		}
		row = append(row, Issues(item.Result))

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", item.ImageID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Issues lists the non-matching fields of a label as "<field>: <status>" joined by "; "
func Issues(result verification.LabelResult) string {
	var issues []string
	for _, v := range result.VerificationResults {
		if v.Status != verification.StatusMatch {
			issues = append(issues, fmt.Sprintf("%s: %s", v.FieldName, v.Status))
		}
	}
	return strings.Join(issues, "; ")
}
