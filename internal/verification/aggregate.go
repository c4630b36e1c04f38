package verification

// Aggregate derives a label's overall status from its field verdicts.
// Any mismatch or not_found fails the label; otherwise any partial_match
// needs review; otherwise it passes. An empty list passes.
func Aggregate(verdicts []FieldVerdict) OverallStatus {
	failed := false
	partial := false

	for _, v := range verdicts {
		switch v.Status {
		case StatusMismatch, StatusNotFound:
			failed = true
		case StatusPartialMatch:
			partial = true
		}
	}

	switch {
	case failed:
		return OverallFail
	case partial:
		return OverallReviewNeeded
	default:
		return OverallPass
	}
}

// NewLabelResult compares all fields of a label and builds its result
func NewLabelResult(expected ExpectedValues, extracted ExtractedValues) *LabelResult {
	verdicts := VerifyFields(expected, extracted)
	return &LabelResult{
		Success:             true,
		ExtractedValues:     extracted,
		VerificationResults: verdicts,
		OverallStatus:       Aggregate(verdicts),
	}
}

// AggregateBatch counts labels by overall status, keeping input order.
// A record whose pipeline failed is counted as failed with an empty verdict
// list, so the number of results always equals the number of records.
func AggregateBatch(records []BatchRecord) *BatchSummary {
	summary := &BatchSummary{
		TotalLabels: len(records),
		Results:     make([]BatchResult, 0, len(records)),
	}

	for _, record := range records {
		if record.Err != nil || record.Result == nil {
			entry := BatchResult{
				ImageID: record.ID,
				Result:  failedResult(),
			}
			if record.Err != nil {
				entry.Error = record.Err.Error()
			}
			summary.Results = append(summary.Results, entry)
			summary.Failed++
			continue
		}

		result := *record.Result
		if result.VerificationResults == nil {
			result.VerificationResults = []FieldVerdict{}
		}
		summary.Results = append(summary.Results, BatchResult{
			ImageID: record.ID,
			Result:  result,
		})

		switch result.OverallStatus {
		case OverallPass:
			summary.Passed++
		case OverallReviewNeeded:
			summary.ReviewNeeded++
		default:
			summary.Failed++
		}
	}

	return summary
}

func failedResult() LabelResult {
	return LabelResult{
		Success:             false,
		VerificationResults: []FieldVerdict{},
		OverallStatus:       OverallFail,
	}
}
