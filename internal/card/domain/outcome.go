package domain

// Outcome is the result of validating a single card number.
type Outcome struct {
	Valid   bool
	Brand   Brand
	Length  int
	Audited bool
}

// BatchResult is the per-row result of a batch validation. CardNumber holds the
// candidate as read from the input and must not be logged or persisted in clear.
// Err is set when the row could not be validated; Valid is false in that case.
type BatchResult struct {
	Row        int
	CardNumber string
	Valid      bool
	Brand      Brand
	Audited    bool
	Err        error
}

// BatchSummary aggregates a batch run.
type BatchSummary struct {
	Total   int
	Valid   int
	Invalid int
	Errors  int
}

// Summarize counts valid, invalid and failed rows.
func Summarize(results []*BatchResult) BatchSummary {
	summary := BatchSummary{Total: len(results)}
	for _, result := range results {
		switch {
		case result.Err != nil:
			summary.Errors++
		case result.Valid:
			summary.Valid++
		default:
			summary.Invalid++
		}
	}
	return summary
}
