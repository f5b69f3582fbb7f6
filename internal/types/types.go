package types

// LogRow maps trimmed header names to cell values for one row of the
// trading log. Missing cells read as "".
type LogRow map[string]string

// DailySummary aggregates one local calendar day of log rows.
type DailySummary struct {
	BoughtCount int     `json:"bought_count"`
	TotalProfit float64 `json:"total_profit"`
}

// RunResult describes a single notifier run.
type RunResult struct {
	Summary DailySummary `json:"summary"`
	Subject string       `json:"subject"`
	Rows    int          `json:"rows"`
	Sent    bool         `json:"sent"`
	Skipped bool         `json:"skipped"`
}
