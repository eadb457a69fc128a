package domain

import "time"

// ColumnMapping pairs one source column with the lead field it feeds.
// An empty LeadField means the column is deliberately ignored.
type ColumnMapping struct {
	CSVColumn string `json:"csvColumn"`
	LeadField string `json:"leadField"`
}

// CandidateRecord is a normalized lead candidate built from one source row.
// Absent keys mean the row did not provide the field, which is distinct
// from an explicit empty value.
type CandidateRecord map[string]string

// RowFailure describes one source row that could not be imported. Row is
// the 1-indexed line number in the original file, counting the header, so
// the first data row is row 2.
type RowFailure struct {
	Row   int               `json:"row"`
	Data  map[string]string `json:"data"`
	Error string            `json:"error"`
}

// ImportReport is the aggregate outcome of one import batch. Successful
// rows are represented only by their count to bound response size.
type ImportReport struct {
	Message           string       `json:"message"`
	SuccessfulImports int          `json:"successful_imports"`
	FailedImports     int          `json:"failed_imports"`
	Warnings          []string     `json:"warnings"`
	Failures          []RowFailure `json:"failures"`
}

// ImportRunStatus classifies a finished import run.
type ImportRunStatus string

const (
	ImportRunCompleted           ImportRunStatus = "completed"
	ImportRunCompletedWithErrors ImportRunStatus = "completed_with_errors"
	ImportRunFailed              ImportRunStatus = "failed"
)

// ImportRun is the persisted history record of one import batch.
type ImportRun struct {
	ID           string          `json:"id"`
	TenantID     string          `json:"tenant_id"`
	UserID       string          `json:"user_id"`
	Filename     string          `json:"filename"`
	Status       ImportRunStatus `json:"status"`
	SuccessCount int             `json:"success_count"`
	FailureCount int             `json:"failure_count"`
	WarningCount int             `json:"warning_count"`
	CreatedAt    time.Time       `json:"created_at"`
}
