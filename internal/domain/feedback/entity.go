package feedback

import "time"

// ReportID identifier type
type ReportID string

// Report is a user correction for a previously analyzed URL. It is
// consumed once by the trainer; persistence is an optional audit trail,
// never read back by the pipeline.
type Report struct {
	ID          ReportID  `json:"id"`
	URL         string    `json:"url"`
	IsMalicious bool      `json:"is_malicious"`
	TrainerOut  string    `json:"trainer_out,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
