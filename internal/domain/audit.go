package domain

import "time"

// AuditStatus summarizes the outcome of a warehouse audit run
type AuditStatus string

const (
	AuditStatusClean    AuditStatus = "clean"
	AuditStatusFindings AuditStatus = "findings"
)

// AuditReport is the result of one warehouse audit run.
// Coverage gaps are picks with no asset rows for a registered team: they are
// absent from every view, so they are reported here instead.
type AuditReport struct {
	RunID              string      `json:"run_id"`
	Status             AuditStatus `json:"status"`
	StartedAt          time.Time   `json:"started_at"`
	FinishedAt         time.Time   `json:"finished_at"`
	Years              []int       `json:"years"`
	TeamCount          int         `json:"team_count"`
	RowCount           int         `json:"row_count"`
	PickCount          int         `json:"pick_count"`
	CoverageGaps       []string    `json:"coverage_gaps"`
	NeedsReview        []string    `json:"needs_review"`
	MissingEndnoteRefs []int64     `json:"missing_endnote_refs"`
	RefreshedAt        *time.Time  `json:"refreshed_at,omitempty"`
}

// HasFindings reports whether the audit found anything worth a look
func (r *AuditReport) HasFindings() bool {
	return len(r.CoverageGaps) > 0 || len(r.NeedsReview) > 0 || len(r.MissingEndnoteRefs) > 0
}
