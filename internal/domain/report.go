package domain

import "time"

// Failure describes a rename that could not be performed.
type Failure struct {
	Old    string `json:"old"`
	New    string `json:"new"`
	Code   string `json:"code"`
	Reason string `json:"reason"`
}

// Report summarizes a single pass over a directory.
// It is observational output only; nothing reads it back to make decisions.
type Report struct {
	Dir        string    `json:"dir"`
	DryRun     bool      `json:"dry_run"`
	Scanned    int       `json:"scanned"`
	Matched    int       `json:"matched"`
	NoOp       int       `json:"noop"`
	Planned    int       `json:"planned"`
	Renamed    int       `json:"renamed"`
	Skipped    int       `json:"skipped"`
	Failed     int       `json:"failed"`
	Failures   []Failure `json:"failures,omitempty"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// AddFailure records a failed rename.
func (r *Report) AddFailure(f Failure) {
	r.Failures = append(r.Failures, f)
	r.Failed++
}

// Clean reports whether every planned rename was performed.
func (r Report) Clean() bool {
	return r.Failed == 0 && r.Renamed == r.Planned
}
