package domain

import "time"

// Raw case facts as assembled from persistence. The engine consumes a complete
// snapshot; partial or streamed snapshots are not supported.

type Document struct {
	ID       string
	Name     string
	Text     string
	Metadata string
	AddedAt  time.Time
}

type Charge struct {
	ID      string
	Offence string
	Statute string
}

// TimelineEntry records a disclosure event against a named item.
type TimelineEntry struct {
	Item   string
	Action string // requested|chased|served|reviewed
	Date   time.Time
}

// Dependency is a declared evidential dependency with a solicitor-set status.
type Dependency struct {
	ID     string
	Label  string
	Status string // required|helpful|not_needed
}

// ImpactEntry is an externally supplied evidence-impact note; only its urgency
// text participates in disclosure resolution.
type ImpactEntry struct {
	Item    string
	Urgency string
}

// Commitment is the persisted committed-strategy record. Written elsewhere by
// upsert on case id; the engine only ever reads the latest value.
type Commitment struct {
	CaseID      string
	RouteID     string
	CommittedAt time.Time
}

type Hearing struct {
	Type string // first_hearing|case_management|trial
	Date time.Time
}

// CaseSnapshot is the full input contract for one engine invocation.
type CaseSnapshot struct {
	CaseID             string
	Documents          []Document
	Charges            []Charge
	Timeline           []TimelineEntry
	Dependencies       []Dependency
	ImpactEntries      []ImpactEntry
	Commitment         *Commitment
	Hearings           []Hearing
	DisclosureDeadline *time.Time
	// CanGenerateAnalysis is precomputed externally from document-text-volume
	// diagnostics. When false the engine still answers, marked degraded.
	CanGenerateAnalysis bool
}

// NextHearing returns the earliest hearing on or after now, if any.
func (s CaseSnapshot) NextHearing(now time.Time) (Hearing, bool) {
	var next Hearing
	found := false
	for _, h := range s.Hearings {
		if h.Date.Before(now) {
			continue
		}
		if !found || h.Date.Before(next.Date) {
			next = h
			found = true
		}
	}
	return next, found
}
