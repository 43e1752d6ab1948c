package domain

import "time"

// Derived analysis types. Every value here is recomputed fresh per request from
// a CaseSnapshot; nothing persists incrementally. These shapes go straight to
// the presentation layer, hence the JSON tags.

// Enumerated evidence signals. The extractor always assigns the
// missing/unknown variant explicitly; no field is left at the zero value.

type SequenceState string

const (
	SequenceMissing SequenceState = "missing"
	SequencePartial SequenceState = "partial"
	SequenceFull    SequenceState = "full"
)

type Completeness string

const (
	CompletenessUnknown  Completeness = "unknown"
	CompletenessGaps     Completeness = "gaps"
	CompletenessComplete Completeness = "complete"
)

type PACEState string

const (
	PACEUnknown   PACEState = "unknown"
	PACEBreaches  PACEState = "breaches"
	PACECompliant PACEState = "compliant"
)

type Presence string

const (
	EvidenceMissing Presence = "missing"
	EvidencePresent Presence = "present"
)

// EvidenceSignals is the fixed-shape signal bag extracted from raw case facts.
// No field is ever left unset; absence maps to the missing/unknown variant.
type EvidenceSignals struct {
	CCTVSequence           SequenceState `json:"cctv_sequence"`
	BodyWornVideoPresent   bool          `json:"body_worn_video_present"`
	DisclosureCompleteness Completeness  `json:"disclosure_completeness"`
	PACECompliance         PACEState     `json:"pace_compliance"`
	InterviewEvidence      Presence      `json:"interview_evidence"`
	CustodyEvidence        Presence      `json:"custody_evidence"`
	MedicalEvidence        Presence      `json:"medical_evidence"`
}

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// DisclosureItem is one entry of the fixed 7-item catalogue.
type DisclosureItem struct {
	Key      string   `json:"key"`
	Label    string   `json:"label"`
	Severity Severity `json:"severity"`
}

type DisclosureStatus string

const (
	DisclosureSafe                DisclosureStatus = "safe"
	DisclosureConditionallyUnsafe DisclosureStatus = "conditionally_unsafe"
	DisclosureUnsafe              DisclosureStatus = "unsafe"
)

// DisclosureState is the canonical disclosure truth shared by every consumer.
// MissingItems and SatisfiedItems always partition the catalogue exactly.
type DisclosureState struct {
	MissingItems   []DisclosureItem `json:"missing_items"`
	SatisfiedItems []DisclosureItem `json:"satisfied_items"`
	Status         DisclosureStatus `json:"status"`
	Rationale      []string         `json:"rationale"`
	IsSimulated    bool             `json:"is_simulated"`
}

type RouteID string

const (
	RouteFightCharge       RouteID = "fight_charge"
	RouteChargeReduction   RouteID = "charge_reduction"
	RouteOutcomeManagement RouteID = "outcome_management"
)

type StrengthTag string

const (
	StrengthStrong StrengthTag = "strong"
	StrengthViable StrengthTag = "viable"
	StrengthWeak   StrengthTag = "weak"
)

type AttackPath struct {
	Name             string      `json:"name"`
	RequiredEvidence []string    `json:"required_evidence"`
	Strength         StrengthTag `json:"strength_tag"`
}

type StrategyRoute struct {
	RouteID     RouteID      `json:"route_id"`
	AttackPaths []AttackPath `json:"attack_paths"`
	Degraded    bool         `json:"degraded"`
}

type Trend string

const (
	TrendRising  Trend = "rising"
	TrendFalling Trend = "falling"
	TrendStable  Trend = "stable"
)

type ConfidenceState struct {
	RouteID        RouteID  `json:"route_id"`
	Confidence     int      `json:"confidence"`
	Trend          Trend    `json:"trend"`
	FlipConditions []string `json:"flip_conditions"`
}

type Leverage string

const (
	LeverageHigh   Leverage = "high"
	LeverageMedium Leverage = "medium"
	LeverageLow    Leverage = "low"
)

type TimePressureState struct {
	CurrentLeverage     Leverage `json:"current_leverage"`
	LeverageExplanation string   `json:"leverage_explanation"`
	DaysToHearing       *int     `json:"days_to_hearing,omitempty"`
}

type DecisionCheckpoint struct {
	Priority        int    `json:"priority"`
	GatingCondition string `json:"gating_condition"`
	Action          string `json:"action"`
	Satisfied       bool   `json:"satisfied"`
}

type Recommendation struct {
	RouteID        RouteID  `json:"route_id"`
	Confidence     int      `json:"confidence"`
	Rationale      []string `json:"rationale"`
	FlipConditions []string `json:"flip_conditions"`
}

// ImpactedPath names one attack path blocked by a missing disclosure item.
type ImpactedPath struct {
	RouteID RouteID `json:"route_id"`
	Path    string  `json:"path"`
	Impact  string  `json:"impact"`
}

// EvidenceImpact reverse-indexes one missing item to the paths it blocks.
type EvidenceImpact struct {
	Item         DisclosureItem `json:"item"`
	BlockedPaths []ImpactedPath `json:"blocked_paths"`
	UnblockCount int            `json:"unblock_count"`
}

// EvidenceImpactMap carries the full reverse index plus the ranked shortlist
// of the most valuable missing evidence.
type EvidenceImpactMap struct {
	Impacts   []EvidenceImpact `json:"impacts"`
	Shortlist []string         `json:"most_valuable_missing"`
}

type HearingScript struct {
	HearingType  string   `json:"hearing_type"`
	Checklist    []string `json:"checklist"`
	AsksOfCourt  []string `json:"asks_of_court"`
	DoNotConcede []string `json:"do_not_concede"`
}

// StrategyAnalysis is the single aggregate handed to the presentation layer.
// The shape is fixed for every outcome, degraded included.
type StrategyAnalysis struct {
	CaseID              string                      `json:"case_id"`
	Signals             EvidenceSignals             `json:"signals"`
	DisclosureState     DisclosureState             `json:"disclosure_state"`
	Routes              []StrategyRoute             `json:"routes"`
	EvidenceImpactMap   EvidenceImpactMap           `json:"evidence_impact_map"`
	TimePressure        TimePressureState           `json:"time_pressure"`
	ConfidenceStates    map[RouteID]ConfidenceState `json:"confidence_states"`
	Recommendation      Recommendation              `json:"recommendation"`
	DecisionCheckpoints []DecisionCheckpoint        `json:"decision_checkpoints"`
	HearingScripts      []HearingScript             `json:"hearing_scripts"`
	Commitment          *Commitment                 `json:"commitment,omitempty"`
	Banner              string                      `json:"banner,omitempty"`
	GeneratedAt         time.Time                   `json:"generated_at"`
}

// ChaseItem is one row of the persisted missing-evidence chase list.
type ChaseItem struct {
	ItemKey      string   `json:"item_key"`
	Label        string   `json:"label"`
	Severity     Severity `json:"severity"`
	UnblockCount int      `json:"unblock_count"`
	Rank         int      `json:"rank"`
}
