package strategy

import (
	"fmt"
	"sort"

	"counsel/internal/domain"
)

// Per-route base confidence before signal adjustments. Outcome management
// starts highest: it is the route least dependent on evidence breaking the
// defence's way.
var baseConfidence = map[domain.RouteID]int{
	domain.RouteFightCharge:       35,
	domain.RouteChargeReduction:   45,
	domain.RouteOutcomeManagement: 60,
}

// routePriority breaks confidence ties; lower is preferred.
var routePriority = map[domain.RouteID]int{
	domain.RouteFightCharge:       0,
	domain.RouteChargeReduction:   1,
	domain.RouteOutcomeManagement: 2,
}

// degradedPenalty applies when analysis is gated on insufficient text.
const degradedPenalty = 20

// adjustment is one row of the fixed confidence table: when the predicate
// holds, the route's confidence shifts by delta for the stated reason.
type adjustment struct {
	route  domain.RouteID
	when   func(domain.EvidenceSignals) bool
	delta  int
	reason string
}

var adjustments = []adjustment{
	{domain.RouteFightCharge, func(s domain.EvidenceSignals) bool { return s.PACECompliance == domain.PACEBreaches },
		+20, "PACE breaches open an exclusion argument against the interview and custody evidence"},
	{domain.RouteFightCharge, func(s domain.EvidenceSignals) bool { return s.PACECompliance == domain.PACECompliant },
		-10, "a compliant PACE record closes off procedural exclusion arguments"},
	{domain.RouteFightCharge, func(s domain.EvidenceSignals) bool { return s.CCTVSequence == domain.SequenceMissing },
		+15, "no CCTV of the incident window weakens the prosecution account"},
	{domain.RouteFightCharge, func(s domain.EvidenceSignals) bool { return s.CCTVSequence == domain.SequenceFull },
		-15, "full-window CCTV strengthens the prosecution account"},
	{domain.RouteFightCharge, func(s domain.EvidenceSignals) bool { return s.BodyWornVideoPresent },
		-5, "body-worn video corroborates the arrest narrative"},
	{domain.RouteFightCharge, func(s domain.EvidenceSignals) bool { return s.DisclosureCompleteness == domain.CompletenessGaps },
		+10, "disclosure gaps support failure-of-disclosure applications"},
	{domain.RouteFightCharge, func(s domain.EvidenceSignals) bool { return s.InterviewEvidence == domain.EvidenceMissing },
		+5, "no interview account for the defendant to be held to"},

	{domain.RouteChargeReduction, func(s domain.EvidenceSignals) bool { return s.MedicalEvidence == domain.EvidencePresent },
		+10, "medical evidence allows the injury severity to be re-characterised"},
	{domain.RouteChargeReduction, func(s domain.EvidenceSignals) bool { return s.CCTVSequence == domain.SequencePartial },
		+5, "partial CCTV leaves the incident narrative open to reframing"},
	{domain.RouteChargeReduction, func(s domain.EvidenceSignals) bool { return s.PACECompliance == domain.PACEBreaches },
		+5, "procedural pressure gives leverage in charge negotiation"},
	{domain.RouteChargeReduction, func(s domain.EvidenceSignals) bool { return s.DisclosureCompleteness == domain.CompletenessGaps },
		+5, "outstanding disclosure gives leverage in charge negotiation"},

	{domain.RouteOutcomeManagement, func(s domain.EvidenceSignals) bool { return s.CCTVSequence == domain.SequenceFull },
		+10, "strong prosecution CCTV favours managing the outcome"},
	{domain.RouteOutcomeManagement, func(s domain.EvidenceSignals) bool { return s.BodyWornVideoPresent },
		+5, "body-worn video favours early outcome management"},
	{domain.RouteOutcomeManagement, func(s domain.EvidenceSignals) bool { return s.InterviewEvidence == domain.EvidencePresent },
		+5, "an interview account on record narrows trial options"},
	{domain.RouteOutcomeManagement, func(s domain.EvidenceSignals) bool { return s.PACECompliance == domain.PACEBreaches },
		-5, "procedural breaches make an early plea premature"},
}

// routeScore carries the confidence state plus the explanations of every
// adjustment that fired; the recommendation engine reuses the explanations
// as its rationale.
type routeScore struct {
	State   domain.ConfidenceState
	Reasons []string
}

// scoreRoute computes one route's confidence from the base and adjustment
// tables, clamped to [0,100]. Trend reflects the net signal pressure on the
// route, not persisted history.
func scoreRoute(id domain.RouteID, sig domain.EvidenceSignals, degraded bool) routeScore {
	conf := baseConfidence[id]
	net := 0
	var reasons []string
	for _, a := range adjustments {
		if a.route != id || !a.when(sig) {
			continue
		}
		conf += a.delta
		net += a.delta
		reasons = append(reasons, fmt.Sprintf("%+d: %s", a.delta, a.reason))
	}
	if degraded {
		conf -= degradedPenalty
		reasons = append(reasons, fmt.Sprintf("%+d: insufficient extracted text; confidence capped", -degradedPenalty))
	}
	conf = clamp(conf)

	trend := domain.TrendStable
	switch {
	case net > 0:
		trend = domain.TrendRising
	case net < 0:
		trend = domain.TrendFalling
	}

	return routeScore{
		State: domain.ConfidenceState{
			RouteID:        id,
			Confidence:     conf,
			Trend:          trend,
			FlipConditions: []string{},
		},
		Reasons: reasons,
	}
}

// ScoreRoutes scores all three routes and fills flip conditions: the leader
// carries the runner-up's overtake conditions, and each trailing route
// carries the single-signal changes that would put it ahead of the leader.
func ScoreRoutes(sig domain.EvidenceSignals, degraded bool) map[domain.RouteID]routeScore {
	scores := map[domain.RouteID]routeScore{}
	for id := range baseConfidence {
		scores[id] = scoreRoute(id, sig, degraded)
	}

	order := rankRoutes(scores)
	leader, runnerUp := order[0], order[1]

	for _, id := range order[1:] {
		sc := scores[id]
		sc.State.FlipConditions = flipConditions(leader, id, sig, degraded)
		scores[id] = sc
	}
	lead := scores[leader]
	lead.State.FlipConditions = scores[runnerUp].State.FlipConditions
	scores[leader] = lead

	return scores
}

// rankRoutes orders route ids by confidence descending, ties by the fixed
// route priority.
func rankRoutes(scores map[domain.RouteID]routeScore) []domain.RouteID {
	ids := make([]domain.RouteID, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		si, sj := scores[ids[i]].State.Confidence, scores[ids[j]].State.Confidence
		if si != sj {
			return si > sj
		}
		return routePriority[ids[i]] < routePriority[ids[j]]
	})
	return ids
}

// signalChange is one candidate single-signal mutation used for flip
// analysis. Each is a literal signal-threshold statement.
type signalChange struct {
	statement string
	applies   func(domain.EvidenceSignals) bool // false when already the case
	apply     func(domain.EvidenceSignals) domain.EvidenceSignals
}

var signalChanges = []signalChange{
	{"paceCompliance becomes breaches",
		func(s domain.EvidenceSignals) bool { return s.PACECompliance != domain.PACEBreaches },
		func(s domain.EvidenceSignals) domain.EvidenceSignals { s.PACECompliance = domain.PACEBreaches; return s }},
	{"paceCompliance becomes compliant",
		func(s domain.EvidenceSignals) bool { return s.PACECompliance != domain.PACECompliant },
		func(s domain.EvidenceSignals) domain.EvidenceSignals { s.PACECompliance = domain.PACECompliant; return s }},
	{"cctvSequence becomes full",
		func(s domain.EvidenceSignals) bool { return s.CCTVSequence != domain.SequenceFull },
		func(s domain.EvidenceSignals) domain.EvidenceSignals { s.CCTVSequence = domain.SequenceFull; return s }},
	{"cctvSequence becomes partial",
		func(s domain.EvidenceSignals) bool { return s.CCTVSequence != domain.SequencePartial },
		func(s domain.EvidenceSignals) domain.EvidenceSignals { s.CCTVSequence = domain.SequencePartial; return s }},
	{"cctvSequence becomes missing",
		func(s domain.EvidenceSignals) bool { return s.CCTVSequence != domain.SequenceMissing },
		func(s domain.EvidenceSignals) domain.EvidenceSignals { s.CCTVSequence = domain.SequenceMissing; return s }},
	{"bodyWornVideoPresent becomes true",
		func(s domain.EvidenceSignals) bool { return !s.BodyWornVideoPresent },
		func(s domain.EvidenceSignals) domain.EvidenceSignals { s.BodyWornVideoPresent = true; return s }},
	{"bodyWornVideoPresent becomes false",
		func(s domain.EvidenceSignals) bool { return s.BodyWornVideoPresent },
		func(s domain.EvidenceSignals) domain.EvidenceSignals { s.BodyWornVideoPresent = false; return s }},
	{"disclosureCompleteness becomes gaps",
		func(s domain.EvidenceSignals) bool { return s.DisclosureCompleteness != domain.CompletenessGaps },
		func(s domain.EvidenceSignals) domain.EvidenceSignals {
			s.DisclosureCompleteness = domain.CompletenessGaps
			return s
		}},
	{"disclosureCompleteness becomes complete",
		func(s domain.EvidenceSignals) bool { return s.DisclosureCompleteness != domain.CompletenessComplete },
		func(s domain.EvidenceSignals) domain.EvidenceSignals {
			s.DisclosureCompleteness = domain.CompletenessComplete
			return s
		}},
	{"interviewEvidence becomes present",
		func(s domain.EvidenceSignals) bool { return s.InterviewEvidence != domain.EvidencePresent },
		func(s domain.EvidenceSignals) domain.EvidenceSignals { s.InterviewEvidence = domain.EvidencePresent; return s }},
	{"interviewEvidence becomes missing",
		func(s domain.EvidenceSignals) bool { return s.InterviewEvidence != domain.EvidenceMissing },
		func(s domain.EvidenceSignals) domain.EvidenceSignals { s.InterviewEvidence = domain.EvidenceMissing; return s }},
	{"medicalEvidence becomes present",
		func(s domain.EvidenceSignals) bool { return s.MedicalEvidence != domain.EvidencePresent },
		func(s domain.EvidenceSignals) domain.EvidenceSignals { s.MedicalEvidence = domain.EvidencePresent; return s }},
}

// flipConditions finds the minimal (single-signal) changes under which the
// challenger's confidence would exceed the leader's, expressed as literal
// signal statements.
func flipConditions(leader, challenger domain.RouteID, sig domain.EvidenceSignals, degraded bool) []string {
	out := []string{}
	for _, ch := range signalChanges {
		if !ch.applies(sig) {
			continue
		}
		mutated := ch.apply(sig)
		lead := scoreRoute(leader, mutated, degraded).State.Confidence
		chall := scoreRoute(challenger, mutated, degraded).State.Confidence
		if chall > lead {
			out = append(out, fmt.Sprintf("if %s, %s would reach %d and overtake %s at %d",
				ch.statement, challenger, chall, leader, lead))
		}
	}
	return out
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
