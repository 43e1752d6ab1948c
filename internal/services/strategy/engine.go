package strategy

import (
	"github.com/jonboulle/clockwork"

	"counsel/internal/domain"
)

// DegradedBanner annotates aggregates computed while analysis is gated on
// insufficient extracted text. The response shape is unchanged; consumers
// never special-case a different shape for sparse evidence.
const DegradedBanner = "Analysis generated from limited extracted text; routes are marked degraded and conclusions are provisional."

// Service runs the full strategy pipeline over a case snapshot. It is a
// synchronous, side-effect-free computation: safe for concurrent use, no
// shared mutable state, nothing persisted between invocations. The clock is
// injected so date math is deterministic under test.
type Service struct {
	clock clockwork.Clock
}

func New(clock clockwork.Clock) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Service{clock: clock}
}

// Analyse recomputes the complete strategy aggregate from the snapshot.
// Identical snapshots at the same clock reading produce identical output.
func (s *Service) Analyse(snap domain.CaseSnapshot) domain.StrategyAnalysis {
	now := s.clock.Now()

	sig := ExtractSignals(snap)
	disc := ResolveDisclosure(snap)
	routes := GenerateRoutes(sig, disc, snap.CanGenerateAnalysis)
	scores := ScoreRoutes(sig, !snap.CanGenerateAnalysis)
	impact := BuildImpactMap(disc, routes)
	pressure := ComputeTimePressure(snap, now)
	rec := Recommend(scores, disc)
	checkpoints := GenerateCheckpoints(rec.RouteID, disc, sig, pressure)
	scripts := BuildHearingScripts(snap, disc, routes)

	states := make(map[domain.RouteID]domain.ConfidenceState, len(scores))
	for id, sc := range scores {
		states[id] = sc.State
	}

	analysis := domain.StrategyAnalysis{
		CaseID:              snap.CaseID,
		Signals:             sig,
		DisclosureState:     disc,
		Routes:              routes,
		EvidenceImpactMap:   impact,
		TimePressure:        pressure,
		ConfidenceStates:    states,
		Recommendation:      rec,
		DecisionCheckpoints: checkpoints,
		HearingScripts:      scripts,
		Commitment:          snap.Commitment,
		GeneratedAt:         now,
	}
	if !snap.CanGenerateAnalysis {
		analysis.Banner = DegradedBanner
	}
	return analysis
}
