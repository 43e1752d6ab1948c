package strategy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"counsel/internal/domain"
)

func TestRecommendExcludesGatedRoutes(t *testing.T) {
	// PACE breaches make fight_charge the raw confidence leader, but an
	// unsafe disclosure state excludes it regardless.
	sig := domain.EvidenceSignals{
		CCTVSequence:   domain.SequenceMissing,
		PACECompliance: domain.PACEBreaches,
	}
	scores := ScoreRoutes(sig, false)
	assert.Greater(t, scores[domain.RouteFightCharge].State.Confidence,
		scores[domain.RouteOutcomeManagement].State.Confidence)

	rec := Recommend(scores, domain.DisclosureState{Status: domain.DisclosureUnsafe})
	assert.Equal(t, domain.RouteOutcomeManagement, rec.RouteID)

	joined := strings.Join(rec.Rationale, "\n")
	assert.Contains(t, joined, "fight_charge excluded")
	assert.Contains(t, joined, "unsafe")
}

func TestRecommendRationaleOrderIsStable(t *testing.T) {
	sig := domain.EvidenceSignals{
		CCTVSequence:   domain.SequenceMissing,
		PACECompliance: domain.PACEBreaches,
	}
	scores := ScoreRoutes(sig, false)

	first := Recommend(scores, domain.DisclosureState{Status: domain.DisclosureUnsafe})
	require.GreaterOrEqual(t, len(first.Rationale), 3)
	assert.Contains(t, first.Rationale[0], "fight_charge excluded",
		"exclusions follow the fixed route order")
	assert.Contains(t, first.Rationale[1], "charge_reduction excluded")

	for i := 0; i < 50; i++ {
		again := Recommend(scores, domain.DisclosureState{Status: domain.DisclosureUnsafe})
		require.Equal(t, first.Rationale, again.Rationale, "rationale order must not vary (run %d)", i)
	}
}

func TestRecommendPicksHighestConfidenceWhenSafe(t *testing.T) {
	sig := domain.EvidenceSignals{
		CCTVSequence:   domain.SequenceMissing,
		PACECompliance: domain.PACEBreaches,
	}
	scores := ScoreRoutes(sig, false)

	rec := Recommend(scores, domain.DisclosureState{Status: domain.DisclosureSafe})
	assert.Equal(t, domain.RouteFightCharge, rec.RouteID)
	assert.Equal(t, scores[domain.RouteFightCharge].State.Confidence, rec.Confidence)
	assert.NotEmpty(t, rec.Rationale)
}

func TestRecommendTieBreakUsesRoutePriority(t *testing.T) {
	scores := map[domain.RouteID]routeScore{
		domain.RouteFightCharge:       {State: domain.ConfidenceState{RouteID: domain.RouteFightCharge, Confidence: 50}},
		domain.RouteChargeReduction:   {State: domain.ConfidenceState{RouteID: domain.RouteChargeReduction, Confidence: 50}},
		domain.RouteOutcomeManagement: {State: domain.ConfidenceState{RouteID: domain.RouteOutcomeManagement, Confidence: 50}},
	}
	rec := Recommend(scores, domain.DisclosureState{Status: domain.DisclosureSafe})
	assert.Equal(t, domain.RouteFightCharge, rec.RouteID, "ties break fight_charge > charge_reduction > outcome_management")
}

func TestRecommendNeverEmpty(t *testing.T) {
	// Even with every gated route excluded, outcome management survives.
	scores := ScoreRoutes(domain.EvidenceSignals{}, true)
	rec := Recommend(scores, domain.DisclosureState{Status: domain.DisclosureUnsafe})
	assert.Equal(t, domain.RouteOutcomeManagement, rec.RouteID)
}
