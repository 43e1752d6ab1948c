package strategy

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"counsel/internal/domain"
)

func TestBuildHearingScriptsDefaults(t *testing.T) {
	snap := domain.CaseSnapshot{}
	disc := ResolveDisclosure(snap)
	routes := GenerateRoutes(ExtractSignals(snap), disc, true)

	scripts := BuildHearingScripts(snap, disc, routes)
	require.Len(t, scripts, 2, "no listed hearings falls back to the default early hearing types")
	assert.Equal(t, "first_hearing", scripts[0].HearingType)
	assert.Equal(t, "case_management", scripts[1].HearingType)
}

func TestBuildHearingScriptsCaps(t *testing.T) {
	snap := domain.CaseSnapshot{
		Hearings: []domain.Hearing{{Type: "first_hearing", Date: time.Now().AddDate(0, 0, 7)}},
	}
	disc := ResolveDisclosure(snap) // all 7 missing: plenty of candidate lines
	routes := GenerateRoutes(ExtractSignals(snap), disc, true)

	for _, script := range BuildHearingScripts(snap, disc, routes) {
		assert.LessOrEqual(t, len(script.Checklist), 6)
		assert.LessOrEqual(t, len(script.AsksOfCourt), 5)
		assert.LessOrEqual(t, len(script.DoNotConcede), 4)
	}
}

func TestBuildHearingScriptsInjections(t *testing.T) {
	snap := domain.CaseSnapshot{
		Hearings: []domain.Hearing{{Type: "case_management", Date: time.Now().AddDate(0, 0, 7)}},
	}
	disc := ResolveDisclosure(snap)
	routes := GenerateRoutes(ExtractSignals(snap), disc, true) // CCTV missing: identification challenge present

	scripts := BuildHearingScripts(snap, disc, routes)
	require.Len(t, scripts, 1)
	asks := strings.Join(scripts[0].AsksOfCourt, "\n")
	assert.Contains(t, asks, "Request directions for service of")
	assert.Contains(t, asks, "Turnbull")
}

func TestBuildHearingScriptsOmitsDirectionsWhenSatisfied(t *testing.T) {
	var snap domain.CaseSnapshot
	snap.Hearings = []domain.Hearing{{Type: "trial", Date: time.Now().AddDate(0, 0, 30)}}
	for _, it := range Catalogue() {
		snap.Timeline = append(snap.Timeline, domain.TimelineEntry{Item: it.Label, Action: "served"})
	}
	disc := ResolveDisclosure(snap)
	sig := ExtractSignals(snap)
	sig.CCTVSequence = domain.SequenceFull
	routes := GenerateRoutes(sig, disc, true) // no identification challenge

	scripts := BuildHearingScripts(snap, disc, routes)
	require.Len(t, scripts, 1)
	asks := strings.Join(scripts[0].AsksOfCourt, "\n")
	assert.NotContains(t, asks, "Request directions for service of")
	assert.NotContains(t, asks, "Turnbull")
	assert.NotEmpty(t, scripts[0].AsksOfCourt, "scripts always carry at least one ask")
}
