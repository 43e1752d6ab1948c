package strategy

import (
	"fmt"

	"counsel/internal/domain"
)

// Fixed caps keep every script readable in roughly thirty seconds.
const (
	maxChecklist    = 6
	maxAsksOfCourt  = 5
	maxDoNotConcede = 4
)

var defaultHearingTypes = []string{"first_hearing", "case_management"}

// BuildHearingScripts renders one script per upcoming hearing type. Missing
// critical disclosure items inject request-for-directions asks, and an
// identification challenge route injects a Turnbull reliability direction.
// With no hearings listed, scripts for the default early hearing types are
// produced so the aggregate shape stays fixed.
func BuildHearingScripts(snap domain.CaseSnapshot, disc domain.DisclosureState, routes []domain.StrategyRoute) []domain.HearingScript {
	types := hearingTypes(snap)
	out := make([]domain.HearingScript, 0, len(types))
	for _, t := range types {
		out = append(out, buildScript(t, disc, routes))
	}
	return out
}

func hearingTypes(snap domain.CaseSnapshot) []string {
	if len(snap.Hearings) == 0 {
		return defaultHearingTypes
	}
	seen := map[string]bool{}
	var types []string
	for _, h := range snap.Hearings {
		if seen[h.Type] {
			continue
		}
		seen[h.Type] = true
		types = append(types, h.Type)
	}
	return types
}

func buildScript(hearingType string, disc domain.DisclosureState, routes []domain.StrategyRoute) domain.HearingScript {
	checklist := []string{
		"Confirm the disclosure position on the record",
		"Check the prosecution's compliance with previous directions",
	}
	asks := []string{}
	dnc := []string{}

	switch hearingType {
	case "first_hearing":
		checklist = append(checklist, "Confirm venue and take instructions on indication of plea")
		dnc = append(dnc, "Do not indicate plea while disclosure is incomplete")
	case "case_management":
		checklist = append(checklist, "Agree trial directions and witness requirements")
		dnc = append(dnc, "Do not agree prosecution evidence that has not been reviewed")
	case "trial":
		checklist = append(checklist, "Confirm witness attendance and exhibit continuity")
		dnc = append(dnc, "Do not concede continuity of exhibits without a continuity statement")
	}

	for _, item := range disc.MissingItems {
		if item.Severity != domain.SeverityCritical {
			continue
		}
		asks = append(asks, fmt.Sprintf("Request directions for service of %s", item.Label))
	}
	if disc.Status != domain.DisclosureSafe {
		checklist = append(checklist, "Raise the outstanding disclosure items with the court")
		dnc = append(dnc, "Do not concede trial readiness while the disclosure state is not safe")
	}
	if hasIdentificationChallenge(routes) {
		asks = append(asks, "Seek a Turnbull direction on identification reliability")
		dnc = append(dnc, "Do not concede the identification evidence")
	}
	if len(asks) == 0 {
		asks = append(asks, "Invite the court to confirm the timetable to trial")
	}

	return domain.HearingScript{
		HearingType:  hearingType,
		Checklist:    capLines(checklist, maxChecklist),
		AsksOfCourt:  capLines(asks, maxAsksOfCourt),
		DoNotConcede: capLines(dnc, maxDoNotConcede),
	}
}

func hasIdentificationChallenge(routes []domain.StrategyRoute) bool {
	for _, r := range routes {
		for _, p := range r.AttackPaths {
			if p.Name == PathIdentificationChall {
				return true
			}
		}
	}
	return false
}

func capLines(lines []string, n int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	return lines
}
