package strategy

import (
	"fmt"

	"counsel/internal/domain"
)

// gate is one hard pre-condition for committing to a route. Conditions are
// boolean expressions over the disclosure state and signals, rendered
// literally so the gating logic stays auditable.
type gate struct {
	condition string
	action    string
	met       func(domain.DisclosureState, domain.EvidenceSignals, domain.TimePressureState) bool
}

// Gates in fixed priority order: safety first, evidence-gathering second,
// tactical last.
var gates = []gate{
	{
		condition: `disclosure_state.status != "unsafe"`,
		action:    "Resolve critical disclosure items before committing to the route",
		met: func(d domain.DisclosureState, _ domain.EvidenceSignals, _ domain.TimePressureState) bool {
			return d.Status != domain.DisclosureUnsafe
		},
	},
	{
		condition: `signals.pace_compliance != "unknown"`,
		action:    "Obtain and review the custody record to assess PACE compliance",
		met: func(_ domain.DisclosureState, s domain.EvidenceSignals, _ domain.TimePressureState) bool {
			return s.PACECompliance != domain.PACEUnknown
		},
	},
	{
		condition: `count(missing_items where severity == "critical") == 0`,
		action:    "Chase the outstanding critical disclosure items on the chase list",
		met: func(d domain.DisclosureState, _ domain.EvidenceSignals, _ domain.TimePressureState) bool {
			for _, m := range d.MissingItems {
				if m.Severity == domain.SeverityCritical {
					return false
				}
			}
			return true
		},
	},
	{
		condition: `time_pressure.current_leverage != "low"`,
		action:    "Seek an adjournment or accelerate the route decision; the hearing window is closing",
		met: func(_ domain.DisclosureState, _ domain.EvidenceSignals, t domain.TimePressureState) bool {
			return t.CurrentLeverage != domain.LeverageLow
		},
	},
}

// GenerateCheckpoints emits one checkpoint per unmet gate for the recommended
// route, in priority order. When every gate holds it emits a single
// ready-to-proceed checkpoint so the caller always receives at least one.
func GenerateCheckpoints(route domain.RouteID, disc domain.DisclosureState, sig domain.EvidenceSignals, tp domain.TimePressureState) []domain.DecisionCheckpoint {
	out := []domain.DecisionCheckpoint{}
	for i, g := range gates {
		if g.met(disc, sig, tp) {
			continue
		}
		out = append(out, domain.DecisionCheckpoint{
			Priority:        i + 1,
			GatingCondition: g.condition,
			Action:          g.action,
			Satisfied:       false,
		})
	}
	if len(out) == 0 {
		out = append(out, domain.DecisionCheckpoint{
			Priority:        1,
			GatingCondition: "all_gates_satisfied",
			Action:          fmt.Sprintf("Proceed with %s", route),
			Satisfied:       true,
		})
	}
	return out
}
