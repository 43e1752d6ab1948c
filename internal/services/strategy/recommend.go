package strategy

import (
	"fmt"

	"counsel/internal/domain"
)

// routesRequiringDisclosure are excluded outright while the disclosure state
// is unsafe, regardless of numeric confidence.
var routesRequiringDisclosure = map[domain.RouteID]bool{
	domain.RouteFightCharge:     true,
	domain.RouteChargeReduction: true,
}

// routeOrder fixes the iteration order so the rationale lines are stable
// across invocations of the same snapshot.
var routeOrder = []domain.RouteID{
	domain.RouteFightCharge,
	domain.RouteChargeReduction,
	domain.RouteOutcomeManagement,
}

// Recommend selects the highest-confidence route whose hard safety
// pre-conditions are not violated, tie-broken by the fixed route priority.
// Outcome management carries no disclosure gate, so a recommendation always
// exists.
func Recommend(scores map[domain.RouteID]routeScore, disc domain.DisclosureState) domain.Recommendation {
	var rationale []string

	eligible := map[domain.RouteID]routeScore{}
	for _, id := range routeOrder {
		sc, ok := scores[id]
		if !ok {
			continue
		}
		if disc.Status == domain.DisclosureUnsafe && routesRequiringDisclosure[id] {
			rationale = append(rationale,
				fmt.Sprintf("%s excluded while the disclosure state is unsafe, despite confidence %d", id, sc.State.Confidence))
			continue
		}
		eligible[id] = sc
	}

	order := rankRoutes(eligible)
	chosen := eligible[order[0]]

	rationale = append(rationale, fmt.Sprintf("%s selected at confidence %d", chosen.State.RouteID, chosen.State.Confidence))
	rationale = append(rationale, chosen.Reasons...)

	return domain.Recommendation{
		RouteID:        chosen.State.RouteID,
		Confidence:     chosen.State.Confidence,
		Rationale:      rationale,
		FlipConditions: chosen.State.FlipConditions,
	}
}
