package strategy

import (
	"fmt"
	"sort"

	"counsel/internal/domain"
)

// BuildImpactMap reverse-indexes missing disclosure items to the attack paths
// that declared them as required evidence, and ranks the most valuable
// missing evidence by how many paths each item would unblock.
func BuildImpactMap(disc domain.DisclosureState, routes []domain.StrategyRoute) domain.EvidenceImpactMap {
	out := domain.EvidenceImpactMap{
		Impacts:   []domain.EvidenceImpact{},
		Shortlist: []string{},
	}

	for _, item := range disc.MissingItems {
		impact := domain.EvidenceImpact{Item: item, BlockedPaths: []domain.ImpactedPath{}}
		for _, route := range routes {
			for _, path := range route.AttackPaths {
				if !requires(path, item.Key) {
					continue
				}
				impact.BlockedPaths = append(impact.BlockedPaths, domain.ImpactedPath{
					RouteID: route.RouteID,
					Path:    path.Name,
					Impact:  fmt.Sprintf("%s: %s cannot be advanced without %s", route.RouteID, path.Name, item.Label),
				})
			}
		}
		impact.UnblockCount = len(impact.BlockedPaths)
		out.Impacts = append(out.Impacts, impact)
	}

	// Shortlist: unblock count descending, ties by catalogue order (the order
	// Impacts already holds).
	ranked := make([]domain.EvidenceImpact, len(out.Impacts))
	copy(ranked, out.Impacts)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].UnblockCount > ranked[j].UnblockCount
	})
	for _, imp := range ranked {
		if imp.UnblockCount == 0 {
			continue
		}
		out.Shortlist = append(out.Shortlist, imp.Item.Key)
	}

	return out
}

// ChaseList converts the impact map into the persisted chase-list rows,
// ranked most valuable first.
func ChaseList(m domain.EvidenceImpactMap) []domain.ChaseItem {
	byKey := map[string]domain.EvidenceImpact{}
	for _, imp := range m.Impacts {
		byKey[imp.Item.Key] = imp
	}
	out := make([]domain.ChaseItem, 0, len(m.Shortlist))
	for i, key := range m.Shortlist {
		imp := byKey[key]
		out = append(out, domain.ChaseItem{
			ItemKey:      key,
			Label:        imp.Item.Label,
			Severity:     imp.Item.Severity,
			UnblockCount: imp.UnblockCount,
			Rank:         i + 1,
		})
	}
	return out
}

func requires(path domain.AttackPath, key string) bool {
	for _, req := range path.RequiredEvidence {
		if req == key {
			return true
		}
	}
	return false
}
