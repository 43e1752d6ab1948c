package strategy

import (
	"fmt"
	"strings"

	"counsel/internal/domain"
)

// ResolveDisclosure is the sole canonical source of truth for disclosure.
// For each catalogue item the satisfaction rules run in strict priority
// order, first match wins:
//
//  1. a served/reviewed timeline entry fuzzily matching the item
//  2. a document name matching one of the item's keyword patterns
//  3. a declared dependency matching the item with status "not_needed"
//  4. a required/helpful dependency matching the item whose own timeline
//     entry shows served/reviewed
//  5. an evidence-impact entry matching the item whose urgency text carries
//     no outstanding marker
//  6. otherwise missing, at the item's fixed severity
//
// The function is pure and never fails: an empty snapshot resolves to all
// seven items missing.
func ResolveDisclosure(snap domain.CaseSnapshot) domain.DisclosureState {
	state := domain.DisclosureState{
		MissingItems:   []domain.DisclosureItem{},
		SatisfiedItems: []domain.DisclosureItem{},
	}

	for _, it := range tables.Items {
		item := domain.DisclosureItem{Key: it.Key, Label: it.Label, Severity: it.Severity}
		reason, ok := satisfy(it, snap)
		if ok {
			state.SatisfiedItems = append(state.SatisfiedItems, item)
			state.Rationale = append(state.Rationale, fmt.Sprintf("%s: satisfied (%s)", it.Label, reason))
			continue
		}
		state.MissingItems = append(state.MissingItems, item)
		state.Rationale = append(state.Rationale,
			fmt.Sprintf("%s: missing, severity %s (no serving record, matching document, waiver or resolved impact entry)", it.Label, it.Severity))
	}

	state.Status = deriveStatus(state.MissingItems)
	state.Rationale = append(state.Rationale, statusLine(state))

	for _, d := range snap.Documents {
		if strings.Contains(strings.ToLower(d.Name), "simulated") {
			state.IsSimulated = true
			state.Rationale = append(state.Rationale,
				"Case contains simulated material; flag is informational and does not affect the safety status.")
			break
		}
	}

	return state
}

// satisfy applies the priority-ordered rule list for one item and reports the
// plain-English reason for the first rule that fired.
func satisfy(it catalogueItem, snap domain.CaseSnapshot) (string, bool) {
	// Rule 1: served/reviewed timeline entry matching the item.
	for _, e := range snap.Timeline {
		if actionSatisfies(e.Action) && itemTextMatches(e.Item, it) {
			return fmt.Sprintf("disclosure timeline shows %q %s", e.Item, strings.ToLower(e.Action)), true
		}
	}

	// Rule 2: a document name matching the item's keyword patterns.
	for _, d := range snap.Documents {
		if matchAny(strings.ToLower(d.Name), it.Patterns) {
			return fmt.Sprintf("document %q on file", d.Name), true
		}
	}

	// Rule 3: explicit waiver via a not_needed dependency.
	for _, dep := range snap.Dependencies {
		if itemTextMatches(dep.Label, it) && strings.EqualFold(dep.Status, "not_needed") {
			return fmt.Sprintf("dependency %q waived as not needed", dep.Label), true
		}
	}

	// Rule 4: required/helpful dependency served through its own timeline entry.
	for _, dep := range snap.Dependencies {
		if !itemTextMatches(dep.Label, it) {
			continue
		}
		status := strings.ToLower(dep.Status)
		if status != "required" && status != "helpful" {
			continue
		}
		for _, e := range snap.Timeline {
			if actionSatisfies(e.Action) && (e.Item == dep.ID || bidirectional(e.Item, dep.Label)) {
				return fmt.Sprintf("dependency %q served per timeline", dep.Label), true
			}
		}
	}

	// Rule 5: impact-map entry with no outstanding marker in its urgency text.
	for _, imp := range snap.ImpactEntries {
		if itemTextMatches(imp.Item, it) && !urgencyOutstanding(imp.Urgency) {
			return fmt.Sprintf("impact entry %q records the item as held", imp.Item), true
		}
	}

	return "", false
}

// outstandingMarkers are the urgency substrings that keep rule 5 from firing.
var outstandingMarkers = []string{"missing", "outstanding", "not received", "not disclosed"}

func urgencyOutstanding(urgency string) bool {
	u := strings.ToLower(urgency)
	for _, m := range outstandingMarkers {
		if strings.Contains(u, m) {
			return true
		}
	}
	return false
}

// itemTextMatches fuzzily matches free text against a catalogue item:
// bidirectional substring against the label or the key, or a keyword-pattern
// match.
func itemTextMatches(text string, it catalogueItem) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return false
	}
	if bidirectional(t, it.Label) || bidirectional(t, strings.ReplaceAll(it.Key, "_", " ")) {
		return true
	}
	return matchAny(t, it.Patterns)
}

func bidirectional(a, b string) bool {
	a, b = strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// deriveStatus applies the fixed severity rule: any critical item missing is
// unsafe; any high item missing, or three or more missing overall, is
// conditionally unsafe; otherwise safe.
func deriveStatus(missing []domain.DisclosureItem) domain.DisclosureStatus {
	high := false
	for _, m := range missing {
		switch m.Severity {
		case domain.SeverityCritical:
			return domain.DisclosureUnsafe
		case domain.SeverityHigh:
			high = true
		}
	}
	if high || len(missing) >= 3 {
		return domain.DisclosureConditionallyUnsafe
	}
	return domain.DisclosureSafe
}

func statusLine(state domain.DisclosureState) string {
	var critical []string
	for _, m := range state.MissingItems {
		if m.Severity == domain.SeverityCritical {
			critical = append(critical, m.Label)
		}
	}
	switch state.Status {
	case domain.DisclosureUnsafe:
		return fmt.Sprintf("Status unsafe: %d of 7 items missing, including critical items: %s.",
			len(state.MissingItems), strings.Join(critical, "; "))
	case domain.DisclosureConditionallyUnsafe:
		return fmt.Sprintf("Status conditionally unsafe: %d of 7 items missing (high-severity gap or three or more items outstanding).",
			len(state.MissingItems))
	default:
		return fmt.Sprintf("Status safe: %d of 7 items satisfied.", len(state.SatisfiedItems))
	}
}
