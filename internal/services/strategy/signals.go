package strategy

import (
	"strings"

	"counsel/internal/domain"
)

// ExtractSignals turns raw case facts into the fixed-shape evidence signal
// record. Every signal carries an explicit missing/unknown default, so the
// result is total even for an empty snapshot.
func ExtractSignals(snap domain.CaseSnapshot) domain.EvidenceSignals {
	sig := domain.EvidenceSignals{
		CCTVSequence:           domain.SequenceMissing,
		DisclosureCompleteness: domain.CompletenessUnknown,
		PACECompliance:         domain.PACEUnknown,
		InterviewEvidence:      domain.EvidenceMissing,
		CustodyEvidence:        domain.EvidenceMissing,
		MedicalEvidence:        domain.EvidenceMissing,
	}

	corpus := documentCorpus(snap.Documents)
	served := servedTimelineItems(snap.Timeline)

	// CCTV: a full-window match wins over a partial one; a served timeline
	// entry for CCTV lifts absence to at least partial.
	switch {
	case anyMatch(corpus, signalGroups("cctv_full")):
		sig.CCTVSequence = domain.SequenceFull
	case anyMatch(corpus, signalGroups("cctv_partial")):
		sig.CCTVSequence = domain.SequencePartial
	case anyMatch(served, signalGroups("cctv_full")):
		sig.CCTVSequence = domain.SequenceFull
	case anyMatch(served, signalGroups("cctv_partial")):
		sig.CCTVSequence = domain.SequencePartial
	}

	if anyMatch(corpus, signalGroups("body_worn")) || anyMatch(served, signalGroups("body_worn")) {
		sig.BodyWornVideoPresent = true
	}

	// PACE: breach indicators outrank compliance indicators.
	switch {
	case anyMatch(corpus, signalGroups("pace_breach")):
		sig.PACECompliance = domain.PACEBreaches
	case anyMatch(corpus, signalGroups("pace_compliant")):
		sig.PACECompliance = domain.PACECompliant
	}

	sig.InterviewEvidence = presence(corpus, served, "interview")
	sig.CustodyEvidence = presence(corpus, served, "custody")
	sig.MedicalEvidence = presence(corpus, served, "medical")

	// Disclosure completeness: gap markers outrank completeness markers.
	full := make([]string, 0, len(corpus)+len(served))
	full = append(full, corpus...)
	full = append(full, served...)
	switch {
	case anyMatch(full, signalGroups("disclosure_gaps")):
		sig.DisclosureCompleteness = domain.CompletenessGaps
	case anyMatch(full, signalGroups("disclosure_complete")):
		sig.DisclosureCompleteness = domain.CompletenessComplete
	}

	return sig
}

func presence(corpus, served []string, signal string) domain.Presence {
	if anyMatch(corpus, signalGroups(signal)) || anyMatch(served, signalGroups(signal)) {
		return domain.EvidencePresent
	}
	return domain.EvidenceMissing
}

// documentCorpus lowercases each document's name and metadata into one
// searchable string per document.
func documentCorpus(docs []domain.Document) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, strings.ToLower(d.Name+" "+d.Metadata))
	}
	return out
}

// servedTimelineItems lowercases the item text of every served or reviewed
// timeline entry, one searchable string per entry so keyword groups cannot
// match across unrelated entries. An explicit served action overrides
// document absence.
func servedTimelineItems(timeline []domain.TimelineEntry) []string {
	var out []string
	for _, e := range timeline {
		if actionSatisfies(e.Action) {
			out = append(out, strings.ToLower(e.Item))
		}
	}
	return out
}

func actionSatisfies(action string) bool {
	switch strings.ToLower(strings.TrimSpace(action)) {
	case "served", "reviewed":
		return true
	}
	return false
}

func anyMatch(corpus []string, groups [][]string) bool {
	for _, text := range corpus {
		if matchAny(text, groups) {
			return true
		}
	}
	return false
}
