package strategy

import "counsel/internal/domain"

// Attack path names used across the engine. Routes reference disclosure
// catalogue keys as required evidence so the impact mapper can reverse-index
// them.
const (
	PathPACEBreachExclusion   = "PACE_BREACH_EXCLUSION"
	PathDisclosureFailure     = "DISCLOSURE_FAILURE_APPLICATION"
	PathIdentificationChall   = "IDENTIFICATION_CHALLENGE"
	PathContinuityChallenge   = "CONTINUITY_CHALLENGE"
	PathFirstAccountConsist   = "FIRST_ACCOUNT_CONSISTENCY"
	PathProsecutionProofTest  = "PROSECUTION_PROOF_TEST"
	PathChargeSelectionReview = "CHARGE_SELECTION_REVIEW"
	PathIncidentNarrative     = "INCIDENT_NARRATIVE_REFRAME"
	PathInjurySeverity        = "INJURY_SEVERITY_CHALLENGE"
	PathBasisOfPlea           = "BASIS_OF_PLEA_NEGOTIATION"
	PathEarlyPleaCredit       = "EARLY_PLEA_CREDIT"
	PathMitigationPackage     = "MITIGATION_PACKAGE"
	PathPreSentenceReportPrep = "PRE_SENTENCE_REPORT_PREP"
)

// routeRule is one template row: when the predicate holds for the current
// signals and disclosure state, the attack path joins the route.
type routeRule struct {
	when func(domain.EvidenceSignals, domain.DisclosureState) bool
	path domain.AttackPath
}

func always(domain.EvidenceSignals, domain.DisclosureState) bool { return true }

// routeTemplates fixes the three routes and their candidate attack paths.
// Within each route the rows are ordered structural/procedural first,
// evidentiary second, mitigation-only last; generation preserves this order.
var routeTemplates = []struct {
	id    domain.RouteID
	rules []routeRule
}{
	{
		id: domain.RouteFightCharge,
		rules: []routeRule{
			{
				when: func(s domain.EvidenceSignals, _ domain.DisclosureState) bool {
					return s.PACECompliance == domain.PACEBreaches
				},
				path: domain.AttackPath{
					Name:             PathPACEBreachExclusion,
					RequiredEvidence: []string{"interview_recording", "custody_record"},
					Strength:         domain.StrengthStrong,
				},
			},
			{
				when: func(s domain.EvidenceSignals, d domain.DisclosureState) bool {
					return d.Status != domain.DisclosureSafe || s.DisclosureCompleteness == domain.CompletenessGaps
				},
				path: domain.AttackPath{
					Name:             PathDisclosureFailure,
					RequiredEvidence: []string{"cctv_full_window", "cad_log"},
					Strength:         domain.StrengthViable,
				},
			},
			{
				when: func(s domain.EvidenceSignals, _ domain.DisclosureState) bool {
					return s.CCTVSequence != domain.SequenceFull
				},
				path: domain.AttackPath{
					Name:             PathIdentificationChall,
					RequiredEvidence: []string{"cctv_full_window", "cctv_continuity", "body_worn_video"},
					Strength:         domain.StrengthViable,
				},
			},
			{
				when: func(s domain.EvidenceSignals, _ domain.DisclosureState) bool {
					return s.CCTVSequence == domain.SequencePartial
				},
				path: domain.AttackPath{
					Name:             PathContinuityChallenge,
					RequiredEvidence: []string{"cctv_continuity"},
					Strength:         domain.StrengthWeak,
				},
			},
			{
				when: func(s domain.EvidenceSignals, _ domain.DisclosureState) bool {
					return s.InterviewEvidence == domain.EvidencePresent
				},
				path: domain.AttackPath{
					Name:             PathFirstAccountConsist,
					RequiredEvidence: []string{"interview_recording"},
					Strength:         domain.StrengthViable,
				},
			},
			{
				when: always,
				path: domain.AttackPath{
					Name:             PathProsecutionProofTest,
					RequiredEvidence: []string{"cctv_full_window", "interview_recording"},
					Strength:         domain.StrengthWeak,
				},
			},
		},
	},
	{
		id: domain.RouteChargeReduction,
		rules: []routeRule{
			{
				when: always,
				path: domain.AttackPath{
					Name:             PathChargeSelectionReview,
					RequiredEvidence: []string{"cad_log"},
					Strength:         domain.StrengthViable,
				},
			},
			{
				when: func(s domain.EvidenceSignals, _ domain.DisclosureState) bool {
					return s.CCTVSequence != domain.SequenceFull
				},
				path: domain.AttackPath{
					Name:             PathIncidentNarrative,
					RequiredEvidence: []string{"cad_log", "call_999_audio"},
					Strength:         domain.StrengthViable,
				},
			},
			{
				when: func(s domain.EvidenceSignals, _ domain.DisclosureState) bool {
					return s.MedicalEvidence == domain.EvidencePresent
				},
				path: domain.AttackPath{
					Name:             PathInjurySeverity,
					RequiredEvidence: []string{"call_999_audio"},
					Strength:         domain.StrengthViable,
				},
			},
			{
				when: always,
				path: domain.AttackPath{
					Name:             PathBasisOfPlea,
					RequiredEvidence: []string{},
					Strength:         domain.StrengthViable,
				},
			},
		},
	},
	{
		id: domain.RouteOutcomeManagement,
		rules: []routeRule{
			{
				when: always,
				path: domain.AttackPath{
					Name:             PathEarlyPleaCredit,
					RequiredEvidence: []string{},
					Strength:         domain.StrengthStrong,
				},
			},
			{
				when: func(s domain.EvidenceSignals, _ domain.DisclosureState) bool {
					return s.MedicalEvidence == domain.EvidencePresent
				},
				path: domain.AttackPath{
					Name:             PathMitigationPackage,
					RequiredEvidence: []string{},
					Strength:         domain.StrengthViable,
				},
			},
			{
				when: always,
				path: domain.AttackPath{
					Name:             PathPreSentenceReportPrep,
					RequiredEvidence: []string{},
					Strength:         domain.StrengthWeak,
				},
			},
		},
	},
}

// GenerateRoutes expands the fixed route templates against the current
// signals and disclosure state. Routes are always produced; when analysis is
// gated by insufficient extracted text they are marked degraded and their
// strengths capped at weak, never omitted.
func GenerateRoutes(sig domain.EvidenceSignals, disc domain.DisclosureState, canGenerate bool) []domain.StrategyRoute {
	routes := make([]domain.StrategyRoute, 0, len(routeTemplates))
	for _, tpl := range routeTemplates {
		route := domain.StrategyRoute{RouteID: tpl.id, AttackPaths: []domain.AttackPath{}, Degraded: !canGenerate}
		for _, rule := range tpl.rules {
			if !rule.when(sig, disc) {
				continue
			}
			path := rule.path
			if route.Degraded {
				path.Strength = domain.StrengthWeak
			}
			route.AttackPaths = append(route.AttackPaths, path)
		}
		routes = append(routes, route)
	}
	return routes
}
