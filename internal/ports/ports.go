package ports

import (
	"context"

	"counsel/internal/domain"
)

// Strategist recomputes the full strategy aggregate from a case snapshot.
type Strategist interface {
	Analyse(snap domain.CaseSnapshot) domain.StrategyAnalysis
}

// CaseAssembler fetches and assembles the complete snapshot for a case.
type CaseAssembler interface {
	Snapshot(ctx context.Context, caseID string) (domain.CaseSnapshot, error)
}
