package ports

import (
	"context"
	"time"

	"counsel/internal/domain"
)

// ErrCaseNotFound is returned by repositories for unknown case ids. Shared
// here so services and handlers agree on one sentinel.
var ErrCaseNotFound = errString("case not found")

type errString string

func (e errString) Error() string { return string(e) }

// CaseHeader is the case row itself; the collections hang off it.
type CaseHeader struct {
	ID                  string
	Reference           string
	DisclosureDeadline  *time.Time
	CanGenerateAnalysis bool
}

// CaseRepository reads the constituent records of a case snapshot. The
// collections carry no ordering constraint between them and may be fetched
// concurrently.
type CaseRepository interface {
	GetHeader(ctx context.Context, caseID string) (CaseHeader, error)
	ListDocuments(ctx context.Context, caseID string) ([]domain.Document, error)
	ListCharges(ctx context.Context, caseID string) ([]domain.Charge, error)
	ListTimeline(ctx context.Context, caseID string) ([]domain.TimelineEntry, error)
	ListDependencies(ctx context.Context, caseID string) ([]domain.Dependency, error)
	ListImpactEntries(ctx context.Context, caseID string) ([]domain.ImpactEntry, error)
	ListHearings(ctx context.Context, caseID string) ([]domain.Hearing, error)
	// GetCommitment returns nil when no strategy has been committed.
	GetCommitment(ctx context.Context, caseID string) (*domain.Commitment, error)
}

// ChaseListRepository persists the ranked missing-evidence chase list.
type ChaseListRepository interface {
	ReplaceChaseList(ctx context.Context, caseID string, items []domain.ChaseItem) error
	GetChaseList(ctx context.Context, caseID string) ([]domain.ChaseItem, error)
}
