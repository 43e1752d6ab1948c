package cases

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"counsel/internal/domain"
	"counsel/internal/ports"
)

// Service assembles complete case snapshots for the strategy engine. The
// constituent collections are independent, so they are fetched concurrently;
// the engine only ever sees a fully assembled snapshot.
type Service struct {
	repo ports.CaseRepository
}

func New(repo ports.CaseRepository) *Service { return &Service{repo: repo} }

// Snapshot loads every constituent record for the case. A missing case fails
// fast with ErrCaseNotFound; empty collections are fine and resolve downstream
// to the all-missing defaults.
func (s *Service) Snapshot(ctx context.Context, caseID string) (domain.CaseSnapshot, error) {
	header, err := s.repo.GetHeader(ctx, caseID)
	if err != nil {
		return domain.CaseSnapshot{}, fmt.Errorf("case %s: %w", caseID, err)
	}

	snap := domain.CaseSnapshot{
		CaseID:              header.ID,
		DisclosureDeadline:  header.DisclosureDeadline,
		CanGenerateAnalysis: header.CanGenerateAnalysis,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		snap.Documents, err = s.repo.ListDocuments(gctx, caseID)
		return err
	})
	g.Go(func() (err error) {
		snap.Charges, err = s.repo.ListCharges(gctx, caseID)
		return err
	})
	g.Go(func() (err error) {
		snap.Timeline, err = s.repo.ListTimeline(gctx, caseID)
		return err
	})
	g.Go(func() (err error) {
		snap.Dependencies, err = s.repo.ListDependencies(gctx, caseID)
		return err
	})
	g.Go(func() (err error) {
		snap.ImpactEntries, err = s.repo.ListImpactEntries(gctx, caseID)
		return err
	})
	g.Go(func() (err error) {
		snap.Hearings, err = s.repo.ListHearings(gctx, caseID)
		return err
	})
	g.Go(func() (err error) {
		snap.Commitment, err = s.repo.GetCommitment(gctx, caseID)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.CaseSnapshot{}, fmt.Errorf("assemble case %s: %w", caseID, err)
	}
	return snap, nil
}
