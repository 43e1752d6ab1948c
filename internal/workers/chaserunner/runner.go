package chaserunner

import (
	"context"
	"log/slog"
	"time"

	"counsel/internal/metrics"
	"counsel/internal/ports"
	"counsel/internal/services/strategy"
)

// Processor performs the chase-list refresh for a job's case id.
type Processor interface {
	Process(ctx context.Context, caseID string) error
}

// AnalysisProcessor recomputes the strategy aggregate and persists the
// resulting chase list.
type AnalysisProcessor struct {
	Cases      ports.CaseAssembler
	Strategist ports.Strategist
	Chase      ports.ChaseListRepository
	Metrics    *metrics.Metrics
}

func (p AnalysisProcessor) Process(ctx context.Context, caseID string) error {
	snap, err := p.Cases.Snapshot(ctx, caseID)
	if err != nil {
		return err
	}
	analysis := p.Strategist.Analyse(snap)
	if p.Metrics != nil {
		p.Metrics.ObserveAnalysis(analysis)
	}
	items := strategy.ChaseList(analysis.EvidenceImpactMap)
	return p.Chase.ReplaceChaseList(ctx, caseID, items)
}

// Run starts worker goroutines that claim refresh jobs and process them.
func Run(ctx context.Context, repo ports.JobRepository, processor Processor, concurrency int, pollInterval time.Duration, log *slog.Logger) {
	if concurrency < 1 {
		return
	}
	jobsCh := make(chan ports.RefreshJob, concurrency)

	// dispatcher loop
	go func() {
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				close(jobsCh)
				return
			case <-ticker.C:
				for {
					job, found, err := repo.ClaimNext(ctx)
					if err != nil {
						log.Error("job claim failed", "error", err)
						break
					}
					if !found {
						break
					}
					jobsCh <- job
				}
			}
		}
	}()

	// workers
	for i := 0; i < concurrency; i++ {
		go func(idx int) {
			for job := range jobsCh {
				if err := processor.Process(ctx, job.CaseID); err != nil {
					_ = repo.MarkFailed(ctx, job.ID, err.Error())
					log.Error("refresh job failed", "worker", idx, "job", job.ID, "case", job.CaseID, "error", err)
					continue
				}
				if err := repo.MarkCompleted(ctx, job.ID); err != nil {
					log.Error("job completion update failed", "worker", idx, "job", job.ID, "error", err)
				}
			}
		}(i)
	}
}

// ProcessInline refreshes a specific case synchronously using the same
// processor logic as the background workers.
func ProcessInline(ctx context.Context, repo ports.JobRepository, processor Processor, caseID string) error {
	jobID, err := repo.StartJobForCase(ctx, caseID)
	if err != nil {
		return err
	}
	if err := processor.Process(ctx, caseID); err != nil {
		_ = repo.MarkFailed(ctx, jobID, err.Error())
		return err
	}
	return repo.MarkCompleted(ctx, jobID)
}
