package ports

import "context"

type RefreshJob struct {
	ID     string
	CaseID string
}

// JobRepository supports enqueueing and claiming chase-list refresh jobs.
type JobRepository interface {
	EnqueueRefresh(ctx context.Context, caseID string) (jobID string, err error)
	ClaimNext(ctx context.Context) (job RefreshJob, found bool, err error)
	MarkCompleted(ctx context.Context, jobID string) error
	MarkFailed(ctx context.Context, jobID string, reason string) error
	StartJobForCase(ctx context.Context, caseID string) (jobID string, err error)
}
