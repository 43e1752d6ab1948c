package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"counsel/internal/ports"
)

func (db *DB) EnqueueRefresh(ctx context.Context, caseID string) (string, error) {
	jobID := uuid.NewString()
	_, err := db.Pool.Exec(ctx, `
        INSERT INTO refresh_jobs (id, case_id) VALUES ($1, $2)
    `, jobID, caseID)
	return jobID, err
}

// ClaimNext selects the next queued refresh job using SKIP LOCKED and marks
// it running.
func (db *DB) ClaimNext(ctx context.Context) (job ports.RefreshJob, found bool, err error) {
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return job, false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	err = tx.QueryRow(ctx, `
        SELECT id, case_id FROM refresh_jobs
        WHERE status = 'queued'
        ORDER BY queued_at
        FOR UPDATE SKIP LOCKED
        LIMIT 1
    `).Scan(&job.ID, &job.CaseID)
	if errors.Is(err, pgx.ErrNoRows) {
		err = nil
		return job, false, nil
	}
	if err != nil {
		return job, false, err
	}

	if _, err = tx.Exec(ctx, `
        UPDATE refresh_jobs SET status='running', started_at=now(), attempts=attempts+1 WHERE id=$1
    `, job.ID); err != nil {
		return job, false, err
	}
	return job, true, nil
}

func (db *DB) MarkCompleted(ctx context.Context, jobID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err := db.Pool.Exec(ctx, `
        UPDATE refresh_jobs SET status='completed', finished_at=now() WHERE id=$1
    `, jobID)
	return err
}

func (db *DB) MarkFailed(ctx context.Context, jobID string, reason string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err := db.Pool.Exec(ctx, `
        UPDATE refresh_jobs SET status='failed', reason=$2, finished_at=now() WHERE id=$1
    `, jobID, reason)
	return err
}

// StartJobForCase enqueues and immediately claims a job for a specific case,
// for the synchronous refresh path.
func (db *DB) StartJobForCase(ctx context.Context, caseID string) (string, error) {
	jobID := uuid.NewString()
	_, err := db.Pool.Exec(ctx, `
        INSERT INTO refresh_jobs (id, case_id, status, started_at, attempts)
        VALUES ($1, $2, 'running', now(), 1)
    `, jobID, caseID)
	return jobID, err
}
