package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"counsel/internal/domain"
	"counsel/internal/ports"
)

// CaseRepository

func (db *DB) GetHeader(ctx context.Context, caseID string) (ports.CaseHeader, error) {
	var h ports.CaseHeader
	err := db.Pool.QueryRow(ctx, `
        SELECT id, reference, disclosure_deadline, can_generate_analysis
        FROM cases WHERE id = $1
    `, caseID).Scan(&h.ID, &h.Reference, &h.DisclosureDeadline, &h.CanGenerateAnalysis)
	if errors.Is(err, pgx.ErrNoRows) {
		return h, ports.ErrCaseNotFound
	}
	return h, err
}

func (db *DB) ListDocuments(ctx context.Context, caseID string) ([]domain.Document, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT id, name, body, metadata, added_at
        FROM documents WHERE case_id = $1 ORDER BY added_at, id
    `, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Document
	for rows.Next() {
		var d domain.Document
		if err := rows.Scan(&d.ID, &d.Name, &d.Text, &d.Metadata, &d.AddedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (db *DB) ListCharges(ctx context.Context, caseID string) ([]domain.Charge, error) {
	rows, err := db.Pool.Query(ctx, `SELECT id, offence, statute FROM charges WHERE case_id = $1 ORDER BY id`, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Charge
	for rows.Next() {
		var c domain.Charge
		if err := rows.Scan(&c.ID, &c.Offence, &c.Statute); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (db *DB) ListTimeline(ctx context.Context, caseID string) ([]domain.TimelineEntry, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT item, action, at_date FROM disclosure_timeline
        WHERE case_id = $1 ORDER BY at_date, id
    `, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.TimelineEntry
	for rows.Next() {
		var e domain.TimelineEntry
		if err := rows.Scan(&e.Item, &e.Action, &e.Date); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (db *DB) ListDependencies(ctx context.Context, caseID string) ([]domain.Dependency, error) {
	rows, err := db.Pool.Query(ctx, `SELECT id, label, status FROM dependencies WHERE case_id = $1 ORDER BY id`, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Dependency
	for rows.Next() {
		var d domain.Dependency
		if err := rows.Scan(&d.ID, &d.Label, &d.Status); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (db *DB) ListImpactEntries(ctx context.Context, caseID string) ([]domain.ImpactEntry, error) {
	rows, err := db.Pool.Query(ctx, `SELECT item, urgency FROM impact_entries WHERE case_id = $1 ORDER BY id`, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.ImpactEntry
	for rows.Next() {
		var e domain.ImpactEntry
		if err := rows.Scan(&e.Item, &e.Urgency); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (db *DB) ListHearings(ctx context.Context, caseID string) ([]domain.Hearing, error) {
	rows, err := db.Pool.Query(ctx, `SELECT hearing_type, at_date FROM hearings WHERE case_id = $1 ORDER BY at_date`, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Hearing
	for rows.Next() {
		var h domain.Hearing
		if err := rows.Scan(&h.Type, &h.Date); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (db *DB) GetCommitment(ctx context.Context, caseID string) (*domain.Commitment, error) {
	var c domain.Commitment
	err := db.Pool.QueryRow(ctx, `
        SELECT case_id, route_id, committed_at FROM commitments WHERE case_id = $1
    `, caseID).Scan(&c.CaseID, &c.RouteID, &c.CommittedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ChaseListRepository

func (db *DB) ReplaceChaseList(ctx context.Context, caseID string, items []domain.ChaseItem) error {
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM chase_items WHERE case_id = $1`, caseID); err != nil {
		return err
	}
	for _, it := range items {
		if _, err = tx.Exec(ctx, `
            INSERT INTO chase_items (case_id, item_key, label, severity, unblock_count, rank)
            VALUES ($1, $2, $3, $4, $5, $6)
        `, caseID, it.ItemKey, it.Label, it.Severity, it.UnblockCount, it.Rank); err != nil {
			return err
		}
	}
	return nil
}

func (db *DB) GetChaseList(ctx context.Context, caseID string) ([]domain.ChaseItem, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT item_key, label, severity, unblock_count, rank
        FROM chase_items WHERE case_id = $1 ORDER BY rank
    `, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.ChaseItem
	for rows.Next() {
		var it domain.ChaseItem
		if err := rows.Scan(&it.ItemKey, &it.Label, &it.Severity, &it.UnblockCount, &it.Rank); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
