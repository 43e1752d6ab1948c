package cases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"counsel/internal/domain"
	"counsel/internal/ports"
)

// fakeRepo serves canned collections for one case id.
type fakeRepo struct {
	header  ports.CaseHeader
	docs    []domain.Document
	listErr error
	known   string
}

func (f *fakeRepo) GetHeader(_ context.Context, caseID string) (ports.CaseHeader, error) {
	if caseID != f.known {
		return ports.CaseHeader{}, ports.ErrCaseNotFound
	}
	return f.header, nil
}

func (f *fakeRepo) ListDocuments(context.Context, string) ([]domain.Document, error) {
	return f.docs, f.listErr
}
func (f *fakeRepo) ListCharges(context.Context, string) ([]domain.Charge, error) {
	return []domain.Charge{{ID: "ch1", Offence: "assault occasioning ABH"}}, nil
}
func (f *fakeRepo) ListTimeline(context.Context, string) ([]domain.TimelineEntry, error) {
	return []domain.TimelineEntry{{Item: "Body-worn video", Action: "served", Date: time.Now()}}, nil
}
func (f *fakeRepo) ListDependencies(context.Context, string) ([]domain.Dependency, error) {
	return nil, nil
}
func (f *fakeRepo) ListImpactEntries(context.Context, string) ([]domain.ImpactEntry, error) {
	return nil, nil
}
func (f *fakeRepo) ListHearings(context.Context, string) ([]domain.Hearing, error) {
	return []domain.Hearing{{Type: "first_hearing", Date: time.Now().AddDate(0, 0, 10)}}, nil
}
func (f *fakeRepo) GetCommitment(context.Context, string) (*domain.Commitment, error) {
	return nil, nil
}

func TestSnapshotAssemblesAllCollections(t *testing.T) {
	repo := &fakeRepo{
		known: "case-1",
		header: ports.CaseHeader{
			ID:                  "case-1",
			Reference:           "CR-2026-104",
			CanGenerateAnalysis: true,
		},
		docs: []domain.Document{{ID: "d1", Name: "CCTV Footage - Full Window.mp4"}},
	}
	svc := New(repo)

	snap, err := svc.Snapshot(context.Background(), "case-1")
	require.NoError(t, err)

	assert.Equal(t, "case-1", snap.CaseID)
	assert.True(t, snap.CanGenerateAnalysis)
	assert.Len(t, snap.Documents, 1)
	assert.Len(t, snap.Charges, 1)
	assert.Len(t, snap.Timeline, 1)
	assert.Len(t, snap.Hearings, 1)
	assert.Nil(t, snap.Commitment)
}

func TestSnapshotUnknownCase(t *testing.T) {
	svc := New(&fakeRepo{known: "case-1"})

	_, err := svc.Snapshot(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ports.ErrCaseNotFound), "not-found sentinel must survive wrapping")
}

func TestSnapshotCollectionFailure(t *testing.T) {
	repo := &fakeRepo{known: "case-1", header: ports.CaseHeader{ID: "case-1"}, listErr: errors.New("boom")}
	svc := New(repo)

	_, err := svc.Snapshot(context.Background(), "case-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "assemble case")
}
