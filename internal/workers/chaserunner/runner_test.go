package chaserunner

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"counsel/internal/domain"
	"counsel/internal/ports"
	"counsel/internal/services/strategy"
)

type fakeAssembler struct {
	snap domain.CaseSnapshot
	err  error
}

func (f fakeAssembler) Snapshot(context.Context, string) (domain.CaseSnapshot, error) {
	return f.snap, f.err
}

type fakeChaseRepo struct {
	mu    sync.Mutex
	lists map[string][]domain.ChaseItem
}

func (f *fakeChaseRepo) ReplaceChaseList(_ context.Context, caseID string, items []domain.ChaseItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.lists == nil {
		f.lists = map[string][]domain.ChaseItem{}
	}
	f.lists[caseID] = items
	return nil
}

func (f *fakeChaseRepo) GetChaseList(_ context.Context, caseID string) ([]domain.ChaseItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lists[caseID], nil
}

type fakeJobRepo struct {
	completed []string
	failed    []string
}

func (f *fakeJobRepo) EnqueueRefresh(context.Context, string) (string, error) { return "j1", nil }
func (f *fakeJobRepo) ClaimNext(context.Context) (ports.RefreshJob, bool, error) {
	return ports.RefreshJob{}, false, nil
}
func (f *fakeJobRepo) MarkCompleted(_ context.Context, jobID string) error {
	f.completed = append(f.completed, jobID)
	return nil
}
func (f *fakeJobRepo) MarkFailed(_ context.Context, jobID string, _ string) error {
	f.failed = append(f.failed, jobID)
	return nil
}
func (f *fakeJobRepo) StartJobForCase(context.Context, string) (string, error) { return "j1", nil }

func TestAnalysisProcessorWritesChaseList(t *testing.T) {
	chase := &fakeChaseRepo{}
	p := AnalysisProcessor{
		Cases:      fakeAssembler{snap: domain.CaseSnapshot{CaseID: "case-1", CanGenerateAnalysis: true}},
		Strategist: strategy.New(clockwork.NewRealClock()),
		Chase:      chase,
	}

	require.NoError(t, p.Process(context.Background(), "case-1"))

	items, err := chase.GetChaseList(context.Background(), "case-1")
	require.NoError(t, err)
	assert.NotEmpty(t, items, "an empty case leaves everything missing, so the chase list is populated")
	assert.Equal(t, 1, items[0].Rank)
}

func TestProcessInlineMarksOutcome(t *testing.T) {
	jobs := &fakeJobRepo{}
	chase := &fakeChaseRepo{}

	ok := AnalysisProcessor{
		Cases:      fakeAssembler{snap: domain.CaseSnapshot{CaseID: "case-1", CanGenerateAnalysis: true}},
		Strategist: strategy.New(clockwork.NewRealClock()),
		Chase:      chase,
	}
	require.NoError(t, ProcessInline(context.Background(), jobs, ok, "case-1"))
	assert.Equal(t, []string{"j1"}, jobs.completed)

	failing := AnalysisProcessor{
		Cases:      fakeAssembler{err: errors.New("snapshot unavailable")},
		Strategist: strategy.New(clockwork.NewRealClock()),
		Chase:      chase,
	}
	err := ProcessInline(context.Background(), jobs, failing, "case-2")
	require.Error(t, err)
	assert.Equal(t, []string{"j1"}, jobs.failed)
}
