package httpadapter

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"counsel/internal/domain"
	"counsel/internal/ports"
	"counsel/internal/services/strategy"
	"counsel/internal/workers/chaserunner"
)

type stubAssembler struct {
	known string
}

func (s stubAssembler) Snapshot(_ context.Context, caseID string) (domain.CaseSnapshot, error) {
	if caseID != s.known {
		return domain.CaseSnapshot{}, ports.ErrCaseNotFound
	}
	return domain.CaseSnapshot{CaseID: caseID, CanGenerateAnalysis: true}, nil
}

type stubChase struct{}

func (stubChase) ReplaceChaseList(context.Context, string, []domain.ChaseItem) error { return nil }
func (stubChase) GetChaseList(context.Context, string) ([]domain.ChaseItem, error) {
	return []domain.ChaseItem{{ItemKey: "cctv_full_window", Rank: 1}}, nil
}

type stubJobs struct{}

func (stubJobs) EnqueueRefresh(context.Context, string) (string, error) { return "job-1", nil }
func (stubJobs) ClaimNext(context.Context) (ports.RefreshJob, bool, error) {
	return ports.RefreshJob{}, false, nil
}
func (stubJobs) MarkCompleted(context.Context, string) error            { return nil }
func (stubJobs) MarkFailed(context.Context, string, string) error       { return nil }
func (stubJobs) StartJobForCase(context.Context, string) (string, error) { return "job-1", nil }

func newTestServer() *Server {
	strategist := strategy.New(clockwork.NewRealClock())
	assembler := stubAssembler{known: "case-1"}
	processor := chaserunner.AnalysisProcessor{Cases: assembler, Strategist: strategist, Chase: stubChase{}}
	return New(assembler, strategist, stubChase{}, stubJobs{}, processor, nil, slog.Default())
}

func TestGetStrategy(t *testing.T) {
	srv := newTestServer()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cases/case-1/strategy", nil)

	srv.Routes().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body domain.StrategyAnalysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "case-1", body.CaseID)
	assert.Len(t, body.Routes, 3)
	assert.NotEmpty(t, body.Recommendation.RouteID)
}

func TestGetStrategyNotFound(t *testing.T) {
	srv := newTestServer()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cases/unknown/strategy", nil)

	srv.Routes().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetChaseList(t *testing.T) {
	srv := newTestServer()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cases/case-1/chase-list", nil)

	srv.Routes().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cctv_full_window")
}

func TestPostChaseRefresh(t *testing.T) {
	srv := newTestServer()

	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/cases/case-1/chase-refresh", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), "job-1")

	rec = httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/cases/case-1/chase-refresh?wait=true", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "refreshed")
}
