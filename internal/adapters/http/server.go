package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"counsel/internal/metrics"
	"counsel/internal/ports"
	"counsel/internal/workers/chaserunner"
)

// Server exposes the strategy engine over HTTP. All business computation
// happens in the services; handlers only assemble, invoke and render.
type Server struct {
	cases      ports.CaseAssembler
	strategist ports.Strategist
	chase      ports.ChaseListRepository
	jobs       ports.JobRepository
	processor  chaserunner.Processor
	metrics    *metrics.Metrics
	log        *slog.Logger
}

func New(cases ports.CaseAssembler, strategist ports.Strategist, chase ports.ChaseListRepository, jobs ports.JobRepository, processor chaserunner.Processor, m *metrics.Metrics, log *slog.Logger) *Server {
	return &Server{cases: cases, strategist: strategist, chase: chase, jobs: jobs, processor: processor, metrics: m, log: log}
}

// Routes returns a chi.Router with the full API surface mounted.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.getHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Route("/cases/{caseID}", func(r chi.Router) {
		r.Get("/strategy", s.getStrategy)
		r.Get("/chase-list", s.getChaseList)
		r.Post("/chase-refresh", s.postChaseRefresh)
	})
	return r
}

func (s *Server) getHealthz(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

// getStrategy recomputes the full aggregate from the latest snapshot. The
// shape is fixed for every outcome; degraded analyses carry a banner, never a
// different shape.
func (s *Server) getStrategy(w http.ResponseWriter, r *http.Request) {
	caseID := chi.URLParam(r, "caseID")
	snap, err := s.cases.Snapshot(r.Context(), caseID)
	if err != nil {
		s.fail(w, r, caseID, err)
		return
	}
	analysis := s.strategist.Analyse(snap)
	if s.metrics != nil {
		s.metrics.ObserveAnalysis(analysis)
	}
	s.respond(w, http.StatusOK, analysis)
}

func (s *Server) getChaseList(w http.ResponseWriter, r *http.Request) {
	caseID := chi.URLParam(r, "caseID")
	items, err := s.chase.GetChaseList(r.Context(), caseID)
	if err != nil {
		s.fail(w, r, caseID, err)
		return
	}
	s.respond(w, http.StatusOK, map[string]any{"case_id": caseID, "items": items})
}

// postChaseRefresh enqueues a chase-list refresh job; with ?wait=true it runs
// the refresh inline before answering.
func (s *Server) postChaseRefresh(w http.ResponseWriter, r *http.Request) {
	caseID := chi.URLParam(r, "caseID")
	if r.URL.Query().Get("wait") == "true" {
		ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
		defer cancel()
		if err := chaserunner.ProcessInline(ctx, s.jobs, s.processor, caseID); err != nil {
			s.fail(w, r, caseID, err)
			return
		}
		s.respond(w, http.StatusOK, map[string]string{"case_id": caseID, "status": "refreshed"})
		return
	}
	jobID, err := s.jobs.EnqueueRefresh(r.Context(), caseID)
	if err != nil {
		s.fail(w, r, caseID, err)
		return
	}
	s.respond(w, http.StatusAccepted, map[string]string{"case_id": caseID, "job_id": jobID})
}

func (s *Server) respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error("response encoding failed", "error", err)
	}
}

// fail maps the error taxonomy onto status codes: unknown cases surface as
// 404, everything else as an internal error carrying the case id for
// reproducibility.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, caseID string, err error) {
	if errors.Is(err, ports.ErrCaseNotFound) {
		s.respond(w, http.StatusNotFound, map[string]string{"error": "case not found", "case_id": caseID})
		return
	}
	s.log.Error("request failed", "path", r.URL.Path, "case", caseID, "error", err)
	s.respond(w, http.StatusInternalServerError, map[string]string{"error": "internal error", "case_id": caseID})
}
