package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"

	httpadapter "counsel/internal/adapters/http"
	pg "counsel/internal/adapters/postgres"
	"counsel/internal/config"
	"counsel/internal/metrics"
	ports "counsel/internal/ports"
	casesvc "counsel/internal/services/cases"
	strategysvc "counsel/internal/services/strategy"
	chaseworker "counsel/internal/workers/chaserunner"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Warn("config", "error", err)
	}
	if cfg.DatabaseURL == "" {
		log.Error("DATABASE_URL is required for Postgres adapters")
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := pg.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Migrate(ctx); err != nil {
		log.Error("db migrate", "error", err)
		os.Exit(1)
	}

	// Wire repositories to services (ports)
	var _ ports.CaseRepository = db
	var _ ports.ChaseListRepository = db
	var _ ports.JobRepository = db

	m := metrics.New()
	strategist := strategysvc.New(clockwork.NewRealClock())
	cases := casesvc.New(db)

	processor := chaseworker.AnalysisProcessor{Cases: cases, Strategist: strategist, Chase: db, Metrics: m}
	srv := httpadapter.New(cases, strategist, db, db, processor, m, log)
	r := chi.NewRouter()
	r.Mount("/", srv.Routes())

	// Optional background chase-list workers
	if cfg.ChaseWorkers > 0 {
		go chaseworker.Run(ctx, db, processor, cfg.ChaseWorkers, 500*time.Millisecond, log)
		log.Info("chase workers started", "count", cfg.ChaseWorkers)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- http.ListenAndServe(cfg.ListenAddr, r) }()
	log.Info("listening", "addr", cfg.ListenAddr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Info("shutting down", "signal", sig.String())
		cancel()
		time.Sleep(300 * time.Millisecond)
	case err := <-errCh:
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
