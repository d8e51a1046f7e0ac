package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/qepting91/reddit-gifs/internal/collector"
	"github.com/qepting91/reddit-gifs/internal/config"
	"github.com/qepting91/reddit-gifs/internal/dashboard"
	"github.com/qepting91/reddit-gifs/internal/domain"
	"github.com/qepting91/reddit-gifs/internal/ingest"
	"github.com/qepting91/reddit-gifs/internal/probe"
	"github.com/qepting91/reddit-gifs/internal/scraper"
	"github.com/qepting91/reddit-gifs/internal/storage"
)

func main() {
	// 1. Setup
	godotenv.Load()
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	cfg := config.Load(logger)
	level.Set(cfg.LogLevel)

	// 2. Load Inputs
	targets := ingest.ResolveTargets(cfg.SourcesFile, logger)

	// 3. Initialize Client (Using Factory)
	client, err := collector.NewCollector(cfg)
	if err != nil {
		logger.Error("Failed to initialize collector", "error", err)
		os.Exit(1)
	}
	logger.Info("Collector initialized", "mode", cfg.Mode, "targets", len(targets))

	// 4. Cancel in-flight requests on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 5. Scrape
	s := scraper.New(client, probe.NewHTTPProber(cfg.ProbeTimeout, logger), logger)
	rec, summary := s.Run(ctx, targets)

	// 6. Save
	writer := &storage.WriterService{FilePath: cfg.OutputPath}
	if err := save(writer, rec, summary); err != nil {
		logger.Error("Failed to save GIFs", "path", cfg.OutputPath, "working", summary.Working, "err", err)
		os.Exit(1)
	}
	logger.Info("Saved working GIFs", "count", rec.Count, "bad", summary.Bad, "path", cfg.OutputPath)

	if cfg.ReportPath != "" {
		if err := dashboard.WriteReport(cfg.ReportPath, summary); err != nil {
			logger.Error("Report failed", "path", cfg.ReportPath, "err", err)
			return
		}
		logger.Info("Report written", "path", cfg.ReportPath)
	}
}

var errInterrupted = errors.New("run interrupted before every candidate was checked, previous output left untouched")

// save writes rec unless the run was cut short, so a partial list never
// replaces the last complete one.
func save(w *storage.WriterService, rec domain.Record, summary domain.Summary) error {
	if summary.Interrupted {
		return errInterrupted
	}
	return w.Write(rec)
}
