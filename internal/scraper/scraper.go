package scraper

import (
	"context"
	"log/slog"
	"time"

	"github.com/qepting91/reddit-gifs/internal/domain"
	"github.com/qepting91/reddit-gifs/internal/extract"
	"github.com/qepting91/reddit-gifs/internal/storage"
)

// Scraper runs one fetch, extract, dedupe and probe pass over a list of
// subreddits. Sources and probes are handled strictly one at a time.
type Scraper struct {
	collector domain.Collector
	prober    domain.Prober
	logger    *slog.Logger
	now       func() time.Time
}

func New(collector domain.Collector, prober domain.Prober, logger *slog.Logger) *Scraper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scraper{collector: collector, prober: prober, logger: logger, now: time.Now}
}

// Run never fails: a source that cannot be fetched contributes nothing and a
// candidate that cannot be probed is dropped. Cancelling ctx stops probing and
// marks the summary Interrupted; candidates left unchecked are not counted as
// Bad and the record should not be saved.
func (s *Scraper) Run(ctx context.Context, targets []domain.Target) (domain.Record, domain.Summary) {
	summary := domain.Summary{Sources: make([]domain.SourceReport, 0, len(targets))}
	// index into summary.Sources of the target a URL was first seen in
	firstSeen := make(map[string]int)

	var collected []domain.Candidate
	for i, t := range targets {
		report := domain.SourceReport{Subreddit: t.Subreddit}

		items, err := s.collector.FetchFeed(ctx, t.Subreddit)
		if err != nil {
			s.logger.Error("Failed subreddit", "sub", t.Subreddit, "err", err)
			report.Err = err.Error()
		} else {
			found := extract.Candidates(t.Subreddit, items)
			report.Items = len(items)
			report.Candidates = len(found)
			for _, c := range found {
				if _, ok := firstSeen[c.URL]; !ok {
					firstSeen[c.URL] = i
				}
			}
			collected = append(collected, found...)
		}

		summary.Sources = append(summary.Sources, report)
	}

	candidates := extract.Dedupe(collected)
	summary.Candidates = len(candidates)
	s.logger.Info("Found GIF candidates, checking availability", "candidates", len(candidates))

	working := make([]string, 0, len(candidates))
	for n, c := range candidates {
		ok := ctx.Err() == nil && s.prober.Reachable(ctx, c.URL)
		// A probe cut short by cancellation says nothing about the URL.
		if ctx.Err() != nil {
			s.logger.Warn("Run interrupted, remaining candidates not checked",
				"checked", n, "remaining", len(candidates)-n, "err", ctx.Err())
			break
		}
		if !ok {
			s.logger.Info("Bad", "url", c.URL)
			summary.Bad++
			continue
		}
		s.logger.Info("OK", "url", c.URL)
		working = append(working, c.URL)
		summary.Sources[firstSeen[c.URL]].Working++
	}
	summary.Working = len(working)
	summary.Interrupted = ctx.Err() != nil

	return storage.NewRecord(working, s.now()), summary
}
