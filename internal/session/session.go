// One run: every configured query driven sequentially through the shared
// page, results aggregated and deduplicated. Queries are never concurrent;
// the page belongs to this session alone for the run's duration.

package session

import (
	"context"
	"log/slog"

	"go-leadgen-automation/internal/browser"
	"go-leadgen-automation/internal/config"
	"go-leadgen-automation/internal/dedup"
	"go-leadgen-automation/internal/driver"
	"go-leadgen-automation/internal/leads"
	"go-leadgen-automation/internal/scraper"
)

type Session struct {
	cfg    *config.Config
	runner scraper.Runner
	page   driver.Page
	logger *slog.Logger
}

func New(cfg *config.Config, runner scraper.Runner, page driver.Page, logger *slog.Logger) *Session {
	return &Session{
		cfg:    cfg,
		runner: runner,
		page:   page,
		logger: logger,
	}
}

// Run executes all configured queries and returns the deduplicated lead
// sequence in first-seen order. A failing query is logged and skipped; a
// cancelled context is fatal and yields no results at all — an explicit
// empty failure beats a silently partial one.
func (s *Session) Run(ctx context.Context) ([]leads.Lead, error) {
	var collected []leads.Lead

	total := len(s.cfg.Queries)
	for i, query := range s.cfg.Queries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		s.logger.Info("running query", "index", i+1, "total", total, "query", query, "runner", s.runner.Name())

		found, err := s.runner.RunQuery(ctx, s.page, query)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.logger.Warn("query failed", "query", query, "error", err)
		}
		collected = append(collected, found...)

		//longer jitter between queries than within them
		if i < total-1 {
			browser.RandomDelay(s.cfg.Delays.QueryGapMinMS, s.cfg.Delays.QueryGapMaxMS)
		}
	}

	unique := dedup.ByID(collected)
	s.logger.Info("run complete", "collected", len(collected), "unique", len(unique))
	return unique, nil
}
