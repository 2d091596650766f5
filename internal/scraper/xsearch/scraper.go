// Runs one hiring-intent search against x.com live search and turns the
// rendered results into leads: navigate, wait for content, scroll to
// trigger lazy loading, then extract and filter post by post.

package xsearch

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"go-leadgen-automation/internal/browser"
	"go-leadgen-automation/internal/config"
	"go-leadgen-automation/internal/driver"
	"go-leadgen-automation/internal/extract"
	"go-leadgen-automation/internal/filter"
	"go-leadgen-automation/internal/leads"
	"go-leadgen-automation/internal/selectors"
	"go-leadgen-automation/utils"
)

const searchURLFormat = "https://x.com/search?q=%s&src=typed_query&f=live"

type Scraper struct {
	cfg       *config.Config
	registry  *selectors.Registry
	extractor *extract.Extractor
	logger    *slog.Logger
	shots     *utils.ScreenshotDebugger

	// now is swappable for tests
	now func() time.Time
}

func New(cfg *config.Config, registry *selectors.Registry, logger *slog.Logger) *Scraper {
	s := &Scraper{
		cfg:       cfg,
		registry:  registry,
		extractor: extract.New(registry),
		logger:    logger,
		now:       time.Now,
	}
	if cfg.Screenshots {
		s.shots = utils.NewScreenshotDebugger(logger)
	}
	return s
}

func (s *Scraper) Name() string {
	return "XSearch"
}

// RunQuery executes the full per-query lifecycle. Navigation failure is a
// query-level error: the caller logs it and moves on to the next query.
// Everything past navigation degrades instead of failing.
func (s *Scraper) RunQuery(ctx context.Context, page driver.Page, query string) ([]leads.Lead, error) {
	results := []leads.Lead{}

	searchURL := fmt.Sprintf(searchURLFormat, url.QueryEscape(query))
	s.logger.Info("starting query", "query", query, "url", searchURL)

	browser.RandomDelay(s.cfg.Delays.PreNavigateMinMS, s.cfg.Delays.PreNavigateMaxMS)

	if err := page.Navigate(searchURL, s.cfg.Timeouts.NavigationMS); err != nil {
		if s.shots != nil {
			s.shots.Capture(page, "navigate-failed")
		}
		return results, fmt.Errorf("navigation failed for %q: %w", query, err)
	}

	//wait for the first post container; a timeout here is degraded, not fatal
	containerChain := s.registry.Chain(selectors.FieldContainer)
	if err := page.WaitForSelector(containerChain[0], s.cfg.Timeouts.ContentWaitMS); err != nil {
		s.logger.Warn("posts did not load in time, trying anyway", "query", query)
	}

	if err := browser.HumanScroll(page, s.cfg.Delays.ScrollBursts, s.cfg.Delays.ScrollPauseMinMS, s.cfg.Delays.ScrollPauseMaxMS); err != nil {
		s.logger.Warn("scrolling failed", "query", query, "error", err)
	}

	posts := s.locatePosts(page, containerChain)
	if len(posts) == 0 {
		s.logger.Warn("no post elements found", "query", query)
		return results, nil
	}

	limit := len(posts)
	if limit > s.cfg.MaxResults {
		limit = s.cfg.MaxResults
	}
	s.logger.Info("processing posts", "query", query, "count", limit)

	now := s.now()
	window := time.Duration(s.cfg.SearchHours) * time.Hour

	for i, post := range posts[:limit] {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}

		lead, ok := s.processPost(post, now, window)
		if !ok {
			continue
		}
		results = append(results, lead)
		s.logger.Info("accepted post", "index", i+1, "author", lead.Author)
	}

	s.logger.Info("query complete", "query", query, "results", len(results))
	return results, nil
}

// locatePosts tries the container chain in order and takes the first
// selector that returns any matches.
func (s *Scraper) locatePosts(page driver.Page, chain []string) []driver.Element {
	for _, sel := range chain {
		found, err := page.QueryAll(sel)
		if err != nil {
			continue
		}
		if len(found) > 0 {
			s.logger.Debug("found posts", "selector", sel, "count", len(found))
			return found
		}
	}
	return nil
}

// processPost runs extraction and filtering for one post element. Any
// missing required field or filter hit rejects the element; nothing here
// can fail the query.
func (s *Scraper) processPost(post driver.Element, now time.Time, window time.Duration) (leads.Lead, bool) {
	content, ok := s.extractor.Text(post)
	if !ok {
		return leads.Lead{}, false
	}

	sourceURL, id, ok := s.extractor.StatusURL(post)
	if !ok {
		return leads.Lead{}, false
	}

	postedAt := s.extractor.PostedAt(post, now)
	if !filter.IsFresh(postedAt, window, now) {
		return leads.Lead{}, false
	}

	if filter.MatchesNegativeFilter(content, s.cfg.NegativeFilters) {
		return leads.Lead{}, false
	}

	author := s.extractor.Author(post)
	return leads.New(id, sourceURL, content, author, postedAt), true
}
