package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"go-leadgen-automation/internal/browser"
	"go-leadgen-automation/internal/config"
	"go-leadgen-automation/internal/database"
	"go-leadgen-automation/internal/dedup"
	"go-leadgen-automation/internal/driver"
	"go-leadgen-automation/internal/leads"
	"go-leadgen-automation/internal/observability"
	"go-leadgen-automation/internal/reporter"
	"go-leadgen-automation/internal/scraper/xsearch"
	"go-leadgen-automation/internal/selectors"
	"go-leadgen-automation/internal/session"
)

const runTimeout = 10 * time.Minute

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "fetcher",
		Short: "Fetch hiring-intent posts from X search",
		Long: "Runs a set of hiring-intent search queries against x.com through an\n" +
			"authenticated browser session and prints the deduplicated leads as a\n" +
			"JSON array on stdout. All diagnostics go to stderr.",
		Run: func(cmd *cobra.Command, args []string) {
			os.Exit(run(configPath))
		},
	}
	rootCmd.Flags().StringVar(&configPath, "config", "configs/config.yaml", "path to the YAML config file")

	if err := rootCmd.Execute(); err != nil {
		emitEmpty()
		os.Exit(1)
	}
}

// run returns the process exit code. Whatever happens, exactly one JSON
// array reaches stdout.
func run(configPath string) int {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		emitEmpty()
		return 1
	}

	logger := observability.NewLogger(cfg.Log)
	logger.Info("x fetcher starting",
		"enabled", cfg.Enabled,
		"cookies_path", cfg.CookiesPath,
		"search_hours", cfg.SearchHours,
		"max_results", cfg.MaxResults,
		"queries", len(cfg.Queries),
	)

	if !cfg.Enabled {
		logger.Warn("fetcher is disabled via config")
		emitEmpty()
		return 0
	}

	results, err := fetch(cfg, logger)
	if err != nil {
		logger.Error("fatal error during run", "error", err)
		emitEmpty()
		return 1
	}

	deliver(cfg, logger, results)

	if err := json.NewEncoder(os.Stdout).Encode(results); err != nil {
		logger.Error("failed to encode results", "error", err)
		return 1
	}
	return 0
}

// fetch owns the browser for the whole run and returns the final
// deduplicated lead sequence.
func fetch(cfg *config.Config, logger *slog.Logger) ([]leads.Lead, error) {
	cookies, err := browser.LoadCookies(cfg.CookiesPath)
	if err != nil {
		return nil, fmt.Errorf("loading cookies: %w", err)
	}
	logger.Info("cookies loaded", "count", len(cookies))

	manager, err := browser.NewManager(cfg.Headless)
	if err != nil {
		return nil, fmt.Errorf("starting browser: %w", err)
	}
	defer manager.Close()

	browserCtx, err := manager.NewContext(cookies)
	if err != nil {
		return nil, fmt.Errorf("creating browser context: %w", err)
	}

	pwPage, err := browserCtx.NewPage()
	if err != nil {
		return nil, fmt.Errorf("creating page: %w", err)
	}
	logger.Info("browser initialized")

	registry := selectors.Default()
	for field, chain := range cfg.Selectors {
		registry.Override(selectors.Field(field), chain)
	}

	runner := xsearch.New(cfg, registry, logger)
	sess := session.New(cfg, runner, driver.NewPage(pwPage), logger)

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	return sess.Run(ctx)
}

// deliver pushes leads to the optional sinks. Sink failures are logged
// and never affect the stdout contract.
func deliver(cfg *config.Config, logger *slog.Logger, results []leads.Lead) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if cfg.DatabaseURL != "" {
		repo, err := database.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Warn("database unavailable, skipping persistence", "error", err)
		} else {
			defer repo.Close()
			saved, err := repo.SaveLeads(ctx, results)
			if err != nil {
				logger.Warn("failed to persist leads", "error", err)
			}
			logger.Info("leads persisted", "saved", saved, "total", len(results))
		}
	}

	if cfg.TelegramToken == "" || cfg.TelegramChatID == 0 {
		return
	}

	tg, err := reporter.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID)
	if err != nil {
		logger.Warn("telegram unavailable, skipping notifications", "error", err)
		return
	}

	//the persistent cache only gates notifications; stdout always carries
	//the full run result
	toSend := results
	var cache *dedup.LeadCache
	if cfg.CachePath != "" {
		cache = dedup.NewLeadCache(cfg.CachePath, logger)
		toSend = nil
		for _, l := range results {
			if !cache.IsSeen(l.SourceID) {
				toSend = append(toSend, l)
			}
		}
		logger.Info("seen-cache suppression", "total", len(results), "new", len(toSend))
	}

	sent := 0
	var sentIDs []string
	for _, l := range toSend {
		if err := tg.SendLead(l); err != nil {
			logger.Warn("failed to send lead to telegram", "id", l.SourceID, "error", err)
			continue
		}
		sent++
		sentIDs = append(sentIDs, l.SourceID)
		//pace messages to stay clear of rate limits
		time.Sleep(time.Second)
	}
	if cache != nil {
		cache.Add(sentIDs)
	}

	if sent > 0 {
		if err := tg.SendStatus(fmt.Sprintf("Found %d new leads this run.", sent)); err != nil {
			logger.Warn("failed to send status to telegram", "error", err)
		}
	}
}

func emitEmpty() {
	fmt.Println("[]")
}
