// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// defaultQueries target hiring intent. Kept short on purpose: every query
// is a full page load plus pacing delays.
var defaultQueries = []string{
	"looking for developer",
	"hiring developer",
	"need developer",
	"looking for cofounder",
}

// defaultNegativeFilters drop self-promotion posts.
var defaultNegativeFilters = []string{
	"[for hire]",
	"i am a developer",
	"i'm a developer",
	"i am available",
	"my portfolio",
	"hire me",
	"looking for work",
	"seeking work",
	"offering my services",
	"available for hire",
	"developer looking for",
	"open to work",
}

type Config struct {
	Enabled     bool   `yaml:"enabled"`
	CookiesPath string `yaml:"cookies_path"`
	SearchHours int    `yaml:"search_hours"`
	MaxResults  int    `yaml:"max_results"`

	Queries         []string            `yaml:"queries"`
	NegativeFilters []string            `yaml:"negative_filters"`
	Selectors       map[string][]string `yaml:"selectors"`

	Headless    bool   `yaml:"headless"`
	Screenshots bool   `yaml:"screenshots"`
	CachePath   string `yaml:"cache_path"`

	Delays   DelaysConfig   `yaml:"delays"`
	Timeouts TimeoutsConfig `yaml:"timeouts"`
	Log      LogConfig      `yaml:"log"`

	//optional sinks
	DatabaseURL    string `yaml:"database_url"`
	TelegramToken  string `yaml:"telegram_token"`
	TelegramChatID int64  `yaml:"telegram_chat_id"`
}

// DelaysConfig bounds the randomized pacing delays. These are a deliberate
// throttle against detectable request-pattern regularity, not tuning knobs
// for speed.
type DelaysConfig struct {
	PreNavigateMinMS int `yaml:"pre_navigate_min_ms"`
	PreNavigateMaxMS int `yaml:"pre_navigate_max_ms"`
	ScrollPauseMinMS int `yaml:"scroll_pause_min_ms"`
	ScrollPauseMaxMS int `yaml:"scroll_pause_max_ms"`
	QueryGapMinMS    int `yaml:"query_gap_min_ms"`
	QueryGapMaxMS    int `yaml:"query_gap_max_ms"`
	ScrollBursts     int `yaml:"scroll_bursts"`
}

type TimeoutsConfig struct {
	NavigationMS  float64 `yaml:"navigation_ms"`
	ContentWaitMS float64 `yaml:"content_wait_ms"`
}

type LogConfig struct {
	Path       string `yaml:"path"`
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// Load reads the YAML config at path (a missing file is fine, defaults then
// apply), overlays environment variables and validates the result. Errors
// are fatal to the run before any browsing begins.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	//override with env vars
	if v := os.Getenv("TWITTER_ENABLED"); v != "" {
		cfg.Enabled = strings.EqualFold(v, "true")
	}
	if v := os.Getenv("TWITTER_COOKIES_PATH"); v != "" {
		cfg.CookiesPath = v
	}
	if v := os.Getenv("TWITTER_SEARCH_HOURS"); v != "" {
		hours, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TWITTER_SEARCH_HOURS: %w", err)
		}
		cfg.SearchHours = hours
	}
	if v := os.Getenv("TWITTER_MAX_RESULTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TWITTER_MAX_RESULTS: %w", err)
		}
		cfg.MaxResults = n
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.TelegramToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.TelegramChatID = id
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.SearchHours == 0 {
		c.SearchHours = 24
	}
	if c.MaxResults == 0 {
		c.MaxResults = 20
	}
	if len(c.Queries) == 0 {
		c.Queries = append([]string(nil), defaultQueries...)
	}
	if len(c.NegativeFilters) == 0 {
		c.NegativeFilters = append([]string(nil), defaultNegativeFilters...)
	}

	d := &c.Delays
	if d.PreNavigateMinMS == 0 && d.PreNavigateMaxMS == 0 {
		d.PreNavigateMinMS, d.PreNavigateMaxMS = 1000, 2000
	}
	if d.ScrollPauseMinMS == 0 && d.ScrollPauseMaxMS == 0 {
		d.ScrollPauseMinMS, d.ScrollPauseMaxMS = 1000, 2500
	}
	if d.QueryGapMinMS == 0 && d.QueryGapMaxMS == 0 {
		d.QueryGapMinMS, d.QueryGapMaxMS = 3000, 6000
	}
	if d.ScrollBursts == 0 {
		d.ScrollBursts = 2
	}

	if c.Timeouts.NavigationMS == 0 {
		c.Timeouts.NavigationMS = 60000
	}
	if c.Timeouts.ContentWaitMS == 0 {
		c.Timeouts.ContentWaitMS = 10000
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.MaxSizeMB == 0 {
		c.Log.MaxSizeMB = 10
	}
	if c.Log.MaxBackups == 0 {
		c.Log.MaxBackups = 3
	}
}

func (c *Config) validate() error {
	if !c.Enabled {
		//a disabled run never touches the rest of the config
		return nil
	}
	if c.CookiesPath == "" {
		return fmt.Errorf("cookies_path is required (or set TWITTER_COOKIES_PATH)")
	}
	if c.SearchHours < 0 {
		return fmt.Errorf("search_hours must be positive, got %d", c.SearchHours)
	}
	if c.MaxResults < 0 {
		return fmt.Errorf("max_results must be positive, got %d", c.MaxResults)
	}
	for _, q := range c.Queries {
		if strings.TrimSpace(q) == "" {
			return fmt.Errorf("queries must not contain empty entries")
		}
	}
	if c.TelegramToken != "" && c.TelegramChatID == 0 {
		return fmt.Errorf("telegram_chat_id is required when telegram_token is set")
	}
	return nil
}
