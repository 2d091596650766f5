package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.False(t, cfg.Enabled)
	assert.Equal(t, 24, cfg.SearchHours)
	assert.Equal(t, 20, cfg.MaxResults)
	assert.NotEmpty(t, cfg.Queries)
	assert.NotEmpty(t, cfg.NegativeFilters)
	assert.Equal(t, 2, cfg.Delays.ScrollBursts)
	assert.Equal(t, float64(60000), cfg.Timeouts.NavigationMS)
}

func TestLoadYAMLOverrides(t *testing.T) {
	path := writeConfig(t, `
enabled: true
cookies_path: /tmp/cookies.json
search_hours: 48
queries:
  - "hiring golang"
negative_filters:
  - "hire me"
selectors:
  text:
    - ".post-body"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 48, cfg.SearchHours)
	assert.Equal(t, []string{"hiring golang"}, cfg.Queries)
	assert.Equal(t, []string{"hire me"}, cfg.NegativeFilters)
	assert.Equal(t, []string{".post-body"}, cfg.Selectors["text"])
	//unset fields still get defaults
	assert.Equal(t, 20, cfg.MaxResults)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
enabled: false
search_hours: 48
`)

	t.Setenv("TWITTER_ENABLED", "true")
	t.Setenv("TWITTER_COOKIES_PATH", "/tmp/cookies.json")
	t.Setenv("TWITTER_SEARCH_HOURS", "12")
	t.Setenv("TWITTER_MAX_RESULTS", "5")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "/tmp/cookies.json", cfg.CookiesPath)
	assert.Equal(t, 12, cfg.SearchHours)
	assert.Equal(t, 5, cfg.MaxResults)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "enabled without cookies path",
			yaml: "enabled: true\n",
		},
		{
			name: "empty query entry",
			yaml: "enabled: true\ncookies_path: /tmp/c.json\nqueries: [\"ok\", \"  \"]\n",
		},
		{
			name: "telegram token without chat id",
			yaml: "enabled: true\ncookies_path: /tmp/c.json\ntelegram_token: abc\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadDisabledSkipsValidation(t *testing.T) {
	//a disabled run must not fail on missing cookies
	cfg, err := Load(writeConfig(t, "enabled: false\n"))
	require.NoError(t, err)
	assert.False(t, cfg.Enabled)
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "queries: [unclosed\n"))
	assert.Error(t, err)
}
