package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-leadgen-automation/internal/config"
	"go-leadgen-automation/internal/driver"
	"go-leadgen-automation/internal/driver/drivertest"
	"go-leadgen-automation/internal/leads"
)

// stubRunner returns canned results per query.
type stubRunner struct {
	results map[string][]leads.Lead
	errs    map[string]error
	ran     []string
}

func (r *stubRunner) RunQuery(ctx context.Context, page driver.Page, query string) ([]leads.Lead, error) {
	r.ran = append(r.ran, query)
	if err := r.errs[query]; err != nil {
		return nil, err
	}
	return r.results[query], nil
}

func (r *stubRunner) Name() string { return "stub" }

func lead(id string) leads.Lead {
	return leads.New(id, "https://x.com/u/status/"+id, "some hiring post content", "u", time.Now())
}

func newSession(queries []string, runner *stubRunner) *Session {
	cfg := &config.Config{Queries: queries}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(cfg, runner, &drivertest.FakePage{}, logger)
}

func TestRunAggregatesAndDeduplicates(t *testing.T) {
	runner := &stubRunner{
		results: map[string][]leads.Lead{
			"q1": {lead("1"), lead("2")},
			"q2": {lead("2"), lead("3")},
		},
	}

	results, err := newSession([]string{"q1", "q2"}, runner).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, results, 3)
	//first-seen order preserved across queries
	assert.Equal(t, "1", results[0].SourceID)
	assert.Equal(t, "2", results[1].SourceID)
	assert.Equal(t, "3", results[2].SourceID)
}

func TestRunContinuesPastFailingQuery(t *testing.T) {
	runner := &stubRunner{
		results: map[string][]leads.Lead{
			"q2": {lead("7")},
		},
		errs: map[string]error{
			"q1": errors.New("navigation failed: Timeout 60000ms exceeded"),
		},
	}

	results, err := newSession([]string{"q1", "q2"}, runner).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"q1", "q2"}, runner.ran)
	require.Len(t, results, 1)
	assert.Equal(t, "7", results[0].SourceID)
}

func TestRunCancelledContextIsFatal(t *testing.T) {
	runner := &stubRunner{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := newSession([]string{"q1"}, runner).Run(ctx)
	assert.Error(t, err)
	assert.Nil(t, results)
	assert.Empty(t, runner.ran)
}

func TestRunNoQueriesYieldsEmpty(t *testing.T) {
	results, err := newSession(nil, &stubRunner{}).Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, results)
}
