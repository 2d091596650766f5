package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsFresh(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	window := 24 * time.Hour

	tests := []struct {
		name     string
		postedAt time.Time
		expected bool
	}{
		{
			name:     "1 hour old",
			postedAt: now.Add(-1 * time.Hour),
			expected: true,
		},
		{
			name:     "25 hours old",
			postedAt: now.Add(-25 * time.Hour),
			expected: false,
		},
		{
			name:     "exactly at window boundary",
			postedAt: now.Add(-24 * time.Hour),
			expected: false,
		},
		{
			name:     "same instant in another timezone",
			postedAt: now.Add(-1 * time.Hour).In(time.FixedZone("EST", -5*3600)),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsFresh(tt.postedAt, window, now))
		})
	}
}

func TestMatchesNegativeFilter(t *testing.T) {
	filters := []string{
		"[for hire]",
		"i am a developer",
		"hire me",
	}

	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{
			name:     "case-insensitive substring",
			text:     "Looking for a developer, I am a developer myself",
			expected: true,
		},
		{
			name:     "bracketed tag",
			text:     "[FOR HIRE] senior golang dev",
			expected: true,
		},
		{
			name:     "hiring intent passes",
			text:     "We are hiring a backend developer for our startup",
			expected: false,
		},
		{
			name:     "empty text",
			text:     "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MatchesNegativeFilter(tt.text, filters))
		})
	}
}

func TestMatchesNegativeFilterEmptyList(t *testing.T) {
	assert.False(t, MatchesNegativeFilter("hire me please", nil))
	assert.False(t, MatchesNegativeFilter("hire me please", []string{""}))
}
