package dedup

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"go-leadgen-automation/internal/leads"
)

// ByID removes duplicate leads by source id, keeping the first occurrence
// and preserving first-seen order across the whole run. Leads with an
// empty id are dropped outright.
func ByID(in []leads.Lead) []leads.Lead {
	seen := mapset.NewThreadUnsafeSet[string]()
	out := make([]leads.Lead, 0, len(in))
	for _, l := range in {
		if l.SourceID == "" || seen.Contains(l.SourceID) {
			continue
		}
		seen.Add(l.SourceID)
		out = append(out, l)
	}
	return out
}

type seenEntry struct {
	ID        string `json:"id"`
	Timestamp int64  `json:"timestamp"`
}

// LeadCache persists seen lead ids across runs so downstream notifications
// are not repeated. Entries expire after thirty days.
type LeadCache struct {
	mu       sync.Mutex
	filePath string
	seen     map[string]int64
	logger   *slog.Logger
}

const cacheTTLMs = int64(30 * 24 * 60 * 60 * 1000)

// NewLeadCache creates or loads a lead cache under cacheDir.
func NewLeadCache(cacheDir string, logger *slog.Logger) *LeadCache {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		logger.Warn("failed to create cache directory", "error", err)
	}
	cache := &LeadCache{
		filePath: filepath.Join(cacheDir, "seen_leads.json"),
		seen:     make(map[string]int64),
		logger:   logger,
	}
	cache.load()
	return cache
}

// IsSeen checks whether a lead id was recorded by a previous run.
func (lc *LeadCache) IsSeen(id string) bool {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	_, exists := lc.seen[id]
	return exists
}

func (lc *LeadCache) Add(ids []string) {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	now := time.Now().UnixMilli()
	changed := false
	for _, id := range ids {
		if _, exists := lc.seen[id]; !exists {
			lc.seen[id] = now
			changed = true
		}
	}

	if changed {
		lc.save()
	}
}

func (lc *LeadCache) load() {
	data, err := os.ReadFile(lc.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			lc.logger.Warn("failed to read seen_leads.json", "error", err)
		}
		return
	}

	var entries []seenEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		lc.logger.Warn("failed to parse seen_leads.json", "error", err)
		return
	}

	cutoff := time.Now().UnixMilli() - cacheTTLMs
	loaded := 0
	for _, e := range entries {
		if e.Timestamp > cutoff {
			lc.seen[e.ID] = e.Timestamp
			loaded++
		}
	}
	lc.logger.Info("loaded seen leads", "kept", loaded, "expired", len(entries)-loaded)
}

func (lc *LeadCache) save() {
	entries := make([]seenEntry, 0, len(lc.seen))
	for id, ts := range lc.seen {
		entries = append(entries, seenEntry{ID: id, Timestamp: ts})
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		lc.logger.Warn("failed to marshal seen leads", "error", err)
		return
	}
	if err := os.WriteFile(lc.filePath, data, 0644); err != nil {
		lc.logger.Warn("failed to write seen_leads.json", "error", err)
	}
}
