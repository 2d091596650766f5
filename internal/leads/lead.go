package leads

import (
	"time"
)

// SourceX tags leads extracted from x.com.
const SourceX = "x"

// titleLimit is the number of characters of content kept in the title.
const titleLimit = 100

// Lead is one extracted, filtered and validated post. Field names on the
// wire match what the downstream ingest already consumes, including the
// historical "subreddit" key for the originating category.
type Lead struct {
	Source    string    `json:"source"`
	SourceID  string    `json:"sourceId"`
	SourceURL string    `json:"sourceUrl"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Category  *string   `json:"subreddit"`
	PostedAt  time.Time `json:"postedAt"`
}

// New builds an X lead from extracted fields. SourceID and SourceURL must
// already be validated non-empty by the caller.
func New(id, url, content, author string, postedAt time.Time) Lead {
	return Lead{
		Source:    SourceX,
		SourceID:  id,
		SourceURL: url,
		Title:     Truncate(content, titleLimit),
		Content:   content,
		Author:    author,
		PostedAt:  postedAt,
	}
}

// Truncate shortens s to at most limit characters, appending "..." when
// anything was cut off.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
