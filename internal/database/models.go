package database

import (
	"time"
)

// StoredLead mirrors the leads table row.
type StoredLead struct {
	ID         string    `json:"id"`
	Source     string    `json:"source"`
	ExternalID string    `json:"external_id"`
	URL        string    `json:"url"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	PostedAt   time.Time `json:"posted_at"`
	CreatedAt  time.Time `json:"created_at"`
}
