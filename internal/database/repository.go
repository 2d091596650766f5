package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-leadgen-automation/internal/leads"
)

type Repository struct {
	db *pgxpool.Pool
}

func Connect(ctx context.Context, connString string) (*Repository, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database url: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	// Connection poolers in transaction mode (PgBouncer) choke on prepared
	// statements, so the statement cache stays off.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeExec

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	return &Repository{db: pool}, nil
}

func (r *Repository) Close() {
	if r.db != nil {
		r.db.Close()
	}
}

// SaveLead inserts a lead or refreshes an existing one, keyed by
// (source, external_id).
func (r *Repository) SaveLead(ctx context.Context, l leads.Lead) (*StoredLead, error) {
	query := `
		INSERT INTO leads (source, external_id, url, title, content, author, posted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (source, external_id)
		DO UPDATE SET title = EXCLUDED.title, content = EXCLUDED.content, author = EXCLUDED.author
		RETURNING id, source, external_id, url, title, content, author, posted_at, created_at`

	var stored StoredLead
	err := r.db.QueryRow(ctx, query, l.Source, l.SourceID, l.SourceURL, l.Title, l.Content, l.Author, l.PostedAt).
		Scan(&stored.ID, &stored.Source, &stored.ExternalID, &stored.URL, &stored.Title, &stored.Content, &stored.Author, &stored.PostedAt, &stored.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to save lead: %w", err)
	}

	return &stored, nil
}

// SaveLeads upserts a batch, returning how many went through. A single
// failed row is skipped, not fatal.
func (r *Repository) SaveLeads(ctx context.Context, batch []leads.Lead) (int, error) {
	saved := 0
	for _, l := range batch {
		if _, err := r.SaveLead(ctx, l); err != nil {
			if ctx.Err() != nil {
				return saved, ctx.Err()
			}
			continue
		}
		saved++
	}
	return saved, nil
}

// GetLeadByExternalID retrieves one lead by its source identifier.
func (r *Repository) GetLeadByExternalID(ctx context.Context, source, externalID string) (*StoredLead, error) {
	var stored StoredLead
	query := `SELECT id, source, external_id, url, title, content, author, posted_at, created_at FROM leads WHERE source = $1 AND external_id = $2`
	err := r.db.QueryRow(ctx, query, source, externalID).
		Scan(&stored.ID, &stored.Source, &stored.ExternalID, &stored.URL, &stored.Title, &stored.Content, &stored.Author, &stored.PostedAt, &stored.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("lead not found")
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	return &stored, nil
}
