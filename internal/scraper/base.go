// Define an interface for all query runners
// Ensure consistency

package scraper

import (
	"context"

	"go-leadgen-automation/internal/driver"
	"go-leadgen-automation/internal/leads"
)

// Runner drives one search query through the shared page and returns the
// leads it produced. A nil error with an empty slice is a normal degraded
// outcome; an error marks a query-level failure the session logs and moves
// past.
type Runner interface {
	RunQuery(ctx context.Context, page driver.Page, query string) ([]leads.Lead, error)

	//Name is the platform name (XSearch, ...)
	Name() string
}
