// Per-field extraction with selector fallbacks. A selector that misses or
// errors is skipped; the next one in the chain gets its chance. Only the
// caller decides whether a missing field rejects the whole element.

package extract

import (
	"strings"
	"time"

	"go-leadgen-automation/internal/driver"
	"go-leadgen-automation/internal/selectors"
)

const (
	// SiteOrigin prefixes relative status hrefs.
	SiteOrigin = "https://x.com"

	// UnknownAuthor is the sentinel when no author selector matches.
	UnknownAuthor = "Unknown"

	statusPathMarker = "/status/"
	statusLinkQuery  = `a[href*="/status/"]`

	// minTextLength rejects stray UI fragments picked up by broad selectors.
	minTextLength = 5
)

type Extractor struct {
	registry *selectors.Registry
}

func New(registry *selectors.Registry) *Extractor {
	return &Extractor{registry: registry}
}

// Text returns the post content, or false when no selector in the chain
// yields text longer than minTextLength after trimming.
func (x *Extractor) Text(el driver.Element) (string, bool) {
	for _, sel := range x.registry.Chain(selectors.FieldText) {
		sub, err := el.Query(sel)
		if err != nil || sub == nil {
			continue
		}
		text, err := sub.InnerText()
		if err != nil {
			continue
		}
		text = strings.TrimSpace(text)
		if len(text) > minTextLength {
			return text, true
		}
	}
	return "", false
}

// Author returns the author handle derived from the first profile link, or
// UnknownAuthor when nothing matches.
func (x *Extractor) Author(el driver.Element) string {
	for _, sel := range x.registry.Chain(selectors.FieldAuthor) {
		sub, err := el.Query(sel)
		if err != nil || sub == nil {
			continue
		}
		href, err := sub.Attribute("href")
		if err != nil || href == "" {
			continue
		}
		handle := strings.Split(strings.Trim(href, "/"), "/")[0]
		if handle != "" {
			return handle
		}
	}
	return UnknownAuthor
}

// StatusURL returns the absolute post URL and the status id parsed from its
// path. Both must be non-empty for ok to be true; the caller rejects the
// element otherwise.
func (x *Extractor) StatusURL(el driver.Element) (url, id string, ok bool) {
	link, err := el.Query(statusLinkQuery)
	if err != nil || link == nil {
		return "", "", false
	}
	href, err := link.Attribute("href")
	if err != nil || !strings.Contains(href, statusPathMarker) {
		return "", "", false
	}

	//id is the path segment after the last "/status/", up to "/" or "?"
	rest := href[strings.LastIndex(href, statusPathMarker)+len(statusPathMarker):]
	if i := strings.IndexAny(rest, "/?"); i >= 0 {
		rest = rest[:i]
	}
	if rest == "" {
		return "", "", false
	}
	return SiteOrigin + href, rest, true
}

// PostedAt returns the post timestamp from the first machine-readable
// datetime attribute, defaulting to now when none parses.
func (x *Extractor) PostedAt(el driver.Element, now time.Time) time.Time {
	for _, sel := range x.registry.Chain(selectors.FieldTimestamp) {
		sub, err := el.Query(sel)
		if err != nil || sub == nil {
			continue
		}
		raw, err := sub.Attribute("datetime")
		if err != nil || raw == "" {
			continue
		}
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			continue
		}
		return ts
	}
	return now
}
