// Package feed wraps RSS/Atom retrieval and markup cleanup shared by the
// feed-based sources.
package feed

import (
	"context"
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
)

const userAgent = "ai-news/1.0 (+https://github.com/Krijovnick/ai-news)"

// Fetcher downloads and parses feeds.
type Fetcher struct {
	client *http.Client
}

func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Fetcher{client: &http.Client{Timeout: timeout}}
}

// Fetch parses the feed at url.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()
	fp.Client = f.client
	fp.UserAgent = userAgent
	return fp.ParseURLWithContext(url, ctx)
}

// Published returns the item's publish time, falling back to its update time, in UTC.
func Published(it *gofeed.Item) *time.Time {
	var t *time.Time
	switch {
	case it.PublishedParsed != nil:
		t = it.PublishedParsed
	case it.UpdatedParsed != nil:
		t = it.UpdatedParsed
	default:
		return nil
	}
	u := t.UTC()
	return &u
}

var strict = bluemonday.StrictPolicy()

// StripTags removes all markup and collapses whitespace.
func StripTags(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	text := html.UnescapeString(strict.Sanitize(raw))
	return strings.Join(strings.Fields(text), " ")
}
