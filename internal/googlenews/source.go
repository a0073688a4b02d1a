// Package googlenews searches Google News RSS for topic keywords.
package googlenews

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/Krijovnick/ai-news/internal/feed"
	"github.com/Krijovnick/ai-news/internal/filter"
	"github.com/Krijovnick/ai-news/internal/model"

	"github.com/mmcdole/gofeed"
)

const (
	SourceName      = "Google News"
	DefaultBaseURL  = "https://news.google.com/rss/search"
	defaultKeywords = 8
	minTitleLength  = 10
)

// DefaultRegions are the editions searched for each keyword.
var DefaultRegions = []string{"US", "GB", "CA", "AU"}

var knownSources = []struct{ domain, name string }{
	{"cnn.com", "CNN"},
	{"bbc.com", "BBC"},
	{"reuters.com", "Reuters"},
	{"ap.org", "Associated Press"},
	{"bloomberg.com", "Bloomberg"},
	{"techcrunch.com", "TechCrunch"},
	{"theverge.com", "The Verge"},
	{"wired.com", "Wired"},
	{"arstechnica.com", "Ars Technica"},
	{"engadget.com", "Engadget"},
}

// Source queries one RSS search per keyword and region.
type Source struct {
	Fetcher    *feed.Fetcher
	Filter     *filter.Filter
	BaseURL    string
	Keywords   []string // search terms; only the first MaxKeywords are used
	Regions    []string
	MaxResults int
	Window     time.Duration
	Now        func() time.Time
}

// MaxKeywords bounds how many search terms are queried per run.
var MaxKeywords = defaultKeywords

func (s *Source) Name() string { return SourceName }

func (s *Source) Fetch(ctx context.Context) ([]model.NewsItem, error) {
	kws := s.Keywords
	if len(kws) > MaxKeywords {
		kws = kws[:MaxKeywords]
	}
	if len(kws) == 0 {
		return nil, nil
	}
	regions := s.Regions
	if len(regions) == 0 {
		regions = DefaultRegions
	}
	maxResults := s.MaxResults
	if maxResults <= 0 {
		maxResults = 60
	}
	perQuery := max(maxResults/len(kws), 1)

	var (
		items    []model.NewsItem
		errs     []error
		attempts int
	)
	for _, kw := range kws {
		for _, region := range regions {
			attempts++
			f, err := s.Fetcher.Fetch(ctx, s.searchURL(kw, region))
			if err != nil {
				slog.Warn("googlenews: feed error", "keyword", kw, "region", region, "error", err)
				errs = append(errs, fmt.Errorf("%s/%s: %w", kw, region, err))
				continue
			}
			found := s.collect(f, perQuery)
			slog.Debug("googlenews: feed parsed", "keyword", kw, "region", region, "items", len(found))
			items = append(items, found...)
		}
		if ctx.Err() != nil {
			break
		}
	}
	if len(errs) == attempts {
		return nil, fmt.Errorf("googlenews: all feeds failed: %w", errors.Join(errs...))
	}
	items = filter.Dedupe(items)
	slog.Info("googlenews: unique items", "count", len(items))
	return items, nil
}

func (s *Source) searchURL(keyword, region string) string {
	base := s.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	q := url.Values{}
	q.Set("q", keyword)
	q.Set("hl", "en-"+region)
	q.Set("gl", region)
	q.Set("ceid", region+":en")
	return base + "?" + q.Encode()
}

func (s *Source) collect(f *gofeed.Feed, limit int) []model.NewsItem {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	window := s.Window
	if window <= 0 {
		window = filter.DefaultWindow
	}
	var out []model.NewsItem
	for _, it := range f.Items {
		if len(out) >= limit {
			break
		}
		published := feed.Published(it)
		if !filter.IsRecent(published, window, now) {
			continue
		}
		title := strings.TrimSpace(it.Title)
		desc := feed.StripTags(it.Description)
		if !s.Filter.ContainsTopicKeywords(title+" "+desc) || len([]rune(title)) < minTitleLength {
			continue
		}
		out = append(out, model.NewsItem{
			Title:         title,
			URL:           it.Link,
			Source:        PublisherFromURL(it.Link),
			PublishedDate: published,
			Description:   desc,
			Keywords:      s.Filter.ExtractKeywords(title + " " + desc),
		})
	}
	return out
}

// PublisherFromURL names the outlet behind a link: a known brand, else the
// first domain label in title case.
func PublisherFromURL(link string) string {
	if link == "" {
		return "Unknown"
	}
	host := link
	if u, err := url.Parse(link); err == nil && u.Host != "" {
		host = u.Host
	} else {
		host = strings.SplitN(strings.TrimPrefix(strings.TrimPrefix(link, "https://"), "http://"), "/", 2)[0]
	}
	host = strings.TrimPrefix(strings.ToLower(host), "www.")
	for _, k := range knownSources {
		if strings.Contains(host, k.domain) {
			return k.name
		}
	}
	label := strings.SplitN(host, ".", 2)[0]
	if label == "" {
		return "Unknown"
	}
	return strings.ToUpper(label[:1]) + label[1:]
}
