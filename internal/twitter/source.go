// Package twitter reads X/Twitter search results through a Nitter instance's RSS output.
package twitter

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
)

const (
	SourceName     = "Twitter/X"
	DefaultBaseURL = "https://nitter.net"
	canonicalHost  = "x.com"
	minTextLength  = 20
)

var DefaultHashtags = []string{
	"#ai", "#chatgpt", "#openai", "#artificialintelligence", "#stablediffusion", "#generativeai",
}

// Source searches each hashtag and keeps recent, original AI posts.
type Source struct {
	Fetcher    *feed.Fetcher
	Filter     *filter.Filter
	BaseURL    string
	Hashtags   []string
	MaxResults int // per hashtag
	Window     time.Duration
	Now        func() time.Time
}

func (s *Source) Name() string { return SourceName }

func (s *Source) Fetch(ctx context.Context) ([]model.NewsItem, error) {
	tags := s.Hashtags
	if len(tags) == 0 {
		tags = DefaultHashtags
	}
	maxResults := s.MaxResults
	if maxResults <= 0 {
		maxResults = 60
	}
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	window := s.Window
	if window <= 0 {
		window = filter.DefaultWindow
	}

	var (
		items []model.NewsItem
		errs  []error
	)
	for _, tag := range tags {
		f, err := s.Fetcher.Fetch(ctx, s.searchURL(tag, now.Add(-window)))
		if err != nil {
			slog.Warn("twitter: search failed", "hashtag", tag, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", tag, err))
			continue
		}
		count := 0
		for _, it := range f.Items {
			if count >= maxResults {
				break
			}
			text := feed.StripTags(it.Title)
			if text == "" {
				text = feed.StripTags(it.Description)
			}
			published := feed.Published(it)
			if !filter.IsRecent(published, window, now) {
				continue
			}
			if !s.Filter.ContainsTopicKeywords(text) || filter.IsRetweet(text) || len([]rune(text)) < minTextLength {
				continue
			}
			author := ""
			if len(it.Authors) > 0 && it.Authors[0] != nil {
				author = strings.TrimPrefix(it.Authors[0].Name, "@")
			}
			items = append(items, model.NewsItem{
				Title:         text,
				URL:           canonicalURL(it.Link),
				Source:        SourceName,
				PublishedDate: published,
				Author:        author,
				Keywords:      s.Filter.ExtractKeywords(text),
			})
			count++
		}
		slog.Debug("twitter: hashtag done", "hashtag", tag, "items", count)
	}
	if len(errs) == len(tags) {
		return nil, fmt.Errorf("twitter: all searches failed: %w", errors.Join(errs...))
	}
	return filter.Dedupe(items), nil
}

func (s *Source) searchURL(tag string, since time.Time) string {
	base := strings.TrimRight(s.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	q := url.Values{}
	q.Set("f", "tweets")
	q.Set("q", fmt.Sprintf("%s since:%s -filter:retweets", tag, since.UTC().Format("2006-01-02")))
	return base + "/search/rss?" + q.Encode()
}

// canonicalURL points Nitter status links back at x.com.
func canonicalURL(link string) string {
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return link
	}
	u.Scheme = "https"
	u.Host = canonicalHost
	u.Fragment = ""
	return u.String()
}
