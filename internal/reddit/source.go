// Package reddit turns subreddit hot/new listings into digest items.
package reddit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/Krijovnick/ai-news/internal/filter"
	"github.com/Krijovnick/ai-news/internal/model"
)

const (
	SourceName     = "Reddit"
	minTitleLength = 10
	minScore       = 1
	permalinkBase  = "https://reddit.com"
)

var DefaultSubreddits = []string{"MachineLearning", "Artificial", "ChatGPT", "OpenAI", "StableDiffusion"}

var (
	imageMarkers = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", "imgur.com", "i.redd.it"}
	videoMarkers = []string{".mp4", ".webm", ".mov", "youtube.com", "youtu.be", "vimeo.com", "streamable.com"}
)

type Source struct {
	Client     *Client
	Filter     *filter.Filter
	Subreddits []string
	Sorts      []string // listings per subreddit, default hot and new
	MaxResults int
	Window     time.Duration
	Now        func() time.Time
}

func (s *Source) Name() string { return SourceName }

func (s *Source) Fetch(ctx context.Context) ([]model.NewsItem, error) {
	subs := s.Subreddits
	if len(subs) == 0 {
		subs = DefaultSubreddits
	}
	sorts := s.Sorts
	if len(sorts) == 0 {
		sorts = []string{"hot", "new"}
	}
	maxResults := s.MaxResults
	if maxResults <= 0 {
		maxResults = 50
	}
	perSub := max(maxResults/len(subs), 1)

	var (
		items []model.NewsItem
		errs  []error
	)
	for _, sub := range subs {
		found, err := s.fetchSubreddit(ctx, sub, sorts, perSub)
		if err != nil {
			slog.Warn("reddit: subreddit failed", "subreddit", sub, "error", err)
			errs = append(errs, err)
			continue
		}
		slog.Debug("reddit: subreddit done", "subreddit", sub, "items", len(found))
		items = append(items, found...)
	}
	if len(errs) == len(subs) {
		return nil, fmt.Errorf("reddit: all subreddits failed: %w", errors.Join(errs...))
	}
	return filter.Dedupe(items), nil
}

func (s *Source) fetchSubreddit(ctx context.Context, sub string, sorts []string, limit int) ([]model.NewsItem, error) {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	window := s.Window
	if window <= 0 {
		window = filter.DefaultWindow
	}
	var out []model.NewsItem
	for _, sort := range sorts {
		posts, err := s.Client.Listing(ctx, sub, sort, limit)
		if err != nil {
			return nil, err
		}
		for _, p := range posts {
			if it, ok := s.convert(p, sub, window, now); ok {
				out = append(out, it)
			}
		}
	}
	return out, nil
}

func (s *Source) convert(p Post, sub string, window time.Duration, now time.Time) (model.NewsItem, bool) {
	sec, frac := math.Modf(p.CreatedUTC)
	published := time.Unix(int64(sec), int64(frac*1e9)).UTC()
	if !filter.IsRecent(&published, window, now) {
		return model.NewsItem{}, false
	}
	title := strings.TrimSpace(p.Title)
	if !s.Filter.ContainsTopicKeywords(title) || len([]rune(title)) < minTitleLength || p.Score < minScore {
		return model.NewsItem{}, false
	}
	if p.Subreddit != "" {
		sub = p.Subreddit
	}
	author := p.Author
	if author == "" {
		author = "deleted"
	}
	return model.NewsItem{
		Title:         title,
		URL:           permalinkBase + p.Permalink,
		Source:        SourceName + " r/" + sub,
		PublishedDate: &published,
		Author:        author,
		Points:        p.Score,
		Comments:      p.NumComments,
		ContentType:   ContentType(p),
		Keywords:      s.Filter.ExtractKeywords(title + " " + p.Selftext),
	}, true
}

// ContentType classifies a post as text, image, video or link.
func ContentType(p Post) string {
	if p.Selftext != "" && p.Selftext != "[deleted]" {
		return "text"
	}
	u := strings.ToLower(p.URL)
	if containsAny(u, imageMarkers) {
		return "image"
	}
	if containsAny(u, videoMarkers) {
		return "video"
	}
	if strings.HasPrefix(u, "http") && !containsAny(u, []string{"reddit.com", "redd.it"}) {
		return "link"
	}
	return "text"
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
