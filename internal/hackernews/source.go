package hackernews

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Krijovnick/ai-news/internal/filter"
	"github.com/Krijovnick/ai-news/internal/model"
)

const (
	SourceName     = "Hacker News"
	minTitleLength = 10
	minPoints      = 1
	itemURLPrefix  = "https://news.ycombinator.com/item?id="
)

// Source adapts HN story lists into digest items.
type Source struct {
	Client     *Client
	Filter     *filter.Filter
	Lists      []string // e.g. top, new
	MaxResults int
	Window     time.Duration
	Now        func() time.Time
}

func (s *Source) Name() string { return SourceName }

// Fetch scans up to 2*MaxResults ids from the configured lists and keeps
// recent AI stories.
func (s *Source) Fetch(ctx context.Context) ([]model.NewsItem, error) {
	lists := s.Lists
	if len(lists) == 0 {
		lists = []string{"top", "new"}
	}
	max := s.MaxResults
	if max <= 0 {
		max = 50
	}

	var ids []int
	seen := map[int]struct{}{}
	for _, list := range lists {
		got, err := s.Client.StoryIDs(ctx, list)
		if err != nil {
			return nil, err
		}
		for _, id := range got {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	if len(ids) > max*2 {
		ids = ids[:max*2]
	}
	slog.Info("hackernews: checking stories", "count", len(ids))

	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	window := s.Window
	if window <= 0 {
		window = filter.DefaultWindow
	}

	var out []model.NewsItem
	for _, it := range s.Client.Items(ctx, ids) {
		item, ok := s.convert(it, window, now)
		if !ok {
			continue
		}
		out = append(out, item)
		if len(out) >= max {
			break
		}
	}
	if err := ctx.Err(); err != nil && len(out) == 0 {
		return nil, fmt.Errorf("hackernews: %w", err)
	}
	return filter.Dedupe(out), nil
}

func (s *Source) convert(it Item, window time.Duration, now time.Time) (model.NewsItem, bool) {
	if it.Type != "story" || it.Dead || it.Deleted {
		return model.NewsItem{}, false
	}
	var published *time.Time
	if it.Time > 0 {
		t := time.Unix(it.Time, 0).UTC()
		published = &t
	}
	if !filter.IsRecent(published, window, now) {
		return model.NewsItem{}, false
	}
	title := strings.TrimSpace(it.Title)
	if !s.Filter.ContainsTopicKeywords(title) || len([]rune(title)) < minTitleLength || it.Score < minPoints {
		return model.NewsItem{}, false
	}
	link := strings.TrimSpace(it.URL)
	if link == "" {
		link = fmt.Sprintf("%s%d", itemURLPrefix, it.ID)
	}
	return model.NewsItem{
		Title:         title,
		URL:           link,
		Source:        SourceName,
		PublishedDate: published,
		Author:        it.By,
		Points:        it.Score,
		Comments:      it.Descendants,
		Keywords:      s.Filter.ExtractKeywords(title),
	}, true
}
