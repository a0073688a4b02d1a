// Package youtube searches recent AI videos through the YouTube Data API.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Krijovnick/ai-news/internal/filter"
	"github.com/Krijovnick/ai-news/internal/model"
)

const (
	SourceName      = "YouTube"
	watchURLPrefix  = "https://www.youtube.com/watch?v="
	defaultKeywords = 15
	maxPerQuery     = 50
	channelTTL      = 30 * 24 * time.Hour
)

// MinDuration drops shorts and teasers.
const MinDuration = 180

var permittedCountries = map[string]struct{}{
	"US": {}, "GB": {}, "CA": {}, "AU": {}, "NZ": {}, "IE": {},
	"RU": {}, "BY": {}, "KZ": {}, "KG": {}, "TJ": {}, "UZ": {}, "AM": {}, "AZ": {}, "GE": {}, "MD": {}, "UA": {},
}

// ChannelCache stores channel metadata between runs.
type ChannelCache interface {
	GetChannel(ctx context.Context, id string) (model.ChannelInfo, bool, error)
	SetChannel(ctx context.Context, info model.ChannelInfo, ttl time.Duration) error
}

type Source struct {
	API        API
	Filter     *filter.Filter
	Cache      ChannelCache // optional
	Keywords   []string     // search terms; only the first MaxKeywords are used
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
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	window := s.Window
	if window <= 0 {
		window = filter.DefaultWindow
	}
	perQuery := int64(s.MaxResults)
	if perQuery <= 0 || perQuery > maxPerQuery {
		perQuery = maxPerQuery
	}
	after := now.Add(-window).Truncate(time.Second)

	var (
		items []model.NewsItem
		errs  []error
	)
	channels := map[string]model.ChannelInfo{}
	for _, kw := range kws {
		found, err := s.searchKeyword(ctx, kw, after, perQuery, window, now, channels)
		if err != nil {
			slog.Error("youtube: keyword failed", "keyword", kw, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", kw, err))
			continue
		}
		slog.Debug("youtube: keyword done", "keyword", kw, "videos", len(found))
		items = append(items, found...)
	}
	if len(errs) == len(kws) {
		return nil, fmt.Errorf("youtube: all searches failed: %w", errors.Join(errs...))
	}
	items = filter.Dedupe(items)
	slog.Info("youtube: unique videos", "count", len(items))
	return items, nil
}

func (s *Source) searchKeyword(ctx context.Context, kw string, after time.Time, perQuery int64, window time.Duration, now time.Time, channels map[string]model.ChannelInfo) ([]model.NewsItem, error) {
	videos, err := s.API.Search(ctx, kw, after, perQuery)
	if err != nil {
		return nil, err
	}
	var (
		candidates []model.NewsItem
		ids        []string
	)
	for _, v := range videos {
		it, ok := s.convert(v, window, now)
		if !ok {
			continue
		}
		info, known := s.channel(ctx, v.ChannelID, channels)
		if !permittedChannel(info, known, v.Title) {
			continue
		}
		candidates = append(candidates, it)
		ids = append(ids, v.ID)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	durations, err := s.API.Durations(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("durations: %w", err)
	}
	var out []model.NewsItem
	for i, it := range candidates {
		d := durations[ids[i]]
		if d < MinDuration {
			continue
		}
		it.Duration = d
		out = append(out, it)
	}
	return out, nil
}

func (s *Source) convert(v Video, window time.Duration, now time.Time) (model.NewsItem, bool) {
	var published *time.Time
	if v.PublishedAt != "" {
		ts, err := filter.ParseTimestamp(v.PublishedAt)
		if err != nil {
			slog.Warn("youtube: bad publish date", "value", v.PublishedAt, "error", err)
		} else {
			published = ts
		}
	}
	if !filter.IsRecent(published, window, now) {
		return model.NewsItem{}, false
	}
	text := v.Title + " " + v.Description
	if !s.Filter.ContainsTopicKeywords(text) {
		return model.NewsItem{}, false
	}
	link := ""
	if v.ID != "" {
		link = watchURLPrefix + v.ID
	}
	return model.NewsItem{
		Title:         v.Title,
		URL:           link,
		Source:        SourceName,
		PublishedDate: published,
		Description:   v.Description,
		Channel:       v.ChannelTitle,
		Keywords:      s.Filter.ExtractKeywords(text),
	}, true
}

// channel resolves channel metadata from the run-local map, then the cache,
// then the API. Lookup failures are treated as unknown channels.
func (s *Source) channel(ctx context.Context, id string, seen map[string]model.ChannelInfo) (model.ChannelInfo, bool) {
	if id == "" {
		return model.ChannelInfo{}, false
	}
	if info, ok := seen[id]; ok {
		return info, true
	}
	if s.Cache != nil {
		info, ok, err := s.Cache.GetChannel(ctx, id)
		if err != nil {
			slog.Warn("youtube: channel cache read failed", "channel", id, "error", err)
		} else if ok {
			seen[id] = info
			return info, true
		}
	}
	info, ok, err := s.API.Channel(ctx, id)
	if err != nil || !ok {
		if err != nil {
			slog.Warn("youtube: channel lookup failed", "channel", id, "error", err)
		}
		return model.ChannelInfo{}, false
	}
	seen[id] = info
	if s.Cache != nil {
		if err := s.Cache.SetChannel(ctx, info, channelTTL); err != nil {
			slog.Warn("youtube: channel cache write failed", "channel", id, "error", err)
		}
	}
	return info, true
}

// permittedChannel accepts English- or Russian-speaking channels, judged by
// country, declared language, then the language of the channel and video text.
func permittedChannel(info model.ChannelInfo, known bool, videoTitle string) bool {
	if !known {
		return filter.IsPermittedLanguage(videoTitle)
	}
	if _, ok := permittedCountries[strings.ToUpper(info.Country)]; ok {
		return true
	}
	switch strings.ToLower(info.DefaultLanguage) {
	case "en", "ru":
		return true
	}
	if filter.IsPermittedLanguage(info.Title) || filter.IsPermittedLanguage(info.Description) {
		return true
	}
	return filter.IsPermittedLanguage(videoTitle)
}
