package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Krijovnick/ai-news/internal/ai"
	"github.com/Krijovnick/ai-news/internal/config"
	"github.com/Krijovnick/ai-news/internal/digest"
	"github.com/Krijovnick/ai-news/internal/feed"
	"github.com/Krijovnick/ai-news/internal/filter"
	"github.com/Krijovnick/ai-news/internal/googlenews"
	"github.com/Krijovnick/ai-news/internal/hackernews"
	"github.com/Krijovnick/ai-news/internal/metrics"
	"github.com/Krijovnick/ai-news/internal/pipeline"
	"github.com/Krijovnick/ai-news/internal/reddit"
	"github.com/Krijovnick/ai-news/internal/redisclient"
	"github.com/Krijovnick/ai-news/internal/source"
	"github.com/Krijovnick/ai-news/internal/storage"
	"github.com/Krijovnick/ai-news/internal/telegram"
	"github.com/Krijovnick/ai-news/internal/twitter"
	"github.com/Krijovnick/ai-news/internal/youtube"
	"github.com/Krijovnick/ai-news/worker"
)

// openStore connects to Redis when enabled. The returned store is nil when
// Redis is disabled; close is always safe to call.
func openStore(ctx context.Context, cfg config.Config) (store *storage.RedisStore, closeFn func(), err error) {
	if !cfg.Redis.Enabled {
		return nil, func() {}, nil
	}
	rdb := redisclient.New(cfg.Redis)
	pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, func() {}, fmt.Errorf("redis %s: %w", cfg.Redis.Addr, err)
	}
	return storage.NewRedisStore(rdb), func() { _ = rdb.Close() }, nil
}

// buildSources creates every enabled adapter. A positive limit overrides the
// configured per-source maximum.
func buildSources(ctx context.Context, cfg config.Config, store *storage.RedisStore, limit int) ([]source.Source, error) {
	f := filter.New(cfg.Keywords)
	window := cfg.Window()
	pick := func(n int) int {
		if limit > 0 {
			return limit
		}
		return n
	}
	fetcher := feed.NewFetcher(30 * time.Second)

	var out []source.Source
	sc := cfg.Sources
	if sc.YouTube.Enabled {
		api, err := youtube.NewAPI(ctx, sc.YouTube.APIKey)
		if err != nil {
			return nil, err
		}
		yt := &youtube.Source{
			API:        api,
			Filter:     f,
			Keywords:   cfg.Keywords.Topic,
			MaxResults: pick(sc.YouTube.MaxResults),
			Window:     window,
		}
		if store != nil {
			yt.Cache = store
		}
		out = append(out, yt)
	}
	if sc.Twitter.Enabled {
		out = append(out, &twitter.Source{
			Fetcher:    fetcher,
			Filter:     f,
			BaseURL:    sc.Twitter.BaseURL,
			Hashtags:   sc.Twitter.Hashtags,
			MaxResults: pick(sc.Twitter.MaxResults),
			Window:     window,
		})
	}
	if sc.GoogleNews.Enabled {
		out = append(out, &googlenews.Source{
			Fetcher:    fetcher,
			Filter:     f,
			BaseURL:    sc.GoogleNews.BaseURL,
			Keywords:   cfg.Keywords.Topic,
			Regions:    sc.GoogleNews.Regions,
			MaxResults: pick(sc.GoogleNews.MaxResults),
			Window:     window,
		})
	}
	if sc.HackerNews.Enabled {
		out = append(out, &hackernews.Source{
			Client:     hackernews.NewClient(sc.HackerNews.BaseAPI),
			Filter:     f,
			Lists:      sc.HackerNews.Lists,
			MaxResults: pick(sc.HackerNews.MaxResults),
			Window:     window,
		})
	}
	if sc.Reddit.Enabled {
		out = append(out, &reddit.Source{
			Client: reddit.NewClient(reddit.ClientConfig{
				BaseURL:           sc.Reddit.BaseURL,
				UserAgent:         sc.Reddit.UserAgent,
				ClientID:          sc.Reddit.ClientID,
				ClientSecret:      sc.Reddit.ClientSecret,
				RequestsPerMinute: sc.Reddit.RequestsPerMinute,
			}),
			Filter:     f,
			Subreddits: sc.Reddit.Subreddits,
			MaxResults: pick(sc.Reddit.MaxResults),
			Window:     window,
		})
	}
	return out, nil
}

func newProcessor(cfg config.Config) (*pipeline.Processor, error) {
	return pipeline.New(filter.New(cfg.Keywords), pipeline.Options{
		MinScore:   cfg.Filter.MinScore,
		SortByDate: cfg.Filter.SortByDate,
	}, slog.Default())
}

func newSender(cfg config.Config, f *digest.Formatter) (*telegram.Sender, error) {
	if err := cfg.ValidateDelivery(); err != nil {
		return nil, err
	}
	return telegram.New(cfg.Telegram.BotToken, cfg.Telegram.ChatID, telegram.Options{
		Continuation: telegram.Continuation{Note: f.Labels.ContinuesNote, Part: f.Labels.PartLabel},
		Logger:       slog.Default(),
	})
}

func newSummarizer(cfg config.Config) ai.Summarizer {
	if cfg.OpenAI.APIKey == "" {
		return nil
	}
	s, err := ai.NewOpenAI(ai.Config{APIKey: cfg.OpenAI.APIKey, Model: cfg.OpenAI.Model, BaseURL: cfg.OpenAI.BaseURL})
	if err != nil {
		slog.Warn("openai disabled", "error", err)
		return nil
	}
	return s
}

// newDigestJob wires a full run. sender overrides Telegram delivery when set.
func newDigestJob(ctx context.Context, cfg config.Config, store *storage.RedisStore, sender worker.Deliverer) (*worker.DigestJob, error) {
	formatter := digest.NewFormatter(cfg.Digest.Language)
	if sender == nil {
		tg, err := newSender(cfg, formatter)
		if err != nil {
			return nil, err
		}
		sender = tg
	}
	sources, err := buildSources(ctx, cfg, store, 0)
	if err != nil {
		return nil, err
	}
	proc, err := newProcessor(cfg)
	if err != nil {
		return nil, err
	}
	job := &worker.DigestJob{
		Sources:      sources,
		Processor:    proc,
		Formatter:    formatter,
		Sender:       sender,
		Summarizer:   newSummarizer(cfg),
		Status:       metrics.Global,
		FetchTimeout: cfg.FetchTimeout(),
		MaxItems:     cfg.Digest.MaxItems,
		Language:     cfg.OpenAI.Language,
		Logger:       slog.Default(),
	}
	if job.Language == "" {
		job.Language = cfg.Digest.Language
	}
	if store != nil {
		job.Runs = store
	}
	return job, nil
}
