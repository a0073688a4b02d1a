// Package source defines the adapter contract and concurrent collection.
package source

import (
	"context"
	"log/slog"
	"time"

	"github.com/Krijovnick/ai-news/internal/model"

	"golang.org/x/sync/errgroup"
)

// Source fetches recent, topic-matching items from one upstream.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]model.NewsItem, error)
}

// Collect runs every source concurrently and returns one result per source in
// input order. Failures are carried in SourceResult.Err; timeout bounds each
// fetch when positive.
func Collect(ctx context.Context, sources []Source, timeout time.Duration, logger *slog.Logger) []model.SourceResult {
	if logger == nil {
		logger = slog.Default()
	}
	results := make([]model.SourceResult, len(sources))
	var g errgroup.Group
	for i, s := range sources {
		i, s := i, s
		g.Go(func() error {
			fctx := ctx
			if timeout > 0 {
				var cancel context.CancelFunc
				fctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			start := time.Now()
			items, err := s.Fetch(fctx)
			results[i] = model.SourceResult{Source: s.Name(), Items: items, Err: err}
			logger.Debug("source fetch done", "source", s.Name(), "items", len(items), "error", err, "took", time.Since(start))
			return nil
		})
	}
	_ = g.Wait()
	return results
}
