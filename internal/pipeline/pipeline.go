// Package pipeline merges per-source results into one ranked item list.
package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/Krijovnick/ai-news/internal/filter"
	"github.com/Krijovnick/ai-news/internal/metrics"
	"github.com/Krijovnick/ai-news/internal/model"
)

// DefaultMinScore is the relevance threshold used by scheduled runs.
const DefaultMinScore = 10

// Options tune processing.
type Options struct {
	MinScore   int
	SortByDate bool // newest first after ranking; undated items last
}

// Outcome is the result of processing one batch.
type Outcome struct {
	Items       []model.NewsItem
	SourcesUsed []string
	Errors      []string // "<source>: <error>"
	Collected   int
	Unique      int
}

// Processor runs dedupe, relevance filtering and ordering over source results.
type Processor struct {
	filter *filter.Filter
	opts   Options
	logger *slog.Logger
}

func New(f *filter.Filter, opts Options, logger *slog.Logger) (*Processor, error) {
	if f == nil {
		return nil, fmt.Errorf("pipeline: nil filter")
	}
	if opts.MinScore < 0 {
		return nil, fmt.Errorf("pipeline: min score must be >= 0, got %d", opts.MinScore)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{filter: f, opts: opts, logger: logger.With("component", "pipeline")}, nil
}

// Merge concatenates successful results in order and reports failures.
// A failed source never prevents the others from being used.
func (p *Processor) Merge(results []model.SourceResult) Outcome {
	var out Outcome
	var all []model.NewsItem
	for _, r := range results {
		if !r.OK() {
			msg := fmt.Sprintf("%s: %v", r.Source, r.Err)
			out.Errors = append(out.Errors, msg)
			metrics.SourceErrors.WithLabelValues(r.Source).Inc()
			p.logger.Error("source failed", "source", r.Source, "error", r.Err)
			continue
		}
		all = append(all, r.Items...)
		out.SourcesUsed = append(out.SourcesUsed, r.Source)
		metrics.ItemsCollected.WithLabelValues(r.Source).Add(float64(len(r.Items)))
		p.logger.Info("source collected", "source", r.Source, "items", len(r.Items))
	}
	out.Items = all
	out.Collected = len(all)
	p.logger.Info("collection finished", "items", out.Collected, "sources", len(out.SourcesUsed))
	return out
}

// Process merges results and turns them into the final ranked list.
func (p *Processor) Process(results []model.SourceResult) Outcome {
	out := p.Merge(results)
	out.Items, out.Unique = p.rank(out.Items)
	metrics.DigestItems.Set(float64(len(out.Items)))
	return out
}

// Rank dedupes, filters by relevance and orders items.
func (p *Processor) Rank(items []model.NewsItem) []model.NewsItem {
	ranked, _ := p.rank(items)
	return ranked
}

func (p *Processor) rank(items []model.NewsItem) ([]model.NewsItem, int) {
	unique := filter.Dedupe(items)
	metrics.ItemsDropped.WithLabelValues("duplicate").Add(float64(len(items) - len(unique)))
	p.logger.Info("duplicates removed", "remaining", len(unique))

	relevant := p.filter.FilterByRelevance(unique, p.opts.MinScore)
	metrics.ItemsDropped.WithLabelValues("relevance").Add(float64(len(unique) - len(relevant)))
	p.logger.Info("relevance filter applied", "remaining", len(relevant), "min_score", p.opts.MinScore)

	if p.opts.SortByDate {
		filter.SortByPublished(relevant)
	}
	return relevant, len(unique)
}
