package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Krijovnick/ai-news/internal/ai"
	"github.com/Krijovnick/ai-news/internal/digest"
	"github.com/Krijovnick/ai-news/internal/metrics"
	"github.com/Krijovnick/ai-news/internal/pipeline"
	"github.com/Krijovnick/ai-news/internal/source"
	"github.com/Krijovnick/ai-news/internal/storage"

	"github.com/google/uuid"
)

// Run statuses stored in the run log.
const (
	StatusOK     = "ok"
	StatusEmpty  = "empty"
	StatusFailed = "failed"
)

// Deliverer posts a rendered message.
type Deliverer interface {
	Send(ctx context.Context, text string) error
}

// RunRecorder keeps a log of completed runs.
type RunRecorder interface {
	RecordRun(ctx context.Context, r storage.RunRecord) error
}

// DigestJob performs one collect, rank, format and deliver cycle.
type DigestJob struct {
	Sources      []source.Source
	Processor    *pipeline.Processor
	Formatter    *digest.Formatter
	Sender       Deliverer
	Summarizer   ai.Summarizer // optional
	Runs         RunRecorder   // optional
	Status       *metrics.Status
	FetchTimeout time.Duration
	MaxItems     int    // 0 shows every ranked item
	Language     string // passed to the summarizer
	Logger       *slog.Logger
	Now          func() time.Time
}

func (j *DigestJob) logger() *slog.Logger {
	if j.Logger == nil {
		return slog.Default()
	}
	return j.Logger
}

func (j *DigestJob) now() time.Time {
	if j.Now == nil {
		return time.Now()
	}
	return j.Now()
}

// RunOnce executes a full cycle. When nothing relevant is found the no-news
// message is delivered instead of a digest. On failure an error notice is
// delivered on a best-effort basis and the error is returned.
func (j *DigestJob) RunOnce(ctx context.Context) (storage.RunRecord, error) {
	if j.Processor == nil || j.Formatter == nil || j.Sender == nil {
		return storage.RunRecord{}, errors.New("digest job: processor, formatter and sender are required")
	}
	start := j.now()
	rec := storage.RunRecord{ID: uuid.NewString(), StartedAt: start.UTC()}
	log := j.logger().With("run", rec.ID)
	log.Info("run started", "sources", len(j.Sources))

	err := j.run(ctx, log, &rec)
	rec.Duration = j.now().Sub(start)
	metrics.RunDuration.Observe(rec.Duration.Seconds())
	if err != nil {
		rec.Status = StatusFailed
		rec.Errors = append(rec.Errors, err.Error())
		log.Error("run failed", "error", err)
		j.deliver(ctx, log, "error", j.Formatter.ErrorMessage(err.Error()))
		if j.Status != nil {
			j.Status.RecordError(err, j.now())
		}
	} else if j.Status != nil {
		j.Status.RecordRun(rec.Delivered, j.now())
	}
	j.record(ctx, log, rec)
	log.Info("run finished", "status", rec.Status, "delivered", rec.Delivered, "took", rec.Duration)
	return rec, err
}

func (j *DigestJob) run(ctx context.Context, log *slog.Logger, rec *storage.RunRecord) error {
	results := source.Collect(ctx, j.Sources, j.FetchTimeout, log)
	if err := ctx.Err(); err != nil {
		return err
	}
	out := j.Processor.Process(results)
	rec.Collected = out.Collected
	rec.Unique = out.Unique
	rec.Sources = out.SourcesUsed
	rec.Errors = out.Errors

	if out.Collected == 0 || len(out.Items) == 0 {
		log.Warn("no relevant news found", "collected", out.Collected)
		rec.Status = StatusEmpty
		if err := j.deliver(ctx, log, "no_news", j.Formatter.NoNews()); err != nil {
			return fmt.Errorf("send no-news message: %w", err)
		}
		return nil
	}

	items := out.Items
	n := j.MaxItems
	if n <= 0 || n > len(items) {
		n = len(items)
	}
	if err := j.deliver(ctx, log, "digest", j.Formatter.Format(items, n)); err != nil {
		return fmt.Errorf("send digest: %w", err)
	}
	rec.Delivered = n
	rec.Status = StatusOK

	summary := digest.RunSummary{Found: len(items), Sources: out.SourcesUsed, Errors: out.Errors}
	if j.Summarizer != nil {
		overview, err := j.Summarizer.SummarizeDigest(ctx, items[:n], j.Language)
		if err != nil {
			log.Warn("overview skipped", "error", err)
		}
		summary.Overview = overview
	}
	text, err := j.Formatter.Summary(summary)
	if err != nil {
		return fmt.Errorf("render summary: %w", err)
	}
	if err := j.deliver(ctx, log, "summary", text); err != nil {
		return fmt.Errorf("send summary: %w", err)
	}
	return nil
}

func (j *DigestJob) deliver(ctx context.Context, log *slog.Logger, kind, text string) error {
	err := j.Sender.Send(ctx, text)
	status := "ok"
	if err != nil {
		status = "error"
		log.Error("delivery failed", "kind", kind, "error", err)
	}
	metrics.Deliveries.WithLabelValues(kind, status).Inc()
	return err
}

func (j *DigestJob) record(ctx context.Context, log *slog.Logger, rec storage.RunRecord) {
	if j.Runs == nil {
		return
	}
	// The run log must survive a cancelled run context.
	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := j.Runs.RecordRun(rctx, rec); err != nil {
		log.Warn("run log write failed", "error", err)
	}
}
