package worker

import (
	"context"
	"log/slog"

	"github.com/Krijovnick/ai-news/internal/scheduler"
)

// DigestWorker runs a DigestJob at fixed times of day.
type DigestWorker struct {
	Job        *DigestJob
	Times      []string // "HH:MM"
	Timezone   string
	RunOnStart bool
	Logger     *slog.Logger
}

func (w *DigestWorker) Start(ctx context.Context) error {
	log := w.Logger
	if log == nil {
		log = slog.Default()
	}
	s, err := scheduler.New(w.Timezone, log)
	if err != nil {
		return err
	}
	if err := s.Schedule(ctx, w.Times, w.runOnce); err != nil {
		return err
	}
	if w.RunOnStart {
		w.runOnce(ctx)
	}
	log.Info("digest worker started", "times", w.Times, "timezone", w.Timezone)
	s.Run(ctx)
	log.Info("digest worker stopped")
	return nil
}

func (w *DigestWorker) runOnce(ctx context.Context) {
	// RunOnce logs and reports its own failures.
	_, _ = w.Job.RunOnce(ctx)
}
