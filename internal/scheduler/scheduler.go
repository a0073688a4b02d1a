// Package scheduler runs a job at fixed times of day.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler fires one job at each configured "HH:MM" in a timezone.
// Overlapping runs are skipped.
type Scheduler struct {
	cron     *cron.Cron
	location *time.Location
	logger   *slog.Logger
	entries  []cron.EntryID
}

// New creates a Scheduler in the given IANA timezone.
func New(timezone string, logger *slog.Logger) (*Scheduler, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", timezone, err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "scheduler")
	cl := cronLogger{logger}
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
	return &Scheduler{cron: c, location: loc, logger: logger}, nil
}

// Schedule registers task at every time in times.
func (s *Scheduler) Schedule(ctx context.Context, times []string, task func(context.Context)) error {
	for _, t := range times {
		expr, err := Spec(t)
		if err != nil {
			return err
		}
		id, err := s.cron.AddFunc(expr, func() { task(ctx) })
		if err != nil {
			return fmt.Errorf("adding cron entry: %w", err)
		}
		s.entries = append(s.entries, id)
		s.logger.Info("run scheduled", "time", t, "cron", expr, "timezone", s.location.String())
	}
	return nil
}

// Next returns the earliest upcoming run, or the zero time when nothing is scheduled.
func (s *Scheduler) Next() time.Time {
	var next time.Time
	for _, id := range s.entries {
		e := s.cron.Entry(id)
		if e.Next.IsZero() {
			continue
		}
		if next.IsZero() || e.Next.Before(next) {
			next = e.Next
		}
	}
	return next
}

// Run starts the scheduler and blocks until ctx is done, then waits for
// a running job to finish.
func (s *Scheduler) Run(ctx context.Context) {
	s.cron.Start()
	<-ctx.Done()
	<-s.cron.Stop().Done()
}

// Spec converts "HH:MM" to a five-field cron expression.
func Spec(clock string) (string, error) {
	h, m, err := ParseClock(clock)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d %d * * *", m, h), nil
}

// ParseClock parses "HH:MM".
func ParseClock(s string) (hour, minute int, err error) {
	var h, m int
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%d:%d", &h, &m); err != nil {
		return 0, 0, fmt.Errorf("schedule time %q: want HH:MM", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("schedule time %q out of range", s)
	}
	return h, m, nil
}

// cronLogger routes cron's logging through slog.
type cronLogger struct{ l *slog.Logger }

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Debug(msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Error(msg, append(keysAndValues, "error", err)...)
}
