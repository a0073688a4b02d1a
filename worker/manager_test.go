package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Krijovnick/ai-news/internal/digest"

	"github.com/stretchr/testify/assert"
)

type funcWorker func(ctx context.Context) error

func (f funcWorker) Start(ctx context.Context) error { return f(ctx) }

func TestManagerWaitsAndJoinsErrors(t *testing.T) {
	started := make(chan struct{}, 2)
	m := NewManager(
		funcWorker(func(ctx context.Context) error {
			started <- struct{}{}
			<-ctx.Done()
			return nil
		}),
		funcWorker(func(ctx context.Context) error {
			started <- struct{}{}
			return errors.New("bad config")
		}),
	)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Start(ctx) }()

	<-started
	<-started
	cancel()
	select {
	case err := <-done:
		assert.ErrorContains(t, err, "bad config")
	case <-time.After(2 * time.Second):
		t.Fatal("manager did not return")
	}
}

func TestDigestWorkerRejectsBadSchedule(t *testing.T) {
	w := &DigestWorker{Job: &DigestJob{}, Times: []string{"25:99"}, Timezone: "UTC"}
	assert.Error(t, w.Start(context.Background()))

	w = &DigestWorker{Job: &DigestJob{}, Times: []string{"09:00"}, Timezone: "Nowhere/City"}
	assert.Error(t, w.Start(context.Background()))
}

func TestDigestWorkerRunOnStart(t *testing.T) {
	sender := &recordingSender{}
	job := newJob(t, sender, stubSource{name: "Hacker News"})
	w := &DigestWorker{Job: job, Times: []string{"09:00"}, Timezone: "UTC", RunOnStart: true}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	assert.Eventually(t, func() bool {
		sender.mu.Lock()
		defer sender.mu.Unlock()
		return len(sender.sent) == 1
	}, 2*time.Second, 10*time.Millisecond)
	cancel()
	assert.NoError(t, <-done)
	assert.Equal(t, digest.English.NoNews, sender.sent[0])
}
