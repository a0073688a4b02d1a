package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpec(t *testing.T) {
	cases := map[string]string{
		"09:00": "0 9 * * *",
		"18:30": "30 18 * * *",
		"0:05":  "5 0 * * *",
	}
	for in, want := range cases {
		got, err := Spec(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, bad := range []string{"", "9am", "24:00", "12:60"} {
		_, err := Spec(bad)
		assert.Error(t, err, bad)
	}
}

func TestNewRejectsUnknownTimezone(t *testing.T) {
	_, err := New("Mars/Olympus", nil)
	assert.Error(t, err)
}

func TestScheduleNext(t *testing.T) {
	s, err := New("UTC", nil)
	require.NoError(t, err)
	assert.True(t, s.Next().IsZero())

	require.NoError(t, s.Schedule(context.Background(), []string{"09:00", "18:00"}, func(context.Context) {}))
	assert.Len(t, s.entries, 2)
	assert.Error(t, s.Schedule(context.Background(), []string{"bad"}, func(context.Context) {}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()
	require.Eventually(t, func() bool { return !s.Next().IsZero() }, time.Second, 10*time.Millisecond)
	next := s.Next().UTC()
	assert.Zero(t, next.Minute())
	assert.Contains(t, []int{9, 18}, next.Hour())

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}
