package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Krijovnick/ai-news/internal/model"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisStore(rdb), mr
}

func TestChannelCache(t *testing.T) {
	s, mr := newTestStore(t)
	ctx := context.Background()

	_, ok, err := s.GetChannel(ctx, "UC1")
	require.NoError(t, err)
	assert.False(t, ok)

	info := model.ChannelInfo{ID: "UC1", Title: "Two Minute Papers", Country: "US"}
	require.NoError(t, s.SetChannel(ctx, info, time.Hour))

	got, ok, err := s.GetChannel(ctx, "UC1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, info, got)

	mr.FastForward(2 * time.Hour)
	_, ok, err = s.GetChannel(ctx, "UC1")
	require.NoError(t, err)
	assert.False(t, ok, "entry expires")
}

func TestRunHistory(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, ok, err := s.LastRun(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	start := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < runHistoryLimit+5; i++ {
		rec := RunRecord{ID: fmt.Sprintf("run-%d", i), StartedAt: start.Add(time.Duration(i) * time.Hour), Status: "ok", Sources: []string{"YouTube"}}
		require.NoError(t, s.RecordRun(ctx, rec))
	}

	runs, err := s.RecentRuns(ctx, 3)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, fmt.Sprintf("run-%d", runHistoryLimit+4), runs[0].ID)
	assert.True(t, runs[0].StartedAt.Equal(start.Add(time.Duration(runHistoryLimit+4)*time.Hour)))

	all, err := s.RecentRuns(ctx, 1000)
	require.NoError(t, err)
	assert.Len(t, all, runHistoryLimit)

	last, ok, err := s.LastRun(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, runs[0].ID, last.ID)

	none, err := s.RecentRuns(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}
