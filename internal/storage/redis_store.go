package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Krijovnick/ai-news/internal/model"

	"github.com/redis/go-redis/v9"
)

// runHistoryLimit bounds the run log list.
const runHistoryLimit = 100

// RunRecord summarizes one aggregation run for operators. Items themselves
// are never stored; every run starts from an empty dedupe state.
type RunRecord struct {
	ID        string        `json:"id"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
	Collected int           `json:"collected"`
	Unique    int           `json:"unique"`
	Delivered int           `json:"delivered"`
	Sources   []string      `json:"sources"`
	Errors    []string      `json:"errors,omitempty"`
	Status    string        `json:"status"` // ok, empty, failed
}

type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func channelKey(id string) string {
	return fmt.Sprintf("ainews:youtube:channel:%s", id)
}

func runsKey() string {
	return "ainews:runs"
}

func lastRunKey() string {
	return "ainews:runs:last"
}

// GetChannel returns cached YouTube channel metadata.
func (s *RedisStore) GetChannel(ctx context.Context, id string) (model.ChannelInfo, bool, error) {
	b, err := s.rdb.Get(ctx, channelKey(id)).Bytes()
	if err == redis.Nil {
		return model.ChannelInfo{}, false, nil
	}
	if err != nil {
		return model.ChannelInfo{}, false, err
	}
	var info model.ChannelInfo
	if err := json.Unmarshal(b, &info); err != nil {
		return model.ChannelInfo{}, false, err
	}
	return info, true, nil
}

// SetChannel caches channel metadata for ttl.
func (s *RedisStore) SetChannel(ctx context.Context, info model.ChannelInfo, ttl time.Duration) error {
	b, err := json.Marshal(info)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, channelKey(info.ID), b, ttl).Err()
}

// RecordRun prepends r to the run log and keeps the newest entries only.
func (s *RedisStore) RecordRun(ctx context.Context, r RunRecord) error {
	b, err := json.Marshal(r)
	if err != nil {
		return err
	}
	pipe := s.rdb.TxPipeline()
	pipe.LPush(ctx, runsKey(), b)
	pipe.LTrim(ctx, runsKey(), 0, runHistoryLimit-1)
	pipe.Set(ctx, lastRunKey(), b, 0)
	_, err = pipe.Exec(ctx)
	return err
}

// RecentRuns returns up to n runs, newest first.
func (s *RedisStore) RecentRuns(ctx context.Context, n int) ([]RunRecord, error) {
	if n <= 0 {
		return nil, nil
	}
	raw, err := s.rdb.LRange(ctx, runsKey(), 0, int64(n-1)).Result()
	if err != nil {
		return nil, err
	}
	out := make([]RunRecord, 0, len(raw))
	for _, r := range raw {
		var rec RunRecord
		if err := json.Unmarshal([]byte(r), &rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// LastRun returns the latest run, if any.
func (s *RedisStore) LastRun(ctx context.Context) (RunRecord, bool, error) {
	b, err := s.rdb.Get(ctx, lastRunKey()).Bytes()
	if err == redis.Nil {
		return RunRecord{}, false, nil
	}
	if err != nil {
		return RunRecord{}, false, err
	}
	var rec RunRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return RunRecord{}, false, err
	}
	return rec, true, nil
}
