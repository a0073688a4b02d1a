package metrics

import (
	"sync"
	"time"
)

// Status tracks the outcome of the latest run for health reporting.
type Status struct {
	mu sync.RWMutex

	LastRunTime   time.Time
	LastItems     int
	LastErrorTime time.Time
	LastError     string
	Runs          int64 // every run, failed ones included
	Failures      int64
	healthy       bool
}

// Snapshot is a copy of Status safe to serialize.
type Snapshot struct {
	Healthy       bool      `json:"healthy"`
	Runs          int64     `json:"runs"`
	Failures      int64     `json:"failures"`
	LastRunTime   time.Time `json:"last_run_time,omitempty"`
	LastItems     int       `json:"last_items"`
	LastErrorTime time.Time `json:"last_error_time,omitempty"`
	LastError     string    `json:"last_error,omitempty"`
}

var Global = NewStatus()

func NewStatus() *Status {
	return &Status{healthy: true}
}

func (s *Status) RecordRun(items int, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Runs++
	s.LastRunTime = at
	s.LastItems = items
	s.healthy = true
}

func (s *Status) RecordError(err error, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Runs++
	s.Failures++
	s.LastErrorTime = at
	s.LastError = err.Error()
	s.healthy = false
}

func (s *Status) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Healthy:       s.healthy,
		Runs:          s.Runs,
		Failures:      s.Failures,
		LastRunTime:   s.LastRunTime,
		LastItems:     s.LastItems,
		LastErrorTime: s.LastErrorTime,
		LastError:     s.LastError,
	}
}
