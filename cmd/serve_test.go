package cmd

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Krijovnick/ai-news/internal/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitorHealth(t *testing.T) {
	status := metrics.NewStatus()
	m := &monitorServer{status: status}
	srv := httptest.NewServer(m.handler())
	defer srv.Close()

	status.RecordRun(7, time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC))
	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	var snap metrics.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 7, snap.LastItems)

	status.RecordError(errors.New("telegram down"), time.Now())
	resp, err = http.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
