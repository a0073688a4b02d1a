package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/Krijovnick/ai-news/internal/storage"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderRuns(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	err := renderRuns(&buf, []storage.RunRecord{{
		ID:        "r1",
		StartedAt: time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC),
		Duration:  42 * time.Second,
		Collected: 120,
		Unique:    90,
		Delivered: 17,
		Sources:   []string{"Hacker News", "Reddit"},
		Status:    "ok",
	}})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "2024-03-05T09:00:00Z")
	assert.Contains(t, out, "120")
	assert.Contains(t, out, "42s")
	assert.Contains(t, out, "Hacker News, Reddit")
}
