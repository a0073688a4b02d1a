package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Krijovnick/ai-news/internal/model"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSourceTable(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	err := renderSourceTable(&buf, []model.SourceResult{
		{Source: "Hacker News", Items: []model.NewsItem{{Title: "OpenAI ships agents"}}},
		{Source: "Reddit", Err: errors.New("403 forbidden")},
	})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Hacker News")
	assert.Contains(t, out, "OpenAI ships agents")
	assert.Contains(t, out, "❌ failed")
	assert.Contains(t, out, "403 forbidden")
}
