package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/Krijovnick/ai-news/internal/digest"
	"github.com/Krijovnick/ai-news/internal/filter"
	"github.com/Krijovnick/ai-news/internal/pipeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewDigest(t *testing.T) {
	proc, err := pipeline.New(filter.New(filter.DefaultKeywords()), pipeline.Options{MinScore: 10}, nil)
	require.NoError(t, err)
	f := digest.NewFormatter("en")
	f.Now = func() time.Time { return time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC) }

	in := `[
	  {"title": "Claude gets tools", "url": "https://a.example", "source": "Reddit", "content_type": "text"},
	  {"title": "Claude gets tools", "url": "https://b.example", "source": "Hacker News"},
	  {"title": "Weekend hiking routes", "url": "https://c.example", "source": "Hacker News"}
	]`
	out, err := previewDigest(strings.NewReader(in), proc, f, 0)
	require.NoError(t, err)
	assert.Contains(t, out, "05 March 2024")
	assert.Equal(t, 1, strings.Count(out, "🔹"))
	assert.Contains(t, out, "<a href='https://a.example'>Claude gets tools</a>")

	_, err = previewDigest(strings.NewReader("{"), proc, f, 0)
	assert.Error(t, err)

	out, err = previewDigest(strings.NewReader(`[{"title": "Weekend hiking routes"}]`), proc, f, 0)
	require.NoError(t, err)
	assert.Equal(t, digest.English.NoNews, out)
}
