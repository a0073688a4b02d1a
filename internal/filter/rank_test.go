package filter

import (
	"testing"
	"time"

	"github.com/Krijovnick/ai-news/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterByRelevance(t *testing.T) {
	f := New(DefaultKeywords())
	items := []model.NewsItem{
		{Title: "Deep learning on the edge", URL: "1"},
		{Title: "OpenAI ships ChatGPT update", URL: "2"},
		{Title: "OpenAI's next model", URL: "3"},
		{Title: "Claude gets memory", URL: "4"},
		{Title: "Gemini update", URL: "5"},
		{Title: "Claude 🚀 launch", URL: "6"},
		{Title: "Nothing relevant here", URL: "7", Keywords: nil},
	}

	got := f.FilterByRelevance(items, 10)
	require.Len(t, got, 3)
	assert.Equal(t, "2", got[0].URL)
	assert.Equal(t, 50, got[0].RelevanceScore)
	// equal scores keep input order
	assert.Equal(t, "4", got[1].URL)
	assert.Equal(t, "5", got[2].URL)

	// input untouched
	assert.Zero(t, items[1].RelevanceScore)
}

func TestFilterByRelevanceThresholdInclusive(t *testing.T) {
	f := New(DefaultKeywords())
	items := []model.NewsItem{{Title: "Claude gets memory", URL: "x"}}
	assert.Len(t, f.FilterByRelevance(items, 20), 1)
	assert.Empty(t, f.FilterByRelevance(items, 21))
	assert.Empty(t, f.FilterByRelevance(nil, 0))
}

func TestSortByPublished(t *testing.T) {
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	items := []model.NewsItem{
		{Title: "undated"},
		{Title: "old", PublishedDate: &t1},
		{Title: "new", PublishedDate: &t2},
	}
	SortByPublished(items)
	assert.Equal(t, "new", items[0].Title)
	assert.Equal(t, "old", items[1].Title)
	assert.Equal(t, "undated", items[2].Title)
}
