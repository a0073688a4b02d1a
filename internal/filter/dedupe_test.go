package filter

import (
	"testing"

	"github.com/Krijovnick/ai-news/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestDedupe(t *testing.T) {
	items := []model.NewsItem{
		{Title: "A", URL: "u1"},
		{Title: "a ", URL: "u2"},
		{Title: "B", URL: "u1"},
		{Title: "C", URL: "u3"},
	}
	got := Dedupe(items)
	assert.Equal(t, []model.NewsItem{{Title: "A", URL: "u1"}, {Title: "C", URL: "u3"}}, got)
}

func TestDedupeTitleCaseInsensitive(t *testing.T) {
	items := []model.NewsItem{
		{Title: "OpenAI launches GPT-5", URL: "https://a"},
		{Title: "openai launches gpt-5", URL: "https://b"},
	}
	got := Dedupe(items)
	assert.Equal(t, []model.NewsItem{{Title: "OpenAI launches GPT-5", URL: "https://a"}}, got)
}

func TestDedupeIdempotent(t *testing.T) {
	cases := map[string][]model.NewsItem{
		"mixed keys": {
			{Title: "A", URL: "u1"},
			{Title: "a ", URL: "u2"},
			{Title: "B", URL: "u1"},
			{Title: "C", URL: "u3"},
			{Title: "D"},
			{Title: "E"},
		},
		"all unique": {
			{Title: "One", URL: "u1"},
			{Title: "Two", URL: "u2"},
		},
		"empty": nil,
	}
	for name, items := range cases {
		t.Run(name, func(t *testing.T) {
			once := Dedupe(items)
			assert.Equal(t, once, Dedupe(once))
		})
	}
}

func TestDedupeEmptyURLIsSharedKey(t *testing.T) {
	items := []model.NewsItem{
		{Title: "First without link"},
		{Title: "Second without link"},
	}
	got := Dedupe(items)
	assert.Len(t, got, 1)
	assert.Equal(t, "First without link", got[0].Title)
}

func TestDedupeEmpty(t *testing.T) {
	assert.Empty(t, Dedupe(nil))
}
