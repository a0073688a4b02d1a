package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsTopicKeywords(t *testing.T) {
	f := New(DefaultKeywords())

	cases := []struct {
		name string
		text string
		want bool
	}{
		{"topic keyword", "OpenAI launches Sora", true},
		{"case insensitive", "new CHATGPT release", true},
		{"exclusion wins", "New research paper on LLM", false},
		{"several exclusions", "OpenAI research paper on gradient descent", false},
		{"no keyword", "Weather today", false},
		{"empty", "", false},
		{"substring match", "Claude-powered assistants", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, f.ContainsTopicKeywords(tc.text))
		})
	}
}

func TestExtractKeywords(t *testing.T) {
	f := New(Keywords{Topic: []string{"ChatGPT", "OpenAI", "Sora", "openai"}})

	assert.Equal(t, []string{"OpenAI", "Sora"}, f.ExtractKeywords("OpenAI shows Sora, openai again"))
	assert.Equal(t, []string{"ChatGPT"}, f.ExtractKeywords("chatgpt chatgpt chatgpt"))
	assert.Empty(t, f.ExtractKeywords(""))
	assert.Empty(t, f.ExtractKeywords("nothing here"))
}

func TestExtractKeywordsDefaultsReportEachOnce(t *testing.T) {
	f := New(DefaultKeywords())
	got := f.ExtractKeywords("OpenAI and Anthropic")
	assert.Equal(t, []string{"OpenAI", "Anthropic", "AI"}, got)
}

func TestIsRetweet(t *testing.T) {
	assert.True(t, IsRetweet("RT @openai: new model"))
	assert.False(t, IsRetweet("Great thread about RT @ handling"))
}
