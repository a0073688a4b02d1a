package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Krijovnick/ai-news/internal/filter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillDefaults(t *testing.T) {
	var c Config
	c.FillDefaults()

	assert.Equal(t, "info", c.App.LogLevel)
	assert.Equal(t, []string{"09:00", "18:00"}, c.Schedule.Times)
	assert.Equal(t, 24*time.Hour, c.Window())
	assert.Equal(t, []string{"top", "new"}, c.Sources.HackerNews.Lists)
	assert.Equal(t, "ru", c.Digest.Language)
	assert.Equal(t, filter.DefaultKeywords(), c.Keywords)
	assert.Equal(t, 5*time.Minute, c.FetchTimeout())
}

func TestFillDefaultsKeepsKeywordOverrides(t *testing.T) {
	c := Config{Keywords: filter.Keywords{High: []string{"llama"}}}
	c.FillDefaults()
	assert.Equal(t, []string{"llama"}, c.Keywords.High)
	assert.Equal(t, filter.DefaultKeywords().Topic, c.Keywords.Topic)
}

func TestValidate(t *testing.T) {
	var c Config
	c.FillDefaults()
	require.NoError(t, c.Validate())

	c.Filter.MinScore = -1
	c.Digest.MaxItems = -5
	c.Sources.YouTube.Enabled = true
	c.Schedule.Times = []string{"25:00"}
	err := c.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingYouTubeKey)
	assert.ErrorContains(t, err, "min_score")
	assert.ErrorContains(t, err, "max_items")
	assert.ErrorContains(t, err, "25:00")
}

func TestValidateDelivery(t *testing.T) {
	var c Config
	err := c.ValidateDelivery()
	assert.ErrorIs(t, err, ErrMissingTelegramToken)
	assert.ErrorIs(t, err, ErrMissingTelegramChat)

	c.Telegram = TelegramConfig{BotToken: "123:abc", ChatID: "@news"}
	assert.NoError(t, c.ValidateDelivery())
}

func TestLoadKeywords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	require.NoError(t, os.WriteFile(path, []byte("topic:\n  - Llama\n  - Mistral\nexclude:\n  - tutorial\n"), 0o644))

	var c Config
	c.FillDefaults()
	require.NoError(t, c.LoadKeywords(path))
	assert.Equal(t, []string{"Llama", "Mistral"}, c.Keywords.Topic)
	assert.Equal(t, []string{"tutorial"}, c.Keywords.Exclude)
	assert.Equal(t, filter.DefaultKeywords().High, c.Keywords.High)

	assert.Error(t, c.LoadKeywords(filepath.Join(t.TempDir(), "missing.yaml")))
}
