package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Krijovnick/ai-news/internal/filter"
	"github.com/Krijovnick/ai-news/internal/scheduler"
)

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"` // text or json
}

// RedisConfig holds redis connection settings. Redis is optional; it backs
// the YouTube channel cache and the run log.
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type TelegramConfig struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   string `mapstructure:"chat_id"` // numeric id or @channel
}

type YouTubeConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	APIKey     string `mapstructure:"api_key"`
	MaxResults int    `mapstructure:"max_results"`
}

type TwitterConfig struct {
	Enabled    bool     `mapstructure:"enabled"`
	BaseURL    string   `mapstructure:"base_url"` // Nitter instance
	Hashtags   []string `mapstructure:"hashtags"`
	MaxResults int      `mapstructure:"max_results"`
}

type GoogleNewsConfig struct {
	Enabled    bool     `mapstructure:"enabled"`
	BaseURL    string   `mapstructure:"base_url"`
	Regions    []string `mapstructure:"regions"`
	MaxResults int      `mapstructure:"max_results"`
}

type HackerNewsConfig struct {
	Enabled    bool     `mapstructure:"enabled"`
	BaseAPI    string   `mapstructure:"base_api"`
	Lists      []string `mapstructure:"lists"`
	MaxResults int      `mapstructure:"max_results"`
}

type RedditConfig struct {
	Enabled           bool     `mapstructure:"enabled"`
	BaseURL           string   `mapstructure:"base_url"`
	UserAgent         string   `mapstructure:"user_agent"`
	ClientID          string   `mapstructure:"client_id"`
	ClientSecret      string   `mapstructure:"client_secret"`
	Subreddits        []string `mapstructure:"subreddits"`
	MaxResults        int      `mapstructure:"max_results"`
	RequestsPerMinute int      `mapstructure:"requests_per_minute"`
}

// DataSources groups available collectors.
type DataSources struct {
	FetchTimeout string           `mapstructure:"fetch_timeout"` // duration string, e.g. "3m"
	YouTube      YouTubeConfig    `mapstructure:"youtube"`
	Twitter      TwitterConfig    `mapstructure:"twitter"`
	GoogleNews   GoogleNewsConfig `mapstructure:"google_news"`
	HackerNews   HackerNewsConfig `mapstructure:"hackernews"`
	Reddit       RedditConfig     `mapstructure:"reddit"`
}

// FilterConfig controls relevance and recency rules.
type FilterConfig struct {
	MinScore     int  `mapstructure:"min_score"`
	RecencyHours int  `mapstructure:"recency_hours"`
	SortByDate   bool `mapstructure:"sort_by_date"`
}

// DigestConfig controls rendering. MaxItems 0 means no limit.
type DigestConfig struct {
	MaxItems int    `mapstructure:"max_items"`
	Language string `mapstructure:"language"` // ru or en
}

// ScheduleConfig lists daily run times ("HH:MM") for serve.
type ScheduleConfig struct {
	Times      []string `mapstructure:"times"`
	Timezone   string   `mapstructure:"timezone"`
	RunOnStart bool     `mapstructure:"run_on_start"`
}

// OpenAIConfig enables an optional recap line in the run summary.
type OpenAIConfig struct {
	APIKey   string `mapstructure:"api_key"`
	Model    string `mapstructure:"model"`
	BaseURL  string `mapstructure:"base_url"`
	Language string `mapstructure:"language"`
}

type MonitoringConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
}

// Config is the top-level configuration structure.
type Config struct {
	App          AppConfig        `mapstructure:"app"`
	Redis        RedisConfig      `mapstructure:"redis"`
	Telegram     TelegramConfig   `mapstructure:"telegram"`
	Sources      DataSources      `mapstructure:"sources"`
	Filter       FilterConfig     `mapstructure:"filter"`
	Digest       DigestConfig     `mapstructure:"digest"`
	Schedule     ScheduleConfig   `mapstructure:"schedule"`
	Keywords     filter.Keywords  `mapstructure:"keywords"`
	KeywordsFile string           `mapstructure:"keywords_file"`
	OpenAI       OpenAIConfig     `mapstructure:"openai"`
	Monitoring   MonitoringConfig `mapstructure:"monitoring"`
}

// FillDefaults applies default values if not provided. Booleans and
// thresholds where zero is meaningful get their defaults from viper instead.
func (c *Config) FillDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.App.LogFormat == "" {
		c.App.LogFormat = "text"
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "127.0.0.1:6379"
	}
	if c.Sources.FetchTimeout == "" {
		c.Sources.FetchTimeout = "5m"
	}
	if c.Sources.YouTube.MaxResults == 0 {
		c.Sources.YouTube.MaxResults = 50
	}
	if c.Sources.Twitter.BaseURL == "" {
		c.Sources.Twitter.BaseURL = "https://nitter.net"
	}
	if len(c.Sources.Twitter.Hashtags) == 0 {
		c.Sources.Twitter.Hashtags = []string{"#ai", "#chatgpt", "#openai", "#artificialintelligence", "#stablediffusion", "#generativeai"}
	}
	if c.Sources.Twitter.MaxResults == 0 {
		c.Sources.Twitter.MaxResults = 60
	}
	if c.Sources.GoogleNews.BaseURL == "" {
		c.Sources.GoogleNews.BaseURL = "https://news.google.com/rss/search"
	}
	if len(c.Sources.GoogleNews.Regions) == 0 {
		c.Sources.GoogleNews.Regions = []string{"US", "GB", "CA", "AU"}
	}
	if c.Sources.GoogleNews.MaxResults == 0 {
		c.Sources.GoogleNews.MaxResults = 60
	}
	if c.Sources.HackerNews.BaseAPI == "" {
		c.Sources.HackerNews.BaseAPI = "https://hacker-news.firebaseio.com/v0"
	}
	if len(c.Sources.HackerNews.Lists) == 0 {
		c.Sources.HackerNews.Lists = []string{"top", "new"}
	}
	if c.Sources.HackerNews.MaxResults == 0 {
		c.Sources.HackerNews.MaxResults = 50
	}
	if c.Sources.Reddit.UserAgent == "" {
		c.Sources.Reddit.UserAgent = "AI_News_Aggregator/1.0"
	}
	if len(c.Sources.Reddit.Subreddits) == 0 {
		c.Sources.Reddit.Subreddits = []string{"MachineLearning", "Artificial", "ChatGPT", "OpenAI", "StableDiffusion"}
	}
	if c.Sources.Reddit.MaxResults == 0 {
		c.Sources.Reddit.MaxResults = 50
	}
	if c.Filter.RecencyHours == 0 {
		c.Filter.RecencyHours = 24
	}
	if c.Digest.Language == "" {
		c.Digest.Language = "ru"
	}
	if len(c.Schedule.Times) == 0 {
		c.Schedule.Times = []string{"09:00", "18:00"}
	}
	if c.Schedule.Timezone == "" {
		c.Schedule.Timezone = "UTC"
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4o-mini"
	}
	if c.Monitoring.Addr == "" {
		c.Monitoring.Addr = ":8080"
	}
	c.Keywords = mergeKeywords(filter.DefaultKeywords(), c.Keywords)
}

// Validate reports configuration errors that make any run impossible.
func (c *Config) Validate() error {
	var errs []error
	if c.Filter.MinScore < 0 {
		errs = append(errs, fmt.Errorf("filter.min_score must be >= 0, got %d", c.Filter.MinScore))
	}
	if c.Filter.RecencyHours < 0 {
		errs = append(errs, fmt.Errorf("filter.recency_hours must be >= 0, got %d", c.Filter.RecencyHours))
	}
	if c.Digest.MaxItems < 0 {
		errs = append(errs, fmt.Errorf("digest.max_items must be >= 0, got %d", c.Digest.MaxItems))
	}
	if c.Sources.YouTube.Enabled && strings.TrimSpace(c.Sources.YouTube.APIKey) == "" {
		errs = append(errs, ErrMissingYouTubeKey)
	}
	if _, err := time.ParseDuration(c.Sources.FetchTimeout); err != nil {
		errs = append(errs, fmt.Errorf("sources.fetch_timeout: %w", err))
	}
	for _, t := range c.Schedule.Times {
		if _, _, err := scheduler.ParseClock(t); err != nil {
			errs = append(errs, err)
		}
	}
	if _, err := time.LoadLocation(c.Schedule.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("schedule.timezone: %w", err))
	}
	return errors.Join(errs...)
}

var (
	ErrMissingTelegramToken = errors.New("telegram.bot_token (TELEGRAM_BOT_TOKEN) is not set")
	ErrMissingTelegramChat  = errors.New("telegram.chat_id (TELEGRAM_CHAT_ID) is not set")
	ErrMissingYouTubeKey    = errors.New("sources.youtube.api_key (YOUTUBE_API_KEY) is not set but YouTube is enabled")
)

// ValidateDelivery checks the settings needed to post to Telegram.
func (c *Config) ValidateDelivery() error {
	var errs []error
	if strings.TrimSpace(c.Telegram.BotToken) == "" {
		errs = append(errs, ErrMissingTelegramToken)
	}
	if strings.TrimSpace(c.Telegram.ChatID) == "" {
		errs = append(errs, ErrMissingTelegramChat)
	}
	return errors.Join(errs...)
}

// Window is the recency look-back.
func (c *Config) Window() time.Duration {
	return time.Duration(c.Filter.RecencyHours) * time.Hour
}

// FetchTimeout bounds each source fetch.
func (c *Config) FetchTimeout() time.Duration {
	d, err := time.ParseDuration(c.Sources.FetchTimeout)
	if err != nil {
		return 5 * time.Minute
	}
	return d
}

// mergeKeywords replaces each list of base that override sets.
func mergeKeywords(base, override filter.Keywords) filter.Keywords {
	if len(override.Topic) > 0 {
		base.Topic = override.Topic
	}
	if len(override.Exclude) > 0 {
		base.Exclude = override.Exclude
	}
	if len(override.High) > 0 {
		base.High = override.High
	}
	if len(override.Medium) > 0 {
		base.Medium = override.Medium
	}
	if len(override.Low) > 0 {
		base.Low = override.Low
	}
	return base
}
