package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/Krijovnick/ai-news/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	envFile  string
	logLevel string
	appCfg   config.Config
)

// rootCmd is the base command called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "ai-news",
	Short: "AI news aggregator",
	Long:  "Collects AI news from YouTube, X, Google News, Hacker News and Reddit and posts a ranked digest to Telegram.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return appCfg.Validate()
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with secrets")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override app.log_level (debug, info, warn, error)")
}

// envBindings maps config keys to the environment variables that feed them.
var envBindings = map[string]string{
	"telegram.bot_token":           "TELEGRAM_BOT_TOKEN",
	"telegram.chat_id":             "TELEGRAM_CHAT_ID",
	"sources.youtube.api_key":      "YOUTUBE_API_KEY",
	"sources.reddit.client_id":     "REDDIT_CLIENT_ID",
	"sources.reddit.client_secret": "REDDIT_CLIENT_SECRET",
	"sources.reddit.user_agent":    "REDDIT_USER_AGENT",
	"sources.twitter.base_url":     "NITTER_BASE_URL",
	"sources.youtube.enabled":      "ENABLE_YOUTUBE",
	"sources.twitter.enabled":      "ENABLE_TWITTER",
	"sources.google_news.enabled":  "ENABLE_GOOGLE_NEWS",
	"sources.hackernews.enabled":   "ENABLE_HACKERNEWS",
	"sources.reddit.enabled":       "ENABLE_REDDIT",
	"openai.api_key":               "OPENAI_API_KEY",
	"openai.base_url":              "OPENAI_BASE_URL",
	"redis.addr":                   "REDIS_ADDR",
	"redis.password":               "REDIS_PASSWORD",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("filter.min_score", 10)
	v.SetDefault("filter.sort_by_date", true)
	v.SetDefault("sources.youtube.enabled", false)
	v.SetDefault("sources.twitter.enabled", true)
	v.SetDefault("sources.google_news.enabled", true)
	v.SetDefault("sources.hackernews.enabled", true)
	v.SetDefault("sources.reddit.enabled", true)
}

func initConfig() {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "error reading env file: %v\n", err)
		os.Exit(1)
	}

	v := viper.GetViper()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/ai-news")
		v.AddConfigPath("configs")
	}

	v.SetEnvPrefix("AINEWS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		_ = v.BindEnv(key, "AINEWS_"+strings.ToUpper(strings.NewReplacer(".", "_").Replace(key)), env)
	}

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			fmt.Fprintf(os.Stderr, "error reading config: %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", v.ConfigFileUsed())
	}

	if err := v.Unmarshal(&appCfg); err != nil {
		fmt.Fprintf(os.Stderr, "error parsing config: %v\n", err)
		os.Exit(1)
	}

	appCfg.FillDefaults()
	if logLevel != "" {
		appCfg.App.LogLevel = logLevel
	}
	if appCfg.KeywordsFile != "" {
		if err := appCfg.LoadKeywords(appCfg.KeywordsFile); err != nil {
			fmt.Fprintf(os.Stderr, "error loading keywords: %v\n", err)
			os.Exit(1)
		}
	}
	slog.SetDefault(newLogger(appCfg.App))
}

func newLogger(app config.AppConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(app.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(app.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// GetConfig exposes the loaded configuration to subcommands.
func GetConfig() config.Config {
	return appCfg
}
