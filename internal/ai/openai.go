package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Krijovnick/ai-news/internal/model"

	openai "github.com/sashabaranov/go-openai"
)

// maxPromptItems bounds how many digest items are sent to the model.
const maxPromptItems = 15

// Summarizer writes a short recap of a digest.
type Summarizer interface {
	// SummarizeDigest returns a 2-3 sentence overview of items in the given language.
	SummarizeDigest(ctx context.Context, items []model.NewsItem, language string) (string, error)
}

// chatCompleter is the part of the go-openai client we call.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIClient implements Summarizer using OpenAI Chat Completions API.
type OpenAIClient struct {
	client chatCompleter
	model  string
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string // optional
}

func NewOpenAI(cfg Config) (*OpenAIClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("openai: api key is required")
	}
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, errors.New("openai: model must be specified")
	}
	cc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		cc.BaseURL = cfg.BaseURL
	}
	return &OpenAIClient{client: openai.NewClientWithConfig(cc), model: cfg.Model}, nil
}

func (o *OpenAIClient) SummarizeDigest(ctx context.Context, items []model.NewsItem, language string) (string, error) {
	if len(items) == 0 {
		return "", nil
	}
	ctx, cancel := context.WithTimeout(ctx, 120*time.Second)
	defer cancel()

	sys := fmt.Sprintf(`
		You are the editor of a daily AI news digest. Write in %s.
		Return 2-3 plain sentences (30-90 words) naming the main themes of the day.
		No links, no lists, no markdown or HTML.
		`, langOrDefault(language))
	user := "Today's headlines (title and source):\n" + headlines(items, maxPromptItems)
	out, err := o.create(ctx, sys, user)
	if err != nil {
		slog.Error("openai: summarize digest error", "err", err)
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (o *OpenAIClient) create(ctx context.Context, system, user string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0.4,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// headlines renders up to limit items as "- title (source)" lines.
func headlines(items []model.NewsItem, limit int) string {
	b := &strings.Builder{}
	for i, it := range items {
		if i >= limit {
			break
		}
		fmt.Fprintf(b, "- %s (%s)\n", strings.TrimSpace(it.Title), it.Source)
	}
	return b.String()
}

func langOrDefault(lang string) string {
	switch l := strings.ToLower(strings.TrimSpace(lang)); l {
	case "":
		return "English"
	case "ru":
		return "Russian"
	case "en":
		return "English"
	default:
		return lang
	}
}
