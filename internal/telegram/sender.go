// Package telegram delivers messages to a Telegram chat through the Bot API.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var ErrEmptyMessage = errors.New("telegram: empty message")

// botAPI is the part of *tgbotapi.BotAPI the sender uses.
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Sender posts HTML messages to one chat, splitting long texts.
type Sender struct {
	api          botAPI
	chatID       int64
	channel      string // @username when the chat id is not numeric
	maxLen       int
	continuation Continuation
	logger       *slog.Logger
}

// Options tune a Sender.
type Options struct {
	MaxLength    int
	Continuation Continuation
	Logger       *slog.Logger
}

// New connects to the Bot API with token and targets chat, which is either a
// numeric chat id or a channel @username.
func New(token, chat string, opts Options) (*Sender, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("telegram: bot token is required")
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram: connect: %w", err)
	}
	return newSender(api, chat, opts)
}

func newSender(api botAPI, chat string, opts Options) (*Sender, error) {
	chat = strings.TrimSpace(chat)
	if chat == "" {
		return nil, errors.New("telegram: chat id is required")
	}
	s := &Sender{api: api, maxLen: opts.MaxLength, continuation: opts.Continuation, logger: opts.Logger}
	if id, err := strconv.ParseInt(chat, 10, 64); err == nil {
		s.chatID = id
	} else {
		s.channel = chat
	}
	if s.maxLen <= 0 {
		s.maxLen = MaxMessageLength
	}
	if s.continuation.Note == "" {
		s.continuation = Continuation{Note: "<i>Продолжение следует...</i>", Part: "<i>Продолжение (%d/%d)</i>"}
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With("component", "telegram")
	return s, nil
}

// Send delivers text, split into labeled parts when it exceeds the length
// limit. It succeeds only if every part was delivered.
func (s *Sender) Send(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyMessage
	}
	parts := []string{text}
	if utf8.RuneCountInString(text) > s.maxLen {
		parts = s.continuation.Label(Split(text, s.maxLen))
	}
	for i, p := range parts {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := s.api.Send(s.message(p)); err != nil {
			s.logger.Error("send failed", "part", i+1, "parts", len(parts), "error", err)
			return fmt.Errorf("telegram: send part %d/%d: %w", i+1, len(parts), err)
		}
	}
	s.logger.Info("message sent", "parts", len(parts))
	return nil
}

func (s *Sender) message(text string) tgbotapi.MessageConfig {
	var msg tgbotapi.MessageConfig
	if s.channel != "" {
		msg = tgbotapi.NewMessageToChannel(s.channel, text)
	} else {
		msg = tgbotapi.NewMessage(s.chatID, text)
	}
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	return msg
}
