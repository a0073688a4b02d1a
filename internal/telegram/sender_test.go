package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBot struct {
	sent   []tgbotapi.MessageConfig
	failAt int // 1-based; 0 never fails
}

func (f *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	msg, ok := c.(tgbotapi.MessageConfig)
	if !ok {
		return tgbotapi.Message{}, fmt.Errorf("unexpected chattable %T", c)
	}
	f.sent = append(f.sent, msg)
	if f.failAt == len(f.sent) {
		return tgbotapi.Message{}, errors.New("Bad Request: chat not found")
	}
	return tgbotapi.Message{MessageID: len(f.sent)}, nil
}

func TestSendShortMessage(t *testing.T) {
	bot := &fakeBot{}
	s, err := newSender(bot, "-100123", Options{})
	require.NoError(t, err)

	require.NoError(t, s.Send(context.Background(), "<b>hi</b>"))
	require.Len(t, bot.sent, 1)
	assert.Equal(t, int64(-100123), bot.sent[0].ChatID)
	assert.Equal(t, "<b>hi</b>", bot.sent[0].Text)
	assert.Equal(t, tgbotapi.ModeHTML, bot.sent[0].ParseMode)
	assert.True(t, bot.sent[0].DisableWebPagePreview)
}

func TestSendToChannelUsername(t *testing.T) {
	bot := &fakeBot{}
	s, err := newSender(bot, "@ai_digest", Options{})
	require.NoError(t, err)
	require.NoError(t, s.Send(context.Background(), "x"))
	assert.Equal(t, "@ai_digest", bot.sent[0].ChannelUsername)
}

func TestSendSplitsLongMessage(t *testing.T) {
	bot := &fakeBot{}
	s, err := newSender(bot, "1", Options{MaxLength: 25})
	require.NoError(t, err)

	text := strings.Join([]string{"line-one-aaaa", "line-two-bbbb", "line-three-cc", "line-four-ddd"}, "\n")
	require.NoError(t, s.Send(context.Background(), text))
	require.Len(t, bot.sent, 4)
	assert.Equal(t, "line-one-aaaa\n\n<i>Продолжение следует...</i>", bot.sent[0].Text)
	assert.Equal(t, "<i>Продолжение (2/4)</i>\n\nline-two-bbbb\n\n<i>Продолжение следует...</i>", bot.sent[1].Text)
	assert.Equal(t, "<i>Продолжение (4/4)</i>\n\nline-four-ddd", bot.sent[3].Text)
}

func TestSendFailsIfAnyPartFails(t *testing.T) {
	bot := &fakeBot{failAt: 2}
	s, err := newSender(bot, "1", Options{MaxLength: 10})
	require.NoError(t, err)
	err = s.Send(context.Background(), "aaaaaaa\nbbbbbbb\nccccccc")
	assert.ErrorContains(t, err, "part 2/3")
	assert.Len(t, bot.sent, 2)
}

func TestSendRejectsEmptyAndBadConfig(t *testing.T) {
	s, err := newSender(&fakeBot{}, "1", Options{})
	require.NoError(t, err)
	assert.ErrorIs(t, s.Send(context.Background(), "  "), ErrEmptyMessage)

	_, err = newSender(&fakeBot{}, "", Options{})
	assert.Error(t, err)
	_, err = New("", "1", Options{})
	assert.Error(t, err)
}

func TestSplit(t *testing.T) {
	assert.Equal(t, []string{"ab\ncd", "ef"}, Split("ab\ncd\nef", 6))
	// an oversized line is kept whole
	assert.Equal(t, []string{"a", "0123456789", "b"}, Split("a\n0123456789\nb", 5))
	// lengths count characters, not bytes
	assert.Equal(t, []string{"ёёё\nжжж"}, Split("ёёё\nжжж", 8))
}

func TestContinuationLabelSinglePart(t *testing.T) {
	c := Continuation{Note: "more", Part: "(%d/%d)"}
	assert.Equal(t, []string{"only\n\nmore"}, c.Label([]string{"only"}))
}
