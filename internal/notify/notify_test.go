package notify

import (
	"bytes"
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeSender struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if f.err != nil {
		return tgbotapi.Message{}, f.err
	}
	f.sent = append(f.sent, c.(tgbotapi.MessageConfig))
	return tgbotapi.Message{}, nil
}

type recorder struct {
	notices []Notice
	err     error
}

func (r *recorder) Notify(_ context.Context, n Notice) error {
	r.notices = append(r.notices, n)
	return r.err
}

func TestTelegramNotify(t *testing.T) {
	api := &fakeSender{}
	tg := &Telegram{api: api, chatID: 42}

	err := tg.Notify(t.Context(), Notice{Kind: KindQuestCompleted, Title: "Quest completed!", Body: "You earned +15 <points>"})
	require.NoError(t, err)

	require.Len(t, api.sent, 1)
	msg := api.sent[0]
	assert.Equal(t, int64(42), msg.ChatID)
	assert.Equal(t, tgbotapi.ModeHTML, msg.ParseMode)
	assert.Equal(t, "✅ <b>Quest completed!</b>\nYou earned +15 &lt;points&gt;", msg.Text)
}

func TestTelegramNotifyError(t *testing.T) {
	tg := &Telegram{api: &fakeSender{err: errors.New("network down")}, chatID: 42}
	err := tg.Notify(t.Context(), Notice{Kind: KindReminder, Title: "Reminder"})
	assert.ErrorContains(t, err, "network down")
}

func TestNewTelegramRequiresSettings(t *testing.T) {
	_, err := NewTelegram("", 1)
	assert.Error(t, err)
	_, err = NewTelegram("token", 0)
	assert.Error(t, err)
}

func TestFormatMessageIcons(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindQuestCompleted, "✅ <b>t</b>"},
		{KindRefreshFailed, "⚠️ <b>t</b>"},
		{KindImportFailed, "⚠️ <b>t</b>"},
		{KindAchievementUnlocked, "🏆 <b>t</b>"},
		{KindReminder, "⏰ <b>t</b>"},
		{KindPeriodStarted, "🔄 <b>t</b>"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, formatMessage(Notice{Kind: tt.kind, Title: "t"}))
		})
	}
}

func TestLogNotify(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := NewLog(zap.New(core))

	require.NoError(t, l.Notify(t.Context(), Notice{Kind: KindImportSucceeded, Title: "Import succeeded"}))
	require.NoError(t, l.Notify(t.Context(), Notice{Kind: KindImportFailed, Title: "Import failed", Body: "bad file"}))

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
	assert.Equal(t, "bad file", entries[1].ContextMap()["body"])
}

func TestMultiNotifiesEveryone(t *testing.T) {
	failing := &recorder{err: errors.New("boom")}
	ok := &recorder{}
	m := Multi{failing, nil, ok}

	err := m.Notify(t.Context(), Notice{Kind: KindReminder, Title: "Reminder"})
	assert.ErrorContains(t, err, "boom")
	assert.Len(t, failing.notices, 1)
	assert.Len(t, ok.notices, 1)
}

func TestConsoleNotify(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	require.NoError(t, c.Notify(t.Context(), Notice{Kind: KindQuestCompleted, Title: "Quest completed!", Body: "You earned +20 points!"}))
	require.NoError(t, c.Notify(t.Context(), Notice{Kind: KindRefreshFailed, Title: "Failed to create quests"}))

	assert.Equal(t, "* Quest completed! You earned +20 points!\n! Failed to create quests\n", buf.String())
}
