package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sender is the part of the bot API used for delivery
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Telegram sends notices as chat messages
type Telegram struct {
	api    sender
	chatID int64
}

// NewTelegram connects to the bot API with token and sends every notice to chatID
func NewTelegram(token string, chatID int64) (*Telegram, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram bot token is not configured")
	}
	if chatID == 0 {
		return nil, fmt.Errorf("telegram chat id is not configured")
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	return &Telegram{api: api, chatID: chatID}, nil
}

func (t *Telegram) Notify(_ context.Context, n Notice) error {
	msg := tgbotapi.NewMessage(t.chatID, formatMessage(n))
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send notice: %w", err)
	}
	return nil
}

func formatMessage(n Notice) string {
	icon := "✅"
	switch {
	case n.Failure():
		icon = "⚠️"
	case n.Kind == KindAchievementUnlocked:
		icon = "🏆"
	case n.Kind == KindReminder:
		icon = "⏰"
	case n.Kind == KindPeriodStarted, n.Kind == KindAchievementsReset:
		icon = "🔄"
	}

	text := fmt.Sprintf("%s <b>%s</b>", icon, tgbotapi.EscapeText(tgbotapi.ModeHTML, n.Title))
	if n.Body != "" {
		text += "\n" + tgbotapi.EscapeText(tgbotapi.ModeHTML, n.Body)
	}
	return text
}
