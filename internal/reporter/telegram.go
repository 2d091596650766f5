package reporter

import (
	"fmt"
	"html"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"go-leadgen-automation/internal/leads"
)

// TelegramReporter pushes new leads to a chat so they can be acted on
// without waiting for the downstream pipeline.
type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegram(token string, chatID int64) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	return &TelegramReporter{
		bot:    bot,
		chatID: chatID,
	}, nil
}

func (t *TelegramReporter) SendLead(l leads.Lead) error {
	text := fmt.Sprintf(
		"🔥 <b>%s</b>\n"+
			"👤 @%s\n"+
			"🕒 %s\n"+
			"🔗 <a href=\"%s\">View Post</a>",
		html.EscapeString(l.Title),
		html.EscapeString(l.Author),
		l.PostedAt.Format("2006-01-02 15:04 MST"),
		l.SourceURL,
	)

	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML"
	msg.DisableWebPagePreview = true

	_, err := t.bot.Send(msg)
	return err
}

func (t *TelegramReporter) SendStatus(message string) error {
	msg := tgbotapi.NewMessage(t.chatID, "ℹ️ "+message)
	_, err := t.bot.Send(msg)
	return err
}

func (t *TelegramReporter) SendError(err error) error {
	msg := tgbotapi.NewMessage(t.chatID, fmt.Sprintf("❌ Error: %v", err))
	_, sendErr := t.bot.Send(msg)
	return sendErr
}
