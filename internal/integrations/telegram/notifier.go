package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Notifier отправляет уведомления пользователям через Telegram.
// Пустой токен переводит нотификатор в выключенный режим:
// сообщения логируются и не отправляются.
type Notifier struct {
	bot    *tgbotapi.BotAPI
	logger Logger
}

// NewNotifier создает новый Telegram нотификатор
func NewNotifier(token string, logger Logger) (*Notifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &Notifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &Notifier{bot: bot, logger: logger}, nil
}

// Notify отправляет сообщение пользователю. ID пользователя совпадает
// с chat_id личного диалога с ботом. Ошибки доставки логируются
// и не возвращаются: уведомление не влияет на результат операции.
func (n *Notifier) Notify(ctx context.Context, chatID int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled): chat_id=%d", chatID)
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled): chat_id=%d", chatID)
		return
	}

	msg := tgbotapi.NewMessage(chatID, text)

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification: chat_id=%d, error=%v", chatID, err)
	}
}
