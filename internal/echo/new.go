package echo

import (
	"context"

	pkgLog "telebot/pkg/log"
	pkgTelegram "telebot/pkg/telegram"
)

// Bot is the subset of the Bot API the echo handler talks to.
type Bot interface {
	SendMessage(ctx context.Context, chatID pkgTelegram.ChatID, text string, opts *pkgTelegram.MessageOptions) (*pkgTelegram.Message, error)
	SendChatAction(ctx context.Context, chatID pkgTelegram.ChatID, action pkgTelegram.ChatAction) error
	AnswerCallbackQuery(ctx context.Context, callbackQueryID string, answer *pkgTelegram.CallbackAnswer) error
	AnswerInlineQuery(ctx context.Context, inlineQueryID string, results []pkgTelegram.InlineResult, opts *pkgTelegram.InlineAnswerOptions) error
}

// Handler processes a single update.
type Handler interface {
	HandleUpdate(ctx context.Context, update pkgTelegram.Update) error
}

// New creates a new echo handler.
func New(l pkgLog.Logger, bot Bot) Handler {
	return &handler{
		l:   l,
		bot: bot,
	}
}
