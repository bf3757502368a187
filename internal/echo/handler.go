package echo

import (
	"context"
	"fmt"
	"strings"

	pkgLog "telebot/pkg/log"
	pkgTelegram "telebot/pkg/telegram"
)

const (
	cmdStart  = "/start"
	cmdHelp   = "/help"
	cmdWhoAmI = "/whoami"

	callbackEchoAgain = "echo:again"

	inlineCacheSeconds = 10
)

type handler struct {
	l   pkgLog.Logger
	bot Bot
}

// HandleUpdate echoes messages, answers callback queries and offers the
// inline query text back as an article.
func (h *handler) HandleUpdate(ctx context.Context, update pkgTelegram.Update) error {
	switch {
	case update.Message != nil:
		return h.processMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		return h.processCallback(ctx, update.CallbackQuery)
	case update.InlineQuery != nil:
		return h.processInline(ctx, update.InlineQuery)
	}
	h.l.Debugf(ctx, "echo.HandleUpdate: ignoring update %d", update.UpdateID)
	return nil
}

func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if !msg.Chat.Resolved() {
		h.l.Warnf(ctx, "echo.processMessage: message %d has an unresolved chat", msg.MessageID)
		return nil
	}
	chatID := pkgTelegram.ChatIDInt(msg.Chat.ID())
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	switch command(text) {
	case cmdStart, cmdHelp:
		return h.reply(ctx, chatID, msg.MessageID,
			"<b>Echo bot</b>\nSend any text and it comes back.\n/whoami shows what the bot knows about this chat.",
			pkgTelegram.ParseModeHTML, nil)
	case cmdWhoAmI:
		return h.reply(ctx, chatID, msg.MessageID, describeChat(msg.Chat), pkgTelegram.ParseModeNone, nil)
	}

	if err := h.bot.SendChatAction(ctx, chatID, pkgTelegram.ActionTyping); err != nil {
		h.l.Warnf(ctx, "echo.processMessage: SendChatAction failed: %v", err)
	}

	again, err := pkgTelegram.NewCallbackButton("Again", callbackEchoAgain)
	if err != nil {
		return err
	}
	markup := pkgTelegram.NewInlineKeyboard([]pkgTelegram.InlineKeyboardButton{again})
	return h.reply(ctx, chatID, msg.MessageID, text, pkgTelegram.ParseModeNone, markup)
}

func (h *handler) processCallback(ctx context.Context, q *pkgTelegram.CallbackQuery) error {
	answer := &pkgTelegram.CallbackAnswer{Text: "Unknown button"}
	if q.Data == callbackEchoAgain && q.Message != nil {
		if !q.Message.Chat.Resolved() {
			h.l.Warnf(ctx, "echo.processCallback: query %s has an unresolved chat", q.ID)
			return h.bot.AnswerCallbackQuery(ctx, q.ID, &pkgTelegram.CallbackAnswer{Text: "Chat not available"})
		}
		answer.Text = "Echoed again"
		if err := h.reply(ctx, pkgTelegram.ChatIDInt(q.Message.Chat.ID()), 0, q.Message.Text, pkgTelegram.ParseModeNone, nil); err != nil {
			h.l.Errorf(ctx, "echo.processCallback: reply failed: %v", err)
			answer = &pkgTelegram.CallbackAnswer{Text: errorMessage(err), ShowAlert: true}
		}
	}
	return h.bot.AnswerCallbackQuery(ctx, q.ID, answer)
}

func (h *handler) processInline(ctx context.Context, q *pkgTelegram.InlineQuery) error {
	text := strings.TrimSpace(q.Query)
	if text == "" {
		return h.bot.AnswerInlineQuery(ctx, q.ID, nil, &pkgTelegram.InlineAnswerOptions{CacheTime: inlineCacheSeconds})
	}

	results := []pkgTelegram.InlineResult{{
		ID:                  pkgTelegram.NewResultID(),
		Content:             &pkgTelegram.InlineArticle{Title: "Echo", Description: text},
		InputMessageContent: &pkgTelegram.InputTextMessageContent{MessageText: text},
	}}
	return h.bot.AnswerInlineQuery(ctx, q.ID, results, &pkgTelegram.InlineAnswerOptions{
		CacheTime:  inlineCacheSeconds,
		IsPersonal: true,
	})
}

func (h *handler) reply(
	ctx context.Context,
	chatID pkgTelegram.ChatID,
	replyTo int64,
	text string,
	mode pkgTelegram.ParseMode,
	markup pkgTelegram.ReplyMarkup,
) error {
	_, err := h.bot.SendMessage(ctx, chatID, text, &pkgTelegram.MessageOptions{
		SendOptions: pkgTelegram.SendOptions{
			ReplyToMessageID: replyTo,
			ReplyMarkup:      markup,
		},
		ParseMode: mode,
	})
	return err
}

// command returns the leading /command of text without any @botname suffix.
func command(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd, _, _ := strings.Cut(text, " ")
	cmd, _, _ = strings.Cut(cmd, "@")
	return strings.ToLower(cmd)
}

func describeChat(conv pkgTelegram.Conversation) string {
	if g := conv.Group(); g != nil {
		return fmt.Sprintf("Group %q (%s), id %d", g.Title, g.Type, g.ID)
	}
	if u := conv.User(); u != nil {
		name := strings.TrimSpace(u.FirstName + " " + u.LastName)
		if u.Username != "" {
			name += " @" + u.Username
		}
		return fmt.Sprintf("User %s, id %d", name, u.ID)
	}
	return "Unknown chat"
}
