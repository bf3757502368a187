package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// MessageRef points at a message to edit: either a chat message or an
// inline message sent via the bot.
type MessageRef struct {
	ChatID          ChatID
	MessageID       int64
	InlineMessageID string
}

// ChatMessage refers to a message in a chat.
func ChatMessage(chatID ChatID, messageID int64) MessageRef {
	return MessageRef{ChatID: chatID, MessageID: messageID}
}

// InlineMessage refers to a message sent via inline mode.
func InlineMessage(id string) MessageRef {
	return MessageRef{InlineMessageID: id}
}

func (r MessageRef) validate() error {
	if r.InlineMessageID != "" {
		return nil
	}
	return firstErr(requireChat(r.ChatID), requirePositive("message_id", r.MessageID))
}

func (r MessageRef) fields() *Fields {
	if r.InlineMessageID != "" {
		return NewFields().Add("inline_message_id", r.InlineMessageID)
	}
	return NewFields().
		Add("chat_id", r.ChatID.String()).
		AddInt("message_id", r.MessageID)
}

// EditOptions are the optional parameters of EditMessageText.
type EditOptions struct {
	ParseMode             ParseMode
	DisableWebPagePreview bool
	ReplyMarkup           *InlineKeyboardMarkup
}

// EditMessageText edits the text of a message. The returned message is nil
// for inline messages, which the server acknowledges with true.
func (c *Client) EditMessageText(ctx context.Context, ref MessageRef, text string, opts *EditOptions) (*Message, error) {
	if err := firstErr(ref.validate(), requireNonBlank("text", text)); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &EditOptions{}
	}

	fields := ref.fields().
		Add("text", text).
		AddString("parse_mode", opts.ParseMode.String()).
		AddBool("disable_web_page_preview", opts.DisableWebPagePreview)
	return c.edit(ctx, "editMessageText", fields, opts.ReplyMarkup)
}

// EditMessageCaption edits the caption of a message.
func (c *Client) EditMessageCaption(ctx context.Context, ref MessageRef, caption string, markup *InlineKeyboardMarkup) (*Message, error) {
	if err := ref.validate(); err != nil {
		return nil, err
	}
	fields := ref.fields().AddString("caption", caption)
	return c.edit(ctx, "editMessageCaption", fields, markup)
}

// EditMessageReplyMarkup replaces the inline keyboard of a message. A nil
// markup removes it.
func (c *Client) EditMessageReplyMarkup(ctx context.Context, ref MessageRef, markup *InlineKeyboardMarkup) (*Message, error) {
	if err := ref.validate(); err != nil {
		return nil, err
	}
	return c.edit(ctx, "editMessageReplyMarkup", ref.fields(), markup)
}

// DeleteMessage deletes a message, including service messages.
func (c *Client) DeleteMessage(ctx context.Context, chatID ChatID, messageID int64) error {
	if err := firstErr(requireChat(chatID), requirePositive("message_id", messageID)); err != nil {
		return err
	}
	fields := NewFields().
		Add("chat_id", chatID.String()).
		AddInt("message_id", messageID)

	var ok bool
	return c.post(ctx, "deleteMessage", fields, nil, &ok)
}

func (c *Client) edit(ctx context.Context, method string, fields *Fields, markup *InlineKeyboardMarkup) (*Message, error) {
	if markup != nil {
		if err := fields.AddJSON("reply_markup", markup); err != nil {
			return nil, err
		}
	}

	var raw json.RawMessage
	if err := c.post(ctx, method, fields, nil, &raw); err != nil {
		return nil, err
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("true")) {
		return nil, nil
	}

	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, fmt.Errorf("%s: %w: result: %v", method, ErrDecode, err)
	}
	return &msg, nil
}
