package telegram

import (
	"context"
	"io"
	"time"
)

// ITelegram defines the interface for the Telegram Bot API client.
// Implementations are safe for concurrent use.
type ITelegram interface {
	// Updates
	GetMe(ctx context.Context) (*User, error)
	GetUpdates(ctx context.Context, opts UpdatesOptions) ([]Update, error)
	SetWebhook(ctx context.Context, webhookURL string, opts *WebhookOptions) error
	DeleteWebhook(ctx context.Context) error
	GetWebhookInfo(ctx context.Context) (*WebhookInfo, error)

	// Sending
	SendMessage(ctx context.Context, chatID ChatID, text string, opts *MessageOptions) (*Message, error)
	ForwardMessage(ctx context.Context, chatID, fromChatID ChatID, messageID int64, disableNotification bool) (*Message, error)
	SendPhoto(ctx context.Context, chatID ChatID, photo Media, opts *PhotoOptions) (*Message, error)
	SendAudio(ctx context.Context, chatID ChatID, audio Media, opts *AudioOptions) (*Message, error)
	SendDocument(ctx context.Context, chatID ChatID, document Media, opts *DocumentOptions) (*Message, error)
	SendVideo(ctx context.Context, chatID ChatID, video Media, opts *VideoOptions) (*Message, error)
	SendVoice(ctx context.Context, chatID ChatID, voice Media, opts *VoiceOptions) (*Message, error)
	SendSticker(ctx context.Context, chatID ChatID, sticker Media, opts *SendOptions) (*Message, error)
	SendLocation(ctx context.Context, chatID ChatID, latitude, longitude float64, opts *SendOptions) (*Message, error)
	SendVenue(ctx context.Context, chatID ChatID, venue Venue, opts *SendOptions) (*Message, error)
	SendContact(ctx context.Context, chatID ChatID, contact Contact, opts *SendOptions) (*Message, error)
	SendChatAction(ctx context.Context, chatID ChatID, action ChatAction) error

	// Files
	GetUserProfilePhotos(ctx context.Context, userID int64, offset, limit int) (*UserProfilePhotos, error)
	GetFile(ctx context.Context, fileID string) (*File, error)
	FileURL(file *File) (string, error)
	OpenFile(ctx context.Context, file *File) (io.ReadCloser, error)
	CopyFile(ctx context.Context, file *File, w io.Writer) (int64, error)
	DownloadFile(ctx context.Context, file *File, dst string, overwrite bool) error
	DownloadFileByID(ctx context.Context, fileID, dst string, overwrite bool) (*File, error)

	// Chats
	KickChatMember(ctx context.Context, chatID ChatID, userID int64, until time.Time) error
	UnbanChatMember(ctx context.Context, chatID ChatID, userID int64) error
	LeaveChat(ctx context.Context, chatID ChatID) error
	GetChat(ctx context.Context, chatID ChatID) (Chat, error)
	GetChatAdministrators(ctx context.Context, chatID ChatID) ([]ChatMember, error)
	GetChatMembersCount(ctx context.Context, chatID ChatID) (int, error)
	GetChatMember(ctx context.Context, chatID ChatID, userID int64) (*ChatMember, error)

	// Queries and edits
	AnswerCallbackQuery(ctx context.Context, callbackQueryID string, answer *CallbackAnswer) error
	AnswerInlineQuery(ctx context.Context, inlineQueryID string, results []InlineResult, opts *InlineAnswerOptions) error
	EditMessageText(ctx context.Context, ref MessageRef, text string, opts *EditOptions) (*Message, error)
	EditMessageCaption(ctx context.Context, ref MessageRef, caption string, markup *InlineKeyboardMarkup) (*Message, error)
	EditMessageReplyMarkup(ctx context.Context, ref MessageRef, markup *InlineKeyboardMarkup) (*Message, error)
	DeleteMessage(ctx context.Context, chatID ChatID, messageID int64) error
}

var _ ITelegram = (*Client)(nil)
