package telegram

import (
	"encoding/json"
	"strings"
)

// ParseMode selects how message text is formatted.
type ParseMode int

const (
	ParseModeNone ParseMode = iota
	ParseModeMarkdown
	ParseModeMarkdownV2
	ParseModeHTML
)

var parseModeTokens = [...]string{"", "Markdown", "MarkdownV2", "HTML"}

func (m ParseMode) String() string {
	if m < 0 || int(m) >= len(parseModeTokens) {
		return ""
	}
	return parseModeTokens[m]
}

// ParseParseMode maps a wire token to a ParseMode, case-insensitively.
// Unknown tokens map to ParseModeNone.
func ParseParseMode(s string) ParseMode {
	for i, tok := range parseModeTokens {
		if i > 0 && strings.EqualFold(tok, s) {
			return ParseMode(i)
		}
	}
	return ParseModeNone
}

func (m ParseMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *ParseMode) UnmarshalText(b []byte) error {
	*m = ParseParseMode(string(b))
	return nil
}

// ChatAction is a status broadcast with sendChatAction.
type ChatAction int

const (
	ActionTyping ChatAction = iota
	ActionUploadPhoto
	ActionRecordVideo
	ActionUploadVideo
	ActionRecordAudio
	ActionUploadAudio
	ActionUploadDocument
	ActionFindLocation
	ActionRecordVideoNote
	ActionUploadVideoNote
)

var chatActionTokens = [...]string{
	"typing",
	"upload_photo",
	"record_video",
	"upload_video",
	"record_audio",
	"upload_audio",
	"upload_document",
	"find_location",
	"record_video_note",
	"upload_video_note",
}

func (a ChatAction) String() string {
	if a < 0 || int(a) >= len(chatActionTokens) {
		return ""
	}
	return chatActionTokens[a]
}

// ParseChatAction maps a wire token to a ChatAction.
func ParseChatAction(s string) (ChatAction, bool) {
	for i, tok := range chatActionTokens {
		if tok == s {
			return ChatAction(i), true
		}
	}
	return 0, false
}

// ChatType is the kind of a chat.
type ChatType int

const (
	ChatTypeUnknown ChatType = iota
	ChatTypePrivate
	ChatTypeGroup
	ChatTypeSupergroup
	ChatTypeChannel
)

var chatTypeTokens = [...]string{"", "private", "group", "supergroup", "channel"}

func (t ChatType) String() string {
	if t < 0 || int(t) >= len(chatTypeTokens) {
		return ""
	}
	return chatTypeTokens[t]
}

// ParseChatType maps a wire token to a ChatType. Unknown tokens map to ChatTypeUnknown.
func ParseChatType(s string) ChatType {
	for i, tok := range chatTypeTokens {
		if i > 0 && tok == s {
			return ChatType(i)
		}
	}
	return ChatTypeUnknown
}

func (t ChatType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *ChatType) UnmarshalText(b []byte) error {
	*t = ParseChatType(string(b))
	return nil
}

// InlineResultType tags a variant of an inline query result.
type InlineResultType int

const (
	// InlineResultNone is the sentinel for an absent or unrecognized token.
	InlineResultNone InlineResultType = iota
	InlineResultArticle
	InlineResultPhoto
	InlineResultGif
	InlineResultMpeg4Gif
	InlineResultVideo
	InlineResultAudio
	InlineResultVoice
	InlineResultDocument
	InlineResultLocation
	InlineResultVenue
	InlineResultContact
	InlineResultGame
	InlineResultSticker
)

var inlineResultTokens = [...]string{
	"",
	"article",
	"photo",
	"gif",
	"mpeg4_gif",
	"video",
	"audio",
	"voice",
	"document",
	"location",
	"venue",
	"contact",
	"game",
	"sticker",
}

func (t InlineResultType) String() string {
	if t < 0 || int(t) >= len(inlineResultTokens) {
		return ""
	}
	return inlineResultTokens[t]
}

// ParseInlineResultType strips underscores and matches case-insensitively.
// Anything unrecognized yields InlineResultNone.
func ParseInlineResultType(s string) InlineResultType {
	norm := strings.ReplaceAll(s, "_", "")
	if norm == "" {
		return InlineResultNone
	}
	for i, tok := range inlineResultTokens {
		if i > 0 && strings.EqualFold(strings.ReplaceAll(tok, "_", ""), norm) {
			return InlineResultType(i)
		}
	}
	return InlineResultNone
}

// MarshalJSON writes the wire token, or null for InlineResultNone.
func (t InlineResultType) MarshalJSON() ([]byte, error) {
	if t == InlineResultNone || t.String() == "" {
		return []byte("null"), nil
	}
	return json.Marshal(t.String())
}

// UnmarshalJSON never fails: non-string or unknown input yields InlineResultNone.
func (t *InlineResultType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*t = InlineResultNone
		return nil
	}
	*t = ParseInlineResultType(s)
	return nil
}
