package telegram

// ReplyMarkup is any keyboard or reply instruction attached to a sent message.
type ReplyMarkup interface {
	isReplyMarkup()
}

// InlineKeyboardMarkup is a keyboard attached to the message itself.
type InlineKeyboardMarkup struct {
	InlineKeyboard [][]InlineKeyboardButton `json:"inline_keyboard"`
}

func (*InlineKeyboardMarkup) isReplyMarkup() {}

// NewInlineKeyboard builds a markup from rows of buttons.
func NewInlineKeyboard(rows ...[]InlineKeyboardButton) *InlineKeyboardMarkup {
	return &InlineKeyboardMarkup{InlineKeyboard: rows}
}

// InlineKeyboardButton is one button of an inline keyboard. Exactly one of
// the optional fields should be set.
type InlineKeyboardButton struct {
	Text                         string        `json:"text"`
	URL                          string        `json:"url,omitempty"`
	CallbackData                 string        `json:"callback_data,omitempty"`
	SwitchInlineQuery            *string       `json:"switch_inline_query,omitempty"`
	SwitchInlineQueryCurrentChat *string       `json:"switch_inline_query_current_chat,omitempty"`
	CallbackGame                 *CallbackGame `json:"callback_game,omitempty"`
}

// CallbackGame is a placeholder; it holds no information.
type CallbackGame struct{}

// NewCallbackButton returns a button sending data back in a callback query.
// The data must not exceed 64 bytes.
func NewCallbackButton(text, data string) (InlineKeyboardButton, error) {
	if err := requireMaxBytes("callback_data", data, maxCallbackDataBytes); err != nil {
		return InlineKeyboardButton{}, err
	}
	return InlineKeyboardButton{Text: text, CallbackData: data}, nil
}

// NewURLButton returns a button opening url.
func NewURLButton(text, url string) InlineKeyboardButton {
	return InlineKeyboardButton{Text: text, URL: url}
}

// ReplyKeyboardMarkup is a custom keyboard replacing the client keyboard.
type ReplyKeyboardMarkup struct {
	Keyboard        [][]KeyboardButton `json:"keyboard"`
	ResizeKeyboard  bool               `json:"resize_keyboard,omitempty"`
	OneTimeKeyboard bool               `json:"one_time_keyboard,omitempty"`
	Selective       bool               `json:"selective,omitempty"`
}

func (*ReplyKeyboardMarkup) isReplyMarkup() {}

// KeyboardButton is one button of a custom keyboard.
type KeyboardButton struct {
	Text            string `json:"text"`
	RequestContact  bool   `json:"request_contact,omitempty"`
	RequestLocation bool   `json:"request_location,omitempty"`
}

// ReplyKeyboardRemove hides the current custom keyboard.
type ReplyKeyboardRemove struct {
	RemoveKeyboard bool `json:"remove_keyboard"`
	Selective      bool `json:"selective,omitempty"`
}

func (*ReplyKeyboardRemove) isReplyMarkup() {}

// NewReplyKeyboardRemove returns a markup removing the custom keyboard.
func NewReplyKeyboardRemove(selective bool) *ReplyKeyboardRemove {
	return &ReplyKeyboardRemove{RemoveKeyboard: true, Selective: selective}
}

// ForceReply asks the client to show a reply interface.
type ForceReply struct {
	ForceReply bool `json:"force_reply"`
	Selective  bool `json:"selective,omitempty"`
}

func (*ForceReply) isReplyMarkup() {}

// NewForceReply returns a markup forcing a reply.
func NewForceReply(selective bool) *ForceReply {
	return &ForceReply{ForceReply: true, Selective: selective}
}
