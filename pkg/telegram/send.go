package telegram

import (
	"context"
)

// MessageOptions are the optional parameters of SendMessage.
type MessageOptions struct {
	SendOptions
	ParseMode             ParseMode
	DisableWebPagePreview bool
}

// PhotoOptions are the optional parameters of SendPhoto.
type PhotoOptions struct {
	SendOptions
	Caption   string
	ParseMode ParseMode
}

// AudioOptions are the optional parameters of SendAudio.
type AudioOptions struct {
	SendOptions
	Caption   string
	ParseMode ParseMode
	Duration  int
	Performer string
	Title     string
}

// DocumentOptions are the optional parameters of SendDocument.
type DocumentOptions struct {
	SendOptions
	Caption   string
	ParseMode ParseMode
}

// VideoOptions are the optional parameters of SendVideo.
type VideoOptions struct {
	SendOptions
	Caption   string
	ParseMode ParseMode
	Duration  int
	Width     int
	Height    int
}

// VoiceOptions are the optional parameters of SendVoice.
type VoiceOptions struct {
	SendOptions
	Caption   string
	ParseMode ParseMode
	Duration  int
}

// SendMessage sends a text message.
func (c *Client) SendMessage(ctx context.Context, chatID ChatID, text string, opts *MessageOptions) (*Message, error) {
	if err := firstErr(requireChat(chatID), requireNonBlank("text", text)); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &MessageOptions{}
	}

	fields := NewFields().
		Add("text", text).
		AddString("parse_mode", opts.ParseMode.String()).
		AddBool("disable_web_page_preview", opts.DisableWebPagePreview)
	return c.send(ctx, "sendMessage", chatID, fields, &opts.SendOptions)
}

// ForwardMessage forwards a message from one chat to another.
func (c *Client) ForwardMessage(ctx context.Context, chatID, fromChatID ChatID, messageID int64, disableNotification bool) (*Message, error) {
	if err := firstErr(
		requireChat(chatID),
		requireNonBlank("from_chat_id", fromChatID.String()),
		requirePositive("message_id", messageID),
	); err != nil {
		return nil, err
	}

	fields := NewFields().
		Add("from_chat_id", fromChatID.String()).
		AddInt("message_id", messageID)
	return c.send(ctx, "forwardMessage", chatID, fields, &SendOptions{DisableNotification: disableNotification})
}

// SendPhoto sends a photo.
func (c *Client) SendPhoto(ctx context.Context, chatID ChatID, photo Media, opts *PhotoOptions) (*Message, error) {
	if opts == nil {
		opts = &PhotoOptions{}
	}
	fields := captioned(opts.Caption, opts.ParseMode)
	return c.sendMedia(ctx, "sendPhoto", chatID, "photo", photo, fields, &opts.SendOptions)
}

// SendAudio sends an audio file to be shown in the music player.
func (c *Client) SendAudio(ctx context.Context, chatID ChatID, audio Media, opts *AudioOptions) (*Message, error) {
	if opts == nil {
		opts = &AudioOptions{}
	}
	fields := captioned(opts.Caption, opts.ParseMode).
		AddIntIf(opts.Duration > 0, "duration", int64(opts.Duration)).
		AddString("performer", opts.Performer).
		AddString("title", opts.Title)
	return c.sendMedia(ctx, "sendAudio", chatID, "audio", audio, fields, &opts.SendOptions)
}

// SendDocument sends a general file.
func (c *Client) SendDocument(ctx context.Context, chatID ChatID, document Media, opts *DocumentOptions) (*Message, error) {
	if opts == nil {
		opts = &DocumentOptions{}
	}
	fields := captioned(opts.Caption, opts.ParseMode)
	return c.sendMedia(ctx, "sendDocument", chatID, "document", document, fields, &opts.SendOptions)
}

// SendVideo sends a video.
func (c *Client) SendVideo(ctx context.Context, chatID ChatID, video Media, opts *VideoOptions) (*Message, error) {
	if opts == nil {
		opts = &VideoOptions{}
	}
	fields := captioned(opts.Caption, opts.ParseMode).
		AddIntIf(opts.Duration > 0, "duration", int64(opts.Duration)).
		AddIntIf(opts.Width > 0, "width", int64(opts.Width)).
		AddIntIf(opts.Height > 0, "height", int64(opts.Height))
	return c.sendMedia(ctx, "sendVideo", chatID, "video", video, fields, &opts.SendOptions)
}

// SendVoice sends an audio file to be shown as a playable voice message.
func (c *Client) SendVoice(ctx context.Context, chatID ChatID, voice Media, opts *VoiceOptions) (*Message, error) {
	if opts == nil {
		opts = &VoiceOptions{}
	}
	fields := captioned(opts.Caption, opts.ParseMode).
		AddIntIf(opts.Duration > 0, "duration", int64(opts.Duration))
	return c.sendMedia(ctx, "sendVoice", chatID, "voice", voice, fields, &opts.SendOptions)
}

// SendSticker sends a .webp sticker.
func (c *Client) SendSticker(ctx context.Context, chatID ChatID, sticker Media, opts *SendOptions) (*Message, error) {
	return c.sendMedia(ctx, "sendSticker", chatID, "sticker", sticker, NewFields(), opts)
}

// SendLocation sends a point on the map.
func (c *Client) SendLocation(ctx context.Context, chatID ChatID, latitude, longitude float64, opts *SendOptions) (*Message, error) {
	if err := requireChat(chatID); err != nil {
		return nil, err
	}
	fields := NewFields().
		AddFloat("latitude", latitude).
		AddFloat("longitude", longitude)
	return c.send(ctx, "sendLocation", chatID, fields, opts)
}

// SendVenue sends information about a venue.
func (c *Client) SendVenue(ctx context.Context, chatID ChatID, venue Venue, opts *SendOptions) (*Message, error) {
	if err := firstErr(
		requireChat(chatID),
		requireNonBlank("title", venue.Title),
		requireNonBlank("address", venue.Address),
	); err != nil {
		return nil, err
	}
	fields := NewFields().
		AddFloat("latitude", venue.Location.Latitude).
		AddFloat("longitude", venue.Location.Longitude).
		Add("title", venue.Title).
		Add("address", venue.Address).
		AddString("foursquare_id", venue.FoursquareID)
	return c.send(ctx, "sendVenue", chatID, fields, opts)
}

// SendContact sends a phone contact.
func (c *Client) SendContact(ctx context.Context, chatID ChatID, contact Contact, opts *SendOptions) (*Message, error) {
	if err := firstErr(
		requireChat(chatID),
		requireNonBlank("phone_number", contact.PhoneNumber),
		requireNonBlank("first_name", contact.FirstName),
	); err != nil {
		return nil, err
	}
	fields := NewFields().
		Add("phone_number", contact.PhoneNumber).
		Add("first_name", contact.FirstName).
		AddString("last_name", contact.LastName)
	return c.send(ctx, "sendContact", chatID, fields, opts)
}

// SendChatAction tells the user that something is happening on the bot's side.
func (c *Client) SendChatAction(ctx context.Context, chatID ChatID, action ChatAction) error {
	if err := requireChat(chatID); err != nil {
		return err
	}
	if action.String() == "" {
		return &ValidationError{Field: "action", Reason: "unknown chat action"}
	}

	fields := NewFields().
		Add("chat_id", chatID.String()).
		Add("action", action.String())
	var ok bool
	return c.post(ctx, "sendChatAction", fields, nil, &ok)
}

func captioned(caption string, mode ParseMode) *Fields {
	return NewFields().
		AddString("caption", caption).
		AddIf(caption != "", "parse_mode", mode.String())
}

// sendMedia validates the media argument, releasing an upload that never
// reaches the dispatcher.
func (c *Client) sendMedia(
	ctx context.Context,
	method string,
	chatID ChatID,
	name string,
	media Media,
	fields *Fields,
	opts *SendOptions,
) (*Message, error) {
	if err := firstErr(requireChat(chatID), media.validate(name)); err != nil {
		media.close()
		return nil, err
	}
	media.add(fields, name)
	return c.send(ctx, method, chatID, fields, opts)
}

func (c *Client) send(ctx context.Context, method string, chatID ChatID, fields *Fields, opts *SendOptions) (*Message, error) {
	var msg Message
	if err := c.post(ctx, method, fields, &common{chatID: chatID, opts: opts}, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
