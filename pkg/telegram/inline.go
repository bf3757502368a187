package telegram

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// NewResultID returns a random id suitable for InlineResult.ID.
func NewResultID() string {
	return uuid.NewString()
}

// InlineResultContent is the variant-specific part of an inline query result.
type InlineResultContent interface {
	ResultType() InlineResultType
}

// InlineResult wraps a variant with the fields every result shares.
type InlineResult struct {
	ID                  string
	ReplyMarkup         *InlineKeyboardMarkup
	InputMessageContent InputMessageContent
	Content             InlineResultContent
}

// MarshalJSON flattens the envelope and the variant into one object carrying
// the variant's type token.
func (r InlineResult) MarshalJSON() ([]byte, error) {
	if r.Content == nil {
		return nil, fmt.Errorf("inline result %q has no content", r.ID)
	}

	body, err := json.Marshal(r.Content)
	if err != nil {
		return nil, err
	}
	obj := map[string]json.RawMessage{}
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, err
	}

	if obj["type"], err = json.Marshal(r.Content.ResultType()); err != nil {
		return nil, err
	}
	if obj["id"], err = json.Marshal(r.ID); err != nil {
		return nil, err
	}
	if r.ReplyMarkup != nil {
		if obj["reply_markup"], err = json.Marshal(r.ReplyMarkup); err != nil {
			return nil, err
		}
	}
	if r.InputMessageContent != nil {
		if obj["input_message_content"], err = json.Marshal(r.InputMessageContent); err != nil {
			return nil, err
		}
	}
	return json.Marshal(obj)
}

func (r InlineResult) validate() error {
	if err := requireNonBlank("inline result id", r.ID); err != nil {
		return err
	}
	if err := requireMaxBytes("inline result id", r.ID, maxInlineResultIDBytes); err != nil {
		return err
	}
	if r.Content == nil {
		return &ValidationError{Field: "inline result content", Reason: "must not be nil"}
	}
	if _, ok := r.Content.(*InlineArticle); ok && r.InputMessageContent == nil {
		return &ValidationError{Field: "input_message_content", Reason: "required for article results"}
	}
	return nil
}

// InputMessageContent replaces the message sent when a result is chosen.
type InputMessageContent interface {
	isInputMessageContent()
}

type InputTextMessageContent struct {
	MessageText           string    `json:"message_text"`
	ParseMode             ParseMode `json:"parse_mode,omitempty"`
	DisableWebPagePreview bool      `json:"disable_web_page_preview,omitempty"`
}

type InputLocationMessageContent struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type InputVenueMessageContent struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Title        string  `json:"title"`
	Address      string  `json:"address"`
	FoursquareID string  `json:"foursquare_id,omitempty"`
}

type InputContactMessageContent struct {
	PhoneNumber string `json:"phone_number"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name,omitempty"`
}

func (*InputTextMessageContent) isInputMessageContent()     {}
func (*InputLocationMessageContent) isInputMessageContent() {}
func (*InputVenueMessageContent) isInputMessageContent()    {}
func (*InputContactMessageContent) isInputMessageContent()  {}

// Thumb is the optional thumbnail shared by several result variants.
type Thumb struct {
	ThumbURL    string `json:"thumb_url,omitempty"`
	ThumbWidth  int    `json:"thumb_width,omitempty"`
	ThumbHeight int    `json:"thumb_height,omitempty"`
}

type InlineArticle struct {
	Title       string `json:"title"`
	URL         string `json:"url,omitempty"`
	HideURL     bool   `json:"hide_url,omitempty"`
	Description string `json:"description,omitempty"`
	Thumb
}

type InlinePhoto struct {
	PhotoURL    string `json:"photo_url"`
	ThumbURL    string `json:"thumb_url"`
	PhotoWidth  int    `json:"photo_width,omitempty"`
	PhotoHeight int    `json:"photo_height,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Caption     string `json:"caption,omitempty"`
}

type InlineGif struct {
	GifURL    string `json:"gif_url"`
	GifWidth  int    `json:"gif_width,omitempty"`
	GifHeight int    `json:"gif_height,omitempty"`
	ThumbURL  string `json:"thumb_url"`
	Title     string `json:"title,omitempty"`
	Caption   string `json:"caption,omitempty"`
}

type InlineMpeg4Gif struct {
	Mpeg4URL    string `json:"mpeg4_url"`
	Mpeg4Width  int    `json:"mpeg4_width,omitempty"`
	Mpeg4Height int    `json:"mpeg4_height,omitempty"`
	ThumbURL    string `json:"thumb_url"`
	Title       string `json:"title,omitempty"`
	Caption     string `json:"caption,omitempty"`
}

type InlineVideo struct {
	VideoURL      string `json:"video_url"`
	MimeType      string `json:"mime_type"`
	ThumbURL      string `json:"thumb_url"`
	Title         string `json:"title"`
	Caption       string `json:"caption,omitempty"`
	VideoWidth    int    `json:"video_width,omitempty"`
	VideoHeight   int    `json:"video_height,omitempty"`
	VideoDuration int    `json:"video_duration,omitempty"`
	Description   string `json:"description,omitempty"`
}

type InlineAudio struct {
	AudioURL      string `json:"audio_url"`
	Title         string `json:"title"`
	Performer     string `json:"performer,omitempty"`
	AudioDuration int    `json:"audio_duration,omitempty"`
}

type InlineVoice struct {
	VoiceURL      string `json:"voice_url"`
	Title         string `json:"title"`
	VoiceDuration int    `json:"voice_duration,omitempty"`
}

type InlineDocument struct {
	Title       string `json:"title"`
	Caption     string `json:"caption,omitempty"`
	DocumentURL string `json:"document_url"`
	MimeType    string `json:"mime_type"`
	Description string `json:"description,omitempty"`
	Thumb
}

type InlineLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Title     string  `json:"title"`
	Thumb
}

type InlineVenue struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Title        string  `json:"title"`
	Address      string  `json:"address"`
	FoursquareID string  `json:"foursquare_id,omitempty"`
	Thumb
}

type InlineContact struct {
	PhoneNumber string `json:"phone_number"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name,omitempty"`
	Thumb
}

type InlineGame struct {
	GameShortName string `json:"game_short_name"`
}

type InlineCachedPhoto struct {
	PhotoFileID string `json:"photo_file_id"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Caption     string `json:"caption,omitempty"`
}

type InlineCachedGif struct {
	GifFileID string `json:"gif_file_id"`
	Title     string `json:"title,omitempty"`
	Caption   string `json:"caption,omitempty"`
}

type InlineCachedMpeg4Gif struct {
	Mpeg4FileID string `json:"mpeg4_file_id"`
	Title       string `json:"title,omitempty"`
	Caption     string `json:"caption,omitempty"`
}

type InlineCachedSticker struct {
	StickerFileID string `json:"sticker_file_id"`
}

type InlineCachedDocument struct {
	Title          string `json:"title"`
	DocumentFileID string `json:"document_file_id"`
	Description    string `json:"description,omitempty"`
	Caption        string `json:"caption,omitempty"`
}

type InlineCachedVideo struct {
	VideoFileID string `json:"video_file_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Caption     string `json:"caption,omitempty"`
}

type InlineCachedVoice struct {
	VoiceFileID string `json:"voice_file_id"`
	Title       string `json:"title"`
	Caption     string `json:"caption,omitempty"`
}

type InlineCachedAudio struct {
	AudioFileID string `json:"audio_file_id"`
}

func (*InlineArticle) ResultType() InlineResultType        { return InlineResultArticle }
func (*InlinePhoto) ResultType() InlineResultType          { return InlineResultPhoto }
func (*InlineGif) ResultType() InlineResultType            { return InlineResultGif }
func (*InlineMpeg4Gif) ResultType() InlineResultType       { return InlineResultMpeg4Gif }
func (*InlineVideo) ResultType() InlineResultType          { return InlineResultVideo }
func (*InlineAudio) ResultType() InlineResultType          { return InlineResultAudio }
func (*InlineVoice) ResultType() InlineResultType          { return InlineResultVoice }
func (*InlineDocument) ResultType() InlineResultType       { return InlineResultDocument }
func (*InlineLocation) ResultType() InlineResultType       { return InlineResultLocation }
func (*InlineVenue) ResultType() InlineResultType          { return InlineResultVenue }
func (*InlineContact) ResultType() InlineResultType        { return InlineResultContact }
func (*InlineGame) ResultType() InlineResultType           { return InlineResultGame }
func (*InlineCachedPhoto) ResultType() InlineResultType    { return InlineResultPhoto }
func (*InlineCachedGif) ResultType() InlineResultType      { return InlineResultGif }
func (*InlineCachedMpeg4Gif) ResultType() InlineResultType { return InlineResultMpeg4Gif }
func (*InlineCachedSticker) ResultType() InlineResultType  { return InlineResultSticker }
func (*InlineCachedDocument) ResultType() InlineResultType { return InlineResultDocument }
func (*InlineCachedVideo) ResultType() InlineResultType    { return InlineResultVideo }
func (*InlineCachedVoice) ResultType() InlineResultType    { return InlineResultVoice }
func (*InlineCachedAudio) ResultType() InlineResultType    { return InlineResultAudio }
