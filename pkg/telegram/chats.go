package telegram

import (
	"context"
	"net/url"
	"strconv"
	"time"
)

// GetUserProfilePhotos returns a user's profile pictures. Zero offset and
// limit use the server defaults.
func (c *Client) GetUserProfilePhotos(ctx context.Context, userID int64, offset, limit int) (*UserProfilePhotos, error) {
	if err := requirePositive("user_id", userID); err != nil {
		return nil, err
	}
	if offset < 0 || limit < 0 || limit > 100 {
		return nil, &ValidationError{Field: "limit", Reason: "offset must be >= 0 and limit within 1..100"}
	}

	q := url.Values{"user_id": {strconv.FormatInt(userID, 10)}}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var photos UserProfilePhotos
	if err := c.get(ctx, "getUserProfilePhotos", q, &photos); err != nil {
		return nil, err
	}
	return &photos, nil
}

// GetFile resolves a file id into a downloadable File.
func (c *Client) GetFile(ctx context.Context, fileID string) (*File, error) {
	if err := requireNonBlank("file_id", fileID); err != nil {
		return nil, err
	}
	var f File
	if err := c.get(ctx, "getFile", url.Values{"file_id": {fileID}}, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// KickChatMember bans a user from a group or channel. A zero until bans forever.
func (c *Client) KickChatMember(ctx context.Context, chatID ChatID, userID int64, until time.Time) error {
	if err := firstErr(requireChat(chatID), requirePositive("user_id", userID)); err != nil {
		return err
	}
	fields := NewFields().
		Add("chat_id", chatID.String()).
		AddInt("user_id", userID).
		AddIntIf(!until.IsZero(), "until_date", until.Unix())

	var ok bool
	return c.post(ctx, "kickChatMember", fields, nil, &ok)
}

// UnbanChatMember lifts a ban so the user can join again.
func (c *Client) UnbanChatMember(ctx context.Context, chatID ChatID, userID int64) error {
	if err := firstErr(requireChat(chatID), requirePositive("user_id", userID)); err != nil {
		return err
	}
	fields := NewFields().
		Add("chat_id", chatID.String()).
		AddInt("user_id", userID)

	var ok bool
	return c.post(ctx, "unbanChatMember", fields, nil, &ok)
}

// LeaveChat makes the bot leave a group or channel.
func (c *Client) LeaveChat(ctx context.Context, chatID ChatID) error {
	if err := requireChat(chatID); err != nil {
		return err
	}
	var ok bool
	return c.post(ctx, "leaveChat", NewFields().Add("chat_id", chatID.String()), nil, &ok)
}

// GetChat returns up to date information about a chat. The result is nil
// when the payload matches neither a group nor a user.
func (c *Client) GetChat(ctx context.Context, chatID ChatID) (Chat, error) {
	if err := requireChat(chatID); err != nil {
		return nil, err
	}
	var conv Conversation
	if err := c.get(ctx, "getChat", chatQuery(chatID), &conv); err != nil {
		return nil, err
	}
	return conv.Chat, nil
}

// GetChatAdministrators lists the chat's administrators, bots excluded.
func (c *Client) GetChatAdministrators(ctx context.Context, chatID ChatID) ([]ChatMember, error) {
	if err := requireChat(chatID); err != nil {
		return nil, err
	}
	var members []ChatMember
	if err := c.get(ctx, "getChatAdministrators", chatQuery(chatID), &members); err != nil {
		return nil, err
	}
	return members, nil
}

// GetChatMembersCount returns the number of members in a chat.
func (c *Client) GetChatMembersCount(ctx context.Context, chatID ChatID) (int, error) {
	if err := requireChat(chatID); err != nil {
		return 0, err
	}
	var n int
	if err := c.get(ctx, "getChatMembersCount", chatQuery(chatID), &n); err != nil {
		return 0, err
	}
	return n, nil
}

// GetChatMember returns information about one member of a chat.
func (c *Client) GetChatMember(ctx context.Context, chatID ChatID, userID int64) (*ChatMember, error) {
	if err := firstErr(requireChat(chatID), requirePositive("user_id", userID)); err != nil {
		return nil, err
	}
	q := chatQuery(chatID)
	q.Set("user_id", strconv.FormatInt(userID, 10))

	var m ChatMember
	if err := c.get(ctx, "getChatMember", q, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func chatQuery(chatID ChatID) url.Values {
	return url.Values{"chat_id": {chatID.String()}}
}
