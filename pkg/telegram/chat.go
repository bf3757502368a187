package telegram

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ChatID addresses a chat either by numeric id or by @username.
type ChatID string

// ChatIDInt builds a ChatID from a numeric id.
func ChatIDInt(id int64) ChatID {
	return ChatID(strconv.FormatInt(id, 10))
}

// ChatUsername builds a ChatID from a channel or supergroup username.
func ChatUsername(name string) ChatID {
	if name != "" && !strings.HasPrefix(name, "@") {
		name = "@" + name
	}
	return ChatID(name)
}

func (id ChatID) String() string {
	return string(id)
}

// Chat is a conversation: either a *Group or a *User.
type Chat interface {
	ChatID() int64
	isChat()
}

// Group is a multi-member conversation: group, supergroup or channel.
type Group struct {
	ID                          int64    `json:"id"`
	Type                        ChatType `json:"type"`
	Title                       string   `json:"title"`
	Username                    string   `json:"username,omitempty"`
	AllMembersAreAdministrators bool     `json:"all_members_are_administrators,omitempty"`
}

func (g *Group) ChatID() int64 { return g.ID }
func (*Group) isChat()         {}

// User is a Telegram user or bot. A private chat decodes to a User.
type User struct {
	ID           int64  `json:"id"`
	IsBot        bool   `json:"is_bot,omitempty"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name,omitempty"`
	Username     string `json:"username,omitempty"`
	LanguageCode string `json:"language_code,omitempty"`
}

func (u *User) ChatID() int64 { return u.ID }
func (*User) isChat()         {}

// chatKind is the variant selected for a raw chat object.
type chatKind int

const (
	chatKindNone chatKind = iota
	chatKindGroup
	chatKindUser
)

// resolveChatKind decides the variant by key presence: title wins over first_name.
func resolveChatKind(keys map[string]json.RawMessage) chatKind {
	if _, ok := keys["title"]; ok {
		return chatKindGroup
	}
	if _, ok := keys["first_name"]; ok {
		return chatKindUser
	}
	return chatKindNone
}

// Conversation holds a chat decoded without an explicit discriminator.
// Chat is nil when the object has neither title nor first_name.
type Conversation struct {
	Chat Chat
}

// Resolved reports whether a variant was selected.
func (c Conversation) Resolved() bool {
	return c.Chat != nil
}

// Group returns the chat as a *Group, or nil.
func (c Conversation) Group() *Group {
	g, _ := c.Chat.(*Group)
	return g
}

// User returns the chat as a *User, or nil.
func (c Conversation) User() *User {
	u, _ := c.Chat.(*User)
	return u
}

// ID returns the chat id, or zero when unresolved.
func (c Conversation) ID() int64 {
	if c.Chat == nil {
		return 0
	}
	return c.Chat.ChatID()
}

func (c *Conversation) UnmarshalJSON(b []byte) error {
	c.Chat = nil
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(b, &keys); err != nil {
		return err
	}

	switch resolveChatKind(keys) {
	case chatKindGroup:
		g := new(Group)
		if err := json.Unmarshal(b, g); err != nil {
			return err
		}
		c.Chat = g
	case chatKindUser:
		u := new(User)
		if err := json.Unmarshal(b, u); err != nil {
			return err
		}
		c.Chat = u
	}
	return nil
}

func (c Conversation) MarshalJSON() ([]byte, error) {
	if c.Chat == nil {
		return []byte("null"), nil
	}
	return json.Marshal(c.Chat)
}
