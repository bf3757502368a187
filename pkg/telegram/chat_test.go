package telegram_test

import (
	"encoding/json"
	"testing"

	"telebot/pkg/telegram"
)

func TestConversation_Resolve(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantGroup bool
		wantUser  bool
		wantID    int64
	}{
		{"group", `{"id":-100,"type":"supergroup","title":"Gophers"}`, true, false, -100},
		{"user", `{"id":7,"type":"private","first_name":"Ada","username":"ada"}`, false, true, 7},
		{"title wins", `{"id":3,"title":"T","first_name":"F"}`, true, false, 3},
		{"neither", `{"id":9,"type":"channel"}`, false, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c telegram.Conversation
			if err := json.Unmarshal([]byte(tt.raw), &c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if (c.Group() != nil) != tt.wantGroup {
				t.Errorf("group: expected %v, got %+v", tt.wantGroup, c.Group())
			}
			if (c.User() != nil) != tt.wantUser {
				t.Errorf("user: expected %v, got %+v", tt.wantUser, c.User())
			}
			if c.ID() != tt.wantID {
				t.Errorf("expected id %d, got %d", tt.wantID, c.ID())
			}
			if c.Resolved() != (tt.wantGroup || tt.wantUser) {
				t.Errorf("unexpected Resolved() = %v", c.Resolved())
			}
		})
	}
}

func TestConversation_GroupFields(t *testing.T) {
	var c telegram.Conversation
	raw := `{"id":-100,"type":"supergroup","title":"Gophers","username":"gophers"}`
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g := c.Group()
	if g.Title != "Gophers" || g.Username != "gophers" || g.Type != telegram.ChatTypeSupergroup {
		t.Errorf("unexpected group %+v", g)
	}
}

func TestConversation_InMessage(t *testing.T) {
	raw := `{"message_id":1,"date":1500000000,"chat":{"id":5,"first_name":"Bob"},"text":"hi"}`
	var m telegram.Message
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Chat.User() == nil || m.Chat.User().FirstName != "Bob" {
		t.Errorf("expected user chat, got %+v", m.Chat)
	}
	if m.Date.Unix() != 1500000000 {
		t.Errorf("unexpected date %v", m.Date)
	}
}

func TestConversation_MarshalUnresolved(t *testing.T) {
	b, err := json.Marshal(telegram.Conversation{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != "null" {
		t.Errorf("expected null, got %s", b)
	}
}

func TestChatID(t *testing.T) {
	if got := telegram.ChatIDInt(-1001).String(); got != "-1001" {
		t.Errorf("unexpected %q", got)
	}
	if got := telegram.ChatUsername("gophers").String(); got != "@gophers" {
		t.Errorf("unexpected %q", got)
	}
	if got := telegram.ChatUsername("@gophers").String(); got != "@gophers" {
		t.Errorf("unexpected %q", got)
	}
}
