package telegram_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"telebot/pkg/log"
	"telebot/pkg/telegram"
)

const testToken = "123:secret-token"

func newTestClient(t *testing.T, handler http.HandlerFunc, mutate ...func(*telegram.Config)) *telegram.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	cfg := telegram.Config{APIKey: testToken, BaseURL: ts.URL, Timeout: 5 * time.Second}
	for _, m := range mutate {
		m(&cfg)
	}
	c, err := telegram.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

type trackingReader struct {
	io.Reader
	closed atomic.Bool
}

func (r *trackingReader) Close() error {
	r.closed.Store(true)
	return nil
}

func TestClient_GetMe(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/bot"+testToken+"/getMe" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"ok":true,"result":{"id":42,"is_bot":true,"first_name":"Ada","username":"ada_bot"}}`))
	})

	me, err := c.GetMe(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if me.ID != 42 || me.FirstName != "Ada" || !me.IsBot {
		t.Errorf("unexpected user %+v", me)
	}
}

func TestClient_SendMessage_MergesCommonFields(t *testing.T) {
	var body string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("unexpected content type %s", ct)
		}
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		w.Write([]byte(`{"ok":true,"result":{"message_id":5,"date":1500000000,"chat":{"id":7,"first_name":"Bob"},"text":"hi"}}`))
	})

	msg, err := c.SendMessage(context.Background(), telegram.ChatIDInt(7), "hi", &telegram.MessageOptions{
		SendOptions: telegram.SendOptions{
			ReplyToMessageID:    3,
			ReplyMarkup:         telegram.NewReplyKeyboardRemove(false),
			DisableNotification: true,
		},
		ParseMode: telegram.ParseModeHTML,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.MessageID != 5 || msg.Chat.User() == nil {
		t.Errorf("unexpected message %+v", msg)
	}

	want := "text=hi&parse_mode=HTML&chat_id=7&reply_to_message_id=3" +
		"&reply_markup=%7B%22remove_keyboard%22%3Atrue%7D&disable_notification=true"
	if body != want {
		t.Errorf("unexpected body\n got: %s\nwant: %s", body, want)
	}
}

func TestClient_SendMessage_OmitsEmptyCommonFields(t *testing.T) {
	var body string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":7,"first_name":"Bob"}}}`))
	})

	if _, err := c.SendMessage(context.Background(), "7", "hi", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body != "text=hi&chat_id=7" {
		t.Errorf("unexpected body %q", body)
	}
}

func TestClient_DefaultDisableNotification(t *testing.T) {
	var body string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":7,"first_name":"Bob"}}}`))
	}, func(cfg *telegram.Config) {
		cfg.DisableNotification = true
	})

	if _, err := c.SendLocation(context.Background(), "7", 1.5, -2, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(body, "&disable_notification=true") {
		t.Errorf("expected client default silence, got %q", body)
	}
}

func TestClient_ValidationBeforeNetwork(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})
	ctx := context.Background()

	checks := map[string]error{
		"blank chat":          func() error { _, err := c.SendMessage(ctx, " ", "hi", nil); return err }(),
		"blank text":          func() error { _, err := c.SendMessage(ctx, "1", "", nil); return err }(),
		"zero message id":     c.DeleteMessage(ctx, "1", 0),
		"blank file id":       func() error { _, err := c.GetFile(ctx, ""); return err }(),
		"blank media ref":     func() error { _, err := c.SendPhoto(ctx, "1", telegram.MediaRef(""), nil); return err }(),
		"blank callback id":   c.AnswerCallbackQuery(ctx, "", nil),
		"bad edit target":     func() error { _, err := c.EditMessageText(ctx, telegram.ChatMessage("1", -1), "x", nil); return err }(),
		"long switch pm":      c.AnswerInlineQuery(ctx, "q", nil, &telegram.InlineAnswerOptions{SwitchPMText: "go", SwitchPMParameter: strings.Repeat("p", 65)}),
		"non-positive user":   c.KickChatMember(ctx, "1", 0, time.Time{}),
		"unknown chat action": c.SendChatAction(ctx, "1", telegram.ChatAction(99)),
	}
	for name, err := range checks {
		if !errors.Is(err, telegram.ErrValidation) {
			t.Errorf("%s: expected validation error, got %v", name, err)
		}
	}
	if n := calls.Load(); n != 0 {
		t.Errorf("expected no network calls, got %d", n)
	}
}

func TestClient_SendDocument_Multipart(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("expected multipart body: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.FormValue("chat_id") != "@gophers" || r.FormValue("caption") != "report" {
			t.Errorf("unexpected form %v", r.MultipartForm.Value)
		}
		fh := r.MultipartForm.File["document"]
		if len(fh) != 1 || fh[0].Filename != "report.csv" {
			t.Errorf("unexpected file parts %v", r.MultipartForm.File)
		}
		w.Write([]byte(`{"ok":true,"result":{"message_id":9,"date":0,"chat":{"id":-1,"title":"Gophers"}}}`))
	})

	rd := &trackingReader{Reader: strings.NewReader("a,b\n1,2\n")}
	msg, err := c.SendDocument(context.Background(), telegram.ChatUsername("gophers"),
		telegram.MediaUpload(telegram.NewInputFile("report.csv", rd)),
		&telegram.DocumentOptions{Caption: "report"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Chat.Group() == nil {
		t.Errorf("expected group chat, got %+v", msg.Chat)
	}
	if !rd.closed.Load() {
		t.Error("expected upload reader to be closed after the call")
	}
}

func TestClient_UploadClosedOnValidationFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	rd := &trackingReader{Reader: strings.NewReader("x")}
	_, err := c.SendVoice(context.Background(), "", telegram.MediaUpload(telegram.NewInputFile("v.ogg", rd)), nil)
	if !errors.Is(err, telegram.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !rd.closed.Load() {
		t.Error("expected upload reader to be closed")
	}
}

func TestClient_ServiceUnavailable(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request"}`))
	})

	_, err := c.GetMe(context.Background())
	if !errors.Is(err, telegram.ErrServiceUnavailable) {
		t.Fatalf("expected ErrServiceUnavailable, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "getMe: ") {
		t.Errorf("expected method in error, got %q", err)
	}
}

func TestClient_RequestError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
	})

	_, err := c.SendMessage(context.Background(), "1", "hi", nil)
	var reqErr *telegram.RequestError
	if !errors.As(err, &reqErr) || reqErr.Code != 400 {
		t.Fatalf("expected request error 400, got %v", err)
	}
}

func TestClient_Cancellation(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := c.GetMe(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestClient_UploadCancellation(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	})
	defer close(release)

	src, _ := io.Pipe()
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		_, err := c.SendDocument(ctx, telegram.ChatIDInt(1),
			telegram.MediaUpload(telegram.NewInputFile("a.bin", src)), nil)
		done <- err
	}()

	select {
	case err := <-done:
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("expected context.DeadlineExceeded, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("SendDocument still blocked after the deadline passed")
	}
}

func TestClient_TransportErrorHidesToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	c, err := telegram.New(telegram.Config{APIKey: testToken, BaseURL: url})
	if err != nil {
		t.Fatal(err)
	}
	_, err = c.GetMe(context.Background())
	if err == nil {
		t.Fatal("expected error against closed server")
	}
	if strings.Contains(err.Error(), "secret-token") {
		t.Errorf("error leaks token: %v", err)
	}
}

func TestClient_GetUpdates(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("offset") != "11" || q.Get("limit") != "5" || q.Get("timeout") != "1" {
			t.Errorf("unexpected query %v", q)
		}
		if q.Get("allowed_updates") != `["message","callback_query"]` {
			t.Errorf("unexpected allowed_updates %q", q.Get("allowed_updates"))
		}
		w.Write([]byte(`{"ok":true,"result":[{"update_id":11,"message":{"message_id":1,"date":1,"chat":{"id":2,"first_name":"Eve"},"text":"ping"}}]}`))
	})

	updates, err := c.GetUpdates(context.Background(), telegram.UpdatesOptions{
		Offset:         11,
		Limit:          5,
		Timeout:        time.Second,
		AllowedUpdates: []string{"message", "callback_query"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(updates) != 1 || updates[0].Message.Text != "ping" {
		t.Errorf("unexpected updates %+v", updates)
	}
}

func TestClient_EditMessageText_Inline(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		if r.PostForm.Get("inline_message_id") != "abc" || r.PostForm.Get("chat_id") != "" {
			t.Errorf("unexpected form %v", r.PostForm)
		}
		w.Write([]byte(`{"ok":true,"result":true}`))
	})

	msg, err := c.EditMessageText(context.Background(), telegram.InlineMessage("abc"), "new", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != nil {
		t.Errorf("expected nil message for inline edit, got %+v", msg)
	}
}

func TestClient_GetChat(t *testing.T) {
	tests := []struct {
		name   string
		result string
		check  func(t *testing.T, chat telegram.Chat)
	}{
		{"group", `{"id":-5,"type":"group","title":"G"}`, func(t *testing.T, chat telegram.Chat) {
			if g, ok := chat.(*telegram.Group); !ok || g.Title != "G" {
				t.Errorf("expected group, got %#v", chat)
			}
		}},
		{"user", `{"id":5,"type":"private","first_name":"U"}`, func(t *testing.T, chat telegram.Chat) {
			if u, ok := chat.(*telegram.User); !ok || u.FirstName != "U" {
				t.Errorf("expected user, got %#v", chat)
			}
		}},
		{"unresolved", `{"id":5,"type":"channel"}`, func(t *testing.T, chat telegram.Chat) {
			if chat != nil {
				t.Errorf("expected nil chat, got %#v", chat)
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Query().Get("chat_id") != "5" {
					t.Errorf("unexpected query %v", r.URL.Query())
				}
				w.Write([]byte(`{"ok":true,"result":` + tt.result + `}`))
			})
			chat, err := c.GetChat(context.Background(), "5")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, chat)
		})
	}
}

func TestClient_AnswerInlineQuery(t *testing.T) {
	var results string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		results = r.PostForm.Get("results")
		w.Write([]byte(`{"ok":true,"result":true}`))
	})

	err := c.AnswerInlineQuery(context.Background(), "q1", []telegram.InlineResult{{
		ID:                  "a",
		Content:             &telegram.InlineArticle{Title: "Hello"},
		InputMessageContent: &telegram.InputTextMessageContent{MessageText: "hello"},
	}}, &telegram.InlineAnswerOptions{CacheTime: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(results, `"type":"article"`) || !strings.Contains(results, `"message_text":"hello"`) {
		t.Errorf("unexpected results payload %s", results)
	}

	tooMany := make([]telegram.InlineResult, 51)
	if err := c.AnswerInlineQuery(context.Background(), "q1", tooMany, nil); !errors.Is(err, telegram.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestNew_Validation(t *testing.T) {
	if _, err := telegram.New(telegram.Config{}); !errors.Is(err, telegram.ErrValidation) {
		t.Errorf("expected validation error for missing key, got %v", err)
	}
	if _, err := telegram.New(telegram.Config{APIKey: "k", BaseURL: "not a url"}); !errors.Is(err, telegram.ErrValidation) {
		t.Errorf("expected validation error for bad url, got %v", err)
	}
	if _, err := telegram.New(telegram.Config{APIKey: "k", Timeout: -time.Second}); !errors.Is(err, telegram.ErrValidation) {
		t.Errorf("expected validation error for negative timeout, got %v", err)
	}
}

func TestConfig_Defaults(t *testing.T) {
	cfg := telegram.Config{APIKey: "k", BaseURL: "https://example.com/"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "https://example.com" || cfg.FileBaseURL != "https://example.com" {
		t.Errorf("unexpected urls %q %q", cfg.BaseURL, cfg.FileBaseURL)
	}
	if cfg.Timeout != telegram.DefaultTimeout || cfg.Logger == nil {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestClient_LogsWithoutToken(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request"}`))
	}, func(cfg *telegram.Config) {
		cfg.Logger = log.New(core, "development")
	})

	if _, err := c.GetMe(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if logs.FilterLevelExact(zapcore.DebugLevel).Len() == 0 {
		t.Error("expected a debug entry for the dispatch")
	}
	if logs.FilterLevelExact(zapcore.WarnLevel).Len() == 0 {
		t.Error("expected a warn entry for the failure")
	}
	for _, e := range logs.All() {
		if strings.Contains(e.Message, "secret-token") {
			t.Errorf("log leaks token: %q", e.Message)
		}
	}
}
