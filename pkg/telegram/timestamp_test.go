package telegram_test

import (
	"encoding/json"
	"testing"
	"time"

	"telebot/pkg/telegram"
)

func TestUnixTime_RoundTrip(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	for _, in := range []time.Time{
		time.Unix(0, 0),
		time.Unix(1500000000, 0),
		time.Date(2026, 10, 16, 9, 30, 0, 0, loc),
		time.Unix(-86400, 0),
	} {
		b, err := json.Marshal(telegram.NewUnixTime(in))
		if err != nil {
			t.Fatalf("marshal %v: %v", in, err)
		}
		var out telegram.UnixTime
		if err := json.Unmarshal(b, &out); err != nil {
			t.Fatalf("unmarshal %s: %v", b, err)
		}
		if !out.Equal(in) {
			t.Errorf("round trip %v -> %s -> %v", in, b, out.Time)
		}
		if out.Location() != time.UTC {
			t.Errorf("expected UTC, got %v", out.Location())
		}
	}
}

func TestUnixTime_Encoding(t *testing.T) {
	b, err := json.Marshal(telegram.NewUnixTime(time.Unix(1234567890, 0)))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "1234567890" {
		t.Errorf("expected bare number, got %s", b)
	}

	b, err = json.Marshal(telegram.NewUnixTime(time.Unix(10, int64(500*time.Millisecond))))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "10.5" {
		t.Errorf("expected 10.5, got %s", b)
	}
}

func TestUnixTime_Null(t *testing.T) {
	var payload struct {
		Date *telegram.UnixTime `json:"date"`
		Edit telegram.UnixTime  `json:"edit"`
	}
	if err := json.Unmarshal([]byte(`{"date":null,"edit":null}`), &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.Date != nil && !payload.Date.IsZero() {
		t.Errorf("expected absent date, got %v", payload.Date)
	}
	if !payload.Edit.IsZero() {
		t.Errorf("expected zero edit time, got %v", payload.Edit)
	}
}

func TestUnixTime_Invalid(t *testing.T) {
	var ts telegram.UnixTime
	if err := json.Unmarshal([]byte(`"yesterday"`), &ts); err == nil {
		t.Error("expected error for non-numeric value")
	}
}
