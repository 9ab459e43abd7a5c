package logger

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"
)

type capturingHandler struct {
	records *[]slog.Record
}

func (h capturingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h capturingHandler) Handle(_ context.Context, r slog.Record) error {
	*h.records = append(*h.records, r.Clone())
	return nil
}

func (h capturingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h capturingHandler) WithGroup(string) slog.Handler      { return h }

func captureLogs(t *testing.T) *[]slog.Record {
	t.Helper()
	records := &[]slog.Record{}
	prev := slog.Default()
	slog.SetDefault(slog.New(capturingHandler{records: records}))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return records
}

func attrString(r slog.Record, key string) string {
	var val string
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == key {
			val = a.Value.String()
			return false
		}
		return true
	})
	return val
}

func TestLogCommand(t *testing.T) {
	tests := []struct {
		name       string
		duration   time.Duration
		err        error
		wantLevel  slog.Level
		wantStatus string
	}{
		{"success", 50 * time.Millisecond, nil, slog.LevelInfo, "success"},
		{"slow", 3 * time.Second, nil, slog.LevelWarn, "slow"},
		{"failed", 50 * time.Millisecond, errors.New("boom"), slog.LevelError, "failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := captureLogs(t)

			LogCommand("balance", "1001", tt.duration, tt.err)

			if len(*records) != 1 {
				t.Fatalf("got %d records, want 1", len(*records))
			}
			r := (*records)[0]
			if r.Level != tt.wantLevel {
				t.Errorf("level = %v, want %v", r.Level, tt.wantLevel)
			}
			if got := attrString(r, "status"); got != tt.wantStatus {
				t.Errorf("status = %q, want %q", got, tt.wantStatus)
			}
			if got := attrString(r, "type"); got != "cmd" {
				t.Errorf("type = %q, want %q", got, "cmd")
			}
			if got := attrString(r, "user_id"); got != "1001" {
				t.Errorf("user_id = %q, want %q", got, "1001")
			}
		})
	}
}

func TestLogSystem(t *testing.T) {
	records := captureLogs(t)

	LogSystem("Bot is running", slog.Int("known_players", 3))

	if len(*records) != 1 {
		t.Fatalf("got %d records, want 1", len(*records))
	}
	r := (*records)[0]
	if r.Level != slog.LevelInfo {
		t.Errorf("level = %v, want %v", r.Level, slog.LevelInfo)
	}
	if got := attrString(r, "type"); got != "sys" {
		t.Errorf("type = %q, want %q", got, "sys")
	}
	if got := attrString(r, "known_players"); got != "3" {
		t.Errorf("known_players = %q, want %q", got, "3")
	}
}

func TestLogError(t *testing.T) {
	records := captureLogs(t)

	LogError("Failed to open storage", errors.New("disk gone"))

	if len(*records) != 1 {
		t.Fatalf("got %d records, want 1", len(*records))
	}
	r := (*records)[0]
	if r.Level != slog.LevelError {
		t.Errorf("level = %v, want %v", r.Level, slog.LevelError)
	}
	if got := attrString(r, "type"); got != "error" {
		t.Errorf("type = %q, want %q", got, "error")
	}
	if got := attrString(r, "error"); got != "disk gone" {
		t.Errorf("error = %q, want %q", got, "disk gone")
	}
}
