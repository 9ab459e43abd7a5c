package logger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorPurple = "\033[35m"
	colorWhite  = "\033[37m"
)

type LogType string

const (
	TypeCommand LogType = "CMD"
	TypeDB      LogType = "DB"
	TypeSystem  LogType = "SYS"
	TypeError   LogType = "ERR"
)

// Handler renders records as single colored console lines with a
// [CoinDuel] [time] [LEVEL] [TYPE] prefix. The log type is carried by the
// conventional "type" attribute (cmd/db/error; anything else is SYS).
type Handler struct {
	opts  *slog.HandlerOptions
	attrs []slog.Attr
}

func NewHandler(level slog.Level) *Handler {
	return &Handler{
		opts:  &slog.HandlerOptions{Level: level},
		attrs: make([]slog.Attr, 0),
	}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{
		opts:  h.opts,
		attrs: append(h.attrs, attrs...),
	}
}

func (h *Handler) WithGroup(string) slog.Handler {
	return h
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	if shouldSkipLog(&r) {
		return nil
	}

	var levelColor, levelText string
	switch r.Level {
	case slog.LevelDebug:
		levelColor = colorPurple
		levelText = "DEBUG"
	case slog.LevelWarn:
		levelColor = colorYellow
		levelText = "WARN"
	case slog.LevelError:
		levelColor = colorRed
		levelText = "ERROR"
	default:
		levelColor = colorGreen
		levelText = "INFO"
	}

	var attrsStr strings.Builder
	appendAttr := func(a slog.Attr) {
		if !isInternalAttr(a.Key) {
			fmt.Fprintf(&attrsStr, " %s=%v", a.Key, a.Value)
		}
	}
	for _, a := range h.attrs {
		appendAttr(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(a)
		return true
	})

	fmt.Printf("%s[CoinDuel] [%s] [%s%s%s] [%s] %s%s%s\n",
		colorWhite,
		time.Now().Format("15:04:05"),
		levelColor,
		levelText,
		colorWhite,
		logType(&r),
		r.Message,
		attrsStr.String(),
		colorReset,
	)
	return nil
}

// Gateway internals are far too chatty at debug level to keep.
func shouldSkipLog(r *slog.Record) bool {
	skippedMessages := []string{
		"gateway event",
		"sending heartbeat",
		"sending gateway command",
		"received gateway message",
		"locking rest bucket",
		"unlocking rest bucket",
		"new request",
		"new response",
	}

	msg := strings.ToLower(r.Message)
	for _, skip := range skippedMessages {
		if strings.Contains(msg, skip) {
			return true
		}
	}
	return false
}

func logType(r *slog.Record) LogType {
	logType := TypeSystem
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "type" {
			switch a.Value.String() {
			case "cmd":
				logType = TypeCommand
			case "db":
				logType = TypeDB
			case "error":
				logType = TypeError
			}
			return false
		}
		return true
	})
	return logType
}

func isInternalAttr(key string) bool {
	return key == "type"
}
