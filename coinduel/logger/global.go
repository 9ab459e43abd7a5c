package logger

import (
	"log/slog"
	"time"
)

// Commands slower than this finish at warn level.
const slowCommandThreshold = 2 * time.Second

// LogCommand records the outcome of one command invocation.
func LogCommand(name, userID string, duration time.Duration, err error) {
	attrs := []any{
		slog.String("type", "cmd"),
		slog.String("name", name),
		slog.String("user_id", userID),
		slog.Duration("took", duration),
	}

	switch {
	case err != nil:
		slog.Error("Command failed", append(attrs,
			slog.Any("error", err),
			slog.String("status", "failed"),
		)...)
	case duration > slowCommandThreshold:
		slog.Warn("Command executed slowly", append(attrs,
			slog.String("status", "slow"),
		)...)
	default:
		slog.Info("Command completed", append(attrs,
			slog.String("status", "success"),
		)...)
	}
}

// LogSystem logs system events
func LogSystem(msg string, attrs ...any) {
	baseAttrs := []any{slog.String("type", "sys")}
	slog.Info(msg, append(baseAttrs, attrs...)...)
}

// LogError logs error events
func LogError(msg string, err error, attrs ...any) {
	baseAttrs := []any{
		slog.String("type", "error"),
		slog.Any("error", err),
	}
	slog.Error(msg, append(baseAttrs, attrs...)...)
}
