package handlers

import (
	"log/slog"
	"time"

	"github.com/disgoorg/disgo/handler"

	"github.com/coinduelbot/coinduel/coinduel/logger"
)

// WrapWithLogging wraps a command handler with start/finish logging and
// slow-command warnings.
func WrapWithLogging(name string, h handler.CommandHandler) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		start := time.Now()

		slog.Info("Command started",
			slog.String("type", "cmd"),
			slog.String("name", name),
			slog.String("user_id", e.User().ID.String()),
			slog.String("user_name", e.User().Username),
		)

		err := h(e)
		logger.LogCommand(name, e.User().ID.String(), time.Since(start), err)
		return err
	}
}
