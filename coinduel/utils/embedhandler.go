package utils

import (
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/coinduelbot/coinduel/coinduel/config"
)

// ResponseHandler provides standardized response methods for commands
type ResponseHandler struct{}

var EH = &ResponseHandler{}

// CreateError responds with a red error embed.
func (rh *ResponseHandler) CreateError(e *handler.CommandEvent, title, description string) error {
	return e.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Title:       "❌ " + title,
			Description: description,
			Color:       config.ErrorColor,
		}},
	})
}

// CreateWarning responds with a yellow embed for recoverable user-facing
// conditions (cooldowns, insufficient funds, bad input).
func (rh *ResponseHandler) CreateWarning(e *handler.CommandEvent, title, description string) error {
	return e.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Title:       "⚠️ " + title,
			Description: description,
			Color:       config.WarningColor,
		}},
	})
}

// CreateEphemeralError responds with an error only the invoking user sees.
func (rh *ResponseHandler) CreateEphemeralError(e *handler.CommandEvent, description string) error {
	return e.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Title:       "❌ Error",
			Description: description,
			Color:       config.ErrorColor,
		}},
		Flags: discord.MessageFlagEphemeral,
	})
}

// CreateSuccess responds with a green embed.
func (rh *ResponseHandler) CreateSuccess(e *handler.CommandEvent, title, description string) error {
	return e.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Title:       title,
			Description: description,
			Color:       config.SuccessColor,
		}},
	})
}
