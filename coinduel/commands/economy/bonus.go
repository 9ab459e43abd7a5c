package economy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/coinduelbot/coinduel/coinduel"
	"github.com/coinduelbot/coinduel/coinduel/config"
	"github.com/coinduelbot/coinduel/coinduel/economy/bonus"
	"github.com/coinduelbot/coinduel/coinduel/utils"
)

var Bonus = discord.SlashCommandCreate{
	Name:        "bonus",
	Description: "🎁 Claim your daily random coin bonus",
}

func BonusHandler(b *coinduel.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.CommandTimeout)
		defer cancel()

		amount, err := b.BonusGate.Claim(ctx, e.User().ID.String())
		if err != nil {
			if errors.Is(err, bonus.ErrAlreadyClaimed) {
				return utils.EH.CreateWarning(e, "Already claimed",
					"You already claimed your bonus today. Come back tomorrow!")
			}
			slog.Error("Failed to claim bonus",
				slog.String("type", "cmd"),
				slog.String("user_id", e.User().ID.String()),
				slog.Any("error", err),
			)
			return utils.EH.CreateError(e, "Bonus unavailable",
				"Could not process your bonus claim. Please try again later.")
		}

		return utils.EH.CreateSuccess(e, "🎉 Daily Bonus Claimed!",
			fmt.Sprintf("You claimed your daily bonus of **%d** coins!", amount))
	}
}
