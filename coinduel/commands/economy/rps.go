package economy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/coinduelbot/coinduel/coinduel"
	"github.com/coinduelbot/coinduel/coinduel/config"
	"github.com/coinduelbot/coinduel/coinduel/game/rps"
	"github.com/coinduelbot/coinduel/coinduel/utils"
)

var RPS = discord.SlashCommandCreate{
	Name:        "rps",
	Description: "🎮 Play rock-paper-scissors against the house",
	Options: []discord.ApplicationCommandOption{
		choiceOption("Your move"),
	},
}

func RPSHandler(b *coinduel.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		choice, err := rps.Parse(e.SlashCommandInteractionData().String("choice"))
		if err != nil {
			return utils.EH.CreateWarning(e, "Invalid choice", "Choice must be rock, paper, or scissors.")
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.CommandTimeout)
		defer cancel()

		result, err := b.SoloGame.Play(ctx, e.User().ID.String(), choice)
		if err != nil {
			slog.Error("Failed to play solo round",
				slog.String("type", "cmd"),
				slog.String("user_id", e.User().ID.String()),
				slog.Any("error", err),
			)
			return utils.EH.CreateError(e, "Game unavailable",
				"Could not record the game result. Please try again later.")
		}

		var verdict string
		color := config.DrawColor
		switch result.Result {
		case rps.AWins:
			verdict = fmt.Sprintf("**You win!** (+%d coins)", result.Delta)
			color = config.SuccessColor
		case rps.BWins:
			verdict = fmt.Sprintf("**You lose!** (%d coins)", result.Delta)
			color = config.ErrorColor
		default:
			verdict = "**It's a draw!**"
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title: "🎮 Rock Paper Scissors",
				Description: fmt.Sprintf("You chose **%s**, I chose **%s**.\n%s",
					result.PlayerChoice, result.HouseChoice, verdict),
				Color: color,
				Footer: &discord.EmbedFooter{
					Text: fmt.Sprintf("Balance: %s coins", utils.FormatNumber(result.NewBalance)),
				},
			}},
		})
	}
}
