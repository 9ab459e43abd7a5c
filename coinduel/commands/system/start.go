package system

import (
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/coinduelbot/coinduel/coinduel"
	"github.com/coinduelbot/coinduel/coinduel/config"
	"github.com/coinduelbot/coinduel/coinduel/utils"
)

var Start = discord.SlashCommandCreate{
	Name:        "start",
	Description: "👋 Register yourself and get your starting coins",
}

func StartHandler(b *coinduel.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		balance := b.Ledger.Balance(e.User().ID.String())

		embed := discord.NewEmbedBuilder().
			SetTitle(fmt.Sprintf("👋 Welcome, %s!", e.User().EffectiveName())).
			SetDescription(fmt.Sprintf(
				"You start with **%s** coins.\n\n"+
					"Use `/rps` to play against the house, `/bet` to challenge a friend, "+
					"and `/bonus` to claim a free daily reward.\nSee `/help` for everything else.",
				utils.FormatNumber(balance))).
			SetColor(config.SuccessColor).
			Build()

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{embed},
		})
	}
}
