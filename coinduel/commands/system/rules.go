package system

import (
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/coinduelbot/coinduel/coinduel"
	"github.com/coinduelbot/coinduel/coinduel/config"
)

var Rules = discord.SlashCommandCreate{
	Name:        "rules",
	Description: "📜 Show the server rules",
}

const rulesText = "1. No spam.\n" +
	"2. Respect everyone.\n" +
	"3. No cheating in games.\n" +
	"4. Have fun! 🎉"

func RulesHandler(b *coinduel.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		embed := discord.NewEmbedBuilder().
			SetTitle("📜 Server Rules").
			SetDescription(rulesText).
			SetColor(config.InfoColor).
			Build()

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{embed},
		})
	}
}
