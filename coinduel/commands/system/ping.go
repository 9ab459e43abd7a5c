package system

import (
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/coinduelbot/coinduel/coinduel"
	"github.com/coinduelbot/coinduel/coinduel/config"
)

var Ping = discord.SlashCommandCreate{
	Name:        "ping",
	Description: "🏓 Check whether the bot is alive",
}

func PingHandler(b *coinduel.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		latency := b.Client.Gateway().Latency()

		embed := discord.NewEmbedBuilder().
			SetTitle("🏓 Pong!").
			SetDescription(fmt.Sprintf("Gateway latency: **%s**", latency)).
			SetColor(config.SuccessColor).
			Build()

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{embed},
		})
	}
}
