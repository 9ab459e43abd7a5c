package economy

import (
	"fmt"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/coinduelbot/coinduel/coinduel"
	"github.com/coinduelbot/coinduel/coinduel/config"
	"github.com/coinduelbot/coinduel/coinduel/utils"
)

var Balance = discord.SlashCommandCreate{
	Name:        "balance",
	Description: "💰 Check your coin balance",
}

func BalanceHandler(b *coinduel.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		balance := b.Ledger.Balance(e.User().ID.String())

		now := time.Now()
		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       "💰 Balance",
				Description: fmt.Sprintf("%s, you have **%s** coins.", e.User().EffectiveName(), utils.FormatNumber(balance)),
				Color:       config.InfoColor,
				Footer: &discord.EmbedFooter{
					Text: "Claim /bonus daily to earn more",
				},
				Timestamp: &now,
			}},
		})
	}
}
