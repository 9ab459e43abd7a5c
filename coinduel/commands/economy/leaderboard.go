package economy

import (
	"context"
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/paginator"

	"github.com/coinduelbot/coinduel/coinduel"
	"github.com/coinduelbot/coinduel/coinduel/config"
	"github.com/coinduelbot/coinduel/coinduel/utils"
)

var Leaderboard = discord.SlashCommandCreate{
	Name:        "leaderboard",
	Description: "🏆 Top coin holders",
}

var rankMedals = []string{"🥇", "🥈", "🥉"}

func LeaderboardHandler(b *coinduel.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		entries := b.Ledger.Top(config.LeaderboardTopN)
		if len(entries) == 0 {
			return utils.EH.CreateWarning(e, "No players yet",
				"Nobody holds coins yet. Play /rps or claim /bonus to get started!")
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.CommandTimeout)
		defer cancel()

		ids := make([]string, len(entries))
		for i, entry := range entries {
			ids[i] = entry.UserID
		}
		names := b.Usernames.ResolveMany(ctx, ids)

		pageSize := config.LeaderboardPageSize
		totalPages := (len(entries) + pageSize - 1) / pageSize

		return b.Paginator.Create(e.Respond, paginator.Pages{
			ID:      e.ID().String(),
			Creator: e.User().ID,
			PageFunc: func(page int, embed *discord.EmbedBuilder) {
				start := page * pageSize
				end := min(start+pageSize, len(entries))

				var description strings.Builder
				for i, entry := range entries[start:end] {
					rank := start + i
					description.WriteString(fmt.Sprintf("%s **%s** — %s coins\n",
						medal(rank), names[entry.UserID], utils.FormatNumber(entry.Balance)))
				}

				embed.
					SetTitle("🏆 Leaderboard — Top Coin Holders").
					SetDescription(description.String()).
					SetColor(config.InfoColor).
					SetFooter(fmt.Sprintf("Page %d/%d • %d players", page+1, totalPages, len(entries)), "")
			},
			Pages:      totalPages,
			ExpireMode: paginator.ExpireModeAfterLastUsage,
		}, false)
	}
}

func medal(rank int) string {
	if rank < len(rankMedals) {
		return rankMedals[rank]
	}
	return fmt.Sprintf("%d.", rank+1)
}
