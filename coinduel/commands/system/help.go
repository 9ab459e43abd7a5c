package system

import (
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/sahilm/fuzzy"

	"github.com/coinduelbot/coinduel/coinduel"
	"github.com/coinduelbot/coinduel/coinduel/config"
	"github.com/coinduelbot/coinduel/coinduel/utils"
)

var Help = discord.SlashCommandCreate{
	Name:        "help",
	Description: "📖 Display all available commands and their descriptions",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "command",
			Description: "Search for a specific command",
			Required:    false,
		},
	},
}

type commandHelp struct {
	Name        string
	Usage       string
	Description string
}

var commandCatalog = []commandHelp{
	{"start", "/start", "Register yourself and get starting coins"},
	{"rules", "/rules", "Show the server rules"},
	{"balance", "/balance", "Check your coin balance"},
	{"bonus", "/bonus", "Claim your daily random coin bonus"},
	{"rps", "/rps <choice>", "Play rock/paper/scissors against the house"},
	{"bet", "/bet <user> <amount> <choice>", "Challenge a friend to a coin duel"},
	{"acceptbet", "/acceptbet <choice>", "Accept a pending bet challenge"},
	{"leaderboard", "/leaderboard", "Top coin holders"},
	{"ping", "/ping", "Check bot responsiveness"},
	{"version", "/version", "Show the running bot version"},
}

func (c commandHelp) field() (string, string) {
	return fmt.Sprintf("`%s`", c.Usage), c.Description
}

func HelpHandler(b *coinduel.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		if query, ok := e.SlashCommandInteractionData().OptString("command"); ok && query != "" {
			return showCommandHelp(e, query)
		}
		return showOverviewHelp(e)
	}
}

func showOverviewHelp(e *handler.CommandEvent) error {
	embed := discord.NewEmbedBuilder().
		SetTitle("📖 CoinDuel - Command Help").
		SetDescription("**CoinDuel** is a coin economy built around rock/paper/scissors duels.").
		SetColor(config.InfoColor)

	for _, cmd := range commandCatalog {
		name, value := cmd.field()
		embed.AddField(name, value, false)
	}
	embed.SetFooter(fmt.Sprintf("Total: %d commands • Use /help command:<name> for a single entry", len(commandCatalog)), "")

	return e.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{embed.Build()},
	})
}

func showCommandHelp(e *handler.CommandEvent, query string) error {
	names := make([]string, len(commandCatalog))
	for i, cmd := range commandCatalog {
		names[i] = cmd.Name
	}

	matches := fuzzy.Find(strings.ToLower(strings.TrimPrefix(query, "/")), names)
	if len(matches) == 0 {
		return utils.EH.CreateEphemeralError(e,
			fmt.Sprintf("No command matching `%s`. Try `/help` for the full list.", query))
	}

	embed := discord.NewEmbedBuilder().
		SetTitle(fmt.Sprintf("📖 Commands matching \"%s\"", query)).
		SetColor(config.InfoColor)

	limit := min(len(matches), 3)
	for _, match := range matches[:limit] {
		cmd := commandCatalog[match.Index]
		name, value := cmd.field()
		embed.AddField(name, value, false)
	}

	return e.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{embed.Build()},
	})
}
