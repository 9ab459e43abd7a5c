package economy

import "github.com/disgoorg/disgo/discord"

var Commands = []discord.ApplicationCommandCreate{
	Balance,
	Bonus,
	RPS,
	Bet,
	AcceptBet,
	Leaderboard,
}

// choiceOption is the shared rock/paper/scissors option definition.
func choiceOption(description string) discord.ApplicationCommandOptionString {
	return discord.ApplicationCommandOptionString{
		Name:        "choice",
		Description: description,
		Required:    true,
		Choices: []discord.ApplicationCommandOptionChoiceString{
			{Name: "🪨 Rock", Value: "rock"},
			{Name: "📄 Paper", Value: "paper"},
			{Name: "✂️ Scissors", Value: "scissors"},
		},
	}
}
