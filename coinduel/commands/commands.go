package commands

import (
	"github.com/disgoorg/disgo/discord"

	"github.com/coinduelbot/coinduel/coinduel/commands/economy"
	"github.com/coinduelbot/coinduel/coinduel/commands/system"
)

var Commands = []discord.ApplicationCommandCreate{}

func init() {
	Commands = append(Commands, economy.Commands...)
	Commands = append(Commands, system.Commands...)
}
