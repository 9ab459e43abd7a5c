package system

import "github.com/disgoorg/disgo/discord"

var Commands = []discord.ApplicationCommandCreate{
	Start,
	Rules,
	Help,
	Ping,
	Version,
}
