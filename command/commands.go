package command

import (
	"github.com/DrunkMunki/Suggester/command/def"

	"github.com/bwmarrin/discordgo"
)

// AllCommands contains all of the commands
var AllCommands = []*discordgo.ApplicationCommand{
	def.SuggestCommand,
	def.CreatePanelCommand,
}
