package def

import (
	"github.com/bwmarrin/discordgo"
)

var CreatePanelCommand = &discordgo.ApplicationCommand{
	Name:        "create_panel",
	Description: "Post the suggestion intake panel in the suggestions channel (admin only)",
}
