package def

import (
	"github.com/bwmarrin/discordgo"
)

var SuggestCommand = &discordgo.ApplicationCommand{
	Name:        "suggest",
	Description: "Suggestion commands",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "create",
			Description: "Create a new suggestion",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "type",
					Description: "Type of suggestion",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Game", Value: "game"},
						{Name: "Community", Value: "community"},
					},
				},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "manage",
			Description: "Manage a suggestion (admin only)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "id",
					Description: "Suggestion ID",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "status",
					Description: "Status to set",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Under Consideration", Value: "under_consideration"},
						{Name: "Implemented", Value: "implemented"},
						{Name: "Not Happening", Value: "not_happening"},
						{Name: "Clear", Value: "clear"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "notes",
					Description: "Admin notes",
					Required:    false,
				},
			},
		},
	},
}
