package suggest

import (
	"fmt"

	"github.com/DrunkMunki/Suggester/model"

	"github.com/bwmarrin/discordgo"
)

// BuildSuggestionModal creates the intake form for a suggestion kind. The
// draftID ties the later modal submission back to the cached intake draft.
func BuildSuggestionModal(kind model.Kind, draftID string) *discordgo.InteractionResponse {
	var title string
	var components []discordgo.MessageComponent

	switch kind {
	case model.KindGame:
		title = "Game Suggestion"
		components = []discordgo.MessageComponent{
			textInputRow("game_name", "Game Name", discordgo.TextInputShort),
			textInputRow("map_name", "Map/Server Name", discordgo.TextInputShort),
			textInputRow("suggestion", "Suggestion", discordgo.TextInputParagraph),
			textInputRow("reason", "Reason", discordgo.TextInputParagraph),
		}
	case model.KindCommunity:
		title = "Community Suggestion"
		components = []discordgo.MessageComponent{
			textInputRow("title", "Suggestion Title", discordgo.TextInputShort),
			textInputRow("detail", "Suggestion in Detail", discordgo.TextInputParagraph),
		}
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID:   fmt.Sprintf("suggest_modal:%s", draftID),
			Title:      title,
			Components: components,
		},
	}
}

func textInputRow(customID, label string, style discordgo.TextInputStyle) discordgo.MessageComponent {
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.TextInput{
				CustomID: customID,
				Label:    label,
				Style:    style,
				Required: true,
			},
		},
	}
}

// BuildPanelMessage creates the standing intake panel: an explainer embed
// with a kind select menu underneath.
func BuildPanelMessage() *discordgo.MessageSend {
	embed := &discordgo.MessageEmbed{
		Title: "Make a Suggestion",
		Description: "Pick a category below to open the suggestion form.\n\n" +
			"**Game** — suggestions for a specific game, map or server\n" +
			"**Community** — suggestions for the community itself\n\n" +
			"Vote on posted suggestions with the reactions under each one.",
		Color: colorOpen,
	}

	return &discordgo.MessageSend{
		Embed: embed,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.SelectMenu{
						MenuType:    discordgo.StringSelectMenu,
						CustomID:    "suggest_panel_select",
						Placeholder: "What would you like to suggest?",
						Options: []discordgo.SelectMenuOption{
							{
								Label:       "Game",
								Value:       string(model.KindGame),
								Description: "Suggest something for a game, map or server",
								Emoji:       &discordgo.ComponentEmoji{Name: "🎮"},
							},
							{
								Label:       "Community",
								Value:       string(model.KindCommunity),
								Description: "Suggest something for the community",
								Emoji:       &discordgo.ComponentEmoji{Name: "🏠"},
							},
						},
					},
				},
			},
		},
	}
}
