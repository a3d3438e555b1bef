package suggest

import (
	"time"

	"github.com/DrunkMunki/Suggester/command/def"
	"github.com/DrunkMunki/Suggester/handler"
	"github.com/DrunkMunki/Suggester/model"
	"github.com/DrunkMunki/Suggester/vote"

	"github.com/bwmarrin/discordgo"
)

// Deps carries everything the suggest handlers need, wired once at startup.
type Deps struct {
	Reconciler *vote.Reconciler
	Status     *vote.StatusManager
	Messenger  *DiscordMessenger
	Emojis     model.VoteEmojis
	Location   *time.Location
}

var deps Deps

// RegisterHandlers registers all handlers for the suggest package.
func RegisterHandlers(d Deps) {
	deps = d

	handler.AddCommandHandler(def.SuggestCommand.Name, suggestCommandHandler)
	handler.AddCommandHandler(def.CreatePanelCommand.Name, createPanelCommandHandler)

	handler.AddComponentHandler("suggest_panel_select", panelSelectHandler)
	handler.AddModalHandler("suggest_modal", suggestionModalHandler)
}

// interactionUser returns the invoking user for guild or DM interactions.
func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}
