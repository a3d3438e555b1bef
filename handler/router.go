package handler

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

var (
	commandHandlers   = make(map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate))
	componentHandlers = make(map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate))
	modalHandlers     = make(map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate))
)

// AddCommandHandler registers a handler for a slash command.
func AddCommandHandler(name string, handler func(s *discordgo.Session, i *discordgo.InteractionCreate)) {
	commandHandlers[name] = handler
}

// AddComponentHandler registers a handler for a message component. The
// customID may carry arguments after a ":"; routing uses the prefix.
func AddComponentHandler(customID string, handler func(s *discordgo.Session, i *discordgo.InteractionCreate)) {
	componentHandlers[customID] = handler
}

// AddModalHandler registers a handler for a modal submission, routed by
// customID prefix like components.
func AddModalHandler(customID string, handler func(s *discordgo.Session, i *discordgo.InteractionCreate)) {
	modalHandlers[customID] = handler
}

// handlerKey strips the argument part of a customID.
func handlerKey(customID string) string {
	parts := strings.SplitN(customID, ":", 2)
	return parts[0]
}

// OnInteractionCreate is the main interaction router.
// It should be registered as the primary interaction handler in bot.Start.
func OnInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if handler, ok := commandHandlers[i.ApplicationCommandData().Name]; ok {
			handler(s, i)
		}
	case discordgo.InteractionMessageComponent:
		if handler, ok := componentHandlers[handlerKey(i.MessageComponentData().CustomID)]; ok {
			handler(s, i)
		}
	case discordgo.InteractionModalSubmit:
		if handler, ok := modalHandlers[handlerKey(i.ModalSubmitData().CustomID)]; ok {
			handler(s, i)
		}
	}
}
