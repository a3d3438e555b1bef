package bot

import (
	"github.com/DrunkMunki/Suggester/handler"
	"github.com/DrunkMunki/Suggester/handler/suggest"

	"github.com/bwmarrin/discordgo"
)

func registerEventHandlers(s *discordgo.Session) {
	s.AddHandler(handler.OnInteractionCreate)
	s.AddHandler(suggest.MessageReactionAdd)
	s.AddHandler(suggest.MessageReactionRemove)
	s.AddHandler(suggest.MessageCreate)

	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentsGuildMessageReactions
}
