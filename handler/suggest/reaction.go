package suggest

import (
	"github.com/DrunkMunki/Suggester/config"
	"github.com/DrunkMunki/Suggester/vote"

	"github.com/bwmarrin/discordgo"
)

// MessageReactionAdd handles reaction additions.
func MessageReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if r.UserID == s.State.User.ID || r.ChannelID != config.Cfg.Suggestions.ChannelID {
		return
	}
	deps.Reconciler.HandleEvent(vote.Event{
		MessageID: r.MessageID,
		UserID:    r.UserID,
		EmojiName: r.Emoji.Name,
		EmojiID:   r.Emoji.ID,
		Type:      vote.ReactionAdded,
	})
}

// MessageReactionRemove handles reaction removals.
func MessageReactionRemove(s *discordgo.Session, r *discordgo.MessageReactionRemove) {
	if r.UserID == s.State.User.ID || r.ChannelID != config.Cfg.Suggestions.ChannelID {
		return
	}
	deps.Reconciler.HandleEvent(vote.Event{
		MessageID: r.MessageID,
		UserID:    r.UserID,
		EmojiName: r.Emoji.Name,
		EmojiID:   r.Emoji.ID,
		Type:      vote.ReactionRemoved,
	})
}
