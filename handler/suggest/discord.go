package suggest

import (
	"time"

	"github.com/DrunkMunki/Suggester/model"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// reactionPageSize is the API maximum for one reaction-users page.
const reactionPageSize = 100

// DiscordMessenger implements the messaging surface the vote package needs
// on top of a discordgo session. All suggestion messages live in one
// configured channel.
type DiscordMessenger struct {
	session   *discordgo.Session
	channelID string
	loc       *time.Location
}

// NewMessenger builds the messenger for the suggestions channel.
func NewMessenger(session *discordgo.Session, channelID string, loc *time.Location) *DiscordMessenger {
	return &DiscordMessenger{
		session:   session,
		channelID: channelID,
		loc:       loc,
	}
}

// ReactionUsers returns the IDs of every user currently holding the given
// reaction, paging until the snapshot is exhausted.
func (m *DiscordMessenger) ReactionUsers(messageID string, emoji model.VoteEmoji) ([]string, error) {
	var ids []string
	after := ""
	for {
		users, err := m.session.MessageReactions(m.channelID, messageID, emoji.APIName(), reactionPageSize, "", after)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			ids = append(ids, u.ID)
		}
		if len(users) < reactionPageSize {
			return ids, nil
		}
		after = users[len(users)-1].ID
	}
}

// RemoveReaction removes one user's reaction from a message.
func (m *DiscordMessenger) RemoveReaction(messageID string, emoji model.VoteEmoji, userID string) error {
	return m.session.MessageReactionRemove(m.channelID, messageID, emoji.APIName(), userID)
}

// ClearReactions removes every reaction from a message.
func (m *DiscordMessenger) ClearReactions(messageID string) error {
	return m.session.MessageReactionsRemoveAll(m.channelID, messageID)
}

// React adds the bot's own reaction to a message.
func (m *DiscordMessenger) React(messageID string, emoji model.VoteEmoji) error {
	return m.session.MessageReactionAdd(m.channelID, messageID, emoji.APIName())
}

// UpdateMessage re-renders a suggestion's embed in place.
func (m *DiscordMessenger) UpdateMessage(sug *model.Suggestion) error {
	embed := BuildSuggestionEmbed(sug, m.DisplayName(sug.AuthorID), m.loc)
	_, err := m.session.ChannelMessageEditEmbed(m.channelID, sug.MessageID, embed)
	return err
}

// DisplayName resolves a user's name for display, falling back to a
// placeholder when the lookup fails.
func (m *DiscordMessenger) DisplayName(userID string) string {
	user, err := m.session.User(userID)
	if err != nil {
		zap.S().Warnw("failed to resolve user for display", "user_id", userID, "error", err)
		return "Unknown User"
	}
	return user.Username
}
