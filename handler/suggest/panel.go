package suggest

import (
	"fmt"

	"github.com/DrunkMunki/Suggester/config"
	"github.com/DrunkMunki/Suggester/db"
	"github.com/DrunkMunki/Suggester/model"
	"github.com/DrunkMunki/Suggester/utils"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// createPanelCommandHandler posts the intake panel to the suggestions
// channel, replacing any panel previously tracked for it.
func createPanelCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		zap.S().Errorw("failed to send deferred response", "error", err)
		return
	}

	go func() {
		if i.Member == nil || !utils.CheckAuth(i.Member.User.ID, i.Member.Roles) {
			editReply(s, i, "You do not have permission to use this command.")
			return
		}

		channelID := config.Cfg.Suggestions.ChannelID
		if channelID == "" {
			zap.S().Error("suggestions channel_id is not configured")
			editReply(s, i, "Configuration error: no suggestions channel is set.")
			return
		}

		if err := replacePanel(s, channelID); err != nil {
			zap.S().Errorw("failed to create panel", "channel_id", channelID, "error", err)
			editReply(s, i, "Error creating the suggestion panel.")
			return
		}

		editReply(s, i, fmt.Sprintf("✅ Suggestion panel posted in <#%s>.", channelID))
	}()
}

// MessageCreate keeps the panel as the last message in its channel: any new
// human message triggers a delete-and-repost.
func MessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.ID == s.State.User.ID {
		return
	}

	state, err := db.GetPanelState(m.ChannelID)
	if err != nil {
		zap.S().Errorw("failed to load panel state", "channel_id", m.ChannelID, "error", err)
		return
	}
	if state == nil {
		return
	}

	if err := replacePanel(s, m.ChannelID); err != nil {
		zap.S().Errorw("failed to refresh panel", "channel_id", m.ChannelID, "error", err)
	}
}

// replacePanel deletes the channel's tracked panel message (if any), posts a
// fresh one and records it. The old message is deleted best-effort; a stale
// delete failure must not block the new panel.
func replacePanel(s *discordgo.Session, channelID string) error {
	state, err := db.GetPanelState(channelID)
	if err != nil {
		return err
	}

	if state != nil {
		if err := s.ChannelMessageDelete(channelID, state.MessageID); err != nil {
			zap.S().Warnw("failed to delete old panel message",
				"channel_id", channelID, "message_id", state.MessageID, "error", err)
		}
	}

	message, err := s.ChannelMessageSendComplex(channelID, BuildPanelMessage())
	if err != nil {
		return err
	}

	return db.SavePanelState(channelID, message.ID)
}

// panelSelectHandler opens the intake modal for the kind picked from the
// panel's select menu.
func panelSelectHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	values := i.MessageComponentData().Values
	if len(values) == 0 {
		return
	}

	kind, ok := model.ParseKind(values[0])
	if !ok {
		return
	}

	showSuggestionModal(s, i, kind)
}
