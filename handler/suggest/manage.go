package suggest

import (
	"errors"
	"fmt"

	"github.com/DrunkMunki/Suggester/model"
	"github.com/DrunkMunki/Suggester/utils"
	"github.com/DrunkMunki/Suggester/vote"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// handleManage applies an admin decision to a suggestion via the status
// manager and reports the outcome privately.
func handleManage(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
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

		var (
			id            int64
			status, notes string
		)
		for _, option := range options {
			switch option.Name {
			case "id":
				id = option.IntValue()
			case "status":
				status = option.StringValue()
			case "notes":
				notes = option.StringValue()
			}
		}

		var (
			sug      *model.Suggestion
			applyErr error
		)
		if status == "clear" {
			sug, applyErr = deps.Status.Clear(id)
		} else {
			decision, ok := model.ParseDecision(status)
			if !ok {
				editReply(s, i, "Unknown status.")
				return
			}
			sug, applyErr = deps.Status.Apply(id, decision, notes, interactionUser(i).Username)
		}

		switch {
		case applyErr == nil:
			editReply(s, i, fmt.Sprintf("Suggestion %d updated successfully.", sug.ID))
		case errors.Is(applyErr, vote.ErrNotFound):
			editReply(s, i, "Suggestion not found.")
		case errors.Is(applyErr, vote.ErrArtifact):
			editReply(s, i, fmt.Sprintf("Suggestion %d was updated, but its public message could not be refreshed.", sug.ID))
		default:
			zap.S().Errorw("failed to update suggestion", "suggestion_id", id, "error", applyErr)
			editReply(s, i, "Error updating suggestion.")
		}
	}()
}
