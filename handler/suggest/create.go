package suggest

import (
	"strings"
	"time"

	"github.com/DrunkMunki/Suggester/config"
	"github.com/DrunkMunki/Suggester/db"
	"github.com/DrunkMunki/Suggester/model"
	"github.com/DrunkMunki/Suggester/utils"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// suggestCommandHandler routes the /suggest subcommands.
func suggestCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return
	}

	switch options[0].Name {
	case "create":
		handleCreate(s, i, options[0].Options)
	case "manage":
		handleManage(s, i, options[0].Options)
	}
}

// handleCreate shows the intake modal for the chosen suggestion kind. The
// modal must be the initial interaction response, so no deferral here.
func handleCreate(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	var kindValue string
	for _, option := range options {
		if option.Name == "type" {
			kindValue = option.StringValue()
		}
	}

	kind, ok := model.ParseKind(kindValue)
	if !ok {
		return
	}

	showSuggestionModal(s, i, kind)
}

// showSuggestionModal caches an intake draft and responds with the form.
func showSuggestionModal(s *discordgo.Session, i *discordgo.InteractionCreate, kind model.Kind) {
	draftID := utils.AddDraft(utils.Draft{
		UserID: interactionUser(i).ID,
		Kind:   kind,
	})

	if err := s.InteractionRespond(i.Interaction, BuildSuggestionModal(kind, draftID)); err != nil {
		zap.S().Errorw("failed to show suggestion modal", "kind", kind, "error", err)
		utils.RemoveDraft(draftID)
	}
}

// suggestionModalHandler processes a submitted suggestion form: persist the
// record, post the public embed, seed the vote reactions, store the message
// reference.
func suggestionModalHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
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
		data := i.ModalSubmitData()

		parts := strings.SplitN(data.CustomID, ":", 2)
		if len(parts) != 2 {
			return
		}

		draft, found := utils.GetDraft(parts[1])
		if !found || draft.UserID != interactionUser(i).ID {
			editReply(s, i, "This form has expired. Please start your suggestion again.")
			return
		}
		utils.RemoveDraft(parts[1])

		fields := modalFields(data)
		sug := &model.Suggestion{
			AuthorID:    draft.UserID,
			Kind:        draft.Kind,
			SubmittedAt: time.Now().Unix(),
		}
		switch draft.Kind {
		case model.KindGame:
			sug.GameName = fields["game_name"]
			sug.MapName = fields["map_name"]
			sug.Suggestion = fields["suggestion"]
			sug.Reason = fields["reason"]
		case model.KindCommunity:
			sug.Title = fields["title"]
			sug.Detail = fields["detail"]
		}

		id, err := db.InsertSuggestion(sug)
		if err != nil {
			zap.S().Errorw("failed to insert suggestion", "author_id", sug.AuthorID, "error", err)
			editReply(s, i, "Error submitting suggestion to database.")
			return
		}
		sug.ID = id

		channelID := config.Cfg.Suggestions.ChannelID
		embed := BuildSuggestionEmbed(sug, deps.Messenger.DisplayName(sug.AuthorID), deps.Location)
		message, err := s.ChannelMessageSendEmbed(channelID, embed)
		if err != nil {
			zap.S().Errorw("failed to post suggestion", "suggestion_id", id, "error", err)
			editReply(s, i, "Error posting suggestion to channel. Check bot permissions and channel access.")
			return
		}

		// Seed the two vote reactions so voters only need to click.
		for _, emoji := range []model.VoteEmoji{deps.Emojis.Up, deps.Emojis.Down} {
			if err := s.MessageReactionAdd(channelID, message.ID, emoji.APIName()); err != nil {
				zap.S().Warnw("failed to seed vote reaction",
					"suggestion_id", id, "emoji", emoji.APIName(), "error", err)
			}
		}

		if err := db.SetMessageID(id, message.ID); err != nil {
			zap.S().Errorw("failed to store suggestion message id",
				"suggestion_id", id, "message_id", message.ID, "error", err)
		}

		editReply(s, i, "Your suggestion has been submitted!")
	}()
}

// modalFields flattens a modal submission into customID → value.
func modalFields(data discordgo.ModalSubmitInteractionData) map[string]string {
	fields := make(map[string]string)
	for _, component := range data.Components {
		row, ok := component.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, inner := range row.Components {
			if input, ok := inner.(*discordgo.TextInput); ok {
				fields[input.CustomID] = input.Value
			}
		}
	}
	return fields
}

func editReply(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: utils.StringPtr(content),
	})
	if err != nil {
		zap.S().Errorw("failed to edit interaction response", "error", err)
	}
}
