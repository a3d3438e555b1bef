package suggest

import (
	"fmt"
	"time"

	"github.com/DrunkMunki/Suggester/model"

	"github.com/bwmarrin/discordgo"
)

// Embed colors per status.
const (
	colorOpen               = 0x0099FF // Blue
	colorUnderConsideration = 0xFFA500 // Orange
	colorImplemented        = 0x00FF00 // Green
	colorNotHappening       = 0xFF0000 // Red
)

const submittedAtLayout = "02/01/2006 15:04"

// BuildSuggestionEmbed renders a suggestion into its public embed. Pure:
// username must already be resolved, and loc is the display timezone.
func BuildSuggestionEmbed(sug *model.Suggestion, username string, loc *time.Location) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Suggestion from %s", username),
		Color: statusColor(sug.Status),
	}

	switch sug.Kind {
	case model.KindGame:
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{Name: "Game Name", Value: orNA(sug.GameName), Inline: true},
			&discordgo.MessageEmbedField{Name: "Map/Server Name", Value: orNA(sug.MapName)},
			&discordgo.MessageEmbedField{Name: "Suggestion", Value: orNA(sug.Suggestion)},
			&discordgo.MessageEmbedField{Name: "Reason", Value: orNA(sug.Reason)},
		)
	case model.KindCommunity:
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{Name: "Suggestion Title", Value: orNA(sug.Title)},
			&discordgo.MessageEmbedField{Name: "Suggestion in Detail", Value: orNA(sug.Detail)},
		)
	}

	if !sug.Status.Open() {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Public Status",
			Value: sug.Status.Decision.Label(),
		})
		if sug.Status.Notes != "" {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  "Comment",
				Value: sug.Status.Notes,
			})
		}
	}

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  "Votes",
		Value: votesValue(sug),
	})

	embed.Footer = &discordgo.MessageEmbedFooter{
		Text: fmt.Sprintf("Suggestion ID: %d | Submitted at • %s",
			sug.ID, time.Unix(sug.SubmittedAt, 0).In(loc).Format(submittedAtLayout)),
	}

	return embed
}

func statusColor(status model.Status) int {
	switch status.Decision {
	case model.DecisionNotHappening:
		return colorNotHappening
	case model.DecisionUnderConsideration:
		return colorUnderConsideration
	case model.DecisionImplemented:
		return colorImplemented
	}
	return colorOpen
}

// votesValue formats the tallies with percentages; closed suggestions get an
// extra net-opinion line.
func votesValue(sug *model.Suggestion) string {
	total := sug.Upvotes + sug.Downvotes
	upPct, downPct := 0.0, 0.0
	if total > 0 {
		upPct = float64(sug.Upvotes) / float64(total) * 100
		downPct = float64(sug.Downvotes) / float64(total) * 100
	}

	value := fmt.Sprintf("Upvotes: %d %.2f%%\nDownvotes: %d %.2f%%", sug.Upvotes, upPct, sug.Downvotes, downPct)
	if !sug.Status.Open() {
		opinion := sug.Upvotes - sug.Downvotes
		value = fmt.Sprintf("Opinion: %+d\n%s", opinion, value)
	}
	return value
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
