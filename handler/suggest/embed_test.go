package suggest

import (
	"testing"
	"time"

	"github.com/DrunkMunki/Suggester/model"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldByName(embed *discordgo.MessageEmbed, name string) *discordgo.MessageEmbedField {
	for _, f := range embed.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func gameSuggestion() *model.Suggestion {
	return &model.Suggestion{
		ID:          7,
		AuthorID:    "author",
		Kind:        model.KindGame,
		GameName:    "Squad",
		MapName:     "Narva",
		Suggestion:  "Add a night layer",
		Reason:      "Variety",
		SubmittedAt: time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC).Unix(),
		Upvotes:     2,
		Downvotes:   1,
	}
}

func TestGameSuggestionEmbed(t *testing.T) {
	embed := BuildSuggestionEmbed(gameSuggestion(), "Alice", time.UTC)

	assert.Equal(t, "Suggestion from Alice", embed.Title)
	assert.Equal(t, colorOpen, embed.Color)

	require.NotNil(t, fieldByName(embed, "Game Name"))
	assert.Equal(t, "Squad", fieldByName(embed, "Game Name").Value)
	assert.Equal(t, "Narva", fieldByName(embed, "Map/Server Name").Value)
	assert.Equal(t, "Add a night layer", fieldByName(embed, "Suggestion").Value)
	assert.Equal(t, "Variety", fieldByName(embed, "Reason").Value)

	assert.Nil(t, fieldByName(embed, "Public Status"))
	assert.Nil(t, fieldByName(embed, "Suggestion Title"))

	assert.Equal(t, "Suggestion ID: 7 | Submitted at • 09/03/2024 14:30", embed.Footer.Text)
}

func TestCommunitySuggestionEmbed(t *testing.T) {
	sug := &model.Suggestion{
		ID:     2,
		Kind:   model.KindCommunity,
		Title:  "Movie night",
		Detail: "Monthly community movie night",
	}

	embed := BuildSuggestionEmbed(sug, "Bob", time.UTC)

	assert.Equal(t, "Movie night", fieldByName(embed, "Suggestion Title").Value)
	assert.Equal(t, "Monthly community movie night", fieldByName(embed, "Suggestion in Detail").Value)
	assert.Nil(t, fieldByName(embed, "Game Name"))
}

func TestEmptyContentFieldsRenderAsNA(t *testing.T) {
	sug := &model.Suggestion{ID: 3, Kind: model.KindGame}

	embed := BuildSuggestionEmbed(sug, "Bob", time.UTC)

	assert.Equal(t, "N/A", fieldByName(embed, "Game Name").Value)
	assert.Equal(t, "N/A", fieldByName(embed, "Reason").Value)
}

func TestStatusColorsAndFields(t *testing.T) {
	tests := []struct {
		name   string
		status model.Status
		color  int
		label  string
	}{
		{"under consideration", model.Closed(model.DecisionUnderConsideration, ""), colorUnderConsideration, "Under Consideration"},
		{"implemented", model.Closed(model.DecisionImplemented, ""), colorImplemented, "Implemented"},
		{"not happening", model.Closed(model.DecisionNotHappening, ""), colorNotHappening, "Not Happening"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sug := gameSuggestion()
			sug.Status = tt.status

			embed := BuildSuggestionEmbed(sug, "Alice", time.UTC)

			assert.Equal(t, tt.color, embed.Color)
			require.NotNil(t, fieldByName(embed, "Public Status"))
			assert.Equal(t, tt.label, fieldByName(embed, "Public Status").Value)
		})
	}
}

func TestNotesRenderedAsComment(t *testing.T) {
	sug := gameSuggestion()
	sug.Status = model.Closed(model.DecisionImplemented, "Shipped in last patch")

	embed := BuildSuggestionEmbed(sug, "Alice", time.UTC)

	require.NotNil(t, fieldByName(embed, "Comment"))
	assert.Equal(t, "Shipped in last patch", fieldByName(embed, "Comment").Value)
}

func TestVotesFieldPercentages(t *testing.T) {
	sug := gameSuggestion()
	sug.Upvotes, sug.Downvotes = 3, 1

	embed := BuildSuggestionEmbed(sug, "Alice", time.UTC)

	require.NotNil(t, fieldByName(embed, "Votes"))
	assert.Equal(t, "Upvotes: 3 75.00%\nDownvotes: 1 25.00%", fieldByName(embed, "Votes").Value)
}

func TestVotesFieldZeroVotes(t *testing.T) {
	sug := gameSuggestion()
	sug.Upvotes, sug.Downvotes = 0, 0

	embed := BuildSuggestionEmbed(sug, "Alice", time.UTC)

	assert.Equal(t, "Upvotes: 0 0.00%\nDownvotes: 0 0.00%", fieldByName(embed, "Votes").Value)
}

func TestClosedVotesFieldShowsOpinion(t *testing.T) {
	tests := []struct {
		up, down int
		opinion  string
	}{
		{5, 2, "Opinion: +3"},
		{1, 4, "Opinion: -3"},
		{2, 2, "Opinion: +0"},
	}

	for _, tt := range tests {
		sug := gameSuggestion()
		sug.Status = model.Closed(model.DecisionUnderConsideration, "")
		sug.Upvotes, sug.Downvotes = tt.up, tt.down

		embed := BuildSuggestionEmbed(sug, "Alice", time.UTC)

		votes := fieldByName(embed, "Votes")
		require.NotNil(t, votes)
		assert.Contains(t, votes.Value, tt.opinion)
	}
}
