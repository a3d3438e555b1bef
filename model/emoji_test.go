package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVoteEmojiAPIName(t *testing.T) {
	assert.Equal(t, "👍", VoteEmoji{Name: "👍"}.APIName())
	assert.Equal(t, "upvote:12345", VoteEmoji{Name: "upvote", ID: "12345"}.APIName())
}

func TestUnicodeEmojiMatchesByName(t *testing.T) {
	up := VoteEmoji{Name: "👍"}

	assert.True(t, up.Matches("👍", ""))
	assert.False(t, up.Matches("👎", ""))
	// A custom emoji that happens to share the name must not match.
	assert.False(t, up.Matches("👍", "998877"))
}

func TestCustomEmojiMatchesByID(t *testing.T) {
	up := VoteEmoji{Name: "upvote", ID: "12345"}

	assert.True(t, up.Matches("upvote", "12345"))
	// Renamed server-side but same identity.
	assert.True(t, up.Matches("yes_vote", "12345"))
	assert.False(t, up.Matches("upvote", "67890"))
	assert.False(t, up.Matches("upvote", ""))
}

func TestDecisionParsing(t *testing.T) {
	for _, value := range []string{"under_consideration", "implemented", "not_happening"} {
		d, ok := ParseDecision(value)
		assert.True(t, ok)
		assert.Equal(t, Decision(value), d)
	}

	_, ok := ParseDecision("clear")
	assert.False(t, ok)
	_, ok = ParseDecision("")
	assert.False(t, ok)
}

func TestStatusOpen(t *testing.T) {
	assert.True(t, Status{}.Open())
	assert.False(t, Closed(DecisionImplemented, "done").Open())
}
