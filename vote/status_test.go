package vote

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DrunkMunki/Suggester/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStatusManager(store *fakeStore, msgr *fakeMessenger) *StatusManager {
	return NewStatusManager(store, msgr, testEmojis(), testBotID, time.UTC, zap.NewNop().Sugar())
}

func TestApplyClosesAndFreezesReactions(t *testing.T) {
	sug := openSuggestion(5, "m5")
	store := newFakeStore(sug)

	emojis := testEmojis()
	msgr := newFakeMessenger()
	msgr.setReactions("m5", emojis.Up, testBotID, "A", "B")
	msgr.setReactions("m5", emojis.Down, testBotID, "C")

	updated, err := newTestStatusManager(store, msgr).Apply(5, model.DecisionUnderConsideration, "Looking into it", "Admin")
	require.NoError(t, err)

	assert.Equal(t, model.DecisionUnderConsideration, updated.Status.Decision)
	assert.Equal(t, model.DecisionUnderConsideration, store.suggestions[5].Status.Decision)

	// The note carries a timestamp line, then attribution, then the text.
	notes := store.suggestions[5].Status.Notes
	assert.True(t, strings.HasSuffix(notes, "Admin response:\nLooking into it"), "notes = %q", notes)
	assert.Greater(t, strings.Index(notes, "\n"), 0, "notes should start with a timestamp line")

	// Closing wipes every reaction, however many were present.
	assert.Equal(t, []string{"m5"}, msgr.cleared)
	assert.Empty(t, msgr.reactions["m5"][emojis.Up.APIName()])
	assert.Empty(t, msgr.reactions["m5"][emojis.Down.APIName()])

	require.Len(t, msgr.edits, 1)
	assert.False(t, msgr.edits[0].Status.Open())
}

func TestApplyRecloseOverwritesDecisionAndNotes(t *testing.T) {
	sug := openSuggestion(6, "m6")
	sug.Status = model.Closed(model.DecisionImplemented, "old note")
	store := newFakeStore(sug)
	msgr := newFakeMessenger()

	updated, err := newTestStatusManager(store, msgr).Apply(6, model.DecisionNotHappening, "changed our minds", "Admin")
	require.NoError(t, err)

	assert.Equal(t, model.DecisionNotHappening, updated.Status.Decision)
	assert.NotContains(t, store.suggestions[6].Status.Notes, "old note")
	assert.Contains(t, store.suggestions[6].Status.Notes, "changed our minds")
}

func TestClearReopensAndRestoresReactions(t *testing.T) {
	sug := openSuggestion(3, "m3")
	sug.Status = model.Closed(model.DecisionNotHappening, "won't do")
	store := newFakeStore(sug)

	emojis := testEmojis()
	msgr := newFakeMessenger()
	// Reactions were wiped when the suggestion was closed.
	msgr.setReactions("m3", emojis.Up)
	msgr.setReactions("m3", emojis.Down)

	updated, err := newTestStatusManager(store, msgr).Clear(3)
	require.NoError(t, err)

	assert.True(t, updated.Status.Open())
	assert.True(t, store.suggestions[3].Status.Open())
	assert.Empty(t, store.suggestions[3].Status.Notes)

	// Both vote emojis restored, exactly once each.
	assert.Equal(t, []string{emojis.Up.APIName(), emojis.Down.APIName()}, msgr.reacted)
	assert.Equal(t, []string{testBotID}, msgr.reactions["m3"][emojis.Up.APIName()])
	assert.Equal(t, []string{testBotID}, msgr.reactions["m3"][emojis.Down.APIName()])

	require.Len(t, msgr.edits, 1)
	assert.True(t, msgr.edits[0].Status.Open())
}

func TestClearDoesNotDuplicatePresentReactions(t *testing.T) {
	sug := openSuggestion(8, "m8")
	sug.Status = model.Closed(model.DecisionUnderConsideration, "")
	store := newFakeStore(sug)

	emojis := testEmojis()
	msgr := newFakeMessenger()
	// The up reaction survived (e.g. a race with the earlier clear); only
	// the missing down reaction may be added.
	msgr.setReactions("m8", emojis.Up, testBotID)
	msgr.setReactions("m8", emojis.Down)

	_, err := newTestStatusManager(store, msgr).Clear(8)
	require.NoError(t, err)

	assert.Equal(t, []string{emojis.Down.APIName()}, msgr.reacted)
	assert.Equal(t, []string{testBotID}, msgr.reactions["m8"][emojis.Up.APIName()])
}

func TestApplyUnknownSuggestion(t *testing.T) {
	store := newFakeStore()
	msgr := newFakeMessenger()

	_, err := newTestStatusManager(store, msgr).Apply(99, model.DecisionImplemented, "", "Admin")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = newTestStatusManager(store, msgr).Clear(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestApplyKeepsStatusWhenArtifactFails(t *testing.T) {
	sug := openSuggestion(5, "m5")
	store := newFakeStore(sug)

	msgr := newFakeMessenger()
	msgr.clearErr = errors.New("message deleted")

	updated, err := newTestStatusManager(store, msgr).Apply(5, model.DecisionImplemented, "shipped", "Admin")

	// The record keeps its new status even though the message side failed.
	assert.ErrorIs(t, err, ErrArtifact)
	require.NotNil(t, updated)
	assert.Equal(t, model.DecisionImplemented, store.suggestions[5].Status.Decision)
}

func TestApplyStoreFailure(t *testing.T) {
	sug := openSuggestion(5, "m5")
	store := newFakeStore(sug)
	store.statusErr = errors.New("disk full")
	msgr := newFakeMessenger()

	_, err := newTestStatusManager(store, msgr).Apply(5, model.DecisionImplemented, "", "Admin")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Empty(t, msgr.cleared)
}
