package vote

import (
	"fmt"
	"time"

	"github.com/DrunkMunki/Suggester/model"

	"go.uber.org/zap"
)

// noteTimeLayout matches the long-form stamp the admin note carries, e.g.
// "Mon, 02 Jan 2006, 3:04:05 pm AEST".
const noteTimeLayout = "Mon, 02 Jan 2006, 3:04:05 pm MST"

// StatusManager applies admin decisions to a suggestion and reconciles the
// posted message's reaction affordances with the new state: closing clears
// all reactions, reopening restores the two vote emojis.
type StatusManager struct {
	store  Store
	msgr   Messenger
	emojis model.VoteEmojis
	selfID string
	loc    *time.Location
	logger *zap.SugaredLogger
}

// NewStatusManager builds a status manager. loc is the timezone admin notes
// are stamped in.
func NewStatusManager(store Store, msgr Messenger, emojis model.VoteEmojis, selfID string, loc *time.Location, logger *zap.SugaredLogger) *StatusManager {
	return &StatusManager{
		store:  store,
		msgr:   msgr,
		emojis: emojis,
		selfID: selfID,
		loc:    loc,
		logger: logger,
	}
}

// Apply closes a suggestion with a decision, or re-closes it with a different
// one. notes is stamped with the current time and the acting admin's name and
// overwrites any prior notes. Returns ErrNotFound for an unknown id. A
// wrapped ErrArtifact means the record was updated but the public message
// could not be fully reconciled.
func (m *StatusManager) Apply(id int64, decision model.Decision, notes, actor string) (*model.Suggestion, error) {
	sug, err := m.store.SuggestionByID(id)
	if err != nil {
		return nil, fmt.Errorf("fetching suggestion %d: %w", id, err)
	}
	if sug == nil {
		return nil, ErrNotFound
	}

	stamped := fmt.Sprintf("%s\n%s response:\n%s", time.Now().In(m.loc).Format(noteTimeLayout), actor, notes)
	status := model.Closed(decision, stamped)

	if err := m.store.UpdateStatus(id, status); err != nil {
		return nil, fmt.Errorf("updating suggestion %d: %w", id, err)
	}
	sug.Status = status

	// Record and message updates are not transactional: a failure past this
	// point leaves the new status in place.
	if err := m.msgr.ClearReactions(sug.MessageID); err != nil {
		m.logger.Errorw("failed to clear reactions on closed suggestion", "suggestion_id", id, "error", err)
		return sug, fmt.Errorf("%w: %v", ErrArtifact, err)
	}

	if err := m.msgr.UpdateMessage(sug); err != nil {
		m.logger.Errorw("failed to refresh closed suggestion message", "suggestion_id", id, "error", err)
		return sug, fmt.Errorf("%w: %v", ErrArtifact, err)
	}

	return sug, nil
}

// Clear reopens a closed suggestion: decision and notes reset, and both vote
// emojis are restored on the message so voting resumes. Safe to call on an
// already-open suggestion.
func (m *StatusManager) Clear(id int64) (*model.Suggestion, error) {
	sug, err := m.store.SuggestionByID(id)
	if err != nil {
		return nil, fmt.Errorf("fetching suggestion %d: %w", id, err)
	}
	if sug == nil {
		return nil, ErrNotFound
	}

	if err := m.store.UpdateStatus(id, model.Status{}); err != nil {
		return nil, fmt.Errorf("updating suggestion %d: %w", id, err)
	}
	sug.Status = model.Status{}

	var artifactErr error
	for _, emoji := range []model.VoteEmoji{m.emojis.Up, m.emojis.Down} {
		if err := m.ensureReaction(sug.MessageID, emoji); err != nil {
			m.logger.Errorw("failed to restore vote reaction",
				"suggestion_id", id, "emoji", emoji.APIName(), "error", err)
			artifactErr = err
		}
	}

	if err := m.msgr.UpdateMessage(sug); err != nil {
		m.logger.Errorw("failed to refresh reopened suggestion message", "suggestion_id", id, "error", err)
		artifactErr = err
	}

	if artifactErr != nil {
		return sug, fmt.Errorf("%w: %v", ErrArtifact, artifactErr)
	}
	return sug, nil
}

// ensureReaction adds the bot's reaction only if it is not already present,
// so reopening never duplicates an existing affordance.
func (m *StatusManager) ensureReaction(messageID string, emoji model.VoteEmoji) error {
	users, err := m.msgr.ReactionUsers(messageID, emoji)
	if err != nil {
		return err
	}
	for _, id := range users {
		if id == m.selfID {
			return nil
		}
	}
	return m.msgr.React(messageID, emoji)
}
