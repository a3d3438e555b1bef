package vote

import (
	"github.com/DrunkMunki/Suggester/model"

	"go.uber.org/zap"
)

// Store is the persistence surface the reconciler and status manager need.
// Lookups return (nil, nil) when no row matches.
type Store interface {
	SuggestionByID(id int64) (*model.Suggestion, error)
	SuggestionByMessageID(messageID string) (*model.Suggestion, error)
	UpdateVoteCounts(id int64, upvotes, downvotes int) error
	UpdateStatus(id int64, status model.Status) error
}

// Messenger is the messaging-platform surface for a suggestion's posted
// message. ReactionUsers returns the IDs of every user currently holding the
// given reaction, including the bot's own seed reaction.
type Messenger interface {
	ReactionUsers(messageID string, emoji model.VoteEmoji) ([]string, error)
	RemoveReaction(messageID string, emoji model.VoteEmoji, userID string) error
	ClearReactions(messageID string) error
	React(messageID string, emoji model.VoteEmoji) error
	UpdateMessage(sug *model.Suggestion) error
}

// EventType distinguishes reaction additions from removals.
type EventType int

const (
	ReactionAdded EventType = iota
	ReactionRemoved
)

// Event is a single raw reaction change on a message.
type Event struct {
	MessageID string
	UserID    string
	EmojiName string
	EmojiID   string
	Type      EventType
}

// Reconciler derives authoritative vote tallies from live reaction state.
// Tallies are recomputed from a fresh snapshot on every event rather than
// incremented, so processing is idempotent and self-corrects after missed or
// out-of-order events.
type Reconciler struct {
	store  Store
	msgr   Messenger
	emojis model.VoteEmojis
	selfID string
	logger *zap.SugaredLogger
}

// NewReconciler builds a reconciler. selfID is the bot's own user ID; its
// events and its seed reactions are never counted.
func NewReconciler(store Store, msgr Messenger, emojis model.VoteEmojis, selfID string, logger *zap.SugaredLogger) *Reconciler {
	return &Reconciler{
		store:  store,
		msgr:   msgr,
		emojis: emojis,
		selfID: selfID,
		logger: logger,
	}
}

// HandleEvent processes one reaction add/remove. It never returns an error:
// reaction events have no human caller, so failures are logged and the event
// is dropped. The next event on the same suggestion re-derives the tallies
// from scratch.
func (r *Reconciler) HandleEvent(ev Event) {
	if ev.UserID == r.selfID {
		return
	}

	emoji, down, ok := r.matchEmoji(ev.EmojiName, ev.EmojiID)
	if !ok {
		return
	}

	sug, err := r.store.SuggestionByMessageID(ev.MessageID)
	if err != nil {
		r.logger.Errorw("failed to look up suggestion for reaction", "message_id", ev.MessageID, "error", err)
		return
	}
	if sug == nil {
		return
	}

	if !sug.Status.Open() {
		// Closed suggestions take no further votes. New reactions are
		// stripped off so the frozen display stays inert; removals need no
		// compensation.
		if ev.Type == ReactionAdded {
			if err := r.msgr.RemoveReaction(ev.MessageID, emoji, ev.UserID); err != nil {
				r.logger.Warnw("failed to remove vote on closed suggestion",
					"suggestion_id", sug.ID, "user_id", ev.UserID, "error", err)
			}
		}
		return
	}

	if ev.Type == ReactionAdded {
		r.removeOppositeVote(sug, ev.UserID, down)
	}

	up, dn, err := r.countVotes(ev.MessageID)
	if err != nil {
		r.logger.Errorw("failed to count reactions", "suggestion_id", sug.ID, "error", err)
		return
	}

	if err := r.store.UpdateVoteCounts(sug.ID, up, dn); err != nil {
		r.logger.Errorw("failed to persist vote counts", "suggestion_id", sug.ID, "error", err)
		return
	}

	sug.Upvotes = up
	sug.Downvotes = dn
	if err := r.msgr.UpdateMessage(sug); err != nil {
		r.logger.Errorw("failed to refresh suggestion message", "suggestion_id", sug.ID, "error", err)
	}
}

// removeOppositeVote enforces at most one active vote per user: if the user
// currently holds the opposite reaction, it is removed. Best effort only; the
// subsequent recount reads the live snapshot either way.
func (r *Reconciler) removeOppositeVote(sug *model.Suggestion, userID string, votedDown bool) {
	opposite := r.emojis.Up
	if !votedDown {
		opposite = r.emojis.Down
	}

	users, err := r.msgr.ReactionUsers(sug.MessageID, opposite)
	if err != nil {
		r.logger.Warnw("failed to fetch opposite reaction users", "suggestion_id", sug.ID, "error", err)
		return
	}

	for _, id := range users {
		if id == userID {
			if err := r.msgr.RemoveReaction(sug.MessageID, opposite, userID); err != nil {
				r.logger.Warnw("failed to remove opposite vote",
					"suggestion_id", sug.ID, "user_id", userID, "error", err)
			}
			return
		}
	}
}

// countVotes recomputes both tallies from the live reaction snapshot. The
// bot's own seed reactions are excluded from the counts.
func (r *Reconciler) countVotes(messageID string) (up, down int, err error) {
	upUsers, err := r.msgr.ReactionUsers(messageID, r.emojis.Up)
	if err != nil {
		return 0, 0, err
	}
	downUsers, err := r.msgr.ReactionUsers(messageID, r.emojis.Down)
	if err != nil {
		return 0, 0, err
	}
	return r.countUsers(upUsers), r.countUsers(downUsers), nil
}

func (r *Reconciler) countUsers(users []string) int {
	n := 0
	for _, id := range users {
		if id != r.selfID {
			n++
		}
	}
	return n
}

// matchEmoji resolves a raw reaction emoji to one of the two vote emojis.
func (r *Reconciler) matchEmoji(name, id string) (emoji model.VoteEmoji, down, ok bool) {
	switch {
	case r.emojis.Up.Matches(name, id):
		return r.emojis.Up, false, true
	case r.emojis.Down.Matches(name, id):
		return r.emojis.Down, true, true
	}
	return model.VoteEmoji{}, false, false
}
