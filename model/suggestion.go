package model

// Kind determines which content fields of a suggestion are populated.
type Kind string

const (
	KindGame      Kind = "game"
	KindCommunity Kind = "community"
)

// ParseKind validates a kind value coming from a command option or customID.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindGame, KindCommunity:
		return Kind(s), true
	}
	return "", false
}

// Decision is an admin-assigned closing status for a suggestion.
type Decision string

const (
	DecisionUnderConsideration Decision = "under_consideration"
	DecisionImplemented        Decision = "implemented"
	DecisionNotHappening       Decision = "not_happening"
)

// ParseDecision validates a decision value coming from a command option.
func ParseDecision(s string) (Decision, bool) {
	switch Decision(s) {
	case DecisionUnderConsideration, DecisionImplemented, DecisionNotHappening:
		return Decision(s), true
	}
	return "", false
}

// Label returns the human-readable form shown in the public embed.
func (d Decision) Label() string {
	switch d {
	case DecisionUnderConsideration:
		return "Under Consideration"
	case DecisionImplemented:
		return "Implemented"
	case DecisionNotHappening:
		return "Not Happening"
	}
	return string(d)
}

// Status is the moderation state of a suggestion: open, or closed with a
// decision and admin notes. The zero value is open.
type Status struct {
	Decision Decision
	Notes    string
}

// Open reports whether voting is still permitted.
func (s Status) Open() bool {
	return s.Decision == ""
}

// Closed builds the closed state for a decision.
func Closed(d Decision, notes string) Status {
	return Status{Decision: d, Notes: notes}
}

// Suggestion represents a suggestion record from the suggestions table.
// Upvotes and Downvotes cache the last tally derived from the live reaction
// snapshot; they are not authoritative on their own.
type Suggestion struct {
	ID          int64
	AuthorID    string
	Kind        Kind
	GameName    string
	MapName     string
	Suggestion  string
	Reason      string
	Title       string
	Detail      string
	Status      Status
	SubmittedAt int64
	Upvotes     int
	Downvotes   int
	MessageID   string
}

// PanelState tracks the single live intake panel message for a channel.
type PanelState struct {
	ChannelID string
	MessageID string
}
