package model

import "fmt"

// VoteEmoji identifies one of the two vote reactions. Custom guild emoji carry
// an ID and are matched by it; standard emoji have an empty ID and are matched
// by name.
type VoteEmoji struct {
	Name string
	ID   string
}

// APIName returns the identifier the reaction endpoints expect.
func (e VoteEmoji) APIName() string {
	if e.ID != "" {
		return fmt.Sprintf("%s:%s", e.Name, e.ID)
	}
	return e.Name
}

// Matches reports whether a reaction event's emoji is this vote emoji.
func (e VoteEmoji) Matches(name, id string) bool {
	if e.ID != "" {
		return id == e.ID
	}
	return id == "" && name == e.Name
}

// VoteEmojis is the immutable up/down emoji pair resolved once at startup and
// passed into the reconciler and status manager.
type VoteEmojis struct {
	Up   VoteEmoji
	Down VoteEmoji
}

// DefaultVoteEmojis returns the standard thumbs pair used when no custom emoji
// are configured.
func DefaultVoteEmojis() VoteEmojis {
	return VoteEmojis{
		Up:   VoteEmoji{Name: "👍"},
		Down: VoteEmoji{Name: "👎"},
	}
}
