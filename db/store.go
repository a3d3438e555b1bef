package db

import "github.com/DrunkMunki/Suggester/model"

// SuggestionStore adapts the package-level query functions to the store
// interface the vote package consumes.
type SuggestionStore struct{}

func (SuggestionStore) SuggestionByID(id int64) (*model.Suggestion, error) {
	return GetSuggestion(id)
}

func (SuggestionStore) SuggestionByMessageID(messageID string) (*model.Suggestion, error) {
	return GetSuggestionByMessageID(messageID)
}

func (SuggestionStore) UpdateVoteCounts(id int64, upvotes, downvotes int) error {
	return UpdateVoteCounts(id, upvotes, downvotes)
}

func (SuggestionStore) UpdateStatus(id int64, status model.Status) error {
	return UpdateStatus(id, status)
}
