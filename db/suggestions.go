package db

import (
	"database/sql"
	"time"

	"github.com/DrunkMunki/Suggester/model"
)

const suggestionColumns = `
	id, author_id, kind,
	COALESCE(game_name, '') as game_name,
	COALESCE(map_name, '') as map_name,
	COALESCE(suggestion, '') as suggestion,
	COALESCE(reason, '') as reason,
	COALESCE(title, '') as title,
	COALESCE(detail, '') as detail,
	status, notes, submitted_at, upvotes, downvotes,
	COALESCE(message_id, '') as message_id`

// rowScanner is an interface that can be satisfied by *sql.Row or *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanSuggestion scans a row into a Suggestion struct.
func scanSuggestion(scanner rowScanner) (*model.Suggestion, error) {
	var (
		sug            model.Suggestion
		kind           string
		decision, note sql.NullString
	)
	err := scanner.Scan(
		&sug.ID, &sug.AuthorID, &kind,
		&sug.GameName, &sug.MapName, &sug.Suggestion, &sug.Reason,
		&sug.Title, &sug.Detail,
		&decision, &note, &sug.SubmittedAt, &sug.Upvotes, &sug.Downvotes,
		&sug.MessageID,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Return nil, nil if no suggestion is found
		}
		return nil, err
	}

	sug.Kind = model.Kind(kind)
	if decision.Valid {
		sug.Status = model.Closed(model.Decision(decision.String), note.String)
	}
	return &sug, nil
}

// InsertSuggestion stores a new suggestion and returns its assigned ID. The
// caller-provided record's ID, tallies, status and message ID are ignored;
// a new record always starts open with zero votes and no posted message.
func InsertSuggestion(sug *model.Suggestion) (int64, error) {
	tx, err := DB.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback() // Rollback on error

	id, err := getNextSuggestionID(tx)
	if err != nil {
		return 0, err
	}

	if sug.SubmittedAt == 0 {
		sug.SubmittedAt = time.Now().Unix()
	}

	_, err = tx.Exec(`INSERT INTO suggestions(
		id, author_id, kind, game_name, map_name, suggestion, reason, title, detail, submitted_at
	) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, sug.AuthorID, string(sug.Kind),
		sug.GameName, sug.MapName, sug.Suggestion, sug.Reason,
		sug.Title, sug.Detail, sug.SubmittedAt,
	)
	if err != nil {
		return 0, err
	}

	return id, tx.Commit()
}

// GetSuggestion retrieves a suggestion by its ID.
func GetSuggestion(id int64) (*model.Suggestion, error) {
	row := DB.QueryRow("SELECT"+suggestionColumns+" FROM suggestions WHERE id = ?", id)
	return scanSuggestion(row)
}

// GetSuggestionByMessageID retrieves a suggestion by its posted message ID.
func GetSuggestionByMessageID(messageID string) (*model.Suggestion, error) {
	row := DB.QueryRow("SELECT"+suggestionColumns+" FROM suggestions WHERE message_id = ?", messageID)
	return scanSuggestion(row)
}

// UpdateVoteCounts overwrites the cached tallies for a suggestion.
func UpdateVoteCounts(id int64, upvotes, downvotes int) error {
	_, err := DB.Exec("UPDATE suggestions SET upvotes = ?, downvotes = ? WHERE id = ?", upvotes, downvotes, id)
	return err
}

// UpdateStatus overwrites the status and notes of a suggestion. An open
// status stores NULL for both columns.
func UpdateStatus(id int64, status model.Status) error {
	var decision, notes interface{}
	if !status.Open() {
		decision = string(status.Decision)
		notes = status.Notes
	}
	_, err := DB.Exec("UPDATE suggestions SET status = ?, notes = ? WHERE id = ?", decision, notes, id)
	return err
}

// SetMessageID records the posted message for a suggestion. Set once after
// the initial post succeeds; status and tally updates edit that message in
// place and never change this reference.
func SetMessageID(id int64, messageID string) error {
	_, err := DB.Exec("UPDATE suggestions SET message_id = ? WHERE id = ?", messageID, id)
	return err
}
