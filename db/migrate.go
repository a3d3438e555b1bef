package db

import "go.uber.org/zap"

// createTables creates the necessary tables in the database if they don't exist.
func createTables() {
	createSuggestionsTableSQL := `
	CREATE TABLE IF NOT EXISTS suggestions (
		id INTEGER PRIMARY KEY,
		author_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		game_name TEXT,
		map_name TEXT,
		suggestion TEXT,
		reason TEXT,
		title TEXT,
		detail TEXT,
		status TEXT,
		notes TEXT,
		submitted_at INTEGER NOT NULL,
		upvotes INTEGER NOT NULL DEFAULT 0,
		downvotes INTEGER NOT NULL DEFAULT 0,
		message_id TEXT
	);`

	_, err := DB.Exec(createSuggestionsTableSQL)
	if err != nil {
		zap.S().Fatalw("failed to create suggestions table", "error", err)
	}

	// Secondary lookup used by the reaction handlers.
	_, err = DB.Exec("CREATE INDEX IF NOT EXISTS idx_suggestions_message_id ON suggestions(message_id)")
	if err != nil {
		zap.S().Fatalw("failed to create message_id index", "error", err)
	}

	// One live intake panel message per channel.
	createChannelPanelsTableSQL := `
	CREATE TABLE IF NOT EXISTS channel_panels (
		channel_id TEXT PRIMARY KEY,
		message_id TEXT NOT NULL
	);`

	_, err = DB.Exec(createChannelPanelsTableSQL)
	if err != nil {
		zap.S().Fatalw("failed to create channel_panels table", "error", err)
	}

	// Counter table for sequential suggestion ID generation.
	createIdCounterTableSQL := `
	CREATE TABLE IF NOT EXISTS id_counter (
		counter_name TEXT PRIMARY KEY,
		current_value INTEGER NOT NULL DEFAULT 0
	);`

	_, err = DB.Exec(createIdCounterTableSQL)
	if err != nil {
		zap.S().Fatalw("failed to create id_counter table", "error", err)
	}

	_, err = DB.Exec("INSERT OR IGNORE INTO id_counter(counter_name, current_value) VALUES('suggestion_id', 0)")
	if err != nil {
		zap.S().Fatalw("failed to initialize suggestion counter", "error", err)
	}
}
