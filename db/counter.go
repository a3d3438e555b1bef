package db

import "database/sql"

// getNextSuggestionID retrieves the current suggestion ID within a
// transaction and increments it by one.
func getNextSuggestionID(tx *sql.Tx) (int64, error) {
	var currentID int64
	err := tx.QueryRow("SELECT current_value FROM id_counter WHERE counter_name = 'suggestion_id'").Scan(&currentID)
	if err != nil {
		return 0, err
	}

	newID := currentID + 1
	_, err = tx.Exec("UPDATE id_counter SET current_value = ? WHERE counter_name = 'suggestion_id'", newID)
	if err != nil {
		return 0, err
	}

	return newID, nil
}
