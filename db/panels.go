package db

import (
	"database/sql"

	"github.com/DrunkMunki/Suggester/model"
)

// GetPanelState retrieves the tracked panel message for a channel, or nil if
// the channel has none.
func GetPanelState(channelID string) (*model.PanelState, error) {
	var state model.PanelState
	err := DB.QueryRow("SELECT channel_id, message_id FROM channel_panels WHERE channel_id = ?", channelID).
		Scan(&state.ChannelID, &state.MessageID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &state, nil
}

// SavePanelState records a channel's current panel message, replacing any
// previous one. There is at most one tracked panel per channel.
func SavePanelState(channelID, messageID string) error {
	_, err := DB.Exec(`
		INSERT INTO channel_panels (channel_id, message_id)
		VALUES (?, ?)
		ON CONFLICT(channel_id) DO UPDATE SET message_id = excluded.message_id
	`, channelID, messageID)
	return err
}

// DeletePanelState forgets a channel's tracked panel message.
func DeletePanelState(channelID string) error {
	_, err := DB.Exec("DELETE FROM channel_panels WHERE channel_id = ?", channelID)
	return err
}
