package model

// EventType identifies a participation milestone
type EventType string

const (
	// EventPlayerReachedMinimum fires when a single player's total transitions
	// onto the minimum play count
	EventPlayerReachedMinimum EventType = "player_reached_minimum"

	// EventAllPlayersReachedMinimum fires when the last active player reaches
	// the minimum play count
	EventAllPlayersReachedMinimum EventType = "all_players_reached_minimum"
)

// Event is an advisory milestone notification produced by recording a play.
// Events drive display only; they never feed back into counters or the play
// log. PlayID identifies the transition that fired the event so consumers
// can suppress duplicate display.
type Event struct {
	Type     EventType `json:"type"`
	PlayerID PlayerID  `json:"playerId,omitempty"` // set for individual milestones
	Total    int       `json:"total,omitempty"`
	PlayID   PlayID    `json:"playId"`
}
