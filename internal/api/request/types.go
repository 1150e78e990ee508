package request

// AddPlayerRequest is the request body for adding a roster player
type AddPlayerRequest struct {
	Name   string `json:"name"`
	Jersey int    `json:"jersey"`
}

// UpdatePlayerRequest is the request body for updating a roster player
type UpdatePlayerRequest struct {
	Name   string `json:"name"`
	Jersey int    `json:"jersey"`
}

// StartSessionRequest is the request body for starting a game session
type StartSessionRequest struct {
	Date          string   `json:"date"`
	Opponent      string   `json:"opponent"`
	CoachName     string   `json:"coach_name"`
	ActivePlayers []string `json:"active_players"`
}

// RecordPlayRequest is the request body for recording a play
type RecordPlayRequest struct {
	Type    string   `json:"type"`
	Players []string `json:"players"`
}
