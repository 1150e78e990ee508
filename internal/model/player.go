package model

// PlayerID uniquely identifies a roster player across the system
type PlayerID string

// Jersey number bounds for roster players
const (
	MinJersey = 1
	MaxJersey = 99
)

// Player represents a roster member. Sessions reference players by ID only;
// the roster remains the owner of name and jersey number.
type Player struct {
	ID     PlayerID `json:"id"`
	Name   string   `json:"name"`
	Jersey int      `json:"jersey"`
}
