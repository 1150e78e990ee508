package response

import (
	"time"

	"github.com/silverspringsaints/playtracker/internal/model"
	"github.com/silverspringsaints/playtracker/internal/services/threshold"
)

// Player represents a roster player in API responses
type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Jersey int    `json:"jersey"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:     string(p.ID),
		Name:   p.Name,
		Jersey: p.Jersey,
	}
}

// PlayersFromModel converts a slice of model players
func PlayersFromModel(players []*model.Player) []Player {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = PlayerFromModel(p)
	}
	return out
}

// Counters represents per-player participation totals
type Counters struct {
	Total   int `json:"total"`
	Offense int `json:"offense"`
	Defense int `json:"defense"`
	Special int `json:"special"`
}

// Play represents one recorded play
type Play struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Players   []string  `json:"players"`
	Timestamp time.Time `json:"timestamp"`
}

// Session represents a game session with its derived live stats
type Session struct {
	ID            string              `json:"id"`
	Date          string              `json:"date"`
	Opponent      string              `json:"opponent"`
	CoachName     string              `json:"coach_name"`
	ActivePlayers []string            `json:"active_players"`
	StartTime     time.Time           `json:"start_time"`
	EndTime       *time.Time          `json:"end_time,omitempty"`
	TotalPlays    int                 `json:"total_plays"`
	Stats         map[string]Counters `json:"stats"`
	UnderMinimum  []string            `json:"under_minimum"`
}

// SessionFromModel converts a model.Session, deriving the stats from the
// play log (or taking the final snapshot for finalized sessions)
func SessionFromModel(s *model.Session) Session {
	stats := s.FinalStats
	if stats == nil {
		stats = s.ComputeStats()
	}

	out := Session{
		ID:            string(s.ID),
		Date:          s.Date,
		Opponent:      s.Opponent,
		CoachName:     s.CoachName,
		ActivePlayers: make([]string, len(s.ActivePlayers)),
		StartTime:     s.StartTime,
		EndTime:       s.EndTime,
		TotalPlays:    len(s.Plays),
		Stats:         make(map[string]Counters, len(stats)),
		UnderMinimum:  []string{},
	}
	for i, id := range s.ActivePlayers {
		out.ActivePlayers[i] = string(id)
	}
	for id, c := range stats {
		out.Stats[string(id)] = Counters{
			Total:   c.Total,
			Offense: c.Offense,
			Defense: c.Defense,
			Special: c.Special,
		}
	}
	for _, id := range threshold.UnderMinimum(stats, s.ActivePlayers) {
		out.UnderMinimum = append(out.UnderMinimum, string(id))
	}
	return out
}

// Event represents a milestone event fired by a recorded play
type Event struct {
	Type     string `json:"type"`
	PlayerID string `json:"player_id,omitempty"`
	Total    int    `json:"total,omitempty"`
	PlayID   int64  `json:"play_id"`
}

// EventsFromModel converts milestone events
func EventsFromModel(events []model.Event) []Event {
	out := make([]Event, len(events))
	for i, e := range events {
		out[i] = Event{
			Type:     string(e.Type),
			PlayerID: string(e.PlayerID),
			Total:    e.Total,
			PlayID:   int64(e.PlayID),
		}
	}
	return out
}

// RecordPlayResponse is returned after a successful play recording
type RecordPlayResponse struct {
	Session Session `json:"session"`
	Events  []Event `json:"events"`
}

// SessionRef is a lightweight archived-session listing entry
type SessionRef struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	Opponent   string `json:"opponent"`
	TotalPlays int    `json:"total_plays"`
}

// SessionRefsFromModel converts archived sessions to listing entries
func SessionRefsFromModel(sessions []*model.Session) []SessionRef {
	out := make([]SessionRef, len(sessions))
	for i, s := range sessions {
		out[i] = SessionRef{
			ID:         string(s.ID),
			Date:       s.Date,
			Opponent:   s.Opponent,
			TotalPlays: len(s.Plays),
		}
	}
	return out
}
