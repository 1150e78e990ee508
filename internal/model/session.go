package model

import (
	"fmt"
	"time"
)

// SessionID uniquely identifies a game session
type SessionID string

// PlayType classifies a recorded play
type PlayType string

const (
	PlayTypeOffense PlayType = "offense"
	PlayTypeDefense PlayType = "defense"
	PlayTypeSpecial PlayType = "special"
)

// Valid reports whether t is one of the three play types
func (t PlayType) Valid() bool {
	switch t {
	case PlayTypeOffense, PlayTypeDefense, PlayTypeSpecial:
		return true
	}
	return false
}

// PlayID identifies a play within its session. IDs are a 1-based monotonic
// sequence in log order.
type PlayID int64

// PlayRecord is one recorded unit of participation. Immutable once appended
// to a session's play log.
type PlayRecord struct {
	ID        PlayID     `json:"id"`
	Type      PlayType   `json:"type"`
	Players   []PlayerID `json:"players"`
	Timestamp time.Time  `json:"timestamp"`
}

// PlayerCounters holds per-player participation totals. Counters are derived
// state: they must always equal a fold over the owning session's play log.
type PlayerCounters struct {
	Total   int `json:"total"`
	Offense int `json:"offense"`
	Defense int `json:"defense"`
	Special int `json:"special"`
}

// Session is one game's tracked data from setup to finalization.
//
// The JSON shape of this struct is the persisted current-session and archive
// record contract: any external tool can recompute FinalStats by replaying
// Plays.
type Session struct {
	ID            SessionID                  `json:"id"`
	Date          string                     `json:"date"` // YYYY-MM-DD
	Opponent      string                     `json:"opponent"`
	CoachName     string                     `json:"coachName"`
	ActivePlayers []PlayerID                 `json:"activePlayers"`
	Plays         []PlayRecord               `json:"plays"`
	StartTime     time.Time                  `json:"startTime"`
	EndTime       *time.Time                 `json:"endTime,omitempty"`
	FinalStats    map[PlayerID]PlayerCounters `json:"finalStats,omitempty"`
}

// IsFinalized reports whether the session has been ended and sealed
func (s *Session) IsFinalized() bool {
	return s.EndTime != nil
}

// HasActivePlayer reports whether id was selected as active at setup
func (s *Session) HasActivePlayer(id PlayerID) bool {
	for _, p := range s.ActivePlayers {
		if p == id {
			return true
		}
	}
	return false
}

// NextPlayID returns the ID the next appended play must carry
func (s *Session) NextPlayID() PlayID {
	return PlayID(len(s.Plays) + 1)
}

// ComputeStats folds the play log into per-player counters. Every active
// player gets an entry, including players with zero plays. The play log is
// the single source of truth; counters are never maintained independently.
func (s *Session) ComputeStats() map[PlayerID]PlayerCounters {
	stats := make(map[PlayerID]PlayerCounters, len(s.ActivePlayers))
	for _, id := range s.ActivePlayers {
		stats[id] = PlayerCounters{}
	}
	for _, play := range s.Plays {
		for _, id := range play.Players {
			c := stats[id]
			c.Total++
			switch play.Type {
			case PlayTypeOffense:
				c.Offense++
			case PlayTypeDefense:
				c.Defense++
			case PlayTypeSpecial:
				c.Special++
			}
			stats[id] = c
		}
	}
	return stats
}

// Clone returns a deep copy of the session
func (s *Session) Clone() *Session {
	c := *s
	c.ActivePlayers = append([]PlayerID(nil), s.ActivePlayers...)
	c.Plays = make([]PlayRecord, len(s.Plays))
	for i, play := range s.Plays {
		play.Players = append([]PlayerID(nil), play.Players...)
		c.Plays[i] = play
	}
	if s.EndTime != nil {
		end := *s.EndTime
		c.EndTime = &end
	}
	if s.FinalStats != nil {
		c.FinalStats = make(map[PlayerID]PlayerCounters, len(s.FinalStats))
		for id, counters := range s.FinalStats {
			c.FinalStats[id] = counters
		}
	}
	return &c
}

// Validate checks the structural invariants a persisted session record must
// satisfy to be resumable. Any violation means the record cannot be trusted
// and must be discarded rather than repaired.
func (s *Session) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("%w: missing session id", ErrCorruptSession)
	}
	if len(s.ActivePlayers) == 0 {
		return fmt.Errorf("%w: empty active player set", ErrCorruptSession)
	}
	seen := make(map[PlayerID]bool, len(s.ActivePlayers))
	for _, id := range s.ActivePlayers {
		if id == "" {
			return fmt.Errorf("%w: empty active player id", ErrCorruptSession)
		}
		if seen[id] {
			return fmt.Errorf("%w: duplicate active player %q", ErrCorruptSession, id)
		}
		seen[id] = true
	}
	for i, play := range s.Plays {
		if play.ID != PlayID(i+1) {
			return fmt.Errorf("%w: play id %d at position %d", ErrCorruptSession, play.ID, i)
		}
		if !play.Type.Valid() {
			return fmt.Errorf("%w: play %d has invalid type %q", ErrCorruptSession, play.ID, play.Type)
		}
		if len(play.Players) == 0 {
			return fmt.Errorf("%w: play %d has no participants", ErrCorruptSession, play.ID)
		}
		for _, id := range play.Players {
			if !seen[id] {
				return fmt.Errorf("%w: play %d references inactive player %q", ErrCorruptSession, play.ID, id)
			}
		}
	}
	if s.IsFinalized() && s.FinalStats == nil {
		return fmt.Errorf("%w: finalized session missing final stats", ErrCorruptSession)
	}
	return nil
}
