package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printPlayers(v)
	case SessionState:
		o.printSessionState(v)
	case RecordResult:
		o.printRecordResult(v)
	case []SessionRef:
		o.printSessionRefs(v)
	case SummaryResult:
		o.printSummary(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Jersey int    `json:"jersey"`
}

// Counters response type
type Counters struct {
	Total   int `json:"total"`
	Offense int `json:"offense"`
	Defense int `json:"defense"`
	Special int `json:"special"`
}

// SessionState response type
type SessionState struct {
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

// Event response type
type Event struct {
	Type     string `json:"type"`
	PlayerID string `json:"player_id,omitempty"`
	Total    int    `json:"total,omitempty"`
	PlayID   int64  `json:"play_id"`
}

// RecordResult response type
type RecordResult struct {
	Session SessionState `json:"session"`
	Events  []Event      `json:"events"`
}

// SessionRef response type
type SessionRef struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	Opponent   string `json:"opponent"`
	TotalPlays int    `json:"total_plays"`
}

// SummaryRow response type
type SummaryRow struct {
	PlayerID     string `json:"playerId"`
	Jersey       int    `json:"jersey"`
	Name         string `json:"name"`
	TotalPlays   int    `json:"totalPlays"`
	Offense      int    `json:"offense"`
	Defense      int    `json:"defense"`
	SpecialTeams int    `json:"specialTeams"`
	UnderMinimum bool   `json:"underMinimum"`
}

// SummaryGameInfo response type
type SummaryGameInfo struct {
	Date            string    `json:"date"`
	Opponent        string    `json:"opponent"`
	Coach           string    `json:"coach"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	TotalPlays      int       `json:"totalPlays"`
	DurationMinutes int       `json:"durationMinutes"`
}

// SummaryResult response type
type SummaryResult struct {
	GameInfo    SummaryGameInfo `json:"gameInfo"`
	PlayerStats []SummaryRow    `json:"playerStats"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("#%d %s (%s)\n", p.Jersey, p.Name, p.ID)
}

func (o *Output) printPlayers(players []Player) {
	fmt.Printf("Roster (%d):\n", len(players))
	for _, p := range players {
		fmt.Printf("  #%-3d %s (%s)\n", p.Jersey, p.Name, p.ID)
	}
}

func (o *Output) printSessionState(s SessionState) {
	fmt.Printf("Game: %s\n", s.ID)
	fmt.Printf("Date: %s\n", s.Date)
	fmt.Printf("Opponent: %s\n", s.Opponent)
	fmt.Printf("Coach: %s\n", s.CoachName)
	if s.EndTime != nil {
		fmt.Println("Status: final")
	} else {
		fmt.Println("Status: in progress")
	}
	fmt.Printf("Plays: %d\n", s.TotalPlays)

	ids := make([]string, 0, len(s.Stats))
	for id := range s.Stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("Players (%d):\n", len(ids))
	for _, id := range ids {
		c := s.Stats[id]
		fmt.Printf("  %s: %d plays (O:%d D:%d S:%d)\n", id, c.Total, c.Offense, c.Defense, c.Special)
	}

	if len(s.UnderMinimum) > 0 {
		fmt.Printf("Under minimum: %s\n", strings.Join(s.UnderMinimum, ", "))
	}
}

func (o *Output) printRecordResult(r RecordResult) {
	fmt.Printf("Play %d recorded\n", r.Session.TotalPlays)
	for _, e := range r.Events {
		switch e.Type {
		case "player_reached_minimum":
			fmt.Printf("  %s reached %d plays\n", e.PlayerID, e.Total)
		case "all_players_reached_minimum":
			fmt.Println("  all players have reached the minimum")
		default:
			fmt.Printf("  %s\n", e.Type)
		}
	}

	if len(r.Session.UnderMinimum) > 0 {
		fmt.Printf("Still under minimum: %s\n", strings.Join(r.Session.UnderMinimum, ", "))
	}
}

func (o *Output) printSessionRefs(refs []SessionRef) {
	fmt.Printf("Completed games (%d):\n", len(refs))
	for _, ref := range refs {
		fmt.Printf("  %s  %s vs %s (%d plays)\n", ref.ID, ref.Date, ref.Opponent, ref.TotalPlays)
	}
}

func (o *Output) printSummary(s SummaryResult) {
	fmt.Printf("Game vs %s on %s\n", s.GameInfo.Opponent, s.GameInfo.Date)
	fmt.Printf("Coach: %s\n", s.GameInfo.Coach)
	fmt.Printf("Plays: %d, Duration: %d minutes\n", s.GameInfo.TotalPlays, s.GameInfo.DurationMinutes)
	fmt.Println()
	fmt.Printf("%-4s %-20s %6s %8s %8s %8s\n", "No.", "Name", "Total", "Offense", "Defense", "Special")
	for _, row := range s.PlayerStats {
		marker := ""
		if row.UnderMinimum {
			marker = " *"
		}
		fmt.Printf("%-4d %-20s %6d %8d %8d %8d%s\n",
			row.Jersey, row.Name, row.TotalPlays, row.Offense, row.Defense, row.SpecialTeams, marker)
	}
	fmt.Println("\n* under minimum plays")
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
