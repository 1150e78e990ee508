package summary

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/silverspringsaints/playtracker/internal/model"
	"github.com/silverspringsaints/playtracker/internal/services/threshold"
)

// UnknownPlayerName marks rows whose player id is no longer in the roster
const UnknownPlayerName = "Unknown"

// Row is one player's line in a game summary
type Row struct {
	PlayerID     model.PlayerID `json:"playerId"`
	Jersey       int            `json:"jersey"`
	Name         string         `json:"name"`
	TotalPlays   int            `json:"totalPlays"`
	Offense      int            `json:"offense"`
	Defense      int            `json:"defense"`
	SpecialTeams int            `json:"specialTeams"`
	UnderMinimum bool           `json:"underMinimum"`
}

// GameInfo is the game metadata block of a summary
type GameInfo struct {
	Date            string    `json:"date"`
	Opponent        string    `json:"opponent"`
	Coach           string    `json:"coach"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	TotalPlays      int       `json:"totalPlays"`
	DurationMinutes int       `json:"durationMinutes"`
}

// Summary is the export artifact for a finalized session
type Summary struct {
	GameInfo    GameInfo `json:"gameInfo"`
	PlayerStats []Row    `json:"playerStats"`
}

// Project joins a finalized session's stats to the roster and produces
// ranked per-player rows: descending by total plays, ties broken ascending
// by jersey number. It is a pure projection; identical inputs yield
// identical output, and roster mutation after the game only downgrades rows
// to the Unknown identity.
func Project(session *model.Session, roster []*model.Player) (*Summary, error) {
	if !session.IsFinalized() || session.FinalStats == nil {
		return nil, model.ErrNotFinalized
	}

	byID := make(map[model.PlayerID]*model.Player, len(roster))
	for _, player := range roster {
		byID[player.ID] = player
	}

	rows := make([]Row, 0, len(session.FinalStats))
	for id, counters := range session.FinalStats {
		row := Row{
			PlayerID:     id,
			Name:         UnknownPlayerName,
			TotalPlays:   counters.Total,
			Offense:      counters.Offense,
			Defense:      counters.Defense,
			SpecialTeams: counters.Special,
			UnderMinimum: counters.Total < threshold.MinimumPlays,
		}
		if player, ok := byID[id]; ok {
			row.Name = player.Name
			row.Jersey = player.Jersey
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalPlays != rows[j].TotalPlays {
			return rows[i].TotalPlays > rows[j].TotalPlays
		}
		if rows[i].Jersey != rows[j].Jersey {
			return rows[i].Jersey < rows[j].Jersey
		}
		return rows[i].PlayerID < rows[j].PlayerID
	})

	return &Summary{
		GameInfo: GameInfo{
			Date:            session.Date,
			Opponent:        session.Opponent,
			Coach:           session.CoachName,
			StartTime:       session.StartTime,
			EndTime:         *session.EndTime,
			TotalPlays:      len(session.Plays),
			DurationMinutes: int(session.EndTime.Sub(session.StartTime).Round(time.Minute) / time.Minute),
		},
		PlayerStats: rows,
	}, nil
}

// UnderMinimumRows returns the subset of rows flagged under the minimum,
// preserving summary order
func (s *Summary) UnderMinimumRows() []Row {
	var under []Row
	for _, row := range s.PlayerStats {
		if row.UnderMinimum {
			under = append(under, row)
		}
	}
	return under
}

// Export renders the summary as a JSON document
func Export(s *Summary) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// ExportFilename derives a deterministic filename from opponent and date so
// repeated exports of the same game are unambiguous
func ExportFilename(opponent, date string) string {
	slug := strings.ToLower(strings.TrimSpace(opponent))
	slug = strings.Join(strings.Fields(slug), "-")
	return fmt.Sprintf("playtracker-game-%s-%s.json", slug, date)
}
