package summary

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silverspringsaints/playtracker/internal/model"
)

func finalizedSession(totals map[model.PlayerID]int) *model.Session {
	start := time.Date(2025, 9, 6, 9, 0, 0, 0, time.UTC)
	end := start.Add(95 * time.Minute)

	stats := make(map[model.PlayerID]model.PlayerCounters, len(totals))
	active := make([]model.PlayerID, 0, len(totals))
	playCount := 0
	for id, total := range totals {
		stats[id] = model.PlayerCounters{Total: total, Offense: total}
		active = append(active, id)
		if total > playCount {
			playCount = total
		}
	}

	plays := make([]model.PlayRecord, playCount)
	for i := range plays {
		plays[i] = model.PlayRecord{ID: model.PlayID(i + 1), Type: model.PlayTypeOffense, Players: active}
	}

	return &model.Session{
		ID:            "GAME12345678",
		Date:          "2025-09-06",
		Opponent:      "Eagles",
		CoachName:     "Coach Taylor",
		ActivePlayers: active,
		Plays:         plays,
		StartTime:     start,
		EndTime:       &end,
		FinalStats:    stats,
	}
}

func roster() []*model.Player {
	return []*model.Player{
		{ID: "p1", Name: "Alice", Jersey: 1},
		{ID: "p2", Name: "Bob", Jersey: 3},
		{ID: "p3", Name: "Cara", Jersey: 9},
	}
}

func TestProjectFailsForUnfinalizedSession(t *testing.T) {
	session := finalizedSession(map[model.PlayerID]int{"p1": 5})
	session.EndTime = nil
	session.FinalStats = nil

	_, err := Project(session, roster())
	assert.ErrorIs(t, err, model.ErrNotFinalized)
}

func TestProjectGameInfo(t *testing.T) {
	session := finalizedSession(map[model.PlayerID]int{"p1": 5})

	summary, err := Project(session, roster())
	require.NoError(t, err)

	assert.Equal(t, "2025-09-06", summary.GameInfo.Date)
	assert.Equal(t, "Eagles", summary.GameInfo.Opponent)
	assert.Equal(t, "Coach Taylor", summary.GameInfo.Coach)
	assert.Equal(t, 5, summary.GameInfo.TotalPlays)
	assert.Equal(t, 95, summary.GameInfo.DurationMinutes)
}

func TestProjectRanksByTotalThenJersey(t *testing.T) {
	// Equal totals tie-break ascending by jersey number
	session := finalizedSession(map[model.PlayerID]int{"p1": 10, "p2": 10, "p3": 5})

	summary, err := Project(session, roster())
	require.NoError(t, err)

	require.Len(t, summary.PlayerStats, 3)
	assert.Equal(t, model.PlayerID("p1"), summary.PlayerStats[0].PlayerID)
	assert.Equal(t, model.PlayerID("p2"), summary.PlayerStats[1].PlayerID)
	assert.Equal(t, model.PlayerID("p3"), summary.PlayerStats[2].PlayerID)
}

func TestProjectFlagsUnderMinimum(t *testing.T) {
	session := finalizedSession(map[model.PlayerID]int{"p1": 8, "p2": 7, "p3": 0})

	summary, err := Project(session, roster())
	require.NoError(t, err)

	assert.False(t, summary.PlayerStats[0].UnderMinimum)
	assert.True(t, summary.PlayerStats[1].UnderMinimum)
	assert.True(t, summary.PlayerStats[2].UnderMinimum)

	under := summary.UnderMinimumRows()
	require.Len(t, under, 2)
	assert.Equal(t, model.PlayerID("p2"), under[0].PlayerID)
	assert.Equal(t, model.PlayerID("p3"), under[1].PlayerID)
}

func TestProjectRemovedPlayerGetsUnknownIdentity(t *testing.T) {
	session := finalizedSession(map[model.PlayerID]int{"p1": 9, "p2": 4})
	// p2 was removed from the roster after the game
	rosterWithoutP2 := []*model.Player{
		{ID: "p1", Name: "Alice", Jersey: 1},
	}

	summary, err := Project(session, rosterWithoutP2)
	require.NoError(t, err)

	require.Len(t, summary.PlayerStats, 2)
	assert.Equal(t, "Alice", summary.PlayerStats[0].Name)
	assert.Equal(t, UnknownPlayerName, summary.PlayerStats[1].Name)
	assert.Equal(t, 0, summary.PlayerStats[1].Jersey)
	assert.Equal(t, 4, summary.PlayerStats[1].TotalPlays)
}

func TestProjectIsDeterministic(t *testing.T) {
	session := finalizedSession(map[model.PlayerID]int{"p1": 10, "p2": 10, "p3": 5})

	first, err := Project(session, roster())
	require.NoError(t, err)
	second, err := Project(session, roster())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExportProducesStableJSON(t *testing.T) {
	session := finalizedSession(map[model.PlayerID]int{"p1": 9})

	summary, err := Project(session, roster())
	require.NoError(t, err)

	data, err := Export(summary)
	require.NoError(t, err)

	var decoded Summary
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *summary, decoded)
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "playtracker-game-eagles-2025-09-06.json", ExportFilename("Eagles", "2025-09-06"))
	assert.Equal(t, "playtracker-game-north-valley-hawks-2025-09-13.json", ExportFilename("  North Valley  Hawks ", "2025-09-13"))
}
