package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession() *Session {
	return &Session{
		ID:            "GAME12345678",
		Date:          "2025-09-06",
		Opponent:      "Eagles",
		CoachName:     "Coach Taylor",
		ActivePlayers: []PlayerID{"p1", "p2", "p3"},
		Plays: []PlayRecord{
			{ID: 1, Type: PlayTypeOffense, Players: []PlayerID{"p1", "p2"}, Timestamp: time.Now()},
			{ID: 2, Type: PlayTypeDefense, Players: []PlayerID{"p2"}, Timestamp: time.Now()},
			{ID: 3, Type: PlayTypeSpecial, Players: []PlayerID{"p1", "p3"}, Timestamp: time.Now()},
		},
		StartTime: time.Now(),
	}
}

func TestComputeStatsFoldsPlayLog(t *testing.T) {
	s := testSession()

	stats := s.ComputeStats()

	require.Len(t, stats, 3)
	assert.Equal(t, PlayerCounters{Total: 2, Offense: 1, Special: 1}, stats["p1"])
	assert.Equal(t, PlayerCounters{Total: 2, Offense: 1, Defense: 1}, stats["p2"])
	assert.Equal(t, PlayerCounters{Total: 1, Special: 1}, stats["p3"])
}

func TestComputeStatsIncludesZeroPlayPlayers(t *testing.T) {
	s := testSession()
	s.Plays = nil

	stats := s.ComputeStats()

	require.Len(t, stats, 3)
	for _, id := range s.ActivePlayers {
		assert.Equal(t, PlayerCounters{}, stats[id])
	}
}

func TestComputeStatsIsDeterministic(t *testing.T) {
	s := testSession()

	first := s.ComputeStats()
	second := s.ComputeStats()

	assert.Equal(t, first, second)
}

func TestNextPlayIDIsOneBasedMonotonic(t *testing.T) {
	s := testSession()
	assert.Equal(t, PlayID(4), s.NextPlayID())

	s.Plays = nil
	assert.Equal(t, PlayID(1), s.NextPlayID())
}

func TestCloneIsDeep(t *testing.T) {
	s := testSession()
	end := time.Now()
	s.EndTime = &end
	s.FinalStats = s.ComputeStats()

	c := s.Clone()
	c.ActivePlayers[0] = "other"
	c.Plays[0].Players[0] = "other"
	c.Plays = append(c.Plays, PlayRecord{ID: 4, Type: PlayTypeOffense, Players: []PlayerID{"p1"}})
	*c.EndTime = end.Add(time.Hour)
	c.FinalStats["p1"] = PlayerCounters{Total: 99}

	assert.Equal(t, PlayerID("p1"), s.ActivePlayers[0])
	assert.Equal(t, PlayerID("p1"), s.Plays[0].Players[0])
	assert.Len(t, s.Plays, 3)
	assert.Equal(t, end, *s.EndTime)
	assert.Equal(t, 2, s.FinalStats["p1"].Total)
}

func TestValidateAcceptsWellFormedSession(t *testing.T) {
	s := testSession()
	assert.NoError(t, s.Validate())
}

func TestValidateRejectsMissingID(t *testing.T) {
	s := testSession()
	s.ID = ""
	assert.ErrorIs(t, s.Validate(), ErrCorruptSession)
}

func TestValidateRejectsEmptyActiveSet(t *testing.T) {
	s := testSession()
	s.ActivePlayers = nil
	assert.ErrorIs(t, s.Validate(), ErrCorruptSession)
}

func TestValidateRejectsDuplicateActivePlayers(t *testing.T) {
	s := testSession()
	s.ActivePlayers = []PlayerID{"p1", "p1"}
	assert.ErrorIs(t, s.Validate(), ErrCorruptSession)
}

func TestValidateRejectsNonSequentialPlayIDs(t *testing.T) {
	s := testSession()
	s.Plays[1].ID = 7
	assert.ErrorIs(t, s.Validate(), ErrCorruptSession)
}

func TestValidateRejectsInvalidPlayType(t *testing.T) {
	s := testSession()
	s.Plays[0].Type = "kickoff"
	assert.ErrorIs(t, s.Validate(), ErrCorruptSession)
}

func TestValidateRejectsPlayWithNoParticipants(t *testing.T) {
	s := testSession()
	s.Plays[0].Players = nil
	assert.ErrorIs(t, s.Validate(), ErrCorruptSession)
}

func TestValidateRejectsPlayReferencingInactivePlayer(t *testing.T) {
	s := testSession()
	s.Plays[0].Players = []PlayerID{"p1", "p99"}
	assert.ErrorIs(t, s.Validate(), ErrCorruptSession)
}

func TestValidateRejectsFinalizedSessionWithoutStats(t *testing.T) {
	s := testSession()
	end := time.Now()
	s.EndTime = &end
	assert.ErrorIs(t, s.Validate(), ErrCorruptSession)
}

func TestPlayTypeValid(t *testing.T) {
	assert.True(t, PlayTypeOffense.Valid())
	assert.True(t, PlayTypeDefense.Valid())
	assert.True(t, PlayTypeSpecial.Valid())
	assert.False(t, PlayType("punt").Valid())
	assert.False(t, PlayType("").Valid())
}
