package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/silverspringsaints/playtracker/internal/model"
	"github.com/silverspringsaints/playtracker/internal/services/summary"
	"github.com/silverspringsaints/playtracker/internal/testutil"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// Test: Complete flow from roster setup to game summary
func (s *IntegrationSuite) TestCompleteGameFlow() {
	// Step 1: Build the roster
	alice, err := s.app.RosterService.AddPlayer(s.ctx, "Alice", 7)
	s.Require().NoError(err)
	bob, err := s.app.RosterService.AddPlayer(s.ctx, "Bob", 12)
	s.Require().NoError(err)

	// Step 2: Start a game with both players active
	s.app.MockRandom.QueueString("GAME12345678")
	session, err := s.app.SessionController.StartSession(
		s.ctx, "2025-09-06", "Eagles", "Coach Taylor",
		[]model.PlayerID{alice.ID, bob.ID},
	)
	s.Require().NoError(err)
	s.Equal(model.SessionID("GAME12345678"), session.ID)

	// Step 3: Record plays until both players reach the minimum
	var lastEvents []model.Event
	for i := 0; i < 8; i++ {
		s.app.MockClock.Advance(30 * time.Second)
		_, lastEvents, err = s.app.SessionController.RecordPlay(
			s.ctx, model.PlayTypeOffense, []model.PlayerID{alice.ID, bob.ID},
		)
		s.Require().NoError(err)
	}

	// Both individual milestones and the team milestone fired on play 8
	s.Require().Len(lastEvents, 3)
	s.Equal(model.EventPlayerReachedMinimum, lastEvents[0].Type)
	s.Equal(model.EventPlayerReachedMinimum, lastEvents[1].Type)
	s.Equal(model.EventAllPlayersReachedMinimum, lastEvents[2].Type)

	// Step 4: End the game
	s.app.MockClock.Advance(time.Hour)
	finalized, err := s.app.SessionController.EndSession(s.ctx)
	s.Require().NoError(err)
	s.Require().NotNil(finalized.EndTime)
	s.Equal(8, finalized.FinalStats[alice.ID].Total)
	s.Equal(8, finalized.FinalStats[bob.ID].Total)

	// Step 5: Project the summary from the archive
	archived, err := s.app.SessionController.ArchivedSession(s.ctx, finalized.ID)
	s.Require().NoError(err)
	players, err := s.app.RosterService.ListPlayers(s.ctx)
	s.Require().NoError(err)

	projected, err := summary.Project(archived, players)
	s.Require().NoError(err)
	s.Equal("Eagles", projected.GameInfo.Opponent)
	s.Equal(8, projected.GameInfo.TotalPlays)
	s.Require().Len(projected.PlayerStats, 2)
	s.False(projected.PlayerStats[0].UnderMinimum)
	s.False(projected.PlayerStats[1].UnderMinimum)
	s.Empty(projected.UnderMinimumRows())
}

// Test: A game interrupted mid-session resumes from storage
func (s *IntegrationSuite) TestInterruptedGameResumes() {
	alice, err := s.app.RosterService.AddPlayer(s.ctx, "Alice", 7)
	s.Require().NoError(err)

	s.app.MockRandom.QueueString("GAME12345678")
	_, err = s.app.SessionController.StartSession(
		s.ctx, "2025-09-06", "Eagles", "Coach Taylor", []model.PlayerID{alice.ID},
	)
	s.Require().NoError(err)

	for i := 0; i < 3; i++ {
		_, _, err = s.app.SessionController.RecordPlay(s.ctx, model.PlayTypeDefense, []model.PlayerID{alice.ID})
		s.Require().NoError(err)
	}

	// Simulate restart: a fresh wiring over the same storage
	restarted := newWithDependencies(s.app.Storage, s.app.MockClock, s.app.MockRandom, testutil.NopLogger())

	resumed, err := restarted.SessionController.Current(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.SessionID("GAME12345678"), resumed.ID)
	s.Len(resumed.Plays, 3)
	s.Equal(3, resumed.ComputeStats()[alice.ID].Total)

	// Recording continues with the next play id
	updated, _, err := restarted.SessionController.RecordPlay(s.ctx, model.PlayTypeDefense, []model.PlayerID{alice.ID})
	s.Require().NoError(err)
	s.Equal(model.PlayID(4), updated.Plays[3].ID)
}

// Test: Factory rejects bad configuration
func (s *IntegrationSuite) TestNewRejectsUnknownStorageType() {
	_, err := New(Config{StorageType: "postgres"})
	s.Error(err)
}

func (s *IntegrationSuite) TestNewRequiresRedisConfigForRedis() {
	_, err := New(Config{StorageType: StorageTypeRedis})
	s.Error(err)
}

func (s *IntegrationSuite) TestNewDefaultsToMemoryStorage() {
	app, err := New(Config{})
	s.Require().NoError(err)
	s.NotNil(app.Storage)
	s.NotNil(app.RosterService)
	s.NotNil(app.SessionController)
}
