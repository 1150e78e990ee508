package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/silverspringsaints/playtracker/internal/dependencies/clock"
	"github.com/silverspringsaints/playtracker/internal/dependencies/random"
	"github.com/silverspringsaints/playtracker/internal/model"
	"github.com/silverspringsaints/playtracker/internal/services/threshold"
	"github.com/silverspringsaints/playtracker/internal/storage"
)

const sessionIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Controller manages the live game session: setup, play recording, resume
// and finalization. At most one session is in progress at a time; it lives
// in the storage current-session slot and is persisted after every mutation.
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new session controller
func NewController(storage storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *Controller {
	return &Controller{
		storage: storage,
		clock:   clk,
		random:  rnd,
		logger:  logger,
	}
}

// StartSession validates game setup and opens a new session. Fails with
// model.ErrSessionInProgress while the current-session slot is occupied;
// a corrupt slot must be discarded explicitly first.
func (c *Controller) StartSession(ctx context.Context, date, opponent, coachName string, activePlayers []model.PlayerID) (*model.Session, error) {
	opponent = strings.TrimSpace(opponent)
	if opponent == "" {
		return nil, model.ErrMissingOpponent
	}
	coachName = strings.TrimSpace(coachName)
	if coachName == "" {
		return nil, model.ErrMissingCoach
	}

	now := c.clock.Now()
	if date == "" {
		date = now.Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, model.ErrInvalidDate
	}

	if len(activePlayers) == 0 {
		return nil, model.ErrNoActivePlayers
	}
	seen := make(map[model.PlayerID]bool, len(activePlayers))
	for _, id := range activePlayers {
		if seen[id] {
			return nil, fmt.Errorf("%w: duplicate player %q", model.ErrUnknownPlayer, id)
		}
		seen[id] = true
		if _, err := c.storage.GetPlayer(ctx, id); err != nil {
			if errors.Is(err, model.ErrPlayerNotFound) {
				return nil, fmt.Errorf("%w: %q", model.ErrUnknownPlayer, id)
			}
			return nil, err
		}
	}

	// The slot is a singleton; refuse to overwrite an existing session.
	_, err := c.storage.GetCurrentSession(ctx)
	switch {
	case err == nil:
		return nil, model.ErrSessionInProgress
	case errors.Is(err, model.ErrNoCurrentSession):
		// Slot free
	default:
		return nil, err
	}

	session := &model.Session{
		ID:            model.SessionID(c.random.String(12, sessionIDAlphabet)),
		Date:          date,
		Opponent:      opponent,
		CoachName:     coachName,
		ActivePlayers: append([]model.PlayerID(nil), activePlayers...),
		Plays:         []model.PlayRecord{},
		StartTime:     now,
	}

	if err := c.storage.SaveCurrentSession(ctx, session); err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrPersistence, err)
	}

	c.logger.Info("session started",
		slog.String("session_id", string(session.ID)),
		slog.String("opponent", opponent),
		slog.Int("active_players", len(activePlayers)),
	)

	return session, nil
}

// Current loads and validates the session in progress. Used at process start
// to resume after interruption; a structurally invalid slot returns
// model.ErrCorruptSession and blocks recording until discarded.
func (c *Controller) Current(ctx context.Context) (*model.Session, error) {
	session, err := c.storage.GetCurrentSession(ctx)
	if err != nil {
		return nil, err
	}
	if session.IsFinalized() {
		return nil, fmt.Errorf("%w: finalized session in current slot", model.ErrCorruptSession)
	}
	if err := session.Validate(); err != nil {
		return nil, err
	}
	return session, nil
}

// DiscardCurrent clears the current-session slot without archiving. The only
// recovery path for a corrupt slot.
func (c *Controller) DiscardCurrent(ctx context.Context) error {
	if err := c.storage.ClearCurrentSession(ctx); err != nil {
		return fmt.Errorf("%w: %w", model.ErrPersistence, err)
	}
	c.logger.Info("current session discarded")
	return nil
}

// RecordPlay validates and appends one play to the session in progress,
// returning the updated session and the milestone events that newly became
// true. The operation is atomic from the caller's perspective: the updated
// state is adopted only after the slot write succeeds, so a persistence
// failure leaves the stored session unchanged with no phantom play.
func (c *Controller) RecordPlay(ctx context.Context, playType model.PlayType, players []model.PlayerID) (*model.Session, []model.Event, error) {
	if !playType.Valid() {
		return nil, nil, model.ErrInvalidPlayType
	}
	if len(players) == 0 {
		return nil, nil, model.ErrEmptySelection
	}

	session, err := c.Current(ctx)
	if err != nil {
		return nil, nil, err
	}
	if session.IsFinalized() {
		return nil, nil, model.ErrSessionFinalized
	}

	seen := make(map[model.PlayerID]bool, len(players))
	for _, id := range players {
		if !session.HasActivePlayer(id) {
			return nil, nil, fmt.Errorf("%w: %q", model.ErrUnknownPlayer, id)
		}
		if seen[id] {
			return nil, nil, fmt.Errorf("%w: duplicate player %q", model.ErrUnknownPlayer, id)
		}
		seen[id] = true
	}

	before := session.ComputeStats()

	updated := session.Clone()
	play := model.PlayRecord{
		ID:        updated.NextPlayID(),
		Type:      playType,
		Players:   append([]model.PlayerID(nil), players...),
		Timestamp: c.clock.Now(),
	}
	updated.Plays = append(updated.Plays, play)

	after := updated.ComputeStats()

	events := threshold.Evaluate(before, after, updated.ActivePlayers)
	for i := range events {
		events[i].PlayID = play.ID
	}

	if err := c.storage.SaveCurrentSession(ctx, updated); err != nil {
		c.logger.Error("failed to persist play",
			slog.String("session_id", string(updated.ID)),
			slog.Int64("play_id", int64(play.ID)),
			slog.String("error", err.Error()),
		)
		return nil, nil, fmt.Errorf("%w: %w", model.ErrPersistence, err)
	}

	c.logger.Info("play recorded",
		slog.String("session_id", string(updated.ID)),
		slog.Int64("play_id", int64(play.ID)),
		slog.String("type", string(playType)),
		slog.Int("participants", len(players)),
		slog.Int("milestones", len(events)),
	)

	return updated, events, nil
}

// EndSession finalizes the session in progress: snapshots final stats from
// the play log, sets the end time, and atomically moves the session from the
// current slot to the archive. A finalized session is immutable.
func (c *Controller) EndSession(ctx context.Context) (*model.Session, error) {
	session, err := c.Current(ctx)
	if err != nil {
		return nil, err
	}

	finalized := session.Clone()
	end := c.clock.Now()
	finalized.EndTime = &end
	finalized.FinalStats = finalized.ComputeStats()

	if err := c.storage.ArchiveSession(ctx, finalized); err != nil {
		c.logger.Error("failed to archive session",
			slog.String("session_id", string(finalized.ID)),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: %w", model.ErrPersistence, err)
	}

	c.logger.Info("session finalized",
		slog.String("session_id", string(finalized.ID)),
		slog.String("opponent", finalized.Opponent),
		slog.Int("total_plays", len(finalized.Plays)),
	)

	return finalized, nil
}

// ArchivedSessions lists completed sessions in completion order
func (c *Controller) ArchivedSessions(ctx context.Context) ([]*model.Session, error) {
	return c.storage.ListArchivedSessions(ctx)
}

// ArchivedSession retrieves one completed session by id
func (c *Controller) ArchivedSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.storage.GetArchivedSession(ctx, id)
}

// Interface for dependency injection
type ControllerInterface interface {
	StartSession(ctx context.Context, date, opponent, coachName string, activePlayers []model.PlayerID) (*model.Session, error)
	Current(ctx context.Context) (*model.Session, error)
	DiscardCurrent(ctx context.Context) error
	RecordPlay(ctx context.Context, playType model.PlayType, players []model.PlayerID) (*model.Session, []model.Event, error)
	EndSession(ctx context.Context) (*model.Session, error)
	ArchivedSessions(ctx context.Context) ([]*model.Session, error)
	ArchivedSession(ctx context.Context, id model.SessionID) (*model.Session, error)
}

var _ ControllerInterface = (*Controller)(nil)
