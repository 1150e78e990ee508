package memory

import (
	"context"
	"sync"

	"github.com/silverspringsaints/playtracker/internal/model"
	"github.com/silverspringsaints/playtracker/internal/storage"
)

// Storage is an in-memory implementation of the storage interface. Sessions
// are deep-copied on the way in and out so callers can never alias stored
// state.
type Storage struct {
	mu sync.RWMutex

	players map[model.PlayerID]*model.Player
	current *model.Session
	archive []*model.Session
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players: make(map[model.PlayerID]*model.Player),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *player
	s.players[player.ID] = &copied
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	copied := *player
	return &copied, nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0, len(s.players))
	for _, player := range s.players {
		copied := *player
		players = append(players, &copied)
	}
	return players, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.players, id)
	return nil
}

// Current-session slot operations

func (s *Storage) SaveCurrentSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = session.Clone()
	return nil
}

func (s *Storage) GetCurrentSession(ctx context.Context) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, model.ErrNoCurrentSession
	}
	return s.current.Clone(), nil
}

func (s *Storage) ClearCurrentSession(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	return nil
}

// Archive operations

func (s *Storage) ArchiveSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Append and clear under one lock so no reader can observe the session
	// both missing from the archive and gone from the slot.
	s.archive = append(s.archive, session.Clone())
	s.current = nil
	return nil
}

func (s *Storage) ListArchivedSessions(ctx context.Context) ([]*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sessions := make([]*model.Session, 0, len(s.archive))
	for _, session := range s.archive {
		sessions = append(sessions, session.Clone())
	}
	return sessions, nil
}

func (s *Storage) GetArchivedSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, session := range s.archive {
		if session.ID == id {
			return session.Clone(), nil
		}
	}
	return nil, model.ErrSessionNotFound
}
