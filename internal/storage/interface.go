package storage

import (
	"context"

	"github.com/silverspringsaints/playtracker/internal/model"
)

// Storage defines the interface for data persistence.
//
// The current-session slot is a process-wide singleton: SaveCurrentSession
// overwrites it, GetCurrentSession returns model.ErrNoCurrentSession when it
// is empty, and ArchiveSession must atomically append the finalized session
// to the archive and clear the slot. A slot that fails to decode surfaces
// model.ErrCorruptSession; implementations never attempt repair.
type Storage interface {
	// Roster operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// Current-session slot operations
	SaveCurrentSession(ctx context.Context, session *model.Session) error
	GetCurrentSession(ctx context.Context) (*model.Session, error)
	ClearCurrentSession(ctx context.Context) error

	// Archive operations
	ArchiveSession(ctx context.Context, session *model.Session) error
	ListArchivedSessions(ctx context.Context) ([]*model.Session, error)
	GetArchivedSession(ctx context.Context, id model.SessionID) (*model.Session, error)
}
