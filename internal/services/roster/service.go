package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/silverspringsaints/playtracker/internal/model"
	"github.com/silverspringsaints/playtracker/internal/storage"
)

// Service manages the season roster: the durable mapping of player identity
// to name and jersey number. Sessions consume the roster read-only.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new roster service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// AddPlayer validates and adds a new player to the roster
func (s *Service) AddPlayer(ctx context.Context, name string, jersey int) (*model.Player, error) {
	name = strings.TrimSpace(name)
	if err := s.validate(ctx, name, jersey, ""); err != nil {
		return nil, err
	}

	player := &model.Player{
		ID:     model.PlayerID(uuid.New().String()),
		Name:   name,
		Jersey: jersey,
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player added",
		slog.String("player_id", string(player.ID)),
		slog.Int("jersey", jersey),
	)

	return player, nil
}

// UpdatePlayer changes an existing player's name and jersey
func (s *Service) UpdatePlayer(ctx context.Context, id model.PlayerID, name string, jersey int) (*model.Player, error) {
	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if err := s.validate(ctx, name, jersey, id); err != nil {
		return nil, err
	}

	player.Name = name
	player.Jersey = jersey

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	return player, nil
}

// RemovePlayer deletes a player from the roster. Archived sessions keep the
// player's id; summaries over them show an Unknown identity.
func (s *Service) RemovePlayer(ctx context.Context, id model.PlayerID) error {
	if _, err := s.storage.GetPlayer(ctx, id); err != nil {
		return err
	}
	if err := s.storage.DeletePlayer(ctx, id); err != nil {
		return err
	}

	s.logger.Info("player removed", slog.String("player_id", string(id)))
	return nil
}

// GetPlayer retrieves a single player by id
func (s *Service) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return s.storage.GetPlayer(ctx, id)
}

// ListPlayers returns the roster sorted ascending by jersey number
func (s *Service) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(players, func(i, j int) bool {
		return players[i].Jersey < players[j].Jersey
	})
	return players, nil
}

// Export renders the roster as a JSON document
func (s *Service) Export(ctx context.Context) ([]byte, error) {
	players, err := s.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(players, "", "  ")
}

// Import replaces the entire roster with the players in the given JSON
// document. The document is validated in full before anything is written.
func (s *Service) Import(ctx context.Context, data []byte) ([]*model.Player, error) {
	var incoming []*model.Player
	if err := json.Unmarshal(data, &incoming); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidRoster, err)
	}

	jerseys := make(map[int]bool, len(incoming))
	for _, player := range incoming {
		player.Name = strings.TrimSpace(player.Name)
		if player.Name == "" {
			return nil, model.ErrEmptyName
		}
		if player.Jersey < model.MinJersey || player.Jersey > model.MaxJersey {
			return nil, model.ErrInvalidJersey
		}
		if jerseys[player.Jersey] {
			return nil, model.ErrDuplicateJersey
		}
		jerseys[player.Jersey] = true
		if player.ID == "" {
			player.ID = model.PlayerID(uuid.New().String())
		}
	}

	existing, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	for _, player := range existing {
		if err := s.storage.DeletePlayer(ctx, player.ID); err != nil {
			return nil, err
		}
	}
	for _, player := range incoming {
		if err := s.storage.SavePlayer(ctx, player); err != nil {
			return nil, err
		}
	}

	s.logger.Info("roster imported", slog.Int("player_count", len(incoming)))

	return s.ListPlayers(ctx)
}

// validate checks name and jersey constraints. excludeID skips a player when
// checking jersey uniqueness (the player being updated).
func (s *Service) validate(ctx context.Context, name string, jersey int, excludeID model.PlayerID) error {
	if name == "" {
		return model.ErrEmptyName
	}
	if jersey < model.MinJersey || jersey > model.MaxJersey {
		return model.ErrInvalidJersey
	}

	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return err
	}
	for _, player := range players {
		if player.Jersey == jersey && player.ID != excludeID {
			return model.ErrDuplicateJersey
		}
	}
	return nil
}
