package redis

import (
	"fmt"

	"github.com/silverspringsaints/playtracker/internal/model"
)

// Key prefix for all play-tracker data
const keyPrefix = "playtracker"

// playerKey returns the Redis key for a roster Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// playerIndexKey returns the Redis key for the SET of roster player ids
func playerIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// currentSessionKey returns the Redis key for the single current-session slot
func currentSessionKey() string {
	return fmt.Sprintf("%s:session:current", keyPrefix)
}

// archivedSessionKey returns the Redis key for an archived Session
func archivedSessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// archiveIndexKey returns the Redis key for the LIST of archived session ids,
// in completion order
func archiveIndexKey() string {
	return fmt.Sprintf("%s:idx:archive", keyPrefix)
}
