package model

import "errors"

// Common errors used across the application
var (
	// Roster errors
	ErrPlayerNotFound  = errors.New("player not found")
	ErrEmptyName       = errors.New("player name must not be empty")
	ErrInvalidJersey   = errors.New("jersey number must be between 1 and 99")
	ErrDuplicateJersey = errors.New("jersey number already in use")
	ErrInvalidRoster   = errors.New("invalid roster document")

	// Session setup errors
	ErrMissingOpponent   = errors.New("opponent is required")
	ErrMissingCoach      = errors.New("coach name is required")
	ErrInvalidDate       = errors.New("date must be YYYY-MM-DD")
	ErrNoActivePlayers   = errors.New("at least one active player is required")
	ErrSessionInProgress = errors.New("a session is already in progress")

	// Recording errors
	ErrEmptySelection   = errors.New("no players selected for play")
	ErrUnknownPlayer    = errors.New("player is not in the active set")
	ErrInvalidPlayType  = errors.New("invalid play type")
	ErrSessionFinalized = errors.New("session is already finalized")

	// Persistence errors
	ErrNoCurrentSession = errors.New("no session in progress")
	ErrSessionNotFound  = errors.New("session not found")
	ErrCorruptSession   = errors.New("corrupt session record")
	ErrPersistence      = errors.New("persistence failure")

	// Summary errors
	ErrNotFinalized = errors.New("session is not finalized")
)
