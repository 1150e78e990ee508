package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/silverspringsaints/playtracker/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodePlayerNotFound     = "PLAYER_NOT_FOUND"
	CodeEmptyName          = "EMPTY_NAME"
	CodeInvalidJersey      = "INVALID_JERSEY"
	CodeDuplicateJersey    = "DUPLICATE_JERSEY"
	CodeMissingOpponent    = "MISSING_OPPONENT"
	CodeMissingCoach       = "MISSING_COACH"
	CodeInvalidDate        = "INVALID_DATE"
	CodeNoActivePlayers    = "NO_ACTIVE_PLAYERS"
	CodeSessionInProgress  = "SESSION_IN_PROGRESS"
	CodeNoCurrentSession   = "NO_CURRENT_SESSION"
	CodeSessionNotFound    = "SESSION_NOT_FOUND"
	CodeEmptySelection     = "EMPTY_SELECTION"
	CodeUnknownPlayer      = "UNKNOWN_PLAYER"
	CodeInvalidPlayType    = "INVALID_PLAY_TYPE"
	CodeSessionFinalized   = "SESSION_FINALIZED"
	CodeCorruptSession     = "CORRUPT_SESSION"
	CodePersistenceFailure = "PERSISTENCE_FAILURE"
	CodeNotFinalized       = "NOT_FINALIZED"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrEmptyName):
		return &httpError{http.StatusBadRequest, APIError{CodeEmptyName, "Player name must not be empty"}}
	case errors.Is(err, model.ErrInvalidJersey):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidJersey, "Jersey number must be between 1 and 99"}}
	case errors.Is(err, model.ErrDuplicateJersey):
		return &httpError{http.StatusConflict, APIError{CodeDuplicateJersey, "Jersey number already in use"}}
	case errors.Is(err, model.ErrInvalidRoster):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Invalid roster document"}}
	case errors.Is(err, model.ErrMissingOpponent):
		return &httpError{http.StatusBadRequest, APIError{CodeMissingOpponent, "Opponent is required"}}
	case errors.Is(err, model.ErrMissingCoach):
		return &httpError{http.StatusBadRequest, APIError{CodeMissingCoach, "Coach name is required"}}
	case errors.Is(err, model.ErrInvalidDate):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidDate, "Date must be YYYY-MM-DD"}}
	case errors.Is(err, model.ErrNoActivePlayers):
		return &httpError{http.StatusBadRequest, APIError{CodeNoActivePlayers, "At least one active player is required"}}
	case errors.Is(err, model.ErrSessionInProgress):
		return &httpError{http.StatusConflict, APIError{CodeSessionInProgress, "A session is already in progress"}}
	case errors.Is(err, model.ErrNoCurrentSession):
		return &httpError{http.StatusNotFound, APIError{CodeNoCurrentSession, "No session in progress"}}
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "Session not found"}}
	case errors.Is(err, model.ErrEmptySelection):
		return &httpError{http.StatusBadRequest, APIError{CodeEmptySelection, "No players selected for play"}}
	case errors.Is(err, model.ErrUnknownPlayer):
		return &httpError{http.StatusConflict, APIError{CodeUnknownPlayer, "Player is not in the active set"}}
	case errors.Is(err, model.ErrInvalidPlayType):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPlayType, "Play type must be offense, defense or special"}}
	case errors.Is(err, model.ErrSessionFinalized):
		return &httpError{http.StatusConflict, APIError{CodeSessionFinalized, "Session is already finalized"}}
	case errors.Is(err, model.ErrCorruptSession):
		return &httpError{http.StatusConflict, APIError{CodeCorruptSession, "Stored session record is corrupt and must be discarded"}}
	case errors.Is(err, model.ErrPersistence):
		return &httpError{http.StatusInternalServerError, APIError{CodePersistenceFailure, "Failed to persist session state"}}
	case errors.Is(err, model.ErrNotFinalized):
		return &httpError{http.StatusConflict, APIError{CodeNotFinalized, "Session is not finalized"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
