package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/padelmx/mexicano/internal/mexicano"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func readJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// ValidationErrorResponse carries the offending match when a round submission
// fails the race-to-target check.
type ValidationErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
	Round int    `json:"round"`
	Match int    `json:"match"`
}

// writeEngineError maps engine errors to HTTP statuses: unknown rounds,
// matches, and players are 404, rule violations are 409, and bad input is 400.
func writeEngineError(w http.ResponseWriter, err error) {
	var verr *mexicano.MatchValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusConflict, ValidationErrorResponse{
			Error: verr.Error(),
			Kind:  string(verr.Kind),
			Round: verr.Round,
			Match: verr.Match,
		})
	case errors.Is(err, mexicano.ErrNoSuchRound),
		errors.Is(err, mexicano.ErrNoSuchMatch),
		errors.Is(err, mexicano.ErrUnknownPlayer):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, mexicano.ErrEmptyPlayerName):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, mexicano.ErrInsufficientPlayers),
		errors.Is(err, mexicano.ErrOddPlayerCount),
		errors.Is(err, mexicano.ErrNotStarted),
		errors.Is(err, mexicano.ErrIncompleteRound),
		errors.Is(err, mexicano.ErrRoundSubmitted),
		errors.Is(err, mexicano.ErrDuplicatePlayer):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
