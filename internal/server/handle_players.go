package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// PlayerRequest adds or renames a roster entry.
type PlayerRequest struct {
	Name string `json:"name"`
}

func handleAddPlayer(store TournamentStore, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, ok := loadTournament(w, r, store)
		if !ok {
			return
		}

		var req PlayerRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		state, err := rec.State.AddPlayer(req.Name)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		rec.State = state

		if !saveTournament(w, r, store, rec) {
			return
		}
		broker.Publish(rec.ID, Event{Type: eventRosterChanged})
		writeJSON(w, http.StatusOK, rec)
	}
}

func handleRemovePlayer(store TournamentStore, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, ok := loadTournament(w, r, store)
		if !ok {
			return
		}

		state, err := rec.State.RemovePlayer(chi.URLParam(r, "name"))
		if err != nil {
			writeEngineError(w, err)
			return
		}
		rec.State = state

		if !saveTournament(w, r, store, rec) {
			return
		}
		broker.Publish(rec.ID, Event{Type: eventRosterChanged})
		writeJSON(w, http.StatusOK, rec)
	}
}

func handleRenamePlayer(store TournamentStore, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, ok := loadTournament(w, r, store)
		if !ok {
			return
		}

		var req PlayerRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		state, err := rec.State.RenamePlayer(chi.URLParam(r, "name"), req.Name)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		rec.State = state

		if !saveTournament(w, r, store, rec) {
			return
		}
		broker.Publish(rec.ID, Event{Type: eventRosterChanged})
		writeJSON(w, http.StatusOK, rec)
	}
}
