package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/padelmx/mexicano/internal/mexicano"
)

// Defaults seed new tournaments when the request leaves fields blank.
type Defaults struct {
	PlayerPool []string
	CourtCount int
}

// TournamentRequest creates a tournament or updates its settings.
type TournamentRequest struct {
	ID              string   `json:"id,omitempty"`
	Name            string   `json:"name,omitempty"`
	CourtCount      int      `json:"courtCount,omitempty"`
	Days            int      `json:"days,omitempty"`
	EstimatedRounds int      `json:"estimatedRounds,omitempty"`
	Location        string   `json:"location,omitempty"`
	StartDate       string   `json:"startDate,omitempty"`
	EndDate         string   `json:"endDate,omitempty"`
	Players         []string `json:"players,omitempty"`
}

// loadTournament resolves {id} and fetches the record, writing the error
// response itself when the lookup fails.
func loadTournament(w http.ResponseWriter, r *http.Request, store TournamentStore) (TournamentRecord, bool) {
	id := chi.URLParam(r, "id")
	rec, err := store.Load(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		writeError(w, http.StatusNotFound, "tournament not found")
		return rec, false
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return rec, false
	}
	return rec, true
}

func saveTournament(w http.ResponseWriter, r *http.Request, store TournamentStore, rec TournamentRecord) bool {
	if err := store.Save(r.Context(), rec); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save tournament")
		return false
	}
	return true
}

func handleListTournaments(store TournamentStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summaries, err := store.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if summaries == nil {
			summaries = []TournamentSummary{}
		}
		writeJSON(w, http.StatusOK, summaries)
	}
}

func handleGetTournament(store TournamentStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, ok := loadTournament(w, r, store)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

func handleCreateTournament(store TournamentStore, defaults Defaults) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TournamentRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		id := strings.TrimSpace(req.ID)
		if id == "" {
			id = uuid.NewString()
		}

		if _, err := store.Load(r.Context(), id); err == nil {
			writeError(w, http.StatusConflict, "tournament already exists")
			return
		} else if !errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		players := req.Players
		if len(players) == 0 {
			players = defaults.PlayerPool
		}
		courtCount := req.CourtCount
		if courtCount <= 0 {
			courtCount = defaults.CourtCount
		}

		rec := TournamentRecord{
			ID:         id,
			Name:       strings.TrimSpace(req.Name),
			CourtCount: courtCount,
			Days:       req.Days,
			Location:   strings.TrimSpace(req.Location),
			StartDate:  req.StartDate,
			EndDate:    req.EndDate,
			PlayerPool: defaults.PlayerPool,
			State:      mexicano.NewState(players),
		}
		if plan, err := mexicano.PlanRounds(len(players)); err == nil {
			rec.EstimatedRounds = plan.Rounds
		}
		if req.EstimatedRounds > 0 {
			rec.EstimatedRounds = req.EstimatedRounds
		}

		if !saveTournament(w, r, store, rec) {
			return
		}
		writeJSON(w, http.StatusCreated, rec)
	}
}

func handleUpdateSettings(store TournamentStore, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, ok := loadTournament(w, r, store)
		if !ok {
			return
		}

		var req TournamentRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if name := strings.TrimSpace(req.Name); name != "" {
			rec.Name = name
		}
		if req.CourtCount > 0 {
			rec.CourtCount = req.CourtCount
		}
		if req.Days > 0 {
			rec.Days = req.Days
		}
		if req.EstimatedRounds > 0 {
			rec.EstimatedRounds = req.EstimatedRounds
		}
		if loc := strings.TrimSpace(req.Location); loc != "" {
			rec.Location = loc
		}
		if req.StartDate != "" {
			rec.StartDate = req.StartDate
		}
		if req.EndDate != "" {
			rec.EndDate = req.EndDate
		}

		if !saveTournament(w, r, store, rec) {
			return
		}
		broker.Publish(rec.ID, Event{Type: eventSettingsUpdated})
		writeJSON(w, http.StatusOK, rec)
	}
}

func handleDeleteTournament(store TournamentStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		err := store.Delete(r.Context(), id)
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "tournament not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
