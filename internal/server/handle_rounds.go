package server

import (
	"math/rand/v2"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/padelmx/mexicano/internal/mexicano"
)

// ScoreRequest records one side's points for a match. Side is "A" or "B".
type ScoreRequest struct {
	Side  string `json:"side"`
	Value int    `json:"value"`
}

// SubmitRoundResponse is returned after a round is settled.
type SubmitRoundResponse struct {
	Round  int            `json:"round"`
	Deltas map[string]int `json:"deltas"`
	State  mexicano.State `json:"state"`
}

// roundParam parses the 1-based {round} URL segment into a slice index.
func roundParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, "round"))
	if err != nil || n < 1 {
		writeError(w, http.StatusBadRequest, "round must be a positive integer")
		return 0, false
	}
	return n - 1, true
}

func matchParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, "match"))
	if err != nil || n < 0 {
		writeError(w, http.StatusBadRequest, "match must be a non-negative integer")
		return 0, false
	}
	return n, true
}

func handleStartTournament(store TournamentStore, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, ok := loadTournament(w, r, store)
		if !ok {
			return
		}

		rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		state, err := rec.State.Start(rng)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		rec.State = state
		if plan, err := mexicano.PlanRounds(len(state.Players)); err == nil {
			rec.EstimatedRounds = plan.Rounds
		}

		if !saveTournament(w, r, store, rec) {
			return
		}
		broker.Publish(rec.ID, Event{Type: eventRoundCreated, Round: 1})
		writeJSON(w, http.StatusOK, rec)
	}
}

func handleApplyScore(store TournamentStore, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, ok := loadTournament(w, r, store)
		if !ok {
			return
		}
		roundIdx, ok := roundParam(w, r)
		if !ok {
			return
		}
		matchIdx, ok := matchParam(w, r)
		if !ok {
			return
		}

		var req ScoreRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		var side mexicano.Side
		switch strings.ToUpper(strings.TrimSpace(req.Side)) {
		case "A":
			side = mexicano.SideA
		case "B":
			side = mexicano.SideB
		default:
			writeError(w, http.StatusBadRequest, `side must be "A" or "B"`)
			return
		}

		state, err := rec.State.ApplyScore(roundIdx, matchIdx, side, req.Value)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		rec.State = state

		if !saveTournament(w, r, store, rec) {
			return
		}
		broker.Publish(rec.ID, Event{Type: eventScoreUpdated, Round: roundIdx + 1, Match: matchIdx})
		writeJSON(w, http.StatusOK, rec.State.Rounds[roundIdx])
	}
}

func handleSubmitRound(store TournamentStore, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, ok := loadTournament(w, r, store)
		if !ok {
			return
		}
		roundIdx, ok := roundParam(w, r)
		if !ok {
			return
		}

		state, deltas, err := rec.State.SubmitRound(roundIdx)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		rec.State = state

		if !saveTournament(w, r, store, rec) {
			return
		}
		broker.Publish(rec.ID, Event{Type: eventRoundSubmitted, Round: roundIdx + 1})
		writeJSON(w, http.StatusOK, SubmitRoundResponse{
			Round:  roundIdx + 1,
			Deltas: deltas,
			State:  rec.State,
		})
	}
}

func handleNextRound(store TournamentStore, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, ok := loadTournament(w, r, store)
		if !ok {
			return
		}

		state, err := rec.State.NextRound()
		if err != nil {
			writeEngineError(w, err)
			return
		}
		rec.State = state

		if !saveTournament(w, r, store, rec) {
			return
		}
		broker.Publish(rec.ID, Event{Type: eventRoundCreated, Round: rec.State.CurrentRound()})
		writeJSON(w, http.StatusOK, rec)
	}
}

func handleResetTournament(store TournamentStore, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, ok := loadTournament(w, r, store)
		if !ok {
			return
		}

		rec.State = rec.State.Reset()

		if !saveTournament(w, r, store, rec) {
			return
		}
		broker.Publish(rec.ID, Event{Type: eventReset})
		writeJSON(w, http.StatusOK, rec)
	}
}
