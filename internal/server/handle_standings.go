package server

import (
	"net/http"

	"github.com/padelmx/mexicano/internal/mexicano"
)

// StandingRow is one line of the leaderboard.
type StandingRow struct {
	Rank          int    `json:"rank"`
	Name          string `json:"name"`
	Total         int    `json:"total"`
	Average       int    `json:"average"`
	MatchesPlayed int    `json:"matchesPlayed"`
	Byes          int    `json:"byes"`
}

func handleStandings(store TournamentStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, ok := loadTournament(w, r, store)
		if !ok {
			return
		}

		ranking := rec.State.Ranking()
		rows := make([]StandingRow, 0, len(ranking))
		for i, name := range ranking {
			rows = append(rows, StandingRow{
				Rank:          i + 1,
				Name:          name,
				Total:         rec.State.Totals[name],
				Average:       rec.State.Average(name),
				MatchesPlayed: rec.State.MatchesPlayed(name),
				Byes:          rec.State.ByeCounts[name],
			})
		}
		writeJSON(w, http.StatusOK, rows)
	}
}

// PlanResponse previews the schedule for the current roster size.
type PlanResponse struct {
	Players          int `json:"players"`
	Rounds           int `json:"rounds"`
	MatchesPerPlayer int `json:"matchesPerPlayer"`
	ByesPerRound     int `json:"byesPerRound"`
}

func handlePlan(store TournamentStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, ok := loadTournament(w, r, store)
		if !ok {
			return
		}

		plan, err := mexicano.PlanRounds(len(rec.State.Players))
		if err != nil {
			writeEngineError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, PlanResponse{
			Players:          len(rec.State.Players),
			Rounds:           plan.Rounds,
			MatchesPerPlayer: plan.MatchesPerPlayer,
			ByesPerRound:     plan.ByesPerRound,
		})
	}
}
