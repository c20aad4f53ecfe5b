package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse maps dependency name to status.
type HealthResponse map[string]struct {
	Status string `json:"status"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Mexicano API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for Mexicano-format padel tournaments.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /api/tournaments
	listTournaments, _ := r.NewOperationContext(http.MethodGet, "/api/tournaments")
	listTournaments.SetSummary("List tournaments")
	listTournaments.SetDescription("Returns summaries of all tournaments, most recently updated first.")
	listTournaments.AddRespStructure([]TournamentSummary{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listTournaments)

	// POST /api/tournaments
	createTournament, _ := r.NewOperationContext(http.MethodPost, "/api/tournaments")
	createTournament.SetSummary("Create tournament")
	createTournament.SetDescription("Creates a tournament. Blank fields fall back to the configured defaults; omitting players seeds the roster from the default player pool.")
	createTournament.AddReqStructure(TournamentRequest{})
	createTournament.AddRespStructure(TournamentRecord{}, openapi.WithHTTPStatus(http.StatusCreated))
	createTournament.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	createTournament.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(createTournament)

	// GET /api/tournaments/{id}
	getTournament, _ := r.NewOperationContext(http.MethodGet, "/api/tournaments/{id}")
	getTournament.SetSummary("Get tournament")
	getTournament.SetDescription("Returns the full tournament record including every round and all scores.")
	getTournament.AddRespStructure(TournamentRecord{}, openapi.WithHTTPStatus(http.StatusOK))
	getTournament.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getTournament)

	// PUT /api/tournaments/{id}/settings
	updateSettings, _ := r.NewOperationContext(http.MethodPut, "/api/tournaments/{id}/settings")
	updateSettings.SetSummary("Update settings")
	updateSettings.SetDescription("Updates tournament metadata (name, courts, schedule). Requires admin_session cookie.")
	updateSettings.AddReqStructure(TournamentRequest{})
	updateSettings.AddRespStructure(TournamentRecord{}, openapi.WithHTTPStatus(http.StatusOK))
	updateSettings.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	updateSettings.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(updateSettings)

	// DELETE /api/tournaments/{id}
	deleteTournament, _ := r.NewOperationContext(http.MethodDelete, "/api/tournaments/{id}")
	deleteTournament.SetSummary("Delete tournament")
	deleteTournament.SetDescription("Deletes a tournament permanently. Requires admin_session cookie.")
	deleteTournament.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	deleteTournament.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	deleteTournament.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(deleteTournament)

	// GET /api/tournaments/{id}/standings
	getStandings, _ := r.NewOperationContext(http.MethodGet, "/api/tournaments/{id}/standings")
	getStandings.SetSummary("Get standings")
	getStandings.SetDescription("Returns the leaderboard ordered by total points, then point differential, then name.")
	getStandings.AddRespStructure([]StandingRow{}, openapi.WithHTTPStatus(http.StatusOK))
	getStandings.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getStandings)

	// GET /api/tournaments/{id}/plan
	getPlan, _ := r.NewOperationContext(http.MethodGet, "/api/tournaments/{id}/plan")
	getPlan.SetSummary("Preview schedule")
	getPlan.SetDescription("Estimates round count and per-player match load for the current roster size.")
	getPlan.AddRespStructure(PlanResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getPlan.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	getPlan.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(getPlan)

	// GET /api/tournaments/{id}/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/tournaments/{id}/events")
	getEvents.SetSummary("SSE event stream")
	getEvents.SetDescription("Server-Sent Events stream for live score and round updates.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	getEvents.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getEvents)

	// POST /api/tournaments/{id}/players
	addPlayer, _ := r.NewOperationContext(http.MethodPost, "/api/tournaments/{id}/players")
	addPlayer.SetSummary("Add player")
	addPlayer.SetDescription("Adds a player to the roster. Names are unique case-insensitively.")
	addPlayer.AddReqStructure(PlayerRequest{})
	addPlayer.AddRespStructure(TournamentRecord{}, openapi.WithHTTPStatus(http.StatusOK))
	addPlayer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	addPlayer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(addPlayer)

	// PUT /api/tournaments/{id}/players/{name}
	renamePlayer, _ := r.NewOperationContext(http.MethodPut, "/api/tournaments/{id}/players/{name}")
	renamePlayer.SetSummary("Rename player")
	renamePlayer.SetDescription("Renames a player. Accumulated points and byes carry over.")
	renamePlayer.AddReqStructure(PlayerRequest{})
	renamePlayer.AddRespStructure(TournamentRecord{}, openapi.WithHTTPStatus(http.StatusOK))
	renamePlayer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	renamePlayer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(renamePlayer)

	// DELETE /api/tournaments/{id}/players/{name}
	removePlayer, _ := r.NewOperationContext(http.MethodDelete, "/api/tournaments/{id}/players/{name}")
	removePlayer.SetSummary("Remove player")
	removePlayer.SetDescription("Removes a player and their counters from the roster.")
	removePlayer.AddRespStructure(TournamentRecord{}, openapi.WithHTTPStatus(http.StatusOK))
	removePlayer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(removePlayer)

	// POST /api/tournaments/{id}/start
	startTournament, _ := r.NewOperationContext(http.MethodPost, "/api/tournaments/{id}/start")
	startTournament.SetSummary("Start tournament")
	startTournament.SetDescription("Generates the randomly paired first round. Requires at least 8 players and an even count.")
	startTournament.AddRespStructure(TournamentRecord{}, openapi.WithHTTPStatus(http.StatusOK))
	startTournament.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	startTournament.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(startTournament)

	// PUT /api/tournaments/{id}/rounds/{round}/matches/{match}/score
	applyScore, _ := r.NewOperationContext(http.MethodPut, "/api/tournaments/{id}/rounds/{round}/matches/{match}/score")
	applyScore.SetSummary("Enter score")
	applyScore.SetDescription("Records one side's points for a live match. Values are clamped to 0..32; the winner is derived when exactly one side reaches 32.")
	applyScore.AddReqStructure(ScoreRequest{})
	applyScore.AddRespStructure(TournamentRecord{}, openapi.WithHTTPStatus(http.StatusOK))
	applyScore.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	applyScore.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	applyScore.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(applyScore)

	// POST /api/tournaments/{id}/rounds/{round}/submit
	submitRound, _ := r.NewOperationContext(http.MethodPost, "/api/tournaments/{id}/rounds/{round}/submit")
	submitRound.SetSummary("Submit round")
	submitRound.SetDescription("Validates every match and credits each player their team's score. All-or-nothing: one invalid match aborts the whole round.")
	submitRound.AddRespStructure(SubmitRoundResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	submitRound.AddRespStructure(ValidationErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	submitRound.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(submitRound)

	// POST /api/tournaments/{id}/rounds/next
	nextRound, _ := r.NewOperationContext(http.MethodPost, "/api/tournaments/{id}/rounds/next")
	nextRound.SetSummary("Generate next round")
	nextRound.SetDescription("Seeds the next round from current standings. The previous round must be submitted.")
	nextRound.AddRespStructure(TournamentRecord{}, openapi.WithHTTPStatus(http.StatusOK))
	nextRound.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	nextRound.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(nextRound)

	// POST /api/tournaments/{id}/reset
	resetTournament, _ := r.NewOperationContext(http.MethodPost, "/api/tournaments/{id}/reset")
	resetTournament.SetSummary("Reset tournament")
	resetTournament.SetDescription("Discards every round and zeroes all counters, keeping the roster. Requires admin_session cookie.")
	resetTournament.AddRespStructure(TournamentRecord{}, openapi.WithHTTPStatus(http.StatusOK))
	resetTournament.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	resetTournament.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(resetTournament)

	// POST /api/admin/login
	postLogin, _ := r.NewOperationContext(http.MethodPost, "/api/admin/login")
	postLogin.SetSummary("Admin login")
	postLogin.SetDescription("Authenticate with email and password. Sets admin_session cookie.")
	postLogin.AddReqStructure(AdminLoginRequest{})
	postLogin.AddRespStructure(AdminMeResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postLogin.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postLogin)

	// POST /api/admin/logout
	postLogout, _ := r.NewOperationContext(http.MethodPost, "/api/admin/logout")
	postLogout.SetSummary("Admin logout")
	postLogout.SetDescription("Clears admin session and cookie.")
	postLogout.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postLogout)

	// GET /api/admin/me
	getMe, _ := r.NewOperationContext(http.MethodGet, "/api/admin/me")
	getMe.SetSummary("Current admin")
	getMe.SetDescription("Returns the currently authenticated admin. Requires admin_session cookie.")
	getMe.AddRespStructure(AdminMeResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getMe.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getMe)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
