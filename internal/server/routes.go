package server

import (
	"database/sql"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"
)

func addRoutes(r chi.Router, logger *slog.Logger, store TournamentStore, admin AdminStore, adminDB *sql.DB, defaults Defaults, spaDir string) {
	broker := NewBroker()

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Mexicano API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, adminDB))

	r.Route("/api/tournaments", func(r chi.Router) {
		r.Get("/", handleListTournaments(store))
		r.Post("/", handleCreateTournament(store, defaults))
		r.Get("/{id}", handleGetTournament(store))
		r.Get("/{id}/standings", handleStandings(store))
		r.Get("/{id}/plan", handlePlan(store))
		r.Get("/{id}/events", handleEvents(store, broker))

		// Courtside flow: anyone at the venue can enter scores and advance
		// rounds, mirroring how the group actually runs an evening.
		r.Post("/{id}/players", handleAddPlayer(store, broker))
		r.Put("/{id}/players/{name}", handleRenamePlayer(store, broker))
		r.Delete("/{id}/players/{name}", handleRemovePlayer(store, broker))
		r.Post("/{id}/start", handleStartTournament(store, broker))
		r.Put("/{id}/rounds/{round}/matches/{match}/score", handleApplyScore(store, broker))
		r.Post("/{id}/rounds/{round}/submit", handleSubmitRound(store, broker))
		r.Post("/{id}/rounds/next", handleNextRound(store, broker))

		// Destructive operations require an organizer session.
		r.Group(func(r chi.Router) {
			r.Use(adminAuthMiddleware(admin))
			r.Put("/{id}/settings", handleUpdateSettings(store, broker))
			r.Post("/{id}/reset", handleResetTournament(store, broker))
			r.Delete("/{id}", handleDeleteTournament(store))
		})
	})

	r.Post("/api/admin/login", handleAdminLogin(admin))
	r.Post("/api/admin/logout", handleAdminLogout(admin))
	r.Group(func(r chi.Router) {
		r.Use(adminAuthMiddleware(admin))
		r.Get("/api/admin/me", handleAdminMe())
	})

	if spaDir != "" {
		if info, err := os.Stat(spaDir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", spaDir)
			r.NotFound(handleSPA(spaDir))
		}
	}
}
