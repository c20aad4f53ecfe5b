package server

import (
	"context"
	"errors"
	"time"

	"github.com/padelmx/mexicano/internal/mexicano"
)

var ErrNotFound = errors.New("not found")

// TournamentRecord is the persisted aggregate: the engine state plus the
// metadata the core does not care about (name, courts, day planning). It is
// the unit of load/save for every backend.
type TournamentRecord struct {
	ID              string         `json:"id"`
	Name            string         `json:"name,omitempty"`
	CourtCount      int            `json:"courtCount"`
	Days            int            `json:"days,omitempty"`
	EstimatedRounds int            `json:"estimatedRounds,omitempty"`
	Location        string         `json:"location,omitempty"`
	StartDate       string         `json:"startDate,omitempty"`
	EndDate         string         `json:"endDate,omitempty"`
	PlayerPool      []string       `json:"playerPool,omitempty"`
	State           mexicano.State `json:"state"`
	CreatedAt       string         `json:"createdAt"`
	UpdatedAt       string         `json:"updatedAt"`
}

// TournamentSummary is the dashboard view of a record.
type TournamentSummary struct {
	ID              string `json:"id"`
	Name            string `json:"name,omitempty"`
	PlayerCount     int    `json:"playerCount"`
	Started         bool   `json:"tournamentStarted"`
	CurrentRound    int    `json:"currentRound"`
	EstimatedRounds int    `json:"estimatedRounds,omitempty"`
	Days            int    `json:"days,omitempty"`
	Location        string `json:"location,omitempty"`
	CourtCount      int    `json:"courtCount"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

func (r TournamentRecord) Summary() TournamentSummary {
	return TournamentSummary{
		ID:              r.ID,
		Name:            r.Name,
		PlayerCount:     len(r.State.Players),
		Started:         r.State.Started(),
		CurrentRound:    r.State.CurrentRound(),
		EstimatedRounds: r.EstimatedRounds,
		Days:            r.Days,
		Location:        r.Location,
		CourtCount:      r.CourtCount,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// TournamentStore is the persistence collaborator. Implementations must
// serialize concurrent writers themselves (last write wins is acceptable);
// the engine never calls a store directly.
type TournamentStore interface {
	Load(ctx context.Context, id string) (TournamentRecord, error)
	Save(ctx context.Context, rec TournamentRecord) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]TournamentSummary, error)
}

func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// stamp fills the record timestamps before a save.
func stamp(rec *TournamentRecord) {
	now := nowUTC()
	if rec.CreatedAt == "" {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now
}
