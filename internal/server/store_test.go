package server

import (
	"context"
	"errors"
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/padelmx/mexicano/internal/database"
	"github.com/padelmx/mexicano/internal/migrations"
	"github.com/padelmx/mexicano/internal/mexicano"
)

func testStores(t *testing.T) map[string]TournamentStore {
	t.Helper()

	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := migrations.Run(db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}

	return map[string]TournamentStore{
		"memory": NewMemoryStore(),
		"sqlite": NewSQLiteStore(db),
	}
}

// startedRecord builds a record with a live round and a few scores so the
// round trip exercises the whole state shape, optional scores included.
func startedRecord(t *testing.T, id string) TournamentRecord {
	t.Helper()

	state := mexicano.NewState([]string{"Ahmet", "Berk", "Deniz", "Emre", "Hulusi", "Mesut", "Okan", "Sercan"})
	state, err := state.Start(rand.New(rand.NewPCG(1, 2)))
	if err != nil {
		t.Fatalf("starting tournament: %v", err)
	}
	state, err = state.ApplyScore(0, 0, mexicano.SideA, 32)
	if err != nil {
		t.Fatalf("applying score: %v", err)
	}

	return TournamentRecord{
		ID:         id,
		Name:       "Friday Night",
		CourtCount: 2,
		Location:   "Arena",
		State:      state,
	}
}

func TestStoreRoundTrip(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			want := startedRecord(t, "friday")

			if err := store.Save(ctx, want); err != nil {
				t.Fatalf("save: %v", err)
			}

			got, err := store.Load(ctx, "friday")
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if got.CreatedAt == "" || got.UpdatedAt == "" {
				t.Error("expected timestamps to be set on save")
			}
			if got.Name != want.Name || got.CourtCount != want.CourtCount || got.Location != want.Location {
				t.Errorf("metadata mismatch: %+v", got)
			}
			if !reflect.DeepEqual(got.State, want.State) {
				t.Errorf("state mismatch after round trip")
			}
			if !got.State.Rounds[0].Matches[0].ScoreA.IsSet() {
				t.Error("applied score lost in round trip")
			}
			if got.State.Rounds[0].Matches[0].ScoreB.IsSet() {
				t.Error("unset score must stay unset")
			}
		})
	}
}

func TestStoreLoadMissing(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Load(context.Background(), "nope")
			if !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
		})
	}
}

func TestStoreDelete(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if err := store.Save(ctx, startedRecord(t, "friday")); err != nil {
				t.Fatalf("save: %v", err)
			}
			if err := store.Delete(ctx, "friday"); err != nil {
				t.Fatalf("delete: %v", err)
			}
			if _, err := store.Load(ctx, "friday"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound after delete, got %v", err)
			}
			if err := store.Delete(ctx, "friday"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound on double delete, got %v", err)
			}
		})
	}
}

func TestStoreListSummaries(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if err := store.Save(ctx, startedRecord(t, "one")); err != nil {
				t.Fatalf("save: %v", err)
			}
			if err := store.Save(ctx, startedRecord(t, "two")); err != nil {
				t.Fatalf("save: %v", err)
			}

			summaries, err := store.List(ctx)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(summaries) != 2 {
				t.Fatalf("summaries = %d, want 2", len(summaries))
			}
			for _, s := range summaries {
				if !s.Started || s.PlayerCount != 8 || s.CurrentRound != 1 {
					t.Errorf("unexpected summary %+v", s)
				}
			}
		})
	}
}

func TestMemoryStoreCopiesRecords(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	rec := startedRecord(t, "friday")
	if err := store.Save(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Mutating the caller's copy after Save must not leak into the store.
	rec.State.Totals["Ahmet"] = 999

	got, err := store.Load(ctx, "friday")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.State.Totals["Ahmet"] == 999 {
		t.Error("store shares memory with caller")
	}
}
