package server

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
)

// MemoryStore is a mutex-guarded in-process TournamentStore. It is the test
// backend and a throwaway mode for local runs. Records are copied through
// JSON on the way in and out so callers never share memory with the store.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]TournamentRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]TournamentRecord)}
}

func copyRecord(rec TournamentRecord) TournamentRecord {
	data, _ := json.Marshal(rec)
	var out TournamentRecord
	_ = json.Unmarshal(data, &out)
	return out
}

func (m *MemoryStore) Load(_ context.Context, id string) (TournamentRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[id]
	if !ok {
		return TournamentRecord{}, ErrNotFound
	}
	return copyRecord(rec), nil
}

func (m *MemoryStore) Save(_ context.Context, rec TournamentRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stamp(&rec)
	m.records[rec.ID] = copyRecord(rec)
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return ErrNotFound
	}
	delete(m.records, id)
	return nil
}

func (m *MemoryStore) List(_ context.Context) ([]TournamentSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]TournamentSummary, 0, len(m.records))
	for _, rec := range m.records {
		out = append(out, rec.Summary())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt > out[j].UpdatedAt })
	return out, nil
}
