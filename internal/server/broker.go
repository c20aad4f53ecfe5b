package server

import (
	"encoding/json"
	"sync"
)

// Event is the payload published to tournament subscribers.
type Event struct {
	Type  string `json:"type"`
	Round int    `json:"round,omitempty"`
	Match int    `json:"match,omitempty"`
}

const (
	eventScoreUpdated    = "score_updated"
	eventRoundSubmitted  = "round_submitted"
	eventRoundCreated    = "round_created"
	eventRosterChanged   = "roster_changed"
	eventSettingsUpdated = "settings_updated"
	eventReset           = "tournament_reset"
)

// Broker is an in-process pub/sub for SSE events, keyed by tournament ID.
type Broker struct {
	mu   sync.RWMutex
	subs map[string]map[chan []byte]struct{}
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[string]map[chan []byte]struct{}),
	}
}

// Subscribe returns a channel that receives JSON-encoded events for the given tournament.
func (b *Broker) Subscribe(tournamentID string) chan []byte {
	ch := make(chan []byte, 16)
	b.mu.Lock()
	if b.subs[tournamentID] == nil {
		b.subs[tournamentID] = make(map[chan []byte]struct{})
	}
	b.subs[tournamentID][ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a channel from the tournament's subscribers.
func (b *Broker) Unsubscribe(tournamentID string, ch chan []byte) {
	b.mu.Lock()
	delete(b.subs[tournamentID], ch)
	if len(b.subs[tournamentID]) == 0 {
		delete(b.subs, tournamentID)
	}
	b.mu.Unlock()
}

// Publish sends an event to all subscribers of the given tournament.
func (b *Broker) Publish(tournamentID string, event Event) {
	data, _ := json.Marshal(event)
	b.mu.RLock()
	for ch := range b.subs[tournamentID] {
		select {
		case ch <- data:
		default:
			// Drop if subscriber is slow.
		}
	}
	b.mu.RUnlock()
}
