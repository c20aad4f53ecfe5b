// Package mexicano implements the round generation and scoring engine for a
// Mexicano-format padel tournament: fair bye rotation, rank-seeded pairings,
// race-to-32 score validation and cumulative standings.
//
// The engine is pure: every operation takes a State value and returns a new
// one, leaving the input untouched. Callers persist the result at commit
// points; the engine itself performs no I/O.
package mexicano

import (
	"maps"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Target is the race-to score: a match ends when one team reaches it.
const Target = 32

// Side identifies one of the two teams in a match.
type Side string

const (
	SideA Side = "A"
	SideB Side = "B"
)

// Winner is the derived outcome of a match. Empty until one side holds
// exactly Target and the other is below it.
type Winner string

const (
	WinnerA    Winner = "A"
	WinnerB    Winner = "B"
	WinnerNone Winner = ""
)

// Match is a 2v2 pairing. Team order is preserved for display; the pair
// itself is unordered. PerPlayerPoints is filled in at round settlement.
type Match struct {
	TeamA           [2]string      `json:"teamA"`
	TeamB           [2]string      `json:"teamB"`
	ScoreA          Score          `json:"scoreA"`
	ScoreB          Score          `json:"scoreB"`
	Winner          Winner         `json:"winner,omitempty"`
	PerPlayerPoints map[string]int `json:"perPlayerPoints,omitempty"`
}

// HasPlayer reports whether name plays in this match on either team.
func (m Match) HasPlayer(name string) bool {
	return m.TeamA[0] == name || m.TeamA[1] == name ||
		m.TeamB[0] == name || m.TeamB[1] == name
}

// reviseWinner rederives the winner from the current scores. The winner is
// set only when both scores are present and exactly one side holds Target.
func (m *Match) reviseWinner() {
	m.Winner = WinnerNone
	if !m.ScoreA.IsSet() || !m.ScoreB.IsSet() {
		return
	}
	a, b := m.ScoreA.Value(), m.ScoreB.Value()
	switch {
	case a == Target && b < Target:
		m.Winner = WinnerA
	case b == Target && a < Target:
		m.Winner = WinnerB
	}
}

// Round is one generation of matches. RankingSnapshot holds the standings as
// they were when the round was created, best first; it never changes
// afterwards and is what the seeded pairing of the next round derives from.
type Round struct {
	Number          int      `json:"number"`
	Matches         []Match  `json:"matches"`
	RankingSnapshot []string `json:"rankingSnapshot"`
	Byes            []string `json:"byes"`
	Submitted       bool     `json:"submitted"`
}

func (r Round) clone() Round {
	out := r
	out.Matches = make([]Match, len(r.Matches))
	for i, m := range r.Matches {
		m.PerPlayerPoints = maps.Clone(m.PerPlayerPoints)
		out.Matches[i] = m
	}
	out.RankingSnapshot = slices.Clone(r.RankingSnapshot)
	out.Byes = slices.Clone(r.Byes)
	return out
}

// State is the tournament aggregate: the roster, all rounds, cumulative
// totals and how often each player has sat out.
type State struct {
	Players   []string       `json:"players"`
	Rounds    []Round        `json:"rounds"`
	Totals    map[string]int `json:"totals"`
	ByeCounts map[string]int `json:"byeCounts"`
}

// NewState returns an empty tournament over the given roster.
func NewState(players []string) State {
	s := State{
		Players:   slices.Clone(players),
		Totals:    make(map[string]int, len(players)),
		ByeCounts: make(map[string]int, len(players)),
	}
	for _, p := range s.Players {
		s.Totals[p] = 0
		s.ByeCounts[p] = 0
	}
	return s
}

// Started reports whether round 1 has been generated.
func (s State) Started() bool { return len(s.Rounds) > 0 }

// CurrentRound returns the number of the latest round, 0 if none.
func (s State) CurrentRound() int {
	if len(s.Rounds) == 0 {
		return 0
	}
	return s.Rounds[len(s.Rounds)-1].Number
}

func (s State) clone() State {
	out := State{
		Players:   slices.Clone(s.Players),
		Rounds:    make([]Round, len(s.Rounds)),
		Totals:    make(map[string]int, len(s.Totals)),
		ByeCounts: make(map[string]int, len(s.ByeCounts)),
	}
	for i, r := range s.Rounds {
		out.Rounds[i] = r.clone()
	}
	maps.Copy(out.Totals, s.Totals)
	maps.Copy(out.ByeCounts, s.ByeCounts)
	return out
}

func (s State) checkRoster() error {
	if len(s.Players) < 8 {
		return ErrInsufficientPlayers
	}
	if len(s.Players)%2 != 0 {
		return ErrOddPlayerCount
	}
	return nil
}

// Player names compare under Turkish collation, case-insensitively, so
// "ILGAZ" and "ılgaz" refer to the same player. Collators are not safe for
// concurrent use, hence one per call.
func newCollator() *collate.Collator {
	return collate.New(language.Turkish, collate.IgnoreCase)
}

// indexOf returns the roster position of name, -1 if absent.
func (s State) indexOf(name string) int {
	col := newCollator()
	for i, p := range s.Players {
		if col.CompareString(p, name) == 0 {
			return i
		}
	}
	return -1
}
