package mexicano

import (
	"cmp"
	"slices"
)

// Ranking returns the current standings, best first. Players sort by
// cumulative total descending, then point differential ("average")
// descending, then name ascending under Turkish collation. Names are unique
// within a tournament, so the order is total and the function deterministic.
func (s State) Ranking() []string {
	avg := s.averages()
	col := newCollator()
	out := slices.Clone(s.Players)
	slices.SortStableFunc(out, func(a, b string) int {
		if d := cmp.Compare(s.Totals[b], s.Totals[a]); d != 0 {
			return d
		}
		if d := cmp.Compare(avg[b], avg[a]); d != 0 {
			return d
		}
		return col.CompareString(a, b)
	})
	return out
}

// Average is the player's point differential: points their teams scored
// minus points conceded, over all submitted matches.
func (s State) Average(player string) int {
	return s.averages()[player]
}

// MatchesPlayed counts the submitted matches the player took part in.
func (s State) MatchesPlayed(player string) int {
	return s.matchCounts()[player]
}

func (s State) averages() map[string]int {
	avg := make(map[string]int, len(s.Players))
	for _, r := range s.Rounds {
		if !r.Submitted {
			continue
		}
		for _, m := range r.Matches {
			diff := m.ScoreA.Value() - m.ScoreB.Value()
			for _, p := range m.TeamA {
				avg[p] += diff
			}
			for _, p := range m.TeamB {
				avg[p] -= diff
			}
		}
	}
	return avg
}

func (s State) matchCounts() map[string]int {
	counts := make(map[string]int, len(s.Players))
	for _, r := range s.Rounds {
		if !r.Submitted {
			continue
		}
		for _, m := range r.Matches {
			for _, p := range m.TeamA {
				counts[p]++
			}
			for _, p := range m.TeamB {
				counts[p]++
			}
		}
	}
	return counts
}
