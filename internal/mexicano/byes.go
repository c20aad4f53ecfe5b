package mexicano

import (
	"cmp"
	"slices"
)

// RequiredByes returns how many players must sit out so the remaining pool
// is divisible by four. Player counts are validated even and at least 8
// upstream, so the remainder is never 1 or 3.
func RequiredByes(n int) int {
	if n%4 == 2 {
		return 2
	}
	return 0
}

// selectByes picks count players to rest this round. Rotation is kept fair
// by resting, in order of priority: players who have played the most
// matches, then those who have rested the fewest times, then the
// worse-ranked, with the name as the final deterministic tie-break.
func (s State) selectByes(ranking []string, count int) []string {
	if count <= 0 {
		return nil
	}
	played := s.matchCounts()
	pos := make(map[string]int, len(ranking))
	for i, p := range ranking {
		pos[p] = i
	}

	col := newCollator()
	cand := slices.Clone(ranking)
	slices.SortStableFunc(cand, func(a, b string) int {
		if d := cmp.Compare(played[b], played[a]); d != 0 {
			return d
		}
		if d := cmp.Compare(s.ByeCounts[a], s.ByeCounts[b]); d != 0 {
			return d
		}
		if d := cmp.Compare(pos[b], pos[a]); d != 0 {
			return d
		}
		return col.CompareString(a, b)
	})
	return cand[:count:count]
}
