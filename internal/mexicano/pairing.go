package mexicano

import (
	"math/rand/v2"
	"slices"
)

// firstRoundMatches forms round-1 matches from a uniform shuffle of the
// active players: consecutive pairs become teams, consecutive teams become
// matches. The caller supplies the randomness source so tests can fix it.
func firstRoundMatches(active []string, rng *rand.Rand) []Match {
	shuffled := slices.Clone(active)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	matches := make([]Match, 0, len(shuffled)/4)
	for i := 0; i+3 < len(shuffled); i += 4 {
		matches = append(matches, Match{
			TeamA: [2]string{shuffled[i], shuffled[i+1]},
			TeamB: [2]string{shuffled[i+2], shuffled[i+3]},
		})
	}
	return matches
}

// seededMatches pairs the available players, given best to worst: match i is
// (rank 2i & rank n-1-2i) against (rank 2i+1 & rank n-2-2i). Each team
// combines a high performer with a low one, which balances team strength and
// shakes the standings up round to round. Nothing prevents the same four
// players from meeting again in a later round at small n; that is accepted.
func seededMatches(available []string) []Match {
	n := len(available)
	matches := make([]Match, 0, n/4)
	for i := 0; i < n/4; i++ {
		hi, lo := 2*i, n-1-2*i
		matches = append(matches, Match{
			TeamA: [2]string{available[hi], available[lo]},
			TeamB: [2]string{available[hi+1], available[lo-1]},
		})
	}
	return matches
}
