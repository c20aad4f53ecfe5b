package mexicano

// Plan is a suggested tournament length for a roster size: enough rounds for
// everyone to get a comparable number of matches.
type Plan struct {
	Rounds           int `json:"rounds"`
	MatchesPerPlayer int `json:"matchesPerPlayer"`
	ByesPerRound     int `json:"byesPerRound"`
}

// PlanRounds estimates the round count for n players. With no byes the
// suggestion is max(6, floor(0.75n)); with byes, ceil(0.6n), since each
// player misses a share of the rounds.
func PlanRounds(n int) (Plan, error) {
	if n < 8 {
		return Plan{}, ErrInsufficientPlayers
	}
	if n%2 != 0 {
		return Plan{}, ErrOddPlayerCount
	}

	byes := RequiredByes(n)
	var rounds int
	if byes == 0 {
		rounds = max(6, n*3/4)
	} else {
		rounds = (n*3 + 4) / 5 // ceil(0.6n)
	}
	return Plan{
		Rounds:           rounds,
		MatchesPerPlayer: rounds * 4 / n,
		ByesPerRound:     byes,
	}, nil
}
