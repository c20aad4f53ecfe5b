package mexicano

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// Start begins the tournament: totals and bye counts are zeroed and round 1
// is generated with randomly shuffled pairings. If the roster size requires
// byes they are chosen before the shuffle and counted immediately. The
// roster must be even and hold at least 8 players; on failure the input
// state is returned unchanged.
func (s State) Start(rng *rand.Rand) (State, error) {
	if err := s.checkRoster(); err != nil {
		return s, err
	}

	out := s.clone()
	out.Rounds = nil
	out.Totals = make(map[string]int, len(out.Players))
	out.ByeCounts = make(map[string]int, len(out.Players))
	for _, p := range out.Players {
		out.Totals[p] = 0
		out.ByeCounts[p] = 0
	}

	ranking := out.Ranking()
	byes := out.selectByes(ranking, RequiredByes(len(out.Players)))
	active := make([]string, 0, len(out.Players))
	for _, p := range out.Players {
		if !slices.Contains(byes, p) {
			active = append(active, p)
		}
	}

	for _, p := range byes {
		out.ByeCounts[p]++
	}
	out.Rounds = []Round{{
		Number:          1,
		Matches:         firstRoundMatches(active, rng),
		RankingSnapshot: ranking,
		Byes:            byes,
	}}
	return out, nil
}

// ApplyScore records a raw score entry for one side of a match. The value is
// clamped to [0, Target]; entering Target while the other side already holds
// Target forces the other side down to Target-1, so a live edit can never
// leave both teams at the target. The winner is rederived afterwards.
// Submitted rounds are immutable.
func (s State) ApplyScore(roundIdx, matchIdx int, side Side, raw int) (State, error) {
	if roundIdx < 0 || roundIdx >= len(s.Rounds) {
		return s, ErrNoSuchRound
	}
	if s.Rounds[roundIdx].Submitted {
		return s, ErrRoundSubmitted
	}
	if matchIdx < 0 || matchIdx >= len(s.Rounds[roundIdx].Matches) {
		return s, ErrNoSuchMatch
	}

	out := s.clone()
	m := &out.Rounds[roundIdx].Matches[matchIdx]
	v := clampScore(raw)
	switch side {
	case SideA:
		m.ScoreA = ScoreOf(v)
		if v == Target && m.ScoreB.IsSet() && m.ScoreB.Value() >= Target {
			m.ScoreB = ScoreOf(Target - 1)
		}
	case SideB:
		m.ScoreB = ScoreOf(v)
		if v == Target && m.ScoreA.IsSet() && m.ScoreA.Value() >= Target {
			m.ScoreA = ScoreOf(Target - 1)
		}
	default:
		return s, fmt.Errorf("unknown side %q", side)
	}
	m.reviseWinner()
	return out, nil
}

// SubmitRound settles a fully scored round. Every match is validated first
// and the first violation aborts the whole submission with no mutation. On
// success each player receives their team's final score, the per-player
// split is recorded on the match for audit, totals accumulate and the round
// locks. The returned map holds the per-player deltas of this round.
func (s State) SubmitRound(roundIdx int) (State, map[string]int, error) {
	if roundIdx < 0 || roundIdx >= len(s.Rounds) {
		return s, nil, ErrNoSuchRound
	}
	r := s.Rounds[roundIdx]
	if r.Submitted {
		return s, nil, ErrRoundSubmitted
	}
	for i, m := range r.Matches {
		if err := m.validate(r.Number, i); err != nil {
			return s, nil, err
		}
	}

	out := s.clone()
	round := &out.Rounds[roundIdx]
	deltas := make(map[string]int, 4*len(round.Matches))
	for i := range round.Matches {
		m := &round.Matches[i]
		m.reviseWinner()
		per := map[string]int{
			m.TeamA[0]: m.ScoreA.Value(),
			m.TeamA[1]: m.ScoreA.Value(),
			m.TeamB[0]: m.ScoreB.Value(),
			m.TeamB[1]: m.ScoreB.Value(),
		}
		m.PerPlayerPoints = per
		for p, pts := range per {
			deltas[p] += pts
			out.Totals[p] += pts
		}
	}
	round.Submitted = true
	return out, deltas, nil
}

// NextRound generates the following round from the standings the settled
// rounds produced: recompute the ranking, rotate byes, seed pairings over
// the remaining players and stamp the pre-round ranking snapshot. Refused
// while the latest round is still pending.
func (s State) NextRound() (State, error) {
	if err := s.checkRoster(); err != nil {
		return s, err
	}
	if len(s.Rounds) == 0 {
		return s, ErrNotStarted
	}
	last := s.Rounds[len(s.Rounds)-1]
	if !last.Submitted {
		return s, ErrIncompleteRound
	}

	out := s.clone()
	ranking := out.Ranking()
	byes := out.selectByes(ranking, RequiredByes(len(out.Players)))
	available := make([]string, 0, len(ranking))
	for _, p := range ranking {
		if !slices.Contains(byes, p) {
			available = append(available, p)
		}
	}

	for _, p := range byes {
		out.ByeCounts[p]++
	}
	out.Rounds = append(out.Rounds, Round{
		Number:          last.Number + 1,
		Matches:         seededMatches(available),
		RankingSnapshot: ranking,
		Byes:            byes,
	})
	return out, nil
}

// Reset clears all rounds and zeroes totals and bye counts for the current
// roster. The roster itself is kept.
func (s State) Reset() State {
	out := s.clone()
	out.Rounds = nil
	out.Totals = make(map[string]int, len(out.Players))
	out.ByeCounts = make(map[string]int, len(out.Players))
	for _, p := range out.Players {
		out.Totals[p] = 0
		out.ByeCounts[p] = 0
	}
	return out
}
