package mexicano

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRNG() *rand.Rand { return rand.New(rand.NewPCG(42, 1)) }

func eightPlayers() []string {
	return []string{"Ahmet", "Batuhan", "Berk", "Deniz", "Emre", "Hulusi", "Mesut", "Okan"}
}

func TestStartRejectsBadRosters(t *testing.T) {
	tests := []struct {
		name    string
		players []string
		wantErr error
	}{
		{"too few", rankedPlayers(6), ErrInsufficientPlayers},
		{"seven", rankedPlayers(7), ErrInsufficientPlayers},
		{"odd", rankedPlayers(9), ErrOddPlayerCount},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState(tc.players)
			got, err := s.Start(testRNG())
			require.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, s, got, "failed start must not mutate state")
		})
	}
}

func TestStartGeneratesRandomFirstRound(t *testing.T) {
	s, err := NewState(eightPlayers()).Start(testRNG())
	require.NoError(t, err)

	require.Len(t, s.Rounds, 1)
	r := s.Rounds[0]
	assert.Equal(t, 1, r.Number)
	assert.False(t, r.Submitted)
	assert.Empty(t, r.Byes)
	require.Len(t, r.Matches, 2)
	assert.Len(t, r.RankingSnapshot, 8)

	seen := make(map[string]bool)
	for _, m := range r.Matches {
		for _, p := range []string{m.TeamA[0], m.TeamA[1], m.TeamB[0], m.TeamB[1]} {
			assert.False(t, seen[p], "player %s appears twice", p)
			seen[p] = true
		}
	}
	assert.Len(t, seen, 8)

	for _, p := range s.Players {
		assert.Zero(t, s.Totals[p])
		assert.Zero(t, s.ByeCounts[p])
	}
}

func TestStartWithTenPlayersAssignsTwoByes(t *testing.T) {
	players := append(eightPlayers(), "Sercan", "Sezgin")
	s, err := NewState(players).Start(testRNG())
	require.NoError(t, err)

	r := s.Rounds[0]
	require.Len(t, r.Byes, 2)
	require.Len(t, r.Matches, 2)
	for _, bye := range r.Byes {
		assert.Equal(t, 1, s.ByeCounts[bye])
		for _, m := range r.Matches {
			assert.False(t, m.HasPlayer(bye), "bye %s must not play", bye)
		}
	}
}

func TestApplyScoreClampsAndDerivesWinner(t *testing.T) {
	s, err := NewState(eightPlayers()).Start(testRNG())
	require.NoError(t, err)

	s, err = s.ApplyScore(0, 0, SideA, 50)
	require.NoError(t, err)
	assert.Equal(t, Target, s.Rounds[0].Matches[0].ScoreA.Value())
	assert.Equal(t, WinnerNone, s.Rounds[0].Matches[0].Winner, "winner needs both scores")

	s, err = s.ApplyScore(0, 0, SideB, -3)
	require.NoError(t, err)
	m := s.Rounds[0].Matches[0]
	assert.Equal(t, 0, m.ScoreB.Value())
	assert.True(t, m.ScoreB.IsSet())
	assert.Equal(t, WinnerA, m.Winner)
}

func TestApplyScoreResolvesDoubleTargetLiveEdit(t *testing.T) {
	s, err := NewState(eightPlayers()).Start(testRNG())
	require.NoError(t, err)

	s, err = s.ApplyScore(0, 0, SideA, Target)
	require.NoError(t, err)
	s, err = s.ApplyScore(0, 0, SideB, Target)
	require.NoError(t, err)

	// Entering 32 for B while A already holds 32 pushes A down to 31.
	m := s.Rounds[0].Matches[0]
	assert.Equal(t, Target-1, m.ScoreA.Value())
	assert.Equal(t, Target, m.ScoreB.Value())
	assert.Equal(t, WinnerB, m.Winner)
}

func TestApplyScoreRejectsBadIndices(t *testing.T) {
	s, err := NewState(eightPlayers()).Start(testRNG())
	require.NoError(t, err)

	_, err = s.ApplyScore(5, 0, SideA, 10)
	assert.ErrorIs(t, err, ErrNoSuchRound)
	_, err = s.ApplyScore(0, 9, SideA, 10)
	assert.ErrorIs(t, err, ErrNoSuchMatch)
}

func scoreRound(t *testing.T, s State, roundIdx int, scores [][2]int) State {
	t.Helper()
	for i, sc := range scores {
		var err error
		s, err = s.ApplyScore(roundIdx, i, SideA, sc[0])
		require.NoError(t, err)
		s, err = s.ApplyScore(roundIdx, i, SideB, sc[1])
		require.NoError(t, err)
	}
	return s
}

func TestSubmitRoundSettlesTotals(t *testing.T) {
	s, err := NewState(eightPlayers()).Start(testRNG())
	require.NoError(t, err)
	s = scoreRound(t, s, 0, [][2]int{{32, 20}, {32, 15}})

	s, deltas, err := s.SubmitRound(0)
	require.NoError(t, err)
	require.True(t, s.Rounds[0].Submitted)

	// Conservation: each participant gains exactly their team's final score.
	for _, m := range s.Rounds[0].Matches {
		for _, p := range m.TeamA {
			assert.Equal(t, m.ScoreA.Value(), s.Totals[p], "player %s", p)
			assert.Equal(t, m.ScoreA.Value(), deltas[p])
			assert.Equal(t, m.ScoreA.Value(), m.PerPlayerPoints[p])
		}
		for _, p := range m.TeamB {
			assert.Equal(t, m.ScoreB.Value(), s.Totals[p], "player %s", p)
			assert.Equal(t, m.ScoreB.Value(), deltas[p])
			assert.Equal(t, m.ScoreB.Value(), m.PerPlayerPoints[p])
		}
	}

	total := 0
	for _, v := range s.Totals {
		total += v
	}
	assert.Equal(t, (32+20)*2+(32+15)*2, total)
}

func TestSubmitRoundRejectsDoubleWinner(t *testing.T) {
	s, err := NewState(eightPlayers()).Start(testRNG())
	require.NoError(t, err)

	// Bypass the live-edit guard to simulate a double-target state written
	// by another client.
	s.Rounds[0].Matches[0].ScoreA = ScoreOf(32)
	s.Rounds[0].Matches[0].ScoreB = ScoreOf(32)
	s.Rounds[0].Matches[1].ScoreA = ScoreOf(32)
	s.Rounds[0].Matches[1].ScoreB = ScoreOf(10)

	_, _, err = s.SubmitRound(0)
	var verr *MatchValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, DoubleWinner, verr.Kind)
	assert.Equal(t, 0, verr.Match)

	for _, p := range s.Players {
		assert.Zero(t, s.Totals[p], "totals must stay untouched")
	}
	assert.False(t, s.Rounds[0].Submitted)
}

func TestSubmitRoundRejectsMissingScore(t *testing.T) {
	s, err := NewState(eightPlayers()).Start(testRNG())
	require.NoError(t, err)
	s, err = s.ApplyScore(0, 0, SideA, 32)
	require.NoError(t, err)
	s, err = s.ApplyScore(0, 0, SideB, 20)
	require.NoError(t, err)
	s, err = s.ApplyScore(0, 1, SideA, 32)
	require.NoError(t, err)
	// Match 1 never receives scoreB.

	_, _, err = s.SubmitRound(0)
	var verr *MatchValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, MissingScore, verr.Kind)
	assert.Equal(t, 1, verr.Match)

	assert.Equal(t, WinnerNone, s.Rounds[0].Matches[1].Winner)
	for _, p := range s.Players {
		assert.Zero(t, s.Totals[p])
	}
}

func TestSubmitRoundRejectsNoWinner(t *testing.T) {
	s, err := NewState(eightPlayers()).Start(testRNG())
	require.NoError(t, err)
	s = scoreRound(t, s, 0, [][2]int{{30, 20}, {32, 15}})

	_, _, err = s.SubmitRound(0)
	var verr *MatchValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, NoWinner, verr.Kind)
}

func TestSubmittedRoundIsImmutable(t *testing.T) {
	s, err := NewState(eightPlayers()).Start(testRNG())
	require.NoError(t, err)
	s = scoreRound(t, s, 0, [][2]int{{32, 20}, {32, 15}})
	s, _, err = s.SubmitRound(0)
	require.NoError(t, err)

	_, err = s.ApplyScore(0, 0, SideA, 10)
	assert.ErrorIs(t, err, ErrRoundSubmitted)
	_, _, err = s.SubmitRound(0)
	assert.ErrorIs(t, err, ErrRoundSubmitted)
}

func TestNextRoundSeedsFromUpdatedStandings(t *testing.T) {
	s, err := NewState(eightPlayers()).Start(testRNG())
	require.NoError(t, err)
	s = scoreRound(t, s, 0, [][2]int{{32, 20}, {32, 15}})
	s, _, err = s.SubmitRound(0)
	require.NoError(t, err)

	s, err = s.NextRound()
	require.NoError(t, err)

	require.Len(t, s.Rounds, 2)
	r2 := s.Rounds[1]
	assert.Equal(t, 2, r2.Number)
	assert.Empty(t, r2.Byes)
	require.Len(t, r2.Matches, 2)
	assert.False(t, r2.Submitted)

	// The snapshot is the post-round-1 ranking: totals descending, then
	// average, then name.
	snapshot := r2.RankingSnapshot
	require.Len(t, snapshot, 8)
	assert.Equal(t, s.Ranking(), snapshot)
	for i := 1; i < len(snapshot); i++ {
		prev, cur := snapshot[i-1], snapshot[i]
		assert.GreaterOrEqual(t, s.Totals[prev], s.Totals[cur])
	}

	// Seeded pairing over the snapshot: (1&8) vs (2&7), (3&6) vs (4&5).
	assert.Equal(t, [2]string{snapshot[0], snapshot[7]}, r2.Matches[0].TeamA)
	assert.Equal(t, [2]string{snapshot[1], snapshot[6]}, r2.Matches[0].TeamB)
	assert.Equal(t, [2]string{snapshot[2], snapshot[5]}, r2.Matches[1].TeamA)
	assert.Equal(t, [2]string{snapshot[3], snapshot[4]}, r2.Matches[1].TeamB)
}

func TestNextRoundRequiresSubmittedRound(t *testing.T) {
	s := NewState(eightPlayers())
	_, err := s.NextRound()
	assert.ErrorIs(t, err, ErrNotStarted)

	s, err = s.Start(testRNG())
	require.NoError(t, err)
	_, err = s.NextRound()
	assert.ErrorIs(t, err, ErrIncompleteRound)
}

func TestResetClearsRoundsAndCounters(t *testing.T) {
	s, err := NewState(eightPlayers()).Start(testRNG())
	require.NoError(t, err)
	s = scoreRound(t, s, 0, [][2]int{{32, 20}, {32, 15}})
	s, _, err = s.SubmitRound(0)
	require.NoError(t, err)

	s = s.Reset()
	assert.Empty(t, s.Rounds)
	assert.Len(t, s.Players, 8)
	for _, p := range s.Players {
		assert.Zero(t, s.Totals[p])
		assert.Zero(t, s.ByeCounts[p])
	}
}
