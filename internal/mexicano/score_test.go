package mexicano

import (
	"encoding/json"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreJSONRoundTrip(t *testing.T) {
	m := Match{
		TeamA:  [2]string{"Ahmet", "Berk"},
		TeamB:  [2]string{"Deniz", "Emre"},
		ScoreA: ScoreOf(0),
	}
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"scoreA":0`)
	assert.Contains(t, string(data), `"scoreB":null`)

	var got Match
	require.NoError(t, json.Unmarshal(data, &got))
	assert.True(t, got.ScoreA.IsSet())
	assert.Equal(t, 0, got.ScoreA.Value())
	assert.False(t, got.ScoreB.IsSet(), "null must stay distinct from zero")
}

// Any pair of entries applied through ApplyScore validates unless it breaks
// the race-to-target rule, i.e. unless neither side ended on the target.
func TestAppliedScoresAlwaysValidateOrLackWinner(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))

	for range 500 {
		s, err := NewState(eightPlayers()).Start(testRNG())
		require.NoError(t, err)

		a, b := rng.IntN(40)-2, rng.IntN(40)-2
		s, err = s.ApplyScore(0, 0, SideA, a)
		require.NoError(t, err)
		s, err = s.ApplyScore(0, 0, SideB, b)
		require.NoError(t, err)

		m := s.Rounds[0].Matches[0]
		err = m.validate(1, 0)
		if m.ScoreA.Value() == Target || m.ScoreB.Value() == Target {
			assert.NoError(t, err, "a=%d b=%d", a, b)
			assert.NotEqual(t, WinnerNone, m.Winner)
		} else {
			var verr *MatchValidationError
			require.ErrorAs(t, err, &verr, "a=%d b=%d", a, b)
			assert.Equal(t, NoWinner, verr.Kind)
		}
	}
}

func TestPlanRounds(t *testing.T) {
	plan, err := PlanRounds(8)
	require.NoError(t, err)
	assert.Equal(t, 6, plan.Rounds)
	assert.Equal(t, 0, plan.ByesPerRound)
	assert.Equal(t, 3, plan.MatchesPerPlayer)

	plan, err = PlanRounds(10)
	require.NoError(t, err)
	assert.Equal(t, 6, plan.Rounds) // ceil(0.6*10)
	assert.Equal(t, 2, plan.ByesPerRound)

	plan, err = PlanRounds(12)
	require.NoError(t, err)
	assert.Equal(t, 9, plan.Rounds)

	_, err = PlanRounds(6)
	assert.ErrorIs(t, err, ErrInsufficientPlayers)
	_, err = PlanRounds(9)
	assert.ErrorIs(t, err, ErrOddPlayerCount)
}
