package mexicano

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankingOrdersByTotalsDescending(t *testing.T) {
	s := NewState([]string{"Ahmet", "Berk", "Deniz", "Emre"})
	s.Totals["Ahmet"] = 10
	s.Totals["Berk"] = 40
	s.Totals["Deniz"] = 25
	s.Totals["Emre"] = 32

	assert.Equal(t, []string{"Berk", "Emre", "Deniz", "Ahmet"}, s.Ranking())
}

func TestRankingBreaksTiesByAverage(t *testing.T) {
	s := NewState([]string{"Ahmet", "Berk", "Deniz", "Emre", "Hulusi", "Mesut", "Okan", "Sercan"})
	s.Rounds = []Round{{
		Number: 1,
		Matches: []Match{
			{
				TeamA:  [2]string{"Ahmet", "Berk"},
				TeamB:  [2]string{"Deniz", "Emre"},
				ScoreA: ScoreOf(32),
				ScoreB: ScoreOf(20),
			},
			{
				TeamA:  [2]string{"Hulusi", "Mesut"},
				TeamB:  [2]string{"Okan", "Sercan"},
				ScoreA: ScoreOf(32),
				ScoreB: ScoreOf(10),
			},
		},
		Submitted: true,
	}}
	for _, p := range []string{"Ahmet", "Berk", "Hulusi", "Mesut"} {
		s.Totals[p] = 32
	}
	s.Totals["Deniz"] = 20
	s.Totals["Emre"] = 20
	s.Totals["Okan"] = 10
	s.Totals["Sercan"] = 10

	got := s.Ranking()
	// Hulusi and Mesut won by a wider margin, so their average (+22) beats
	// Ahmet's and Berk's (+12) on equal totals.
	assert.Equal(t, []string{"Hulusi", "Mesut", "Ahmet", "Berk", "Deniz", "Emre", "Okan", "Sercan"}, got)

	assert.Equal(t, 22, s.Average("Hulusi"))
	assert.Equal(t, 12, s.Average("Ahmet"))
	assert.Equal(t, -12, s.Average("Deniz"))
	assert.Equal(t, -22, s.Average("Sercan"))
}

func TestRankingNameTieBreakUsesTurkishCollation(t *testing.T) {
	// All totals and averages are zero, so only names decide. In the Turkish
	// alphabet Ç sorts between C and D; a plain byte comparison would put
	// Çetin last.
	s := NewState([]string{"Deniz", "Çetin", "Cem"})
	assert.Equal(t, []string{"Cem", "Çetin", "Deniz"}, s.Ranking())
}

func TestRankingIsDeterministic(t *testing.T) {
	s := NewState([]string{"Ahmet", "Berk", "Deniz", "Emre", "Hulusi", "Mesut", "Okan", "Sercan"})
	s.Totals["Berk"] = 5
	s.Totals["Okan"] = 5

	first := s.Ranking()
	for range 10 {
		require.Equal(t, first, s.Ranking())
	}
}

func TestAverageIgnoresPendingRounds(t *testing.T) {
	s := NewState([]string{"Ahmet", "Berk", "Deniz", "Emre"})
	s.Rounds = []Round{{
		Number: 1,
		Matches: []Match{{
			TeamA:  [2]string{"Ahmet", "Berk"},
			TeamB:  [2]string{"Deniz", "Emre"},
			ScoreA: ScoreOf(32),
			ScoreB: ScoreOf(5),
		}},
		Submitted: false,
	}}

	assert.Equal(t, 0, s.Average("Ahmet"))
	assert.Equal(t, 0, s.MatchesPlayed("Ahmet"))
}
