package mexicano

import (
	"fmt"
	"strconv"
)

// Score is one side's tally. The zero value is "not yet entered", which is
// distinct from an entered score of zero. It marshals to a JSON number, or
// null while unset, so persisted tournaments keep the original layout.
type Score struct {
	set bool
	val int
}

// ScoreOf returns an entered score with the given value.
func ScoreOf(v int) Score { return Score{set: true, val: v} }

// IsSet reports whether a score has been entered.
func (s Score) IsSet() bool { return s.set }

// Value returns the entered score, 0 if unset.
func (s Score) Value() int { return s.val }

func (s Score) MarshalJSON() ([]byte, error) {
	if !s.set {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(s.val)), nil
}

func (s *Score) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = Score{}
		return nil
	}
	v, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("parsing score: %w", err)
	}
	*s = Score{set: true, val: v}
	return nil
}

// clampScore bounds a raw entry to the playable range [0, Target].
func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > Target {
		return Target
	}
	return v
}

// validate checks the race-to-target rule for submission. The round number
// and match index are carried into the error for per-match reporting.
func (m Match) validate(roundNumber, matchIdx int) error {
	fail := func(kind ValidationKind) error {
		return &MatchValidationError{Round: roundNumber, Match: matchIdx, Kind: kind}
	}
	if !m.ScoreA.IsSet() || !m.ScoreB.IsSet() {
		return fail(MissingScore)
	}
	a, b := m.ScoreA.Value(), m.ScoreB.Value()
	// Unreachable after clamping, but checked anyway: scores may arrive from
	// storage written by another client.
	if a < 0 || a > Target || b < 0 || b > Target {
		return fail(ScoreOutOfRange)
	}
	if a == Target && b == Target {
		return fail(DoubleWinner)
	}
	if a != Target && b != Target {
		return fail(NoWinner)
	}
	return nil
}
