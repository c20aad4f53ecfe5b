package mexicano

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientPlayers and ErrOddPlayerCount are precondition failures
	// on tournament start or round generation; no state is mutated.
	ErrInsufficientPlayers = errors.New("at least 8 players are required")
	ErrOddPlayerCount      = errors.New("player count must be even")

	// ErrNotStarted is returned by NextRound before round 1 exists.
	ErrNotStarted = errors.New("tournament has not started")

	// ErrIncompleteRound refuses next-round generation while the latest
	// round is still pending.
	ErrIncompleteRound = errors.New("current round is not submitted yet")

	// ErrRoundSubmitted guards submitted rounds: their scores are immutable
	// and they cannot be settled twice.
	ErrRoundSubmitted = errors.New("round is already submitted")

	ErrNoSuchRound     = errors.New("no such round")
	ErrNoSuchMatch     = errors.New("no such match")
	ErrEmptyPlayerName = errors.New("player name must not be empty")
	ErrDuplicatePlayer = errors.New("player already exists")
	ErrUnknownPlayer   = errors.New("no such player")
)

// ValidationKind classifies a single match's score problem at submission.
type ValidationKind string

const (
	MissingScore    ValidationKind = "missing_score"
	ScoreOutOfRange ValidationKind = "score_out_of_range"
	NoWinner        ValidationKind = "no_winner"
	DoubleWinner    ValidationKind = "double_winner"
)

// MatchValidationError reports which match of which round failed the
// race-to-target rule. Submission is all-or-nothing: the first failing match
// aborts the whole round untouched.
type MatchValidationError struct {
	Round int // 1-based round number
	Match int // 0-based match index within the round
	Kind  ValidationKind
}

func (e *MatchValidationError) Error() string {
	var reason string
	switch e.Kind {
	case MissingScore:
		reason = "both scores are required"
	case ScoreOutOfRange:
		reason = fmt.Sprintf("scores must be between 0 and %d", Target)
	case NoWinner:
		reason = fmt.Sprintf("one team must reach %d", Target)
	case DoubleWinner:
		reason = fmt.Sprintf("both teams cannot reach %d", Target)
	default:
		reason = string(e.Kind)
	}
	return fmt.Sprintf("round %d, match %d: %s", e.Round, e.Match+1, reason)
}
