package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoundType represents the game mode a round was played in
type RoundType string

const (
	// RoundTypeInfinite indicates an endless-mode round where level increases on each perfect run
	RoundTypeInfinite RoundType = "infinite"

	// RoundTypeDaily indicates a daily challenge round
	RoundTypeDaily RoundType = "daily"
)

// FailureReason represents why a round did not complete perfectly
type FailureReason string

const (
	// FailureReasonNone indicates the round completed perfectly
	FailureReasonNone FailureReason = "none"

	// FailureReasonWrongSequence indicates the player broke the sequence
	FailureReasonWrongSequence FailureReason = "wrong_sequence"

	// FailureReasonTimeExpired indicates the player ran out of time
	FailureReasonTimeExpired FailureReason = "time_expired"
)

// Round records one settled play of the sequence-replay game.
// Rounds are immutable once written to the ledger.
type Round struct {
	// ID is the ledger-assigned, monotonically increasing round identifier
	ID int64

	// PlayerID is the identity of the player who played the round
	PlayerID string

	// Type is the game mode of the round
	Type RoundType

	// Level is the infinite-mode level the round was played at (0 for daily)
	Level int

	// GridSize is the tile grid dimension used for the round
	GridSize int

	// TotalSteps is the length of the issued sequence
	TotalSteps int

	// CorrectSteps is how many steps the player reproduced before breaking
	CorrectSteps int

	// Score is the graded score for the round
	Score int64

	// ElapsedMs is how long the player took, in milliseconds
	ElapsedMs int64

	// TimeLimitMs is the time limit the round was graded against
	TimeLimitMs int64

	// Reward is the amount credited to pending rewards for this round
	Reward decimal.Decimal

	// Verified indicates the round passed anti-cheat verification
	Verified bool

	// FailureReason is why the round fell short, if it did
	FailureReason FailureReason

	// SettledAt is when the round was recorded
	SettledAt time.Time
}
