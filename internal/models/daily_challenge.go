package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyChallengeConfig is the difficulty and reward specification for one
// calendar date's challenge. Dates are integers of the form YYYYMMDD, UTC.
type DailyChallengeConfig struct {
	// Date is the challenge date as YYYYMMDD
	Date int

	// GridSize is the tile grid dimension
	GridSize int

	// Steps is the sequence length
	Steps int

	// ShowDurationMs is how long each tile is shown
	ShowDurationMs int64

	// IntervalMs is the pause between tiles
	IntervalMs int64

	// TimeLimitMs is the replay time limit
	TimeLimitMs int64

	// Reward is the fixed amount paid per completion
	Reward decimal.Decimal

	// CreatedAt is when the challenge was configured
	CreatedAt time.Time
}

// DailyPlayerState tracks one player's progress on one date's challenge
type DailyPlayerState struct {
	// Date is the challenge date as YYYYMMDD
	Date int

	// PlayerID is the identity of the player
	PlayerID string

	// Attempts is how many attempts the player has used
	Attempts int

	// Completed indicates the player has completed the challenge.
	// A completed date accepts no further attempts.
	Completed bool

	// CompletedAt is when the challenge was completed
	CompletedAt time.Time
}
