package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlayerStats holds a player's cumulative statistics across all settled rounds
type PlayerStats struct {
	// PlayerID is the identity of the player
	PlayerID string

	// TotalRounds is the number of rounds settled for the player
	TotalRounds int64

	// TotalScore is the sum of all round scores
	TotalScore int64

	// TotalRewards is the cumulative amount ever credited to the player.
	// Monotonic non-decreasing; withdrawals do not reduce it.
	TotalRewards decimal.Decimal

	// BestScore is the highest single-round score seen
	BestScore int64

	// CurrentStreak counts consecutive perfect infinite rounds
	CurrentStreak int

	// CurrentLevel is the player's infinite-mode level, never below 1
	CurrentLevel int

	// TimeoutsCount is the number of rounds lost to the clock
	TimeoutsCount int64

	// PerfectRoundsCount is the number of perfect rounds played
	PerfectRoundsCount int64

	// LastDailyChallengeDate is the most recent daily challenge date
	// the player completed, as YYYYMMDD (0 if never)
	LastDailyChallengeDate int

	// UpdatedAt is when the stats were last written
	UpdatedAt time.Time
}

// NewPlayerStats returns a fresh stats record for a player
func NewPlayerStats(playerID string) *PlayerStats {
	return &PlayerStats{
		PlayerID:     playerID,
		TotalRewards: decimal.Zero,
		CurrentLevel: 1,
	}
}
