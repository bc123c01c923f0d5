package models

import (
	"time"
)

// LeaderboardSize is the fixed number of slots in the leaderboard table
const LeaderboardSize = 10

// NoPlayer is the sentinel identity for an unfilled leaderboard slot
const NoPlayer = ""

// LeaderboardEntry is a single ranked slot in the leaderboard
type LeaderboardEntry struct {
	// PlayerID is the identity of the ranked player, or NoPlayer
	PlayerID string

	// Score is the accumulated score the player ranked with
	Score int64

	// Level is the highest level the player reached during the period
	Level int
}

// Leaderboard is the current top-10 table. It is replaced wholesale on each
// payout cycle, never merged.
type Leaderboard struct {
	// Entries holds exactly LeaderboardSize slots in rank order
	Entries []LeaderboardEntry

	// PaidAt is when the table was last replaced and paid
	PaidAt time.Time
}
