package ledger

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/gridlight/simonsays/internal/common/clock"
	"github.com/gridlight/simonsays/internal/models"
	ledgerRepo "github.com/gridlight/simonsays/internal/repositories/ledger"
)

// SettlementOutcome is the closed set of ways a round settlement can land
type SettlementOutcome string

const (
	// OutcomeLeveledUp is a verified perfect in-time infinite round: reward
	// credited, level and streak advanced
	OutcomeLeveledUp SettlementOutcome = "leveled_up"

	// OutcomePartialCredit is a verified imperfect round: score recorded,
	// no reward, streak reset
	OutcomePartialCredit SettlementOutcome = "partial_credit"

	// OutcomeTimedOut is a verified round lost to the clock
	OutcomeTimedOut SettlementOutcome = "timed_out"

	// OutcomeRejected is a round that failed anti-cheat verification:
	// recorded for audit, never rewarded
	OutcomeRejected SettlementOutcome = "rejected"

	// OutcomeDailyCompleted is a successful daily challenge settlement
	OutcomeDailyCompleted SettlementOutcome = "daily_completed"
)

// Config holds configuration for the reward ledger service
type Config struct {
	// OperatorID is the single privileged identity allowed to mutate the
	// ledger (everything except Withdraw)
	OperatorID string

	// MaxSteps bounds accepted sequence lengths
	MaxSteps int

	// MinGridSize and MaxGridSize bound accepted grid dimensions
	MinGridSize int
	MaxGridSize int

	// BaseRewardPerStep is the per-correct-step reward unit
	BaseRewardPerStep decimal.Decimal

	// TimeBonusMultiplier scales the remaining-time reward bonus
	TimeBonusMultiplier int64

	// DailyMaxAttempts bounds attempts per (date, player)
	DailyMaxAttempts int

	// LeaderboardPool is the total amount distributed per payout cycle
	LeaderboardPool decimal.Decimal

	// RankWeights are the per-rank percentages of the pool, one per
	// leaderboard slot, summing to 100
	RankWeights []int64

	// Repository dependency
	Repo ledgerRepo.Repository

	// Service dependencies
	Clock  clock.Clock
	Logger zerolog.Logger
}

// DefaultRankWeights is the standard 30/20/15/10/8/6/4/3/2/2 split
var DefaultRankWeights = []int64{30, 20, 15, 10, 8, 6, 4, 3, 2, 2}

// RecordInfiniteRoundInput contains one graded infinite-mode round
type RecordInfiniteRoundInput struct {
	// Caller is the identity invoking the settlement
	Caller string

	// PlayerID is the player the round belongs to
	PlayerID string

	// Score is the graded score
	Score int64

	GridSize     int
	Steps        int
	CorrectSteps int
	ElapsedMs    int64
	TimeLimitMs  int64

	// TimeExpired indicates the round ran past its limit
	TimeExpired bool

	// Verified indicates the round passed anti-cheat verification
	Verified bool
}

// RecordInfiniteRoundOutput contains the settlement result
type RecordInfiniteRoundOutput struct {
	// RoundID is the ledger-assigned round id
	RoundID int64

	// Outcome is the settlement classification
	Outcome SettlementOutcome

	// Reward is the amount credited to pending rewards (zero unless the
	// round qualified)
	Reward decimal.Decimal

	// Level is the player's level after settlement
	Level int

	// Streak is the player's streak after settlement
	Streak int
}

// RecordDailyChallengeInput contains one graded daily challenge attempt
type RecordDailyChallengeInput struct {
	Caller   string
	PlayerID string

	// Date is the challenge date as YYYYMMDD
	Date int

	Score        int64
	CorrectSteps int
	TotalSteps   int
	ElapsedMs    int64
	TimeLimitMs  int64
	TimeExpired  bool
	Verified     bool
}

// RecordDailyChallengeOutput contains the settlement result
type RecordDailyChallengeOutput struct {
	RoundID int64
	Outcome SettlementOutcome
	Reward  decimal.Decimal
}

// UpdateLeaderboardInput contains the ranked period results. All three
// slices must hold exactly models.LeaderboardSize entries; unfilled slots
// carry models.NoPlayer with zero score and level.
type UpdateLeaderboardInput struct {
	Caller  string
	Players []string
	Scores  []int64
	Levels  []int
}

// UpdateLeaderboardOutput contains the payout result
type UpdateLeaderboardOutput struct {
	// Distributed is the total amount credited across all ranks
	Distributed decimal.Decimal

	// PaidAt is the recorded payout timestamp
	PaidAt time.Time
}

// WithdrawInput identifies the withdrawing player
type WithdrawInput struct {
	PlayerID string
}

// WithdrawOutput contains the drained amount
type WithdrawOutput struct {
	Amount decimal.Decimal
}

// FundEscrowInput credits the escrow balance
type FundEscrowInput struct {
	Caller string
	Amount decimal.Decimal
}

// FundEscrowOutput contains the balance after funding
type FundEscrowOutput struct {
	Balance decimal.Decimal
}

// DrainInput empties the escrow to the operator
type DrainInput struct {
	Caller string
}

// DrainOutput contains the drained amount
type DrainOutput struct {
	Amount decimal.Decimal
}

// SetDailyChallengeInput configures a date's challenge
type SetDailyChallengeInput struct {
	Caller string
	Config *models.DailyChallengeConfig
}

// SetDailyChallengeOutput is empty; the call either succeeds or errors
type SetDailyChallengeOutput struct {
}

// GetPlayerStatsInput identifies the player
type GetPlayerStatsInput struct {
	PlayerID string
}

// GetPlayerStatsOutput carries the stats record
type GetPlayerStatsOutput struct {
	Stats *models.PlayerStats

	// Pending is the player's unwithdrawn balance
	Pending decimal.Decimal
}

// GetRoundInput identifies a settled round
type GetRoundInput struct {
	RoundID int64
}

// GetRoundOutput carries the round
type GetRoundOutput struct {
	Round *models.Round
}

// GetRoundsInput identifies a player's history page
type GetRoundsInput struct {
	PlayerID string
	Limit    int
}

// GetRoundsOutput carries the rounds, newest first
type GetRoundsOutput struct {
	Rounds []*models.Round
}

// GetDailyStatusInput identifies a (date, player) pair
type GetDailyStatusInput struct {
	Date     int
	PlayerID string
}

// GetDailyStatusOutput reports the pair's standing
type GetDailyStatusOutput struct {
	// Initialized indicates the date has a configured challenge
	Initialized bool

	// Config is the date's challenge spec (nil when not initialized)
	Config *models.DailyChallengeConfig

	Attempts    int
	MaxAttempts int
	Completed   bool

	// CanAttempt indicates another attempt would be accepted
	CanAttempt bool
}

// GetLeaderboardInput is empty; there is a single current table
type GetLeaderboardInput struct {
}

// GetLeaderboardOutput carries the current table
type GetLeaderboardOutput struct {
	Leaderboard *models.Leaderboard
}

// GetEscrowBalanceOutput carries the escrowed funds
type GetEscrowBalanceOutput struct {
	Balance decimal.Decimal
}
