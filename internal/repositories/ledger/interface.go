package ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/gridlight/simonsays/internal/repositories/ledger Repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/gridlight/simonsays/internal/models"
)

// Repository defines the persistence substrate the reward ledger requires:
// append rounds with assigned ids, read/write per-player stats and
// per-(date,player) daily state, replace the leaderboard table, and keep the
// pending-reward and escrow balances.
type Repository interface {
	// NextRoundID assigns and returns the next round id
	NextRoundID(ctx context.Context) (int64, error)

	// SaveRound appends a settled round
	SaveRound(ctx context.Context, input *SaveRoundInput) error

	// GetRound retrieves a round by id
	GetRound(ctx context.Context, input *GetRoundInput) (*models.Round, error)

	// GetRoundsForPlayer retrieves a player's most recent rounds
	GetRoundsForPlayer(ctx context.Context, input *GetRoundsForPlayerInput) (*GetRoundsForPlayerOutput, error)

	// GetPlayerStats retrieves a player's stats record
	GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*models.PlayerStats, error)

	// SavePlayerStats persists a player's stats record
	SavePlayerStats(ctx context.Context, input *SavePlayerStatsInput) error

	// GetDailyConfig retrieves the challenge configured for a date
	GetDailyConfig(ctx context.Context, input *GetDailyConfigInput) (*models.DailyChallengeConfig, error)

	// SaveDailyConfig persists a date's challenge configuration
	SaveDailyConfig(ctx context.Context, input *SaveDailyConfigInput) error

	// GetDailyState retrieves a player's progress on a date's challenge
	GetDailyState(ctx context.Context, input *GetDailyStateInput) (*models.DailyPlayerState, error)

	// SaveDailyState persists a player's progress on a date's challenge
	SaveDailyState(ctx context.Context, input *SaveDailyStateInput) error

	// GetPendingReward retrieves a player's unwithdrawn balance
	GetPendingReward(ctx context.Context, input *GetPendingRewardInput) (decimal.Decimal, error)

	// SetPendingReward overwrites a player's unwithdrawn balance
	SetPendingReward(ctx context.Context, input *SetPendingRewardInput) error

	// GetEscrowBalance retrieves the ledger's escrowed funds
	GetEscrowBalance(ctx context.Context) (decimal.Decimal, error)

	// SetEscrowBalance overwrites the ledger's escrowed funds
	SetEscrowBalance(ctx context.Context, input *SetEscrowBalanceInput) error

	// GetLeaderboard retrieves the current leaderboard table
	GetLeaderboard(ctx context.Context) (*models.Leaderboard, error)

	// SaveLeaderboard replaces the leaderboard table wholesale
	SaveLeaderboard(ctx context.Context, input *SaveLeaderboardInput) error
}
