package ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/gridlight/simonsays/internal/services/ledger Service

import "context"

// Service is the single source of truth for rounds, player stats, daily
// challenge completion, pending rewards, escrow, and the leaderboard. All
// mutating operations except Withdraw require the operator identity.
type Service interface {
	// RecordInfiniteRound settles an infinite-mode round
	RecordInfiniteRound(ctx context.Context, input *RecordInfiniteRoundInput) (*RecordInfiniteRoundOutput, error)

	// RecordDailyChallenge settles a daily challenge attempt
	RecordDailyChallenge(ctx context.Context, input *RecordDailyChallengeInput) (*RecordDailyChallengeOutput, error)

	// UpdateLeaderboardAndPay replaces the leaderboard and distributes the reward pool
	UpdateLeaderboardAndPay(ctx context.Context, input *UpdateLeaderboardInput) (*UpdateLeaderboardOutput, error)

	// Withdraw drains a player's pending rewards
	Withdraw(ctx context.Context, input *WithdrawInput) (*WithdrawOutput, error)

	// FundEscrow credits the escrow balance
	FundEscrow(ctx context.Context, input *FundEscrowInput) (*FundEscrowOutput, error)

	// Drain moves the entire escrow balance to the operator
	Drain(ctx context.Context, input *DrainInput) (*DrainOutput, error)

	// SetDailyChallenge configures a date's challenge
	SetDailyChallenge(ctx context.Context, input *SetDailyChallengeInput) (*SetDailyChallengeOutput, error)

	// GetPlayerStats retrieves a player's stats (zero-valued if never played)
	GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*GetPlayerStatsOutput, error)

	// GetRound retrieves a settled round by id
	GetRound(ctx context.Context, input *GetRoundInput) (*GetRoundOutput, error)

	// GetRounds retrieves a player's recent rounds
	GetRounds(ctx context.Context, input *GetRoundsInput) (*GetRoundsOutput, error)

	// GetDailyStatus reports a player's standing on a date's challenge
	GetDailyStatus(ctx context.Context, input *GetDailyStatusInput) (*GetDailyStatusOutput, error)

	// GetLeaderboard retrieves the current leaderboard table
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// GetEscrowBalance retrieves the escrowed funds
	GetEscrowBalance(ctx context.Context) (*GetEscrowBalanceOutput, error)
}
