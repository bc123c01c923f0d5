package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/gridlight/simonsays/internal/models"
)

type SaveRoundInput struct {
	Round *models.Round
}

type GetRoundInput struct {
	RoundID int64
}

type GetRoundsForPlayerInput struct {
	PlayerID string

	// Limit bounds the number of rounds returned, most recent first
	Limit int
}

type GetRoundsForPlayerOutput struct {
	Rounds []*models.Round
}

type GetPlayerStatsInput struct {
	PlayerID string
}

type SavePlayerStatsInput struct {
	Stats *models.PlayerStats
}

type GetDailyConfigInput struct {
	Date int
}

type SaveDailyConfigInput struct {
	Config *models.DailyChallengeConfig
}

type GetDailyStateInput struct {
	Date     int
	PlayerID string
}

type SaveDailyStateInput struct {
	State *models.DailyPlayerState
}

type GetPendingRewardInput struct {
	PlayerID string
}

type SetPendingRewardInput struct {
	PlayerID string
	Amount   decimal.Decimal
}

type SetEscrowBalanceInput struct {
	Amount decimal.Decimal
}

type SaveLeaderboardInput struct {
	Leaderboard *models.Leaderboard
}
