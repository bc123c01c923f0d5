package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/gridlight/simonsays/internal/common/clock/mocks"
	"github.com/gridlight/simonsays/internal/models"
	ledgerRepo "github.com/gridlight/simonsays/internal/repositories/ledger"
	repoMocks "github.com/gridlight/simonsays/internal/repositories/ledger/mocks"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockRepo  *repoMocks.MockRepository
	mockClock *clockMocks.MockClock
	svc       Service
	ctx       context.Context

	// Test data
	testTime     time.Time
	testOperator string
	testPlayerID string
	testDate     int
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = repoMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	s.testOperator = "operator-id"
	s.testPlayerID = "test-player-id"
	s.testDate = 20260314

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := New(&Config{
		OperatorID:        s.testOperator,
		BaseRewardPerStep: decimal.RequireFromString("0.001"),
		LeaderboardPool:   decimal.RequireFromString("1"),
		Repo:              s.mockRepo,
		Clock:             s.mockClock,
		Logger:            zerolog.Nop(),
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *LedgerServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) perfectRoundInput() *RecordInfiniteRoundInput {
	return &RecordInfiniteRoundInput{
		Caller:       s.testOperator,
		PlayerID:     s.testPlayerID,
		Score:        187,
		GridSize:     3,
		Steps:        5,
		CorrectSteps: 5,
		ElapsedMs:    2500,
		TimeLimitMs:  10000,
		TimeExpired:  false,
		Verified:     true,
	}
}

func (s *LedgerServiceTestSuite) TestRecordInfiniteRoundPerfect() {
	s.mockRepo.EXPECT().GetPlayerStats(s.ctx, &ledgerRepo.GetPlayerStatsInput{PlayerID: s.testPlayerID}).
		Return(nil, ledgerRepo.ErrStatsNotFound)
	s.mockRepo.EXPECT().NextRoundID(s.ctx).Return(int64(1), nil)

	var savedRound *models.Round
	s.mockRepo.EXPECT().SaveRound(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledgerRepo.SaveRoundInput) error {
			savedRound = input.Round
			return nil
		})

	s.mockRepo.EXPECT().GetPendingReward(s.ctx, &ledgerRepo.GetPendingRewardInput{PlayerID: s.testPlayerID}).
		Return(decimal.Zero, nil)

	var creditedPending decimal.Decimal
	s.mockRepo.EXPECT().SetPendingReward(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledgerRepo.SetPendingRewardInput) error {
			creditedPending = input.Amount
			return nil
		})

	var savedStats *models.PlayerStats
	s.mockRepo.EXPECT().SavePlayerStats(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledgerRepo.SavePlayerStatsInput) error {
			savedStats = input.Stats
			return nil
		})

	out, err := s.svc.RecordInfiniteRound(s.ctx, s.perfectRoundInput())
	s.Require().NoError(err)

	s.Equal(int64(1), out.RoundID)
	s.Equal(OutcomeLeveledUp, out.Outcome)
	// The worked reward example: 0.005 base, 0.000375 time bonus, half
	// again for the perfect run
	s.Equal("0.0080625", out.Reward.String())
	s.Equal(2, out.Level)
	s.Equal(1, out.Streak)

	s.Equal("0.0080625", creditedPending.String())

	s.Require().NotNil(savedRound)
	s.Equal(models.RoundTypeInfinite, savedRound.Type)
	s.Equal(1, savedRound.Level) // level the round was played at
	s.Equal(models.FailureReasonNone, savedRound.FailureReason)
	s.Equal(s.testTime, savedRound.SettledAt)

	s.Require().NotNil(savedStats)
	s.Equal(int64(1), savedStats.TotalRounds)
	s.Equal(int64(187), savedStats.TotalScore)
	s.Equal(int64(187), savedStats.BestScore)
	s.Equal(int64(1), savedStats.PerfectRoundsCount)
	s.Equal("0.0080625", savedStats.TotalRewards.String())
}

func (s *LedgerServiceTestSuite) TestRecordInfiniteRoundPartialResetsStreak() {
	existing := &models.PlayerStats{
		PlayerID:      s.testPlayerID,
		TotalRounds:   10,
		TotalScore:    1000,
		TotalRewards:  decimal.RequireFromString("0.05"),
		BestScore:     300,
		CurrentStreak: 4,
		CurrentLevel:  5,
	}
	s.mockRepo.EXPECT().GetPlayerStats(s.ctx, gomock.Any()).Return(existing, nil)
	s.mockRepo.EXPECT().NextRoundID(s.ctx).Return(int64(11), nil)
	s.mockRepo.EXPECT().SaveRound(s.ctx, gomock.Any()).Return(nil)

	var savedStats *models.PlayerStats
	s.mockRepo.EXPECT().SavePlayerStats(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledgerRepo.SavePlayerStatsInput) error {
			savedStats = input.Stats
			return nil
		})

	input := s.perfectRoundInput()
	input.CorrectSteps = 3
	input.Score = 105

	out, err := s.svc.RecordInfiniteRound(s.ctx, input)
	s.Require().NoError(err)

	s.Equal(OutcomePartialCredit, out.Outcome)
	s.True(out.Reward.IsZero())
	s.Equal(5, out.Level)
	s.Equal(0, out.Streak)

	s.Equal(0, savedStats.CurrentStreak)
	s.Equal(5, savedStats.CurrentLevel)
	s.Equal(int64(300), savedStats.BestScore)
	s.Equal(int64(11), savedStats.TotalRounds)
	s.Equal(int64(1105), savedStats.TotalScore)
	// No reward movement for a partial round
	s.Equal("0.05", savedStats.TotalRewards.String())
}

func (s *LedgerServiceTestSuite) TestRecordInfiniteRoundTimeExpired() {
	existing := &models.PlayerStats{
		PlayerID:      s.testPlayerID,
		CurrentStreak: 2,
		CurrentLevel:  3,
	}
	s.mockRepo.EXPECT().GetPlayerStats(s.ctx, gomock.Any()).Return(existing, nil)
	s.mockRepo.EXPECT().NextRoundID(s.ctx).Return(int64(12), nil)

	var savedRound *models.Round
	s.mockRepo.EXPECT().SaveRound(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledgerRepo.SaveRoundInput) error {
			savedRound = input.Round
			return nil
		})

	var savedStats *models.PlayerStats
	s.mockRepo.EXPECT().SavePlayerStats(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledgerRepo.SavePlayerStatsInput) error {
			savedStats = input.Stats
			return nil
		})

	input := s.perfectRoundInput()
	input.TimeExpired = true
	input.ElapsedMs = 12000

	out, err := s.svc.RecordInfiniteRound(s.ctx, input)
	s.Require().NoError(err)

	s.Equal(OutcomeTimedOut, out.Outcome)
	s.True(out.Reward.IsZero())
	s.Equal(models.FailureReasonTimeExpired, savedRound.FailureReason)
	s.Equal(0, savedStats.CurrentStreak)
	s.Equal(3, savedStats.CurrentLevel)
	s.Equal(int64(1), savedStats.TimeoutsCount)
}

func (s *LedgerServiceTestSuite) TestRecordInfiniteRoundUnverified() {
	s.mockRepo.EXPECT().GetPlayerStats(s.ctx, gomock.Any()).
		Return(nil, ledgerRepo.ErrStatsNotFound)
	s.mockRepo.EXPECT().NextRoundID(s.ctx).Return(int64(13), nil)
	s.mockRepo.EXPECT().SaveRound(s.ctx, gomock.Any()).Return(nil)
	s.mockRepo.EXPECT().SavePlayerStats(s.ctx, gomock.Any()).Return(nil)

	input := s.perfectRoundInput()
	input.Verified = false

	out, err := s.svc.RecordInfiniteRound(s.ctx, input)
	s.Require().NoError(err)

	// A perfect but unverified round earns nothing and does not level up
	s.Equal(OutcomeRejected, out.Outcome)
	s.True(out.Reward.IsZero())
	s.Equal(1, out.Level)
}

func (s *LedgerServiceTestSuite) TestRecordInfiniteRoundInvalidInput() {
	tests := []struct {
		name   string
		mutate func(*RecordInfiniteRoundInput)
	}{
		{"zero steps", func(i *RecordInfiniteRoundInput) { i.Steps = 0; i.CorrectSteps = 0 }},
		{"too many steps", func(i *RecordInfiniteRoundInput) { i.Steps = 51; i.CorrectSteps = 51 }},
		{"correct above total", func(i *RecordInfiniteRoundInput) { i.CorrectSteps = 6 }},
		{"grid too small", func(i *RecordInfiniteRoundInput) { i.GridSize = 1 }},
		{"grid too large", func(i *RecordInfiniteRoundInput) { i.GridSize = 11 }},
	}

	for _, tt := range tests {
		input := s.perfectRoundInput()
		tt.mutate(input)

		_, err := s.svc.RecordInfiniteRound(s.ctx, input)
		s.ErrorIs(err, ErrInvalidInput, tt.name)
	}
}

func (s *LedgerServiceTestSuite) TestRecordInfiniteRoundNotAuthorized() {
	input := s.perfectRoundInput()
	input.Caller = s.testPlayerID

	_, err := s.svc.RecordInfiniteRound(s.ctx, input)
	s.ErrorIs(err, ErrNotAuthorized)
}

func (s *LedgerServiceTestSuite) dailyInput() *RecordDailyChallengeInput {
	return &RecordDailyChallengeInput{
		Caller:       s.testOperator,
		PlayerID:     s.testPlayerID,
		Date:         s.testDate,
		Score:        187,
		CorrectSteps: 6,
		TotalSteps:   6,
		ElapsedMs:    4000,
		TimeLimitMs:  12000,
		Verified:     true,
	}
}

func (s *LedgerServiceTestSuite) dailyConfig() *models.DailyChallengeConfig {
	return &models.DailyChallengeConfig{
		Date:        s.testDate,
		GridSize:    4,
		Steps:       6,
		TimeLimitMs: 12000,
		Reward:      decimal.RequireFromString("0.01"),
	}
}

func (s *LedgerServiceTestSuite) TestRecordDailyChallengeNotInitialized() {
	s.mockRepo.EXPECT().GetDailyConfig(s.ctx, &ledgerRepo.GetDailyConfigInput{Date: s.testDate}).
		Return(nil, ledgerRepo.ErrDailyConfigNotFound)

	_, err := s.svc.RecordDailyChallenge(s.ctx, s.dailyInput())
	s.ErrorIs(err, ErrDailyNotInitialized)
}

func (s *LedgerServiceTestSuite) TestRecordDailyChallengeAlreadyCompleted() {
	s.mockRepo.EXPECT().GetDailyConfig(s.ctx, gomock.Any()).Return(s.dailyConfig(), nil)
	s.mockRepo.EXPECT().GetDailyState(s.ctx, gomock.Any()).
		Return(&models.DailyPlayerState{Date: s.testDate, PlayerID: s.testPlayerID, Attempts: 1, Completed: true}, nil)

	// Rejected regardless of how good the submitted run is
	_, err := s.svc.RecordDailyChallenge(s.ctx, s.dailyInput())
	s.ErrorIs(err, ErrAlreadyCompleted)
}

func (s *LedgerServiceTestSuite) TestRecordDailyChallengeTriesExceeded() {
	s.mockRepo.EXPECT().GetDailyConfig(s.ctx, gomock.Any()).Return(s.dailyConfig(), nil)
	s.mockRepo.EXPECT().GetDailyState(s.ctx, gomock.Any()).
		Return(&models.DailyPlayerState{Date: s.testDate, PlayerID: s.testPlayerID, Attempts: 3}, nil)

	_, err := s.svc.RecordDailyChallenge(s.ctx, s.dailyInput())
	s.ErrorIs(err, ErrTriesExceeded)
}

func (s *LedgerServiceTestSuite) TestRecordDailyChallengeImperfectBurnsAttempt() {
	s.mockRepo.EXPECT().GetDailyConfig(s.ctx, gomock.Any()).Return(s.dailyConfig(), nil)
	s.mockRepo.EXPECT().GetDailyState(s.ctx, gomock.Any()).
		Return(nil, ledgerRepo.ErrDailyStateNotFound)

	var savedState *models.DailyPlayerState
	s.mockRepo.EXPECT().SaveDailyState(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledgerRepo.SaveDailyStateInput) error {
			savedState = input.State
			return nil
		})

	input := s.dailyInput()
	input.CorrectSteps = 5

	_, err := s.svc.RecordDailyChallenge(s.ctx, input)
	s.ErrorIs(err, ErrNotVerified)

	s.Require().NotNil(savedState)
	s.Equal(1, savedState.Attempts)
	s.False(savedState.Completed)
}

func (s *LedgerServiceTestSuite) TestRecordDailyChallengeSuccess() {
	s.mockRepo.EXPECT().GetDailyConfig(s.ctx, gomock.Any()).Return(s.dailyConfig(), nil)
	s.mockRepo.EXPECT().GetDailyState(s.ctx, gomock.Any()).
		Return(nil, ledgerRepo.ErrDailyStateNotFound)
	s.mockRepo.EXPECT().NextRoundID(s.ctx).Return(int64(20), nil)

	var savedRound *models.Round
	s.mockRepo.EXPECT().SaveRound(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledgerRepo.SaveRoundInput) error {
			savedRound = input.Round
			return nil
		})

	var savedState *models.DailyPlayerState
	s.mockRepo.EXPECT().SaveDailyState(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledgerRepo.SaveDailyStateInput) error {
			savedState = input.State
			return nil
		})

	s.mockRepo.EXPECT().GetPlayerStats(s.ctx, gomock.Any()).
		Return(nil, ledgerRepo.ErrStatsNotFound)

	var savedStats *models.PlayerStats
	s.mockRepo.EXPECT().SavePlayerStats(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledgerRepo.SavePlayerStatsInput) error {
			savedStats = input.Stats
			return nil
		})

	s.mockRepo.EXPECT().GetPendingReward(s.ctx, gomock.Any()).Return(decimal.Zero, nil)

	var creditedPending decimal.Decimal
	s.mockRepo.EXPECT().SetPendingReward(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledgerRepo.SetPendingRewardInput) error {
			creditedPending = input.Amount
			return nil
		})

	out, err := s.svc.RecordDailyChallenge(s.ctx, s.dailyInput())
	s.Require().NoError(err)

	s.Equal(int64(20), out.RoundID)
	s.Equal(OutcomeDailyCompleted, out.Outcome)
	s.Equal("0.01", out.Reward.String())
	s.Equal("0.01", creditedPending.String())

	s.Equal(models.RoundTypeDaily, savedRound.Type)
	s.Equal(0, savedRound.Level)

	s.True(savedState.Completed)
	s.Equal(1, savedState.Attempts)
	s.Equal(s.testTime, savedState.CompletedAt)

	s.Equal(s.testDate, savedStats.LastDailyChallengeDate)
	s.Equal(int64(1), savedStats.PerfectRoundsCount)
	s.Equal("0.01", savedStats.TotalRewards.String())
}

func (s *LedgerServiceTestSuite) TestUpdateLeaderboardArityMismatch() {
	_, err := s.svc.UpdateLeaderboardAndPay(s.ctx, &UpdateLeaderboardInput{
		Caller:  s.testOperator,
		Players: []string{"alice", "bob"},
		Scores:  []int64{100, 50},
		Levels:  []int{2, 1},
	})
	s.ErrorIs(err, ErrArityMismatch)
}

func (s *LedgerServiceTestSuite) TestUpdateLeaderboardAndPay() {
	players := []string{"alice", "bob", "carol", models.NoPlayer, models.NoPlayer,
		models.NoPlayer, models.NoPlayer, models.NoPlayer, models.NoPlayer, models.NoPlayer}
	scores := []int64{900, 500, 100, 0, 0, 0, 0, 0, 0, 0}
	levels := []int{9, 5, 2, 0, 0, 0, 0, 0, 0, 0}

	var savedBoard *models.Leaderboard
	s.mockRepo.EXPECT().SaveLeaderboard(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledgerRepo.SaveLeaderboardInput) error {
			savedBoard = input.Leaderboard
			return nil
		})

	credited := map[string]decimal.Decimal{}
	for _, p := range []string{"alice", "bob", "carol"} {
		playerID := p
		s.mockRepo.EXPECT().GetPlayerStats(s.ctx, &ledgerRepo.GetPlayerStatsInput{PlayerID: playerID}).
			Return(nil, ledgerRepo.ErrStatsNotFound)
		s.mockRepo.EXPECT().SavePlayerStats(s.ctx, gomock.Any()).Return(nil)
		s.mockRepo.EXPECT().GetPendingReward(s.ctx, &ledgerRepo.GetPendingRewardInput{PlayerID: playerID}).
			Return(decimal.Zero, nil)
		s.mockRepo.EXPECT().SetPendingReward(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input *ledgerRepo.SetPendingRewardInput) error {
				credited[input.PlayerID] = input.Amount
				return nil
			})
	}

	out, err := s.svc.UpdateLeaderboardAndPay(s.ctx, &UpdateLeaderboardInput{
		Caller:  s.testOperator,
		Players: players,
		Scores:  scores,
		Levels:  levels,
	})
	s.Require().NoError(err)

	// Pool 1, weights 30/20/15: only the filled ranks pay out
	s.Equal("0.3", credited["alice"].String())
	s.Equal("0.2", credited["bob"].String())
	s.Equal("0.15", credited["carol"].String())
	s.Equal("0.65", out.Distributed.String())
	s.Equal(s.testTime, out.PaidAt)

	s.Require().Len(savedBoard.Entries, models.LeaderboardSize)
	s.Equal("alice", savedBoard.Entries[0].PlayerID)
	s.Equal(models.NoPlayer, savedBoard.Entries[9].PlayerID)
	s.Equal(s.testTime, savedBoard.PaidAt)
}

func (s *LedgerServiceTestSuite) TestUpdateLeaderboardNotAuthorized() {
	_, err := s.svc.UpdateLeaderboardAndPay(s.ctx, &UpdateLeaderboardInput{
		Caller:  "someone-else",
		Players: make([]string, 10),
		Scores:  make([]int64, 10),
		Levels:  make([]int, 10),
	})
	s.ErrorIs(err, ErrNotAuthorized)
}

func (s *LedgerServiceTestSuite) TestWithdrawNoRewards() {
	s.mockRepo.EXPECT().GetPendingReward(s.ctx, gomock.Any()).Return(decimal.Zero, nil)

	_, err := s.svc.Withdraw(s.ctx, &WithdrawInput{PlayerID: s.testPlayerID})
	s.ErrorIs(err, ErrNoRewards)
}

func (s *LedgerServiceTestSuite) TestWithdrawInsufficientFunds() {
	s.mockRepo.EXPECT().GetPendingReward(s.ctx, gomock.Any()).
		Return(decimal.RequireFromString("0.5"), nil)
	s.mockRepo.EXPECT().GetEscrowBalance(s.ctx).
		Return(decimal.RequireFromString("0.1"), nil)

	// No partial payout: nothing is written
	_, err := s.svc.Withdraw(s.ctx, &WithdrawInput{PlayerID: s.testPlayerID})
	s.ErrorIs(err, ErrInsufficientFunds)
}

func (s *LedgerServiceTestSuite) TestWithdrawZeroesPendingBeforeTransfer() {
	pending := decimal.RequireFromString("0.0080625")
	s.mockRepo.EXPECT().GetPendingReward(s.ctx, gomock.Any()).Return(pending, nil)
	s.mockRepo.EXPECT().GetEscrowBalance(s.ctx).
		Return(decimal.RequireFromString("1"), nil)

	zeroed := s.mockRepo.EXPECT().SetPendingReward(s.ctx, &ledgerRepo.SetPendingRewardInput{
		PlayerID: s.testPlayerID,
		Amount:   decimal.Zero,
	}).Return(nil)

	var newBalance decimal.Decimal
	s.mockRepo.EXPECT().SetEscrowBalance(s.ctx, gomock.Any()).
		After(zeroed).
		DoAndReturn(func(_ context.Context, input *ledgerRepo.SetEscrowBalanceInput) error {
			newBalance = input.Amount
			return nil
		})

	out, err := s.svc.Withdraw(s.ctx, &WithdrawInput{PlayerID: s.testPlayerID})
	s.Require().NoError(err)
	s.Equal("0.0080625", out.Amount.String())
	s.Equal("0.9919375", newBalance.String())
}

func (s *LedgerServiceTestSuite) TestFundEscrow() {
	s.mockRepo.EXPECT().GetEscrowBalance(s.ctx).Return(decimal.RequireFromString("2"), nil)
	s.mockRepo.EXPECT().SetEscrowBalance(s.ctx, &ledgerRepo.SetEscrowBalanceInput{
		Amount: decimal.RequireFromString("3.5"),
	}).Return(nil)

	out, err := s.svc.FundEscrow(s.ctx, &FundEscrowInput{
		Caller: s.testOperator,
		Amount: decimal.RequireFromString("1.5"),
	})
	s.Require().NoError(err)
	s.Equal("3.5", out.Balance.String())
}

func (s *LedgerServiceTestSuite) TestFundEscrowRejectsNonPositive() {
	_, err := s.svc.FundEscrow(s.ctx, &FundEscrowInput{
		Caller: s.testOperator,
		Amount: decimal.Zero,
	})
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *LedgerServiceTestSuite) TestDrainRequiresOperator() {
	_, err := s.svc.Drain(s.ctx, &DrainInput{Caller: s.testPlayerID})
	s.ErrorIs(err, ErrNotAuthorized)
}

func (s *LedgerServiceTestSuite) TestDrain() {
	s.mockRepo.EXPECT().GetEscrowBalance(s.ctx).Return(decimal.RequireFromString("4.2"), nil)
	s.mockRepo.EXPECT().SetEscrowBalance(s.ctx, &ledgerRepo.SetEscrowBalanceInput{
		Amount: decimal.Zero,
	}).Return(nil)

	out, err := s.svc.Drain(s.ctx, &DrainInput{Caller: s.testOperator})
	s.Require().NoError(err)
	s.Equal("4.2", out.Amount.String())
}

func (s *LedgerServiceTestSuite) TestSetDailyChallenge() {
	var saved *models.DailyChallengeConfig
	s.mockRepo.EXPECT().SaveDailyConfig(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledgerRepo.SaveDailyConfigInput) error {
			saved = input.Config
			return nil
		})

	_, err := s.svc.SetDailyChallenge(s.ctx, &SetDailyChallengeInput{
		Caller: s.testOperator,
		Config: &models.DailyChallengeConfig{
			Date:        s.testDate,
			GridSize:    4,
			Steps:       6,
			TimeLimitMs: 12000,
			Reward:      decimal.RequireFromString("0.0100000099"),
		},
	})
	s.Require().NoError(err)

	// Reward clamped to the ledger scale, creation time stamped
	s.Equal("0.01000000", saved.Reward.StringFixed(8))
	s.Equal(s.testTime, saved.CreatedAt)
}

func (s *LedgerServiceTestSuite) TestSetDailyChallengeInvalid() {
	tests := []struct {
		name   string
		config *models.DailyChallengeConfig
	}{
		{"nil config", nil},
		{"zero date", &models.DailyChallengeConfig{GridSize: 4, Steps: 6}},
		{"zero steps", &models.DailyChallengeConfig{Date: s.testDate, GridSize: 4}},
		{"grid too small", &models.DailyChallengeConfig{Date: s.testDate, GridSize: 1, Steps: 6}},
	}

	for _, tt := range tests {
		_, err := s.svc.SetDailyChallenge(s.ctx, &SetDailyChallengeInput{
			Caller: s.testOperator,
			Config: tt.config,
		})
		s.ErrorIs(err, ErrInvalidInput, tt.name)
	}
}

func (s *LedgerServiceTestSuite) TestGetDailyStatus() {
	s.mockRepo.EXPECT().GetDailyConfig(s.ctx, gomock.Any()).Return(s.dailyConfig(), nil)
	s.mockRepo.EXPECT().GetDailyState(s.ctx, gomock.Any()).
		Return(&models.DailyPlayerState{Date: s.testDate, PlayerID: s.testPlayerID, Attempts: 2}, nil)

	out, err := s.svc.GetDailyStatus(s.ctx, &GetDailyStatusInput{Date: s.testDate, PlayerID: s.testPlayerID})
	s.Require().NoError(err)
	s.True(out.Initialized)
	s.Equal(2, out.Attempts)
	s.Equal(3, out.MaxAttempts)
	s.False(out.Completed)
	s.True(out.CanAttempt)
}

func (s *LedgerServiceTestSuite) TestGetDailyStatusUninitialized() {
	s.mockRepo.EXPECT().GetDailyConfig(s.ctx, gomock.Any()).
		Return(nil, ledgerRepo.ErrDailyConfigNotFound)

	out, err := s.svc.GetDailyStatus(s.ctx, &GetDailyStatusInput{Date: s.testDate, PlayerID: s.testPlayerID})
	s.Require().NoError(err)
	s.False(out.Initialized)
	s.False(out.CanAttempt)
}
