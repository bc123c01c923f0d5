package round

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/gridlight/simonsays/internal/anticheat"
	clockMocks "github.com/gridlight/simonsays/internal/common/clock/mocks"
	tokenMocks "github.com/gridlight/simonsays/internal/common/token/mocks"
	"github.com/gridlight/simonsays/internal/models"
	seqMocks "github.com/gridlight/simonsays/internal/sequence/mocks"
	ledgerService "github.com/gridlight/simonsays/internal/services/ledger"
	ledgerMocks "github.com/gridlight/simonsays/internal/services/ledger/mocks"
	"github.com/gridlight/simonsays/internal/services/payout"
)

type RoundServiceTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockLedger *ledgerMocks.MockService
	mockClock  *clockMocks.MockClock
	mockGen    *seqMocks.MockGenerator
	mockTokens *tokenMocks.MockSource
	svc        Service
	ctx        context.Context

	// Test data
	now          time.Time
	testPlayerID string
	testOperator string
	testDate     int
}

func (s *RoundServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockLedger = ledgerMocks.NewMockService(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockGen = seqMocks.NewMockGenerator(s.mockCtrl)
	s.mockTokens = tokenMocks.NewMockSource(s.mockCtrl)

	s.ctx = context.Background()

	s.now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	s.testPlayerID = "test-player-id"
	s.testOperator = "operator-id"
	s.testDate = 20260314

	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time {
		return s.now
	}).AnyTimes()

	svc, err := New(&Config{
		OperatorID: s.testOperator,
		Ledger:     s.mockLedger,
		Generator:  s.mockGen,
		Tokens:     s.mockTokens,
		Clock:      s.mockClock,
		Logger:     zerolog.Nop(),
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *RoundServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoundServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RoundServiceTestSuite))
}

// issueInfinite starts a level-3 infinite round with a fixed token and
// sequence. Level 3 yields a 3x3 grid, 4 steps, and a 14600ms limit.
func (s *RoundServiceTestSuite) issueInfinite() *StartRoundOutput {
	s.mockTokens.EXPECT().NewToken().Return("round-token-1")
	s.mockGen.EXPECT().Generate(3, 4).Return([]int{1, 4, 7, 2})

	out, err := s.svc.StartRound(s.ctx, &StartRoundInput{
		PlayerID: s.testPlayerID,
		Mode:     models.RoundTypeInfinite,
		Level:    3,
	})
	s.Require().NoError(err)
	return out
}

func (s *RoundServiceTestSuite) TestStartRoundInfinite() {
	out := s.issueInfinite()

	s.Equal("round-token-1", out.Token)
	s.Equal([]int{1, 4, 7, 2}, out.Sequence)
	s.Equal(3, out.Level)
	s.Equal(3, out.Params.GridSize)
	s.Equal(4, out.Params.Steps)
	s.Equal(int64(14600), out.Params.TimeLimitMs)
}

func (s *RoundServiceTestSuite) TestStartRoundUsesLedgerLevel() {
	s.mockLedger.EXPECT().GetPlayerStats(s.ctx, &ledgerService.GetPlayerStatsInput{PlayerID: s.testPlayerID}).
		Return(&ledgerService.GetPlayerStatsOutput{
			Stats: &models.PlayerStats{PlayerID: s.testPlayerID, CurrentLevel: 6},
		}, nil)
	s.mockTokens.EXPECT().NewToken().Return("round-token-2")
	s.mockGen.EXPECT().Generate(4, 5).Return([]int{0, 1, 2, 3, 4})

	out, err := s.svc.StartRound(s.ctx, &StartRoundInput{
		PlayerID: s.testPlayerID,
		Mode:     models.RoundTypeInfinite,
	})
	s.Require().NoError(err)
	s.Equal(6, out.Level)
	s.Equal(4, out.Params.GridSize)
	s.Equal(5, out.Params.Steps)
}

func (s *RoundServiceTestSuite) TestSubmitRoundPerfect() {
	s.issueInfinite()
	s.now = s.now.Add(2500 * time.Millisecond)

	var recorded *ledgerService.RecordInfiniteRoundInput
	s.mockLedger.EXPECT().RecordInfiniteRound(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledgerService.RecordInfiniteRoundInput) (*ledgerService.RecordInfiniteRoundOutput, error) {
			recorded = input
			return &ledgerService.RecordInfiniteRoundOutput{
				RoundID: 7,
				Outcome: ledgerService.OutcomeLeveledUp,
				Reward:  decimal.RequireFromString("0.006"),
				Level:   4,
				Streak:  3,
			}, nil
		})

	out, err := s.svc.SubmitRound(s.ctx, &SubmitRoundInput{
		Token:    "round-token-1",
		PlayerID: s.testPlayerID,
		Clicks:   []int{1, 4, 7, 2},
	})
	s.Require().NoError(err)

	s.Equal(s.testOperator, recorded.Caller)
	s.Equal(4, recorded.CorrectSteps)
	s.Equal(4, recorded.Steps)
	s.Equal(int64(2500), recorded.ElapsedMs)
	s.Equal(int64(14600), recorded.TimeLimitMs)
	s.False(recorded.TimeExpired)
	s.True(recorded.Verified)
	// 40 base + 121 time bonus, 1.5x perfect, 1.1x twice for level 3
	s.Equal(int64(291), recorded.Score)

	s.True(out.Settled)
	s.True(out.CanContinue)
	s.Equal(int64(7), out.RoundID)
	s.Equal(ledgerService.OutcomeLeveledUp, out.Outcome)
	s.Equal("0.006", out.Reward.String())
	s.Equal(4, out.Level)
	s.Equal(3, out.Streak)
}

func (s *RoundServiceTestSuite) TestSubmitRoundStopsAtFirstMismatch() {
	s.issueInfinite()
	s.now = s.now.Add(3 * time.Second)

	var recorded *ledgerService.RecordInfiniteRoundInput
	s.mockLedger.EXPECT().RecordInfiniteRound(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledgerService.RecordInfiniteRoundInput) (*ledgerService.RecordInfiniteRoundOutput, error) {
			recorded = input
			return &ledgerService.RecordInfiniteRoundOutput{
				RoundID: 8,
				Outcome: ledgerService.OutcomePartialCredit,
				Reward:  decimal.Zero,
				Level:   3,
			}, nil
		})

	// The third click is wrong: the correct fourth click must not count
	out, err := s.svc.SubmitRound(s.ctx, &SubmitRoundInput{
		Token:    "round-token-1",
		PlayerID: s.testPlayerID,
		Clicks:   []int{1, 4, 9, 2},
	})
	s.Require().NoError(err)

	s.Equal(2, recorded.CorrectSteps)
	s.Equal(2, out.CorrectSteps)
	s.Equal(ledgerService.OutcomePartialCredit, out.Outcome)
	s.False(out.CanContinue)
}

func (s *RoundServiceTestSuite) TestSubmitRoundTimeExpired() {
	s.issueInfinite()
	s.now = s.now.Add(20 * time.Second)

	var recorded *ledgerService.RecordInfiniteRoundInput
	s.mockLedger.EXPECT().RecordInfiniteRound(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledgerService.RecordInfiniteRoundInput) (*ledgerService.RecordInfiniteRoundOutput, error) {
			recorded = input
			return &ledgerService.RecordInfiniteRoundOutput{
				RoundID: 9,
				Outcome: ledgerService.OutcomeTimedOut,
				Reward:  decimal.Zero,
				Level:   3,
			}, nil
		})

	out, err := s.svc.SubmitRound(s.ctx, &SubmitRoundInput{
		Token:    "round-token-1",
		PlayerID: s.testPlayerID,
		Clicks:   []int{1, 4, 7, 2},
	})
	s.Require().NoError(err)

	s.True(recorded.TimeExpired)
	s.True(out.TimeExpired)
	s.Equal(ledgerService.OutcomeTimedOut, out.Outcome)
}

func (s *RoundServiceTestSuite) TestSubmitRoundImplausibleTelemetry() {
	s.issueInfinite()
	s.now = s.now.Add(time.Second)

	var recorded *ledgerService.RecordInfiniteRoundInput
	s.mockLedger.EXPECT().RecordInfiniteRound(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledgerService.RecordInfiniteRoundInput) (*ledgerService.RecordInfiniteRoundOutput, error) {
			recorded = input
			return &ledgerService.RecordInfiniteRoundOutput{
				RoundID: 10,
				Outcome: ledgerService.OutcomeRejected,
				Reward:  decimal.Zero,
				Level:   3,
			}, nil
		})

	// 10ms between clicks is far below the human minimum
	out, err := s.svc.SubmitRound(s.ctx, &SubmitRoundInput{
		Token:    "round-token-1",
		PlayerID: s.testPlayerID,
		Clicks:   []int{1, 4, 7, 2},
		Telemetry: &anticheat.Telemetry{
			SequenceShownAtMs: 1000,
			ClickTimestampsMs: []int64{1010, 1020, 1030, 1040},
		},
	})
	s.Require().NoError(err)

	s.False(recorded.Verified)
	s.False(out.Verified)
	s.Equal(ledgerService.OutcomeRejected, out.Outcome)
	s.True(out.Reward.IsZero())
}

func (s *RoundServiceTestSuite) TestSubmitRoundUnknownToken() {
	_, err := s.svc.SubmitRound(s.ctx, &SubmitRoundInput{
		Token:    "no-such-token",
		PlayerID: s.testPlayerID,
	})
	s.ErrorIs(err, ErrRoundNotFound)
}

func (s *RoundServiceTestSuite) TestSubmitRoundWrongOwner() {
	s.issueInfinite()

	_, err := s.svc.SubmitRound(s.ctx, &SubmitRoundInput{
		Token:    "round-token-1",
		PlayerID: "someone-else",
	})
	s.ErrorIs(err, ErrNotRoundOwner)

	// The probe must not have consumed the round
	s.mockLedger.EXPECT().RecordInfiniteRound(s.ctx, gomock.Any()).
		Return(&ledgerService.RecordInfiniteRoundOutput{
			RoundID: 11,
			Outcome: ledgerService.OutcomeLeveledUp,
			Level:   4,
			Streak:  1,
		}, nil)

	out, err := s.svc.SubmitRound(s.ctx, &SubmitRoundInput{
		Token:    "round-token-1",
		PlayerID: s.testPlayerID,
		Clicks:   []int{1, 4, 7, 2},
	})
	s.Require().NoError(err)
	s.True(out.Settled)
}

func (s *RoundServiceTestSuite) TestSubmitRoundConsumedExactlyOnce() {
	s.issueInfinite()

	s.mockLedger.EXPECT().RecordInfiniteRound(s.ctx, gomock.Any()).
		Return(&ledgerService.RecordInfiniteRoundOutput{
			RoundID: 12,
			Outcome: ledgerService.OutcomeLeveledUp,
			Level:   4,
			Streak:  1,
		}, nil)

	input := &SubmitRoundInput{
		Token:    "round-token-1",
		PlayerID: s.testPlayerID,
		Clicks:   []int{1, 4, 7, 2},
	}

	_, err := s.svc.SubmitRound(s.ctx, input)
	s.Require().NoError(err)

	_, err = s.svc.SubmitRound(s.ctx, input)
	s.ErrorIs(err, ErrRoundNotFound)
}

func (s *RoundServiceTestSuite) TestSubmitRoundLedgerFailure() {
	s.issueInfinite()
	s.now = s.now.Add(2 * time.Second)

	s.mockLedger.EXPECT().RecordInfiniteRound(s.ctx, gomock.Any()).
		Return(nil, ledgerService.LedgerError("redis is down"))

	input := &SubmitRoundInput{
		Token:    "round-token-1",
		PlayerID: s.testPlayerID,
		Clicks:   []int{1, 4, 7, 2},
	}

	out, err := s.svc.SubmitRound(s.ctx, input)
	s.Require().NoError(err)

	// Graded for the player, but nothing was credited and nothing retries
	s.False(out.Settled)
	s.False(out.CanContinue)
	s.Equal(int64(0), out.RoundID)
	s.True(out.Reward.IsZero())
	s.Equal(4, out.CorrectSteps)

	_, err = s.svc.SubmitRound(s.ctx, input)
	s.ErrorIs(err, ErrRoundNotFound)
}

func (s *RoundServiceTestSuite) dailyStatus() *ledgerService.GetDailyStatusOutput {
	return &ledgerService.GetDailyStatusOutput{
		Initialized: true,
		Config: &models.DailyChallengeConfig{
			Date:           s.testDate,
			GridSize:       4,
			Steps:          6,
			ShowDurationMs: 600,
			IntervalMs:     300,
			TimeLimitMs:    12000,
			Reward:         decimal.RequireFromString("0.01"),
		},
		MaxAttempts: 3,
		CanAttempt:  true,
	}
}

func (s *RoundServiceTestSuite) issueDaily() *StartRoundOutput {
	s.mockLedger.EXPECT().GetDailyStatus(s.ctx, &ledgerService.GetDailyStatusInput{
		Date:     s.testDate,
		PlayerID: s.testPlayerID,
	}).Return(s.dailyStatus(), nil)
	s.mockTokens.EXPECT().NewToken().Return("daily-token-1")
	s.mockGen.EXPECT().Generate(4, 6).Return([]int{0, 1, 2, 3, 4, 5})

	out, err := s.svc.StartRound(s.ctx, &StartRoundInput{
		PlayerID: s.testPlayerID,
		Mode:     models.RoundTypeDaily,
	})
	s.Require().NoError(err)
	return out
}

func (s *RoundServiceTestSuite) TestStartRoundDaily() {
	out := s.issueDaily()

	// The date defaults to today in UTC
	s.Equal(s.testDate, out.Date)
	s.Equal("daily-token-1", out.Token)
	s.Equal(4, out.Params.GridSize)
	s.Equal(6, out.Params.Steps)
	s.Equal(int64(12000), out.Params.TimeLimitMs)
}

func (s *RoundServiceTestSuite) TestStartRoundDailyUnconfigured() {
	s.mockLedger.EXPECT().GetDailyStatus(s.ctx, gomock.Any()).
		Return(&ledgerService.GetDailyStatusOutput{}, nil)

	_, err := s.svc.StartRound(s.ctx, &StartRoundInput{
		PlayerID: s.testPlayerID,
		Mode:     models.RoundTypeDaily,
	})
	s.ErrorIs(err, ledgerService.ErrDailyNotInitialized)
}

func (s *RoundServiceTestSuite) TestStartRoundDailyAlreadyCompleted() {
	status := s.dailyStatus()
	status.Completed = true
	status.CanAttempt = false
	s.mockLedger.EXPECT().GetDailyStatus(s.ctx, gomock.Any()).Return(status, nil)

	_, err := s.svc.StartRound(s.ctx, &StartRoundInput{
		PlayerID: s.testPlayerID,
		Mode:     models.RoundTypeDaily,
	})
	s.ErrorIs(err, ledgerService.ErrAlreadyCompleted)
}

func (s *RoundServiceTestSuite) TestStartRoundDailyTriesExceeded() {
	status := s.dailyStatus()
	status.Attempts = 3
	status.CanAttempt = false
	s.mockLedger.EXPECT().GetDailyStatus(s.ctx, gomock.Any()).Return(status, nil)

	_, err := s.svc.StartRound(s.ctx, &StartRoundInput{
		PlayerID: s.testPlayerID,
		Mode:     models.RoundTypeDaily,
	})
	s.ErrorIs(err, ledgerService.ErrTriesExceeded)
}

func (s *RoundServiceTestSuite) TestSubmitRoundDailyCompleted() {
	s.issueDaily()
	s.now = s.now.Add(4 * time.Second)

	var recorded *ledgerService.RecordDailyChallengeInput
	s.mockLedger.EXPECT().RecordDailyChallenge(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledgerService.RecordDailyChallengeInput) (*ledgerService.RecordDailyChallengeOutput, error) {
			recorded = input
			return &ledgerService.RecordDailyChallengeOutput{
				RoundID: 20,
				Outcome: ledgerService.OutcomeDailyCompleted,
				Reward:  decimal.RequireFromString("0.01"),
			}, nil
		})

	out, err := s.svc.SubmitRound(s.ctx, &SubmitRoundInput{
		Token:    "daily-token-1",
		PlayerID: s.testPlayerID,
		Clicks:   []int{0, 1, 2, 3, 4, 5},
	})
	s.Require().NoError(err)

	s.Equal(s.testDate, recorded.Date)
	s.Equal(6, recorded.CorrectSteps)
	// 60 base + 80 time bonus, 1.5x perfect, no level multiplier
	s.Equal(int64(210), recorded.Score)

	s.True(out.Settled)
	s.False(out.CanContinue)
	s.Equal(int64(20), out.RoundID)
	s.Equal(ledgerService.OutcomeDailyCompleted, out.Outcome)
	s.Equal("0.01", out.Reward.String())
}

func (s *RoundServiceTestSuite) TestSubmitRoundDailyFailedRun() {
	s.issueDaily()
	s.now = s.now.Add(4 * time.Second)

	s.mockLedger.EXPECT().RecordDailyChallenge(s.ctx, gomock.Any()).
		Return(nil, ledgerService.ErrNotVerified)

	out, err := s.svc.SubmitRound(s.ctx, &SubmitRoundInput{
		Token:    "daily-token-1",
		PlayerID: s.testPlayerID,
		Clicks:   []int{0, 1, 2, 9, 4, 5},
	})
	s.Require().NoError(err)

	// The attempt was consumed but nothing settled
	s.False(out.Settled)
	s.Equal(int64(0), out.RoundID)
	s.Equal(3, out.CorrectSteps)
	s.Equal(ledgerService.OutcomePartialCredit, out.Outcome)
	s.True(out.Reward.IsZero())
}

func (s *RoundServiceTestSuite) TestSubmitRoundDailyRaced() {
	s.issueDaily()

	s.mockLedger.EXPECT().RecordDailyChallenge(s.ctx, gomock.Any()).
		Return(nil, ledgerService.ErrAlreadyCompleted)

	_, err := s.svc.SubmitRound(s.ctx, &SubmitRoundInput{
		Token:    "daily-token-1",
		PlayerID: s.testPlayerID,
		Clicks:   []int{0, 1, 2, 3, 4, 5},
	})
	s.ErrorIs(err, ledgerService.ErrAlreadyCompleted)
}

func (s *RoundServiceTestSuite) TestSweepExpiresOnlyIdleRounds() {
	s.issueInfinite()

	// A second round issued much later must survive the sweep
	s.now = s.now.Add(10 * time.Minute)
	s.mockTokens.EXPECT().NewToken().Return("round-token-fresh")
	s.mockGen.EXPECT().Generate(3, 4).Return([]int{0, 0, 0, 0})
	_, err := s.svc.StartRound(s.ctx, &StartRoundInput{
		PlayerID: s.testPlayerID,
		Mode:     models.RoundTypeInfinite,
		Level:    3,
	})
	s.Require().NoError(err)

	out, err := s.svc.Sweep(s.ctx, &SweepInput{MaxIdle: 5 * time.Minute})
	s.Require().NoError(err)
	s.Equal(1, out.Expired)

	_, err = s.svc.SubmitRound(s.ctx, &SubmitRoundInput{
		Token:    "round-token-1",
		PlayerID: s.testPlayerID,
	})
	s.ErrorIs(err, ErrRoundNotFound)

	s.mockLedger.EXPECT().RecordInfiniteRound(s.ctx, gomock.Any()).
		Return(&ledgerService.RecordInfiniteRoundOutput{
			RoundID: 30,
			Outcome: ledgerService.OutcomePartialCredit,
			Level:   3,
		}, nil)
	fresh, err := s.svc.SubmitRound(s.ctx, &SubmitRoundInput{
		Token:    "round-token-fresh",
		PlayerID: s.testPlayerID,
		Clicks:   []int{0, 0, 0, 0},
	})
	s.Require().NoError(err)
	s.True(fresh.Settled)
}

func (s *RoundServiceTestSuite) TestSweepRejectsNonPositiveIdle() {
	_, err := s.svc.Sweep(s.ctx, &SweepInput{})
	s.ErrorIs(err, ErrInvalidInput)
}

// fakeRecorder captures leaderboard accumulation calls
type fakeRecorder struct {
	inputs []*payout.RecordInput
}

func (f *fakeRecorder) Record(input *payout.RecordInput) error {
	f.inputs = append(f.inputs, input)
	return nil
}

func (s *RoundServiceTestSuite) TestSubmitRoundFeedsScoreboard() {
	recorder := &fakeRecorder{}
	svc, err := New(&Config{
		OperatorID: s.testOperator,
		Ledger:     s.mockLedger,
		Generator:  s.mockGen,
		Tokens:     s.mockTokens,
		Clock:      s.mockClock,
		Scoreboard: recorder,
		Logger:     zerolog.Nop(),
	})
	s.Require().NoError(err)
	s.svc = svc

	s.issueInfinite()
	s.now = s.now.Add(2500 * time.Millisecond)

	s.mockLedger.EXPECT().RecordInfiniteRound(s.ctx, gomock.Any()).
		Return(&ledgerService.RecordInfiniteRoundOutput{
			RoundID: 40,
			Outcome: ledgerService.OutcomeLeveledUp,
			Level:   4,
			Streak:  1,
		}, nil)

	out, err := s.svc.SubmitRound(s.ctx, &SubmitRoundInput{
		Token:    "round-token-1",
		PlayerID: s.testPlayerID,
		Clicks:   []int{1, 4, 7, 2},
	})
	s.Require().NoError(err)

	s.Require().Len(recorder.inputs, 1)
	s.Equal(s.testPlayerID, recorder.inputs[0].PlayerID)
	s.Equal(out.Score, recorder.inputs[0].Score)
	s.Equal(4, recorder.inputs[0].Level)
}
