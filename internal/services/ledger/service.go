package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gridlight/simonsays/internal/models"
	ledgerRepo "github.com/gridlight/simonsays/internal/repositories/ledger"
)

// amountScale is the fixed number of decimal places every ledger amount is
// truncated to. Truncation (not rounding) keeps the sum of credited rewards
// at or below the funded pool.
const amountScale = 8

var two = decimal.NewFromInt(2)

// service implements the Service interface
type service struct {
	config *Config
	repo   ledgerRepo.Repository

	// playerMu serializes conflicting mutations for the same player
	// (and, through the player, the same (player, date) pair)
	mu       sync.Mutex
	playerMu map[string]*sync.Mutex

	// escrowMu serializes escrow balance changes
	escrowMu sync.Mutex
}

// New creates a new reward ledger service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Repo == nil {
		return nil, ErrNilRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.MaxSteps == 0 {
		cfg.MaxSteps = 50
	}
	if cfg.MinGridSize == 0 {
		cfg.MinGridSize = 2
	}
	if cfg.MaxGridSize == 0 {
		cfg.MaxGridSize = 10
	}
	if cfg.TimeBonusMultiplier == 0 {
		cfg.TimeBonusMultiplier = 100
	}
	if cfg.DailyMaxAttempts == 0 {
		cfg.DailyMaxAttempts = 3
	}
	if cfg.RankWeights == nil {
		cfg.RankWeights = DefaultRankWeights
	}
	if len(cfg.RankWeights) != models.LeaderboardSize {
		return nil, ErrBadRankWeights
	}

	return &service{
		config:   cfg,
		repo:     cfg.Repo,
		playerMu: make(map[string]*sync.Mutex),
	}, nil
}

// lockPlayer acquires the per-player mutex and returns its unlock func
func (s *service) lockPlayer(playerID string) func() {
	s.mu.Lock()
	mu, ok := s.playerMu[playerID]
	if !ok {
		mu = &sync.Mutex{}
		s.playerMu[playerID] = mu
	}
	s.mu.Unlock()

	mu.Lock()
	return mu.Unlock
}

func (s *service) authorize(caller string) error {
	if caller == "" || caller != s.config.OperatorID {
		return ErrNotAuthorized
	}
	return nil
}

// truncAmount clamps an amount to the ledger's fixed scale
func truncAmount(d decimal.Decimal) decimal.Decimal {
	return d.Truncate(amountScale)
}

// infiniteReward computes the reward for a qualifying infinite round:
// correctSteps * baseRewardPerStep, plus a bonus scaled by the remaining
// fraction of the time limit, plus half again for a perfect run.
func (s *service) infiniteReward(correctSteps int, elapsedMs, timeLimitMs int64, perfect bool) decimal.Decimal {
	reward := truncAmount(s.config.BaseRewardPerStep.Mul(decimal.NewFromInt(int64(correctSteps))))

	if timeLimitMs > 0 {
		timeLeft := timeLimitMs - elapsedMs
		if timeLeft < 0 {
			timeLeft = 0
		}
		bonus := reward.
			Mul(decimal.NewFromInt(timeLeft)).
			Mul(decimal.NewFromInt(s.config.TimeBonusMultiplier)).
			Div(decimal.NewFromInt(timeLimitMs).Mul(decimal.NewFromInt(1000)))
		reward = reward.Add(truncAmount(bonus))
	}

	if perfect {
		reward = reward.Add(truncAmount(reward.Div(two)))
	}

	return reward
}

// getOrCreateStats loads a player's stats, starting a fresh record at level 1
// for players who have never settled a round
func (s *service) getOrCreateStats(ctx context.Context, playerID string) (*models.PlayerStats, error) {
	stats, err := s.repo.GetPlayerStats(ctx, &ledgerRepo.GetPlayerStatsInput{PlayerID: playerID})
	if err != nil {
		if errors.Is(err, ledgerRepo.ErrStatsNotFound) {
			return models.NewPlayerStats(playerID), nil
		}
		return nil, err
	}
	return stats, nil
}

// creditPending adds an amount to a player's unwithdrawn balance.
// Caller must hold the player lock.
func (s *service) creditPending(ctx context.Context, playerID string, amount decimal.Decimal) error {
	pending, err := s.repo.GetPendingReward(ctx, &ledgerRepo.GetPendingRewardInput{PlayerID: playerID})
	if err != nil {
		return err
	}
	return s.repo.SetPendingReward(ctx, &ledgerRepo.SetPendingRewardInput{
		PlayerID: playerID,
		Amount:   pending.Add(amount),
	})
}

// RecordInfiniteRound settles an infinite-mode round. Reward, level, streak,
// perfect count and best score advance only for a verified, perfect, in-time
// round; total rounds and total score advance unconditionally.
func (s *service) RecordInfiniteRound(ctx context.Context, input *RecordInfiniteRoundInput) (*RecordInfiniteRoundOutput, error) {
	if err := s.authorize(input.Caller); err != nil {
		return nil, err
	}

	if input.Steps <= 0 || input.Steps > s.config.MaxSteps ||
		input.CorrectSteps < 0 || input.CorrectSteps > input.Steps ||
		input.GridSize < s.config.MinGridSize || input.GridSize > s.config.MaxGridSize {
		return nil, ErrInvalidInput
	}

	unlock := s.lockPlayer(input.PlayerID)
	defer unlock()

	stats, err := s.getOrCreateStats(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	perfect := input.CorrectSteps == input.Steps
	qualifies := input.Verified && perfect && !input.TimeExpired

	failureReason := models.FailureReasonNone
	if input.TimeExpired {
		failureReason = models.FailureReasonTimeExpired
	} else if !perfect {
		failureReason = models.FailureReasonWrongSequence
	}

	reward := decimal.Zero
	if qualifies {
		reward = s.infiniteReward(input.CorrectSteps, input.ElapsedMs, input.TimeLimitMs, true)
	}

	roundID, err := s.repo.NextRoundID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to assign round id: %w", err)
	}

	now := s.config.Clock.Now()
	round := &models.Round{
		ID:            roundID,
		PlayerID:      input.PlayerID,
		Type:          models.RoundTypeInfinite,
		Level:         stats.CurrentLevel,
		GridSize:      input.GridSize,
		TotalSteps:    input.Steps,
		CorrectSteps:  input.CorrectSteps,
		Score:         input.Score,
		ElapsedMs:     input.ElapsedMs,
		TimeLimitMs:   input.TimeLimitMs,
		Reward:        reward,
		Verified:      input.Verified,
		FailureReason: failureReason,
		SettledAt:     now,
	}

	if err := s.repo.SaveRound(ctx, &ledgerRepo.SaveRoundInput{Round: round}); err != nil {
		return nil, err
	}

	stats.TotalRounds++
	stats.TotalScore += input.Score
	stats.UpdatedAt = now

	var outcome SettlementOutcome
	switch {
	case qualifies:
		stats.CurrentLevel++
		stats.CurrentStreak++
		stats.PerfectRoundsCount++
		if input.Score > stats.BestScore {
			stats.BestScore = input.Score
		}
		stats.TotalRewards = stats.TotalRewards.Add(reward)
		if err := s.creditPending(ctx, input.PlayerID, reward); err != nil {
			return nil, err
		}
		outcome = OutcomeLeveledUp
		s.config.Logger.Info().
			Str("player", input.PlayerID).
			Int64("round", roundID).
			Int("level", stats.CurrentLevel).
			Str("reward", reward.String()).
			Msg("level up")
	case input.Verified:
		stats.CurrentStreak = 0
		if input.TimeExpired {
			stats.TimeoutsCount++
			outcome = OutcomeTimedOut
			s.config.Logger.Info().
				Str("player", input.PlayerID).
				Int64("round", roundID).
				Msg("round time expired")
		} else {
			outcome = OutcomePartialCredit
		}
	default:
		// Failed verification: the round is recorded for audit but has no
		// effect on level, streak, or rewards.
		outcome = OutcomeRejected
		s.config.Logger.Warn().
			Str("player", input.PlayerID).
			Int64("round", roundID).
			Msg("unverified round rejected for rewards")
	}

	if err := s.repo.SavePlayerStats(ctx, &ledgerRepo.SavePlayerStatsInput{Stats: stats}); err != nil {
		return nil, err
	}

	return &RecordInfiniteRoundOutput{
		RoundID: roundID,
		Outcome: outcome,
		Reward:  reward,
		Level:   stats.CurrentLevel,
		Streak:  stats.CurrentStreak,
	}, nil
}

// RecordDailyChallenge settles a daily challenge attempt. The daily path is
// all-or-nothing: only a verified, perfect, in-time run settles; a graded
// failure still consumes one of the date's attempts.
func (s *service) RecordDailyChallenge(ctx context.Context, input *RecordDailyChallengeInput) (*RecordDailyChallengeOutput, error) {
	if err := s.authorize(input.Caller); err != nil {
		return nil, err
	}

	if input.TotalSteps <= 0 || input.CorrectSteps < 0 || input.CorrectSteps > input.TotalSteps {
		return nil, ErrInvalidInput
	}

	unlock := s.lockPlayer(input.PlayerID)
	defer unlock()

	challenge, err := s.repo.GetDailyConfig(ctx, &ledgerRepo.GetDailyConfigInput{Date: input.Date})
	if err != nil {
		if errors.Is(err, ledgerRepo.ErrDailyConfigNotFound) {
			return nil, ErrDailyNotInitialized
		}
		return nil, err
	}

	state, err := s.repo.GetDailyState(ctx, &ledgerRepo.GetDailyStateInput{
		Date:     input.Date,
		PlayerID: input.PlayerID,
	})
	if err != nil {
		if !errors.Is(err, ledgerRepo.ErrDailyStateNotFound) {
			return nil, err
		}
		state = &models.DailyPlayerState{
			Date:     input.Date,
			PlayerID: input.PlayerID,
		}
	}

	if state.Completed {
		return nil, ErrAlreadyCompleted
	}
	if state.Attempts >= s.config.DailyMaxAttempts {
		return nil, ErrTriesExceeded
	}

	state.Attempts++

	if !input.Verified || input.CorrectSteps != input.TotalSteps || input.TimeExpired {
		// The failed run still burns an attempt
		if err := s.repo.SaveDailyState(ctx, &ledgerRepo.SaveDailyStateInput{State: state}); err != nil {
			return nil, err
		}
		return nil, ErrNotVerified
	}

	roundID, err := s.repo.NextRoundID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to assign round id: %w", err)
	}

	now := s.config.Clock.Now()
	reward := truncAmount(challenge.Reward)

	round := &models.Round{
		ID:            roundID,
		PlayerID:      input.PlayerID,
		Type:          models.RoundTypeDaily,
		Level:         0,
		GridSize:      challenge.GridSize,
		TotalSteps:    input.TotalSteps,
		CorrectSteps:  input.CorrectSteps,
		Score:         input.Score,
		ElapsedMs:     input.ElapsedMs,
		TimeLimitMs:   input.TimeLimitMs,
		Reward:        reward,
		Verified:      true,
		FailureReason: models.FailureReasonNone,
		SettledAt:     now,
	}

	if err := s.repo.SaveRound(ctx, &ledgerRepo.SaveRoundInput{Round: round}); err != nil {
		return nil, err
	}

	state.Completed = true
	state.CompletedAt = now
	if err := s.repo.SaveDailyState(ctx, &ledgerRepo.SaveDailyStateInput{State: state}); err != nil {
		return nil, err
	}

	stats, err := s.getOrCreateStats(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	stats.TotalRounds++
	stats.TotalScore += input.Score
	stats.PerfectRoundsCount++
	stats.TotalRewards = stats.TotalRewards.Add(reward)
	stats.LastDailyChallengeDate = input.Date
	stats.UpdatedAt = now
	if err := s.repo.SavePlayerStats(ctx, &ledgerRepo.SavePlayerStatsInput{Stats: stats}); err != nil {
		return nil, err
	}

	if err := s.creditPending(ctx, input.PlayerID, reward); err != nil {
		return nil, err
	}

	s.config.Logger.Info().
		Str("player", input.PlayerID).
		Int("date", input.Date).
		Int64("round", roundID).
		Str("reward", reward.String()).
		Msg("daily challenge completed")

	return &RecordDailyChallengeOutput{
		RoundID: roundID,
		Outcome: OutcomeDailyCompleted,
		Reward:  reward,
	}, nil
}

// UpdateLeaderboardAndPay replaces the leaderboard table wholesale and
// credits each ranked player its weighted share of the pool
func (s *service) UpdateLeaderboardAndPay(ctx context.Context, input *UpdateLeaderboardInput) (*UpdateLeaderboardOutput, error) {
	if err := s.authorize(input.Caller); err != nil {
		return nil, err
	}

	if len(input.Players) != models.LeaderboardSize ||
		len(input.Scores) != models.LeaderboardSize ||
		len(input.Levels) != models.LeaderboardSize {
		return nil, ErrArityMismatch
	}

	now := s.config.Clock.Now()
	entries := make([]models.LeaderboardEntry, models.LeaderboardSize)
	for i := range entries {
		entries[i] = models.LeaderboardEntry{
			PlayerID: input.Players[i],
			Score:    input.Scores[i],
			Level:    input.Levels[i],
		}
	}

	if err := s.repo.SaveLeaderboard(ctx, &ledgerRepo.SaveLeaderboardInput{
		Leaderboard: &models.Leaderboard{
			Entries: entries,
			PaidAt:  now,
		},
	}); err != nil {
		return nil, err
	}

	distributed := decimal.Zero
	for i, playerID := range input.Players {
		if playerID == models.NoPlayer {
			continue
		}

		share := truncAmount(s.config.LeaderboardPool.
			Mul(decimal.NewFromInt(s.config.RankWeights[i])).
			Div(decimal.NewFromInt(100)))
		if share.IsZero() {
			continue
		}

		if err := s.payRank(ctx, playerID, share, now); err != nil {
			return nil, fmt.Errorf("failed to pay rank %d: %w", i+1, err)
		}
		distributed = distributed.Add(share)
	}

	s.config.Logger.Info().
		Str("distributed", distributed.String()).
		Time("paid_at", now).
		Msg("leaderboard updated and paid")

	return &UpdateLeaderboardOutput{
		Distributed: distributed,
		PaidAt:      now,
	}, nil
}

// payRank credits one ranked player under its player lock
func (s *service) payRank(ctx context.Context, playerID string, share decimal.Decimal, now time.Time) error {
	unlock := s.lockPlayer(playerID)
	defer unlock()

	stats, err := s.getOrCreateStats(ctx, playerID)
	if err != nil {
		return err
	}
	stats.TotalRewards = stats.TotalRewards.Add(share)
	stats.UpdatedAt = now
	if err := s.repo.SavePlayerStats(ctx, &ledgerRepo.SavePlayerStatsInput{Stats: stats}); err != nil {
		return err
	}

	return s.creditPending(ctx, playerID, share)
}

// Withdraw drains a player's pending rewards. Pending is zeroed before the
// escrow debit so a concurrent re-entry finds nothing left to withdraw.
func (s *service) Withdraw(ctx context.Context, input *WithdrawInput) (*WithdrawOutput, error) {
	unlock := s.lockPlayer(input.PlayerID)
	defer unlock()

	pending, err := s.repo.GetPendingReward(ctx, &ledgerRepo.GetPendingRewardInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}
	if pending.IsZero() {
		return nil, ErrNoRewards
	}

	s.escrowMu.Lock()
	defer s.escrowMu.Unlock()

	balance, err := s.repo.GetEscrowBalance(ctx)
	if err != nil {
		return nil, err
	}
	if balance.LessThan(pending) {
		s.config.Logger.Error().
			Str("player", input.PlayerID).
			Str("pending", pending.String()).
			Str("escrow", balance.String()).
			Msg("escrow cannot cover pending rewards")
		return nil, ErrInsufficientFunds
	}

	// Zero first, then transfer
	if err := s.repo.SetPendingReward(ctx, &ledgerRepo.SetPendingRewardInput{
		PlayerID: input.PlayerID,
		Amount:   decimal.Zero,
	}); err != nil {
		return nil, err
	}
	if err := s.repo.SetEscrowBalance(ctx, &ledgerRepo.SetEscrowBalanceInput{
		Amount: balance.Sub(pending),
	}); err != nil {
		return nil, err
	}

	s.config.Logger.Info().
		Str("player", input.PlayerID).
		Str("amount", pending.String()).
		Msg("rewards withdrawn")

	return &WithdrawOutput{Amount: pending}, nil
}

// FundEscrow credits the escrow balance
func (s *service) FundEscrow(ctx context.Context, input *FundEscrowInput) (*FundEscrowOutput, error) {
	if err := s.authorize(input.Caller); err != nil {
		return nil, err
	}
	if !input.Amount.IsPositive() {
		return nil, ErrInvalidInput
	}

	s.escrowMu.Lock()
	defer s.escrowMu.Unlock()

	balance, err := s.repo.GetEscrowBalance(ctx)
	if err != nil {
		return nil, err
	}

	balance = balance.Add(truncAmount(input.Amount))
	if err := s.repo.SetEscrowBalance(ctx, &ledgerRepo.SetEscrowBalanceInput{Amount: balance}); err != nil {
		return nil, err
	}

	return &FundEscrowOutput{Balance: balance}, nil
}

// Drain moves the entire escrow balance to the operator
func (s *service) Drain(ctx context.Context, input *DrainInput) (*DrainOutput, error) {
	if err := s.authorize(input.Caller); err != nil {
		return nil, err
	}

	s.escrowMu.Lock()
	defer s.escrowMu.Unlock()

	balance, err := s.repo.GetEscrowBalance(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetEscrowBalance(ctx, &ledgerRepo.SetEscrowBalanceInput{Amount: decimal.Zero}); err != nil {
		return nil, err
	}

	s.config.Logger.Warn().
		Str("amount", balance.String()).
		Msg("escrow drained to operator")

	return &DrainOutput{Amount: balance}, nil
}

// SetDailyChallenge configures a date's challenge
func (s *service) SetDailyChallenge(ctx context.Context, input *SetDailyChallengeInput) (*SetDailyChallengeOutput, error) {
	if err := s.authorize(input.Caller); err != nil {
		return nil, err
	}
	if input.Config == nil || input.Config.Date == 0 ||
		input.Config.Steps <= 0 || input.Config.Steps > s.config.MaxSteps ||
		input.Config.GridSize < s.config.MinGridSize || input.Config.GridSize > s.config.MaxGridSize {
		return nil, ErrInvalidInput
	}

	cfg := *input.Config
	cfg.Reward = truncAmount(cfg.Reward)
	cfg.CreatedAt = s.config.Clock.Now()

	if err := s.repo.SaveDailyConfig(ctx, &ledgerRepo.SaveDailyConfigInput{Config: &cfg}); err != nil {
		return nil, err
	}

	return &SetDailyChallengeOutput{}, nil
}

// GetPlayerStats retrieves a player's stats, zero-valued for new players
func (s *service) GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*GetPlayerStatsOutput, error) {
	stats, err := s.getOrCreateStats(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	pending, err := s.repo.GetPendingReward(ctx, &ledgerRepo.GetPendingRewardInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}

	return &GetPlayerStatsOutput{Stats: stats, Pending: pending}, nil
}

// GetRound retrieves a settled round by id
func (s *service) GetRound(ctx context.Context, input *GetRoundInput) (*GetRoundOutput, error) {
	round, err := s.repo.GetRound(ctx, &ledgerRepo.GetRoundInput{RoundID: input.RoundID})
	if err != nil {
		return nil, err
	}
	return &GetRoundOutput{Round: round}, nil
}

// GetRounds retrieves a player's recent rounds
func (s *service) GetRounds(ctx context.Context, input *GetRoundsInput) (*GetRoundsOutput, error) {
	out, err := s.repo.GetRoundsForPlayer(ctx, &ledgerRepo.GetRoundsForPlayerInput{
		PlayerID: input.PlayerID,
		Limit:    input.Limit,
	})
	if err != nil {
		return nil, err
	}
	return &GetRoundsOutput{Rounds: out.Rounds}, nil
}

// GetDailyStatus reports a player's standing on a date's challenge
func (s *service) GetDailyStatus(ctx context.Context, input *GetDailyStatusInput) (*GetDailyStatusOutput, error) {
	out := &GetDailyStatusOutput{
		MaxAttempts: s.config.DailyMaxAttempts,
	}

	challenge, err := s.repo.GetDailyConfig(ctx, &ledgerRepo.GetDailyConfigInput{Date: input.Date})
	if err != nil {
		if errors.Is(err, ledgerRepo.ErrDailyConfigNotFound) {
			return out, nil
		}
		return nil, err
	}
	out.Initialized = true
	out.Config = challenge

	state, err := s.repo.GetDailyState(ctx, &ledgerRepo.GetDailyStateInput{
		Date:     input.Date,
		PlayerID: input.PlayerID,
	})
	if err != nil {
		if !errors.Is(err, ledgerRepo.ErrDailyStateNotFound) {
			return nil, err
		}
		out.CanAttempt = true
		return out, nil
	}

	out.Attempts = state.Attempts
	out.Completed = state.Completed
	out.CanAttempt = !state.Completed && state.Attempts < s.config.DailyMaxAttempts
	return out, nil
}

// GetLeaderboard retrieves the current leaderboard table
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	board, err := s.repo.GetLeaderboard(ctx)
	if err != nil {
		return nil, err
	}
	return &GetLeaderboardOutput{Leaderboard: board}, nil
}

// GetEscrowBalance retrieves the escrowed funds
func (s *service) GetEscrowBalance(ctx context.Context) (*GetEscrowBalanceOutput, error) {
	balance, err := s.repo.GetEscrowBalance(ctx)
	if err != nil {
		return nil, err
	}
	return &GetEscrowBalanceOutput{Balance: balance}, nil
}
