package round

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gridlight/simonsays/internal/anticheat"
	"github.com/gridlight/simonsays/internal/common/token"
	"github.com/gridlight/simonsays/internal/difficulty"
	"github.com/gridlight/simonsays/internal/models"
	"github.com/gridlight/simonsays/internal/scoring"
	"github.com/gridlight/simonsays/internal/sequence"
	ledgerService "github.com/gridlight/simonsays/internal/services/ledger"
	"github.com/gridlight/simonsays/internal/services/payout"
)

// activeRound is an issued, not-yet-submitted round. It lives only in
// memory: a restart forfeits active rounds, which is acceptable because
// nothing has been settled for them yet.
type activeRound struct {
	token    string
	playerID string
	mode     models.RoundType
	level    int
	date     int
	sequence []int
	params   difficulty.Params
	issuedAt time.Time
}

// service implements the Service interface
type service struct {
	config *Config
	ledger ledgerService.Service

	// mu guards the active round table. It is never held across a ledger
	// call: Submit claims the round, releases the lock, then settles.
	mu     sync.Mutex
	active map[string]*activeRound
}

// New creates a new round engine
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Ledger == nil {
		return nil, ErrNilLedger
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.Generator == nil {
		cfg.Generator = sequence.New()
	}
	if cfg.Tokens == nil {
		cfg.Tokens = token.New()
	}
	if cfg.Curve == nil {
		cfg.Curve = difficulty.New(nil)
	}
	if cfg.Scorer == nil {
		cfg.Scorer = scoring.New(nil)
	}
	if cfg.Verifier == nil {
		cfg.Verifier = anticheat.New(nil)
	}

	return &service{
		config: cfg,
		ledger: cfg.Ledger,
		active: make(map[string]*activeRound),
	}, nil
}

// StartRound issues a sequence and a single-use round token
func (s *service) StartRound(ctx context.Context, input *StartRoundInput) (*StartRoundOutput, error) {
	if input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	switch input.Mode {
	case models.RoundTypeInfinite:
		return s.startInfinite(ctx, input)
	case models.RoundTypeDaily:
		return s.startDaily(ctx, input)
	default:
		return nil, ErrInvalidInput
	}
}

func (s *service) startInfinite(ctx context.Context, input *StartRoundInput) (*StartRoundOutput, error) {
	level := input.Level
	if level <= 0 {
		stats, err := s.ledger.GetPlayerStats(ctx, &ledgerService.GetPlayerStatsInput{
			PlayerID: input.PlayerID,
		})
		if err != nil {
			return nil, err
		}
		level = stats.Stats.CurrentLevel
	}

	params := s.config.Curve.ForLevel(level)
	round := &activeRound{
		token:    s.config.Tokens.NewToken(),
		playerID: input.PlayerID,
		mode:     models.RoundTypeInfinite,
		level:    level,
		sequence: s.config.Generator.Generate(params.GridSize, params.Steps),
		params:   params,
		issuedAt: s.config.Clock.Now(),
	}
	s.admit(round)

	s.config.Logger.Debug().
		Str("player", input.PlayerID).
		Int("level", level).
		Int("steps", params.Steps).
		Msg("infinite round issued")

	return &StartRoundOutput{
		Token:    round.token,
		Sequence: round.sequence,
		Params:   params,
		Level:    level,
	}, nil
}

func (s *service) startDaily(ctx context.Context, input *StartRoundInput) (*StartRoundOutput, error) {
	date := input.Date
	if date == 0 {
		date = dateOf(s.config.Clock.Now())
	}

	status, err := s.ledger.GetDailyStatus(ctx, &ledgerService.GetDailyStatusInput{
		Date:     date,
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, err
	}
	if !status.Initialized {
		return nil, ledgerService.ErrDailyNotInitialized
	}
	if status.Completed {
		return nil, ledgerService.ErrAlreadyCompleted
	}
	if !status.CanAttempt {
		return nil, ledgerService.ErrTriesExceeded
	}

	challenge := status.Config
	params := difficulty.Params{
		GridSize:       challenge.GridSize,
		Steps:          challenge.Steps,
		ShowDurationMs: challenge.ShowDurationMs,
		IntervalMs:     challenge.IntervalMs,
		TimeLimitMs:    challenge.TimeLimitMs,
	}
	round := &activeRound{
		token:    s.config.Tokens.NewToken(),
		playerID: input.PlayerID,
		mode:     models.RoundTypeDaily,
		date:     date,
		sequence: s.config.Generator.Generate(params.GridSize, params.Steps),
		params:   params,
		issuedAt: s.config.Clock.Now(),
	}
	s.admit(round)

	s.config.Logger.Debug().
		Str("player", input.PlayerID).
		Int("date", date).
		Msg("daily round issued")

	return &StartRoundOutput{
		Token:    round.token,
		Sequence: round.sequence,
		Params:   params,
		Date:     date,
	}, nil
}

func (s *service) admit(round *activeRound) {
	s.mu.Lock()
	s.active[round.token] = round
	s.mu.Unlock()
}

// claim removes and returns the active round for a token. The ownership
// check happens before removal so a wrong-player probe cannot burn a
// round it does not hold.
func (s *service) claim(tok, playerID string) (*activeRound, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	round, ok := s.active[tok]
	if !ok {
		return nil, ErrRoundNotFound
	}
	if round.playerID != playerID {
		return nil, ErrNotRoundOwner
	}

	delete(s.active, tok)
	return round, nil
}

// SubmitRound grades a submission and settles it through the ledger. The
// round is claimed out of the active table before the ledger call, so a
// token settles at most once; if the ledger then fails, the graded result
// is still returned but the round stays permanently unsettled.
func (s *service) SubmitRound(ctx context.Context, input *SubmitRoundInput) (*SubmitRoundOutput, error) {
	round, err := s.claim(input.Token, input.PlayerID)
	if err != nil {
		return nil, err
	}

	now := s.config.Clock.Now()
	elapsed := now.Sub(round.issuedAt).Milliseconds()
	timeExpired := elapsed > round.params.TimeLimitMs

	correct := gradeClicks(round.sequence, input.Clicks)
	perfect := correct == len(round.sequence)
	verified := s.config.Verifier.Verify(input.Telemetry).Passed

	scoreLevel := round.level
	if round.mode == models.RoundTypeDaily {
		scoreLevel = 1
	}
	score := s.config.Scorer.Score(correct, len(round.sequence), elapsed, round.params.TimeLimitMs, scoreLevel)

	out := &SubmitRoundOutput{
		Score:        score,
		CorrectSteps: correct,
		TotalSteps:   len(round.sequence),
		ElapsedMs:    elapsed,
		TimeExpired:  timeExpired,
		Verified:     verified,
		Reward:       decimal.Zero,
		Outcome:      gradedOutcome(verified, perfect, timeExpired),
		Level:        round.level,
	}

	if round.mode == models.RoundTypeDaily {
		return s.settleDaily(ctx, round, out)
	}
	return s.settleInfinite(ctx, round, out)
}

func (s *service) settleInfinite(ctx context.Context, round *activeRound, out *SubmitRoundOutput) (*SubmitRoundOutput, error) {
	settled, err := s.ledger.RecordInfiniteRound(ctx, &ledgerService.RecordInfiniteRoundInput{
		Caller:       s.config.OperatorID,
		PlayerID:     round.playerID,
		Score:        out.Score,
		GridSize:     round.params.GridSize,
		Steps:        out.TotalSteps,
		CorrectSteps: out.CorrectSteps,
		ElapsedMs:    out.ElapsedMs,
		TimeLimitMs:  round.params.TimeLimitMs,
		TimeExpired:  out.TimeExpired,
		Verified:     out.Verified,
	})
	if err != nil {
		s.config.Logger.Error().
			Err(err).
			Str("player", round.playerID).
			Str("token", round.token).
			Msg("infinite round could not be settled")
		return out, nil
	}

	out.RoundID = settled.RoundID
	out.Outcome = settled.Outcome
	out.Reward = settled.Reward
	out.Level = settled.Level
	out.Streak = settled.Streak
	out.Settled = true
	out.CanContinue = settled.Outcome == ledgerService.OutcomeLeveledUp
	s.recordForPayout(round.playerID, out)
	return out, nil
}

// recordForPayout feeds a settled, verified round into the leaderboard
// accumulator. Failures only cost leaderboard standing, never the round.
func (s *service) recordForPayout(playerID string, out *SubmitRoundOutput) {
	if s.config.Scoreboard == nil || !out.Verified {
		return
	}
	if err := s.config.Scoreboard.Record(&payout.RecordInput{
		PlayerID: playerID,
		Score:    out.Score,
		Level:    out.Level,
	}); err != nil {
		s.config.Logger.Warn().
			Err(err).
			Str("player", playerID).
			Msg("round not recorded for leaderboard")
	}
}

func (s *service) settleDaily(ctx context.Context, round *activeRound, out *SubmitRoundOutput) (*SubmitRoundOutput, error) {
	settled, err := s.ledger.RecordDailyChallenge(ctx, &ledgerService.RecordDailyChallengeInput{
		Caller:       s.config.OperatorID,
		PlayerID:     round.playerID,
		Date:         round.date,
		Score:        out.Score,
		CorrectSteps: out.CorrectSteps,
		TotalSteps:   out.TotalSteps,
		ElapsedMs:    out.ElapsedMs,
		TimeLimitMs:  round.params.TimeLimitMs,
		TimeExpired:  out.TimeExpired,
		Verified:     out.Verified,
	})
	if err != nil {
		// A failed run is expected: the attempt is consumed and the graded
		// result goes back to the player. Anything else means the attempt
		// never landed.
		if errors.Is(err, ledgerService.ErrNotVerified) {
			return out, nil
		}
		if errors.Is(err, ledgerService.ErrAlreadyCompleted) ||
			errors.Is(err, ledgerService.ErrTriesExceeded) ||
			errors.Is(err, ledgerService.ErrDailyNotInitialized) {
			return nil, err
		}
		s.config.Logger.Error().
			Err(err).
			Str("player", round.playerID).
			Str("token", round.token).
			Msg("daily round could not be settled")
		return out, nil
	}

	out.RoundID = settled.RoundID
	out.Outcome = settled.Outcome
	out.Reward = settled.Reward
	out.Settled = true
	s.recordForPayout(round.playerID, out)
	return out, nil
}

// Sweep expires active rounds idle longer than MaxIdle
func (s *service) Sweep(ctx context.Context, input *SweepInput) (*SweepOutput, error) {
	if input.MaxIdle <= 0 {
		return nil, ErrInvalidInput
	}

	now := s.config.Clock.Now()

	s.mu.Lock()
	expired := 0
	for tok, round := range s.active {
		if now.Sub(round.issuedAt) > input.MaxIdle {
			delete(s.active, tok)
			expired++
		}
	}
	s.mu.Unlock()

	if expired > 0 {
		s.config.Logger.Info().
			Int("expired", expired).
			Msg("swept idle rounds")
	}

	return &SweepOutput{Expired: expired}, nil
}

// gradeClicks counts the correct replay prefix: grading stops at the
// first wrong tile, so trailing clicks after a mistake never count.
func gradeClicks(seq, clicks []int) int {
	correct := 0
	for i, tile := range seq {
		if i >= len(clicks) || clicks[i] != tile {
			break
		}
		correct++
	}
	return correct
}

// gradedOutcome classifies a round that the ledger did not (or could not)
// settle, for display purposes
func gradedOutcome(verified, perfect, timeExpired bool) ledgerService.SettlementOutcome {
	switch {
	case !verified:
		return ledgerService.OutcomeRejected
	case timeExpired:
		return ledgerService.OutcomeTimedOut
	case !perfect:
		return ledgerService.OutcomePartialCredit
	default:
		return ledgerService.OutcomeLeveledUp
	}
}

// dateOf converts a timestamp to the daily challenge date key, YYYYMMDD
// in UTC
func dateOf(t time.Time) int {
	y, m, d := t.UTC().Date()
	return y*10000 + int(m)*100 + d
}
