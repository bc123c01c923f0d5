package round

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/gridlight/simonsays/internal/anticheat"
	"github.com/gridlight/simonsays/internal/common/clock"
	"github.com/gridlight/simonsays/internal/common/token"
	"github.com/gridlight/simonsays/internal/difficulty"
	"github.com/gridlight/simonsays/internal/models"
	"github.com/gridlight/simonsays/internal/scoring"
	"github.com/gridlight/simonsays/internal/sequence"
	ledgerService "github.com/gridlight/simonsays/internal/services/ledger"
	"github.com/gridlight/simonsays/internal/services/payout"
)

// Recorder receives settled, verified round results for leaderboard
// accumulation
type Recorder interface {
	Record(input *payout.RecordInput) error
}

// Config holds configuration for the round engine
type Config struct {
	// OperatorID is the identity the engine settles rounds under
	OperatorID string

	// Ledger is the settlement service
	Ledger ledgerService.Service

	// Generator produces tile sequences (defaults to crypto/rand)
	Generator sequence.Generator

	// Tokens produces round tokens (defaults to random UUIDs)
	Tokens token.Source

	// Curve maps levels to round parameters (defaults to the standard curve)
	Curve *difficulty.Curve

	// Scorer grades rounds (defaults to the standard constants)
	Scorer *scoring.Calculator

	// Verifier checks submission telemetry (defaults to the standard
	// thresholds)
	Verifier *anticheat.Verifier

	// Scoreboard, when set, accumulates settled verified rounds for the
	// periodic leaderboard payout
	Scoreboard Recorder

	// Service dependencies
	Clock  clock.Clock
	Logger zerolog.Logger
}

// StartRoundInput requests a new round
type StartRoundInput struct {
	// PlayerID is the player the round is issued to
	PlayerID string

	// Mode selects infinite or daily play
	Mode models.RoundType

	// Level overrides the player's ledger level for infinite mode; zero
	// means use the ledger's current level
	Level int

	// Date is the daily challenge date as YYYYMMDD; zero means today
	Date int
}

// StartRoundOutput carries everything the client needs to play the round
type StartRoundOutput struct {
	// Token is the single-use handle for the submission
	Token string

	// Sequence is the full tile sequence to memorize
	Sequence []int

	// Params are the round's playback and timing parameters
	Params difficulty.Params

	// Level is the level the round was issued at (zero for daily)
	Level int

	// Date is the challenge date (zero for infinite)
	Date int
}

// SubmitRoundInput carries one graded attempt at an active round
type SubmitRoundInput struct {
	Token    string
	PlayerID string

	// Clicks are the tile indexes the player replayed, in order
	Clicks []int

	// Telemetry is optional client timing data for verification
	Telemetry *anticheat.Telemetry
}

// SubmitRoundOutput is the graded and (usually) settled result
type SubmitRoundOutput struct {
	// RoundID is the ledger round id, zero when the round was not settled
	RoundID int64

	Score        int64
	CorrectSteps int
	TotalSteps   int
	ElapsedMs    int64
	TimeExpired  bool

	// Verified indicates the submission passed anti-cheat checks
	Verified bool

	// Reward is the amount credited, zero unless the round qualified
	Reward decimal.Decimal

	// Outcome is the settlement classification
	Outcome ledgerService.SettlementOutcome

	// Level and Streak are the player's standing after settlement
	// (meaningful for infinite rounds)
	Level  int
	Streak int

	// Settled indicates the ledger accepted the round. An unsettled round
	// is graded for display but earns nothing and is never retried.
	Settled bool

	// CanContinue indicates the player advanced and may start the next
	// infinite round
	CanContinue bool
}

// SweepInput bounds how long an active round may sit unplayed
type SweepInput struct {
	MaxIdle time.Duration
}

// SweepOutput reports how many rounds were expired
type SweepOutput struct {
	Expired int
}
