package payout

import (
	"context"
	"sort"
	"sync"

	"github.com/gridlight/simonsays/internal/models"
	ledgerService "github.com/gridlight/simonsays/internal/services/ledger"
)

// standing is one player's accumulated period result
type standing struct {
	playerID string
	score    int64
	level    int
}

// service implements the Service interface
type service struct {
	config *Config
	ledger ledgerService.Service

	// mu guards the period accumulator
	mu     sync.Mutex
	period map[string]*standing
}

// New creates a new payout job
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Ledger == nil {
		return nil, ErrNilLedger
	}

	return &service{
		config: cfg,
		ledger: cfg.Ledger,
		period: make(map[string]*standing),
	}, nil
}

// Record folds one settled round into the current period
func (s *service) Record(input *RecordInput) error {
	if input.PlayerID == "" || input.PlayerID == models.NoPlayer {
		return ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.period[input.PlayerID]
	if !ok {
		st = &standing{playerID: input.PlayerID}
		s.period[input.PlayerID] = st
	}
	st.score += input.Score
	if input.Level > st.level {
		st.level = input.Level
	}
	return nil
}

// Trigger ranks the period and pays the top players through the ledger.
// The accumulator is cleared before the ledger call: a failed payout is
// logged and the period's results are gone, never retried. An empty
// period still rotates, wiping the published table.
func (s *service) Trigger(ctx context.Context) (*TriggerOutput, error) {
	s.mu.Lock()
	standings := make([]*standing, 0, len(s.period))
	for _, st := range s.period {
		standings = append(standings, st)
	}
	s.period = make(map[string]*standing)
	s.mu.Unlock()

	// Level first, then score; player id breaks ties so the ranking is
	// deterministic across runs.
	sort.Slice(standings, func(i, j int) bool {
		if standings[i].level != standings[j].level {
			return standings[i].level > standings[j].level
		}
		if standings[i].score != standings[j].score {
			return standings[i].score > standings[j].score
		}
		return standings[i].playerID < standings[j].playerID
	})

	ranked := len(standings)
	if ranked > models.LeaderboardSize {
		ranked = models.LeaderboardSize
	}

	players := make([]string, models.LeaderboardSize)
	scores := make([]int64, models.LeaderboardSize)
	levels := make([]int, models.LeaderboardSize)
	for i := 0; i < models.LeaderboardSize; i++ {
		if i < ranked {
			players[i] = standings[i].playerID
			scores[i] = standings[i].score
			levels[i] = standings[i].level
			continue
		}
		players[i] = models.NoPlayer
	}

	out, err := s.ledger.UpdateLeaderboardAndPay(ctx, &ledgerService.UpdateLeaderboardInput{
		Caller:  s.config.OperatorID,
		Players: players,
		Scores:  scores,
		Levels:  levels,
	})
	if err != nil {
		s.config.Logger.Error().
			Err(err).
			Int("ranked", ranked).
			Msg("leaderboard payout failed; period results discarded")
		return nil, err
	}

	s.config.Logger.Info().
		Int("ranked", ranked).
		Str("distributed", out.Distributed.String()).
		Msg("leaderboard payout rotated")

	return &TriggerOutput{
		Ranked:      ranked,
		Distributed: out.Distributed,
	}, nil
}
