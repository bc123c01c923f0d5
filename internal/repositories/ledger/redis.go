package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/gridlight/simonsays/internal/models"
)

const (
	// Key prefixes for Redis
	roundIDKey         = "round:id"
	roundKeyPrefix     = "round:"
	playerRoundsPrefix = "player:rounds:" // sorted set of round ids per player
	statsKeyPrefix     = "stats:"
	dailyConfigPrefix  = "daily:config:"
	dailyStatePrefix   = "daily:state:"
	pendingKeyPrefix   = "pending:"
	escrowKey          = "escrow:balance"
	leaderboardKey     = "leaderboard:current"
)

// ErrRoundNotFound is returned when a round is not found
var ErrRoundNotFound = errors.New("round not found")

// ErrStatsNotFound is returned when a player has no stats record yet
var ErrStatsNotFound = errors.New("player stats not found")

// ErrDailyConfigNotFound is returned when a date has no configured challenge
var ErrDailyConfigNotFound = errors.New("daily challenge config not found")

// ErrDailyStateNotFound is returned when a player has no state for a date
var ErrDailyStateNotFound = errors.New("daily challenge state not found")

// Config holds configuration for the Redis ledger repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed ledger repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// NextRoundID assigns the next monotonically increasing round id
func (r *redisRepository) NextRoundID(ctx context.Context) (int64, error) {
	id, err := r.client.Incr(ctx, roundIDKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to assign round id: %w", err)
	}
	return id, nil
}

// SaveRound appends a round and indexes it under its player
func (r *redisRepository) SaveRound(ctx context.Context, input *SaveRoundInput) error {
	if input == nil || input.Round == nil {
		return errors.New("input and round cannot be nil")
	}

	roundJSON, err := json.Marshal(input.Round)
	if err != nil {
		return fmt.Errorf("failed to marshal round: %w", err)
	}

	pipe := r.client.Pipeline()

	roundKey := fmt.Sprintf("%s%d", roundKeyPrefix, input.Round.ID)
	pipe.Set(ctx, roundKey, roundJSON, 0)

	playerKey := fmt.Sprintf("%s%s", playerRoundsPrefix, input.Round.PlayerID)
	pipe.ZAdd(ctx, playerKey, redis.Z{
		Score:  float64(input.Round.ID),
		Member: input.Round.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save round: %w", err)
	}

	return nil
}

// GetRound retrieves a round by id
func (r *redisRepository) GetRound(ctx context.Context, input *GetRoundInput) (*models.Round, error) {
	if input == nil || input.RoundID == 0 {
		return nil, errors.New("input and round ID cannot be empty")
	}

	roundKey := fmt.Sprintf("%s%d", roundKeyPrefix, input.RoundID)
	roundJSON, err := r.client.Get(ctx, roundKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRoundNotFound
		}
		return nil, fmt.Errorf("failed to get round: %w", err)
	}

	var round models.Round
	if err := json.Unmarshal([]byte(roundJSON), &round); err != nil {
		return nil, fmt.Errorf("failed to unmarshal round: %w", err)
	}

	return &round, nil
}

// GetRoundsForPlayer retrieves a player's most recent rounds, newest first
func (r *redisRepository) GetRoundsForPlayer(ctx context.Context, input *GetRoundsForPlayerInput) (*GetRoundsForPlayerOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	limit := int64(input.Limit)
	if limit <= 0 {
		limit = 50
	}

	playerKey := fmt.Sprintf("%s%s", playerRoundsPrefix, input.PlayerID)
	ids, err := r.client.ZRevRange(ctx, playerKey, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get round index: %w", err)
	}

	rounds := make([]*models.Round, 0, len(ids))
	for _, id := range ids {
		roundJSON, err := r.client.Get(ctx, roundKeyPrefix+id).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get round %s: %w", id, err)
		}

		var round models.Round
		if err := json.Unmarshal([]byte(roundJSON), &round); err != nil {
			return nil, fmt.Errorf("failed to unmarshal round %s: %w", id, err)
		}
		rounds = append(rounds, &round)
	}

	return &GetRoundsForPlayerOutput{Rounds: rounds}, nil
}

// GetPlayerStats retrieves a player's stats record
func (r *redisRepository) GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*models.PlayerStats, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	statsKey := fmt.Sprintf("%s%s", statsKeyPrefix, input.PlayerID)
	statsJSON, err := r.client.Get(ctx, statsKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrStatsNotFound
		}
		return nil, fmt.Errorf("failed to get player stats: %w", err)
	}

	var stats models.PlayerStats
	if err := json.Unmarshal([]byte(statsJSON), &stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player stats: %w", err)
	}

	return &stats, nil
}

// SavePlayerStats persists a player's stats record
func (r *redisRepository) SavePlayerStats(ctx context.Context, input *SavePlayerStatsInput) error {
	if input == nil || input.Stats == nil {
		return errors.New("input and stats cannot be nil")
	}

	statsJSON, err := json.Marshal(input.Stats)
	if err != nil {
		return fmt.Errorf("failed to marshal player stats: %w", err)
	}

	statsKey := fmt.Sprintf("%s%s", statsKeyPrefix, input.Stats.PlayerID)
	if err := r.client.Set(ctx, statsKey, statsJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save player stats: %w", err)
	}

	return nil
}

// GetDailyConfig retrieves the challenge configured for a date
func (r *redisRepository) GetDailyConfig(ctx context.Context, input *GetDailyConfigInput) (*models.DailyChallengeConfig, error) {
	if input == nil || input.Date == 0 {
		return nil, errors.New("input and date cannot be empty")
	}

	configKey := fmt.Sprintf("%s%d", dailyConfigPrefix, input.Date)
	configJSON, err := r.client.Get(ctx, configKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrDailyConfigNotFound
		}
		return nil, fmt.Errorf("failed to get daily config: %w", err)
	}

	var config models.DailyChallengeConfig
	if err := json.Unmarshal([]byte(configJSON), &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal daily config: %w", err)
	}

	return &config, nil
}

// SaveDailyConfig persists a date's challenge configuration
func (r *redisRepository) SaveDailyConfig(ctx context.Context, input *SaveDailyConfigInput) error {
	if input == nil || input.Config == nil {
		return errors.New("input and config cannot be nil")
	}

	configJSON, err := json.Marshal(input.Config)
	if err != nil {
		return fmt.Errorf("failed to marshal daily config: %w", err)
	}

	configKey := fmt.Sprintf("%s%d", dailyConfigPrefix, input.Config.Date)
	if err := r.client.Set(ctx, configKey, configJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save daily config: %w", err)
	}

	return nil
}

// GetDailyState retrieves a player's progress on a date's challenge
func (r *redisRepository) GetDailyState(ctx context.Context, input *GetDailyStateInput) (*models.DailyPlayerState, error) {
	if input == nil || input.Date == 0 || input.PlayerID == "" {
		return nil, errors.New("input, date and player ID cannot be empty")
	}

	stateKey := fmt.Sprintf("%s%d:%s", dailyStatePrefix, input.Date, input.PlayerID)
	stateJSON, err := r.client.Get(ctx, stateKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrDailyStateNotFound
		}
		return nil, fmt.Errorf("failed to get daily state: %w", err)
	}

	var state models.DailyPlayerState
	if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal daily state: %w", err)
	}

	return &state, nil
}

// SaveDailyState persists a player's progress on a date's challenge
func (r *redisRepository) SaveDailyState(ctx context.Context, input *SaveDailyStateInput) error {
	if input == nil || input.State == nil {
		return errors.New("input and state cannot be nil")
	}

	stateJSON, err := json.Marshal(input.State)
	if err != nil {
		return fmt.Errorf("failed to marshal daily state: %w", err)
	}

	stateKey := fmt.Sprintf("%s%d:%s", dailyStatePrefix, input.State.Date, input.State.PlayerID)
	if err := r.client.Set(ctx, stateKey, stateJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save daily state: %w", err)
	}

	return nil
}

// GetPendingReward retrieves a player's unwithdrawn balance. Players with no
// balance yet read as zero.
func (r *redisRepository) GetPendingReward(ctx context.Context, input *GetPendingRewardInput) (decimal.Decimal, error) {
	if input == nil || input.PlayerID == "" {
		return decimal.Zero, errors.New("input and player ID cannot be empty")
	}

	pendingKey := fmt.Sprintf("%s%s", pendingKeyPrefix, input.PlayerID)
	raw, err := r.client.Get(ctx, pendingKey).Result()
	if err != nil {
		if err == redis.Nil {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("failed to get pending reward: %w", err)
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse pending reward: %w", err)
	}

	return amount, nil
}

// SetPendingReward overwrites a player's unwithdrawn balance
func (r *redisRepository) SetPendingReward(ctx context.Context, input *SetPendingRewardInput) error {
	if input == nil || input.PlayerID == "" {
		return errors.New("input and player ID cannot be empty")
	}

	pendingKey := fmt.Sprintf("%s%s", pendingKeyPrefix, input.PlayerID)
	if err := r.client.Set(ctx, pendingKey, input.Amount.String(), 0).Err(); err != nil {
		return fmt.Errorf("failed to set pending reward: %w", err)
	}

	return nil
}

// GetEscrowBalance retrieves the ledger's escrowed funds
func (r *redisRepository) GetEscrowBalance(ctx context.Context) (decimal.Decimal, error) {
	raw, err := r.client.Get(ctx, escrowKey).Result()
	if err != nil {
		if err == redis.Nil {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("failed to get escrow balance: %w", err)
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse escrow balance: %w", err)
	}

	return amount, nil
}

// SetEscrowBalance overwrites the ledger's escrowed funds
func (r *redisRepository) SetEscrowBalance(ctx context.Context, input *SetEscrowBalanceInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if err := r.client.Set(ctx, escrowKey, input.Amount.String(), 0).Err(); err != nil {
		return fmt.Errorf("failed to set escrow balance: %w", err)
	}

	return nil
}

// GetLeaderboard retrieves the current leaderboard table. Before the first
// payout cycle the table is empty.
func (r *redisRepository) GetLeaderboard(ctx context.Context) (*models.Leaderboard, error) {
	boardJSON, err := r.client.Get(ctx, leaderboardKey).Result()
	if err != nil {
		if err == redis.Nil {
			return &models.Leaderboard{Entries: []models.LeaderboardEntry{}}, nil
		}
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	var board models.Leaderboard
	if err := json.Unmarshal([]byte(boardJSON), &board); err != nil {
		return nil, fmt.Errorf("failed to unmarshal leaderboard: %w", err)
	}

	return &board, nil
}

// SaveLeaderboard replaces the leaderboard table wholesale
func (r *redisRepository) SaveLeaderboard(ctx context.Context, input *SaveLeaderboardInput) error {
	if input == nil || input.Leaderboard == nil {
		return errors.New("input and leaderboard cannot be nil")
	}

	boardJSON, err := json.Marshal(input.Leaderboard)
	if err != nil {
		return fmt.Errorf("failed to marshal leaderboard: %w", err)
	}

	if err := r.client.Set(ctx, leaderboardKey, boardJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save leaderboard: %w", err)
	}

	return nil
}
