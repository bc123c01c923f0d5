package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Config holds everything the server reads from the environment
type Config struct {
	// HTTPAddr is the listen address for the API server
	HTTPAddr string

	// Redis connection settings
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// OperatorID is the privileged ledger identity
	OperatorID string

	// BaseRewardPerStep is the per-correct-step reward unit
	BaseRewardPerStep decimal.Decimal

	// LeaderboardPool is the amount distributed per payout cycle
	LeaderboardPool decimal.Decimal

	// PayoutCron is the cron expression for the leaderboard rotation
	PayoutCron string

	// SweepInterval and SweepMaxIdle control active-round expiry
	SweepInterval time.Duration
	SweepMaxIdle  time.Duration

	// DailyMaxAttempts bounds attempts per (date, player)
	DailyMaxAttempts int

	// AntiCheatEnabled toggles telemetry verification
	AntiCheatEnabled bool

	// Debug switches logging to human-readable console output
	Debug bool
}

// Load reads the configuration from the environment, applying defaults
// for everything except the operator identity.
func Load() (*Config, error) {
	operatorID := getEnv("OPERATOR_ID", "")
	if operatorID == "" {
		return nil, fmt.Errorf("OPERATOR_ID environment variable is required")
	}

	baseReward, err := getDecimal("BASE_REWARD_PER_STEP", "0.001")
	if err != nil {
		return nil, err
	}
	pool, err := getDecimal("LEADERBOARD_POOL", "1")
	if err != nil {
		return nil, err
	}

	redisDB, err := getInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	maxAttempts, err := getInt("DAILY_MAX_ATTEMPTS", 3)
	if err != nil {
		return nil, err
	}

	sweepInterval, err := getDuration("SWEEP_INTERVAL", time.Minute)
	if err != nil {
		return nil, err
	}
	sweepMaxIdle, err := getDuration("SWEEP_MAX_IDLE", 5*time.Minute)
	if err != nil {
		return nil, err
	}

	return &Config{
		HTTPAddr:          getEnv("HTTP_ADDR", ":8080"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisDB:           redisDB,
		OperatorID:        operatorID,
		BaseRewardPerStep: baseReward,
		LeaderboardPool:   pool,
		PayoutCron:        getEnv("PAYOUT_CRON", "0 0 * * *"),
		SweepInterval:     sweepInterval,
		SweepMaxIdle:      sweepMaxIdle,
		DailyMaxAttempts:  maxAttempts,
		AntiCheatEnabled:  getEnv("ANTICHEAT_ENABLED", "true") == "true",
		Debug:             getEnv("DEBUG", "") == "true",
	}, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return d, nil
}

func getDecimal(key, defaultValue string) (decimal.Decimal, error) {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s must be a decimal amount: %w", key, err)
	}
	return d, nil
}
