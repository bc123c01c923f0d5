package difficulty

// Params describes everything the client needs to play one round
type Params struct {
	// GridSize is the tile grid dimension
	GridSize int

	// Steps is the sequence length
	Steps int

	// ShowDurationMs is how long each tile lights up during playback
	ShowDurationMs int64

	// IntervalMs is the pause between tiles during playback
	IntervalMs int64

	// TimeLimitMs is how long the player has to replay the sequence
	TimeLimitMs int64
}

// Config holds the curve constants. All outputs of the curve are
// deterministic functions of the level, so issued parameters can be
// reconstructed for audit without storing them.
type Config struct {
	// BaseGridSize is the grid at level 1
	BaseGridSize int

	// MaxGridSize caps grid growth
	MaxGridSize int

	// GridGrowthEvery adds one to the grid every N levels
	GridGrowthEvery int

	// BaseSteps is the sequence length at level 1. Steps grow by a
	// fractional 0.5 per level, floored.
	BaseSteps int

	// MaxSteps caps sequence growth
	MaxSteps int

	// BaseShowDurationMs / MinShowDurationMs bound tile playback time
	BaseShowDurationMs int64
	MinShowDurationMs  int64
	ShowDecayPerLevel  int64

	// BaseIntervalMs / MinIntervalMs bound the inter-tile pause
	BaseIntervalMs     int64
	MinIntervalMs      int64
	IntervalDecayPerLevel int64

	// BaseTimeLimitMs / MinTimeLimitMs bound the replay window
	BaseTimeLimitMs     int64
	MinTimeLimitMs      int64
	LimitDecayPerLevel  int64
}

// DefaultConfig returns the standard curve
func DefaultConfig() *Config {
	return &Config{
		BaseGridSize:          3,
		MaxGridSize:           8,
		GridGrowthEvery:       5,
		BaseSteps:             3,
		MaxSteps:              50,
		BaseShowDurationMs:    800,
		MinShowDurationMs:     300,
		ShowDecayPerLevel:     25,
		BaseIntervalMs:        400,
		MinIntervalMs:         150,
		IntervalDecayPerLevel: 10,
		BaseTimeLimitMs:       15000,
		MinTimeLimitMs:        5000,
		LimitDecayPerLevel:    200,
	}
}

// Curve maps a player's level to round parameters
type Curve struct {
	config *Config
}

// New creates a difficulty curve
func New(cfg *Config) *Curve {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Curve{config: cfg}
}

// ForLevel returns the round parameters for an infinite-mode level.
// Levels at or below 1 return the base tier. Grid size and steps grow
// monotonically with caps; the three durations shrink monotonically with
// floors so the game never becomes unplayable.
func (c *Curve) ForLevel(level int) Params {
	if level < 1 {
		level = 1
	}
	n := int64(level - 1)

	gridSize := c.config.BaseGridSize + (level-1)/c.config.GridGrowthEvery
	if gridSize > c.config.MaxGridSize {
		gridSize = c.config.MaxGridSize
	}

	// 0.5 steps per level, floored
	steps := c.config.BaseSteps + (level-1)/2
	if steps > c.config.MaxSteps {
		steps = c.config.MaxSteps
	}

	return Params{
		GridSize:       gridSize,
		Steps:          steps,
		ShowDurationMs: floorAt(c.config.BaseShowDurationMs-n*c.config.ShowDecayPerLevel, c.config.MinShowDurationMs),
		IntervalMs:     floorAt(c.config.BaseIntervalMs-n*c.config.IntervalDecayPerLevel, c.config.MinIntervalMs),
		TimeLimitMs:    floorAt(c.config.BaseTimeLimitMs-n*c.config.LimitDecayPerLevel, c.config.MinTimeLimitMs),
	}
}

func floorAt(v, min int64) int64 {
	if v < min {
		return min
	}
	return v
}
