package scoring

// Config holds the scoring constants. Multipliers are expressed as scaled
// integers (percent) so scores are fully deterministic across platforms;
// no floating point is used anywhere in the calculation.
type Config struct {
	// PointsPerStep is the base score value of each sequence step
	PointsPerStep int64

	// TimeBonusDivisorMs converts remaining milliseconds into bonus
	// points: bonus = timeLeft / TimeBonusDivisorMs
	TimeBonusDivisorMs int64

	// PerfectMultiplierPct is applied to perfect rounds, e.g. 150 = 1.5x
	PerfectMultiplierPct int64

	// LevelMultiplierPct compounds once per level above 1 in infinite
	// mode, e.g. 110 = 1.1x per level
	LevelMultiplierPct int64
}

// DefaultConfig returns the standard scoring constants
func DefaultConfig() *Config {
	return &Config{
		PointsPerStep:        10,
		TimeBonusDivisorMs:   100,
		PerfectMultiplierPct: 150,
		LevelMultiplierPct:   110,
	}
}

// Calculator computes round scores
type Calculator struct {
	config *Config
}

// New creates a score calculator
func New(cfg *Config) *Calculator {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Calculator{config: cfg}
}

// Score grades one round. The accuracy-weighted base
// floor(totalSteps*pointsPerStep * correct/total) reduces exactly to
// pointsPerStep*correct, so it is computed that way. Daily rounds pass
// level 0 (or 1); the level multiplier only compounds above level 1.
func (c *Calculator) Score(correctSteps, totalSteps int, elapsedMs, timeLimitMs int64, level int) int64 {
	if totalSteps <= 0 {
		return 0
	}

	score := c.config.PointsPerStep * int64(correctSteps)

	timeLeft := timeLimitMs - elapsedMs
	if timeLeft < 0 {
		timeLeft = 0
	}
	score += timeLeft / c.config.TimeBonusDivisorMs

	if correctSteps == totalSteps {
		score = score * c.config.PerfectMultiplierPct / 100
	}

	for i := 1; i < level; i++ {
		score = score * c.config.LevelMultiplierPct / 100
	}

	return score
}
