package anticheat

import (
	"fmt"
)

// Telemetry is the client-side click timing data submitted with a round
type Telemetry struct {
	// SequenceShownAtMs is the client timestamp (unix ms) when sequence
	// playback finished and input became possible
	SequenceShownAtMs int64

	// ClickTimestampsMs are client timestamps (unix ms) for each click,
	// in click order
	ClickTimestampsMs []int64
}

// Result is the verifier's verdict on a round submission
type Result struct {
	// Passed indicates the telemetry looked humanly plausible
	Passed bool

	// Reasons lists why verification failed, if it did
	Reasons []string
}

// Config holds the anti-cheat thresholds
type Config struct {
	// Enabled toggles verification. When disabled every round passes.
	Enabled bool

	// MinMeanIntervalMs is the minimum plausible mean inter-click
	// interval for a human player
	MinMeanIntervalMs int64
}

// DefaultConfig returns the standard thresholds
func DefaultConfig() *Config {
	return &Config{
		Enabled:           true,
		MinMeanIntervalMs: 120,
	}
}

// Verifier flags round submissions whose click timing is implausibly fast.
// Its verdict is advisory: a failed verification suppresses reward
// eligibility but the round is still graded and reported.
type Verifier struct {
	config *Config
}

// New creates a verifier
func New(cfg *Config) *Verifier {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Verifier{config: cfg}
}

// Verify inspects the telemetry for one submission. Absent telemetry passes:
// clients are not required to send it, so absence is not itself suspicious.
func (v *Verifier) Verify(telemetry *Telemetry) Result {
	if !v.config.Enabled {
		return Result{Passed: true}
	}

	if telemetry == nil || len(telemetry.ClickTimestampsMs) == 0 {
		return Result{Passed: true}
	}

	// Intervals between consecutive clicks, with the first interval
	// measured from the end of sequence playback.
	prev := telemetry.SequenceShownAtMs
	var total int64
	for _, ts := range telemetry.ClickTimestampsMs {
		total += ts - prev
		prev = ts
	}

	mean := total / int64(len(telemetry.ClickTimestampsMs))
	if mean < v.config.MinMeanIntervalMs {
		return Result{
			Passed: false,
			Reasons: []string{
				fmt.Sprintf("mean click interval %dms below human minimum %dms", mean, v.config.MinMeanIntervalMs),
			},
		}
	}

	return Result{Passed: true}
}
