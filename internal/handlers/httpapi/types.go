package httpapi

// startRoundRequest asks for a new round
type startRoundRequest struct {
	PlayerID string `json:"player_id"`
	Mode     string `json:"mode"`
	Date     int    `json:"date,omitempty"`
}

// startRoundResponse carries everything the client needs to play
type startRoundResponse struct {
	Token          string `json:"token"`
	Sequence       []int  `json:"sequence"`
	GridSize       int    `json:"grid_size"`
	Steps          int    `json:"steps"`
	ShowDurationMs int64  `json:"show_duration_ms"`
	IntervalMs     int64  `json:"interval_ms"`
	TimeLimitMs    int64  `json:"time_limit_ms"`
	Level          int    `json:"level,omitempty"`
	Date           int    `json:"date,omitempty"`
}

// telemetryPayload is the optional client timing data
type telemetryPayload struct {
	SequenceShownAtMs int64   `json:"sequence_shown_at_ms"`
	ClickTimestampsMs []int64 `json:"click_timestamps_ms"`
}

// submitRoundRequest carries one attempt at an active round
type submitRoundRequest struct {
	PlayerID  string            `json:"player_id"`
	Clicks    []int             `json:"clicks"`
	Telemetry *telemetryPayload `json:"telemetry,omitempty"`
}

// submitRoundResponse is the graded result. Amounts are decimal strings.
type submitRoundResponse struct {
	RoundID      int64  `json:"round_id"`
	Score        int64  `json:"score"`
	CorrectSteps int    `json:"correct_steps"`
	TotalSteps   int    `json:"total_steps"`
	ElapsedMs    int64  `json:"elapsed_ms"`
	TimeExpired  bool   `json:"time_expired"`
	Verified     bool   `json:"verified"`
	Reward       string `json:"reward"`
	Outcome      string `json:"outcome"`
	Level        int    `json:"level"`
	Streak       int    `json:"streak"`
	Settled      bool   `json:"settled"`
	CanContinue  bool   `json:"can_continue"`
}

// statsResponse is a player's lifetime standing
type statsResponse struct {
	PlayerID           string `json:"player_id"`
	TotalRounds        int64  `json:"total_rounds"`
	TotalScore         int64  `json:"total_score"`
	BestScore          int64  `json:"best_score"`
	CurrentStreak      int    `json:"current_streak"`
	CurrentLevel       int    `json:"current_level"`
	TimeoutsCount      int64  `json:"timeouts_count"`
	PerfectRoundsCount int64  `json:"perfect_rounds_count"`
	TotalRewards       string `json:"total_rewards"`
	PendingRewards     string `json:"pending_rewards"`
}

// leaderboardEntryResponse is one published rank
type leaderboardEntryResponse struct {
	Rank     int    `json:"rank"`
	PlayerID string `json:"player_id,omitempty"`
	Score    int64  `json:"score"`
	Level    int    `json:"level"`
}

// leaderboardResponse is the current published table
type leaderboardResponse struct {
	Entries []leaderboardEntryResponse `json:"entries"`
	PaidAt  string                     `json:"paid_at,omitempty"`
}

// dailyStatusResponse reports a player's standing on a date's challenge
type dailyStatusResponse struct {
	Date        int    `json:"date"`
	Initialized bool   `json:"initialized"`
	Attempts    int    `json:"attempts"`
	MaxAttempts int    `json:"max_attempts"`
	Completed   bool   `json:"completed"`
	CanAttempt  bool   `json:"can_attempt"`
	GridSize    int    `json:"grid_size,omitempty"`
	Steps       int    `json:"steps,omitempty"`
	TimeLimitMs int64  `json:"time_limit_ms,omitempty"`
	Reward      string `json:"reward,omitempty"`
}

// roundResponse is one settled round in a player's history
type roundResponse struct {
	RoundID       int64  `json:"round_id"`
	Type          string `json:"type"`
	Level         int    `json:"level,omitempty"`
	GridSize      int    `json:"grid_size"`
	TotalSteps    int    `json:"total_steps"`
	CorrectSteps  int    `json:"correct_steps"`
	Score         int64  `json:"score"`
	ElapsedMs     int64  `json:"elapsed_ms"`
	TimeLimitMs   int64  `json:"time_limit_ms"`
	Reward        string `json:"reward"`
	Verified      bool   `json:"verified"`
	FailureReason string `json:"failure_reason"`
	SettledAt     string `json:"settled_at"`
}

// roundsResponse is a player's round history, newest first
type roundsResponse struct {
	Rounds []roundResponse `json:"rounds"`
}

// withdrawResponse reports a completed withdrawal
type withdrawResponse struct {
	PlayerID string `json:"player_id"`
	Amount   string `json:"amount"`
}
