package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gridlight/simonsays/internal/anticheat"
	"github.com/gridlight/simonsays/internal/models"
	ledgerService "github.com/gridlight/simonsays/internal/services/ledger"
	roundService "github.com/gridlight/simonsays/internal/services/round"
)

// handleStartRound issues a new round
func (s *Server) handleStartRound(w http.ResponseWriter, r *http.Request) {
	var req startRoundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.PlayerID == "" {
		s.writeError(w, http.StatusBadRequest, "player_id is required")
		return
	}

	mode := models.RoundType(req.Mode)
	if mode != models.RoundTypeInfinite && mode != models.RoundTypeDaily {
		s.writeError(w, http.StatusBadRequest, "mode must be infinite or daily")
		return
	}

	out, err := s.rounds.StartRound(r.Context(), &roundService.StartRoundInput{
		PlayerID: req.PlayerID,
		Mode:     mode,
		Date:     req.Date,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, startRoundResponse{
		Token:          out.Token,
		Sequence:       out.Sequence,
		GridSize:       out.Params.GridSize,
		Steps:          out.Params.Steps,
		ShowDurationMs: out.Params.ShowDurationMs,
		IntervalMs:     out.Params.IntervalMs,
		TimeLimitMs:    out.Params.TimeLimitMs,
		Level:          out.Level,
		Date:           out.Date,
	})
}

// handleSubmitRound grades and settles a round submission
func (s *Server) handleSubmitRound(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	var req submitRoundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.PlayerID == "" {
		s.writeError(w, http.StatusBadRequest, "player_id is required")
		return
	}

	var telemetry *anticheat.Telemetry
	if req.Telemetry != nil {
		telemetry = &anticheat.Telemetry{
			SequenceShownAtMs: req.Telemetry.SequenceShownAtMs,
			ClickTimestampsMs: req.Telemetry.ClickTimestampsMs,
		}
	}

	out, err := s.rounds.SubmitRound(r.Context(), &roundService.SubmitRoundInput{
		Token:     token,
		PlayerID:  req.PlayerID,
		Clicks:    req.Clicks,
		Telemetry: telemetry,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, submitRoundResponse{
		RoundID:      out.RoundID,
		Score:        out.Score,
		CorrectSteps: out.CorrectSteps,
		TotalSteps:   out.TotalSteps,
		ElapsedMs:    out.ElapsedMs,
		TimeExpired:  out.TimeExpired,
		Verified:     out.Verified,
		Reward:       out.Reward.String(),
		Outcome:      string(out.Outcome),
		Level:        out.Level,
		Streak:       out.Streak,
		Settled:      out.Settled,
		CanContinue:  out.CanContinue,
	})
}

// handlePlayerStats returns a player's lifetime standing
func (s *Server) handlePlayerStats(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	out, err := s.ledger.GetPlayerStats(r.Context(), &ledgerService.GetPlayerStatsInput{
		PlayerID: playerID,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	stats := out.Stats
	s.writeJSON(w, http.StatusOK, statsResponse{
		PlayerID:           playerID,
		TotalRounds:        stats.TotalRounds,
		TotalScore:         stats.TotalScore,
		BestScore:          stats.BestScore,
		CurrentStreak:      stats.CurrentStreak,
		CurrentLevel:       stats.CurrentLevel,
		TimeoutsCount:      stats.TimeoutsCount,
		PerfectRoundsCount: stats.PerfectRoundsCount,
		TotalRewards:       stats.TotalRewards.String(),
		PendingRewards:     out.Pending.String(),
	})
}

// handlePlayerRounds returns a player's recent rounds, newest first
func (s *Server) handlePlayerRounds(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			s.writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	out, err := s.ledger.GetRounds(r.Context(), &ledgerService.GetRoundsInput{
		PlayerID: playerID,
		Limit:    limit,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	rounds := make([]roundResponse, 0, len(out.Rounds))
	for _, rd := range out.Rounds {
		rounds = append(rounds, roundResponse{
			RoundID:       rd.ID,
			Type:          string(rd.Type),
			Level:         rd.Level,
			GridSize:      rd.GridSize,
			TotalSteps:    rd.TotalSteps,
			CorrectSteps:  rd.CorrectSteps,
			Score:         rd.Score,
			ElapsedMs:     rd.ElapsedMs,
			TimeLimitMs:   rd.TimeLimitMs,
			Reward:        rd.Reward.String(),
			Verified:      rd.Verified,
			FailureReason: string(rd.FailureReason),
			SettledAt:     rd.SettledAt.Format(time.RFC3339),
		})
	}

	s.writeJSON(w, http.StatusOK, roundsResponse{Rounds: rounds})
}

// handleWithdraw drains a player's pending rewards
func (s *Server) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	out, err := s.ledger.Withdraw(r.Context(), &ledgerService.WithdrawInput{
		PlayerID: playerID,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, withdrawResponse{
		PlayerID: playerID,
		Amount:   out.Amount.String(),
	})
}

// handleLeaderboard returns the current published table
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	out, err := s.ledger.GetLeaderboard(r.Context(), &ledgerService.GetLeaderboardInput{})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	board := out.Leaderboard
	resp := leaderboardResponse{
		Entries: make([]leaderboardEntryResponse, 0, len(board.Entries)),
	}
	if !board.PaidAt.IsZero() {
		resp.PaidAt = board.PaidAt.Format(time.RFC3339)
	}
	for i, entry := range board.Entries {
		resp.Entries = append(resp.Entries, leaderboardEntryResponse{
			Rank:     i + 1,
			PlayerID: entry.PlayerID,
			Score:    entry.Score,
			Level:    entry.Level,
		})
	}

	s.writeJSON(w, http.StatusOK, resp)
}

// handleDailyStatus reports a player's standing on a date's challenge
func (s *Server) handleDailyStatus(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")
	date, err := strconv.Atoi(chi.URLParam(r, "date"))
	if err != nil || date <= 0 {
		s.writeError(w, http.StatusBadRequest, "date must be YYYYMMDD")
		return
	}

	out, err := s.ledger.GetDailyStatus(r.Context(), &ledgerService.GetDailyStatusInput{
		Date:     date,
		PlayerID: playerID,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	resp := dailyStatusResponse{
		Date:        date,
		Initialized: out.Initialized,
		Attempts:    out.Attempts,
		MaxAttempts: out.MaxAttempts,
		Completed:   out.Completed,
		CanAttempt:  out.CanAttempt,
	}
	if out.Config != nil {
		resp.GridSize = out.Config.GridSize
		resp.Steps = out.Config.Steps
		resp.TimeLimitMs = out.Config.TimeLimitMs
		resp.Reward = out.Config.Reward.String()
	}

	s.writeJSON(w, http.StatusOK, resp)
}
