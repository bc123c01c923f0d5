package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	ledgerService "github.com/gridlight/simonsays/internal/services/ledger"
	roundService "github.com/gridlight/simonsays/internal/services/round"
)

// Server handles HTTP requests
type Server struct {
	rounds roundService.Service
	ledger ledgerService.Service
	logger zerolog.Logger
}

// Config holds configuration for the HTTP server
type Config struct {
	Rounds roundService.Service
	Ledger ledgerService.Service
	Logger zerolog.Logger
}

// NewServer creates a new API server
func NewServer(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Rounds == nil {
		return nil, errors.New("round service cannot be nil")
	}
	if cfg.Ledger == nil {
		return nil, errors.New("ledger service cannot be nil")
	}

	return &Server{
		rounds: cfg.Rounds,
		ledger: cfg.Ledger,
		logger: cfg.Logger,
	}, nil
}

// Routes sets up the HTTP routes
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/rounds/start", s.handleStartRound)
		r.Post("/rounds/{token}/submit", s.handleSubmitRound)
		r.Get("/players/{playerID}/stats", s.handlePlayerStats)
		r.Get("/players/{playerID}/rounds", s.handlePlayerRounds)
		r.Post("/players/{playerID}/withdraw", s.handleWithdraw)
		r.Get("/leaderboard", s.handleLeaderboard)
		r.Get("/daily/{date}/status/{playerID}", s.handleDailyStatus)
	})

	return r
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

// writeError writes an error response
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError maps a service error to its HTTP status
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error().Err(err).Msg("request failed")
		s.writeError(w, status, "internal error")
		return
	}
	s.writeError(w, status, err.Error())
}
