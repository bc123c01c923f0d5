package payout

import (
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	ledgerService "github.com/gridlight/simonsays/internal/services/ledger"
)

// Config holds configuration for the payout job
type Config struct {
	// OperatorID is the identity the job pays out under
	OperatorID string

	// Ledger is the settlement service
	Ledger ledgerService.Service

	// Service dependencies
	Logger zerolog.Logger
}

// RecordInput folds one settled round into the current period. Scores
// accumulate; the level keeps the period's maximum.
type RecordInput struct {
	PlayerID string
	Score    int64
	Level    int
}

// TriggerOutput reports one payout rotation
type TriggerOutput struct {
	// Ranked is how many players made the table this period
	Ranked int

	// Distributed is the total amount the ledger credited
	Distributed decimal.Decimal
}
