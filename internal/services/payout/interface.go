package payout

import "context"

// Service accumulates per-period results and rotates them into the
// ledger's leaderboard payout
type Service interface {
	// Record folds one settled round into the current period
	Record(input *RecordInput) error

	// Trigger ranks the period, pays the top players, and starts a new
	// period
	Trigger(ctx context.Context) (*TriggerOutput, error)
}
