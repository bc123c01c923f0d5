package round

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/gridlight/simonsays/internal/services/round Service

import "context"

// Service issues playable rounds and grades their submissions. A round
// token is consumed by exactly one submission; everything durable happens
// in the ledger.
type Service interface {
	// StartRound issues a sequence and a single-use round token
	StartRound(ctx context.Context, input *StartRoundInput) (*StartRoundOutput, error)

	// SubmitRound grades a submission and settles it through the ledger
	SubmitRound(ctx context.Context, input *SubmitRoundInput) (*SubmitRoundOutput, error)

	// Sweep expires active rounds idle longer than the given duration
	Sweep(ctx context.Context, input *SweepInput) (*SweepOutput, error)
}
