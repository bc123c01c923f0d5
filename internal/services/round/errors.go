package round

// RoundError is a typed error for round engine operations
type RoundError string

// Error returns the error message
func (e RoundError) Error() string {
	return string(e)
}

const (
	// ErrRoundNotFound is returned when a token matches no active round
	ErrRoundNotFound = RoundError("round not found")

	// ErrNotRoundOwner is returned when a submission arrives from a player
	// other than the one the round was issued to
	ErrNotRoundOwner = RoundError("round belongs to another player")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = RoundError("invalid input")

	// ErrNilConfig is returned when no config is provided
	ErrNilConfig = RoundError("config cannot be nil")

	// ErrNilLedger is returned when no ledger service is provided
	ErrNilLedger = RoundError("ledger service cannot be nil")

	// ErrNilClock is returned when no clock is provided
	ErrNilClock = RoundError("clock cannot be nil")
)
