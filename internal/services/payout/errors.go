package payout

// PayoutError is a typed error for payout job operations
type PayoutError string

// Error returns the error message
func (e PayoutError) Error() string {
	return string(e)
}

const (
	// ErrNilConfig is returned when no config is provided
	ErrNilConfig = PayoutError("config cannot be nil")

	// ErrNilLedger is returned when no ledger service is provided
	ErrNilLedger = PayoutError("ledger service cannot be nil")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = PayoutError("invalid input")
)
