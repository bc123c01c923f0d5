package ledger

// LedgerError is a custom error type for reward ledger errors
type LedgerError string

// Error implements the error interface
func (e LedgerError) Error() string {
	return string(e)
}

// Define errors
const (
	// ErrInvalidInput rejects malformed round parameters before any state mutation
	ErrInvalidInput LedgerError = "invalid round parameters"

	// ErrNotAuthorized rejects privileged operations from non-operator identities
	ErrNotAuthorized LedgerError = "caller is not the ledger operator"

	// ErrDailyNotInitialized means the date has no configured challenge
	ErrDailyNotInitialized LedgerError = "no daily challenge configured for date"

	// ErrAlreadyCompleted means the player already completed that date's challenge
	ErrAlreadyCompleted LedgerError = "daily challenge already completed"

	// ErrTriesExceeded means the player used all attempts for that date
	ErrTriesExceeded LedgerError = "daily challenge attempts exhausted"

	// ErrNotVerified means the daily run was not a perfect, in-time, verified run
	ErrNotVerified LedgerError = "daily challenge requires a perfect verified run"

	// ErrNoRewards means the player has nothing to withdraw
	ErrNoRewards LedgerError = "no pending rewards"

	// ErrInsufficientFunds means escrow cannot cover the withdrawal.
	// This indicates ledger-level insolvency and is alarmed, never partially paid.
	ErrInsufficientFunds LedgerError = "escrow balance below pending rewards"

	// ErrArityMismatch means the payout call did not supply exactly ten entries
	ErrArityMismatch LedgerError = "leaderboard payout requires exactly ten entries"

	ErrNilConfig       LedgerError = "config cannot be nil"
	ErrNilRepo         LedgerError = "ledger repository cannot be nil"
	ErrNilClock        LedgerError = "clock cannot be nil"
	ErrBadRankWeights  LedgerError = "rank weights must hold one weight per leaderboard slot"
)
