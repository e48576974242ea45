package payment

import "errors"

var (
	// ErrJobNotFound covers a missing job, an already paid job and a job on
	// a terminated contract; callers cannot tell these apart.
	ErrJobNotFound = errors.New("job not found")

	ErrProfileNotFound = errors.New("profile not found")

	// ErrNotClient is returned when the acting profile is missing or is not
	// a client, and when a deposit targets a contractor.
	ErrNotClient = errors.New("profile is not a client")

	// ErrNotOwner is returned when a client tries to pay a job on somebody
	// else's contract.
	ErrNotOwner = errors.New("job does not belong to the paying client")

	ErrInsufficientFunds = errors.New("insufficient funds")

	ErrInvalidAmount = errors.New("amount must be positive")

	ErrDepositLimitExceeded = errors.New("deposit exceeds allowed limit")

	// ErrTransientConflict surfaces exhausted lock waits and deadlocks;
	// the request can be retried.
	ErrTransientConflict = errors.New("concurrent settlement conflict")
)
