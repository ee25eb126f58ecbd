package fusion

import "errors"

// Sentinel errors returned by the core operations. They abort only the
// requested operation; callers match them with errors.Is and report to the
// user, nothing is retried automatically.
var (
	// ErrInvalidAmount indicates a deposit, withdrawal or purchase amount
	// that is zero, negative, or otherwise nonsensical.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientFunds indicates a debit larger than the account balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrWrongPIN indicates a failed PIN check; the whole parent operation
	// is aborted, there is no retry loop and no lockout.
	ErrWrongPIN = errors.New("wrong PIN")

	// ErrInvalidCredentials indicates a failed username/password login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDirectoryFull indicates the user directory is at capacity.
	ErrDirectoryFull = errors.New("user limit reached")

	// ErrAccountLimit indicates a user already holds the maximum number of
	// bank accounts.
	ErrAccountLimit = errors.New("account limit reached")

	// ErrHoldingLimit indicates a user is at capacity for stock or SIP
	// holdings.
	ErrHoldingLimit = errors.New("holding limit reached")

	// ErrDuplicateScheme indicates the user already holds a SIP for the
	// requested scheme.
	ErrDuplicateScheme = errors.New("scheme already held")

	// ErrInvalidSelection indicates an index or catalog choice out of range.
	ErrInvalidSelection = errors.New("invalid selection")
)
