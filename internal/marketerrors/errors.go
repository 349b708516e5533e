package marketerrors

import "errors"

// Access errors. Both surface as 401 to clients but stay distinct in logs.
var (
	ErrUnauthenticated    = errors.New("missing or invalid credentials")
	ErrForbidden          = errors.New("insufficient role for operation")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Repository-level errors
var (
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("resource already exists")
	ErrStorage  = errors.New("storage failure")
)

// business logic errors
var (
	ErrInvalidDates      = errors.New("invalid auction dates")
	ErrInvalidTransition = errors.New("invalid auction state transition")
	ErrInvalidState      = errors.New("unknown auction state")
	ErrInvalidBid        = errors.New("invalid bid")
	ErrAuctionClosed     = errors.New("auction is finished")
	ErrInvalidPrice      = errors.New("final price cannot decrease")
	ErrInvalidInput      = errors.New("invalid input")
)
