package biddingerrors

import (
	"errors"
	"fmt"
)

// Repository-level errors
var (
	ErrItemNotFound = errors.New("item not found")
	ErrBidNotFound  = errors.New("bid not found")
	ErrUserNotFound = errors.New("user not found")
	ErrNoBids       = errors.New("no bids found for item")
	ErrNoBid        = errors.New("user has not placed a bid on this item")
	ErrBidExists    = errors.New("bid already exists")
)

// business logic errors
var (
	ErrInvalidBid     = errors.New("invalid bid")
	ErrBidTooLow      = errors.New("bid too low")
	ErrAuctionExpired = errors.New("auction item expired")
	ErrInvalidCeiling = errors.New("invalid auto bid ceiling")
	ErrForbidden      = errors.New("not the owner of this bid")
	ErrUnauthorized   = errors.New("unauthorized")
)

// client-side errors
var (
	// ErrAuctionClosed is returned when a submission is attempted after the countdown reached close.
	ErrAuctionClosed = errors.New("auction closed")
	// ErrSessionAbandoned marks an operation cut short by a 401/403 response.
	ErrSessionAbandoned = errors.New("session abandoned")
	ErrUnavailable      = errors.New("auction service unavailable")
	ErrUnexpectedStatus = errors.New("unexpected response status")
)

// ValidationError is a rejection by the remote service that carries a message meant for the user
type ValidationError struct {
	Status  int
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed (%d): %s", e.Status, e.Message)
}

// AsValidation extracts a ValidationError from err, if there is one
func AsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
