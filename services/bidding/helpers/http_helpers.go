package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"bidding-client/internal/biddingerrors"
	"bidding-client/utils"

	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key holding the authenticated user's id
const UserIDKey = "user_id"

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// ParseID reads a positive integer identifier from a path or query value
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w - bad identifier %q", biddingerrors.ErrInvalidBid, raw)
	}
	return id, nil
}

// CurrentUserID returns the user set by the authentication middleware
func CurrentUserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message.
// Messages of 400 responses are shown to the bidder as-is.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, biddingerrors.ErrItemNotFound):
		return http.StatusNotFound, "Auction item not found"
	case errors.Is(err, biddingerrors.ErrBidNotFound), errors.Is(err, biddingerrors.ErrNoBid):
		return http.StatusNotFound, "Bid not found"
	case errors.Is(err, biddingerrors.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, biddingerrors.ErrBidExists):
		return http.StatusBadRequest, "Bid already exists"
	case errors.Is(err, biddingerrors.ErrBidTooLow):
		return http.StatusBadRequest, "Bid too low"
	case errors.Is(err, biddingerrors.ErrAuctionExpired):
		return http.StatusBadRequest, "Auction item expired"
	case errors.Is(err, biddingerrors.ErrInvalidCeiling):
		return http.StatusBadRequest, "Auto bid amount must not be negative"
	case errors.Is(err, biddingerrors.ErrInvalidBid):
		return http.StatusBadRequest, "Invalid bid details"
	case errors.Is(err, biddingerrors.ErrForbidden):
		return http.StatusForbidden, "You do not have permission to perform this action"
	case errors.Is(err, biddingerrors.ErrUnauthorized):
		return http.StatusUnauthorized, "Authentication credentials were not provided"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
