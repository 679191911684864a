package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"bidding-client/internal/biddingerrors"

	"github.com/stretchr/testify/require"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantMsg    string
	}{
		{err: biddingerrors.ErrBidTooLow, wantStatus: http.StatusBadRequest, wantMsg: "Bid too low"},
		{err: biddingerrors.ErrBidExists, wantStatus: http.StatusBadRequest, wantMsg: "Bid already exists"},
		{err: biddingerrors.ErrAuctionExpired, wantStatus: http.StatusBadRequest, wantMsg: "Auction item expired"},
		{err: biddingerrors.ErrNoBid, wantStatus: http.StatusNotFound, wantMsg: "Bid not found"},
		{err: biddingerrors.ErrItemNotFound, wantStatus: http.StatusNotFound, wantMsg: "Auction item not found"},
		{err: biddingerrors.ErrForbidden, wantStatus: http.StatusForbidden},
		{err: biddingerrors.ErrUnauthorized, wantStatus: http.StatusUnauthorized},
		{err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantMsg: "internal server error"},
	}

	for _, tc := range tests {
		t.Run(tc.err.Error(), func(t *testing.T) {
			status, msg := MapErrorToHTTP(fmt.Errorf("service: %w", tc.err))
			require.Equal(t, tc.wantStatus, status)
			if tc.wantMsg != "" {
				require.Equal(t, tc.wantMsg, msg)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	require.Equal(t, int64(42), id)

	for _, raw := range []string{"", "0", "-3", "abc"} {
		_, err := ParseID(raw)
		require.ErrorIs(t, err, biddingerrors.ErrInvalidBid, raw)
	}
}
