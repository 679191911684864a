package bidding

import (
	"errors"
	"testing"
	"time"

	"bidding-client/internal/biddingerrors"
	model "bidding-client/internal/models"
	"bidding-client/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var errStorage = errors.New("storage unavailable")

var (
	now     = time.Date(2030, time.March, 1, 12, 0, 0, 0, time.UTC)
	closeAt = now.Add(time.Hour)
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func openItem() model.Item {
	return model.Item{ID: 1, Title: "Lamp", InitBid: dec("5"), CloseAt: closeAt}
}

// Tests PlaceBid
func TestBiddingService_PlaceBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionDB(ctrl)
	service := NewBiddingService(mockRepo, clockwork.NewFakeClockAt(now))

	tests := []struct {
		name          string
		itemID        int64
		userID        int64
		amount        string
		mockSetup     func()
		expectedError error
	}{
		{
			name:   "valid_first_bid",
			itemID: 1,
			userID: 7,
			amount: "6",
			mockSetup: func() {
				mockRepo.EXPECT().GetItem(int64(1)).Return(openItem(), nil)
				mockRepo.EXPECT().GetBidByUser(int64(1), int64(7)).Return(model.Bid{}, biddingerrors.ErrNoBid)
				mockRepo.EXPECT().GetHighestBid(int64(1)).Return(model.Bid{}, biddingerrors.ErrNoBids)
				mockRepo.EXPECT().CreateBid(gomock.Any()).DoAndReturn(func(b model.Bid) (model.Bid, error) {
					b.ID = 10
					return b, nil
				})
			},
		},
		{
			name:          "empty_itemID",
			itemID:        0,
			userID:        7,
			amount:        "6",
			mockSetup:     func() {},
			expectedError: biddingerrors.ErrInvalidBid,
		},
		{
			name:   "item_not_found",
			itemID: 2,
			userID: 7,
			amount: "6",
			mockSetup: func() {
				mockRepo.EXPECT().GetItem(int64(2)).Return(model.Item{}, biddingerrors.ErrItemNotFound)
			},
			expectedError: biddingerrors.ErrItemNotFound,
		},
		{
			name:   "item_expired",
			itemID: 1,
			userID: 7,
			amount: "6",
			mockSetup: func() {
				item := openItem()
				item.CloseAt = now
				mockRepo.EXPECT().GetItem(int64(1)).Return(item, nil)
			},
			expectedError: biddingerrors.ErrAuctionExpired,
		},
		{
			name:   "bid_already_exists",
			itemID: 1,
			userID: 7,
			amount: "6",
			mockSetup: func() {
				mockRepo.EXPECT().GetItem(int64(1)).Return(openItem(), nil)
				mockRepo.EXPECT().GetBidByUser(int64(1), int64(7)).Return(model.Bid{ID: 3, BidderID: 7}, nil)
			},
			expectedError: biddingerrors.ErrBidExists,
		},
		{
			name:   "below_initial_bid",
			itemID: 1,
			userID: 7,
			amount: "4.50",
			mockSetup: func() {
				mockRepo.EXPECT().GetItem(int64(1)).Return(openItem(), nil)
				mockRepo.EXPECT().GetBidByUser(int64(1), int64(7)).Return(model.Bid{}, biddingerrors.ErrNoBid)
			},
			expectedError: biddingerrors.ErrBidTooLow,
		},
		{
			name:   "equal_to_highest",
			itemID: 1,
			userID: 7,
			amount: "10.00",
			mockSetup: func() {
				mockRepo.EXPECT().GetItem(int64(1)).Return(openItem(), nil)
				mockRepo.EXPECT().GetBidByUser(int64(1), int64(7)).Return(model.Bid{}, biddingerrors.ErrNoBid)
				mockRepo.EXPECT().GetHighestBid(int64(1)).Return(model.Bid{ID: 4, Amount: dec("10")}, nil)
			},
			expectedError: biddingerrors.ErrBidTooLow,
		},
		{
			name:   "negative_amount",
			itemID: 1,
			userID: 7,
			amount: "-1",
			mockSetup: func() {
				mockRepo.EXPECT().GetItem(int64(1)).Return(openItem(), nil)
				mockRepo.EXPECT().GetBidByUser(int64(1), int64(7)).Return(model.Bid{}, biddingerrors.ErrNoBid)
			},
			expectedError: biddingerrors.ErrInvalidBid,
		},
		{
			name:   "repository_failure",
			itemID: 1,
			userID: 7,
			amount: "6",
			mockSetup: func() {
				mockRepo.EXPECT().GetItem(int64(1)).Return(openItem(), nil)
				mockRepo.EXPECT().GetBidByUser(int64(1), int64(7)).Return(model.Bid{}, errStorage)
			},
			expectedError: errStorage,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			bid, err := service.PlaceBid(tc.userID, tc.itemID, dec(tc.amount), true)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			require.Equal(t, int64(10), bid.ID)
			require.Equal(t, tc.userID, bid.BidderID)
			require.True(t, bid.AutoBidding)
		})
	}
}

// Tests UpdateBid
func TestBiddingService_UpdateBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionDB(ctrl)
	service := NewBiddingService(mockRepo, clockwork.NewFakeClockAt(now))

	own := model.Bid{ID: 3, ItemID: 1, BidderID: 7, Amount: dec("8")}
	on := true
	higher := dec("12")
	same := dec("8.00")

	tests := []struct {
		name          string
		userID        int64
		amount        *decimal.Decimal
		autoBidding   *bool
		mockSetup     func()
		expectedError error
		wantAmount    string
		wantAuto      bool
	}{
		{
			name:        "raise_amount",
			userID:      7,
			amount:      &higher,
			autoBidding: nil,
			mockSetup: func() {
				mockRepo.EXPECT().GetBid(int64(3)).Return(own, nil)
				mockRepo.EXPECT().GetItem(int64(1)).Return(openItem(), nil)
				mockRepo.EXPECT().GetHighestBid(int64(1)).Return(model.Bid{ID: 4, Amount: dec("10")}, nil)
				mockRepo.EXPECT().UpdateBid(gomock.Any()).DoAndReturn(func(b model.Bid) (model.Bid, error) { return b, nil })
			},
			wantAmount: "12.00",
		},
		{
			name:        "flag_only",
			userID:      7,
			autoBidding: &on,
			mockSetup: func() {
				mockRepo.EXPECT().GetBid(int64(3)).Return(own, nil)
				mockRepo.EXPECT().GetItem(int64(1)).Return(openItem(), nil)
				mockRepo.EXPECT().UpdateBid(gomock.Any()).DoAndReturn(func(b model.Bid) (model.Bid, error) { return b, nil })
			},
			wantAmount: "8.00",
			wantAuto:   true,
		},
		{
			name:   "same_amount_too_low",
			userID: 7,
			amount: &same,
			mockSetup: func() {
				mockRepo.EXPECT().GetBid(int64(3)).Return(own, nil)
				mockRepo.EXPECT().GetItem(int64(1)).Return(openItem(), nil)
			},
			expectedError: biddingerrors.ErrBidTooLow,
		},
		{
			name:   "not_owner",
			userID: 8,
			amount: &higher,
			mockSetup: func() {
				mockRepo.EXPECT().GetBid(int64(3)).Return(own, nil)
			},
			expectedError: biddingerrors.ErrForbidden,
		},
		{
			name:   "bid_not_found",
			userID: 7,
			amount: &higher,
			mockSetup: func() {
				mockRepo.EXPECT().GetBid(int64(3)).Return(model.Bid{}, biddingerrors.ErrBidNotFound)
			},
			expectedError: biddingerrors.ErrBidNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			bid, err := service.UpdateBid(tc.userID, 3, tc.amount, tc.autoBidding)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantAmount, model.FormatAmount(bid.Amount))
			require.Equal(t, tc.wantAuto, bid.AutoBidding)
		})
	}
}

// Tests that an item closes exactly at its close time
func TestBiddingService_ExpiresAtCloseTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clock := clockwork.NewFakeClockAt(closeAt.Add(-time.Second))
	mockRepo := repository.NewMockAuctionDB(ctrl)
	service := NewBiddingService(mockRepo, clock)

	mockRepo.EXPECT().GetItem(int64(1)).Return(openItem(), nil).Times(2)
	mockRepo.EXPECT().GetBidByUser(int64(1), int64(7)).Return(model.Bid{}, biddingerrors.ErrNoBid)
	mockRepo.EXPECT().GetHighestBid(int64(1)).Return(model.Bid{}, biddingerrors.ErrNoBids)
	mockRepo.EXPECT().CreateBid(gomock.Any()).DoAndReturn(func(b model.Bid) (model.Bid, error) { return b, nil })

	_, err := service.PlaceBid(7, 1, dec("5"), false)
	require.NoError(t, err)

	clock.Advance(time.Second)
	_, err = service.PlaceBid(7, 1, dec("6"), false)
	require.ErrorIs(t, err, biddingerrors.ErrAuctionExpired)
}

// Tests Authenticate and UpdateProfile
func TestBiddingService_Profile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionDB(ctrl)
	service := NewBiddingService(mockRepo, nil)

	t.Run("missing_token", func(t *testing.T) {
		_, err := service.Authenticate("")
		require.ErrorIs(t, err, biddingerrors.ErrUnauthorized)
	})

	t.Run("unknown_token", func(t *testing.T) {
		mockRepo.EXPECT().UserByToken("nope").Return(model.UserProfile{}, biddingerrors.ErrUserNotFound)
		_, err := service.Authenticate("nope")
		require.ErrorIs(t, err, biddingerrors.ErrUnauthorized)
	})

	t.Run("negative_ceiling", func(t *testing.T) {
		_, err := service.UpdateProfile(7, dec("-0.01"))
		require.ErrorIs(t, err, biddingerrors.ErrInvalidCeiling)
	})

	t.Run("zero_ceiling_allowed", func(t *testing.T) {
		mockRepo.EXPECT().UpdateProfile(model.UserProfile{ID: 7, MaxAutoBidAmount: decimal.Zero}).
			Return(model.UserProfile{ID: 7, Username: "alice"}, nil)
		profile, err := service.UpdateProfile(7, decimal.Zero)
		require.NoError(t, err)
		require.Equal(t, "alice", profile.Username)
	})
}
