package bidflow

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"bidding-client/internal/biddingerrors"
	"bidding-client/internal/models"
	"bidding-client/internal/session"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

// newLoadedController returns a controller whose state already holds item, leading and own.
func newLoadedController(t *testing.T, api *MockAuctionAPI, closed ClosedChecker, item models.Item, leading, own *models.Bid) (*BidController, *session.State) {
	t.Helper()
	state := session.New(viewerID, decimal.Zero)
	refresher := NewRefresher(api, state, DefaultIncrement)

	expectRefresh(api, item, leading, own)
	require.NoError(t, refresher.Open(context.Background(), item.ID))

	return NewBidController(api, state, refresher, closed), state
}

func TestBidController_SubmitBid(t *testing.T) {
	leading := models.Bid{ID: 100, ItemID: itemID, BidderID: 3, Amount: amount("10.00")}
	own := models.Bid{ID: 101, ItemID: itemID, BidderID: viewerID, Amount: amount("8.00")}

	t.Run("first_bid_creates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		api := NewMockAuctionAPI(ctrl)

		controller, state := newLoadedController(t, api, nil, newItem([]int64{100}, []int64{3}), &leading, nil)
		before := state.Trigger()

		created := models.Bid{ID: 102, ItemID: itemID, BidderID: viewerID, Amount: amount("12.50")}
		api.EXPECT().CreateBid(gomock.Any(), models.NewBid{ItemID: itemID, BidAmount: "12.50", AutoBidding: false}).Return(created, nil).Times(1)
		api.EXPECT().UpdateBid(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		expectRefresh(api, newItem([]int64{102, 100}, []int64{3, viewerID}), &created, &created)

		require.NoError(t, controller.SubmitBid(context.Background(), amount("12.5"), false))
		require.NotEqual(t, before, state.Trigger())
		require.Equal(t, session.FieldError{}, state.BidError())

		got, ok := state.OwnBid().Get()
		require.True(t, ok)
		require.Equal(t, int64(102), got.ID)
		require.Equal(t, "13.50", models.FormatAmount(state.Draft()))
	})

	t.Run("existing_bid_updates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		api := NewMockAuctionAPI(ctrl)

		item := newItem([]int64{100, 101}, []int64{3, viewerID})
		controller, state := newLoadedController(t, api, nil, item, &leading, &own)
		state.SetBidError("Bid too low")

		updated := own
		updated.Amount = amount("15.00")
		updated.AutoBidding = true
		api.EXPECT().CreateBid(gomock.Any(), gomock.Any()).Times(0)
		api.EXPECT().UpdateBid(gomock.Any(), int64(101), models.BidPatch{BidAmount: strPtr("15.00"), AutoBidding: boolPtr(true)}).Return(updated, nil).Times(1)
		expectRefresh(api, newItem([]int64{101, 100}, []int64{3, viewerID}), &updated, &updated)

		require.NoError(t, controller.SubmitBid(context.Background(), amount("15"), true))
		require.False(t, state.BidError().Active)
		require.True(t, state.AutoBidding())
	})

	t.Run("rejection_shows_message_without_refresh", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		api := NewMockAuctionAPI(ctrl)

		controller, state := newLoadedController(t, api, nil, newItem([]int64{100}, []int64{3}), &leading, nil)
		before := state.Trigger()

		api.EXPECT().CreateBid(gomock.Any(), models.NewBid{ItemID: itemID, BidAmount: "10.00"}).
			Return(models.Bid{}, &biddingerrors.ValidationError{Status: http.StatusBadRequest, Message: "Bid too low"})

		err := controller.SubmitBid(context.Background(), amount("9.995"), false)
		require.Error(t, err)
		_, isValidation := biddingerrors.AsValidation(err)
		require.True(t, isValidation)

		require.Equal(t, session.FieldError{Active: true, Text: "Bid too low"}, state.BidError())
		require.Equal(t, before, state.Trigger())
		require.Equal(t, "11.00", models.FormatAmount(state.Draft()))
	})

	t.Run("transport_failure_is_swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		api := NewMockAuctionAPI(ctrl)

		controller, state := newLoadedController(t, api, nil, newItem([]int64{100}, []int64{3}), &leading, nil)
		before := state.Snapshot()

		api.EXPECT().CreateBid(gomock.Any(), gomock.Any()).Return(models.Bid{}, biddingerrors.ErrUnavailable)

		err := controller.SubmitBid(context.Background(), amount("20"), false)
		require.ErrorIs(t, err, biddingerrors.ErrUnavailable)
		require.Equal(t, before.Trigger, state.Trigger())
		require.Equal(t, before.BidError, state.BidError())
	})

	t.Run("session_abandoned_is_not_a_field_error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		api := NewMockAuctionAPI(ctrl)

		item := newItem([]int64{100, 101}, []int64{3, viewerID})
		controller, state := newLoadedController(t, api, nil, item, &leading, &own)

		api.EXPECT().UpdateBid(gomock.Any(), int64(101), gomock.Any()).Return(models.Bid{}, biddingerrors.ErrSessionAbandoned)

		err := controller.SubmitBid(context.Background(), amount("20"), false)
		require.True(t, errors.Is(err, biddingerrors.ErrSessionAbandoned))
		require.False(t, state.BidError().Active)
	})

	t.Run("closed_auction_blocks_submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		api := NewMockAuctionAPI(ctrl)
		closed := NewMockClosedChecker(ctrl)
		closed.EXPECT().Closed().Return(true)

		controller, _ := newLoadedController(t, api, closed, newItem(nil, nil), nil, nil)
		api.EXPECT().CreateBid(gomock.Any(), gomock.Any()).Times(0)

		err := controller.SubmitBid(context.Background(), amount("20"), false)
		require.ErrorIs(t, err, biddingerrors.ErrAuctionClosed)
	})
}

func TestBidController_SubmitDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	api := NewMockAuctionAPI(ctrl)
	closed := NewMockClosedChecker(ctrl)
	closed.EXPECT().Closed().Return(false)

	leading := models.Bid{ID: 100, Amount: amount("10.00")}
	controller, state := newLoadedController(t, api, closed, newItem([]int64{100}, []int64{3}), &leading, nil)
	state.SetAutoBidding(true)

	api.EXPECT().CreateBid(gomock.Any(), models.NewBid{ItemID: itemID, BidAmount: "11.00", AutoBidding: true}).
		Return(models.Bid{ID: 5}, nil)
	expectRefresh(api, newItem([]int64{5, 100}, []int64{3, viewerID}), &models.Bid{ID: 5, Amount: amount("11.00")}, &models.Bid{ID: 5, Amount: amount("11.00"), AutoBidding: true})

	require.NoError(t, controller.SubmitDraft(context.Background()))
}
