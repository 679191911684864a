package bidflow

import (
	"context"
	"errors"
	"fmt"

	"bidding-client/internal/biddingerrors"
	"bidding-client/internal/session"
	"bidding-client/utils"

	"github.com/shopspring/decimal"
)

// DefaultIncrement is the amount added to the leading bid when seeding the next-bid draft
var DefaultIncrement = decimal.NewFromInt(1)

// Refresher re-fetches an item and its bids into the session state.
// It is the only writer of the server-mirrored parts of the state.
type Refresher struct {
	api       AuctionAPI
	state     *session.State
	increment decimal.Decimal
}

// NewRefresher creates a Refresher. A non-positive increment falls back to DefaultIncrement.
func NewRefresher(api AuctionAPI, state *session.State, increment decimal.Decimal) *Refresher {
	if !increment.IsPositive() {
		increment = DefaultIncrement
	}
	return &Refresher{api: api, state: state, increment: increment}
}

// Open selects itemID and loads it
func (r *Refresher) Open(ctx context.Context, itemID int64) error {
	r.state.SetItemID(itemID)
	return r.Refresh(ctx)
}

// Trigger flips the refresh trigger token and runs exactly one full refresh
func (r *Refresher) Trigger(ctx context.Context) error {
	token := r.state.FlipTrigger()
	utils.Debug("refresh triggered", map[string]any{"item_id": r.state.ItemID(), "trigger": token})
	return r.Refresh(ctx)
}

// Refresh fetches the item, then its leading bid when there is one, then the viewer's
// own bid when the viewer is a bidder. Nothing is patched locally; every value comes
// from the responses, and a later refresh simply overwrites an earlier one.
func (r *Refresher) Refresh(ctx context.Context) error {
	itemID := r.state.ItemID()

	item, err := r.api.GetItem(ctx, itemID)
	if err != nil {
		utils.Error("refresh: failed to fetch item", map[string]any{"item_id": itemID, "error": err.Error()})
		return fmt.Errorf("refresh item %d: %w", itemID, err)
	}
	r.state.SetItem(item)

	var errs []error

	if leadingID, ok := item.LeadingBidID(); ok {
		leading, err := r.api.GetBid(ctx, leadingID)
		if err != nil {
			utils.Error("refresh: failed to fetch leading bid", map[string]any{"item_id": itemID, "bid_id": leadingID, "error": err.Error()})
			errs = append(errs, fmt.Errorf("refresh leading bid %d: %w", leadingID, err))
		} else {
			r.state.SetHighestBid(leading)
			r.state.SeedDraft(leading.Amount, r.increment)
		}
	}

	if item.HasBidder(r.state.ViewerID()) {
		own, err := r.api.GetOwnBid(ctx, itemID)
		switch {
		case err == nil:
			r.state.SetOwnBid(session.ExistingBid(own))
			r.state.SetAutoBidding(own.AutoBidding)
		case errors.Is(err, biddingerrors.ErrNoBid):
			r.state.SetOwnBid(session.NoBid())
		default:
			utils.Error("refresh: failed to fetch own bid", map[string]any{"item_id": itemID, "error": err.Error()})
			errs = append(errs, fmt.Errorf("refresh own bid for item %d: %w", itemID, err))
		}
	}

	return errors.Join(errs...)
}
