package bidflow

import (
	"context"
	"fmt"

	"bidding-client/internal/biddingerrors"
	"bidding-client/internal/models"
	"bidding-client/internal/session"
	"bidding-client/utils"

	"github.com/shopspring/decimal"
)

// BidController submits manual bids for the item held in the session state
type BidController struct {
	api       AuctionAPI
	state     *session.State
	refresher *Refresher
	closed    ClosedChecker
}

// NewBidController creates a BidController
func NewBidController(api AuctionAPI, state *session.State, refresher *Refresher, closed ClosedChecker) *BidController {
	return &BidController{api: api, state: state, refresher: refresher, closed: closed}
}

// SetDraft replaces the next-bid draft with user input
func (c *BidController) SetDraft(amount decimal.Decimal) {
	c.state.SetDraft(amount)
}

// SubmitDraft submits the current draft with the current auto-bidding toggle
func (c *BidController) SubmitDraft(ctx context.Context) error {
	return c.SubmitBid(ctx, c.state.Draft(), c.state.AutoBidding())
}

// SubmitBid creates the viewer's bid on the item, or updates it when one already exists.
// A validation rejection is shown against the bid field; any other failure is only logged.
// The returned error describes what happened and never requires the caller to recover.
func (c *BidController) SubmitBid(ctx context.Context, amount decimal.Decimal, autoBidding bool) error {
	if c.closed != nil && c.closed.Closed() {
		return biddingerrors.ErrAuctionClosed
	}

	itemID := c.state.ItemID()
	formatted := models.FormatAmount(amount)

	var err error
	own, exists := c.state.OwnBid().Get()
	if exists {
		_, err = c.api.UpdateBid(ctx, own.ID, models.BidPatch{BidAmount: &formatted, AutoBidding: &autoBidding})
	} else {
		_, err = c.api.CreateBid(ctx, models.NewBid{ItemID: itemID, BidAmount: formatted, AutoBidding: autoBidding})
	}

	fields := map[string]any{"item_id": itemID, "amount": formatted, "auto_bidding": autoBidding, "update": exists}
	if err != nil {
		if verr, ok := biddingerrors.AsValidation(err); ok {
			c.state.SetBidError(verr.Message)
			utils.Warn("submit bid: rejected", withError(fields, err))
		} else {
			utils.Error("submit bid: failed", withError(fields, err))
		}
		return fmt.Errorf("submit bid on item %d: %w", itemID, err)
	}

	c.state.ClearBidError()
	utils.Info("submit bid: accepted", fields)

	if err := c.refresher.Trigger(ctx); err != nil {
		return fmt.Errorf("submit bid on item %d: %w", itemID, err)
	}
	return nil
}

func withError(fields map[string]any, err error) map[string]any {
	out := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out["error"] = err.Error()
	return out
}
