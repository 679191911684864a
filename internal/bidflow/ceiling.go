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

// CeilingController manages the viewer's auto-bid ceiling and the auto-bidding
// flag of their bid on the current item.
type CeilingController struct {
	api       AuctionAPI
	state     *session.State
	refresher *Refresher
	store     CeilingStore
}

// NewCeilingController creates a CeilingController. store may be nil.
func NewCeilingController(api AuctionAPI, state *session.State, refresher *Refresher, store CeilingStore) *CeilingController {
	return &CeilingController{api: api, state: state, refresher: refresher, store: store}
}

// SetAutoBidding changes the toggle committed by the next SetCeiling
func (c *CeilingController) SetAutoBidding(enabled bool) {
	c.state.SetAutoBidding(enabled)
}

// OpenDialog opens the bidding settings dialog
func (c *CeilingController) OpenDialog() {
	c.state.SetDialogOpen(true)
}

// CloseDialog closes the bidding settings dialog
func (c *CeilingController) CloseDialog() {
	c.state.SetDialogOpen(false)
}

// SetCeiling commits the ceiling to the viewer's profile and then, only if that
// succeeded, the toggle to the viewer's bid on the item. The two writes target
// different resources and report their failures separately on the ceiling field.
func (c *CeilingController) SetCeiling(ctx context.Context, amount decimal.Decimal) error {
	formatted := models.FormatAmount(amount)
	fields := map[string]any{"item_id": c.state.ItemID(), "ceiling": formatted}

	profile, err := c.api.UpdateProfile(ctx, models.ProfilePatch{MaxAutoBidAmount: formatted})
	if err != nil {
		c.reportFailure("set ceiling: profile update", fields, err)
		return fmt.Errorf("set ceiling: update profile: %w", err)
	}

	c.state.SetCeiling(profile.MaxAutoBidAmount)
	if c.store != nil {
		if err := c.store.SaveCeiling(profile.MaxAutoBidAmount); err != nil {
			utils.Warn("set ceiling: failed to persist ceiling", withError(fields, err))
		}
	}

	flagErr := c.commitFlag(ctx, fields)

	// the profile changed either way
	if err := c.refresher.Trigger(ctx); err != nil && flagErr == nil {
		return fmt.Errorf("set ceiling: %w", err)
	}
	return flagErr
}

func (c *CeilingController) commitFlag(ctx context.Context, fields map[string]any) error {
	own, exists := c.state.OwnBid().Get()
	if exists {
		enabled := c.state.AutoBidding()
		if _, err := c.api.UpdateBid(ctx, own.ID, models.BidPatch{AutoBidding: &enabled}); err != nil {
			c.reportFailure("set ceiling: bid flag update", fields, err)
			return fmt.Errorf("set ceiling: update bid %d: %w", own.ID, err)
		}
	}

	c.state.ResetCeilingError()
	c.state.SetDialogOpen(false)
	utils.Info("set ceiling: committed", fields)
	return nil
}

func (c *CeilingController) reportFailure(step string, fields map[string]any, err error) {
	if verr, ok := biddingerrors.AsValidation(err); ok {
		c.state.SetCeilingError(verr.Message)
		utils.Warn(step+" rejected", withError(fields, err))
		return
	}
	utils.Error(step+" failed", withError(fields, err))
}
