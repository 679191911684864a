// Package bidflow implements the bidding flow of an item detail page:
// refreshing the server-authoritative state, submitting bids and
// configuring the auto-bid ceiling.
package bidflow

//go:generate mockgen -source=api.go -destination=mock_api.go -package=bidflow

import (
	"context"

	"bidding-client/internal/models"

	"github.com/shopspring/decimal"
)

// AuctionAPI is the remote auction service as seen by the bidding flow.
// GetOwnBid returns biddingerrors.ErrNoBid when the caller has no bid on the item.
type AuctionAPI interface {
	GetItem(ctx context.Context, itemID int64) (models.Item, error)
	GetBid(ctx context.Context, bidID int64) (models.Bid, error)
	GetOwnBid(ctx context.Context, itemID int64) (models.Bid, error)
	CreateBid(ctx context.Context, bid models.NewBid) (models.Bid, error)
	UpdateBid(ctx context.Context, bidID int64, patch models.BidPatch) (models.Bid, error)
	UpdateProfile(ctx context.Context, patch models.ProfilePatch) (models.UserProfile, error)
}

// ClosedChecker reports whether bidding has closed
type ClosedChecker interface {
	Closed() bool
}

// CeilingStore persists the last-known auto-bid ceiling
type CeilingStore interface {
	SaveCeiling(ceiling decimal.Decimal) error
}
