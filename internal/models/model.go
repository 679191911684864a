package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// amountPrecision is the number of fraction digits used for every monetary value on the wire.
const amountPrecision int32 = 2

// UserProfile represents a participant in the auction and their auto-bid budget
type UserProfile struct {
	ID               int64           `json:"id" yaml:"id"`
	Username         string          `json:"username" yaml:"username"`
	MaxAutoBidAmount decimal.Decimal `json:"max_auto_bid_amount" yaml:"max_auto_bid_amount"`
}

// Item represents an auction item as mirrored from the remote service.
// Bids is ordered leader first.
type Item struct {
	ID          int64           `json:"id" yaml:"id"`
	Title       string          `json:"title" yaml:"title"`
	Description string          `json:"description" yaml:"description"`
	Picture     string          `json:"compressed_picture" yaml:"picture"`
	InitBid     decimal.Decimal `json:"init_bid" yaml:"init_bid"`
	CloseAt     time.Time       `json:"bid_close_date" yaml:"bid_close_date"`
	Bids        []int64         `json:"bids" yaml:"-"`
	Bidders     []int64         `json:"bidders" yaml:"-"`
}

// HasBidder reports whether userID appears in the item's bidder list
func (i Item) HasBidder(userID int64) bool {
	for _, id := range i.Bidders {
		if id == userID {
			return true
		}
	}
	return false
}

// LeadingBidID returns the identifier of the leading bid, if any
func (i Item) LeadingBidID() (int64, bool) {
	if len(i.Bids) == 0 {
		return 0, false
	}
	return i.Bids[0], true
}

// Bid represents a user's bid on an item
type Bid struct {
	ID          int64           `json:"id"`
	ItemID      int64           `json:"auction_item"`
	BidderID    int64           `json:"bidder"`
	Amount      decimal.Decimal `json:"bid_amount"`
	AutoBidding bool            `json:"auto_bidding"`
}

// NoHighestBid is the highest-bid projection of an item nobody has bid on yet.
var NoHighestBid = Bid{}

// NewBid is the payload used to create the caller's first bid on an item
type NewBid struct {
	ItemID      int64  `json:"auction_item"`
	BidAmount   string `json:"bid_amount"`
	AutoBidding bool   `json:"auto_bidding"`
}

// BidPatch is the payload used to update an existing bid. Nil fields are left untouched.
type BidPatch struct {
	BidAmount   *string `json:"bid_amount,omitempty"`
	AutoBidding *bool   `json:"auto_bidding,omitempty"`
}

// ProfilePatch is the payload used to update the caller's auto-bid ceiling
type ProfilePatch struct {
	MaxAutoBidAmount string `json:"max_auto_bid_amount"`
}

// FormatAmount renders an amount with exactly two fraction digits, rounding half away from zero.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(amountPrecision)
}

// ParseAmount parses user input such as "12.5" or "$12.50" into a decimal amount
func ParseAmount(input string) (decimal.Decimal, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(input), "$")
	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", input, err)
	}
	return amount, nil
}
