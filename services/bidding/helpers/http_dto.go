package helpers

import (
	"time"

	model "bidding-client/internal/models"

	"github.com/shopspring/decimal"
)

// Request DTOs. Amounts accept both JSON strings and numbers.
type PlaceBidRequest struct {
	ItemID      int64            `json:"auction_item" binding:"required,gt=0"`
	BidAmount   *decimal.Decimal `json:"bid_amount" binding:"required"`
	AutoBidding bool             `json:"auto_bidding"`
}

type UpdateBidRequest struct {
	BidAmount   *decimal.Decimal `json:"bid_amount"`
	AutoBidding *bool            `json:"auto_bidding"`
}

type UpdateProfileRequest struct {
	MaxAutoBidAmount *decimal.Decimal `json:"max_auto_bid_amount" binding:"required"`
}

// Response DTOs. Amounts are rendered with two fraction digits.
type ItemResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Picture     string  `json:"compressed_picture"`
	InitBid     string  `json:"init_bid"`
	CloseAt     string  `json:"bid_close_date"`
	Bids        []int64 `json:"bids"`
	Bidders     []int64 `json:"bidders"`
}

type BidResponse struct {
	ID          int64  `json:"id"`
	ItemID      int64  `json:"auction_item"`
	BidderID    int64  `json:"bidder"`
	BidAmount   string `json:"bid_amount"`
	AutoBidding bool   `json:"auto_bidding"`
}

type ProfileResponse struct {
	ID               int64  `json:"id"`
	Username         string `json:"username"`
	MaxAutoBidAmount string `json:"max_auto_bid_amount"`
}

func NewItemResponse(item model.Item) ItemResponse {
	resp := ItemResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Picture:     item.Picture,
		InitBid:     model.FormatAmount(item.InitBid),
		CloseAt:     item.CloseAt.UTC().Format(time.RFC3339),
		Bids:        item.Bids,
		Bidders:     item.Bidders,
	}
	if resp.Bids == nil {
		resp.Bids = []int64{}
	}
	if resp.Bidders == nil {
		resp.Bidders = []int64{}
	}
	return resp
}

func NewBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		ID:          bid.ID,
		ItemID:      bid.ItemID,
		BidderID:    bid.BidderID,
		BidAmount:   model.FormatAmount(bid.Amount),
		AutoBidding: bid.AutoBidding,
	}
}

func NewProfileResponse(profile model.UserProfile) ProfileResponse {
	return ProfileResponse{
		ID:               profile.ID,
		Username:         profile.Username,
		MaxAutoBidAmount: model.FormatAmount(profile.MaxAutoBidAmount),
	}
}
