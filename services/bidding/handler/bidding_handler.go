package handler

import (
	"fmt"
	"net/http"

	model "bidding-client/internal/models"
	"bidding-client/services/bidding/helpers"
	"bidding-client/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=bidding_handler.go -destination=mock_bidding_handler.go -package=handler

type BiddingServiceInterface interface {
	GetItem(itemID int64) (model.Item, error)
	GetBid(bidID int64) (model.Bid, error)
	GetOwnBid(itemID, userID int64) (model.Bid, error)
	PlaceBid(userID, itemID int64, amount decimal.Decimal, autoBidding bool) (model.Bid, error)
	UpdateBid(userID, bidID int64, amount *decimal.Decimal, autoBidding *bool) (model.Bid, error)
	GetProfile(userID int64) (model.UserProfile, error)
	UpdateProfile(userID int64, ceiling decimal.Decimal) (model.UserProfile, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// fail writes the mapped error response and logs it
func fail(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := helpers.MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	fields["handler"] = handlerName
	fields["status"] = status
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// GetItemHandler handles GET /items/:item_id
func (h *BiddingHandler) GetItemHandler(c *gin.Context) {
	itemID, err := helpers.ParseID(c.Param("item_id"))
	if err != nil {
		fail(c, "GetItemHandler", err, map[string]any{"item_id": c.Param("item_id")})
		return
	}

	item, err := h.service.GetItem(itemID)
	if err != nil {
		fail(c, "GetItemHandler", err, map[string]any{"item_id": itemID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewItemResponse(item), "item retrieved successfully")
}

// GetBidHandler handles GET /bids/:bid_id
func (h *BiddingHandler) GetBidHandler(c *gin.Context) {
	bidID, err := helpers.ParseID(c.Param("bid_id"))
	if err != nil {
		fail(c, "GetBidHandler", err, map[string]any{"bid_id": c.Param("bid_id")})
		return
	}

	bid, err := h.service.GetBid(bidID)
	if err != nil {
		fail(c, "GetBidHandler", err, map[string]any{"bid_id": bidID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponse(bid), "bid retrieved successfully")
}

// GetOwnBidHandler handles GET /bids/own-bid?auction_item=:item_id
func (h *BiddingHandler) GetOwnBidHandler(c *gin.Context) {
	userID, _ := helpers.CurrentUserID(c)
	itemID, err := helpers.ParseID(c.Query("auction_item"))
	if err != nil {
		fail(c, "GetOwnBidHandler", err, map[string]any{"item_id": c.Query("auction_item")})
		return
	}

	bid, err := h.service.GetOwnBid(itemID, userID)
	if err != nil {
		fail(c, "GetOwnBidHandler", err, map[string]any{"item_id": itemID, "user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponse(bid), "own bid retrieved successfully")
}

// RecordBidHandler handles POST /bids
func (h *BiddingHandler) RecordBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RecordBidHandler", err)
		return
	}
	userID, _ := helpers.CurrentUserID(c)

	bid, err := h.service.PlaceBid(userID, req.ItemID, *req.BidAmount, req.AutoBidding)
	if err != nil {
		fail(c, "RecordBidHandler", err, map[string]any{
			"item_id": req.ItemID,
			"user_id": userID,
			"amount":  req.BidAmount.String(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResponse(bid), "bid recorded successfully")
	helpers.LogSuccess("RecordBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":       bid.ID,
		"item_id":      bid.ItemID,
		"user_id":      userID,
		"amount":       model.FormatAmount(bid.Amount),
		"auto_bidding": bid.AutoBidding,
	})
}

// UpdateBidHandler handles PATCH /bids/:bid_id
func (h *BiddingHandler) UpdateBidHandler(c *gin.Context) {
	bidID, err := helpers.ParseID(c.Param("bid_id"))
	if err != nil {
		fail(c, "UpdateBidHandler", err, map[string]any{"bid_id": c.Param("bid_id")})
		return
	}

	var req helpers.UpdateBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateBidHandler", err)
		return
	}
	userID, _ := helpers.CurrentUserID(c)

	bid, err := h.service.UpdateBid(userID, bidID, req.BidAmount, req.AutoBidding)
	if err != nil {
		fail(c, "UpdateBidHandler", err, map[string]any{"bid_id": bidID, "user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponse(bid), "bid updated successfully")
	helpers.LogSuccess("UpdateBidHandler", "bid updated successfully", map[string]any{
		"bid_id":       bid.ID,
		"user_id":      userID,
		"amount":       model.FormatAmount(bid.Amount),
		"auto_bidding": bid.AutoBidding,
	})
}

// GetProfileHandler handles GET /user
func (h *BiddingHandler) GetProfileHandler(c *gin.Context) {
	userID, _ := helpers.CurrentUserID(c)
	profile, err := h.service.GetProfile(userID)
	if err != nil {
		fail(c, "GetProfileHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewProfileResponse(profile), "profile retrieved successfully")
}

// UpdateProfileHandler handles PATCH /user
func (h *BiddingHandler) UpdateProfileHandler(c *gin.Context) {
	var req helpers.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateProfileHandler", err)
		return
	}
	userID, _ := helpers.CurrentUserID(c)

	profile, err := h.service.UpdateProfile(userID, *req.MaxAutoBidAmount)
	if err != nil {
		fail(c, "UpdateProfileHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewProfileResponse(profile), "profile updated successfully")
	helpers.LogSuccess("UpdateProfileHandler", "auto bid ceiling updated", map[string]any{
		"user_id":             userID,
		"max_auto_bid_amount": model.FormatAmount(profile.MaxAutoBidAmount),
	})
}
