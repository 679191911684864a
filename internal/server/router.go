package server

import (
	bidding "bidding-client/internal/biddingService"
	handler "bidding-client/services/bidding/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the sandbox auction service
func SetupRouter(biddingService *bidding.BiddingService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(TokenAuthMiddleware(biddingService))

	biddingHandler := handler.NewBiddingHandler(biddingService)

	items := router.Group("/items")
	{
		items.GET("/:item_id", biddingHandler.GetItemHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("", biddingHandler.RecordBidHandler)
		bids.GET("/own-bid", biddingHandler.GetOwnBidHandler)
		bids.GET("/:bid_id", biddingHandler.GetBidHandler)
		bids.PATCH("/:bid_id", biddingHandler.UpdateBidHandler)
	}

	user := router.Group("/user")
	{
		user.GET("", biddingHandler.GetProfileHandler)
		user.PATCH("", biddingHandler.UpdateProfileHandler)
	}

	return router
}
