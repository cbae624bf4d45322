package server

import (
	"github.com/gin-gonic/gin"

	auction "github.com/rickscode/SabaySell-sub001/internal/auctionService"
	"github.com/rickscode/SabaySell-sub001/internal/authgate"
	boost "github.com/rickscode/SabaySell-sub001/internal/boostService"
	"github.com/rickscode/SabaySell-sub001/internal/config"
	"github.com/rickscode/SabaySell-sub001/internal/obs"
	auctionhandler "github.com/rickscode/SabaySell-sub001/services/auction/handler"
	boosthandler "github.com/rickscode/SabaySell-sub001/services/boost/handler"
	paymenthandler "github.com/rickscode/SabaySell-sub001/services/payments/handler"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionSvc *auction.AuctionService, boostSvc *boost.BoostService, resolver authgate.SessionResolver, cfg config.Config) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(obs.Instrument)          // request count and latency metrics
	router.Use(AuthGateMiddleware(resolver))

	auctionHandler := auctionhandler.NewAuctionHandler(auctionSvc, SessionFrom)
	boostHandler := boosthandler.NewBoostHandler(boostSvc, SessionFrom, cfg.BoostDurationDays)
	webhookHandler := paymenthandler.NewWebhookHandler(boostSvc, cfg.WebhookSecret, cfg.SkipSignature)

	limited := RateLimitMiddleware(20, 10)

	auctions := router.Group("/auctions")
	{
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.POST("/:auction_id/bids", limited, auctionHandler.PlaceBidHandler)
	}

	boosts := router.Group("/boosts")
	{
		boosts.POST("", boostHandler.PurchaseBoostHandler)
	}

	webhooks := router.Group("/webhooks")
	{
		webhooks.POST("/bakong", limited, webhookHandler.HandleWebhook)
		webhooks.GET("/bakong", webhookHandler.HealthHandler)
	}

	router.GET("/metrics", obs.Handler())

	return router
}
