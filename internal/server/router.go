package server

import (
	"net/http"

	handler "bomul-market/services/market/handler"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies are the collaborators the HTTP surface calls into
type Dependencies struct {
	Auctions handler.AuctionServiceInterface
	Market   handler.MarketplaceInterface
	Events   handler.EventSource
	// Gatherer backs /metrics; nil disables the endpoint
	Gatherer prometheus.Gatherer
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(deps Dependencies) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	marketHandler := handler.NewMarketHandler(deps.Auctions, deps.Market)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "bomul-market"})
	})
	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}
	if deps.Events != nil {
		router.GET("/ws", handler.NewStreamHandler(deps.Events).StreamEventsHandler)
	}

	products := router.Group("/products")
	{
		products.GET("", marketHandler.ListProductsHandler)
		products.POST("", marketHandler.CreateProductHandler)
		products.GET("/:id", marketHandler.GetProductHandler)
		products.DELETE("/:id", marketHandler.DeleteProductHandler)
		products.POST("/:id/bids", marketHandler.PlaceBidHandler)
		products.POST("/:id/quick-close", marketHandler.QuickCloseHandler)
		products.POST("/:id/buy", marketHandler.BuyNowHandler)
	}

	users := router.Group("/users")
	{
		users.POST("", marketHandler.RegisterUserHandler)
		users.GET("/:id", marketHandler.GetUserHandler)
		users.POST("/:id/subscription", marketHandler.SubscribeHandler)
		users.POST("/:id/tickets", marketHandler.PurchaseTicketHandler)
	}

	session := router.Group("/session")
	{
		session.POST("", marketHandler.LoginHandler)
		session.GET("", marketHandler.CurrentSessionHandler)
		session.DELETE("", marketHandler.LogoutHandler)
	}

	reports := router.Group("/reports")
	{
		reports.GET("", marketHandler.ListReportsHandler)
		reports.GET("/orphaned", marketHandler.OrphanedReportsHandler)
		reports.POST("", marketHandler.CreateReportHandler)
		reports.PATCH("/:id", marketHandler.UpdateReportHandler)
	}

	return router
}
