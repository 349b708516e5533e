package server

import (
	"net/http"
	"time"

	handler "auction-marketplace/services/market/handler"
	"auction-marketplace/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// IdentityService is everything the HTTP layer needs from identity
type IdentityService interface {
	handler.IdentityServiceInterface
	TokenVerifier
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(market handler.MarketServiceInterface, identitySvc IdentityService, corsOrigins []string) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestIDMiddleware)     // X-Request-ID
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(cors.New(corsConfig(corsOrigins)))

	authHandler := handler.NewAuthHandler(identitySvc)
	marketHandler := handler.NewMarketHandler(market)

	router.GET("/", func(c *gin.Context) {
		utils.JSONResponse(c, http.StatusOK, nil, "welcome to the auction marketplace API")
	})

	auth := router.Group("/auth")
	{
		auth.POST("/login", authHandler.LoginHandler)
		auth.POST("/register", authHandler.RegisterHandler)
	}

	api := router.Group("", AuthMiddleware(identitySvc))

	api.GET("/auth/verify_token", authHandler.VerifyTokenHandler)

	me := api.Group("/users/me")
	{
		me.GET("", marketHandler.GetMeHandler)
		me.PUT("", marketHandler.UpdateMeHandler)
	}

	items := api.Group("/items")
	{
		items.GET("", marketHandler.ListItemsHandler)
		items.POST("", marketHandler.CreateItemHandler)
		items.GET("/:id", marketHandler.GetItemHandler)
		items.PUT("/:id", marketHandler.UpdateItemHandler)
		items.DELETE("/:id", marketHandler.DeleteItemHandler)
	}

	auctions := api.Group("/auctions")
	{
		auctions.GET("", marketHandler.ListAuctionsHandler)
		auctions.POST("", marketHandler.CreateAuctionHandler)
		auctions.GET("/:id", marketHandler.GetAuctionHandler)
		auctions.PUT("/:id", marketHandler.UpdateAuctionHandler)
		auctions.DELETE("/:id", marketHandler.DeleteAuctionHandler)
	}

	bids := api.Group("/bids")
	{
		bids.GET("", marketHandler.ListBidsHandler)
		bids.POST("", marketHandler.RecordBidHandler)
		bids.GET("/:id", marketHandler.GetBidHandler)
		bids.PUT("/:id", marketHandler.UpdateBidHandler)
		bids.DELETE("/:id", marketHandler.DeleteBidHandler)
	}

	payments := api.Group("/payments")
	{
		payments.GET("", marketHandler.ListPaymentsHandler)
		payments.POST("", marketHandler.CreatePaymentHandler)
		payments.GET("/:id", marketHandler.GetPaymentHandler)
		payments.PUT("/:id", marketHandler.UpdatePaymentHandler)
		payments.DELETE("/:id", marketHandler.DeletePaymentHandler)
	}

	admin := api.Group("/admin")
	{
		admin.GET("/categories", marketHandler.ListCategoriesHandler)
		admin.POST("/categories", marketHandler.CreateCategoryHandler)
		admin.GET("/categories/:id", marketHandler.GetCategoryHandler)
		admin.PUT("/categories/:id", marketHandler.UpdateCategoryHandler)
		admin.DELETE("/categories/:id", marketHandler.DeleteCategoryHandler)

		admin.GET("/users", marketHandler.ListUsersHandler)
		admin.POST("/users", marketHandler.CreateAdminHandler)
		admin.GET("/users/:id", marketHandler.GetUserHandler)
		admin.PUT("/users/:id", marketHandler.UpdateUserHandler)
		admin.DELETE("/users/:id", marketHandler.DeleteUserHandler)
	}

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", requestIDHeader},
		ExposeHeaders:    []string{requestIDHeader},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
