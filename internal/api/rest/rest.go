package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/ufund-io/ufund-v2/internal/api/middleware"
	"github.com/ufund-io/ufund-v2/internal/metrics"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// Prometheus metrics (no auth, no version prefix)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	auth := middleware.Auth(authCfg)
	manager := middleware.RequireManager()

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Need catalog (public read access)
		v1.GET("/needs", handler.ListNeeds)
		v1.GET("/needs/:id", handler.GetNeed)
		v1.POST("/needs/batch", handler.BatchNeeds)

		// Catalog maintenance (requires manager role)
		v1.POST("/needs", auth, manager, handler.CreateNeed)
		v1.PUT("/needs/:id", auth, manager, handler.UpdateNeed)
		v1.DELETE("/needs/:id", auth, manager, handler.DeleteNeed)
		v1.POST("/needs/:id/fulfill", auth, manager, handler.FulfillNeed)

		// Funding basket (requires authentication, scoped to the session user)
		v1.GET("/baskets/me", auth, handler.GetBasket)
		v1.POST("/baskets/me/lines", auth, handler.AddBasketLine)
		v1.PATCH("/baskets/me/lines/:needId", auth, handler.AdjustBasketLine)
		v1.DELETE("/baskets/me/lines/:needId", auth, handler.RemoveBasketLine)
		v1.DELETE("/baskets/me", auth, handler.ClearBasket)
		v1.POST("/baskets/me/checkout", auth, handler.Checkout)

		// Profiles (registration and supporter listing are public)
		v1.POST("/profiles", handler.CreateProfile)
		v1.GET("/profiles", handler.ListProfiles)
		v1.GET("/profiles/me", auth, handler.GetMyProfile)
		v1.PUT("/profiles/me", auth, handler.UpdateProfile)
		v1.PUT("/profiles/me/privacy", auth, handler.SetPrivacy)
		v1.DELETE("/profiles/me", auth, handler.DeleteProfile)
		v1.GET("/profiles/:userName", handler.GetProfile)
	}
}
