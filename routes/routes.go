package routes

import (
	"net/http"
	"time"

	"trimly/handlers"
	"trimly/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterShopRoutes registers shop account endpoints.
func RegisterShopRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/shops")
	{
		api.POST("/register", hb.RegisterShopHandler)
		api.POST("/login", hb.AuthenticateShopHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthShopMiddleware(hb.ShopRepo))
		api.GET("/me", hb.GetShopHandler)
		api.PATCH("/me", hb.UpdateShopHandler)
		api.DELETE("/revoke", hb.RevokeShopTokenHandler)
	}
}

// RegisterBookingRoutes registers booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthShopMiddleware(hb.ShopRepo))
		api.POST("", hb.CreateBookingHandler)
		api.GET("", hb.ListBookingsHandler)
		api.GET("/agenda/:date", hb.DayAgendaHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.PATCH("/:id/status", hb.UpdateBookingStatusHandler)
		api.DELETE("/:id", hb.DeleteBookingHandler)
	}
}

// RegisterCustomerRoutes registers customer endpoints.
func RegisterCustomerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/customers")
	{
		api.Use(middleware.JWTAuthShopMiddleware(hb.ShopRepo))
		api.POST("", hb.CreateCustomerHandler)
		api.GET("", hb.ListCustomersHandler)
		api.GET("/:id", hb.GetCustomerHandler)
		api.PUT("/:id", hb.UpdateCustomerHandler)
		api.DELETE("/:id", hb.DeleteCustomerHandler)
	}
}

// RegisterReviewRoutes registers review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.Use(middleware.JWTAuthShopMiddleware(hb.ShopRepo))
		api.POST("", hb.AddReviewHandler)
		api.GET("", hb.ListReviewsHandler)
		api.PUT("/:id/response", hb.RespondToReviewHandler)
	}
}

// RegisterCampaignRoutes registers marketing campaign endpoints.
func RegisterCampaignRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/campaigns")
	{
		api.Use(middleware.JWTAuthShopMiddleware(hb.ShopRepo))
		api.POST("", hb.CreateCampaignHandler)
		api.GET("", hb.ListCampaignsHandler)
		api.GET("/:id", hb.GetCampaignHandler)
		api.PATCH("/:id", hb.UpdateCampaignHandler)
		api.DELETE("/:id", hb.DeleteCampaignHandler)
		api.POST("/:id/image", hb.UploadCampaignImageHandler)
	}
}

// RegisterPaymentRoutes registers autopay endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.JWTAuthShopMiddleware(hb.ShopRepo))
		api.GET("/autopay", hb.GetAutopayHandler)
		api.POST("/autopay/enable", hb.EnableAutopayHandler)
		api.POST("/autopay/disable", hb.DisableAutopayHandler)
		api.PUT("/autopay/payment-method", hb.SetPaymentMethodHandler)
	}
}

// RegisterInsightsRoutes registers the metrics, alerts, and assistant endpoints.
func RegisterInsightsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/insights")
	{
		api.Use(middleware.JWTAuthShopMiddleware(hb.ShopRepo))
		api.GET("/dashboard", hb.InsightsDashboardHandler)
		api.GET("/metrics", hb.InsightsMetricsHandler)
		api.POST("/assistant", hb.AssistantHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Trimly"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterShopRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterCustomerRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterCampaignRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterInsightsRoutes(r, hb)
	RegisterHealthRoute(r)
}
