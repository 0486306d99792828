// File: trimly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trimly/config"
	"trimly/cron"
	"trimly/database"
	bookingRepoPkg "trimly/database/repository/booking"
	campaignRepoPkg "trimly/database/repository/campaign"
	customerRepoPkg "trimly/database/repository/customer"
	reviewRepoPkg "trimly/database/repository/review"
	shopRepoPkg "trimly/database/repository/shop"
	"trimly/handlers"
	"trimly/middleware"
	"trimly/routes"
	"trimly/services/booking"
	"trimly/services/campaign"
	"trimly/services/customer"
	"trimly/services/insights"
	"trimly/services/notification"
	"trimly/services/payment"
	"trimly/services/review"
	"trimly/services/shop"
	"trimly/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()
	cron.InitTaskClient()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Warnf("main: cloudinary storage unavailable, image uploads disabled: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	shopRepo := shopRepoPkg.NewMongoShopRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	customerRepo := customerRepoPkg.NewMongoCustomerRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()
	campaignRepo := campaignRepoPkg.NewMongoCampaignRepo()

	// services.
	shopService := &shop.DefaultShopService{
		Repo: shopRepo,
	}

	bookingService := &booking.DefaultBookingService{
		Repo:      bookingRepo,
		Customers: customerRepo,
		Reminders: cron.NewReminderClient(),
	}

	customerService := &customer.DefaultCustomerService{
		Repo: customerRepo,
	}

	reviewService := &review.DefaultReviewService{
		Repo: reviewRepo,
	}

	campaignService := &campaign.DefaultCampaignService{
		Repo:    campaignRepo,
		Storage: cloudinaryStorageService,
	}

	paymentService := &payment.DefaultPaymentService{
		Shops: shopRepo,
	}

	insightsService := &insights.DefaultInsightsService{
		Bookings:  bookingRepo,
		Customers: customerRepo,
		Reviews:   reviewRepo,
		Shops:     shopRepo,
		Cache:     utils.GetCacheClient(),
		CacheTTL:  time.Duration(config.AppConfig.InsightsCacheTTL) * time.Second,
	}

	notificationService, err := notification.NewDefaultNotificationService(shopService)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	// Background worker: booking reminders + daily insights digest.
	cron.InitWorker(notificationService, insightsService, shopRepo)

	shopHandler := handlers.NewShopHandler(shopService)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	customerHandler := handlers.NewCustomerHandler(customerService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	campaignHandler := handlers.NewCampaignHandler(campaignService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	insightsHandler := handlers.NewInsightsHandler(insightsService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ShopRepo: shopRepo,

		// Shop endpoints.
		RegisterShopHandler:     shopHandler.RegisterShopHandler,
		AuthenticateShopHandler: shopHandler.AuthenticateShopHandler,
		GetShopHandler:          shopHandler.GetShopHandler,
		UpdateShopHandler:       shopHandler.UpdateShopHandler,
		RevokeShopTokenHandler:  shopHandler.RevokeShopTokenHandler,

		// Booking endpoints.
		CreateBookingHandler:       bookingHandler.CreateBookingHandler,
		GetBookingHandler:          bookingHandler.GetBookingHandler,
		ListBookingsHandler:        bookingHandler.ListBookingsHandler,
		DayAgendaHandler:           bookingHandler.DayAgendaHandler,
		UpdateBookingStatusHandler: bookingHandler.UpdateBookingStatusHandler,
		DeleteBookingHandler:       bookingHandler.DeleteBookingHandler,

		// Customer endpoints.
		CreateCustomerHandler: customerHandler.CreateCustomerHandler,
		GetCustomerHandler:    customerHandler.GetCustomerHandler,
		ListCustomersHandler:  customerHandler.ListCustomersHandler,
		UpdateCustomerHandler: customerHandler.UpdateCustomerHandler,
		DeleteCustomerHandler: customerHandler.DeleteCustomerHandler,

		// Review endpoints.
		AddReviewHandler:       reviewHandler.AddReviewHandler,
		ListReviewsHandler:     reviewHandler.ListReviewsHandler,
		RespondToReviewHandler: reviewHandler.RespondToReviewHandler,

		// Campaign endpoints.
		CreateCampaignHandler:      campaignHandler.CreateCampaignHandler,
		GetCampaignHandler:         campaignHandler.GetCampaignHandler,
		ListCampaignsHandler:       campaignHandler.ListCampaignsHandler,
		UpdateCampaignHandler:      campaignHandler.UpdateCampaignHandler,
		DeleteCampaignHandler:      campaignHandler.DeleteCampaignHandler,
		UploadCampaignImageHandler: campaignHandler.UploadCampaignImageHandler,

		// Payment endpoints.
		GetAutopayHandler:       paymentHandler.GetAutopayHandler,
		EnableAutopayHandler:    paymentHandler.EnableAutopayHandler,
		DisableAutopayHandler:   paymentHandler.DisableAutopayHandler,
		SetPaymentMethodHandler: paymentHandler.SetPaymentMethodHandler,

		// Insights endpoints.
		InsightsDashboardHandler: insightsHandler.InsightsDashboardHandler,
		InsightsMetricsHandler:   insightsHandler.InsightsMetricsHandler,
		AssistantHandler:         handlers.AssistantHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
