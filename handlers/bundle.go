// File: trimly/handlers/bundle.go
package handlers

import (
	shopRepoPkg "trimly/database/repository/shop"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	ShopRepo shopRepoPkg.ShopRepository

	// Shop endpoints
	RegisterShopHandler     gin.HandlerFunc
	AuthenticateShopHandler gin.HandlerFunc
	GetShopHandler          gin.HandlerFunc
	UpdateShopHandler       gin.HandlerFunc
	RevokeShopTokenHandler  gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler       gin.HandlerFunc
	GetBookingHandler          gin.HandlerFunc
	ListBookingsHandler        gin.HandlerFunc
	DayAgendaHandler           gin.HandlerFunc
	UpdateBookingStatusHandler gin.HandlerFunc
	DeleteBookingHandler       gin.HandlerFunc

	// Customer endpoints
	CreateCustomerHandler gin.HandlerFunc
	GetCustomerHandler    gin.HandlerFunc
	ListCustomersHandler  gin.HandlerFunc
	UpdateCustomerHandler gin.HandlerFunc
	DeleteCustomerHandler gin.HandlerFunc

	// Review endpoints
	AddReviewHandler       gin.HandlerFunc
	ListReviewsHandler     gin.HandlerFunc
	RespondToReviewHandler gin.HandlerFunc

	// Campaign endpoints
	CreateCampaignHandler      gin.HandlerFunc
	GetCampaignHandler         gin.HandlerFunc
	ListCampaignsHandler       gin.HandlerFunc
	UpdateCampaignHandler      gin.HandlerFunc
	DeleteCampaignHandler      gin.HandlerFunc
	UploadCampaignImageHandler gin.HandlerFunc

	// Payment endpoints
	GetAutopayHandler       gin.HandlerFunc
	EnableAutopayHandler    gin.HandlerFunc
	DisableAutopayHandler   gin.HandlerFunc
	SetPaymentMethodHandler gin.HandlerFunc

	// Insights endpoints
	InsightsDashboardHandler gin.HandlerFunc
	InsightsMetricsHandler   gin.HandlerFunc
	AssistantHandler         gin.HandlerFunc
}
