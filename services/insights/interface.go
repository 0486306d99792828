package insights

import (
	"context"
	"time"

	bookingRepo "trimly/database/repository/booking"
	customerRepo "trimly/database/repository/customer"
	reviewRepo "trimly/database/repository/review"
	shopRepo "trimly/database/repository/shop"
	"trimly/models"

	"github.com/go-redis/redis/v8"
)

// DashboardReport bundles the metrics snapshot with the prioritized alerts
// derived from it.
type DashboardReport struct {
	Metrics     models.MetricsSnapshot `json:"metrics"`
	Alerts      []models.Alert         `json:"alerts"`
	GeneratedAt time.Time              `json:"generatedAt"`
}

// InsightsService computes business insights for a shop.
type InsightsService interface {
	// Dashboard returns the full metrics + alerts report for a shop.
	Dashboard(ctx context.Context, shopID string) (*DashboardReport, error)
	// Metrics returns only the metrics snapshot for a shop.
	Metrics(ctx context.Context, shopID string) (*models.MetricsSnapshot, error)
}

// DefaultInsightsService implements InsightsService over the Mongo
// repositories with a short-lived Redis cache in front of Dashboard.
type DefaultInsightsService struct {
	Bookings  bookingRepo.BookingRepository
	Customers customerRepo.CustomerRepository
	Reviews   reviewRepo.ReviewRepository
	Shops     shopRepo.ShopRepository

	Cache    *redis.Client
	CacheTTL time.Duration

	// Clock is overridable for tests; defaults to time.Now.
	Clock func() time.Time
}
