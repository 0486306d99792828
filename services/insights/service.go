package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"trimly/models"
	"trimly/utils"

	"go.uber.org/zap"
)

const (
	noShowWindow        = 3 * 24 * time.Hour
	pendingGrace        = 2 * time.Hour
	reviewWindow        = 7 * 24 * time.Hour
	completedWindow     = 24 * time.Hour
	newCustomerLookback = 30 // days
)

func (s *DefaultInsightsService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// Dashboard returns the full metrics + alerts report for a shop. Results are
// cached briefly so dashboard polling does not hammer the database.
func (s *DefaultInsightsService) Dashboard(ctx context.Context, shopID string) (*DashboardReport, error) {
	logger := utils.GetLogger()

	if s.Cache != nil {
		key := utils.DashboardCacheKeyPrefix + shopID
		if cached, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var report DashboardReport
			if err := json.Unmarshal([]byte(cached), &report); err == nil {
				return &report, nil
			}
			logger.Warn("discarding malformed cached dashboard", zap.String("shopID", shopID))
		}
	}

	report, err := s.buildReport(shopID)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		key := utils.DashboardCacheKeyPrefix + shopID
		if payload, err := json.Marshal(report); err == nil {
			ttl := s.CacheTTL
			if ttl <= 0 {
				ttl = 2 * time.Minute
			}
			if err := s.Cache.Set(ctx, key, payload, ttl).Err(); err != nil {
				logger.Warn("failed to cache dashboard report", zap.String("shopID", shopID), zap.Error(err))
			}
		}
	}
	return report, nil
}

// Metrics returns only the metrics snapshot for a shop.
func (s *DefaultInsightsService) Metrics(ctx context.Context, shopID string) (*models.MetricsSnapshot, error) {
	report, err := s.Dashboard(ctx, shopID)
	if err != nil {
		return nil, err
	}
	return &report.Metrics, nil
}

// buildReport fetches the raw collections and runs the aggregator and the
// rule evaluator over them. Ancillary fetch failures degrade to empty
// collections so the dependent rules simply do not fire.
func (s *DefaultInsightsService) buildReport(shopID string) (*DashboardReport, error) {
	logger := utils.GetLogger()
	now := s.now()

	shop, err := s.Shops.GetByID(shopID)
	if err != nil {
		return nil, NewInsightsError(fmt.Sprintf("failed to load shop %s: %v", shopID, err))
	}

	// The booking window spans two trailing weeks for the growth comparison
	// and runs through end of day so today's remaining appointments count.
	dayEnd := endOfDay(now)
	bookings, err := s.Bookings.ListRange(shopID, now.AddDate(0, 0, -2*metricsPeriodDays), dayEnd)
	if err != nil {
		return nil, NewInsightsError(fmt.Sprintf("failed to load bookings for shop %s: %v", shopID, err))
	}

	customers, err := s.Customers.ListCreatedSince(shopID, now.AddDate(0, 0, -newCustomerLookback))
	if err != nil {
		logger.Warn("customer fetch failed, continuing without", zap.String("shopID", shopID), zap.Error(err))
		customers = nil
	}

	noShows, err := s.Bookings.ListByStatusSince(shopID, models.BookingNoShow, now.Add(-noShowWindow))
	if err != nil {
		logger.Warn("no-show fetch failed, continuing without", zap.String("shopID", shopID), zap.Error(err))
		noShows = nil
	}

	pending, err := s.Bookings.ListPendingOlderThan(shopID, now.Add(-pendingGrace))
	if err != nil {
		logger.Warn("pending fetch failed, continuing without", zap.String("shopID", shopID), zap.Error(err))
		pending = nil
	}

	unanswered, err := s.Reviews.ListUnansweredSince(shopID, now.Add(-reviewWindow))
	if err != nil {
		logger.Warn("review fetch failed, continuing without", zap.String("shopID", shopID), zap.Error(err))
		unanswered = nil
	}

	completed, err := s.Bookings.ListCompletedSince(shopID, now.Add(-completedWindow))
	if err != nil {
		logger.Warn("completed fetch failed, continuing without", zap.String("shopID", shopID), zap.Error(err))
		completed = nil
	}

	metrics := ComputeMetrics(bookings, customers, AggregateOptions{
		IncludeTips: true,
		StaffCount:  shop.StaffCount,
	}, now)

	thresholds := DefaultThresholds().Merge(shop.ThresholdOverrides)

	alerts := EvaluateRules(RuleInput{
		Metrics:              metrics,
		Thresholds:           thresholds,
		NoShows:              noShows,
		PendingConfirmations: pending,
		UnansweredReviews:    unanswered,
		RecentlyCompleted:    completed,
		TodayBookings:        countToday(bookings, now),
		ServiceTallies:       tallyServices(bookings, now),
		Now:                  now,
	})

	return &DashboardReport{
		Metrics:     metrics,
		Alerts:      alerts,
		GeneratedAt: now,
	}, nil
}

// countToday counts bookings scheduled on now's calendar day. Cancelled
// bookings are excluded so a day of cancellations still reads as quiet.
func countToday(bookings []models.Booking, now time.Time) int {
	dayStart := startOfDay(now)
	dayEnd := dayStart.AddDate(0, 0, 1)
	count := 0
	for _, b := range bookings {
		if b.Status == models.BookingCancelled {
			continue
		}
		if !b.ScheduledAt.Before(dayStart) && b.ScheduledAt.Before(dayEnd) {
			count++
		}
	}
	return count
}

// tallyServices counts current-period bookings per service name.
func tallyServices(bookings []models.Booking, now time.Time) map[string]int {
	currentStart := now.AddDate(0, 0, -metricsPeriodDays)
	tallies := make(map[string]int)
	for _, b := range bookings {
		if b.ScheduledAt.After(currentStart) && b.ServiceName != "" {
			tallies[b.ServiceName]++
		}
	}
	return tallies
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1)
}
