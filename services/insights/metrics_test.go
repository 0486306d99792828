package insights

import (
	"testing"
	"time"

	"trimly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeMetricsEmptyInput(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	m := ComputeMetrics(nil, nil, AggregateOptions{StaffCount: 2}, now)

	assert.Zero(t, m.DailyRevenue)
	assert.Zero(t, m.DailyBookings)
	assert.Zero(t, m.WeeklyGrowth)
	assert.Zero(t, m.NewCustomerRatio)
	assert.Zero(t, m.CapacityUtilization)
	assert.Zero(t, m.TotalBookings)
	assert.Zero(t, m.UniqueCustomers)
	assert.Equal(t, now.AddDate(0, 0, -7), m.PeriodStart)
	assert.Equal(t, now, m.PeriodEnd)
}

func TestComputeMetricsSingleBooking(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		{
			CustomerID:   "cust-1",
			ScheduledAt:  now.AddDate(0, 0, -1),
			ServicePrice: 300,
		},
	}

	m := ComputeMetrics(bookings, nil, AggregateOptions{StaffCount: 1}, now)

	assert.InDelta(t, 300.0/7, m.DailyRevenue, 1e-9)
	assert.InDelta(t, 1.0/7, m.DailyBookings, 1e-9)
	assert.Equal(t, 1, m.TotalBookings)
	assert.Equal(t, 1, m.UniqueCustomers)
	assert.InDelta(t, 1.0/140, m.CapacityUtilization, 1e-9)
}

func TestComputeMetricsDailyRevenueIsWeeklySumOverSeven(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	var bookings []models.Booking
	total := 0.0
	for i := 0; i < 5; i++ {
		price := float64(50 + i*25)
		total += price
		bookings = append(bookings, models.Booking{
			ScheduledAt:  now.Add(-time.Duration(i+1) * 24 * time.Hour),
			ServicePrice: price,
		})
	}

	m := ComputeMetrics(bookings, nil, AggregateOptions{}, now)

	assert.InDelta(t, total, m.DailyRevenue*7, 1e-9)
}

func TestComputeMetricsWeeklyGrowth(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		// current period
		{ScheduledAt: now.AddDate(0, 0, -2), ServicePrice: 150},
		// previous period
		{ScheduledAt: now.AddDate(0, 0, -10), ServicePrice: 100},
	}

	m := ComputeMetrics(bookings, nil, AggregateOptions{}, now)
	assert.InDelta(t, 0.5, m.WeeklyGrowth, 1e-9)
}

func TestComputeMetricsGrowthGuardedOnZeroPrevious(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		{ScheduledAt: now.AddDate(0, 0, -2), ServicePrice: 400},
	}

	m := ComputeMetrics(bookings, nil, AggregateOptions{}, now)
	assert.Zero(t, m.WeeklyGrowth)
}

func TestComputeMetricsTipsAndNegativePrices(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		{ScheduledAt: now.AddDate(0, 0, -1), ServicePrice: 100, TipAmount: 20},
		{ScheduledAt: now.AddDate(0, 0, -1), ServicePrice: -50},
	}

	withoutTips := ComputeMetrics(bookings, nil, AggregateOptions{}, now)
	withTips := ComputeMetrics(bookings, nil, AggregateOptions{IncludeTips: true}, now)

	// the negative price contributes zero either way
	assert.InDelta(t, 100.0/7, withoutTips.DailyRevenue, 1e-9)
	assert.InDelta(t, 120.0/7, withTips.DailyRevenue, 1e-9)
}

func TestComputeMetricsNewCustomerRatio(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		{CustomerID: "a", ScheduledAt: now.AddDate(0, 0, -1)},
		{CustomerID: "b", ScheduledAt: now.AddDate(0, 0, -2)},
		{CustomerID: "a", ScheduledAt: now.AddDate(0, 0, -3)},
		// anonymous walk-in does not count toward unique customers
		{ScheduledAt: now.AddDate(0, 0, -1)},
	}
	customers := []models.Customer{
		{ID: "a", CreatedAt: now.AddDate(0, 0, -1)},
		{ID: "old", CreatedAt: now.AddDate(0, 0, -90)},
	}

	m := ComputeMetrics(bookings, customers, AggregateOptions{}, now)

	require.Equal(t, 2, m.UniqueCustomers)
	assert.InDelta(t, 0.5, m.NewCustomerRatio, 1e-9)
}

func TestComputeMetricsRatioGuardedWithoutUniqueCustomers(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	customers := []models.Customer{
		{ID: "fresh", CreatedAt: now.AddDate(0, 0, -1)},
	}

	m := ComputeMetrics(nil, customers, AggregateOptions{}, now)
	assert.Zero(t, m.NewCustomerRatio)
}

func TestComputeMetricsCapacityScalesWithStaff(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	var bookings []models.Booking
	for i := 0; i < 140; i++ {
		bookings = append(bookings, models.Booking{
			ScheduledAt: now.Add(-time.Duration(i%6+1) * 24 * time.Hour),
		})
	}

	oneStaff := ComputeMetrics(bookings, nil, AggregateOptions{StaffCount: 1}, now)
	twoStaff := ComputeMetrics(bookings, nil, AggregateOptions{StaffCount: 2}, now)
	zeroStaff := ComputeMetrics(bookings, nil, AggregateOptions{}, now)

	assert.InDelta(t, 1.0, oneStaff.CapacityUtilization, 1e-9)
	assert.InDelta(t, 0.5, twoStaff.CapacityUtilization, 1e-9)
	// staff count below 1 is clamped to 1
	assert.InDelta(t, 1.0, zeroStaff.CapacityUtilization, 1e-9)
}
