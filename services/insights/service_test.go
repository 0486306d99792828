package insights

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"trimly/models"
	"trimly/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type stubShopRepo struct {
	shop *models.Shop
	err  error
}

func (r *stubShopRepo) GetByID(id string) (*models.Shop, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.shop, nil
}
func (r *stubShopRepo) GetByEmail(email string) (*models.Shop, error) { return r.shop, r.err }
func (r *stubShopRepo) ListAll() ([]models.Shop, error)               { return nil, nil }
func (r *stubShopRepo) Create(shop *models.Shop) error                { return nil }
func (r *stubShopRepo) Update(shop *models.Shop) error                { return nil }
func (r *stubShopRepo) UpdateSetDocument(id string, doc bson.M) error { return nil }
func (r *stubShopRepo) Delete(id string) error                        { return nil }

type stubBookingRepo struct {
	bookings  []models.Booking
	noShows   []models.Booking
	pending   []models.Booking
	completed []models.Booking

	rangeErr     error
	ancillaryErr error
}

func (r *stubBookingRepo) GetByID(shopID, id string) (*models.Booking, error) { return nil, nil }
func (r *stubBookingRepo) Create(b *models.Booking) error                     { return nil }
func (r *stubBookingRepo) Update(b *models.Booking) error                     { return nil }
func (r *stubBookingRepo) Delete(shopID, id string) error                     { return nil }

func (r *stubBookingRepo) ListRange(shopID string, from, to time.Time) ([]models.Booking, error) {
	return r.bookings, r.rangeErr
}

func (r *stubBookingRepo) ListByStatusSince(shopID string, status models.BookingStatus, since time.Time) ([]models.Booking, error) {
	return r.noShows, r.ancillaryErr
}

func (r *stubBookingRepo) ListPendingOlderThan(shopID string, cutoff time.Time) ([]models.Booking, error) {
	return r.pending, r.ancillaryErr
}

func (r *stubBookingRepo) ListCompletedSince(shopID string, since time.Time) ([]models.Booking, error) {
	return r.completed, r.ancillaryErr
}

type stubCustomerRepo struct {
	customers []models.Customer
	err       error
}

func (r *stubCustomerRepo) GetByID(shopID, id string) (*models.Customer, error) { return nil, nil }
func (r *stubCustomerRepo) ListByShop(shopID string) ([]models.Customer, error) { return nil, nil }
func (r *stubCustomerRepo) ListCreatedSince(shopID string, since time.Time) ([]models.Customer, error) {
	return r.customers, r.err
}
func (r *stubCustomerRepo) Create(c *models.Customer) error { return nil }
func (r *stubCustomerRepo) Update(c *models.Customer) error { return nil }
func (r *stubCustomerRepo) Delete(shopID, id string) error  { return nil }
func (r *stubCustomerRepo) RecordVisit(shopID, id string, spent float64, at time.Time) error {
	return nil
}

type stubReviewRepo struct {
	unanswered []models.Review
	err        error
}

func (r *stubReviewRepo) GetByID(shopID, id string) (*models.Review, error) { return nil, nil }
func (r *stubReviewRepo) Create(review *models.Review) error                { return nil }
func (r *stubReviewRepo) ListSince(shopID string, since time.Time) ([]models.Review, error) {
	return nil, nil
}
func (r *stubReviewRepo) ListUnansweredSince(shopID string, since time.Time) ([]models.Review, error) {
	return r.unanswered, r.err
}
func (r *stubReviewRepo) SetResponse(shopID, id, response string, at time.Time) error { return nil }

func newServiceUnderTest(shops *stubShopRepo, bookings *stubBookingRepo, customers *stubCustomerRepo, reviews *stubReviewRepo) *DefaultInsightsService {
	return &DefaultInsightsService{
		Bookings:  bookings,
		Customers: customers,
		Reviews:   reviews,
		Shops:     shops,
		Clock:     testNow,
	}
}

func TestDashboardBuildsReport(t *testing.T) {
	now := testNow()
	shops := &stubShopRepo{shop: &models.Shop{ID: "shop-1", StaffCount: 2}}
	bookings := &stubBookingRepo{
		bookings: []models.Booking{
			{CustomerID: "a", ServiceName: "Fade", ScheduledAt: now.AddDate(0, 0, -1), ServicePrice: 300},
		},
		noShows: make([]models.Booking, 2),
	}

	svc := newServiceUnderTest(shops, bookings, &stubCustomerRepo{}, &stubReviewRepo{})

	report, err := svc.Dashboard(context.Background(), "shop-1")
	require.NoError(t, err)

	assert.Equal(t, now, report.GeneratedAt)
	assert.InDelta(t, 300.0/7, report.Metrics.DailyRevenue, 1e-9)
	assert.Equal(t, 1, report.Metrics.TotalBookings)

	// the no-show alert leads because it carries the highest urgency
	require.NotEmpty(t, report.Alerts)
	assert.Equal(t, "no-shows", report.Alerts[0].Category)
	for _, a := range report.Alerts {
		assert.NotEmpty(t, a.ID)
		assert.Equal(t, now, a.GeneratedAt)
	}
}

func TestDashboardAppliesThresholdOverrides(t *testing.T) {
	now := testNow()
	shops := &stubShopRepo{shop: &models.Shop{
		ID:         "shop-1",
		StaffCount: 1,
		ThresholdOverrides: map[string]float64{
			"minDailyRevenue":  10,
			"minDailyBookings": 0,
		},
	}}
	bookings := &stubBookingRepo{
		bookings: []models.Booking{
			{ServiceName: "Fade", ScheduledAt: now.AddDate(0, 0, -1), ServicePrice: 100},
		},
	}

	svc := newServiceUnderTest(shops, bookings, &stubCustomerRepo{}, &stubReviewRepo{})

	report, err := svc.Dashboard(context.Background(), "shop-1")
	require.NoError(t, err)

	for _, a := range report.Alerts {
		assert.NotEqual(t, "revenue", a.Category)
		assert.NotEqual(t, "bookings", a.Category)
	}
}

func TestDashboardFailsWhenShopMissing(t *testing.T) {
	shops := &stubShopRepo{err: errors.New("not found")}
	svc := newServiceUnderTest(shops, &stubBookingRepo{}, &stubCustomerRepo{}, &stubReviewRepo{})

	_, err := svc.Dashboard(context.Background(), "ghost")
	require.Error(t, err)
	var iErr *InsightsError
	assert.ErrorAs(t, err, &iErr)
}

func TestDashboardFailsWhenBookingsUnavailable(t *testing.T) {
	shops := &stubShopRepo{shop: &models.Shop{ID: "shop-1", StaffCount: 1}}
	bookings := &stubBookingRepo{rangeErr: errors.New("mongo down")}
	svc := newServiceUnderTest(shops, bookings, &stubCustomerRepo{}, &stubReviewRepo{})

	_, err := svc.Dashboard(context.Background(), "shop-1")
	require.Error(t, err)
}

func TestDashboardDegradesOnAncillaryFailures(t *testing.T) {
	now := testNow()
	shops := &stubShopRepo{shop: &models.Shop{ID: "shop-1", StaffCount: 1}}
	bookings := &stubBookingRepo{
		bookings: []models.Booking{
			{ServiceName: "Fade", ScheduledAt: now.AddDate(0, 0, -1), ServicePrice: 100},
		},
		ancillaryErr: errors.New("mongo flaky"),
	}
	customers := &stubCustomerRepo{err: errors.New("mongo flaky")}
	reviews := &stubReviewRepo{err: errors.New("mongo flaky")}

	svc := newServiceUnderTest(shops, bookings, customers, reviews)

	report, err := svc.Dashboard(context.Background(), "shop-1")
	require.NoError(t, err)

	// ancillary failures only suppress their dependent alerts
	for _, a := range report.Alerts {
		assert.NotContains(t, []string{"no-shows", "pending-confirmations", "unanswered-reviews", "content-opportunity"}, a.Category)
	}
}

func TestMetricsEndpointReturnsSnapshotOnly(t *testing.T) {
	now := testNow()
	shops := &stubShopRepo{shop: &models.Shop{ID: "shop-1", StaffCount: 1}}
	bookings := &stubBookingRepo{
		bookings: []models.Booking{
			{ServiceName: "Fade", ScheduledAt: now.AddDate(0, 0, -2), ServicePrice: 210},
		},
	}

	svc := newServiceUnderTest(shops, bookings, &stubCustomerRepo{}, &stubReviewRepo{})

	m, err := svc.Metrics(context.Background(), "shop-1")
	require.NoError(t, err)
	assert.InDelta(t, 210.0/7, m.DailyRevenue, 1e-9)
}

func newTestCache(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	return mr, redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestDashboardServesFromCache(t *testing.T) {
	mr, cache := newTestCache(t)

	cachedReport := DashboardReport{
		Metrics:     models.MetricsSnapshot{DailyRevenue: 123.45, TotalBookings: 9},
		GeneratedAt: testNow(),
	}
	payload, err := json.Marshal(cachedReport)
	require.NoError(t, err)
	require.NoError(t, mr.Set(utils.DashboardCacheKeyPrefix+"shop-1", string(payload)))

	// the repos are unreachable, so a hit must come from the cache
	shops := &stubShopRepo{err: errors.New("mongo down")}
	bookings := &stubBookingRepo{rangeErr: errors.New("mongo down")}
	svc := newServiceUnderTest(shops, bookings, &stubCustomerRepo{}, &stubReviewRepo{})
	svc.Cache = cache

	report, err := svc.Dashboard(context.Background(), "shop-1")
	require.NoError(t, err)
	assert.InDelta(t, 123.45, report.Metrics.DailyRevenue, 1e-9)
	assert.Equal(t, 9, report.Metrics.TotalBookings)
}

func TestDashboardRebuildsOnMalformedCache(t *testing.T) {
	now := testNow()
	mr, cache := newTestCache(t)
	require.NoError(t, mr.Set(utils.DashboardCacheKeyPrefix+"shop-1", "{not json"))

	shops := &stubShopRepo{shop: &models.Shop{ID: "shop-1", StaffCount: 1}}
	bookings := &stubBookingRepo{
		bookings: []models.Booking{
			{ServiceName: "Fade", ScheduledAt: now.AddDate(0, 0, -1), ServicePrice: 140},
		},
	}
	svc := newServiceUnderTest(shops, bookings, &stubCustomerRepo{}, &stubReviewRepo{})
	svc.Cache = cache

	report, err := svc.Dashboard(context.Background(), "shop-1")
	require.NoError(t, err)
	assert.InDelta(t, 140.0/7, report.Metrics.DailyRevenue, 1e-9)

	// the rebuilt report replaces the malformed entry, with a TTL
	stored, err := mr.Get(utils.DashboardCacheKeyPrefix + "shop-1")
	require.NoError(t, err)
	var refreshed DashboardReport
	require.NoError(t, json.Unmarshal([]byte(stored), &refreshed))
	assert.InDelta(t, 140.0/7, refreshed.Metrics.DailyRevenue, 1e-9)
	assert.Greater(t, mr.TTL(utils.DashboardCacheKeyPrefix+"shop-1"), time.Duration(0))
}

func TestCountTodayExcludesCancelled(t *testing.T) {
	now := testNow()
	bookings := []models.Booking{
		{Status: models.BookingConfirmed, ScheduledAt: now.Add(2 * time.Hour)},
		{Status: models.BookingPending, ScheduledAt: now.Add(3 * time.Hour)},
		{Status: models.BookingCancelled, ScheduledAt: now.Add(4 * time.Hour)},
		{Status: models.BookingConfirmed, ScheduledAt: now.AddDate(0, 0, -1)}, // yesterday
	}

	assert.Equal(t, 2, countToday(bookings, now))
}
