package insights

import (
	"testing"
	"time"

	"trimly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNow() time.Time {
	return time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
}

func categories(alerts []models.Alert) []string {
	out := make([]string, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, a.Category)
	}
	return out
}

func findAlert(t *testing.T, alerts []models.Alert, category string) models.Alert {
	t.Helper()
	for _, a := range alerts {
		if a.Category == category {
			return a
		}
	}
	t.Fatalf("no alert with category %q", category)
	return models.Alert{}
}

func TestEvaluateRulesZeroData(t *testing.T) {
	in := RuleInput{
		Metrics:    ComputeMetrics(nil, nil, AggregateOptions{}, testNow()),
		Thresholds: DefaultThresholds(),
		Now:        testNow(),
	}

	alerts := EvaluateRules(in)

	// only the two below-target rules fire on a fully idle shop
	require.Len(t, alerts, 2)
	assert.Equal(t, []string{"bookings", "revenue"}, categories(alerts))
}

func TestEvaluateRulesRevenueBoundary(t *testing.T) {
	in := RuleInput{
		Thresholds: DefaultThresholds(),
		Now:        testNow(),
	}

	in.Metrics = models.MetricsSnapshot{DailyRevenue: 200, DailyBookings: 10, NewCustomerRatio: 0.5}
	for _, a := range EvaluateRules(in) {
		assert.NotEqual(t, "revenue", a.Category, "revenue alert must not fire at exactly the threshold")
	}

	in.Metrics.DailyRevenue = 199.99
	alert := findAlert(t, EvaluateRules(in), "revenue")
	assert.Equal(t, models.PriorityMedium, alert.Priority)
	assert.Equal(t, 65, alert.UrgencyScore)
	assert.True(t, alert.Actionable)
	assert.NotEmpty(t, alert.Suggestions)
}

func TestEvaluateRulesNoShows(t *testing.T) {
	in := RuleInput{
		Metrics:    models.MetricsSnapshot{DailyRevenue: 500, DailyBookings: 10},
		Thresholds: DefaultThresholds(),
		NoShows:    make([]models.Booking, 4),
		Now:        testNow(),
	}

	alerts := EvaluateRules(in)
	alert := findAlert(t, alerts, "no-shows")
	assert.Equal(t, models.PriorityHigh, alert.Priority)
	assert.Equal(t, 90, alert.UrgencyScore)
	assert.Equal(t, 4, alert.Data["count"])
}

func TestEvaluateRulesRetentionAndExpansion(t *testing.T) {
	in := RuleInput{
		Metrics: models.MetricsSnapshot{
			DailyRevenue:        500,
			DailyBookings:       10,
			NewCustomerRatio:    0.75,
			CapacityUtilization: 0.9,
		},
		Thresholds:    DefaultThresholds(),
		TodayBookings: 12,
		Now:           testNow(),
	}

	alerts := EvaluateRules(in)
	require.Len(t, alerts, 2)

	retention := findAlert(t, alerts, "retention-risk")
	assert.Equal(t, models.PriorityMedium, retention.Priority)
	assert.Equal(t, 40, retention.UrgencyScore)

	expansion := findAlert(t, alerts, "expansion-opportunity")
	assert.Equal(t, models.PriorityLow, expansion.Priority)
	assert.Equal(t, 20, expansion.UrgencyScore)
}

func TestEvaluateRulesUnansweredReviewUrgency(t *testing.T) {
	base := RuleInput{
		Metrics:    models.MetricsSnapshot{DailyRevenue: 500, DailyBookings: 10},
		Thresholds: DefaultThresholds(),
		Now:        testNow(),
	}

	// low rating escalates regardless of age
	base.UnansweredReviews = []models.Review{
		{Rating: 2, ReviewDate: testNow().AddDate(0, 0, -5)},
	}
	alert := findAlert(t, EvaluateRules(base), "unanswered-reviews")
	assert.Equal(t, models.PriorityHigh, alert.Priority)
	assert.Equal(t, 75, alert.UrgencyScore)

	// a fresh five-star review also escalates
	base.UnansweredReviews = []models.Review{
		{Rating: 5, ReviewDate: testNow().Add(-12 * time.Hour)},
	}
	alert = findAlert(t, EvaluateRules(base), "unanswered-reviews")
	assert.Equal(t, models.PriorityHigh, alert.Priority)

	// old positive reviews stay medium
	base.UnansweredReviews = []models.Review{
		{Rating: 5, ReviewDate: testNow().AddDate(0, 0, -5)},
	}
	alert = findAlert(t, EvaluateRules(base), "unanswered-reviews")
	assert.Equal(t, models.PriorityMedium, alert.Priority)
	assert.Equal(t, 50, alert.UrgencyScore)
}

func TestEvaluateRulesContentOpportunity(t *testing.T) {
	base := RuleInput{
		Metrics:    models.MetricsSnapshot{DailyRevenue: 500, DailyBookings: 10},
		Thresholds: DefaultThresholds(),
		Now:        testNow(),
	}

	base.RecentlyCompleted = []models.Booking{
		{UpdatedAt: testNow().Add(-2 * time.Hour)},
	}
	alert := findAlert(t, EvaluateRules(base), "content-opportunity")
	assert.Equal(t, models.PriorityMedium, alert.Priority)
	assert.Equal(t, 40, alert.UrgencyScore)

	base.RecentlyCompleted = []models.Booking{
		{UpdatedAt: testNow().Add(-20 * time.Hour)},
	}
	alert = findAlert(t, EvaluateRules(base), "content-opportunity")
	assert.Equal(t, models.PriorityLow, alert.Priority)
	assert.Equal(t, 20, alert.UrgencyScore)
}

func TestEvaluateRulesSchedulingGap(t *testing.T) {
	in := RuleInput{
		Metrics:       models.MetricsSnapshot{DailyRevenue: 500, DailyBookings: 10},
		Thresholds:    DefaultThresholds(),
		TodayBookings: 6,
		Now:           testNow(),
	}
	alert := findAlert(t, EvaluateRules(in), "scheduling-gap")
	assert.Equal(t, models.PriorityLow, alert.Priority)
	assert.Equal(t, 30, alert.UrgencyScore)

	// exactly 70% of the daily average does not fire
	in.TodayBookings = 7
	for _, a := range EvaluateRules(in) {
		assert.NotEqual(t, "scheduling-gap", a.Category)
	}
}

func TestEvaluateRulesSupplyCheck(t *testing.T) {
	in := RuleInput{
		Metrics:        models.MetricsSnapshot{DailyRevenue: 500, DailyBookings: 10},
		Thresholds:     DefaultThresholds(),
		TodayBookings:  12,
		ServiceTallies: map[string]int{"Fade": 12, "Beard Trim": 4},
		Now:            testNow(),
	}
	alert := findAlert(t, EvaluateRules(in), "supply-check")
	assert.Equal(t, "Fade", alert.Data["service"])
	assert.Equal(t, 12, alert.Data["count"])

	// a tally of exactly 10 is not enough
	in.ServiceTallies = map[string]int{"Fade": 10}
	for _, a := range EvaluateRules(in) {
		assert.NotEqual(t, "supply-check", a.Category)
	}
}

func TestBusiestServiceTieBreaksLexicographically(t *testing.T) {
	name, count := busiestService(map[string]int{
		"Shave": 11,
		"Fade":  11,
		"Trim":  3,
	})
	assert.Equal(t, "Fade", name)
	assert.Equal(t, 11, count)
}

func TestEvaluateRulesOrdering(t *testing.T) {
	in := RuleInput{
		Metrics: models.MetricsSnapshot{
			DailyBookings:       3,
			NewCustomerRatio:    0.8,
			CapacityUtilization: 0.9,
		},
		Thresholds:           DefaultThresholds(),
		TodayBookings:        1,
		NoShows:              make([]models.Booking, 2),
		PendingConfirmations: make([]models.Booking, 3),
		UnansweredReviews:    []models.Review{{Rating: 1, ReviewDate: testNow().AddDate(0, 0, -4)}},
		RecentlyCompleted:    []models.Booking{{UpdatedAt: testNow().Add(-20 * time.Hour)}},
		ServiceTallies:       map[string]int{"Fade": 15},
		Now:                  testNow(),
	}

	alerts := EvaluateRules(in)

	// high priority first, within a tier higher urgency first, ties keep
	// declaration order (bookings before pending-confirmations at 85)
	assert.Equal(t, []string{
		"no-shows",
		"bookings",
		"pending-confirmations",
		"unanswered-reviews",
		"revenue",
		"retention-risk",
		"scheduling-gap",
		"supply-check",
		"expansion-opportunity",
		"content-opportunity",
	}, categories(alerts))

	for i := 1; i < len(alerts); i++ {
		prev, cur := alerts[i-1], alerts[i]
		rankPrev, rankCur := models.PriorityRank(prev.Priority), models.PriorityRank(cur.Priority)
		require.GreaterOrEqual(t, rankPrev, rankCur)
		if rankPrev == rankCur {
			require.GreaterOrEqual(t, prev.UrgencyScore, cur.UrgencyScore)
		}
	}
}

func TestEvaluateRulesDeterministic(t *testing.T) {
	in := RuleInput{
		Metrics:              models.MetricsSnapshot{DailyRevenue: 120, DailyBookings: 3},
		Thresholds:           DefaultThresholds(),
		NoShows:              make([]models.Booking, 1),
		PendingConfirmations: make([]models.Booking, 2),
		ServiceTallies:       map[string]int{"Fade": 11, "Shave": 11},
		Now:                  testNow(),
	}

	first := EvaluateRules(in)
	second := EvaluateRules(in)

	require.Equal(t, len(first), len(second))
	for i := range first {
		// IDs are freshly generated, everything else must match
		assert.Equal(t, first[i].Category, second[i].Category)
		assert.Equal(t, first[i].Title, second[i].Title)
		assert.Equal(t, first[i].Message, second[i].Message)
		assert.Equal(t, first[i].Priority, second[i].Priority)
		assert.Equal(t, first[i].UrgencyScore, second[i].UrgencyScore)
		assert.Equal(t, first[i].Data, second[i].Data)
	}
}
