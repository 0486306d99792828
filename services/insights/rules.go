package insights

import (
	"fmt"
	"sort"
	"time"

	"trimly/models"

	"github.com/google/uuid"
)

// RuleInput is the immutable snapshot every rule evaluates against. The
// caller fetches all collections up front; a failed fetch becomes an empty
// slice, which simply keeps the dependent rules from firing.
type RuleInput struct {
	Metrics    models.MetricsSnapshot
	Thresholds ThresholdConfig

	NoShows              []models.Booking // no-shows within the trailing 3 days
	PendingConfirmations []models.Booking // pending bookings older than 2 hours
	UnansweredReviews    []models.Review  // reviews without a response, trailing 7 days
	RecentlyCompleted    []models.Booking // completed within the trailing 24 hours
	TodayBookings        int
	ServiceTallies       map[string]int // bookings per service name, trailing 7 days

	Now time.Time
}

// A rule independently inspects the input and produces at most one alert.
// Rules never depend on each other's output; there is deliberately no
// cross-rule suppression or deduplication.
type rule struct {
	category string
	evaluate func(in RuleInput) *models.Alert
}

// rules run in declaration order. Combined with the stable sort in
// EvaluateRules this makes declaration order the deterministic tie-break for
// alerts with equal priority and urgency.
var rules = []rule{
	{
		category: "revenue",
		evaluate: func(in RuleInput) *models.Alert {
			if in.Metrics.DailyRevenue >= in.Thresholds.MinDailyRevenue {
				return nil
			}
			return &models.Alert{
				Title:        "Daily revenue below target",
				Message:      fmt.Sprintf("Average daily revenue is %.2f, below your %.2f target.", in.Metrics.DailyRevenue, in.Thresholds.MinDailyRevenue),
				Priority:     models.PriorityMedium,
				UrgencyScore: 65,
				Actionable:   true,
				Suggestions: []string{
					"Run a limited-time promotion",
					"Reach out to lapsed regulars",
					"Review service pricing",
				},
			}
		},
	},
	{
		category: "bookings",
		evaluate: func(in RuleInput) *models.Alert {
			if in.Metrics.DailyBookings >= in.Thresholds.MinDailyBookings {
				return nil
			}
			return &models.Alert{
				Title:        "Booking volume below target",
				Message:      fmt.Sprintf("Averaging %.1f bookings per day against a target of %.0f.", in.Metrics.DailyBookings, in.Thresholds.MinDailyBookings),
				Priority:     models.PriorityHigh,
				UrgencyScore: 85,
				Actionable:   true,
				Suggestions: []string{
					"Open more online booking slots",
					"Share your booking link on social channels",
				},
			}
		},
	},
	{
		category: "retention-risk",
		evaluate: func(in RuleInput) *models.Alert {
			if in.Metrics.NewCustomerRatio <= in.Thresholds.MaxNewCustomerRatio {
				return nil
			}
			return &models.Alert{
				Title:        "Mostly new faces this week",
				Message:      fmt.Sprintf("%.0f%% of this week's customers are new. Returning clients may be slipping away.", in.Metrics.NewCustomerRatio*100),
				Priority:     models.PriorityMedium,
				UrgencyScore: 40,
				Actionable:   true,
				Suggestions: []string{
					"Send a rebooking reminder to past clients",
					"Offer a loyalty discount on the next visit",
				},
			}
		},
	},
	{
		category: "expansion-opportunity",
		evaluate: func(in RuleInput) *models.Alert {
			if in.Metrics.CapacityUtilization <= in.Thresholds.MaxCapacityUtilization {
				return nil
			}
			return &models.Alert{
				Title:        "Chairs are nearly fully booked",
				Message:      fmt.Sprintf("Capacity utilization is at %.0f%%. Demand may support another barber or longer hours.", in.Metrics.CapacityUtilization*100),
				Priority:     models.PriorityLow,
				UrgencyScore: 20,
				Actionable:   true,
				Suggestions: []string{
					"Extend opening hours on busy days",
					"Consider adding a chair or barber",
				},
			}
		},
	},
	{
		category: "no-shows",
		evaluate: func(in RuleInput) *models.Alert {
			count := len(in.NoShows)
			if count == 0 {
				return nil
			}
			return &models.Alert{
				Title:        "Recent no-shows need follow-up",
				Message:      fmt.Sprintf("%d no-show(s) in the last 3 days.", count),
				Priority:     models.PriorityHigh,
				UrgencyScore: 90,
				Actionable:   true,
				Suggestions: []string{
					"Call the customer",
					"Send an SMS reminder",
					"Offer to reschedule",
				},
				Data: map[string]interface{}{"count": count},
			}
		},
	},
	{
		category: "pending-confirmations",
		evaluate: func(in RuleInput) *models.Alert {
			count := len(in.PendingConfirmations)
			if count == 0 {
				return nil
			}
			return &models.Alert{
				Title:        "Bookings awaiting confirmation",
				Message:      fmt.Sprintf("%d booking(s) have waited more than 2 hours for confirmation.", count),
				Priority:     models.PriorityHigh,
				UrgencyScore: 85,
				Actionable:   true,
				Suggestions: []string{
					"Confirm or decline the pending requests",
				},
				Data: map[string]interface{}{"count": count},
			}
		},
	},
	{
		category: "unanswered-reviews",
		evaluate: func(in RuleInput) *models.Alert {
			count := len(in.UnansweredReviews)
			if count == 0 {
				return nil
			}
			urgent := false
			for _, rv := range in.UnansweredReviews {
				if rv.Rating <= 3 || in.Now.Sub(rv.ReviewDate) <= 48*time.Hour {
					urgent = true
					break
				}
			}
			priority, urgency := models.PriorityMedium, 50
			if urgent {
				priority, urgency = models.PriorityHigh, 75
			}
			return &models.Alert{
				Title:        "Reviews waiting for a reply",
				Message:      fmt.Sprintf("%d review(s) from the last week have no response.", count),
				Priority:     priority,
				UrgencyScore: urgency,
				Actionable:   true,
				Suggestions: []string{
					"Reply to low-rating reviews first",
					"Thank customers for positive feedback",
				},
				Data: map[string]interface{}{"count": count},
			}
		},
	},
	{
		category: "content-opportunity",
		evaluate: func(in RuleInput) *models.Alert {
			if len(in.RecentlyCompleted) == 0 {
				return nil
			}
			fresh := false
			for _, b := range in.RecentlyCompleted {
				if in.Now.Sub(b.UpdatedAt) <= 6*time.Hour {
					fresh = true
					break
				}
			}
			priority, urgency := models.PriorityLow, 20
			if fresh {
				priority, urgency = models.PriorityMedium, 40
			}
			return &models.Alert{
				Title:        "Fresh cuts worth sharing",
				Message:      fmt.Sprintf("%d booking(s) completed in the last 24 hours. A good moment to post before/after shots.", len(in.RecentlyCompleted)),
				Priority:     priority,
				UrgencyScore: urgency,
				Actionable:   true,
				Suggestions: []string{
					"Post recent work to your campaign channels",
					"Ask satisfied customers for a review",
				},
			}
		},
	},
	{
		category: "scheduling-gap",
		evaluate: func(in RuleInput) *models.Alert {
			if float64(in.TodayBookings) >= 0.7*in.Metrics.DailyBookings {
				return nil
			}
			return &models.Alert{
				Title:        "Today looks quieter than usual",
				Message:      fmt.Sprintf("%d booking(s) today against a daily average of %.1f.", in.TodayBookings, in.Metrics.DailyBookings),
				Priority:     models.PriorityLow,
				UrgencyScore: 30,
				Actionable:   true,
				Suggestions: []string{
					"Announce same-day availability",
					"Offer a walk-in discount",
				},
			}
		},
	},
	{
		category: "supply-check",
		evaluate: func(in RuleInput) *models.Alert {
			name, count := busiestService(in.ServiceTallies)
			if count <= 10 {
				return nil
			}
			return &models.Alert{
				Title:        "High demand on one service",
				Message:      fmt.Sprintf("%q was booked %d times this week. Check product and supply levels.", name, count),
				Priority:     models.PriorityLow,
				UrgencyScore: 25,
				Actionable:   true,
				Suggestions: []string{
					"Restock supplies for the service",
				},
				Data: map[string]interface{}{"service": name, "count": count},
			}
		},
	},
}

// busiestService returns the service with the highest tally. Ties resolve to
// the lexicographically smallest name so the output stays deterministic.
func busiestService(tallies map[string]int) (string, int) {
	var (
		topName  string
		topCount int
	)
	for name, count := range tallies {
		if count > topCount || (count == topCount && (topName == "" || name < topName)) {
			topName, topCount = name, count
		}
	}
	return topName, topCount
}

// EvaluateRules runs every rule against the input and returns the alerts
// sorted by priority tier (descending), then urgency score (descending),
// then rule-declaration order. The evaluation is side-effect-free; two calls
// with identical input and Now produce the same ordered list.
func EvaluateRules(in RuleInput) []models.Alert {
	var alerts []models.Alert
	for _, r := range rules {
		a := r.evaluate(in)
		if a == nil {
			continue
		}
		a.ID = uuid.NewString()
		a.Category = r.category
		a.GeneratedAt = in.Now
		alerts = append(alerts, *a)
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		ri, rj := models.PriorityRank(alerts[i].Priority), models.PriorityRank(alerts[j].Priority)
		if ri != rj {
			return ri > rj
		}
		return alerts[i].UrgencyScore > alerts[j].UrgencyScore
	})
	return alerts
}
