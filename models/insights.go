package models

import "time"

// MetricsSnapshot holds the derived scalar metrics for one shop over the
// trailing week. All ratios are division-by-zero guarded: a zero denominator
// yields a zero ratio.
type MetricsSnapshot struct {
	DailyRevenue        float64 `json:"dailyRevenue"`
	DailyBookings       float64 `json:"dailyBookings"`
	WeeklyGrowth        float64 `json:"weeklyGrowth"`        // signed ratio vs previous week
	NewCustomerRatio    float64 `json:"newCustomerRatio"`    // 0-1
	CapacityUtilization float64 `json:"capacityUtilization"` // 0-1
	TotalBookings       int     `json:"totalBookings"`
	UniqueCustomers     int     `json:"uniqueCustomers"`

	PeriodStart time.Time `json:"periodStart"`
	PeriodEnd   time.Time `json:"periodEnd"`
}

type AlertPriority string

const (
	PriorityCritical AlertPriority = "critical"
	PriorityHigh     AlertPriority = "high"
	PriorityMedium   AlertPriority = "medium"
	PriorityLow      AlertPriority = "low"
	PriorityInfo     AlertPriority = "info"
)

// PriorityRank maps a priority tier to its sort weight (higher sorts first).
func PriorityRank(p AlertPriority) int {
	switch p {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Alert is one prioritized action item produced by the rule evaluator.
// Alerts are regenerated on every request and carry no persistent identity.
type Alert struct {
	ID           string                 `json:"id"`
	Category     string                 `json:"category"`
	Title        string                 `json:"title"`
	Message      string                 `json:"message"`
	Priority     AlertPriority          `json:"priority"`
	UrgencyScore int                    `json:"urgencyScore"` // 0-100, ordering weight only
	Actionable   bool                   `json:"actionable"`
	Suggestions  []string               `json:"suggestions,omitempty"`
	Data         map[string]interface{} `json:"data,omitempty"`
	GeneratedAt  time.Time              `json:"generatedAt"`
}
