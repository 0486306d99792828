package insights

import (
	"time"

	"trimly/models"
)

// Capacity model constants. The theoretical maximum bookable slots per staff
// member is operatingHoursPerDay * slotsPerHour for each day in the period.
const (
	metricsPeriodDays    = 7
	operatingHoursPerDay = 10
	slotsPerHour         = 2
)

// AggregateOptions tunes the metrics computation per call site.
type AggregateOptions struct {
	// IncludeTips adds tip amounts to revenue sums.
	IncludeTips bool
	// StaffCount scales the capacity denominator. Values below 1 are treated as 1.
	StaffCount int
}

// ComputeMetrics reduces raw booking and customer rows into a MetricsSnapshot.
// It is a pure function of its inputs and now: no I/O, no mutation, never an
// error. Malformed rows contribute zero rather than being rejected, and every
// ratio is guarded so a zero denominator yields a zero ratio.
func ComputeMetrics(bookings []models.Booking, customers []models.Customer, opts AggregateOptions, now time.Time) models.MetricsSnapshot {
	currentStart := now.AddDate(0, 0, -metricsPeriodDays)
	previousStart := now.AddDate(0, 0, -2*metricsPeriodDays)

	var (
		currentRevenue  float64
		previousRevenue float64
		currentCount    int
	)
	uniqueCustomers := make(map[string]struct{})

	for _, b := range bookings {
		switch {
		case b.ScheduledAt.After(currentStart):
			currentCount++
			currentRevenue += b.Revenue(opts.IncludeTips)
			if b.CustomerID != "" {
				uniqueCustomers[b.CustomerID] = struct{}{}
			}
		case b.ScheduledAt.After(previousStart):
			previousRevenue += b.Revenue(opts.IncludeTips)
		}
	}

	weeklyGrowth := 0.0
	if previousRevenue != 0 {
		weeklyGrowth = (currentRevenue - previousRevenue) / previousRevenue
	}

	newCustomers := 0
	for _, c := range customers {
		if c.CreatedAt.After(currentStart) {
			newCustomers++
		}
	}
	newCustomerRatio := 0.0
	if len(uniqueCustomers) > 0 {
		newCustomerRatio = float64(newCustomers) / float64(len(uniqueCustomers))
	}

	staff := opts.StaffCount
	if staff < 1 {
		staff = 1
	}
	maxSlots := float64(metricsPeriodDays * operatingHoursPerDay * slotsPerHour * staff)
	capacityUtilization := 0.0
	if maxSlots > 0 {
		capacityUtilization = float64(currentCount) / maxSlots
	}

	return models.MetricsSnapshot{
		DailyRevenue:        currentRevenue / metricsPeriodDays,
		DailyBookings:       float64(currentCount) / metricsPeriodDays,
		WeeklyGrowth:        weeklyGrowth,
		NewCustomerRatio:    newCustomerRatio,
		CapacityUtilization: capacityUtilization,
		TotalBookings:       currentCount,
		UniqueCustomers:     len(uniqueCustomers),
		PeriodStart:         currentStart,
		PeriodEnd:           now,
	}
}
