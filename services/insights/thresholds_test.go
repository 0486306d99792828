package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultThresholds(t *testing.T) {
	d := DefaultThresholds()
	assert.Equal(t, 200.0, d.MinDailyRevenue)
	assert.Equal(t, 8.0, d.MinDailyBookings)
	assert.Equal(t, 0.6, d.MaxNewCustomerRatio)
	assert.Equal(t, 0.85, d.MaxCapacityUtilization)
	assert.Equal(t, 0.0, d.MinWeeklyGrowth)
}

func TestThresholdMerge(t *testing.T) {
	merged := DefaultThresholds().Merge(map[string]float64{
		"minDailyRevenue":  350,
		"minDailyBookings": 12,
		"notAKnownKey":     99,
	})

	assert.Equal(t, 350.0, merged.MinDailyRevenue)
	assert.Equal(t, 12.0, merged.MinDailyBookings)
	// untouched fields keep their defaults
	assert.Equal(t, 0.6, merged.MaxNewCustomerRatio)
	assert.Equal(t, 0.85, merged.MaxCapacityUtilization)
}

func TestThresholdMergeNilOverrides(t *testing.T) {
	assert.Equal(t, DefaultThresholds(), DefaultThresholds().Merge(nil))
}
