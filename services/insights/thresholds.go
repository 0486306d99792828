package insights

// ThresholdConfig holds the alert thresholds for one shop. Values are
// caller-overridable; zero-configuration tenants get DefaultThresholds.
type ThresholdConfig struct {
	MinDailyRevenue        float64 `json:"minDailyRevenue"`
	MinDailyBookings       float64 `json:"minDailyBookings"`
	MaxNewCustomerRatio    float64 `json:"maxNewCustomerRatio"`
	MaxCapacityUtilization float64 `json:"maxCapacityUtilization"`
	MinWeeklyGrowth        float64 `json:"minWeeklyGrowth"`
}

// DefaultThresholds returns the documented default thresholds.
func DefaultThresholds() ThresholdConfig {
	return ThresholdConfig{
		MinDailyRevenue:        200,
		MinDailyBookings:       8,
		MaxNewCustomerRatio:    0.6,
		MaxCapacityUtilization: 0.85,
		MinWeeklyGrowth:        0,
	}
}

// Merge applies per-shop overrides keyed by the JSON field name and returns
// the resulting config. Unknown keys are ignored.
func (t ThresholdConfig) Merge(overrides map[string]float64) ThresholdConfig {
	for key, value := range overrides {
		switch key {
		case "minDailyRevenue":
			t.MinDailyRevenue = value
		case "minDailyBookings":
			t.MinDailyBookings = value
		case "maxNewCustomerRatio":
			t.MaxNewCustomerRatio = value
		case "maxCapacityUtilization":
			t.MaxCapacityUtilization = value
		case "minWeeklyGrowth":
			t.MinWeeklyGrowth = value
		}
	}
	return t
}
