package utils

import (
	"time"

	"trimly/config"
)

// IsProduction reports whether the server runs with the production profile.
func IsProduction() bool {
	return config.IsProduction()
}

// Auth token lifetime and cache keys.
const (
	AuthTokenTTLHours = 72

	AuthCacheKeyPrefix = "auth:shop:"
	AuthCacheTTL       = time.Hour

	DashboardCacheKeyPrefix = "insights:dashboard:"
)
