package handlers

import (
	"trimly/middleware"

	"github.com/gin-gonic/gin"
)

// shopIDFromContext returns the authenticated shop ID set by the auth
// middleware, or "" when the request is unauthenticated.
func shopIDFromContext(c *gin.Context) string {
	val, exists := c.Get(middleware.ShopIDKey)
	if !exists {
		return ""
	}
	id, _ := val.(string)
	return id
}
