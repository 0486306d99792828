package middleware

import (
	"net/http"
	"strings"

	shopRepo "trimly/database/repository/shop"
	"trimly/utils"

	"github.com/gin-gonic/gin"
)

// ShopIDKey is the gin context key holding the authenticated shop's ID.
const ShopIDKey = "shopID"

// JWTAuthShopMiddleware authenticates requests with a shop bearer token. The
// token must validate and its hash must match the one stored on the shop
// record, so revoked tokens stop working immediately.
func JWTAuthShopMiddleware(repo shopRepo.ShopRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  500,
				})
			}
		}()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		shopID, err := utils.ExtractShopIDFromToken(tokenString)
		if err != nil || shopID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		computedHash := utils.HashToken(tokenString)
		ctx := c.Request.Context()

		// Consult the auth cache first; a hit settles the request without
		// touching Mongo. A miss or cache error falls through to the lookup.
		if cachedHash, err := utils.GetCachedShopAuthHash(ctx, shopID); err == nil {
			if cachedHash != computedHash {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Token revoked or superseded",
					"code":  0,
				})
				return
			}
			c.Set(ShopIDKey, shopID)
			c.Next()
			return
		}

		shop, err := repo.GetByID(shopID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		if shop.Security.TokenHash == "" || shop.Security.TokenHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Token revoked or superseded",
				"code":  0,
			})
			return
		}

		utils.CacheShopAuthHash(ctx, shopID, computedHash)
		c.Set(ShopIDKey, shopID)
		c.Next()
	}
}
