package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"trimly/models"
	"trimly/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type stubShopRepo struct {
	shop  *models.Shop
	err   error
	calls int
}

func (r *stubShopRepo) GetByID(id string) (*models.Shop, error) {
	r.calls++
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

func newAuthRouter(repo *stubShopRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuthShopMiddleware(repo), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"shopId": c.GetString(ShopIDKey)})
	})
	return r
}

func authedShop(t *testing.T, shopID string) (*models.Shop, string) {
	t.Helper()
	token, err := utils.GenerateToken(shopID, "owner@example.com", time.Hour)
	require.NoError(t, err)
	return &models.Shop{
		ID: shopID,
		Security: models.Security{
			TokenHash: utils.HashToken(token),
		},
	}, token
}

func doRequest(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// withAuthCache swaps in a miniredis-backed auth cache for the test.
func withAuthCache(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	utils.AuthCacheClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { utils.AuthCacheClient = nil })
	return mr
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	shop, token := authedShop(t, "shop-1")
	repo := &stubShopRepo{shop: shop}

	w := doRequest(newAuthRouter(repo), token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "shop-1")
	assert.Equal(t, 1, repo.calls)
}

func TestAuthMiddlewareRejectsBadCredentials(t *testing.T) {
	shop, token := authedShop(t, "shop-1")

	t.Run("missing header", func(t *testing.T) {
		w := doRequest(newAuthRouter(&stubShopRepo{shop: shop}), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("tampered token", func(t *testing.T) {
		w := doRequest(newAuthRouter(&stubShopRepo{shop: shop}), token+"x")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown shop", func(t *testing.T) {
		w := doRequest(newAuthRouter(&stubShopRepo{err: errors.New("not found")}), token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("revoked hash", func(t *testing.T) {
		revoked := &models.Shop{ID: "shop-1"}
		w := doRequest(newAuthRouter(&stubShopRepo{shop: revoked}), token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthMiddlewareServesRepeatRequestsFromCache(t *testing.T) {
	mr := withAuthCache(t)
	shop, token := authedShop(t, "shop-1")
	repo := &stubShopRepo{shop: shop}
	router := newAuthRouter(repo)

	// first request populates the cache via the repo lookup
	w := doRequest(router, token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, repo.calls)
	cached, err := mr.Get(utils.AuthCacheKeyPrefix + "shop-1")
	require.NoError(t, err)
	assert.Equal(t, utils.HashToken(token), cached)

	// subsequent requests settle on the cache even if Mongo is down
	repo.err = errors.New("mongo down")
	w = doRequest(router, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, repo.calls)
}

func TestAuthMiddlewareRejectsOnCachedHashMismatch(t *testing.T) {
	mr := withAuthCache(t)
	shop, token := authedShop(t, "shop-1")
	repo := &stubShopRepo{shop: shop}

	// a rotated token leaves a different hash in the cache
	require.NoError(t, mr.Set(utils.AuthCacheKeyPrefix+"shop-1", utils.HashToken("superseded")))

	w := doRequest(newAuthRouter(repo), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, repo.calls)
}

func TestAuthMiddlewareRevocationTakesEffectImmediately(t *testing.T) {
	mr := withAuthCache(t)
	shop, token := authedShop(t, "shop-1")
	repo := &stubShopRepo{shop: shop}
	router := newAuthRouter(repo)

	w := doRequest(router, token)
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, mr.Exists(utils.AuthCacheKeyPrefix+"shop-1"))

	// revocation clears both the stored hash and the cache entry
	utils.InvalidateShopAuth(context.Background(), "shop-1")
	repo.shop.Security.TokenHash = ""

	w = doRequest(router, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, mr.Exists(utils.AuthCacheKeyPrefix+"shop-1"))
}
