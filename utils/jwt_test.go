package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndExtract(t *testing.T) {
	token, err := GenerateToken("shop-123", "owner@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	shopID, err := ExtractShopIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "shop-123", shopID)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("shop-123", "owner@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractShopIDFromToken(token)
	assert.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken("shop-123", "owner@example.com", time.Hour)
	require.NoError(t, err)

	_, err = ExtractShopIDFromToken(token + "x")
	assert.Error(t, err)
}

func TestHashTokenStableAndDistinct(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
	assert.Len(t, HashToken("abc"), 64)
}
