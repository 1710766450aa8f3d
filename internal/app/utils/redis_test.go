package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResponseCache_Disabled(t *testing.T) {
	ctx := context.Background()

	cache, err := NewResponseCache(ctx, "", "", time.Minute)
	require.NoError(t, err)
	assert.Nil(t, cache)

	cache, err = NewResponseCache(ctx, "localhost:6379", "", 0)
	require.NoError(t, err)
	assert.Nil(t, cache)
}

func TestResponseCache_NilIsNoop(t *testing.T) {
	var cache *ResponseCache
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", []byte("v")))
	body, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, body)
	assert.NoError(t, cache.Close())
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "boatyard:response:GET:/api/boats/dinghy?x=1", CacheKey("GET", "/api/boats/dinghy?x=1"))
}
