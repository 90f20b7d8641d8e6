package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetRoundTrip(t *testing.T) {
	c := New(true)
	key := PlayerKey("300716", "it")

	etag := c.Set(key, []byte(`{"name":"James Penrice"}`), time.Minute)
	require.NotEmpty(t, etag)

	data, gotETag, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, etag, gotETag)
	assert.JSONEq(t, `{"name":"James Penrice"}`, string(data))
}

func TestExpiredEntryIsMiss(t *testing.T) {
	c := New(true)
	c.Set("k", []byte("v"), -time.Second)

	_, _, ok := c.Get("k")
	assert.False(t, ok)
}

func TestDisabledCacheNeverHits(t *testing.T) {
	c := New(false)
	etag := c.Set("k", []byte("v"), time.Minute)
	assert.NotEmpty(t, etag, "disabled cache still computes the etag")

	_, _, ok := c.Get("k")
	assert.False(t, ok)
}

func TestCheckETagMatch(t *testing.T) {
	etag := ComputeETag([]byte("payload"))

	assert.True(t, CheckETagMatch(etag, etag))
	assert.True(t, CheckETagMatch("*", etag))
	assert.False(t, CheckETagMatch("", etag))
	assert.False(t, CheckETagMatch(`W/"other"`, etag))
}

func TestPlayerKey(t *testing.T) {
	assert.Equal(t, "player:300716:it", PlayerKey("300716", "it"))
	assert.NotEqual(t, PlayerKey("300716", "it"), PlayerKey("300716", "en"))
}
