package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheRoundTrip(t *testing.T) {
	c := New[int]()
	c.Set("a", 42, time.Minute)

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 42, got)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestCacheExpiry(t *testing.T) {
	c := New[string]()
	c.Set("a", "stale", -time.Second)

	_, ok := c.Get("a")
	assert.False(t, ok, "expired entries must not be served")
}

func TestCacheDelete(t *testing.T) {
	c := New[string]()
	c.Set("a", "x", time.Minute)
	c.Delete("a")

	_, ok := c.Get("a")
	assert.False(t, ok)
}
