package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(ttl time.Duration) (*TTLCache, *time.Time) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := New(ttl)
	c.now = func() time.Time { return now }
	return c, &now
}

func TestGetSet(t *testing.T) {
	c, _ := newTestCache(time.Minute)

	_, ok := c.Get("k")
	assert.False(t, ok, "cache vacío")

	c.Set("k", 42)
	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestGet_ExpiraTrasTTL(t *testing.T) {
	c, now := newTestCache(time.Minute)
	c.Set("k", "valor")

	*now = now.Add(59 * time.Second)
	_, ok := c.Get("k")
	assert.True(t, ok, "antes del TTL sigue vivo")

	*now = now.Add(2 * time.Second)
	_, ok = c.Get("k")
	assert.False(t, ok, "pasado el TTL expira")
}

func TestSet_BarreEntradasExpiradas(t *testing.T) {
	c, now := newTestCache(time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)

	*now = now.Add(2 * time.Minute)
	c.Set("c", 3)

	assert.Len(t, c.items, 1, "las entradas expiradas se eliminan al escribir")
	_, ok := c.Get("c")
	assert.True(t, ok)
}

func TestInvalidate(t *testing.T) {
	c, _ := newTestCache(time.Minute)
	c.Set("k", 1)

	c.Invalidate("k")
	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestSet_SobrescribeYRenuevaTTL(t *testing.T) {
	c, now := newTestCache(time.Minute)
	c.Set("k", 1)

	*now = now.Add(50 * time.Second)
	c.Set("k", 2)

	*now = now.Add(50 * time.Second)
	v, ok := c.Get("k")
	require.True(t, ok, "el TTL se cuenta desde la última escritura")
	assert.Equal(t, 2, v)
}
