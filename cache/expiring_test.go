package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func TestExpiring_GetBeforeExpiry(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	c := NewWithClock[string](5*time.Minute, clock)

	c.Set("k", "v")
	clock.advance(4 * time.Minute)

	value, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", value)
	assert.True(t, c.IsValid("k"))
}

func TestExpiring_GetAfterExpiry(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	c := NewWithClock[string](5*time.Minute, clock)

	c.Set("k", "v")
	clock.advance(5 * time.Minute)

	_, ok := c.Get("k")
	assert.False(t, ok)
	assert.False(t, c.IsValid("k"))
}

func TestExpiring_MissingKey(t *testing.T) {
	c := New[int](time.Minute)

	value, ok := c.Get("absent")
	assert.False(t, ok)
	assert.Zero(t, value)
}

func TestExpiring_SetRefreshesExpiry(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	c := NewWithClock[string](5*time.Minute, clock)

	c.Set("k", "old")
	clock.advance(4 * time.Minute)
	c.Set("k", "new")
	clock.advance(4 * time.Minute)

	value, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "new", value)
}

func TestExpiring_Clear(t *testing.T) {
	c := New[string](time.Minute)

	c.Set("a", "1")
	c.Set("b", "2")
	c.Clear()

	assert.False(t, c.IsValid("a"))
	assert.False(t, c.IsValid("b"))
}
