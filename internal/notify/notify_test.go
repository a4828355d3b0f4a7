package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNew_DefaultTTL(t *testing.T) {
	assert.Equal(t, DefaultTTL, New(0).TTL)
	assert.Equal(t, 5*time.Second, New(5*time.Second).TTL)
}

func TestPush_Stacks(t *testing.T) {
	c := New(0)
	a := c.Push("Host added", Success)
	b := c.Push("Host added", Success)
	e := c.Push("Error loading hosts", Error)

	assert.NotEqual(t, a.ID, b.ID, "duplicates are not merged")
	assert.Equal(t, 3, c.Len())

	active := c.Active()
	require.Len(t, active, 3)
	assert.Equal(t, []uint64{a.ID, b.ID, e.ID}, []uint64{active[0].ID, active[1].ID, active[2].ID})
	assert.Equal(t, Error, active[2].Kind)
}

func TestDismiss_OnlyOwnID(t *testing.T) {
	c := New(0)
	first := c.Push("one", Info)
	second := c.Push("two", Info)

	assert.True(t, c.Dismiss(first.ID))
	active := c.Active()
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)

	assert.False(t, c.Dismiss(first.ID), "second dismissal is a no-op")
	assert.False(t, c.Dismiss(999))
	assert.Equal(t, 1, c.Len())
}

func TestDismiss_DoesNotAliasActive(t *testing.T) {
	c := New(0)
	a := c.Push("a", Info)
	c.Push("b", Info)
	snapshot := c.Active()

	c.Dismiss(a.ID)
	assert.Equal(t, "a", snapshot[0].Message, "earlier snapshots are unaffected")
}

func TestPrune(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c := New(3 * time.Second)

	c.now = fixedClock(start)
	c.Push("old", Info)
	c.now = fixedClock(start.Add(2 * time.Second))
	c.Push("new", Info)

	assert.Zero(t, c.Prune(start.Add(2*time.Second)))
	assert.Equal(t, 1, c.Prune(start.Add(3*time.Second)))

	active := c.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "new", active[0].Message)

	assert.Equal(t, 1, c.Prune(start.Add(time.Minute)))
	assert.Zero(t, c.Len())
}

func TestNotification_Expired(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	n := Notification{At: at}
	assert.False(t, n.Expired(at.Add(2999*time.Millisecond), DefaultTTL))
	assert.True(t, n.Expired(at.Add(DefaultTTL), DefaultTTL))
}

func TestCenter_ZeroValue(t *testing.T) {
	var c Center
	n := c.Push("works", Success)
	assert.Equal(t, uint64(1), n.ID)
	assert.False(t, n.At.IsZero())
	assert.Zero(t, c.Prune(n.At))
}
