// Package notify holds the transient messages shown over the dashboard.
//
// A Center is a plain value owned by the Bubble Tea model, so it is only
// touched from Update and needs no locking. Callers schedule removal
// themselves: the dashboard arms one tea.Tick per pushed notification and
// dismisses that ID when it fires.
package notify

import (
	"time"
)

// DefaultTTL is how long a notification stays visible.
const DefaultTTL = 3 * time.Second

// Kind selects the styling of a notification.
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Info    Kind = "info"
)

// Notification is one visible message.
type Notification struct {
	ID      uint64
	Kind    Kind
	Message string
	At      time.Time
}

// Expired reports whether n has outlived ttl at now.
func (n Notification) Expired(now time.Time, ttl time.Duration) bool {
	return !now.Before(n.At.Add(ttl))
}

// Center is an ordered stack of active notifications. Messages are never
// deduplicated or capped.
type Center struct {
	TTL time.Duration

	now    func() time.Time
	nextID uint64
	active []Notification
}

// New creates a Center. A non-positive ttl uses DefaultTTL.
func New(ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Center{TTL: ttl, now: time.Now}
}

// Push appends a notification and returns it so the caller can schedule its
// dismissal.
func (c *Center) Push(message string, kind Kind) Notification {
	c.nextID++
	n := Notification{
		ID:      c.nextID,
		Kind:    kind,
		Message: message,
		At:      c.clock(),
	}
	c.active = append(c.active, n)
	return n
}

// Dismiss removes the notification with the given ID. It reports whether one
// was removed; dismissing an unknown or already removed ID is a no-op.
func (c *Center) Dismiss(id uint64) bool {
	for i, n := range c.active {
		if n.ID == id {
			c.active = append(c.active[:i:i], c.active[i+1:]...)
			return true
		}
	}
	return false
}

// Prune drops every notification expired at now and returns how many it
// removed.
func (c *Center) Prune(now time.Time) int {
	kept := c.active[:0]
	removed := 0
	for _, n := range c.active {
		if n.Expired(now, c.ttl()) {
			removed++
			continue
		}
		kept = append(kept, n)
	}
	c.active = kept
	return removed
}

// Active returns a copy of the visible notifications, oldest first.
func (c *Center) Active() []Notification {
	out := make([]Notification, len(c.active))
	copy(out, c.active)
	return out
}

// Len is the number of visible notifications.
func (c *Center) Len() int {
	return len(c.active)
}

func (c *Center) clock() time.Time {
	if c.now == nil {
		return time.Now()
	}
	return c.now()
}

func (c *Center) ttl() time.Duration {
	if c.TTL <= 0 {
		return DefaultTTL
	}
	return c.TTL
}
