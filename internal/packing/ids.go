package packing

import "time"

// IDSource hands out item ids.
type IDSource interface {
	NextID() int64
}

// ClockIDs issues millisecond timestamps, bumped by one whenever the clock
// has not advanced since the last id. Ids are strictly increasing for the
// lifetime of the value. Not safe for concurrent use; the UI loop is its only caller.
type ClockIDs struct {
	now  func() time.Time
	last int64
}

// NewClockIDs uses now as the clock; nil means time.Now.
func NewClockIDs(now func() time.Time) *ClockIDs {
	if now == nil {
		now = time.Now
	}
	return &ClockIDs{now: now}
}

func (c *ClockIDs) NextID() int64 {
	id := c.now().UnixMilli()
	if id <= c.last {
		id = c.last + 1
	}
	c.last = id
	return id
}
