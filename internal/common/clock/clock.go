package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/yatzy/internal/common/clock Clock
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct {
	// Location the calendar day is judged in; nil means local time
	Location *time.Location
}

// New returns a system clock reporting time in loc
func New(loc *time.Location) *DefaultClock {
	return &DefaultClock{Location: loc}
}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	if c.Location != nil {
		return time.Now().In(c.Location)
	}
	return time.Now()
}
