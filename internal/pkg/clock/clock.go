package clock

import (
	"time"
)

// Clock supplies the business civil calendar. All attendance decisions use
// one Clock so a single request never sees two different "today" values.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type businessClock struct {
	loc *time.Location
}

// New returns a Clock pinned to the given IANA timezone.
func New(timezone string) (Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}
	return &businessClock{loc: loc}, nil
}

func (c *businessClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *businessClock) Location() *time.Location {
	return c.loc
}

// CivilDate truncates t to its calendar date in t's own location, kept as a
// midnight time.Time so it maps onto a SQL DATE column.
func CivilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DateString formats t's calendar date as YYYY-MM-DD.
func DateString(t time.Time) string {
	return t.Format("2006-01-02")
}

// TimeOfDay formats t's wall clock as HH:MM:SS.
func TimeOfDay(t time.Time) string {
	return t.Format("15:04:05")
}

// Fixed returns a Clock that always reports the given instant. Test helper.
func Fixed(t time.Time) Clock {
	return fixedClock{t: t}
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time           { return c.t }
func (c fixedClock) Location() *time.Location { return c.t.Location() }
