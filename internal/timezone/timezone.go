package timezone

import "time"

const DefaultTimezone = "America/New_York"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location falls back to DefaultTimezone, then UTC, when tz is unusable.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Clock yields "now" in the salon's timezone. The booking grid and the
// "already started" checks read calendar dates from it.
type Clock struct {
	Loc     *time.Location
	NowFunc func() time.Time
}

func NewClock(tz string) *Clock {
	return &Clock{Loc: Location(tz)}
}

func (c *Clock) Now() time.Time {
	if c.NowFunc != nil {
		return c.NowFunc().In(c.Loc)
	}
	return time.Now().In(c.Loc)
}
