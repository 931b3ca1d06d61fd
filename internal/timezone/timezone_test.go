package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocation_FallsBack(t *testing.T) {
	assert.Equal(t, "UTC", Location("UTC").String())
	assert.Contains(t, []string{DefaultTimezone, "UTC"}, Location("Mars/Olympus").String())
	assert.False(t, IsValid(""))
}

func TestClock_NowInLocation(t *testing.T) {
	fixed := time.Date(2026, 3, 30, 23, 30, 0, 0, time.UTC)
	loc := time.FixedZone("UTC+2", 2*60*60)
	c := &Clock{Loc: loc, NowFunc: func() time.Time { return fixed }}

	now := c.Now()

	assert.True(t, now.Equal(fixed))
	assert.Equal(t, loc, now.Location())
	assert.Equal(t, 31, now.Day())
}
