package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salonq/internal/models"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type mapIndex map[string]map[string]string

func (m mapIndex) BookedStarts(_ context.Context, employeeID, date string) (map[string]string, error) {
	return m[employeeID+"|"+date], nil
}

type failingIndex struct{}

func (failingIndex) BookedStarts(context.Context, string, string) (map[string]string, error) {
	return nil, errors.New("boom")
}

func TestGenerateSlots_Grid(t *testing.T) {
	from := time.Date(2026, 3, 30, 15, 42, 0, 0, time.UTC)

	slots := GenerateSlots("emp1", from)

	require.Len(t, slots, 63)
	assert.Equal(t, "slot-emp1-2026-03-30-11:00", slots[0].ID)
	assert.Equal(t, "11:00", slots[0].StartTime)
	assert.Equal(t, "12:00", slots[0].EndTime)
	assert.Equal(t, "19:00", slots[8].StartTime)
	assert.Equal(t, "20:00", slots[8].EndTime)
	assert.Equal(t, "2026-03-31", slots[9].Date)
	assert.Equal(t, "2026-04-05", slots[62].Date)

	seen := map[string]bool{}
	for _, s := range slots {
		key := s.Date + " " + s.StartTime
		assert.False(t, seen[key], "duplicate slot %s", key)
		seen[key] = true
		assert.Equal(t, "emp1", s.EmployeeID)
		assert.False(t, s.IsAvailable)
	}
}

func TestGenerateSlots_DayThenTimeOrder(t *testing.T) {
	slots := GenerateSlots("emp1", time.Date(2026, 12, 29, 0, 0, 0, 0, time.UTC))

	for i := 1; i < len(slots); i++ {
		prev, cur := slots[i-1], slots[i]
		assert.True(t, prev.Date+prev.StartTime < cur.Date+cur.StartTime, "%s then %s", prev.ID, cur.ID)
	}
	assert.Equal(t, "2027-01-04", slots[len(slots)-1].Date)
}

func TestFindSlot(t *testing.T) {
	slots := GenerateSlots("emp1", time.Date(2026, 3, 30, 0, 0, 0, 0, time.UTC))

	s, ok := FindSlot(slots, "slot-emp1-2026-04-01-14:00")
	require.True(t, ok)
	assert.Equal(t, "15:00", s.EndTime)

	_, ok = FindSlot(slots, "slot-emp1-2026-04-01-21:00")
	assert.False(t, ok)
}

func TestRandomOracle_UsesThreshold(t *testing.T) {
	values := []float64{0.1, 0.69, 0.7, 0.95}
	i := 0
	o := &RandomOracle{P: 0.7, Float: func() float64 {
		v := values[i%len(values)]
		i++
		return v
	}}

	slots := make([]models.TimeSlot, 4)
	require.NoError(t, o.MarkAvailability(context.Background(), slots))

	assert.True(t, slots[0].IsAvailable)
	assert.True(t, slots[1].IsAvailable)
	assert.False(t, slots[2].IsAvailable)
	assert.False(t, slots[3].IsAvailable)
}

func TestBookedOracle_MarksBookedAndStartedSlots(t *testing.T) {
	now := time.Date(2026, 3, 30, 13, 30, 0, 0, time.UTC)
	index := mapIndex{
		"emp1|2026-03-31": {"15:00": "ap-1"},
	}
	o := NewBookedOracle(index, fixedClock{now})

	slots := GenerateSlots("emp1", now)
	require.NoError(t, o.MarkAvailability(context.Background(), slots))

	byID := func(id string) models.TimeSlot {
		s, ok := FindSlot(slots, id)
		require.True(t, ok, id)
		return s
	}

	assert.False(t, byID("slot-emp1-2026-03-30-11:00").IsAvailable)
	assert.False(t, byID("slot-emp1-2026-03-30-13:00").IsAvailable)
	assert.True(t, byID("slot-emp1-2026-03-30-14:00").IsAvailable)
	assert.False(t, byID("slot-emp1-2026-03-31-15:00").IsAvailable)
	assert.True(t, byID("slot-emp1-2026-03-31-16:00").IsAvailable)
}

func TestBookedOracle_IndexError(t *testing.T) {
	o := NewBookedOracle(failingIndex{}, fixedClock{time.Now()})

	err := o.MarkAvailability(context.Background(), GenerateSlots("emp1", time.Now()))
	require.Error(t, err)
}
