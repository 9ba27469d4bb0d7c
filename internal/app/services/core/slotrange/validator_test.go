package slotrange

import (
	"math/rand"
	"sirsak-service/internal/app/models"
	"sirsak-service/internal/app/services/core/timegrid"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectableStarts(t *testing.T) {
	grid := timegrid.Default()

	t.Run("Everything but the last slot when nothing is taken", func(t *testing.T) {
		starts := SelectableStarts(grid, models.NewSlotSet())

		assert.Len(t, starts, 24)
		assert.Equal(t, models.TimeSlot("07:00"), starts[0])
		assert.Equal(t, models.TimeSlot("18:30"), starts[23])
		assert.NotContains(t, starts, models.TimeSlot("19:00"), "19:00 has no end after it")
	})

	t.Run("Unavailable slots are not selectable starts", func(t *testing.T) {
		starts := SelectableStarts(grid, models.NewSlotSet("09:00"))

		assert.NotContains(t, starts, models.TimeSlot("09:00"))
		assert.Contains(t, starts, models.TimeSlot("08:30"))
		assert.Contains(t, starts, models.TimeSlot("09:30"))
	})

	t.Run("No start when every interval failed", func(t *testing.T) {
		unavailable := models.NewSlotSet()
		for _, interval := range grid.Intervals() {
			unavailable.Add(interval.Start)
		}

		assert.Empty(t, SelectableStarts(grid, unavailable))
	})

	t.Run("Off grid times are never selectable", func(t *testing.T) {
		assert.False(t, IsStartSelectable(grid, nil, "06:30"))
		assert.False(t, IsStartSelectable(grid, nil, "08:15"))
	})
}

func TestSelectableEnds(t *testing.T) {
	grid := timegrid.Default()

	t.Run("Blocked by the first unavailable slot", func(t *testing.T) {
		ends := SelectableEnds(grid, models.NewSlotSet("09:00"), "08:30")

		assert.Equal(t, []models.TimeSlot{"09:00"}, ends, "an interval may end exactly where a taken slot begins")
	})

	t.Run("Runs to 19:00 when the afternoon is free", func(t *testing.T) {
		ends := SelectableEnds(grid, models.NewSlotSet("09:00"), "17:30")

		assert.Equal(t, []models.TimeSlot{"18:00", "18:30", "19:00"}, ends)
	})

	t.Run("Empty without a start", func(t *testing.T) {
		assert.Empty(t, SelectableEnds(grid, models.NewSlotSet(), ""))
	})

	t.Run("Empty when the start itself is taken", func(t *testing.T) {
		assert.Empty(t, SelectableEnds(grid, models.NewSlotSet("10:00"), "10:00"))
	})
}

func TestValidateRange(t *testing.T) {
	grid := timegrid.Default()
	unavailable := models.NewSlotSet("09:00")

	tests := []struct {
		name    string
		start   models.TimeSlot
		end     models.TimeSlot
		wantErr error
	}{
		{name: "Valid range before a taken slot", start: "08:00", end: "09:00"},
		{name: "Valid range after a taken slot", start: "09:30", end: "11:00"},
		{name: "Spans a taken slot", start: "08:30", end: "09:30", wantErr: ErrRangeUnavailable},
		{name: "Starts on a taken slot", start: "09:00", end: "09:30", wantErr: ErrStartUnavailable},
		{name: "End equal to start", start: "10:00", end: "10:00", wantErr: ErrEndNotAfterStart},
		{name: "End before start", start: "10:00", end: "08:00", wantErr: ErrEndNotAfterStart},
		{name: "Start off grid", start: "10:15", end: "11:00", wantErr: ErrOffGrid},
		{name: "End after the grid", start: "18:30", end: "19:30", wantErr: ErrOffGrid},
		{name: "Start at the last slot", start: "19:00", end: "19:00", wantErr: ErrNoEndAfterStart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRange(grid, unavailable, tt.start, tt.end)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// Checks the end rule against every start and end pair for random
// unavailable sets: an end is selectable exactly when it follows the start
// and no slot in [start, end) is taken.
func TestEndRuleHoldsForRandomAvailability(t *testing.T) {
	grid := timegrid.Default()
	slots := grid.Slots()
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 200; round++ {
		unavailable := models.NewSlotSet()
		for _, slot := range slots {
			if rng.Intn(5) == 0 {
				unavailable.Add(slot)
			}
		}

		for si, start := range slots {
			ends := SelectableEnds(grid, unavailable, start)
			for ei, end := range slots {
				expected := ei > si
				for k := si; expected && k < ei; k++ {
					if unavailable.Contains(slots[k]) {
						expected = false
					}
				}

				assert.Equal(t, expected, IsEndSelectable(grid, unavailable, start, end), "start %s end %s unavailable %v", start, end, unavailable.Sorted())
				assert.Equal(t, expected, containsSlot(ends, end), "SelectableEnds disagrees for start %s end %s", start, end)
			}
		}
	}
}

func containsSlot(slots []models.TimeSlot, target models.TimeSlot) bool {
	for _, slot := range slots {
		if slot == target {
			return true
		}
	}
	return false
}
