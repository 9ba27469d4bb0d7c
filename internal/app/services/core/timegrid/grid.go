package timegrid

import (
	"fmt"
	"sirsak-service/internal/app/models"
	"sirsak-service/internal/pkg/constvars"
	"sync"
	"time"
)

// Interval is the half-open range [Start, End) between two adjacent slots.
type Interval struct {
	Start models.TimeSlot
	End   models.TimeSlot
}

// Grid is an immutable, ordered sequence of selectable slot times.
type Grid struct {
	slots []models.TimeSlot
	index map[models.TimeSlot]int
}

var (
	defaultGrid     *Grid
	onceDefaultGrid sync.Once
)

// Default returns the reservation grid: every half hour from 07:00 up to and
// including 19:00.
func Default() *Grid {
	onceDefaultGrid.Do(func() {
		grid, err := New(constvars.TimeGridFirstSlot, constvars.TimeGridLastSlot, constvars.TimeGridStepInMinutes*time.Minute)
		if err != nil {
			panic(err)
		}
		defaultGrid = grid
	})
	return defaultGrid
}

func New(first, last string, step time.Duration) (*Grid, error) {
	firstTime, err := time.Parse(constvars.SlotTimeLayout, first)
	if err != nil {
		return nil, fmt.Errorf("invalid first slot %q: %w", first, err)
	}
	lastTime, err := time.Parse(constvars.SlotTimeLayout, last)
	if err != nil {
		return nil, fmt.Errorf("invalid last slot %q: %w", last, err)
	}
	if step <= 0 {
		return nil, fmt.Errorf("step must be positive, got %s", step)
	}
	if lastTime.Before(firstTime) {
		return nil, fmt.Errorf("last slot %s is before first slot %s", last, first)
	}

	grid := &Grid{index: make(map[models.TimeSlot]int)}
	for t := firstTime; !t.After(lastTime); t = t.Add(step) {
		slot := models.TimeSlot(t.Format(constvars.SlotTimeLayout))
		grid.index[slot] = len(grid.slots)
		grid.slots = append(grid.slots, slot)
	}
	return grid, nil
}

// Slots returns a copy of the grid in ascending order.
func (g *Grid) Slots() []models.TimeSlot {
	slots := make([]models.TimeSlot, len(g.slots))
	copy(slots, g.slots)
	return slots
}

func (g *Grid) Len() int {
	return len(g.slots)
}

func (g *Grid) At(i int) models.TimeSlot {
	return g.slots[i]
}

func (g *Grid) Index(slot models.TimeSlot) (int, bool) {
	i, ok := g.index[slot]
	return i, ok
}

func (g *Grid) Contains(slot models.TimeSlot) bool {
	_, ok := g.index[slot]
	return ok
}

func (g *Grid) Last() models.TimeSlot {
	return g.slots[len(g.slots)-1]
}

// Intervals returns one interval per pair of adjacent slots, so a grid of n
// slots yields n-1 intervals.
func (g *Grid) Intervals() []Interval {
	if len(g.slots) < 2 {
		return nil
	}
	intervals := make([]Interval, 0, len(g.slots)-1)
	for i := 0; i+1 < len(g.slots); i++ {
		intervals = append(intervals, Interval{Start: g.slots[i], End: g.slots[i+1]})
	}
	return intervals
}
