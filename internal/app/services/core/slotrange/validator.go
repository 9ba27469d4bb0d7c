// Package slotrange derives which start and end times a user may pick from
// the grid and the set of unavailable slots. Every function is pure.
package slotrange

import (
	"errors"
	"fmt"
	"sirsak-service/internal/app/models"
	"sirsak-service/internal/app/services/core/timegrid"
)

var (
	ErrOffGrid          = errors.New("time is not on the reservation grid")
	ErrStartUnavailable = errors.New("start time is unavailable")
	ErrNoEndAfterStart  = errors.New("no end time exists after the start time")
	ErrEndNotAfterStart = errors.New("end time must be later than start time")
	ErrRangeUnavailable = errors.New("range contains an unavailable slot")
)

// IsStartSelectable reports whether start may begin a reservation: it is on
// the grid, not unavailable, and some grid slot lies after it.
func IsStartSelectable(grid *timegrid.Grid, unavailable models.SlotSet, start models.TimeSlot) bool {
	i, ok := grid.Index(start)
	if !ok || i >= grid.Len()-1 {
		return false
	}
	return !unavailable.Contains(start)
}

func SelectableStarts(grid *timegrid.Grid, unavailable models.SlotSet) []models.TimeSlot {
	starts := make([]models.TimeSlot, 0, grid.Len())
	for i := 0; i < grid.Len(); i++ {
		if IsStartSelectable(grid, unavailable, grid.At(i)) {
			starts = append(starts, grid.At(i))
		}
	}
	return starts
}

// IsEndSelectable reports whether end is strictly after start and no slot in
// [start, end) is unavailable.
func IsEndSelectable(grid *timegrid.Grid, unavailable models.SlotSet, start, end models.TimeSlot) bool {
	return ValidateRange(grid, unavailable, start, end) == nil
}

// SelectableEnds lists the valid end times for start. It is empty when start
// is empty or itself unavailable.
func SelectableEnds(grid *timegrid.Grid, unavailable models.SlotSet, start models.TimeSlot) []models.TimeSlot {
	ends := make([]models.TimeSlot, 0)
	startIndex, ok := grid.Index(start)
	if !ok {
		return ends
	}
	for i := startIndex + 1; i < grid.Len(); i++ {
		if unavailable.Contains(grid.At(i - 1)) {
			break
		}
		ends = append(ends, grid.At(i))
	}
	return ends
}

// ValidateRange returns nil when [start, end) may be reserved, otherwise an
// error wrapping the first rule it breaks.
func ValidateRange(grid *timegrid.Grid, unavailable models.SlotSet, start, end models.TimeSlot) error {
	startIndex, ok := grid.Index(start)
	if !ok {
		return fmt.Errorf("start %q: %w", start, ErrOffGrid)
	}
	endIndex, ok := grid.Index(end)
	if !ok {
		return fmt.Errorf("end %q: %w", end, ErrOffGrid)
	}
	if startIndex == grid.Len()-1 {
		return fmt.Errorf("start %s: %w", start, ErrNoEndAfterStart)
	}
	if unavailable.Contains(start) {
		return fmt.Errorf("start %s: %w", start, ErrStartUnavailable)
	}
	if endIndex <= startIndex {
		return fmt.Errorf("%s to %s: %w", start, end, ErrEndNotAfterStart)
	}
	for i := startIndex; i < endIndex; i++ {
		if unavailable.Contains(grid.At(i)) {
			return fmt.Errorf("%s to %s includes %s: %w", start, end, grid.At(i), ErrRangeUnavailable)
		}
	}
	return nil
}
