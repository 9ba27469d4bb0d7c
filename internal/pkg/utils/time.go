package utils

import (
	"fmt"
	"sirsak-service/internal/pkg/constvars"
	"time"
)

func ParseDate(date string) (time.Time, error) {
	return time.Parse(constvars.DateLayout, date)
}

// SlotInstant combines a calendar date and an HH:MM wall-clock time in loc
// and returns the resulting instant in UTC.
func SlotInstant(date, slot string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	instant, err := time.ParseInLocation(constvars.DateLayout+" "+constvars.SlotTimeLayout, date+" "+slot, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q or time %q: %w", date, slot, err)
	}
	return instant.UTC(), nil
}

func FormatInstant(instant time.Time) string {
	return instant.UTC().Format(time.RFC3339)
}
