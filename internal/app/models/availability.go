package models

import "time"

// AvailabilityMap holds the slots known to be unavailable for one room on one
// date. A slot is unavailable when the interval starting at it was reported
// taken or could not be checked.
type AvailabilityMap struct {
	RoomID       string
	Date         string
	Generation   uint64
	Unavailable  SlotSet
	FailedProbes int
	CheckedAt    time.Time
}

// Selection identifies the room and date a builder is currently probing.
type Selection struct {
	RoomID string
	Date   string
}
