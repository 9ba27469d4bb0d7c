package models

import "sort"

// TimeSlot is a half-hour aligned wall-clock time formatted as HH:MM.
type TimeSlot string

func (s TimeSlot) String() string {
	return string(s)
}

// SlotSet is an unordered set of time slots. The zero value is an empty set
// that is safe to read but not to write.
type SlotSet map[TimeSlot]struct{}

func NewSlotSet(slots ...TimeSlot) SlotSet {
	set := make(SlotSet, len(slots))
	for _, slot := range slots {
		set[slot] = struct{}{}
	}
	return set
}

func (s SlotSet) Add(slot TimeSlot) {
	s[slot] = struct{}{}
}

func (s SlotSet) Contains(slot TimeSlot) bool {
	_, ok := s[slot]
	return ok
}

func (s SlotSet) Len() int {
	return len(s)
}

// Sorted returns the members in ascending order. HH:MM strings sort the same
// way as the times they name.
func (s SlotSet) Sorted() []TimeSlot {
	slots := make([]TimeSlot, 0, len(s))
	for slot := range s {
		slots = append(slots, slot)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })
	return slots
}
