package responses

import "sirsak-service/internal/app/models"

type TimeGrid struct {
	Slots []models.TimeSlot `json:"slots"`
}

// ReservationBuilder is the view of a builder the dashboards render from.
type ReservationBuilder struct {
	State              string              `json:"state"`
	RoomID             string              `json:"room_id,omitempty"`
	Date               string              `json:"date,omitempty"`
	Generation         uint64              `json:"generation"`
	AvailabilityLoaded bool                `json:"availability_loaded"`
	Unavailable        []models.TimeSlot   `json:"unavailable"`
	SelectableStarts   []models.TimeSlot   `json:"selectable_starts"`
	SelectableEnds     []models.TimeSlot   `json:"selectable_ends"`
	Start              models.TimeSlot     `json:"start,omitempty"`
	End                models.TimeSlot     `json:"end,omitempty"`
	Purpose            string              `json:"purpose,omitempty"`
	RequestedCapacity  int                 `json:"requested_capacity,omitempty"`
	Message            string              `json:"message,omitempty"`
	Reservation        *models.Reservation `json:"reservation,omitempty"`
}
