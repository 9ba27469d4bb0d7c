package models

type Reservation struct {
	ID                int64  `json:"id"`
	Room              int64  `json:"room"`
	RoomName          string `json:"room_name,omitempty"`
	LocationName      string `json:"location_name,omitempty"`
	Purpose           string `json:"purpose"`
	RequestedCapacity int    `json:"requested_capacity"`
	Status            string `json:"status"`
	Start             string `json:"start"`
	End               string `json:"end"`
	CreatedAt         string `json:"created_at,omitempty"`
}

// ReservationDraft is the user's in-progress reservation. Start and End are
// grid slots on Date in the service's local timezone.
type ReservationDraft struct {
	RoomID            string   `json:"room" validate:"required,numeric"`
	Purpose           string   `json:"purpose" validate:"required,max=255"`
	RequestedCapacity int      `json:"requested_capacity" validate:"gt=0"`
	Date              string   `json:"date" validate:"required,iso_date"`
	Start             TimeSlot `json:"start" validate:"required,grid_slot"`
	End               TimeSlot `json:"end" validate:"required,grid_slot"`
}

// ReservationPayload is the body of the create reservation call. Start and
// End are absolute instants in UTC.
type ReservationPayload struct {
	Room              int64  `json:"room"`
	Purpose           string `json:"purpose"`
	RequestedCapacity int    `json:"requested_capacity"`
	Status            string `json:"status"`
	Start             string `json:"start"`
	End               string `json:"end"`
}

type ReservationStatusUpdate struct {
	Status string `json:"status"`
}

type ReservationSearchParams struct {
	Status   string
	Ordering string
}
