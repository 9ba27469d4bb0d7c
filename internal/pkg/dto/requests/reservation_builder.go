package requests

type SelectRoomAndDate struct {
	RoomID string `json:"room" validate:"required,numeric"`
	Date   string `json:"date" validate:"required,iso_date"`
}

type ChooseSlot struct {
	Start string `json:"start" validate:"required,grid_slot"`
	End   string `json:"end" validate:"omitempty,grid_slot"`
}

type ReservationDetails struct {
	Purpose           string `json:"purpose" validate:"required,max=255"`
	RequestedCapacity int    `json:"requested_capacity" validate:"gt=0"`
}
