package requests

type RoomSearch struct {
	Page     int    `validate:"gte=0"`
	Search   string `validate:"max=100"`
	Location string `validate:"omitempty,numeric"`
	Capacity int    `validate:"gte=0"`
}

type ReservationSearch struct {
	Status   string `validate:"omitempty,oneof=PENDING APPROVED DECLINED"`
	Ordering string
}
