package models

import "time"

type ReservationSubmittedEvent struct {
	ID            string    `json:"id"`
	ReservationID int64     `json:"reservation_id"`
	RoomID        int64     `json:"room_id"`
	UserID        string    `json:"user_id,omitempty"`
	Start         string    `json:"start"`
	End           string    `json:"end"`
	Status        string    `json:"status"`
	SubmittedAt   time.Time `json:"submitted_at"`
}
