package models

// Feedback is a rating a user left for one of their reservations.
type Feedback struct {
	ID              int64  `json:"id"`
	Reservation     int64  `json:"reservation"`
	ReservationRoom string `json:"reservation_room,omitempty"`
	Rating          int    `json:"rating"`
	Text            string `json:"text"`
	CreatedAt       string `json:"created_at,omitempty"`
}

type FeedbackPayload struct {
	Reservation int64  `json:"reservation"`
	Rating      int    `json:"rating"`
	Text        string `json:"text"`
}
