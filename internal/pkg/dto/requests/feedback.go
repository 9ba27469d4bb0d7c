package requests

type CreateFeedback struct {
	Reservation int64  `json:"reservation" validate:"gt=0"`
	Rating      int    `json:"rating" validate:"gte=1,lte=5"`
	Text        string `json:"text" validate:"max=1000"`
}
