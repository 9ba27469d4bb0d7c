package models

type Room struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name"`
	Location     interface{} `json:"location,omitempty"`
	LocationName string      `json:"location_name,omitempty"`
	Capacity     int         `json:"capacity"`
	Rating       float64     `json:"rating,omitempty"`
	Status       string      `json:"status,omitempty"`
	Description  string      `json:"description,omitempty"`
}

type Location struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type RoomSearchParams struct {
	Page     int
	Search   string
	Location string
	Capacity int
}
