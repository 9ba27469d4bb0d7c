package contracts

import (
	"context"
	"sirsak-service/internal/app/models"
	"time"
)

// RoomAvailabilityChecker asks the reservation API whether a room is free for
// the half-open interval [start, end).
type RoomAvailabilityChecker interface {
	CheckAvailability(ctx context.Context, roomID string, start, end time.Time) (bool, error)
}

type RoomClient interface {
	RoomAvailabilityChecker
	FindRooms(ctx context.Context, params models.RoomSearchParams) (*models.Page[models.Room], error)
	FindAllRooms(ctx context.Context) ([]models.Room, error)
	FindRoomByID(ctx context.Context, roomID string) (*models.Room, error)
}

type LocationClient interface {
	FindAllLocations(ctx context.Context) ([]models.Location, error)
}

type ReservationClient interface {
	CreateReservation(ctx context.Context, payload *models.ReservationPayload) (*models.Reservation, error)
	FindAllReservations(ctx context.Context, params models.ReservationSearchParams) ([]models.Reservation, error)
	UpdateReservationStatus(ctx context.Context, reservationID, status string) (*models.Reservation, error)
}

type FeedbackClient interface {
	CreateFeedback(ctx context.Context, payload *models.FeedbackPayload) (*models.Feedback, error)
	FindMyFeedback(ctx context.Context) ([]models.Feedback, error)
	FindAllFeedback(ctx context.Context) ([]models.Feedback, error)
}
