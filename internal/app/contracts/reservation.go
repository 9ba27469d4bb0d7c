package contracts

import (
	"context"
	"sirsak-service/internal/app/models"
	"sirsak-service/internal/pkg/dto/requests"
	"sirsak-service/internal/pkg/dto/responses"
)

type AvailabilityProber interface {
	Probe(ctx context.Context, selection models.Selection) (*models.AvailabilityMap, error)
}

type SubmissionGate interface {
	Submit(ctx context.Context, draft models.ReservationDraft) (*models.Reservation, error)
}

// ReservationBuilderUsecase drives the reservation builder of the session
// found in ctx.
type ReservationBuilderUsecase interface {
	GetTimeGrid(ctx context.Context) *responses.TimeGrid
	GetBuilder(ctx context.Context) (*responses.ReservationBuilder, error)
	SelectRoomAndDate(ctx context.Context, request *requests.SelectRoomAndDate) (*responses.ReservationBuilder, error)
	ChooseSlot(ctx context.Context, request *requests.ChooseSlot) (*responses.ReservationBuilder, error)
	UpdateDetails(ctx context.Context, request *requests.ReservationDetails) (*responses.ReservationBuilder, error)
	Submit(ctx context.Context) (*responses.ReservationBuilder, error)
	Reset(ctx context.Context) (*responses.ReservationBuilder, error)
}

type ReservationUsecase interface {
	ListMyReservations(ctx context.Context) ([]models.Reservation, error)
	ListPendingReservations(ctx context.Context) ([]models.Reservation, error)
	ApproveReservation(ctx context.Context, reservationID string) (*models.Reservation, error)
	DeclineReservation(ctx context.Context, reservationID string) (*models.Reservation, error)
}

type CatalogUsecase interface {
	SearchRooms(ctx context.Context, request *requests.RoomSearch) (*models.Page[models.Room], error)
	GetRoom(ctx context.Context, roomID string) (*models.Room, error)
	ListLocations(ctx context.Context) ([]models.Location, error)
	Refresh(ctx context.Context) error
}

type FeedbackUsecase interface {
	ListAwaitingFeedback(ctx context.Context) ([]models.Reservation, error)
	ListMyFeedback(ctx context.Context) ([]models.Feedback, error)
	SubmitFeedback(ctx context.Context, request *requests.CreateFeedback) (*models.Feedback, error)
}

type AdminDashboardUsecase interface {
	GetAdminDashboard(ctx context.Context) (*responses.AdminDashboard, error)
}
