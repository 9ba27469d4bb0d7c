package reservations

import (
	"context"
	"sirsak-service/internal/app/contracts"
	"sirsak-service/internal/app/models"
	"sirsak-service/internal/pkg/constvars"
	"sirsak-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type reservationUsecase struct {
	client contracts.ReservationClient
	Log    *zap.Logger
}

func NewReservationUsecase(client contracts.ReservationClient, logger *zap.Logger) contracts.ReservationUsecase {
	return &reservationUsecase{
		client: client,
		Log:    logger,
	}
}

// ListMyReservations relies on the reservation API scoping the list to the
// forwarded token.
func (uc *reservationUsecase) ListMyReservations(ctx context.Context) ([]models.Reservation, error) {
	return uc.client.FindAllReservations(ctx, models.ReservationSearchParams{})
}

func (uc *reservationUsecase) ListPendingReservations(ctx context.Context) ([]models.Reservation, error) {
	return uc.client.FindAllReservations(ctx, models.ReservationSearchParams{
		Status:   constvars.ReservationStatusPending,
		Ordering: constvars.ReservationOrderingNewestFirst,
	})
}

func (uc *reservationUsecase) ApproveReservation(ctx context.Context, reservationID string) (*models.Reservation, error) {
	return uc.decide(ctx, reservationID, constvars.ReservationStatusApproved)
}

func (uc *reservationUsecase) DeclineReservation(ctx context.Context, reservationID string) (*models.Reservation, error) {
	return uc.decide(ctx, reservationID, constvars.ReservationStatusDeclined)
}

func (uc *reservationUsecase) decide(ctx context.Context, reservationID, status string) (*models.Reservation, error) {
	uc.Log.Info("reservationUsecase.decide called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingReservationIDKey, reservationID),
		zap.String("status", status),
	)
	return uc.client.UpdateReservationStatus(ctx, reservationID, status)
}
