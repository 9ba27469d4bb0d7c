package reservations

import (
	"context"
	"fmt"
	"net/url"
	"sirsak-service/internal/app/contracts"
	"sirsak-service/internal/app/models"
	"sirsak-service/internal/app/services/sirsak_api"
	"sirsak-service/internal/pkg/constvars"
	"sirsak-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type reservationClient struct {
	client *sirsak_api.Client
	Log    *zap.Logger
}

func NewReservationClient(client *sirsak_api.Client, logger *zap.Logger) contracts.ReservationClient {
	return &reservationClient{
		client: client,
		Log:    logger,
	}
}

// CreateReservation sends exactly one create request. Callers must not retry
// on failure because the server may have committed the reservation.
func (c *reservationClient) CreateReservation(ctx context.Context, payload *models.ReservationPayload) (*models.Reservation, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("reservationClient.CreateReservation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRoomIDKey, payload.Room),
		zap.String(constvars.LoggingSlotStartKey, payload.Start),
		zap.String(constvars.LoggingSlotEndKey, payload.End),
	)

	reservation := new(models.Reservation)
	err := c.client.Do(ctx, constvars.MethodPost, constvars.ResourceReservations, nil, payload, reservation)
	if err != nil {
		return nil, err
	}

	c.Log.Info("reservationClient.CreateReservation succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingReservationIDKey, reservation.ID),
	)
	return reservation, nil
}

func (c *reservationClient) FindAllReservations(ctx context.Context, params models.ReservationSearchParams) ([]models.Reservation, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("reservationClient.FindAllReservations called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryKey, params),
	)

	query := url.Values{}
	if params.Status != "" {
		query.Set(constvars.QueryParamStatus, params.Status)
	}
	if params.Ordering != "" {
		query.Set(constvars.QueryParamOrdering, params.Ordering)
	}

	return sirsak_api.DrainAll[models.Reservation](ctx, c.client, constvars.ResourceReservations, query)
}

func (c *reservationClient) UpdateReservationStatus(ctx context.Context, reservationID, status string) (*models.Reservation, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("reservationClient.UpdateReservationStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReservationIDKey, reservationID),
		zap.String(constvars.QueryParamStatus, status),
	)

	reservation := new(models.Reservation)
	path := fmt.Sprintf(constvars.ResourceReservationFormat, url.PathEscape(reservationID))
	err := c.client.Do(ctx, constvars.MethodPatch, path, nil, &models.ReservationStatusUpdate{Status: status}, reservation)
	if err != nil {
		return nil, err
	}
	return reservation, nil
}
