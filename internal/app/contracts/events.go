package contracts

import (
	"context"
	"sirsak-service/internal/app/models"
)

type EventPublisher interface {
	PublishReservationSubmitted(ctx context.Context, event *models.ReservationSubmittedEvent) error
}
