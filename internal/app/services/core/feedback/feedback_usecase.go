package feedback

import (
	"context"
	"errors"
	"sirsak-service/internal/app/contracts"
	"sirsak-service/internal/app/models"
	"sirsak-service/internal/pkg/constvars"
	"sirsak-service/internal/pkg/dto/requests"
	"sirsak-service/internal/pkg/exceptions"
	"sirsak-service/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var ErrNotAwaitingFeedback = errors.New("reservation is not awaiting feedback")

type feedbackUsecase struct {
	reservations contracts.ReservationClient
	feedback     contracts.FeedbackClient
	now          func() time.Time
	Log          *zap.Logger
}

func NewFeedbackUsecase(reservations contracts.ReservationClient, feedback contracts.FeedbackClient, logger *zap.Logger) contracts.FeedbackUsecase {
	return &feedbackUsecase{
		reservations: reservations,
		feedback:     feedback,
		now:          time.Now,
		Log:          logger,
	}
}

func (uc *feedbackUsecase) ListAwaitingFeedback(ctx context.Context) ([]models.Reservation, error) {
	var awaiting []models.Reservation
	err := utils.LogOperation(uc.Log, "feedbackUsecase.ListAwaitingFeedback", utils.GetRequestID(ctx), func() error {
		var (
			reservations []models.Reservation
			given        []models.Feedback
		)
		group, groupCtx := errgroup.WithContext(ctx)
		group.Go(func() error {
			var err error
			reservations, err = uc.reservations.FindAllReservations(groupCtx, models.ReservationSearchParams{})
			return err
		})
		group.Go(func() error {
			var err error
			given, err = uc.feedback.FindMyFeedback(groupCtx)
			return err
		})
		if err := group.Wait(); err != nil {
			return err
		}

		awaiting = AwaitingFeedback(reservations, given, uc.now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return awaiting, nil
}

func (uc *feedbackUsecase) ListMyFeedback(ctx context.Context) ([]models.Feedback, error) {
	return uc.feedback.FindMyFeedback(ctx)
}

// SubmitFeedback only posts feedback for a reservation that is currently
// awaiting it.
func (uc *feedbackUsecase) SubmitFeedback(ctx context.Context, request *requests.CreateFeedback) (*models.Feedback, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	awaiting, err := uc.ListAwaitingFeedback(ctx)
	if err != nil {
		return nil, err
	}
	if !containsReservation(awaiting, request.Reservation) {
		return nil, exceptions.ErrFeedbackNotAllowed(ErrNotAwaitingFeedback, request.Reservation)
	}

	feedback, err := uc.feedback.CreateFeedback(ctx, &models.FeedbackPayload{
		Reservation: request.Reservation,
		Rating:      request.Rating,
		Text:        strings.TrimSpace(request.Text),
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("feedbackUsecase.SubmitFeedback feedback created",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.Int64(constvars.LoggingReservationIDKey, request.Reservation),
		zap.Int("rating", request.Rating),
	)
	return feedback, nil
}

// AwaitingFeedback keeps the approved reservations that ended before now and
// have no feedback yet. Reservations with an unreadable end are left out.
func AwaitingFeedback(reservations []models.Reservation, given []models.Feedback, now time.Time) []models.Reservation {
	reviewed := make(map[int64]struct{}, len(given))
	for _, feedback := range given {
		reviewed[feedback.Reservation] = struct{}{}
	}

	awaiting := make([]models.Reservation, 0)
	for _, reservation := range reservations {
		if !strings.EqualFold(reservation.Status, constvars.ReservationStatusApproved) {
			continue
		}
		end, err := time.Parse(time.RFC3339, reservation.End)
		if err != nil || !end.Before(now) {
			continue
		}
		if _, ok := reviewed[reservation.ID]; ok {
			continue
		}
		awaiting = append(awaiting, reservation)
	}
	return awaiting
}

func containsReservation(reservations []models.Reservation, reservationID int64) bool {
	for _, reservation := range reservations {
		if reservation.ID == reservationID {
			return true
		}
	}
	return false
}
