// Package dashboard summarizes the whole reservation API for administrators.
package dashboard

import (
	"context"
	"sirsak-service/internal/app/contracts"
	"sirsak-service/internal/app/models"
	"sirsak-service/internal/pkg/constvars"
	"sirsak-service/internal/pkg/dto/responses"
	"sirsak-service/internal/pkg/utils"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type dashboardUsecase struct {
	rooms        contracts.RoomClient
	reservations contracts.ReservationClient
	feedback     contracts.FeedbackClient
	now          func() time.Time
	Log          *zap.Logger
}

func NewAdminDashboardUsecase(rooms contracts.RoomClient, reservations contracts.ReservationClient, feedback contracts.FeedbackClient, logger *zap.Logger) contracts.AdminDashboardUsecase {
	return &dashboardUsecase{
		rooms:        rooms,
		reservations: reservations,
		feedback:     feedback,
		now:          time.Now,
		Log:          logger,
	}
}

// GetAdminDashboard drains rooms, reservations and feedback concurrently.
// Any failed drain fails the whole dashboard.
func (uc *dashboardUsecase) GetAdminDashboard(ctx context.Context) (*responses.AdminDashboard, error) {
	var result *responses.AdminDashboard
	err := utils.LogOperation(uc.Log, "dashboardUsecase.GetAdminDashboard", utils.GetRequestID(ctx), func() error {
		var (
			rooms        []models.Room
			reservations []models.Reservation
			feedback     []models.Feedback
		)
		group, groupCtx := errgroup.WithContext(ctx)
		group.Go(func() error {
			var err error
			rooms, err = uc.rooms.FindAllRooms(groupCtx)
			return err
		})
		group.Go(func() error {
			var err error
			reservations, err = uc.reservations.FindAllReservations(groupCtx, models.ReservationSearchParams{})
			return err
		})
		group.Go(func() error {
			var err error
			feedback, err = uc.feedback.FindAllFeedback(groupCtx)
			return err
		})
		if err := group.Wait(); err != nil {
			return err
		}

		result = Summarize(rooms, reservations, feedback, uc.now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Summarize counts rooms and reservations and picks the newest reservations
// and feedback by created_at. A reservation is active when it is approved and
// now falls inside [start, end).
func Summarize(rooms []models.Room, reservations []models.Reservation, feedback []models.Feedback, now time.Time) *responses.AdminDashboard {
	summary := &responses.AdminDashboard{
		TotalRooms:        len(rooms),
		TotalReservations: len(reservations),
	}
	for _, reservation := range reservations {
		switch {
		case strings.EqualFold(reservation.Status, constvars.ReservationStatusPending):
			summary.PendingApprovals++
		case strings.EqualFold(reservation.Status, constvars.ReservationStatusApproved) && isOngoing(reservation, now):
			summary.ActiveReservations++
		}
	}

	summary.RecentReservations = latest(reservations, func(r models.Reservation) string { return r.CreatedAt }, constvars.DashboardRecentReservationsLimit)
	summary.RecentFeedback = latest(feedback, func(f models.Feedback) string { return f.CreatedAt }, constvars.DashboardRecentFeedbackLimit)
	return summary
}

func isOngoing(reservation models.Reservation, now time.Time) bool {
	start, err := time.Parse(time.RFC3339, reservation.Start)
	if err != nil {
		return false
	}
	end, err := time.Parse(time.RFC3339, reservation.End)
	if err != nil {
		return false
	}
	return !now.Before(start) && now.Before(end)
}

// latest returns up to limit items, newest first. Items whose timestamp
// cannot be read sort after all others and keep their relative order.
func latest[T any](items []T, createdAt func(T) string, limit int) []T {
	type stamped struct {
		item T
		at   time.Time
		ok   bool
	}
	sorted := make([]stamped, 0, len(items))
	for _, item := range items {
		at, err := time.Parse(time.RFC3339, createdAt(item))
		sorted = append(sorted, stamped{item: item, at: at, ok: err == nil})
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].ok != sorted[j].ok {
			return sorted[i].ok
		}
		return sorted[i].at.After(sorted[j].at)
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	result := make([]T, 0, len(sorted))
	for _, entry := range sorted {
		result = append(result, entry.item)
	}
	return result
}
