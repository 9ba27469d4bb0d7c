package reservations

import (
	"context"
	"sirsak-service/internal/app/models"
	"sirsak-service/internal/app/services/shared/ratelimiter"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockAvailabilityChecker struct {
	mock.Mock
}

func (m *MockAvailabilityChecker) CheckAvailability(ctx context.Context, roomID string, start, end time.Time) (bool, error) {
	args := m.Called(ctx, roomID, start, end)
	return args.Bool(0), args.Error(1)
}

type MockReservationClient struct {
	mock.Mock
}

func (m *MockReservationClient) CreateReservation(ctx context.Context, payload *models.ReservationPayload) (*models.Reservation, error) {
	args := m.Called(ctx, payload)
	reservation, _ := args.Get(0).(*models.Reservation)
	return reservation, args.Error(1)
}

func (m *MockReservationClient) FindAllReservations(ctx context.Context, params models.ReservationSearchParams) ([]models.Reservation, error) {
	args := m.Called(ctx, params)
	reservations, _ := args.Get(0).([]models.Reservation)
	return reservations, args.Error(1)
}

func (m *MockReservationClient) UpdateReservationStatus(ctx context.Context, reservationID, status string) (*models.Reservation, error) {
	args := m.Called(ctx, reservationID, status)
	reservation, _ := args.Get(0).(*models.Reservation)
	return reservation, args.Error(1)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	return m.Called(ctx, key, lockValue).Error(0)
}

func (m *MockLockerService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	return m.Called(ctx, key, lockValue, expiration).Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishReservationSubmitted(ctx context.Context, event *models.ReservationSubmittedEvent) error {
	return m.Called(ctx, event).Error(0)
}

type MockSubmissionLimiter struct {
	mock.Mock
}

func (m *MockSubmissionLimiter) ApplyResourceLimiter(ctx context.Context, in *ratelimiter.ApplyResourceLimiterInput) (*ratelimiter.ApplyResourceLimiterOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*ratelimiter.ApplyResourceLimiterOutput)
	return out, args.Error(1)
}

type proberFunc func(ctx context.Context, selection models.Selection) (*models.AvailabilityMap, error)

func (f proberFunc) Probe(ctx context.Context, selection models.Selection) (*models.AvailabilityMap, error) {
	return f(ctx, selection)
}

type gateFunc func(ctx context.Context, draft models.ReservationDraft) (*models.Reservation, error)

func (f gateFunc) Submit(ctx context.Context, draft models.ReservationDraft) (*models.Reservation, error) {
	return f(ctx, draft)
}

func sessionContext(userID string) context.Context {
	return models.ContextWithSession(context.Background(), &models.Session{UserID: userID, Role: "user", Token: "token-" + userID})
}
