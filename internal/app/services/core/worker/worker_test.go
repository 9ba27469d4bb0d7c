package worker

import (
	"context"
	"errors"
	"sirsak-service/internal/app/config"
	"sirsak-service/internal/app/models"
	"sirsak-service/internal/app/services/core/reservations"
	"sirsak-service/internal/app/services/core/timegrid"
	"sirsak-service/internal/pkg/dto/requests"
	"sirsak-service/internal/pkg/utils"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

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

type MockCatalogUsecase struct {
	mock.Mock
}

func (m *MockCatalogUsecase) SearchRooms(ctx context.Context, request *requests.RoomSearch) (*models.Page[models.Room], error) {
	args := m.Called(ctx, request)
	page, _ := args.Get(0).(*models.Page[models.Room])
	return page, args.Error(1)
}

func (m *MockCatalogUsecase) GetRoom(ctx context.Context, roomID string) (*models.Room, error) {
	args := m.Called(ctx, roomID)
	room, _ := args.Get(0).(*models.Room)
	return room, args.Error(1)
}

func (m *MockCatalogUsecase) ListLocations(ctx context.Context) ([]models.Location, error) {
	args := m.Called(ctx)
	locations, _ := args.Get(0).([]models.Location)
	return locations, args.Error(1)
}

func (m *MockCatalogUsecase) Refresh(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestRunJobLeaderLock(t *testing.T) {
	job := func(runs *int32) Job {
		return Job{
			Name:          "test-job",
			LeaderLockKey: "test:leader",
			LeaderLockTTL: time.Minute,
			Run: func(ctx context.Context) error {
				atomic.AddInt32(runs, 1)
				assert.NotEmpty(t, utils.GetRequestID(ctx), "each run gets a request id")
				return nil
			},
		}
	}

	t.Run("Runs and releases when the lock is won", func(t *testing.T) {
		var runs int32
		locker := new(MockLockerService)
		locker.On("TryLock", mock.Anything, "test:leader", time.Minute).Return(true, "token", nil)
		locker.On("Unlock", mock.Anything, "test:leader", "token").Return(nil).Once()

		NewWorker(zap.NewNop(), locker).runJob(context.Background(), job(&runs))

		assert.Equal(t, int32(1), runs)
		locker.AssertExpectations(t)
	})

	t.Run("Skips when another instance leads", func(t *testing.T) {
		var runs int32
		locker := new(MockLockerService)
		locker.On("TryLock", mock.Anything, "test:leader", time.Minute).Return(false, "", nil)

		NewWorker(zap.NewNop(), locker).runJob(context.Background(), job(&runs))

		assert.Equal(t, int32(0), runs)
	})

	t.Run("Skips when the lock cannot be checked", func(t *testing.T) {
		var runs int32
		locker := new(MockLockerService)
		locker.On("TryLock", mock.Anything, "test:leader", time.Minute).Return(false, "", errors.New("redis down"))

		NewWorker(zap.NewNop(), locker).runJob(context.Background(), job(&runs))

		assert.Equal(t, int32(0), runs)
	})

	t.Run("Runs unguarded without a locker", func(t *testing.T) {
		var runs int32

		NewWorker(zap.NewNop(), nil).runJob(context.Background(), job(&runs))

		assert.Equal(t, int32(1), runs)
	})
}

func TestWorkerFallsBackOnInvalidSpec(t *testing.T) {
	var runs int32
	worker := NewWorker(zap.NewNop(), nil, Job{
		Name:         "fallback",
		Spec:         "not a cron spec",
		FallbackSpec: "@every 1s",
		Run: func(ctx context.Context) error {
			atomic.AddInt32(&runs, 1)
			return nil
		},
	})

	worker.Start(context.Background())
	defer worker.Stop()

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&runs) > 0 }, 3*time.Second, 50*time.Millisecond)
}

func TestCatalogRefreshJob(t *testing.T) {
	t.Run("No service token means no refresh", func(t *testing.T) {
		catalog := new(MockCatalogUsecase)
		cfg := &config.InternalConfig{}

		require.NoError(t, CatalogRefreshJob(catalog, cfg).Run(context.Background()))
		catalog.AssertNotCalled(t, "Refresh", mock.Anything)
	})

	t.Run("Refreshes with the service session", func(t *testing.T) {
		catalog := new(MockCatalogUsecase)
		catalog.On("Refresh", mock.MatchedBy(func(ctx context.Context) bool {
			session, ok := models.SessionFromContext(ctx)
			return ok && session.Token == "svc-token"
		})).Return(nil).Once()
		cfg := &config.InternalConfig{SirsakAPI: config.AppSirsakAPI{ServiceToken: "svc-token"}}

		require.NoError(t, CatalogRefreshJob(catalog, cfg).Run(context.Background()))
		catalog.AssertExpectations(t)
	})
}

func TestBuilderSweepJob(t *testing.T) {
	registry := reservations.NewRegistry(func() *reservations.Builder {
		return reservations.NewBuilder(nil, nil, timegrid.Default(), zap.NewNop())
	}, zap.NewNop())
	registry.Get("7")
	cfg := &config.InternalConfig{Builder: config.AppBuilder{IdleTTL: -time.Minute}}

	require.NoError(t, BuilderSweepJob(registry, cfg).Run(context.Background()))
	assert.Equal(t, 0, registry.Len())
}
