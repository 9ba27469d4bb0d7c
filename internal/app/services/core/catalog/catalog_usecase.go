package catalog

import (
	"context"
	"sirsak-service/internal/app/contracts"
	"sirsak-service/internal/app/models"
	"sirsak-service/internal/pkg/constvars"
	"sirsak-service/internal/pkg/dto/requests"
	"sirsak-service/internal/pkg/utils"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	LocationsCacheKey = "catalog:locations"
	RoomsCacheKey     = "catalog:rooms"
)

type catalogUsecase struct {
	rooms     contracts.RoomClient
	locations contracts.LocationClient
	cache     contracts.RedisRepository
	cacheTTL  time.Duration
	Log       *zap.Logger
}

// NewCatalogUsecase serves rooms and locations. cache may be nil, in which
// case every read goes to the reservation API.
func NewCatalogUsecase(rooms contracts.RoomClient, locations contracts.LocationClient, cache contracts.RedisRepository, cacheTTL time.Duration, logger *zap.Logger) contracts.CatalogUsecase {
	return &catalogUsecase{
		rooms:     rooms,
		locations: locations,
		cache:     cache,
		cacheTTL:  cacheTTL,
		Log:       logger,
	}
}

func (uc *catalogUsecase) SearchRooms(ctx context.Context, request *requests.RoomSearch) (*models.Page[models.Room], error) {
	return uc.rooms.FindRooms(ctx, models.RoomSearchParams{
		Page:     request.Page,
		Search:   request.Search,
		Location: request.Location,
		Capacity: request.Capacity,
	})
}

// GetRoom prefers the cached catalog and falls back to the room endpoint.
func (uc *catalogUsecase) GetRoom(ctx context.Context, roomID string) (*models.Room, error) {
	var cached []models.Room
	if uc.readCache(ctx, RoomsCacheKey, &cached) {
		for i := range cached {
			if strconv.FormatInt(cached[i].ID, 10) == roomID {
				return &cached[i], nil
			}
		}
	}
	return uc.rooms.FindRoomByID(ctx, roomID)
}

func (uc *catalogUsecase) ListLocations(ctx context.Context) ([]models.Location, error) {
	var cached []models.Location
	if uc.readCache(ctx, LocationsCacheKey, &cached) {
		return cached, nil
	}

	locations, err := uc.locations.FindAllLocations(ctx)
	if err != nil {
		return nil, err
	}
	uc.writeCache(ctx, LocationsCacheKey, locations)
	return locations, nil
}

// Refresh re-reads the whole catalog and replaces the cached copies.
func (uc *catalogUsecase) Refresh(ctx context.Context) error {
	var (
		locations []models.Location
		rooms     []models.Room
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		locations, err = uc.locations.FindAllLocations(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		rooms, err = uc.rooms.FindAllRooms(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		return err
	}

	uc.writeCache(ctx, LocationsCacheKey, locations)
	uc.writeCache(ctx, RoomsCacheKey, rooms)
	uc.Log.Info("catalogUsecase.Refresh completed",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.Int("location_count", len(locations)),
		zap.Int("room_count", len(rooms)),
	)
	return nil
}

// readCache reports true only on a decodable hit. Cache failures are logged
// and treated as misses.
func (uc *catalogUsecase) readCache(ctx context.Context, key string, dst interface{}) bool {
	if uc.cache == nil {
		return false
	}
	raw, err := uc.cache.Get(ctx, key)
	if err != nil {
		uc.Log.Warn("catalogUsecase cache read failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return false
	}
	if raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		uc.Log.Warn("catalogUsecase cache entry undecodable",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return false
	}
	return true
}

func (uc *catalogUsecase) writeCache(ctx context.Context, key string, value interface{}) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Set(ctx, key, value, uc.cacheTTL); err != nil {
		uc.Log.Warn("catalogUsecase cache write failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	}
}
