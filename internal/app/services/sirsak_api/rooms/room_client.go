package rooms

import (
	"context"
	"fmt"
	"net/url"
	"sirsak-service/internal/app/contracts"
	"sirsak-service/internal/app/models"
	"sirsak-service/internal/app/services/sirsak_api"
	"sirsak-service/internal/pkg/constvars"
	"sirsak-service/internal/pkg/exceptions"
	"sirsak-service/internal/pkg/utils"
	"strconv"
	"time"

	"go.uber.org/zap"
)

type roomClient struct {
	client *sirsak_api.Client
	Log    *zap.Logger
}

func NewRoomClient(client *sirsak_api.Client, logger *zap.Logger) contracts.RoomClient {
	return &roomClient{
		client: client,
		Log:    logger,
	}
}

func (c *roomClient) CheckAvailability(ctx context.Context, roomID string, start, end time.Time) (bool, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Debug("roomClient.CheckAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoomIDKey, roomID),
		zap.Time(constvars.LoggingSlotStartKey, start),
		zap.Time(constvars.LoggingSlotEndKey, end),
	)

	query := url.Values{}
	query.Set(constvars.QueryParamStart, utils.FormatInstant(start))
	query.Set(constvars.QueryParamEnd, utils.FormatInstant(end))

	var result struct {
		Available *bool `json:"available"`
	}
	path := fmt.Sprintf(constvars.ResourceRoomAvailabilityFormat, url.PathEscape(roomID))
	err := c.client.DoUnpaced(ctx, constvars.MethodGet, path, query, nil, &result)
	if err != nil {
		return false, err
	}
	if result.Available == nil {
		return false, exceptions.ErrDecodeResponse(fmt.Errorf("missing available field"), path)
	}
	return *result.Available, nil
}

func (c *roomClient) FindRooms(ctx context.Context, params models.RoomSearchParams) (*models.Page[models.Room], error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("roomClient.FindRooms called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryKey, params),
	)

	return sirsak_api.GetPage[models.Room](ctx, c.client, constvars.ResourceRooms, buildRoomQuery(params))
}

func (c *roomClient) FindAllRooms(ctx context.Context) ([]models.Room, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("roomClient.FindAllRooms called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	rooms, err := sirsak_api.DrainAll[models.Room](ctx, c.client, constvars.ResourceRooms, nil)
	if err != nil {
		return nil, err
	}

	c.Log.Info("roomClient.FindAllRooms succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingItemCountKey, len(rooms)),
	)
	return rooms, nil
}

func (c *roomClient) FindRoomByID(ctx context.Context, roomID string) (*models.Room, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("roomClient.FindRoomByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoomIDKey, roomID),
	)

	room := new(models.Room)
	path := fmt.Sprintf(constvars.ResourceRoomDetailFormat, url.PathEscape(roomID))
	err := c.client.Do(ctx, constvars.MethodGet, path, nil, nil, room)
	if err != nil {
		return nil, err
	}
	return room, nil
}

func buildRoomQuery(params models.RoomSearchParams) url.Values {
	query := url.Values{}
	if params.Page > 0 {
		query.Set(constvars.QueryParamPage, strconv.Itoa(params.Page))
	}
	if params.Search != "" {
		query.Set(constvars.QueryParamSearch, params.Search)
	}
	if params.Location != "" {
		query.Set(constvars.QueryParamLocation, params.Location)
	}
	if params.Capacity > 0 {
		query.Set(constvars.QueryParamCapacity, strconv.Itoa(params.Capacity))
	}
	return query
}
