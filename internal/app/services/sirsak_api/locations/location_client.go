package locations

import (
	"context"
	"sirsak-service/internal/app/contracts"
	"sirsak-service/internal/app/models"
	"sirsak-service/internal/app/services/sirsak_api"
	"sirsak-service/internal/pkg/constvars"
	"sirsak-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type locationClient struct {
	client *sirsak_api.Client
	Log    *zap.Logger
}

func NewLocationClient(client *sirsak_api.Client, logger *zap.Logger) contracts.LocationClient {
	return &locationClient{
		client: client,
		Log:    logger,
	}
}

func (c *locationClient) FindAllLocations(ctx context.Context) ([]models.Location, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("locationClient.FindAllLocations called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	locations, err := sirsak_api.DrainAll[models.Location](ctx, c.client, constvars.ResourceLocations, nil)
	if err != nil {
		c.Log.Error("locationClient.FindAllLocations error draining pages",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return locations, nil
}
