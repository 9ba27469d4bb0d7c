package feedback

import (
	"context"
	"sirsak-service/internal/app/contracts"
	"sirsak-service/internal/app/models"
	"sirsak-service/internal/app/services/sirsak_api"
	"sirsak-service/internal/pkg/constvars"
	"sirsak-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type feedbackClient struct {
	client *sirsak_api.Client
	Log    *zap.Logger
}

func NewFeedbackClient(client *sirsak_api.Client, logger *zap.Logger) contracts.FeedbackClient {
	return &feedbackClient{
		client: client,
		Log:    logger,
	}
}

func (c *feedbackClient) CreateFeedback(ctx context.Context, payload *models.FeedbackPayload) (*models.Feedback, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("feedbackClient.CreateFeedback called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingReservationIDKey, payload.Reservation),
	)

	feedback := new(models.Feedback)
	err := c.client.Do(ctx, constvars.MethodPost, constvars.ResourceFeedback, nil, payload, feedback)
	if err != nil {
		return nil, err
	}
	return feedback, nil
}

// FindMyFeedback lists the caller's own feedback. The endpoint answers with
// a bare array, which DrainAll reads as a single page.
func (c *feedbackClient) FindMyFeedback(ctx context.Context) ([]models.Feedback, error) {
	c.Log.Info("feedbackClient.FindMyFeedback called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)
	return sirsak_api.DrainAll[models.Feedback](ctx, c.client, constvars.ResourceMyFeedback, nil)
}

func (c *feedbackClient) FindAllFeedback(ctx context.Context) ([]models.Feedback, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("feedbackClient.FindAllFeedback called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	feedback, err := sirsak_api.DrainAll[models.Feedback](ctx, c.client, constvars.ResourceFeedback, nil)
	if err != nil {
		c.Log.Error("feedbackClient.FindAllFeedback error draining pages",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return feedback, nil
}
