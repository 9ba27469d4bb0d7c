package reservations

import (
	"context"
	"sirsak-service/internal/app/contracts"
	"sirsak-service/internal/app/models"
	"sirsak-service/internal/app/services/core/timegrid"
	"sirsak-service/internal/pkg/constvars"
	"sirsak-service/internal/pkg/dto/requests"
	"sirsak-service/internal/pkg/dto/responses"
	"sirsak-service/internal/pkg/exceptions"
	"sirsak-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type builderUsecase struct {
	registry *Registry
	grid     *timegrid.Grid
	Log      *zap.Logger
}

func NewReservationBuilderUsecase(registry *Registry, grid *timegrid.Grid, logger *zap.Logger) contracts.ReservationBuilderUsecase {
	return &builderUsecase{
		registry: registry,
		grid:     grid,
		Log:      logger,
	}
}

func (uc *builderUsecase) GetTimeGrid(ctx context.Context) *responses.TimeGrid {
	return &responses.TimeGrid{Slots: uc.grid.Slots()}
}

func (uc *builderUsecase) GetBuilder(ctx context.Context) (*responses.ReservationBuilder, error) {
	builder, err := uc.builderFor(ctx)
	if err != nil {
		return nil, err
	}
	return builder.Snapshot(), nil
}

func (uc *builderUsecase) SelectRoomAndDate(ctx context.Context, request *requests.SelectRoomAndDate) (*responses.ReservationBuilder, error) {
	builder, err := uc.builderFor(ctx)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("reservationBuilderUsecase.SelectRoomAndDate called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingRoomIDKey, request.RoomID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)
	return builder.SelectRoomAndDate(ctx, models.Selection{RoomID: request.RoomID, Date: request.Date})
}

func (uc *builderUsecase) ChooseSlot(ctx context.Context, request *requests.ChooseSlot) (*responses.ReservationBuilder, error) {
	builder, err := uc.builderFor(ctx)
	if err != nil {
		return nil, err
	}
	return builder.ChooseSlot(models.TimeSlot(request.Start), models.TimeSlot(request.End))
}

func (uc *builderUsecase) UpdateDetails(ctx context.Context, request *requests.ReservationDetails) (*responses.ReservationBuilder, error) {
	builder, err := uc.builderFor(ctx)
	if err != nil {
		return nil, err
	}
	return builder.UpdateDetails(request.Purpose, request.RequestedCapacity)
}

func (uc *builderUsecase) Submit(ctx context.Context) (*responses.ReservationBuilder, error) {
	builder, err := uc.builderFor(ctx)
	if err != nil {
		return nil, err
	}
	return builder.Submit(ctx)
}

func (uc *builderUsecase) Reset(ctx context.Context) (*responses.ReservationBuilder, error) {
	builder, err := uc.builderFor(ctx)
	if err != nil {
		return nil, err
	}
	return builder.Reset()
}

func (uc *builderUsecase) builderFor(ctx context.Context) (*Builder, error) {
	session, ok := models.SessionFromContext(ctx)
	if !ok || session.UserID == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}
	return uc.registry.Get(session.UserID), nil
}
