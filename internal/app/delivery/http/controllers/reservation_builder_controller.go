package controllers

import (
	"context"
	"net/http"
	"sirsak-service/internal/app/contracts"
	"sirsak-service/internal/pkg/constvars"
	"sirsak-service/internal/pkg/dto/requests"
	"sirsak-service/internal/pkg/dto/responses"
	"sirsak-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type ReservationBuilderController struct {
	Log                       *zap.Logger
	ReservationBuilderUsecase contracts.ReservationBuilderUsecase
}

func NewReservationBuilderController(logger *zap.Logger, reservationBuilderUsecase contracts.ReservationBuilderUsecase) *ReservationBuilderController {
	return &ReservationBuilderController{
		Log:                       logger,
		ReservationBuilderUsecase: reservationBuilderUsecase,
	}
}

func (ctrl *ReservationBuilderController) GetTimeGrid(w http.ResponseWriter, r *http.Request) {
	result := ctrl.ReservationBuilderUsecase.GetTimeGrid(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTimeGridSuccessMessage, result)
}

func (ctrl *ReservationBuilderController) GetBuilder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	result, err := ctrl.ReservationBuilderUsecase.GetBuilder(ctx)
	if err != nil {
		ctrl.writeBuilderError(w, err, result)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetReservationBuilderSuccessMessage, result)
}

func (ctrl *ReservationBuilderController) SelectRoomAndDate(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SelectRoomAndDate)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), builderRequestTimeout)
	defer cancel()

	result, err := ctrl.ReservationBuilderUsecase.SelectRoomAndDate(ctx, request)
	if err != nil {
		ctrl.writeBuilderError(w, err, result)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SelectRoomAndDateSuccessMessage, result)
}

func (ctrl *ReservationBuilderController) ChooseSlot(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ChooseSlot)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	result, err := ctrl.ReservationBuilderUsecase.ChooseSlot(ctx, request)
	if err != nil {
		ctrl.writeBuilderError(w, err, result)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ChooseSlotSuccessMessage, result)
}

func (ctrl *ReservationBuilderController) UpdateDetails(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ReservationDetails)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	result, err := ctrl.ReservationBuilderUsecase.UpdateDetails(ctx, request)
	if err != nil {
		ctrl.writeBuilderError(w, err, result)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateReservationDetailsMessage, result)
}

// Submit answers 201 only when a reservation was created. Any other outcome
// is reported through the builder's state and message alongside the error.
func (ctrl *ReservationBuilderController) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), builderRequestTimeout)
	defer cancel()

	result, err := ctrl.ReservationBuilderUsecase.Submit(ctx)
	if err != nil {
		ctrl.writeBuilderError(w, err, result)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SubmitReservationSuccessMessage, result)
}

func (ctrl *ReservationBuilderController) Reset(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	result, err := ctrl.ReservationBuilderUsecase.Reset(ctx)
	if err != nil {
		ctrl.writeBuilderError(w, err, result)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResetReservationBuilderMessage, result)
}

func (ctrl *ReservationBuilderController) writeBuilderError(w http.ResponseWriter, err error, snapshot *responses.ReservationBuilder) {
	if snapshot == nil {
		writeError(ctrl.Log, w, err)
		return
	}
	utils.BuildErrorResponseWithData(ctrl.Log, w, deadlineAware(err), snapshot)
}
