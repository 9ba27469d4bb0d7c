package controllers

import (
	"context"
	"net/http"
	"sirsak-service/internal/app/contracts"
	"sirsak-service/internal/app/models"
	"sirsak-service/internal/pkg/constvars"
	"sirsak-service/internal/pkg/exceptions"
	"sirsak-service/internal/pkg/utils"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReservationController struct {
	Log                *zap.Logger
	ReservationUsecase contracts.ReservationUsecase
}

func NewReservationController(logger *zap.Logger, reservationUsecase contracts.ReservationUsecase) *ReservationController {
	return &ReservationController{
		Log:                logger,
		ReservationUsecase: reservationUsecase,
	}
}

func (ctrl *ReservationController) FindMine(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	result, err := ctrl.ReservationUsecase.ListMyReservations(ctx)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetReservationsSuccessMessage, result)
}

func (ctrl *ReservationController) FindPending(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	result, err := ctrl.ReservationUsecase.ListPendingReservations(ctx)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPendingReservationsSuccessMessage, result)
}

func (ctrl *ReservationController) Approve(w http.ResponseWriter, r *http.Request) {
	ctrl.decide(w, r, ctrl.ReservationUsecase.ApproveReservation, constvars.ApproveReservationSuccessMessage)
}

func (ctrl *ReservationController) Decline(w http.ResponseWriter, r *http.Request) {
	ctrl.decide(w, r, ctrl.ReservationUsecase.DeclineReservation, constvars.DeclineReservationSuccessMessage)
}

type decideFunc func(ctx context.Context, reservationID string) (*models.Reservation, error)

func (ctrl *ReservationController) decide(w http.ResponseWriter, r *http.Request, decideFn decideFunc, successMessage string) {
	reservationID := chi.URLParam(r, constvars.URLParamReservationID)
	if reservationID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(errEmptyReservationID, constvars.URLParamReservationID))
		return
	}
	if _, err := strconv.ParseInt(reservationID, 10, 64); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamReservationID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	result, err := decideFn(ctx, reservationID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, successMessage, result)
}
