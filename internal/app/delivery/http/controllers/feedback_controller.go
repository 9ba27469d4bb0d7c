package controllers

import (
	"context"
	"net/http"
	"sirsak-service/internal/app/contracts"
	"sirsak-service/internal/pkg/constvars"
	"sirsak-service/internal/pkg/dto/requests"
	"sirsak-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type FeedbackController struct {
	Log             *zap.Logger
	FeedbackUsecase contracts.FeedbackUsecase
}

func NewFeedbackController(logger *zap.Logger, feedbackUsecase contracts.FeedbackUsecase) *FeedbackController {
	return &FeedbackController{
		Log:             logger,
		FeedbackUsecase: feedbackUsecase,
	}
}

func (ctrl *FeedbackController) FindAwaiting(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	result, err := ctrl.FeedbackUsecase.ListAwaitingFeedback(ctx)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPendingFeedbackSuccessMessage, result)
}

func (ctrl *FeedbackController) FindMine(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	result, err := ctrl.FeedbackUsecase.ListMyFeedback(ctx)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMyFeedbackSuccessMessage, result)
}

func (ctrl *FeedbackController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateFeedback)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	result, err := ctrl.FeedbackUsecase.SubmitFeedback(ctx, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SubmitFeedbackSuccessMessage, result)
}
