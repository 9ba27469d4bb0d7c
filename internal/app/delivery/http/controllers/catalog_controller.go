package controllers

import (
	"context"
	"net/http"
	"sirsak-service/internal/app/contracts"
	"sirsak-service/internal/pkg/constvars"
	"sirsak-service/internal/pkg/dto/responses"
	"sirsak-service/internal/pkg/exceptions"
	"sirsak-service/internal/pkg/utils"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogController struct {
	Log            *zap.Logger
	CatalogUsecase contracts.CatalogUsecase
}

func NewCatalogController(logger *zap.Logger, catalogUsecase contracts.CatalogUsecase) *CatalogController {
	return &CatalogController{
		Log:            logger,
		CatalogUsecase: catalogUsecase,
	}
}

func (ctrl *CatalogController) FindRooms(w http.ResponseWriter, r *http.Request) {
	request := utils.BuildRoomSearchRequest(r)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	result, err := ctrl.CatalogUsecase.SearchRooms(ctx, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	page := request.Page
	if page <= 0 {
		page = 1
	}
	pagination := &responses.Pagination{
		Total:   result.Count,
		Page:    page,
		NextURL: result.NextURL(),
	}
	if result.Previous != nil {
		pagination.PrevURL = *result.Previous
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetRoomsSuccessMessage, pagination, result.Results)
}

func (ctrl *CatalogController) FindRoomByID(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, constvars.URLParamRoomID)
	if _, err := strconv.ParseInt(roomID, 10, 64); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamRoomID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	result, err := ctrl.CatalogUsecase.GetRoom(ctx, roomID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetRoomSuccessMessage, result)
}

func (ctrl *CatalogController) FindLocations(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	result, err := ctrl.CatalogUsecase.ListLocations(ctx)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetLocationsSuccessMessage, result)
}
