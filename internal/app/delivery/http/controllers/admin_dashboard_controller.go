package controllers

import (
	"context"
	"net/http"
	"sirsak-service/internal/app/contracts"
	"sirsak-service/internal/pkg/constvars"
	"sirsak-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type AdminDashboardController struct {
	Log                   *zap.Logger
	AdminDashboardUsecase contracts.AdminDashboardUsecase
}

func NewAdminDashboardController(logger *zap.Logger, adminDashboardUsecase contracts.AdminDashboardUsecase) *AdminDashboardController {
	return &AdminDashboardController{
		Log:                   logger,
		AdminDashboardUsecase: adminDashboardUsecase,
	}
}

// GetDashboard drains three full lists, so it gets the longer builder timeout.
func (ctrl *AdminDashboardController) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), builderRequestTimeout)
	defer cancel()

	result, err := ctrl.AdminDashboardUsecase.GetAdminDashboard(ctx)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAdminDashboardSuccessMessage, result)
}
