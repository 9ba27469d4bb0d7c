package controllers

import (
	"context"
	"errors"
	"net/http"
	"sirsak-service/internal/pkg/exceptions"
	"sirsak-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

const (
	defaultRequestTimeout = 10 * time.Second
	// selection probes the whole day; submit re-checks before creating
	builderRequestTimeout = 30 * time.Second
)

var errEmptyReservationID = errors.New("reservation id is empty")

func writeError(log *zap.Logger, w http.ResponseWriter, err error) {
	utils.BuildErrorResponse(log, w, deadlineAware(err))
}

// deadlineAware maps a bare context deadline to a 504; errors already
// classified by the usecase keep their own status.
func deadlineAware(err error) error {
	var customErr *exceptions.CustomError
	if errors.Is(err, context.DeadlineExceeded) && !errors.As(err, &customErr) {
		return exceptions.ErrServerDeadlineExceeded(err)
	}
	return err
}
