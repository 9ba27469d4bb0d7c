package utils

import (
	"errors"
	"net/http"
	"sirsak-service/internal/pkg/constvars"
	"sirsak-service/internal/pkg/dto/responses"
	"sirsak-service/internal/pkg/exceptions"
	"strconv"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

func BuildSuccessResponseWithPagination(w http.ResponseWriter, code int, message string, pagination *responses.Pagination, data interface{}) {
	response := responses.ResponseDTO{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: pagination,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	BuildErrorResponseWithData(log, w, err, nil)
}

// BuildErrorResponseWithData is BuildErrorResponse with the resource state
// the client should render next to the error.
func BuildErrorResponseWithData(log *zap.Logger, w http.ResponseWriter, err error, data interface{}) {
	response := responses.ErrorResponseDTO{
		StatusCode: constvars.StatusInternalServerError,
		Message:    constvars.ErrClientSomethingWrongWithApplication,
		Data:       data,
	}

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		response.StatusCode = customErr.StatusCode
		response.Message = customErr.ClientMessage
		if customErr.RetryAfterSecs > 0 {
			w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(customErr.RetryAfterSecs))
		}
		log.Error(customErr.DevMessage,
			zap.Int(constvars.LoggingStatusCodeKey, customErr.StatusCode),
			zap.Any("location", customErr.Location),
		)
		if GetEnvString("APP_ENV", "development") != "production" {
			response.DevMessage = customErr.DevMessage
			response.Location = customErr.Location
		}
	} else {
		log.Error(err.Error())
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(response.StatusCode)
	json.NewEncoder(w).Encode(response)
}
