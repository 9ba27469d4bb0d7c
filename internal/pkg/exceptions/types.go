package exceptions

import (
	"errors"
	"fmt"
	"sirsak-service/internal/pkg/constvars"
)

var (
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamIDValidationFailed, paramName))
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrInvalidDate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidDate, constvars.ErrDevInvalidInput)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}

	// Auth
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalidOrExpired)
	}
	ErrNotMatchRoleType = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevRoleTypeDoesntMatch)
	}

	// Remote reservation API
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientReservationServiceUnreachable, constvars.ErrDevSendHTTPRequest)
	}
	ErrReadResponseBody = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientReservationServiceUnreachable, constvars.ErrDevReadResponseBody)
	}
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientReservationServiceUnreachable, fmt.Sprintf(constvars.ErrDevDecodeResponse, resource))
	}
	ErrRateLimiterWait = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientServerLongRespond, constvars.ErrDevRemoteAPIRateLimiterWait)
	}
	ErrRemoteAPIResponse = func(err *RemoteAPIError) *CustomError {
		statusCode := err.StatusCode
		if statusCode >= constvars.StatusInternalServerError {
			statusCode = constvars.StatusBadGateway
		}
		clientMessage := err.Detail
		if clientMessage == "" {
			clientMessage = constvars.ErrClientCannotProcessRequest
		}
		return BuildNewCustomError(err, statusCode, clientMessage, fmt.Sprintf(constvars.ErrDevRemoteAPIResponse, err.StatusCode))
	}
	ErrDrainPagesLoop = func(pageURL string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadGateway, constvars.ErrClientReservationServiceUnreachable, fmt.Sprintf(constvars.ErrDevDrainPagesLoop, pageURL))
	}
	ErrDrainPagesLimit = func(limit int) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadGateway, constvars.ErrClientReservationServiceUnreachable, fmt.Sprintf(constvars.ErrDevDrainPagesLimit, limit))
	}

	// Reservation builder
	ErrSlotNoLongerAvailable = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientSlotNoLongerAvailable, constvars.ErrDevSlotGateUnavailable)
	}
	ErrSlotGateCheckFailed = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientReservationServiceUnreachable, constvars.ErrDevSlotGateCheckFailed)
		var remoteErr *RemoteAPIError
		if errors.As(err, &remoteErr) && remoteErr.Detail != "" {
			customErr.ClientMessage = remoteErr.Detail
		}
		return customErr
	}
	ErrReservationConflict = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientReservationConflict, constvars.ErrDevReservationConflict)
		var remoteErr *RemoteAPIError
		if errors.As(err, &remoteErr) && remoteErr.Detail != "" {
			customErr.ClientMessage = remoteErr.Detail
		}
		return customErr
	}
	ErrSubmissionInProgress = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientSubmissionInProgress, constvars.ErrDevSubmissionLockHeld)
	}
	ErrAvailabilityNotLoaded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientAvailabilityNotLoaded, constvars.ErrDevAvailabilityNotLoaded)
	}
	ErrSlotNotSelectable = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, constvars.ErrClientSlotNotSelectable, constvars.ErrDevSlotRangeRejected)
	}
	ErrSubmissionRateLimited = func(err error, retryAfterSecs int) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientSubmissionRateLimited, fmt.Sprintf(constvars.ErrDevSubmissionRateLimited, retryAfterSecs))
		customErr.RetryAfterSecs = retryAfterSecs
		return customErr
	}
	ErrInvalidBuilderTransition = func(err error, state string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientBuilderStepNotAllowed, fmt.Sprintf(constvars.ErrDevInvalidBuilderTransition, state))
	}

	// Feedback
	ErrFeedbackNotAllowed = func(err error, reservationID int64) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, constvars.ErrClientFeedbackNotAllowed, fmt.Sprintf(constvars.ErrDevFeedbackNotAllowed, reservationID))
	}

	// Redis
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSet)
	}
	ErrRedisGet = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisGet, key))
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDelete)
	}
	ErrRedisIncrement = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisIncrement)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queueName))
	}
	ErrRabbitMQDeclareQueue = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQDeclareQueue, queueName))
	}
)
