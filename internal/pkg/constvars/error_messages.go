package constvars

var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"numeric":   "must be a number",
	"min":       "must be at least %s characters long",
	"max":       "maximum at %s characters long",
	"gt":        "must be greater than %s",
	"gte":       "must be greater than or equal to %s",
	"lte":       "must be less than or equal to %s",
	"oneof":     "must be one of [%s]",
	"iso_date":  "must be a date formatted as YYYY-MM-DD",
	"grid_slot": "must be a half-hour time formatted as HH:MM",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gt":    true,
	"gte":   true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientReservationServiceUnreachable = "the reservation service cannot be reached, please try again"
	ErrClientSlotNoLongerAvailable         = "the selected time is no longer available, please choose another slot"
	ErrClientReservationConflict           = "the room has already been reserved for that time"
	ErrClientSubmissionInProgress          = "this reservation is already being submitted"
	ErrClientAvailabilityNotLoaded         = "room availability has not been loaded yet, please select a room and date"
	ErrClientSlotNotSelectable             = "the selected time range is not available"
	ErrClientBuilderStepNotAllowed         = "this step is not allowed right now"
	ErrClientInvalidDate                   = "date must be formatted as YYYY-MM-DD"
	ErrClientSubmissionRateLimited         = "too many reservation attempts, please wait a moment"
	ErrClientFeedbackNotAllowed            = "feedback can only be given once for an approved reservation that has ended"
)

// Error messages for developers
const (
	ErrDevInvalidInput                = "invalid input"
	ErrDevValidationFailed            = "validation failed"
	ErrDevCannotParseJSON             = "cannot parse JSON"
	ErrDevCannotMarshalJSON           = "cannot marshal JSON"
	ErrDevURLParamIDValidationFailed  = "URL param %s validation failed"
	ErrDevCreateHTTPRequest           = "failed to create HTTP request"
	ErrDevSendHTTPRequest             = "failed to send HTTP request"
	ErrDevDecodeResponse              = "failed to decode %s response"
	ErrDevReadResponseBody            = "failed to read response body"
	ErrDevRemoteAPIResponse           = "remote API responded with status %d"
	ErrDevRemoteAPIRateLimiterWait    = "outgoing rate limiter wait aborted"
	ErrDevDrainPagesLoop              = "pagination loop detected at %s"
	ErrDevDrainPagesLimit             = "pagination exceeded %d pages"
	ErrDevServerDeadlineExceeded      = "server deadline exceeded"
	ErrDevAuthTokenMissing            = "auth token missing"
	ErrDevAuthTokenInvalidOrExpired   = "auth token invalid or expired"
	ErrDevRoleTypeDoesntMatch         = "role type doesn't match"
	ErrDevSlotGateUnavailable         = "authoritative availability check reported the interval unavailable"
	ErrDevSlotGateCheckFailed         = "authoritative availability check failed"
	ErrDevReservationConflict         = "remote API rejected the reservation as conflicting"
	ErrDevSubmissionLockHeld          = "submission lock already held"
	ErrDevAvailabilityNotLoaded       = "no availability map for the current selection"
	ErrDevSlotRangeRejected           = "slot range rejected"
	ErrDevInvalidBuilderTransition    = "invalid builder transition from %s"
	ErrDevFeedbackNotAllowed          = "reservation %d is not awaiting feedback"
	ErrDevRedisSet                    = "failed to set redis value"
	ErrDevRedisGet                    = "failed to get redis value of key %s"
	ErrDevRedisDelete                 = "failed to delete redis value"
	ErrDevRedisUnlock                 = "failed to release redis lock"
	ErrDevRedisIncrement              = "failed to increment redis counter"
	ErrDevSubmissionRateLimited       = "submission limiter quota exceeded, retry after %d seconds"
	ErrDevRabbitMQPublishMessage      = "failed to publish message to %s"
	ErrDevRabbitMQDeclareQueue        = "failed to declare queue %s"
	ErrDevRabbitMQPublisherNotEnabled = "rabbitmq publisher is not configured"
)
