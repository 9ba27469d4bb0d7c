package constvars

const (
	LoggingRequestIDKey         = "request_id"
	LoggingOperationKey         = "operation"
	LoggingDurationKey          = "duration"
	LoggingSuccessKey           = "success"
	LoggingErrorCodeKey         = "error_code"
	LoggingErrorMessageKey      = "error_message"
	LoggingMethodKey            = "method"
	LoggingEndpointKey          = "endpoint"
	LoggingRemoteAddrKey        = "remote_addr"
	LoggingUserAgentKey         = "user_agent"
	LoggingQueryKey             = "query"
	LoggingStatusCodeKey        = "status_code"
	LoggingUpstreamURLKey       = "upstream_url"
	LoggingUpstreamStatusKey    = "upstream_status"
	LoggingRoomIDKey            = "room_id"
	LoggingDateKey              = "date"
	LoggingSlotStartKey         = "slot_start"
	LoggingSlotEndKey           = "slot_end"
	LoggingGenerationKey        = "generation"
	LoggingUnavailableCountKey  = "unavailable_count"
	LoggingFailedProbeCountKey  = "failed_probe_count"
	LoggingBuilderStateKey      = "builder_state"
	LoggingUserIDKey            = "user_id"
	LoggingReservationIDKey     = "reservation_id"
	LoggingPageCountKey         = "page_count"
	LoggingItemCountKey         = "item_count"
	LoggingRedisKey             = "redis_key"
	LoggingLockValueKey         = "lock_value"
	LoggingLockExpirationKey    = "lock_expiration"
	LoggingLockStoredValueKey   = "lock_stored_value"
	LoggingLockExpectedValueKey = "lock_expected_value"
	LoggingQueueNameKey         = "queue_name"
	LoggingJobNameKey           = "job_name"
	LoggingLimiterKey           = "limiter_key"
	LoggingRetryAfterKey        = "retry_after"
)
