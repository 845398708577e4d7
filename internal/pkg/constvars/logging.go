package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingOperationKey     = "operation"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingStatusCodeKey    = "status_code"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingErrorCodeKey     = "error_code"
	LoggingErrorMessageKey  = "error_message"
	LoggingRedisKey         = "redis_key"
	LoggingLatitudeKey      = "lat"
	LoggingLongitudeKey     = "lng"
	LoggingPlaceNameKey     = "place_name"
	LoggingGenerationKey    = "generation"
	LoggingLatestGenKey     = "latest_generation"
	LoggingCriteriaKey      = "criteria"
	LoggingResultCountKey   = "result_count"
	LoggingConsultantIDKey  = "consultant_id"
	LoggingDialogStateKey   = "dialog_state"
	LoggingNotificationKey  = "notification_id"
	LoggingSeverityKey      = "severity"
	LoggingMarkerCountKey   = "marker_count"
	LoggingLocationSrcKey   = "location_source"
	LoggingGeocoderKey      = "geocoder"
	LoggingBackendURLKey    = "backend_url"
	LoggingResponseKey      = "response"
	LoggingSessionTypeKey   = "session_type"
	LoggingDegradedFlagKey  = "degraded"
	LoggingVisibleCountKey  = "visible_count"
	LoggingBookingResultKey = "booking_success"
)
