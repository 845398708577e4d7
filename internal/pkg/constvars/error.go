package constvars

// Validation messages, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"oneof":    "must be one of: %s",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
}

var TagsWithParams = map[string]bool{
	"oneof": true,
	"min":   true,
	"max":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientConsultantNotFound            = "consultant is no longer available in the current results"
	ErrClientDialogNotOpen                 = "booking dialog is not open"
	ErrClientBookingInProgress             = "booking is being submitted, please wait"
	ErrClientTooManyRequests               = "too many requests, please slow down"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevCreateHTTPRequest      = "failed to create HTTP request"
	ErrDevSendHTTPRequest        = "failed to send HTTP request"
	ErrDevDecodeResponse         = "failed to decode response from %s"
	ErrDevUnexpectedStatus       = "unexpected status %d from %s"
	ErrDevValidationFailed       = "validation failed"
	ErrDevServerDeadlineExceeded = "deadline exceeded"

	ErrDevLocationUnavailable    = "device location unavailable"
	ErrDevGeocodeNotFound        = "geocoder returned no usable match for %q"
	ErrDevGeocodeFailed          = "geocoder lookup failed for %q"
	ErrDevQueryFailed            = "consultant search failed"
	ErrDevBookingRejected        = "booking rejected by backend"
	ErrDevBookingTransportFailed = "booking request failed in transport"
	ErrDevBookingDraftIncomplete = "booking draft is incomplete"
	ErrDevDialogNotOpen          = "booking dialog is not open"
	ErrDevDialogSubmitting       = "booking dialog is submitting"
	ErrDevConsultantNotInResults = "consultant %s is not in the current result set"
	ErrDevInvalidCoordinate      = "coordinate out of range"
	ErrDevRedisSet               = "failed to set redis key"
	ErrDevRedisGet               = "failed to get redis key %s"
	ErrDevRedisDelete            = "failed to delete redis key"
	ErrDevUnsupportedProvider    = "unsupported provider %q"
	ErrDevNotificationNotFound   = "notification %s not found"
	ErrDevGeocoderRateLimitWait  = "geocoder rate limiter wait failed"
	ErrDevMissingRequestID       = "request id not found in context"
	ErrDevReadBody               = "failed to read request body"
	ErrDevTooManyRequests        = "rate limit exceeded"
	ErrDevRecoveredPanic         = "recovered from panic"
)
