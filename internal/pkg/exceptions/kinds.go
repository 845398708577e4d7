package exceptions

import "errors"

// Error taxonomy of the discovery client. Match with errors.Is.
var (
	ErrKindLocationUnavailable    = errors.New("location unavailable")
	ErrKindGeocodeNotFound        = errors.New("geocode not found")
	ErrKindGeocodeFailed          = errors.New("geocode failed")
	ErrKindQueryFailed            = errors.New("query failed")
	ErrKindBookingRejected        = errors.New("booking rejected")
	ErrKindBookingTransportFailed = errors.New("booking transport failed")
	ErrKindBookingDraftIncomplete = errors.New("booking draft incomplete")
	ErrKindDialogNotOpen          = errors.New("dialog not open")
	ErrKindDialogSubmitting       = errors.New("dialog submitting")
	ErrKindConsultantNotFound     = errors.New("consultant not found")
	ErrKindNotificationNotFound   = errors.New("notification not found")
	ErrKindInvalidCoordinate      = errors.New("invalid coordinate")
)

// Reasons a device location request can fail.
var (
	ErrLocationDenied      = errors.New("location permission denied")
	ErrLocationTimeout     = errors.New("location request timed out")
	ErrLocationUnsupported = errors.New("location service unsupported")
)
