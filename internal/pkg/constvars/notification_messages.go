package constvars

// User-visible notification messages. Treated as opaque display strings.
const (
	NotifyLocationDefaultFallback = "Unable to get your location. Using default location (" + DefaultLocationName + ")."
	NotifyLocationLocateFailed    = "Unable to get location. Using current location."
	NotifyLocationNotFound        = "Location not found. Please try again."
	NotifyLocationLookupFailed    = "Failed to fetch location. Please try again."
	NotifyConsultantsFetchFailed  = "Failed to fetch consultants. Showing cached results."
	NotifyBookingFailed           = "Booking failed. Please try again."
)

const (
	ListEmptyStateMessage   = "No consultants found. Try adjusting filters."
	ListLoadingStateMessage = "Loading consultants..."
	MapUserPopupTitle       = "You are here"
	MapUserPopupBody        = "Your current location"
)
