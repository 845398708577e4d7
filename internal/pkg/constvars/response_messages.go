package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	GetViewSuccessMessage            = "get view successfully"
	UpdateFiltersSuccessMessage      = "filters updated successfully"
	ClearFiltersSuccessMessage       = "filters cleared successfully"
	UpdateLocationSuccessMessage     = "location updated successfully"
	FocusConsultantSuccessMessage    = "consultant focused on map"
	OpenBookingSuccessMessage        = "booking dialog opened"
	UpdateBookingDraftSuccessMessage = "booking draft updated"
	CloseBookingSuccessMessage       = "booking dialog closed"
	SubmitBookingSuccessMessage      = "booking submitted"
	DismissNotificationMessage       = "notification dismissed"
)
