package requests

type ConsultantAction struct {
	ConsultantID string `json:"consultant_id" validate:"required"`
}

// UpdateBookingDraft carries the dialog form fields. Empty fields are allowed here;
// completeness is only enforced on submit.
type UpdateBookingDraft struct {
	SessionType *string `json:"session_type"`
	DateTime    *string `json:"date_time"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
}
