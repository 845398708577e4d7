package models

import "consultant-discovery/internal/pkg/constvars"

type BookingDraft struct {
	ConsultantID ConsultantID `json:"consultant_id" validate:"required"`
	SessionType  string       `json:"session_type" validate:"required,oneof=Virtual In-Person Hybrid"`
	DateTime     string       `json:"date_time" validate:"required"`
	Email        string       `json:"email" validate:"required"`
	Phone        string       `json:"phone" validate:"required"`
}

func NewBookingDraft(consultantID ConsultantID) BookingDraft {
	return BookingDraft{
		ConsultantID: consultantID,
		SessionType:  constvars.SessionTypeVirtual,
	}
}

// BookingDraftPatch updates only the fields that are set.
type BookingDraftPatch struct {
	SessionType *string
	DateTime    *string
	Email       *string
	Phone       *string
}

func (d BookingDraft) Apply(patch BookingDraftPatch) BookingDraft {
	if patch.SessionType != nil {
		d.SessionType = *patch.SessionType
	}
	if patch.DateTime != nil {
		d.DateTime = *patch.DateTime
	}
	if patch.Email != nil {
		d.Email = *patch.Email
	}
	if patch.Phone != nil {
		d.Phone = *patch.Phone
	}
	return d
}

type BookingResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type DialogState string

const (
	DialogStateClosed     DialogState = "closed"
	DialogStateOpen       DialogState = "open"
	DialogStateSubmitting DialogState = "submitting"
)
