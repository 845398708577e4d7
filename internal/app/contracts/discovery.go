package contracts

import (
	"context"
	"time"

	"consultant-discovery/internal/app/models"
)

type ConsultantLookup interface {
	Lookup(consultantID models.ConsultantID) (models.Consultant, bool)
}

// ConsultantResultSet is the authoritative list of consultants from the most recent
// successful query, plus the degraded flag set when a later query failed.
type ConsultantResultSet interface {
	ConsultantLookup
	Replace(generation uint64, consultants []models.Consultant, fetchedAt time.Time)
	MarkDegraded()
	Snapshot() models.ResultSetSnapshot
	Visible(searchText string, now time.Time) []models.Consultant
}

type MarkerFocuser interface {
	Focus(lat, lng float64) bool
}

type BookingOpener interface {
	Open(consultantID models.ConsultantID) bool
}

// DiscoveryUsecase is the input surface of the discovery client as seen by the view gateway.
type DiscoveryUsecase interface {
	View() models.AppView
	SearchTextChanged(text string)
	SpecialtyChanged(value string)
	AvailabilityChanged(value string)
	RatingChanged(value string)
	ClearFilters()
	SetManualLocation(ctx context.Context, placeName string) (models.Coordinate, error)
	Locate(ctx context.Context) (models.Coordinate, error)
	FocusConsultant(consultantID models.ConsultantID) error
	OpenBooking(consultantID models.ConsultantID) error
	UpdateBookingDraft(patch models.BookingDraftPatch) error
	SubmitBooking(ctx context.Context) error
	CloseBooking() error
	DialogOutsideClick()
	DismissNotification(notificationID string) error
}
