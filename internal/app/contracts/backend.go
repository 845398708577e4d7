package contracts

import (
	"context"

	"consultant-discovery/internal/app/models"
)

type SearchBackend interface {
	Search(ctx context.Context, request models.SearchRequest) ([]models.Consultant, error)
}

// BookingBackend returns exceptions.ErrKindBookingRejected when the server answers
// success=false and exceptions.ErrKindBookingTransportFailed for everything else.
type BookingBackend interface {
	Book(ctx context.Context, draft models.BookingDraft) (models.BookingResult, error)
}
