package contracts

import (
	"context"

	"consultant-discovery/internal/app/models"
)

// Unsubscribe removes a previously registered dialog event handler.
type Unsubscribe func()

type DialogSurface interface {
	Mount(view models.DialogView) DialogHandle
	Snapshot() models.DialogView
}

// DialogHandle is one mounted dialog instance. Handlers registered on it must be
// removed before a new instance is mounted.
type DialogHandle interface {
	Update(view models.DialogView)
	Unmount()
	OnCancel(handler func()) Unsubscribe
	OnOutsideClick(handler func()) Unsubscribe
	OnSubmit(handler func()) Unsubscribe
}

type BookingDialog interface {
	Open(consultantID models.ConsultantID) bool
	UpdateDraft(patch models.BookingDraftPatch) error
	Submit(ctx context.Context) error
	Close() bool
	State() models.DialogState
	View() models.DialogView
}
