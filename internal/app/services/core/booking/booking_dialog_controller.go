package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	"consultant-discovery/internal/app/contracts"
	"consultant-discovery/internal/app/models"
	"consultant-discovery/internal/pkg/constvars"
	"consultant-discovery/internal/pkg/exceptions"
	"consultant-discovery/internal/pkg/utils"

	"go.uber.org/zap"
)

// BookingDialogController drives the booking modal: Closed, Open, Submitting and back.
// Lock order is controller then surface; surface events reach the controller without the surface lock.
type BookingDialogController struct {
	mu            sync.Mutex
	state         models.DialogState
	consultant    *models.Consultant
	draft         models.BookingDraft
	handle        contracts.DialogHandle
	unsubscribers []contracts.Unsubscribe

	surface  contracts.DialogSurface
	lookup   contracts.ConsultantLookup
	backend  contracts.BookingBackend
	notifier contracts.Notifier
	timeout  time.Duration
	Log      *zap.Logger
}

func NewBookingDialogController(
	surface contracts.DialogSurface,
	lookup contracts.ConsultantLookup,
	backend contracts.BookingBackend,
	notifier contracts.Notifier,
	timeout time.Duration,
	logger *zap.Logger,
) *BookingDialogController {
	return &BookingDialogController{
		state:    models.DialogStateClosed,
		surface:  surface,
		lookup:   lookup,
		backend:  backend,
		notifier: notifier,
		timeout:  timeout,
		Log:      logger,
	}
}

func (c *BookingDialogController) Open(consultantID models.ConsultantID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Log.Info("BookingDialogController.Open called",
		zap.String(constvars.LoggingConsultantIDKey, consultantID.String()),
		zap.String(constvars.LoggingDialogStateKey, string(c.state)),
	)

	if c.state == models.DialogStateSubmitting {
		return false
	}
	consultant, ok := c.lookup.Lookup(consultantID)
	if !ok {
		c.Log.Warn("BookingDialogController.Open consultant not in current results",
			zap.String(constvars.LoggingConsultantIDKey, consultantID.String()),
		)
		return false
	}

	c.teardownLocked()

	c.consultant = &consultant
	c.draft = models.NewBookingDraft(consultant.ID)
	c.state = models.DialogStateOpen
	c.handle = c.surface.Mount(c.viewLocked())
	c.unsubscribers = []contracts.Unsubscribe{
		c.handle.OnCancel(func() { c.Close() }),
		c.handle.OnOutsideClick(func() { c.Close() }),
		c.handle.OnSubmit(func() { _ = c.Submit(context.Background()) }),
	}
	return true
}

func (c *BookingDialogController) UpdateDraft(patch models.BookingDraftPatch) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != models.DialogStateOpen {
		return c.notOpenErrorLocked()
	}
	c.draft = c.draft.Apply(patch)
	c.handle.Update(c.viewLocked())
	return nil
}

// Submit validates the draft, then sends it. The outcome is reported through notifications
// and also returned.
func (c *BookingDialogController) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.state != models.DialogStateOpen {
		err := c.notOpenErrorLocked()
		c.mu.Unlock()
		return err
	}

	err := utils.ValidateStruct(c.draft)
	if err != nil {
		incomplete := exceptions.ErrBookingDraftIncomplete(err)
		c.mu.Unlock()
		c.notifier.Push(incomplete.ClientMessage, models.SeverityWarning)
		return incomplete
	}

	c.state = models.DialogStateSubmitting
	c.handle.Update(c.viewLocked())
	draft := c.draft
	c.mu.Unlock()

	requestCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var result models.BookingResult
	err = utils.LogOperation(c.Log, "BookingDialogController.Submit", utils.GetRequestID(ctx), func() error {
		var bookErr error
		result, bookErr = c.backend.Book(requestCtx, draft)
		return bookErr
	})

	c.mu.Lock()
	defer c.mu.Unlock()

	if err == nil {
		c.notifier.Push(result.Message, models.SeveritySuccess)
		c.teardownLocked()
		c.state = models.DialogStateClosed
		return nil
	}

	c.state = models.DialogStateOpen
	c.handle.Update(c.viewLocked())

	var customErr *exceptions.CustomError
	if errors.Is(err, exceptions.ErrKindBookingRejected) && errors.As(err, &customErr) {
		c.notifier.Push(customErr.ClientMessage, models.SeverityError)
		return err
	}
	c.notifier.Push(constvars.NotifyBookingFailed, models.SeverityError)
	if !errors.Is(err, exceptions.ErrKindBookingTransportFailed) {
		return exceptions.ErrBookingTransportFailed(err)
	}
	return err
}

// Close is ignored while a submission is in flight.
func (c *BookingDialogController) Close() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != models.DialogStateOpen {
		return false
	}
	c.teardownLocked()
	c.state = models.DialogStateClosed
	c.Log.Debug("BookingDialogController.Close dialog closed")
	return true
}

func (c *BookingDialogController) State() models.DialogState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *BookingDialogController) View() models.DialogView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

func (c *BookingDialogController) viewLocked() models.DialogView {
	view := models.DialogView{State: c.state}
	if c.state == models.DialogStateClosed {
		return view
	}
	consultant := *c.consultant
	view.Consultant = &consultant
	view.Draft = c.draft
	return view
}

func (c *BookingDialogController) teardownLocked() {
	for _, unsubscribe := range c.unsubscribers {
		unsubscribe()
	}
	c.unsubscribers = nil
	if c.handle != nil {
		c.handle.Unmount()
		c.handle = nil
	}
	c.consultant = nil
	c.draft = models.BookingDraft{}
}

func (c *BookingDialogController) notOpenErrorLocked() error {
	if c.state == models.DialogStateSubmitting {
		return exceptions.ErrDialogSubmitting()
	}
	return exceptions.ErrDialogNotOpen()
}
