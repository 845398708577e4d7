package discovery

import (
	"context"
	"sync"
	"time"

	"consultant-discovery/internal/app/contracts"
	"consultant-discovery/internal/app/models"
	"consultant-discovery/internal/app/services/core/booking"
	"consultant-discovery/internal/app/services/core/filters"
	"consultant-discovery/internal/app/services/core/listview"
	"consultant-discovery/internal/app/services/core/location"
	"consultant-discovery/internal/app/services/core/notifications"
	"consultant-discovery/internal/pkg/constvars"
	"consultant-discovery/internal/pkg/exceptions"

	"go.uber.org/zap"
)

// AppState is what the orchestrator last rendered.
type AppState struct {
	Coordinate models.Coordinate
	Criteria   models.FilterCriteria
	Snapshot   models.ResultSetSnapshot
	Visible    []models.Consultant
	Started    bool
}

type Dependencies struct {
	Location      *location.LocationResolver
	Filters       *filters.FilterQueryController
	ResultSet     contracts.ConsultantResultSet
	Map           contracts.MapSurface
	Markers       contracts.MarkerSynchronizer
	List          *listview.ListViewRenderer
	Booking       *booking.BookingDialogController
	Notifications *notifications.NotificationQueue
}

type Options struct {
	Now func() time.Time
}

var _ contracts.DiscoveryUsecase = (*ConsultantApp)(nil)

// ConsultantApp routes user input to the components and fans every result-set change
// out to the map and the list from one visible slice. locationMu orders Start against
// location changes so the map, user marker and query always follow the resolver.
type ConsultantApp struct {
	locationMu sync.Mutex
	renderMu   sync.Mutex
	state      AppState

	deps    Dependencies
	options Options
	Log     *zap.Logger
}

func NewConsultantApp(deps Dependencies, options Options, logger *zap.Logger) *ConsultantApp {
	if options.Now == nil {
		options.Now = time.Now
	}
	app := &ConsultantApp{
		state: AppState{
			Coordinate: models.DefaultCoordinate,
			Criteria:   models.DefaultFilterCriteria(),
		},
		deps:    deps,
		options: options,
		Log:     logger,
	}
	deps.Filters.Subscribe(app.render)
	deps.Location.OnChange(app.locationChanged)
	return app
}

// Start resolves the location, centres the map on it and issues the first query.
func (a *ConsultantApp) Start(ctx context.Context) {
	a.Log.Info("ConsultantApp.Start called")

	a.deps.Location.Resolve(ctx)

	a.locationMu.Lock()
	defer a.locationMu.Unlock()

	// A live fix may have landed since Resolve returned.
	coordinate := a.deps.Location.Current()
	a.deps.Map.SetView(coordinate, constvars.MapInitialZoom)
	a.deps.Markers.PlaceUser(coordinate)

	a.renderMu.Lock()
	a.state.Coordinate = coordinate
	a.state.Started = true
	a.renderMu.Unlock()

	a.deps.Filters.Start(coordinate)
}

func (a *ConsultantApp) render(snapshot models.ResultSetSnapshot) {
	a.renderMu.Lock()
	defer a.renderMu.Unlock()

	criteria := a.deps.Filters.Criteria()
	visible := a.deps.ResultSet.Visible(criteria.SearchText, a.options.Now())

	a.deps.Markers.Sync(visible)
	a.deps.List.Render(snapshot, visible)

	a.state.Criteria = criteria
	a.state.Snapshot = snapshot
	a.state.Visible = visible

	a.Log.Debug("ConsultantApp.render",
		zap.Uint64(constvars.LoggingGenerationKey, snapshot.Generation),
		zap.Int(constvars.LoggingVisibleCountKey, len(visible)),
		zap.Bool(constvars.LoggingDegradedFlagKey, snapshot.Degraded),
	)
}

// locationChanged reads the resolver rather than its argument:
// a callback queued behind locationMu may already be stale.
func (a *ConsultantApp) locationChanged(models.Coordinate) {
	a.locationMu.Lock()
	defer a.locationMu.Unlock()

	coordinate := a.deps.Location.Current()

	a.deps.Markers.PlaceUser(coordinate)
	a.deps.Map.SetView(coordinate, constvars.MapLocatedZoom)

	a.renderMu.Lock()
	a.state.Coordinate = coordinate
	started := a.state.Started
	a.renderMu.Unlock()

	if started {
		a.deps.Filters.SetCoordinate(coordinate)
	}
}

func (a *ConsultantApp) View() models.AppView {
	a.renderMu.Lock()
	defer a.renderMu.Unlock()

	return models.AppView{
		Location:      a.deps.Location.Current(),
		Criteria:      a.deps.Filters.Criteria(),
		List:          a.deps.List.View(),
		Map:           a.deps.Map.Snapshot(),
		Dialog:        a.deps.Booking.View(),
		Notifications: a.deps.Notifications.List(),
	}
}

// State returns a copy of the last rendered application state.
func (a *ConsultantApp) State() AppState {
	a.renderMu.Lock()
	defer a.renderMu.Unlock()
	state := a.state
	state.Visible = append([]models.Consultant(nil), a.state.Visible...)
	return state
}

func (a *ConsultantApp) SearchTextChanged(text string) {
	a.deps.Filters.SetSearchText(text)
}

func (a *ConsultantApp) SpecialtyChanged(value string) {
	a.deps.Filters.SetSpecialty(value)
}

func (a *ConsultantApp) AvailabilityChanged(value string) {
	a.deps.Filters.SetAvailability(value)
}

func (a *ConsultantApp) RatingChanged(value string) {
	a.deps.Filters.SetMinRating(value)
}

func (a *ConsultantApp) ClearFilters() {
	a.deps.Filters.Clear()
}

func (a *ConsultantApp) SetManualLocation(ctx context.Context, placeName string) (models.Coordinate, error) {
	return a.deps.Location.SetManual(ctx, placeName)
}

func (a *ConsultantApp) Locate(ctx context.Context) (models.Coordinate, error) {
	return a.deps.Location.Locate(ctx)
}

func (a *ConsultantApp) FocusConsultant(consultantID models.ConsultantID) error {
	if !a.deps.List.Focus(consultantID) {
		return exceptions.ErrConsultantNotFound(consultantID.String())
	}
	return nil
}

func (a *ConsultantApp) OpenBooking(consultantID models.ConsultantID) error {
	if a.deps.List.Book(consultantID) {
		return nil
	}
	if a.deps.Booking.State() == models.DialogStateSubmitting {
		return exceptions.ErrDialogSubmitting()
	}
	return exceptions.ErrConsultantNotFound(consultantID.String())
}

func (a *ConsultantApp) UpdateBookingDraft(patch models.BookingDraftPatch) error {
	return a.deps.Booking.UpdateDraft(patch)
}

func (a *ConsultantApp) SubmitBooking(ctx context.Context) error {
	return a.deps.Booking.Submit(ctx)
}

func (a *ConsultantApp) CloseBooking() error {
	if a.deps.Booking.Close() {
		return nil
	}
	if a.deps.Booking.State() == models.DialogStateSubmitting {
		return exceptions.ErrDialogSubmitting()
	}
	return exceptions.ErrDialogNotOpen()
}

func (a *ConsultantApp) DialogOutsideClick() {
	a.deps.Booking.Close()
}

func (a *ConsultantApp) DismissNotification(notificationID string) error {
	if !a.deps.Notifications.Dismiss(notificationID) {
		return exceptions.ErrNotificationNotFound(notificationID)
	}
	return nil
}

// Shutdown stops issuing queries and waits for in-flight work to settle.
func (a *ConsultantApp) Shutdown() {
	a.Log.Info("ConsultantApp.Shutdown called")
	a.deps.Filters.Stop()
	a.deps.Location.Wait()
	a.deps.Notifications.Stop()
}
