package listview

import (
	"sync"

	"consultant-discovery/internal/app/contracts"
	"consultant-discovery/internal/app/models"
	"consultant-discovery/internal/pkg/constvars"

	"go.uber.org/zap"
)

// ListViewRenderer builds the consultant panel. Card order is the server's; it never re-sorts.
// Card actions only reach consultants present in the last rendered slice.
type ListViewRenderer struct {
	mu      sync.RWMutex
	view    models.ListView
	visible map[models.ConsultantID]models.Consultant
	markers contracts.MarkerFocuser
	booking contracts.BookingOpener
	Log     *zap.Logger
}

func NewListViewRenderer(markers contracts.MarkerFocuser, booking contracts.BookingOpener, logger *zap.Logger) *ListViewRenderer {
	return &ListViewRenderer{
		view: models.ListView{
			State:   models.ListStateLoading,
			Message: constvars.ListLoadingStateMessage,
			Cards:   []models.ListCard{},
		},
		visible: map[models.ConsultantID]models.Consultant{},
		markers: markers,
		booking: booking,
		Log:     logger,
	}
}

func (r *ListViewRenderer) Render(snapshot models.ResultSetSnapshot, visible []models.Consultant) models.ListView {
	view := models.ListView{
		Degraded: snapshot.Degraded,
		Cards:    make([]models.ListCard, 0, len(visible)),
	}

	switch {
	case !snapshot.Loaded:
		view.State = models.ListStateLoading
		view.Message = constvars.ListLoadingStateMessage
	case len(visible) == 0:
		view.State = models.ListStateEmpty
		view.Message = constvars.ListEmptyStateMessage
	default:
		view.State = models.ListStateResults
		for _, consultant := range visible {
			view.Cards = append(view.Cards, models.ListCard{
				ConsultantID:  consultant.ID,
				Name:          consultant.Name,
				Specialty:     consultant.Specialty,
				Rating:        consultant.RatingLabel(),
				Availability:  consultant.Availability,
				DistanceLabel: consultant.DistanceLabel,
				IsOnline:      consultant.IsOnline,
				Focus:         consultant.Coordinate(),
			})
		}
	}
	view.Count = len(view.Cards)

	index := make(map[models.ConsultantID]models.Consultant, len(view.Cards))
	if view.State == models.ListStateResults {
		for _, consultant := range visible {
			index[consultant.ID] = consultant
		}
	}

	r.mu.Lock()
	r.view = view
	r.visible = index
	r.mu.Unlock()

	r.Log.Debug("ListViewRenderer.Render",
		zap.String("state", string(view.State)),
		zap.Int(constvars.LoggingVisibleCountKey, view.Count),
		zap.Bool(constvars.LoggingDegradedFlagKey, view.Degraded),
	)
	return view
}

// Focus is the card's "show on map" action.
func (r *ListViewRenderer) Focus(consultantID models.ConsultantID) bool {
	consultant, ok := r.Lookup(consultantID)
	if !ok {
		return false
	}
	r.markers.Focus(consultant.Lat, consultant.Lng)
	return true
}

// Book is the card's "book" action.
func (r *ListViewRenderer) Book(consultantID models.ConsultantID) bool {
	if _, ok := r.Lookup(consultantID); !ok {
		r.Log.Warn("ListViewRenderer.Book consultant not visible",
			zap.String(constvars.LoggingConsultantIDKey, consultantID.String()),
		)
		return false
	}
	return r.booking.Open(consultantID)
}

// Lookup finds a consultant among the currently rendered cards.
func (r *ListViewRenderer) Lookup(consultantID models.ConsultantID) (models.Consultant, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	consultant, ok := r.visible[consultantID]
	return consultant, ok
}

func (r *ListViewRenderer) View() models.ListView {
	r.mu.RLock()
	defer r.mu.RUnlock()
	view := r.view
	view.Cards = append([]models.ListCard(nil), r.view.Cards...)
	if view.Cards == nil {
		view.Cards = []models.ListCard{}
	}
	return view
}
