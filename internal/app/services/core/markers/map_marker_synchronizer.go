package markers

import (
	"sync"

	"consultant-discovery/internal/app/contracts"
	"consultant-discovery/internal/app/models"
	"consultant-discovery/internal/app/services/shared/mapsurface"
	"consultant-discovery/internal/pkg/constvars"

	"go.uber.org/zap"
)

type boundMarker struct {
	handle   models.MarkerHandle
	position models.Coordinate
}

// mapMarkerSynchronizer mirrors the visible consultants onto the map cluster layer.
// The binding is rebuilt from scratch on every sync.
type mapMarkerSynchronizer struct {
	mu      sync.Mutex
	surface contracts.MapSurface
	binding map[models.ConsultantID]models.MarkerHandle
	bound   []boundMarker
	Log     *zap.Logger
}

func NewMapMarkerSynchronizer(surface contracts.MapSurface, logger *zap.Logger) contracts.MarkerSynchronizer {
	return &mapMarkerSynchronizer{
		surface: surface,
		binding: make(map[models.ConsultantID]models.MarkerHandle),
		Log:     logger,
	}
}

func (s *mapMarkerSynchronizer) Sync(consultants []models.Consultant) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.bound) > 0 {
		previous := make([]models.MarkerHandle, 0, len(s.bound))
		for _, marker := range s.bound {
			previous = append(previous, marker.handle)
		}
		s.surface.ClusterRemove(previous)
	}

	binding := make(map[models.ConsultantID]models.MarkerHandle, len(consultants))
	bound := make([]boundMarker, 0, len(consultants))
	handles := make([]models.MarkerHandle, 0, len(consultants))
	for _, consultant := range consultants {
		handle := s.surface.CreateMarker(models.MarkerSpec{
			ConsultantID: consultant.ID,
			Position:     consultant.Coordinate(),
			Icon:         mapsurface.ConsultantIcon(consultant.IsOnline),
			Popup:        BuildConsultantPopup(consultant),
		})
		binding[consultant.ID] = handle
		bound = append(bound, boundMarker{handle: handle, position: consultant.Coordinate()})
		handles = append(handles, handle)
	}
	if len(handles) > 0 {
		s.surface.ClusterAdd(handles)
	}

	s.binding = binding
	s.bound = bound

	s.Log.Debug("mapMarkerSynchronizer.Sync",
		zap.Int(constvars.LoggingMarkerCountKey, len(bound)),
	)
}

// Focus centres the map close up and opens the popup of a marker sitting exactly there.
func (s *mapMarkerSynchronizer) Focus(lat, lng float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := models.Coordinate{Lat: lat, Lng: lng}
	s.surface.SetView(target, constvars.MapCloseUpZoom)

	for _, marker := range s.bound {
		if marker.position == target {
			return s.surface.OpenPopup(marker.handle)
		}
	}
	return false
}

func (s *mapMarkerSynchronizer) PlaceUser(coordinate models.Coordinate) {
	s.surface.PlaceUserMarker(coordinate, models.Popup{
		Title:    constvars.MapUserPopupTitle,
		Subtitle: constvars.MapUserPopupBody,
	})
}

func (s *mapMarkerSynchronizer) BoundCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bound)
}

func BuildConsultantPopup(consultant models.Consultant) models.Popup {
	return models.Popup{
		Title:         consultant.Name,
		Subtitle:      consultant.Specialty,
		Rating:        consultant.RatingLabel(),
		Availability:  consultant.Availability,
		DistanceLabel: consultant.DistanceLabel,
		Bio:           consultant.Bio,
		IsOnline:      consultant.IsOnline,
		BookAction:    &models.BookAction{ConsultantID: consultant.ID},
	}
}
