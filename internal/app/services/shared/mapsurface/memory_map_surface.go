package mapsurface

import (
	"sync"

	"consultant-discovery/internal/app/contracts"
	"consultant-discovery/internal/app/models"
	"consultant-discovery/internal/pkg/constvars"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const userMarkerHandle models.MarkerHandle = "user"

type marker struct {
	spec models.MarkerSpec
}

// memoryMapSurface keeps the map state a browser shell renders: a cluster layer of
// consultant markers, the user's own marker, the view and the single open popup.
type memoryMapSurface struct {
	mu         sync.RWMutex
	markers    map[models.MarkerHandle]*marker
	cluster    []models.MarkerHandle
	inCluster  map[models.MarkerHandle]bool
	userMarker *models.MarkerSpec
	center     models.Coordinate
	zoom       int
	openPopup  models.MarkerHandle
	Log        *zap.Logger
}

func NewMemoryMapSurface(logger *zap.Logger) contracts.MapSurface {
	return &memoryMapSurface{
		markers:   make(map[models.MarkerHandle]*marker),
		inCluster: make(map[models.MarkerHandle]bool),
		center:    models.DefaultCoordinate,
		zoom:      constvars.MapInitialZoom,
		Log:       logger,
	}
}

func (s *memoryMapSurface) CreateMarker(spec models.MarkerSpec) models.MarkerHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle := models.MarkerHandle(uuid.NewString())
	s.markers[handle] = &marker{spec: spec}
	return handle
}

func (s *memoryMapSurface) ClusterAdd(handles []models.MarkerHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, handle := range handles {
		if _, ok := s.markers[handle]; !ok || s.inCluster[handle] {
			continue
		}
		s.inCluster[handle] = true
		s.cluster = append(s.cluster, handle)
	}
	s.Log.Debug("memoryMapSurface.ClusterAdd",
		zap.Int(constvars.LoggingMarkerCountKey, len(s.cluster)),
	)
}

// ClusterRemove detaches the markers and forgets them; handles are not reusable afterwards.
func (s *memoryMapSurface) ClusterRemove(handles []models.MarkerHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := make(map[models.MarkerHandle]bool, len(handles))
	for _, handle := range handles {
		removed[handle] = true
		delete(s.inCluster, handle)
		delete(s.markers, handle)
		if s.openPopup == handle {
			s.openPopup = ""
		}
	}

	kept := s.cluster[:0]
	for _, handle := range s.cluster {
		if !removed[handle] {
			kept = append(kept, handle)
		}
	}
	s.cluster = kept
}

func (s *memoryMapSurface) SetView(center models.Coordinate, zoom int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.center = center
	s.zoom = zoom
}

func (s *memoryMapSurface) OpenPopup(handle models.MarkerHandle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if handle == userMarkerHandle && s.userMarker != nil {
		s.openPopup = handle
		return true
	}
	if !s.inCluster[handle] {
		return false
	}
	s.openPopup = handle
	return true
}

func (s *memoryMapSurface) PlaceUserMarker(position models.Coordinate, popup models.Popup) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userMarker = &models.MarkerSpec{
		Position: position,
		Icon:     UserIcon(),
		Popup:    popup,
	}
}

func (s *memoryMapSurface) Snapshot() models.MapView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	view := models.MapView{
		Center:  s.center,
		Zoom:    s.zoom,
		Cluster: make([]models.MapMarkerView, 0, len(s.cluster)),
	}
	if s.userMarker != nil {
		view.UserMarker = &models.MapMarkerView{
			Handle:    string(userMarkerHandle),
			Position:  s.userMarker.Position,
			Icon:      s.userMarker.Icon,
			Popup:     s.userMarker.Popup,
			PopupOpen: s.openPopup == userMarkerHandle,
		}
	}
	for _, handle := range s.cluster {
		spec := s.markers[handle].spec
		view.Cluster = append(view.Cluster, models.MapMarkerView{
			Handle:       string(handle),
			Position:     spec.Position,
			Icon:         spec.Icon,
			Popup:        spec.Popup,
			PopupOpen:    s.openPopup == handle,
			ConsultantID: spec.ConsultantID,
		})
	}
	return view
}
